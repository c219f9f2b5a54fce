package identity

import (
	"context"
	"log"

	"github.com/jayraj2301/Tier-Base-Showcase/internal/domain"
)

// Authenticator turns a session token into a Viewer with a fresh tier.
type Authenticator struct {
	client *Client
	logger *log.Logger
}

func NewAuthenticator(client *Client, logger *log.Logger) *Authenticator {
	if logger == nil {
		logger = log.Default()
	}
	return &Authenticator{client: client, logger: logger}
}

func (a *Authenticator) Authenticate(ctx context.Context, token string) (domain.Viewer, error) {
	userID, err := a.client.VerifySession(ctx, token)
	if err != nil {
		return domain.Viewer{}, err
	}
	id, rawTier, err := a.client.User(ctx, userID)
	if err != nil {
		return domain.Viewer{}, err
	}
	viewer, valid := domain.NewViewer(id, rawTier)
	if !valid {
		a.logger.Printf("WARN: viewer %s has unknown tier %q, treating as %s", id, rawTier, viewer.Tier)
	}
	return viewer, nil
}
