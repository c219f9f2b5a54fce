package http

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"log"
	"net/http"
	"path"
	"time"

	"github.com/jayraj2301/Tier-Base-Showcase/internal/app"
	"github.com/jayraj2301/Tier-Base-Showcase/internal/domain"
)

//go:embed templates/*.html static/*
var assets embed.FS

var (
	homeTemplate   = parsePage("templates/home.html")
	eventsTemplate = parsePage("templates/events.html")
)

// EventLister builds the per-viewer event listing.
type EventLister interface {
	ListForViewer(ctx context.Context, viewer domain.Viewer) (app.Listing, error)
}

type cardView struct {
	Event         domain.Event
	Accessible    bool
	LockedMessage string
}

var templateFuncs = template.FuncMap{
	"formatDate": func(t time.Time) string {
		return t.UTC().Format("Monday, January 2, 2006 at 03:04 PM")
	},
	"cardData": func(event domain.Event, accessible bool, lockedMessage string) cardView {
		return cardView{Event: event, Accessible: accessible, LockedMessage: lockedMessage}
	},
}

func parsePage(page string) *template.Template {
	return template.Must(template.New(path.Base(page)).Funcs(templateFuncs).ParseFS(assets, "templates/layout.html", page))
}

type tierBlurb struct {
	Tier  domain.Tier
	Blurb string
}

type homePage struct {
	SignInURL string
	SignUpURL string
	Tiers     []tierBlurb
}

type eventsPage struct {
	Listing  app.Listing
	ShowSeed bool
}

// PageOptions carries the links and switches the pages need.
type PageOptions struct {
	SignInURL string
	SignUpURL string
	ShowSeed  bool
}

// HandleHome renders the landing page, or sends signed-in viewers to /events.
func HandleHome(auth ViewerAuthenticator, opts PageOptions, logger *log.Logger) http.HandlerFunc {
	if logger == nil {
		logger = log.Default()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if token := sessionToken(r); token != "" {
			_, err := auth.Authenticate(r.Context(), token)
			if err == nil {
				http.Redirect(w, r, "/events", http.StatusSeeOther)
				return
			}
			if !isUnauthenticated(err) {
				logger.Printf("WARN: authenticate on landing page: %v", err)
			}
		}

		render(w, logger, homeTemplate, homePage{
			SignInURL: opts.SignInURL,
			SignUpURL: opts.SignUpURL,
			Tiers: []tierBlurb{
				{Tier: domain.TierFree, Blurb: "Community Events"},
				{Tier: domain.TierSilver, Blurb: "Premium Events"},
				{Tier: domain.TierGold, Blurb: "VIP Events"},
				{Tier: domain.TierPlatinum, Blurb: "Exclusive Events"},
			},
		})
	}
}

// HandleEventsPage renders the accessible events and the full catalog with
// locked entries. Expects RequireViewer upstream.
func HandleEventsPage(svc EventLister, opts PageOptions, logger *log.Logger) http.HandlerFunc {
	if logger == nil {
		logger = log.Default()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, ok := ViewerFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		listing, err := svc.ListForViewer(r.Context(), viewer)
		if err != nil {
			logger.Printf("ERROR: list events viewer=%s: %v", viewer.ID, err)
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}
		render(w, logger, eventsTemplate, eventsPage{Listing: listing, ShowSeed: opts.ShowSeed})
	}
}

// PlaceholderHandler serves the fallback event image.
func PlaceholderHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svg, err := assets.ReadFile("static/placeholder-event.svg")
		if err != nil {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Header().Set("Cache-Control", "public, max-age=86400")
		_, _ = w.Write(svg)
	}
}

func render(w http.ResponseWriter, logger *log.Logger, tmpl *template.Template, data any) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		logger.Printf("ERROR: render %s: %v", tmpl.Name(), err)
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
