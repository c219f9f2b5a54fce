package domain

import "errors"

var (
	ErrInvalidTier     = errors.New("invalid tier")
	ErrTierAtMaximum   = errors.New("tier already at maximum")
	ErrUnauthenticated = errors.New("not authenticated")
	ErrViewerNotFound  = errors.New("viewer not found")
	ErrInvalidID       = errors.New("invalid id")
)
