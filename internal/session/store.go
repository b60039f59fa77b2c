package session

import (
	"context"

	apperrors "skillscan/internal/errors"
)

// ErrNotFound is returned by stores when a session ID is unknown or
// expired. Compare with errors.Is.
var ErrNotFound = apperrors.NewSessionError(
	apperrors.ErrCodeSessionNotFound,
	"session not found",
	nil,
)

// Store persists interview sessions. Implementations must be safe for
// concurrent use.
type Store interface {
	// Get returns the session or ErrNotFound.
	Get(ctx context.Context, id string) (*Session, error)
	// Put inserts or replaces the session.
	Put(ctx context.Context, s *Session) error
	// Delete removes the session. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error
	// Count reports how many live sessions the store holds.
	Count(ctx context.Context) (int, error)
	// Close releases store resources.
	Close() error
}
