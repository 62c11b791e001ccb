package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/jwebster45206/tower-client/pkg/session"
)

// Storage persists client sessions between runs.
type Storage interface {
	// Health and lifecycle
	Ping(ctx context.Context) error
	Close() error

	// Session operations. LoadSession returns nil, nil when the id is unknown.
	SaveSession(ctx context.Context, s *session.Session) error
	LoadSession(ctx context.Context, id uuid.UUID) (*session.Session, error)
	DeleteSession(ctx context.Context, id uuid.UUID) error
}
