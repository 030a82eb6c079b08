package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/opiegroup/boscotek2026-sub003/internal/models"
)

// BlobStore persists generated documents and hands out time-limited retrieval
// URLs.
type BlobStore interface {
	Put(ctx context.Context, path string, data []byte) error
	SignedURL(path string, ttl time.Duration) (string, error)

	Ping(ctx context.Context) error
	Close() error
}

// ExportStore records generation metadata: duration, byte size and blob
// paths per export.
type ExportStore interface {
	RecordExport(ctx context.Context, record *models.ExportRecord) error
	GetExport(ctx context.Context, id uuid.UUID) (*models.ExportRecord, error)
	ListExports(ctx context.Context, limit, offset int) ([]*models.ExportRecord, error)

	Ping(ctx context.Context) error
	Close() error
}
