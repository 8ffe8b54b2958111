package ports

import (
	"context"

	"github.com/htdinh/pfob-cli/internal/domain"
)

// SnapshotRepository caches the last fetched account panes locally.
type SnapshotRepository interface {
	// Load returns the cached snapshot, or domain.ErrSnapshotNotFound when
	// nothing has been cached yet.
	Load(ctx context.Context) (domain.Snapshot, error)
	Save(ctx context.Context, snapshot domain.Snapshot) error
}
