package services

import (
	"context"
	"time"

	"github.com/sbilibin2017/adbperf/internal/models"
)

// Writer defines the interface for storing snapshots.
type Writer interface {
	Save(ctx context.Context, snapshot *models.Snapshot) error
}

// Reader defines the interface for retrieving snapshots.
type Reader interface {
	Get(ctx context.Context, key models.SnapshotKey) (*models.Snapshot, error)
	List(ctx context.Context) ([]*models.Snapshot, error)
}

// SnapshotService manages stored snapshots on the server side.
type SnapshotService struct {
	writer Writer
	reader Reader
}

// NewSnapshotService creates a new SnapshotService with the given writer and
// reader.
func NewSnapshotService(writer Writer, reader Reader) *SnapshotService {
	return &SnapshotService{writer: writer, reader: reader}
}

// Save stores the snapshot as the latest for its key. A missing timestamp is
// filled in with the arrival time.
func (svc *SnapshotService) Save(
	ctx context.Context,
	snapshot *models.Snapshot,
) error {
	if snapshot.CreatedAt.IsZero() {
		snapshot.CreatedAt = time.Now()
	}
	return svc.writer.Save(ctx, snapshot)
}

// Get retrieves the latest snapshot for the given key.
func (svc *SnapshotService) Get(
	ctx context.Context,
	key models.SnapshotKey,
) (*models.Snapshot, error) {
	return svc.reader.Get(ctx, key)
}

// List returns the latest snapshot of every key.
func (svc *SnapshotService) List(
	ctx context.Context,
) ([]*models.Snapshot, error) {
	return svc.reader.List(ctx)
}
