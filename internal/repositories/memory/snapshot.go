package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/sbilibin2017/adbperf/internal/models"
)

// SnapshotStore holds the latest snapshot per (device, package) key behind a
// single lock. The write and read repositories share one store so concurrent
// saves and reads are mutually excluded.
type SnapshotStore struct {
	mu   sync.RWMutex
	data map[models.SnapshotKey]models.Snapshot
}

// NewSnapshotStore creates a store around the given map. A nil map allocates
// a fresh one.
func NewSnapshotStore(data map[models.SnapshotKey]models.Snapshot) *SnapshotStore {
	if data == nil {
		data = make(map[models.SnapshotKey]models.Snapshot)
	}
	return &SnapshotStore{data: data}
}

// SnapshotWriteRepository provides write access to in-memory snapshots.
// Only the latest snapshot per (device, package) key is kept.
type SnapshotWriteRepository struct {
	store *SnapshotStore
}

// NewSnapshotWriteRepository creates a new SnapshotWriteRepository.
func NewSnapshotWriteRepository(store *SnapshotStore) *SnapshotWriteRepository {
	return &SnapshotWriteRepository{store: store}
}

// Save stores the snapshot as the latest for its key.
func (r *SnapshotWriteRepository) Save(
	ctx context.Context,
	snapshot *models.Snapshot,
) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.data[snapshot.Key()] = *snapshot
	return nil
}

// SnapshotReadRepository provides read access to in-memory snapshots.
type SnapshotReadRepository struct {
	store *SnapshotStore
}

// NewSnapshotReadRepository creates a new SnapshotReadRepository.
func NewSnapshotReadRepository(store *SnapshotStore) *SnapshotReadRepository {
	return &SnapshotReadRepository{store: store}
}

// Get retrieves the latest snapshot for the given key.
func (r *SnapshotReadRepository) Get(
	ctx context.Context,
	key models.SnapshotKey,
) (*models.Snapshot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if snapshot, ok := r.store.data[key]; ok {
		// Create a copy so caller gets a unique pointer
		snapshotCopy := snapshot
		return &snapshotCopy, nil
	}
	return nil, nil
}

// List returns the latest snapshot of every key, sorted by device then package.
func (r *SnapshotReadRepository) List(
	ctx context.Context,
) ([]*models.Snapshot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	snapshots := make([]*models.Snapshot, 0, len(r.store.data))
	for _, s := range r.store.data {
		snapshot := s // copy value to avoid pointer aliasing
		snapshots = append(snapshots, &snapshot)
	}

	sort.Slice(snapshots, func(i, j int) bool {
		if snapshots[i].DeviceID != snapshots[j].DeviceID {
			return snapshots[i].DeviceID < snapshots[j].DeviceID
		}
		return snapshots[i].Package < snapshots[j].Package
	})

	return snapshots, nil
}
