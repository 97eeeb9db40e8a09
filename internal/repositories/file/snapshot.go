package file

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"sort"
	"sync"

	"github.com/sbilibin2017/adbperf/internal/models"
)

// SnapshotWriteRepository appends snapshots to a JSON-lines file.
type SnapshotWriteRepository struct {
	snapshotFilePath string
	mu               sync.RWMutex
}

// NewSnapshotWriteRepository creates a new write repository.
func NewSnapshotWriteRepository(path string) *SnapshotWriteRepository {
	return &SnapshotWriteRepository{snapshotFilePath: path}
}

// Save appends a snapshot to the file.
func (r *SnapshotWriteRepository) Save(ctx context.Context, snapshot *models.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := os.OpenFile(r.snapshotFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	encoder := json.NewEncoder(writer)
	if err := encoder.Encode(snapshot); err != nil {
		return err
	}

	if err := writer.Flush(); err != nil {
		return err
	}

	return file.Sync()
}

// SnapshotReadRepository reads snapshots back from a JSON-lines file.
type SnapshotReadRepository struct {
	snapshotFilePath string
	mu               sync.RWMutex
}

// NewSnapshotReadRepository creates a new read repository.
func NewSnapshotReadRepository(path string) *SnapshotReadRepository {
	return &SnapshotReadRepository{snapshotFilePath: path}
}

// List reads the latest snapshot per (device, package) key from the file,
// sorted by device then package. The last record for a key wins.
func (r *SnapshotReadRepository) List(ctx context.Context) ([]*models.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := os.Open(r.snapshotFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // no snapshots saved yet
		}
		return nil, err
	}
	defer file.Close()

	snapshotMap := make(map[models.SnapshotKey]*models.Snapshot)
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		var s models.Snapshot
		if err := json.Unmarshal(scanner.Bytes(), &s); err != nil {
			return nil, err
		}
		sCopy := s
		snapshotMap[s.Key()] = &sCopy
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	snapshots := make([]*models.Snapshot, 0, len(snapshotMap))
	for _, s := range snapshotMap {
		snapshots = append(snapshots, s)
	}

	sort.SliceStable(snapshots, func(i, j int) bool {
		if snapshots[i].DeviceID != snapshots[j].DeviceID {
			return snapshots[i].DeviceID < snapshots[j].DeviceID
		}
		return snapshots[i].Package < snapshots[j].Package
	})

	return snapshots, nil
}

// Get fetches the last snapshot for the given key from the file.
func (r *SnapshotReadRepository) Get(ctx context.Context, key models.SnapshotKey) (*models.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := os.Open(r.snapshotFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	var result *models.Snapshot
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var snapshot models.Snapshot
		if err := json.Unmarshal(scanner.Bytes(), &snapshot); err != nil {
			return nil, err
		}
		if snapshot.Key() == key {
			snapshotCopy := snapshot
			result = &snapshotCopy
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
