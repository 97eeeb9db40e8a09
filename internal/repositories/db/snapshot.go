package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/adbperf/internal/models"
)

// snapshotColumns is the column list shared by all queries. Frame statistics
// and raw diagnostic text are per-cycle data and are not persisted.
const snapshotColumns = `device_id, package, fps, cpu, power, memory_mb,
	network_kbps, network_bps, rx_bytes, tx_bytes, rx_bps, tx_bps,
	battery_level, battery_temp_c, created_at`

// SnapshotWriteRepository provides write access to snapshots in a SQL
// database. Queries are written with ? placeholders and rebound for the
// active driver, so the repository works against both SQLite and PostgreSQL.
type SnapshotWriteRepository struct {
	db *sqlx.DB
}

// NewSnapshotWriteRepository creates a new SnapshotWriteRepository with the
// given database connection.
func NewSnapshotWriteRepository(db *sqlx.DB) *SnapshotWriteRepository {
	return &SnapshotWriteRepository{db: db}
}

// Save inserts the snapshot or replaces the stored one for its key.
func (r *SnapshotWriteRepository) Save(
	ctx context.Context,
	snapshot *models.Snapshot,
) error {
	query := r.db.Rebind(`
		INSERT INTO snapshots (` + snapshotColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (device_id, package) DO UPDATE SET
			fps = EXCLUDED.fps,
			cpu = EXCLUDED.cpu,
			power = EXCLUDED.power,
			memory_mb = EXCLUDED.memory_mb,
			network_kbps = EXCLUDED.network_kbps,
			network_bps = EXCLUDED.network_bps,
			rx_bytes = EXCLUDED.rx_bytes,
			tx_bytes = EXCLUDED.tx_bytes,
			rx_bps = EXCLUDED.rx_bps,
			tx_bps = EXCLUDED.tx_bps,
			battery_level = EXCLUDED.battery_level,
			battery_temp_c = EXCLUDED.battery_temp_c,
			created_at = EXCLUDED.created_at
	`)

	_, err := r.db.ExecContext(ctx, query,
		snapshot.DeviceID, snapshot.Package,
		snapshot.FPS, snapshot.CPU, snapshot.Power, snapshot.MemoryMB,
		snapshot.NetworkKBps, snapshot.NetworkBps,
		snapshot.RxBytes, snapshot.TxBytes, snapshot.RxBps, snapshot.TxBps,
		snapshot.BatteryLevel, snapshot.BatteryTempC, snapshot.CreatedAt,
	)
	return err
}

// SnapshotReadRepository provides read access to snapshots stored in a SQL
// database.
type SnapshotReadRepository struct {
	db *sqlx.DB
}

// NewSnapshotReadRepository creates a new SnapshotReadRepository with the
// given database connection.
func NewSnapshotReadRepository(db *sqlx.DB) *SnapshotReadRepository {
	return &SnapshotReadRepository{db: db}
}

// Get retrieves the latest snapshot for the given key, or nil when none is
// stored.
func (r *SnapshotReadRepository) Get(
	ctx context.Context,
	key models.SnapshotKey,
) (*models.Snapshot, error) {
	query := r.db.Rebind(`
		SELECT ` + snapshotColumns + `
		FROM snapshots
		WHERE device_id = ? AND package = ?
	`)

	var snapshot models.Snapshot
	err := r.db.GetContext(ctx, &snapshot, query, key.DeviceID, key.Package)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &snapshot, nil
}

// List returns the latest snapshot of every key, sorted by device then
// package.
func (r *SnapshotReadRepository) List(
	ctx context.Context,
) ([]*models.Snapshot, error) {
	query := `
		SELECT ` + snapshotColumns + `
		FROM snapshots
		ORDER BY device_id, package
	`

	var snapshots []*models.Snapshot
	if err := r.db.SelectContext(ctx, &snapshots, query); err != nil {
		return nil, err
	}
	return snapshots, nil
}
