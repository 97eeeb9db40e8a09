package agent

import (
	"context"
	"time"

	"github.com/sbilibin2017/adbperf/internal/models"
)

// Collector assembles one telemetry snapshot per call.
type Collector interface {
	// Collect fetches the requested metric kinds for one package on one device.
	Collect(ctx context.Context, deviceID, pkg string, kinds []models.MetricKind) *models.Snapshot
}

// Reporter sends batches of snapshots to the dashboard server.
type Reporter interface {
	// Report sends a batch of snapshots.
	Report(ctx context.Context, snapshots []*models.Snapshot) error
}

// HistoryPruner evicts stale rate-history entries.
type HistoryPruner interface {
	// Prune removes entries older than maxAge and reports how many were dropped.
	Prune(maxAge time.Duration) int
}

// historyMaxAgeTicks is the history retention expressed in report intervals.
const historyMaxAgeTicks = 10

// finalFlushTimeout bounds the report of the last batch during shutdown.
const finalFlushTimeout = 5 * time.Second

// NewSnapshotAgent creates and returns a function that runs the telemetry
// agent loop: collect a snapshot on every poll tick, report the accumulated
// batch on every report tick. The pruner may be nil.
func NewSnapshotAgent(
	collector Collector,
	reporter Reporter,
	pruner HistoryPruner,
	deviceID string,
	pkg string,
	kinds []models.MetricKind,
	pollTicker *time.Ticker,
	reportTicker *time.Ticker,
	reportInterval time.Duration,
) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		snapshotCh := snapshotGenerator(ctx, pollTicker, func(ctx context.Context) *models.Snapshot {
			return collector.Collect(ctx, deviceID, pkg, kinds)
		})
		return sendSnapshots(ctx, reportTicker, reporter, pruner, reportInterval*historyMaxAgeTicks, snapshotCh)
	}
}

// snapshotGenerator emits one snapshot per poll tick.
func snapshotGenerator(
	ctx context.Context,
	ticker *time.Ticker,
	collect func(ctx context.Context) *models.Snapshot,
) chan *models.Snapshot {
	out := make(chan *models.Snapshot, 100)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				snapshot := collect(ctx)
				if snapshot == nil {
					continue
				}
				select {
				case out <- snapshot:
				default:
					// Reporter is falling behind; drop this sample rather
					// than block collection.
				}
			}
		}
	}()
	return out
}

// sendSnapshots batches snapshots from the channel and reports them on every
// ticker fire or on shutdown. Stale history keys are pruned after each report.
func sendSnapshots(
	ctx context.Context,
	ticker *time.Ticker,
	reporter Reporter,
	pruner HistoryPruner,
	historyMaxAge time.Duration,
	in chan *models.Snapshot,
) error {
	var batch []*models.Snapshot

	for {
		select {
		case <-ctx.Done():
			if len(batch) > 0 {
				return flushFinal(reporter, batch)
			}
			return ctx.Err()

		case snapshot, ok := <-in:
			if !ok {
				if len(batch) > 0 {
					return flushFinal(reporter, batch)
				}
				return nil
			}
			batch = append(batch, snapshot)

		case <-ticker.C:
			if len(batch) > 0 {
				if err := reporter.Report(ctx, batch); err != nil {
					return err
				}
				batch = batch[:0]
			}
			if pruner != nil && historyMaxAge > 0 {
				pruner.Prune(historyMaxAge)
			}
		}
	}
}

// flushFinal reports the remaining batch on shutdown. The loop context is
// already cancelled at that point, so the report runs under its own deadline
// to keep the last batch from being dropped.
func flushFinal(reporter Reporter, batch []*models.Snapshot) error {
	flushCtx, cancel := context.WithTimeout(context.Background(), finalFlushTimeout)
	defer cancel()
	return reporter.Report(flushCtx, batch)
}
