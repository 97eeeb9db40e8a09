package worker

import (
	"context"
	"time"

	"github.com/sbilibin2017/adbperf/internal/models"
)

// FileWriter saves snapshots to persistent file storage.
type FileWriter interface {
	Save(ctx context.Context, snapshot *models.Snapshot) error
}

// FileReader reads snapshots back from persistent file storage.
type FileReader interface {
	List(ctx context.Context) ([]*models.Snapshot, error)
}

// CurrentWriter saves snapshots into the current in-memory store.
type CurrentWriter interface {
	Save(ctx context.Context, snapshot *models.Snapshot) error
}

// CurrentReader reads snapshots from the current in-memory store.
type CurrentReader interface {
	List(ctx context.Context) ([]*models.Snapshot, error)
}

// SnapshotWorker periodically flushes in-memory snapshots to a file and
// optionally restores the file contents into memory on start. With a nil
// ticker the flush happens only once, on shutdown.
type SnapshotWorker struct {
	restore       bool
	storeTicker   *time.Ticker
	currentReader CurrentReader
	currentWriter CurrentWriter
	fileReader    FileReader
	fileWriter    FileWriter
}

// NewSnapshotWorker creates a new SnapshotWorker.
func NewSnapshotWorker(
	restore bool,
	storeTicker *time.Ticker,
	currentReader CurrentReader,
	currentWriter CurrentWriter,
	fileReader FileReader,
	fileWriter FileWriter,
) *SnapshotWorker {
	return &SnapshotWorker{
		restore:       restore,
		storeTicker:   storeTicker,
		currentReader: currentReader,
		currentWriter: currentWriter,
		fileReader:    fileReader,
		fileWriter:    fileWriter,
	}
}

// Start runs the worker until the context is done. A final flush runs on
// shutdown so the file always holds the latest snapshots.
func (w *SnapshotWorker) Start(ctx context.Context) error {
	if w.restore {
		saved, err := w.fileReader.List(ctx)
		if err != nil {
			return err
		}
		for _, snapshot := range saved {
			if err := w.currentWriter.Save(ctx, snapshot); err != nil {
				return err
			}
		}
	}

	if w.storeTicker == nil {
		<-ctx.Done()
		return w.flush(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return w.flush(ctx)
		case <-w.storeTicker.C:
			if err := w.flush(ctx); err != nil {
				return err
			}
		}
	}
}

// flush writes every current snapshot to the file.
func (w *SnapshotWorker) flush(ctx context.Context) error {
	snapshots, err := w.currentReader.List(ctx)
	if err != nil {
		return err
	}
	for _, snapshot := range snapshots {
		if err := w.fileWriter.Save(ctx, snapshot); err != nil {
			return err
		}
	}
	return nil
}
