package http

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"

	"github.com/go-resty/resty/v2"

	"github.com/sbilibin2017/adbperf/internal/models"
)

// Hasher computes a signature over a request body.
type Hasher interface {
	Hash(data []byte) string
}

// SnapshotHTTPFacade reports telemetry snapshots to the dashboard server
// over HTTP.
type SnapshotHTTPFacade struct {
	client     *resty.Client
	hasher     Hasher
	hashHeader string
}

// Opt configures a SnapshotHTTPFacade.
type Opt func(*SnapshotHTTPFacade)

// WithHasher enables body signing: the hash of the uncompressed JSON
// payload is sent in the given header.
func WithHasher(hasher Hasher, header string) Opt {
	return func(f *SnapshotHTTPFacade) {
		f.hasher = hasher
		f.hashHeader = header
	}
}

// NewSnapshotHTTPFacade creates a new SnapshotHTTPFacade with the given
// REST client.
func NewSnapshotHTTPFacade(client *resty.Client, opts ...Opt) *SnapshotHTTPFacade {
	f := &SnapshotHTTPFacade{client: client}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Report sends a batch of snapshots as gzip-compressed JSON via HTTP POST
// to the "/snapshots/batch/" endpoint.
func (f *SnapshotHTTPFacade) Report(ctx context.Context, snapshots []*models.Snapshot) error {
	batch := make([]*models.Snapshot, 0, len(snapshots))
	for _, s := range snapshots {
		if s == nil {
			continue
		}
		batch = append(batch, s)
	}
	if len(batch) == 0 {
		return nil
	}

	jsonData, err := json.Marshal(batch)
	if err != nil {
		return err
	}

	compressedData, err := compressGzip(jsonData)
	if err != nil {
		return err
	}

	req := f.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Content-Encoding", "gzip").
		SetBody(compressedData)

	if f.hasher != nil {
		req.SetHeader(f.hashHeader, f.hasher.Hash(jsonData))
	}

	_, err = req.Post("/snapshots/batch/")
	return err
}

// compressGzip compresses input bytes using gzip.
func compressGzip(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	gzw := gzip.NewWriter(&buf)
	_, err := gzw.Write(data)
	if err != nil {
		_ = gzw.Close()
		return nil, err
	}
	err = gzw.Close()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
