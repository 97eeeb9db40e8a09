package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/adbperf/internal/models"
)

// Saver stores snapshots.
type Saver interface {
	Save(ctx context.Context, snapshot *models.Snapshot) error
}

// Getter retrieves the latest snapshot for a key.
type Getter interface {
	Get(ctx context.Context, key models.SnapshotKey) (*models.Snapshot, error)
}

// Lister lists the latest snapshot of every key.
type Lister interface {
	List(ctx context.Context) ([]*models.Snapshot, error)
}

// NewSnapshotSaveBodyHandler saves a single snapshot.
//
// @Summary Save a snapshot
// @Description Stores one telemetry snapshot via POST request with JSON body
// @Tags snapshots
// @Accept json
// @Produce json
// @Param snapshot body models.Snapshot true "Snapshot JSON body"
// @Success 200 "OK"
// @Failure 400 "Bad Request"
// @Failure 500 "Internal Server Error"
// @Router /snapshots/ [post]
func NewSnapshotSaveBodyHandler(saver Saver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}

		var snapshot models.Snapshot
		dec := json.NewDecoder(r.Body)
		defer r.Body.Close()

		if err := dec.Decode(&snapshot); err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}

		if snapshot.DeviceID == "" || snapshot.Package == "" {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}

		if err := saver.Save(r.Context(), &snapshot); err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

// NewSnapshotSaveBatchHandler saves a batch of snapshots.
//
// @Summary Save a batch of snapshots
// @Description Stores several telemetry snapshots via POST request with a JSON array body
// @Tags snapshots
// @Accept json
// @Produce json
// @Param snapshots body []models.Snapshot true "Snapshot JSON array"
// @Success 200 "OK"
// @Failure 400 "Bad Request"
// @Failure 500 "Internal Server Error"
// @Router /snapshots/batch/ [post]
func NewSnapshotSaveBatchHandler(saver Saver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}

		var snapshots []models.Snapshot
		dec := json.NewDecoder(r.Body)
		defer r.Body.Close()

		if err := dec.Decode(&snapshots); err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}

		for i := range snapshots {
			if snapshots[i].DeviceID == "" || snapshots[i].Package == "" {
				http.Error(w, "Bad request", http.StatusBadRequest)
				return
			}
		}

		for i := range snapshots {
			if err := saver.Save(r.Context(), &snapshots[i]); err != nil {
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}
		}

		w.WriteHeader(http.StatusOK)
	}
}

// NewSnapshotGetPathHandler retrieves the latest snapshot for a device and
// package.
//
// @Summary Get snapshot by device and package
// @Description Retrieves the latest stored snapshot for the given device serial and package name
// @Tags snapshots
// @Accept plain
// @Produce json
// @Param device path string true "Device serial"
// @Param package path string true "Package name"
// @Success 200 {object} models.Snapshot "Latest snapshot"
// @Failure 404 "Not Found"
// @Failure 500 "Internal Server Error"
// @Router /snapshots/{device}/{package} [get]
func NewSnapshotGetPathHandler(getter Getter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		deviceID := chi.URLParam(r, "device")
		pkg := chi.URLParam(r, "package")

		if strings.TrimSpace(deviceID) == "" || strings.TrimSpace(pkg) == "" {
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}

		snapshot, err := getter.Get(ctx, models.SnapshotKey{DeviceID: deviceID, Package: pkg})
		if err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		if snapshot == nil {
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		json.NewEncoder(w).Encode(snapshot)
	}
}

// NewSnapshotListHandler lists the latest snapshot of every tracked
// device and package pair.
//
// @Summary List snapshots
// @Description Returns the latest snapshot per (device, package) key as a JSON array
// @Tags snapshots
// @Accept plain
// @Produce json
// @Success 200 {array} models.Snapshot "Snapshots"
// @Failure 500 "Internal Server Error"
// @Router /snapshots/ [get]
func NewSnapshotListHandler(lister Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		snapshots, err := lister.List(ctx)
		if err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		if snapshots == nil {
			snapshots = []*models.Snapshot{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		json.NewEncoder(w).Encode(snapshots)
	}
}
