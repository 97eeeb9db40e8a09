package http

import (
	"net/http"

	"github.com/jmoiron/sqlx"
)

// NewDBPingHandler reports whether the snapshot database is reachable.
func NewDBPingHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}
