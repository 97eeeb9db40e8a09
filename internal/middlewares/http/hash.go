package http

import (
	"bytes"
	"io"
	"net/http"
)

// Hasher computes a hash of a byte slice.
type Hasher interface {
	Hash(data []byte) string
}

// HashMiddleware verifies the request body hash against the value of the
// given header and signs the response body with the same header. A request
// without the header is passed through unverified. With a nil hasher the
// middleware is a no-op.
func HashMiddleware(hasher Hasher, header string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if hasher == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			r.Body.Close()
			r.Body = io.NopCloser(bytes.NewReader(body))

			if received := r.Header.Get(header); received != "" {
				if hasher.Hash(body) != received {
					w.WriteHeader(http.StatusBadRequest)
					return
				}
			}

			rw := &bufferedResponseWriter{ResponseWriter: w}
			next.ServeHTTP(rw, r)

			responseBody := rw.buf.Bytes()
			w.Header().Set(header, hasher.Hash(responseBody))

			if rw.statusCode != 0 {
				w.WriteHeader(rw.statusCode)
			}
			w.Write(responseBody)
		})
	}
}

// bufferedResponseWriter delays both the status code and the body so the
// response hash header can still be set after the handler has run.
type bufferedResponseWriter struct {
	http.ResponseWriter
	buf        bytes.Buffer
	statusCode int
}

func (w *bufferedResponseWriter) WriteHeader(code int) {
	if w.statusCode == 0 {
		w.statusCode = code
	}
}

func (w *bufferedResponseWriter) Write(b []byte) (int, error) {
	return w.buf.Write(b)
}
