package http

import (
	"net"
	"net/http"
)

// TrustedSubnetMiddleware restricts access to clients whose X-Real-IP header
// falls inside the given CIDR. An empty CIDR disables the check. A malformed
// CIDR makes every request fail with 500 so the misconfiguration is visible.
func TrustedSubnetMiddleware(trustedSubnet string) func(http.Handler) http.Handler {
	if trustedSubnet == "" {
		return func(next http.Handler) http.Handler { return next }
	}

	_, trustedNet, err := net.ParseCIDR(trustedSubnet)
	if err != nil {
		return func(http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			})
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := net.ParseIP(r.Header.Get("X-Real-IP"))
			if ip == nil || !trustedNet.Contains(ip) {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
