package address

import (
	"errors"
	"strings"
)

// Supported scheme constants.
const (
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
)

// ErrUnsupportedScheme is returned when an address uses an unknown scheme.
var ErrUnsupportedScheme = errors.New("unsupported address scheme")

// Address holds the scheme and the bare network address.
type Address struct {
	Scheme  string
	Address string
}

// New splits an input address into scheme and host part. The scheme defaults
// to "http" when none is given.
func New(input string) Address {
	scheme := SchemeHTTP
	addr := input

	for _, s := range []string{SchemeHTTP, SchemeHTTPS} {
		if strings.HasPrefix(addr, s+"://") {
			scheme = s
			addr = strings.TrimPrefix(addr, s+"://")
			break
		}
	}

	return Address{Scheme: scheme, Address: addr}
}

// String reassembles the full address with its scheme.
func (a Address) String() string {
	return a.Scheme + "://" + a.Address
}
