// Package history keeps the last observed cumulative counters per
// device+subject key so that instantaneous rates can be derived from
// successive samples of monotonically increasing counters.
package history

import (
	"sync"
	"time"
)

// Frame rate derivation constants.
const (
	// FallbackFPS is emitted when no stable rate can be computed: on the
	// first observation of a key, or when the elapsed time since the
	// previous sample is too short for a meaningful quotient.
	FallbackFPS = 60.0

	// minFrameInterval is the minimum elapsed time between two frame
	// counter samples required to compute a rate.
	minFrameInterval = 100 * time.Millisecond
)

// frameSample is the last observed frame counter for one key.
type frameSample struct {
	totalFrames int64
	timestamp   int64 // unix milliseconds
}

// trafficSample is the last observed byte counters for one key.
type trafficSample struct {
	rxBytes   int64
	txBytes   int64
	timestamp int64 // unix milliseconds
}

// Store holds per-key counter history behind a single mutex. Entries are
// overwritten on every observation and only removed by Prune. The zero
// value is not usable; construct with NewStore and share by reference.
type Store struct {
	mu      sync.Mutex
	frames  map[string]frameSample
	traffic map[string]trafficSample
	now     func() time.Time
}

// Opt configures a Store.
type Opt func(*Store)

// WithClock overrides the time source, used by tests to replay sampling
// scenarios deterministically.
func WithClock(now func() time.Time) Opt {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore creates an empty history store.
func NewStore(opts ...Opt) *Store {
	s := &Store{
		frames:  make(map[string]frameSample),
		traffic: make(map[string]trafficSample),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FrameRate derives the instantaneous frame rate for the given device and
// package from the current cumulative frame counter. The first observation
// of a key and samples closer together than 100ms yield FallbackFPS. A
// counter reset between samples yields 0, never a negative rate. The stored
// sample is overwritten on every call, including fallback calls.
func (s *Store) FrameRate(deviceID, pkg string, totalFrames int64) float64 {
	now := s.now().UnixMilli()
	key := deviceID + ":" + pkg

	s.mu.Lock()
	defer s.mu.Unlock()

	fps := FallbackFPS
	if prev, ok := s.frames[key]; ok {
		elapsed := time.Duration(now-prev.timestamp) * time.Millisecond
		if elapsed > minFrameInterval {
			delta := totalFrames - prev.totalFrames
			if delta < 0 {
				delta = 0
			}
			fps = float64(delta) / elapsed.Seconds()
		}
	}

	s.frames[key] = frameSample{totalFrames: totalFrames, timestamp: now}
	return fps
}

// TrafficRate derives per-direction throughput in bytes per second for the
// given device and process from the current cumulative byte counters. The
// first observation of a key returns ok=false and no rates. The elapsed
// time is floored at 1ms to guard the denominator; counter decreases
// saturate at zero. The stored sample is overwritten on every call.
func (s *Store) TrafficRate(deviceID, pid string, rxBytes, txBytes int64) (rxBps, txBps float64, ok bool) {
	now := s.now().UnixMilli()
	key := deviceID + ":" + pid

	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, found := s.traffic[key]; found {
		elapsedMs := now - prev.timestamp
		if elapsedMs < 1 {
			elapsedMs = 1
		}
		rxDelta := rxBytes - prev.rxBytes
		if rxDelta < 0 {
			rxDelta = 0
		}
		txDelta := txBytes - prev.txBytes
		if txDelta < 0 {
			txDelta = 0
		}
		rxBps = float64(rxDelta) * 1000.0 / float64(elapsedMs)
		txBps = float64(txDelta) * 1000.0 / float64(elapsedMs)
		ok = true
	}

	s.traffic[key] = trafficSample{rxBytes: rxBytes, txBytes: txBytes, timestamp: now}
	return rxBps, txBps, ok
}

// Prune removes entries not updated within maxAge and reports how many were
// dropped. Long-lived agents call this periodically so keys of disconnected
// devices and dead processes do not accumulate forever.
func (s *Store) Prune(maxAge time.Duration) int {
	cutoff := s.now().Add(-maxAge).UnixMilli()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, sample := range s.frames {
		if sample.timestamp < cutoff {
			delete(s.frames, key)
			removed++
		}
	}
	for key, sample := range s.traffic {
		if sample.timestamp < cutoff {
			delete(s.traffic, key)
			removed++
		}
	}
	return removed
}
