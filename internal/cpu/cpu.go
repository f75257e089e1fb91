// Package cpu publishes the process-wide instruction-set tier used to
// select conversion kernels.
//
// Detect is idempotent and safe to call from any number of goroutines:
// the underlying probe's result is memoised behind an atomic so the
// steady-state cost of every later call is a single acquire load.
// Concurrent first-callers may each run the probe,
// but the probe is a pure function of the host, so every racer computes
// and publishes the same value.
package cpu

import "sync/atomic"

// Tier identifies the instruction-set family selected for this host.
type Tier int32

const (
	// Scalar is the reference tier: portable Go with no vector
	// instructions. Always a valid answer on every target.
	Scalar Tier = iota
	// Narrow is the 128-bit vector tier (SSSE3 on amd64, NEON on arm64).
	Narrow
	// Wide is the 256-bit integer-vector tier (AVX2 on amd64).
	Wide
)

func (t Tier) String() string {
	switch t {
	case Wide:
		return "wide"
	case Narrow:
		return "narrow"
	default:
		return "scalar"
	}
}

// unset marks the cache as not-yet-populated. Tier's zero value
// (Scalar) is a legitimate result, so the cache can't use 0 as its
// sentinel; unset is biased below Scalar instead.
const unset int32 = -1

var cached atomic.Int32

func init() {
	cached.Store(unset)
}

// Detect returns the highest instruction-set tier available on the
// running host, probing and memoising it on first call. Every call
// after the first observes the cached value with an atomic load and
// does no probing work.
func Detect() Tier {
	if v := cached.Load(); v != unset {
		return Tier(v)
	}
	t := detect()
	cached.Store(int32(t))
	return t
}
