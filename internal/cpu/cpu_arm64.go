//go:build arm64

package cpu

// detect never inspects feature flags on arm64: NEON is part of the
// mandatory base arm64 architecture (unlike amd64, where AVX2/SSSE3
// are optional extensions), so the ABI guarantees the narrow tier's
// kernels are safe to call without a runtime probe. There is no wide
// (256-bit) tier on this architecture.
func detect() Tier {
	return Narrow
}
