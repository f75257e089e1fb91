//go:build amd64

package cpu

import cpufeature "golang.org/x/sys/cpu"

// detect inspects CPU feature flags. AVX2 selects the wide tier.
// SSSE3 — the instruction set this library's narrow-tier byte
// shuffles are written against, one step above the amd64 ABI's
// guaranteed SSE2 floor — selects the narrow tier. Its absence
// (pre-2006 silicon) falls back to scalar.
func detect() Tier {
	if cpufeature.X86.HasAVX2 {
		return Wide
	}
	if cpufeature.X86.HasSSSE3 {
		return Narrow
	}
	return Scalar
}
