//go:build !amd64 && !arm64

package cpu

// detect reports scalar on every target without a hand-written
// kernel tier, including wasm: the gc compiler's wasm backend has no
// code generation path for the WASM SIMD128 proposal, so there is no
// assembly to dispatch to there, same as 386, arm, riscv64, and so on.
func detect() Tier {
	return Scalar
}
