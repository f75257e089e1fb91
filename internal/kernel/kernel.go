// Package kernel implements the tiered byte-shuffle routines that back
// every public pixconv operation: a scalar reference kernel for each
// operation, plus SSSE3/AVX2 (amd64) and NEON (arm64) vector bodies
// where a fixed shuffle sequence beats the autovectoriser. Dispatch
// between tiers happens once per operation set, never per pixel; see
// ForTier.
package kernel

import "github.com/deepteams/pixfmt/internal/cpu"

// CopyFunc transforms n pixels from src into dst. dst and src must
// each be large enough to hold n pixels in their respective layouts;
// for in-place operations (currently only swap3/swap4 are called this
// way) dst and src may be the same slice over the same region.
type CopyFunc func(dst, src []byte, n int)

// FillFunc mutates n pixels of buf in place.
type FillFunc func(buf []byte, n int)

// Set collects one implementation of every operation in spec §4.2 at
// a single instruction-set tier. There is exactly one kernel per row
// of that table — swap4 serves both rgba_to_bgra and bgra_to_rgba,
// gray_to_4 serves both Gray-to-RGBA and Gray-to-BGRA, and so on — the
// dispatch layer is responsible for routing aliases to the same Set
// field rather than this package duplicating a kernel per alias.
type Set struct {
	Swap4          CopyFunc
	Swap3          CopyFunc
	Expand3To4     CopyFunc
	Expand3SwapTo4 CopyFunc
	Strip4To3      CopyFunc
	Strip4SwapTo3  CopyFunc
	GrayTo4        CopyFunc
	GrayAlphaTo4   CopyFunc
	FillAlpha4     FillFunc
}

// Scalar is the byte-exact reference tier. It is also the tail
// handler for the SSSE3 and NEON kernels' non-vector-multiple
// remainder (the AVX2 kernels reach it through their SSSE3
// counterparts), and the bulk implementation on any host that reports
// cpu.Scalar.
var Scalar = Set{
	Swap4:          swap4Scalar,
	Swap3:          swap3Scalar,
	Expand3To4:     expand3To4Scalar,
	Expand3SwapTo4: expand3SwapTo4Scalar,
	Strip4To3:      strip4To3Scalar,
	Strip4SwapTo3:  strip4SwapTo3Scalar,
	GrayTo4:        grayTo4Scalar,
	GrayAlphaTo4:   grayAlphaTo4Scalar,
	FillAlpha4:     fillAlpha4Scalar,
}

// Narrow and Wide default to the scalar tier. Architecture-specific
// files (kernel_amd64.go, kernel_arm64.go) overwrite these package
// variables from their init() functions with real vector kernels,
// falling back to a per-operation scalar entry for every operation an
// architecture has no vector body for (on arm64, everything except
// swap4 and fillAlpha4, including the in-place swap3). Variable
// initializers across an entire package always run before any of that
// package's init() functions, regardless of build tags or file name
// order, so these two assignments are guaranteed to happen first.
var (
	Narrow = Scalar
	Wide   = Scalar
)

// ForTier returns the kernel Set for t. Unknown tier values fall back
// to Scalar, which is always correct.
func ForTier(t cpu.Tier) Set {
	switch t {
	case cpu.Wide:
		return Wide
	case cpu.Narrow:
		return Narrow
	default:
		return Scalar
	}
}
