// Package pixconv converts byte buffers between RGB, BGR, RGBA, BGRA,
// Gray, and GrayAlpha pixel layouts.
//
// Every operation dispatches to a runtime-selected instruction-set
// tier (wide SIMD, narrow SIMD, or scalar) chosen once per process and
// shared by every call; see internal/cpu and internal/kernel for that
// machinery.
//
// Every public function validates its buffers up front and returns a
// *SizeError without touching either buffer if validation fails.
// width == 0 or height == 0 always succeeds as a no-op.
//
// There is no colour-space conversion, gamma correction, or alpha
// premultiplication here — only channel reordering, channel-count
// conversion, and alpha filling.
//
// Basic usage:
//
//	err := pixconv.RGBAToBGRAInplace(buf)
//
//	err := pixconv.RGBToRGBAStrided(dst, src, width, height, dstStride, srcStride)
package pixconv
