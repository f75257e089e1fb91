//go:build amd64

package kernel

import "github.com/deepteams/pixfmt/internal/cpu"

// Each *Block function below is a raw vector body: it processes
// exactly `blocks` whole iterations with no remainder handling and no
// bounds checking of its own (that is the Go wrapper's job, per spec
// §4.2's bulk/tail discipline). The wrappers here compute how many
// whole blocks fit in n pixels and hand that count to the assembly
// body. An SSSE3 wrapper finishes the remainder with the scalar
// kernel. An AVX2 wrapper does not call the scalar kernel directly:
// it hands the remainder to the matching SSSE3 wrapper, which runs
// any whole 4-pixel blocks left and passes the rest to scalar.
//
// swap3's wrapper additionally reserves a little extra tail: its
// vector body reads 16 bytes per 4-pixel (12-byte) block to keep the
// shuffle a single aligned-agnostic load, so the final vector block
// must leave at least 4 bytes of valid buffer past its own 12-byte
// window. Every other operation's loads and stores land on exact
// multiples of the block size and need no such reservation.

const ssse3BlockPixels = 4
const avx2BlockPixels = 8

func init() {
	Narrow = Set{
		Swap4:          swap4SSSE3,
		Swap3:          swap3SSSE3,
		Expand3To4:     expand3To4SSSE3,
		Expand3SwapTo4: expand3SwapTo4SSSE3,
		Strip4To3:      strip4To3SSSE3,
		Strip4SwapTo3:  strip4SwapTo3SSSE3,
		GrayTo4:        grayTo4SSSE3,
		GrayAlphaTo4:   grayAlphaTo4SSSE3,
		FillAlpha4:     fillAlpha4SSSE3,
	}

	if cpu.Detect() == cpu.Wide {
		Wide = Set{
			Swap4:          swap4AVX2,
			Swap3:          swap3AVX2,
			Expand3To4:     expand3To4AVX2,
			Expand3SwapTo4: expand3SwapTo4AVX2,
			Strip4To3:      strip4To3AVX2,
			Strip4SwapTo3:  strip4SwapTo3AVX2,
			GrayTo4:        grayTo4AVX2,
			GrayAlphaTo4:   grayAlphaTo4AVX2,
			FillAlpha4:     fillAlpha4AVX2,
		}
	} else {
		Wide = Narrow
	}
}

// --- SSSE3 vector bodies (declared here, implemented in kernel_ssse3_amd64.s) ---

//go:noescape
func swap4SSSE3Block(dst, src []byte, blocks int)

//go:noescape
func swap3SSSE3Block(dst, src []byte, blocks int)

//go:noescape
func expand3To4SSSE3Block(dst, src []byte, blocks int)

//go:noescape
func expand3SwapTo4SSSE3Block(dst, src []byte, blocks int)

//go:noescape
func strip4To3SSSE3Block(dst, src []byte, blocks int)

//go:noescape
func strip4SwapTo3SSSE3Block(dst, src []byte, blocks int)

//go:noescape
func grayTo4SSSE3Block(dst, src []byte, blocks int)

//go:noescape
func grayAlphaTo4SSSE3Block(dst, src []byte, blocks int)

//go:noescape
func fillAlpha4SSSE3Block(buf []byte, blocks int)

// --- AVX2 vector bodies (declared here, implemented in kernel_avx2_amd64.s) ---

//go:noescape
func swap4AVX2Block(dst, src []byte, blocks int)

//go:noescape
func swap3AVX2Block(dst, src []byte, blocks int)

//go:noescape
func expand3To4AVX2Block(dst, src []byte, blocks int)

//go:noescape
func expand3SwapTo4AVX2Block(dst, src []byte, blocks int)

//go:noescape
func strip4To3AVX2Block(dst, src []byte, blocks int)

//go:noescape
func strip4SwapTo3AVX2Block(dst, src []byte, blocks int)

//go:noescape
func grayTo4AVX2Block(dst, src []byte, blocks int)

//go:noescape
func grayAlphaTo4AVX2Block(dst, src []byte, blocks int)

//go:noescape
func fillAlpha4AVX2Block(buf []byte, blocks int)

// --- SSSE3 wrappers ---

func swap4SSSE3(dst, src []byte, n int) {
	blocks := n / ssse3BlockPixels
	if blocks > 0 {
		swap4SSSE3Block(dst, src, blocks)
	}
	done := blocks * ssse3BlockPixels
	if done < n {
		swap4Scalar(dst[done*4:], src[done*4:], n-done)
	}
}

func swap3SSSE3(dst, src []byte, n int) {
	blocks := n / ssse3BlockPixels
	if blocks > 0 && n-blocks*ssse3BlockPixels < 2 {
		blocks-- // keep 4 bytes of read slack past the last vector block
	}
	if blocks > 0 {
		swap3SSSE3Block(dst, src, blocks)
	}
	done := blocks * ssse3BlockPixels
	if done < n {
		swap3Scalar(dst[done*3:], src[done*3:], n-done)
	}
}

func expand3To4SSSE3(dst, src []byte, n int) {
	blocks := n / ssse3BlockPixels
	if blocks > 0 {
		expand3To4SSSE3Block(dst, src, blocks)
	}
	done := blocks * ssse3BlockPixels
	if done < n {
		expand3To4Scalar(dst[done*4:], src[done*3:], n-done)
	}
}

func expand3SwapTo4SSSE3(dst, src []byte, n int) {
	blocks := n / ssse3BlockPixels
	if blocks > 0 {
		expand3SwapTo4SSSE3Block(dst, src, blocks)
	}
	done := blocks * ssse3BlockPixels
	if done < n {
		expand3SwapTo4Scalar(dst[done*4:], src[done*3:], n-done)
	}
}

func strip4To3SSSE3(dst, src []byte, n int) {
	blocks := n / ssse3BlockPixels
	if blocks > 0 {
		strip4To3SSSE3Block(dst, src, blocks)
	}
	done := blocks * ssse3BlockPixels
	if done < n {
		strip4To3Scalar(dst[done*3:], src[done*4:], n-done)
	}
}

func strip4SwapTo3SSSE3(dst, src []byte, n int) {
	blocks := n / ssse3BlockPixels
	if blocks > 0 {
		strip4SwapTo3SSSE3Block(dst, src, blocks)
	}
	done := blocks * ssse3BlockPixels
	if done < n {
		strip4SwapTo3Scalar(dst[done*3:], src[done*4:], n-done)
	}
}

func grayTo4SSSE3(dst, src []byte, n int) {
	blocks := n / ssse3BlockPixels
	if blocks > 0 {
		grayTo4SSSE3Block(dst, src, blocks)
	}
	done := blocks * ssse3BlockPixels
	if done < n {
		grayTo4Scalar(dst[done*4:], src[done:], n-done)
	}
}

func grayAlphaTo4SSSE3(dst, src []byte, n int) {
	blocks := n / ssse3BlockPixels
	if blocks > 0 {
		grayAlphaTo4SSSE3Block(dst, src, blocks)
	}
	done := blocks * ssse3BlockPixels
	if done < n {
		grayAlphaTo4Scalar(dst[done*4:], src[done*2:], n-done)
	}
}

func fillAlpha4SSSE3(buf []byte, n int) {
	blocks := n / ssse3BlockPixels
	if blocks > 0 {
		fillAlpha4SSSE3Block(buf, blocks)
	}
	done := blocks * ssse3BlockPixels
	if done < n {
		fillAlpha4Scalar(buf[done*4:], n-done)
	}
}

// --- AVX2 wrappers ---

func swap4AVX2(dst, src []byte, n int) {
	blocks := n / avx2BlockPixels
	if blocks > 0 {
		swap4AVX2Block(dst, src, blocks)
	}
	done := blocks * avx2BlockPixels
	if done < n {
		swap4SSSE3(dst[done*4:], src[done*4:], n-done)
	}
}

func swap3AVX2(dst, src []byte, n int) {
	blocks := n / avx2BlockPixels
	if blocks > 0 && n-blocks*avx2BlockPixels < 3 {
		blocks-- // keep at least 3 pixels (9 bytes) of read slack past the last vector block
	}
	if blocks > 0 {
		swap3AVX2Block(dst, src, blocks)
	}
	done := blocks * avx2BlockPixels
	if done < n {
		swap3SSSE3(dst[done*3:], src[done*3:], n-done)
	}
}

func expand3To4AVX2(dst, src []byte, n int) {
	blocks := n / avx2BlockPixels
	if blocks > 0 {
		expand3To4AVX2Block(dst, src, blocks)
	}
	done := blocks * avx2BlockPixels
	if done < n {
		expand3To4SSSE3(dst[done*4:], src[done*3:], n-done)
	}
}

func expand3SwapTo4AVX2(dst, src []byte, n int) {
	blocks := n / avx2BlockPixels
	if blocks > 0 {
		expand3SwapTo4AVX2Block(dst, src, blocks)
	}
	done := blocks * avx2BlockPixels
	if done < n {
		expand3SwapTo4SSSE3(dst[done*4:], src[done*3:], n-done)
	}
}

func strip4To3AVX2(dst, src []byte, n int) {
	blocks := n / avx2BlockPixels
	if blocks > 0 {
		strip4To3AVX2Block(dst, src, blocks)
	}
	done := blocks * avx2BlockPixels
	if done < n {
		strip4To3SSSE3(dst[done*3:], src[done*4:], n-done)
	}
}

func strip4SwapTo3AVX2(dst, src []byte, n int) {
	blocks := n / avx2BlockPixels
	if blocks > 0 {
		strip4SwapTo3AVX2Block(dst, src, blocks)
	}
	done := blocks * avx2BlockPixels
	if done < n {
		strip4SwapTo3SSSE3(dst[done*3:], src[done*4:], n-done)
	}
}

func grayTo4AVX2(dst, src []byte, n int) {
	blocks := n / avx2BlockPixels
	if blocks > 0 {
		grayTo4AVX2Block(dst, src, blocks)
	}
	done := blocks * avx2BlockPixels
	if done < n {
		grayTo4SSSE3(dst[done*4:], src[done:], n-done)
	}
}

func grayAlphaTo4AVX2(dst, src []byte, n int) {
	blocks := n / avx2BlockPixels
	if blocks > 0 {
		grayAlphaTo4AVX2Block(dst, src, blocks)
	}
	done := blocks * avx2BlockPixels
	if done < n {
		grayAlphaTo4SSSE3(dst[done*4:], src[done*2:], n-done)
	}
}

func fillAlpha4AVX2(buf []byte, n int) {
	blocks := n / avx2BlockPixels
	if blocks > 0 {
		fillAlpha4AVX2Block(buf, blocks)
	}
	done := blocks * avx2BlockPixels
	if done < n {
		fillAlpha4SSSE3(buf[done*4:], n-done)
	}
}
