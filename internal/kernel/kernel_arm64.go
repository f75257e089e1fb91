//go:build arm64

package kernel

// arm64 only has one real vector width (128-bit NEON, guaranteed by
// the ABI), so there is no separate wide tier here: Wide is always an
// alias of Narrow. Only swap4 and fillAlpha4 get NEON bodies — both
// are lane-wise dword operations that map directly onto VSHL/VUSHR/
// VAND/VORR on a .S4 arrangement. The remaining operations
// (swap3, the 3<->4 bpp conversions, gray expansion) would need
// genuine byte-level table lookups (NEON's TBL) or de-interleaving
// loads (VLD3/VST3) to vectorize safely, and this package sticks to
// scalar for those rather than ship an unverified encoding.
const neonBlockPixels = 4

func init() {
	Narrow = Set{
		Swap4:          swap4NEON,
		Swap3:          swap3Scalar,
		Expand3To4:     expand3To4Scalar,
		Expand3SwapTo4: expand3SwapTo4Scalar,
		Strip4To3:      strip4To3Scalar,
		Strip4SwapTo3:  strip4SwapTo3Scalar,
		GrayTo4:        grayTo4Scalar,
		GrayAlphaTo4:   grayAlphaTo4Scalar,
		FillAlpha4:     fillAlpha4NEON,
	}
	Wide = Narrow
}

//go:noescape
func swap4NEONBlock(dst, src []byte, blocks int)

//go:noescape
func fillAlpha4NEONBlock(buf []byte, blocks int)

func swap4NEON(dst, src []byte, n int) {
	blocks := n / neonBlockPixels
	if blocks > 0 {
		swap4NEONBlock(dst, src, blocks)
	}
	done := blocks * neonBlockPixels
	if done < n {
		swap4Scalar(dst[done*4:], src[done*4:], n-done)
	}
}

func fillAlpha4NEON(buf []byte, n int) {
	blocks := n / neonBlockPixels
	if blocks > 0 {
		fillAlpha4NEONBlock(buf, blocks)
	}
	done := blocks * neonBlockPixels
	if done < n {
		fillAlpha4Scalar(buf[done*4:], n-done)
	}
}
