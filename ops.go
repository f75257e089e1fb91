package pixconv

import (
	"github.com/deepteams/pixfmt/internal/cpu"
	"github.com/deepteams/pixfmt/internal/kernel"
)

func tier() kernel.Set {
	return kernel.ForTier(cpu.Detect())
}

// --- RGBA <-> BGRA (swap4) ---

// RGBAToBGRAInplace swaps the red and blue channels of buf in place.
func RGBAToBGRAInplace(buf []byte) error {
	return inplaceContiguous(buf, bppRGBA, tier().Swap4)
}

// BGRAToRGBAInplace is RGBAToBGRAInplace under its other name: the
// swap is its own inverse, so both names dispatch to the same kernel.
func BGRAToRGBAInplace(buf []byte) error {
	return inplaceContiguous(buf, bppRGBA, tier().Swap4)
}

// RGBAToBGRA writes the red/blue swap of src into dst.
func RGBAToBGRA(dst, src []byte) error {
	return copyContiguous(dst, src, bppRGBA, bppRGBA, tier().Swap4)
}

// BGRAToRGBA is RGBAToBGRA under its other name.
func BGRAToRGBA(dst, src []byte) error {
	return copyContiguous(dst, src, bppRGBA, bppRGBA, tier().Swap4)
}

// RGBAToBGRAStrided is the strided form of RGBAToBGRAInplace's copy
// counterpart: src and dst may have independent strides.
func RGBAToBGRAStrided(dst, src []byte, width, height, dstStride, srcStride int) error {
	return copyStrided(dst, src, width, height, dstStride, srcStride, bppRGBA, bppRGBA, tier().Swap4)
}

// BGRAToRGBAStrided is RGBAToBGRAStrided under its other name.
func BGRAToRGBAStrided(dst, src []byte, width, height, dstStride, srcStride int) error {
	return copyStrided(dst, src, width, height, dstStride, srcStride, bppRGBA, bppRGBA, tier().Swap4)
}

// RGBAToBGRAInplaceStrided swaps red and blue in place, row by row,
// leaving padding bytes in [width*4, stride) untouched.
func RGBAToBGRAInplaceStrided(buf []byte, width, height, stride int) error {
	return inplaceStrided(buf, width, height, stride, bppRGBA, tier().Swap4)
}

// BGRAToRGBAInplaceStrided is RGBAToBGRAInplaceStrided under its
// other name.
func BGRAToRGBAInplaceStrided(buf []byte, width, height, stride int) error {
	return inplaceStrided(buf, width, height, stride, bppRGBA, tier().Swap4)
}

// --- RGB <-> BGR (swap3) ---

// RGBToBGRInplace swaps the red and blue channels of buf in place.
func RGBToBGRInplace(buf []byte) error {
	return inplaceContiguous(buf, bppRGB, tier().Swap3)
}

// BGRToRGBInplace is RGBToBGRInplace under its other name.
func BGRToRGBInplace(buf []byte) error {
	return inplaceContiguous(buf, bppRGB, tier().Swap3)
}

// RGBToBGR writes the red/blue swap of src into dst.
func RGBToBGR(dst, src []byte) error {
	return copyContiguous(dst, src, bppRGB, bppRGB, tier().Swap3)
}

// BGRToRGB is RGBToBGR under its other name.
func BGRToRGB(dst, src []byte) error {
	return copyContiguous(dst, src, bppRGB, bppRGB, tier().Swap3)
}

// RGBToBGRStrided is the strided form of RGBToBGR.
func RGBToBGRStrided(dst, src []byte, width, height, dstStride, srcStride int) error {
	return copyStrided(dst, src, width, height, dstStride, srcStride, bppRGB, bppRGB, tier().Swap3)
}

// BGRToRGBStrided is RGBToBGRStrided under its other name.
func BGRToRGBStrided(dst, src []byte, width, height, dstStride, srcStride int) error {
	return copyStrided(dst, src, width, height, dstStride, srcStride, bppRGB, bppRGB, tier().Swap3)
}

// RGBToBGRInplaceStrided swaps red and blue in place, row by row.
func RGBToBGRInplaceStrided(buf []byte, width, height, stride int) error {
	return inplaceStrided(buf, width, height, stride, bppRGB, tier().Swap3)
}

// BGRToRGBInplaceStrided is RGBToBGRInplaceStrided under its other name.
func BGRToRGBInplaceStrided(buf []byte, width, height, stride int) error {
	return inplaceStrided(buf, width, height, stride, bppRGB, tier().Swap3)
}

// --- RGB/BGR -> RGBA/BGRA (expand) ---

// RGBToRGBA copies each RGB pixel of src into dst, appending alpha = 255.
func RGBToRGBA(dst, src []byte) error {
	return copyContiguous(dst, src, bppRGB, bppRGBA, tier().Expand3To4)
}

// BGRToBGRA is RGBToRGBA under its other name: neither reorders
// channels, both simply append a 255 alpha byte.
func BGRToBGRA(dst, src []byte) error {
	return copyContiguous(dst, src, bppRGB, bppRGBA, tier().Expand3To4)
}

// RGBToBGRA copies each RGB pixel of src into dst reversed, appending
// alpha = 255.
func RGBToBGRA(dst, src []byte) error {
	return copyContiguous(dst, src, bppRGB, bppRGBA, tier().Expand3SwapTo4)
}

// BGRToRGBA is RGBToBGRA under its other name.
func BGRToRGBA(dst, src []byte) error {
	return copyContiguous(dst, src, bppRGB, bppRGBA, tier().Expand3SwapTo4)
}

// RGBToRGBAStrided is the strided form of RGBToRGBA.
func RGBToRGBAStrided(dst, src []byte, width, height, dstStride, srcStride int) error {
	return copyStrided(dst, src, width, height, dstStride, srcStride, bppRGB, bppRGBA, tier().Expand3To4)
}

// BGRToBGRAStrided is RGBToRGBAStrided under its other name.
func BGRToBGRAStrided(dst, src []byte, width, height, dstStride, srcStride int) error {
	return copyStrided(dst, src, width, height, dstStride, srcStride, bppRGB, bppRGBA, tier().Expand3To4)
}

// RGBToBGRAStrided is the strided form of RGBToBGRA.
func RGBToBGRAStrided(dst, src []byte, width, height, dstStride, srcStride int) error {
	return copyStrided(dst, src, width, height, dstStride, srcStride, bppRGB, bppRGBA, tier().Expand3SwapTo4)
}

// BGRToRGBAStrided is RGBToBGRAStrided under its other name.
func BGRToRGBAStrided(dst, src []byte, width, height, dstStride, srcStride int) error {
	return copyStrided(dst, src, width, height, dstStride, srcStride, bppRGB, bppRGBA, tier().Expand3SwapTo4)
}

// --- RGBA/BGRA -> RGB/BGR (strip) ---

// RGBAToRGB copies the first three bytes of each pixel of src into
// dst, dropping alpha.
func RGBAToRGB(dst, src []byte) error {
	return copyContiguous(dst, src, bppRGBA, bppRGB, tier().Strip4To3)
}

// BGRAToBGR is RGBAToRGB under its other name.
func BGRAToBGR(dst, src []byte) error {
	return copyContiguous(dst, src, bppRGBA, bppRGB, tier().Strip4To3)
}

// RGBAToBGR copies the first three bytes of each pixel of src into
// dst reversed, dropping alpha.
func RGBAToBGR(dst, src []byte) error {
	return copyContiguous(dst, src, bppRGBA, bppRGB, tier().Strip4SwapTo3)
}

// BGRAToRGB is RGBAToBGR under its other name.
func BGRAToRGB(dst, src []byte) error {
	return copyContiguous(dst, src, bppRGBA, bppRGB, tier().Strip4SwapTo3)
}

// RGBAToRGBStrided is the strided form of RGBAToRGB.
func RGBAToRGBStrided(dst, src []byte, width, height, dstStride, srcStride int) error {
	return copyStrided(dst, src, width, height, dstStride, srcStride, bppRGBA, bppRGB, tier().Strip4To3)
}

// BGRAToBGRStrided is RGBAToRGBStrided under its other name.
func BGRAToBGRStrided(dst, src []byte, width, height, dstStride, srcStride int) error {
	return copyStrided(dst, src, width, height, dstStride, srcStride, bppRGBA, bppRGB, tier().Strip4To3)
}

// RGBAToBGRStrided is the strided form of RGBAToBGR.
func RGBAToBGRStrided(dst, src []byte, width, height, dstStride, srcStride int) error {
	return copyStrided(dst, src, width, height, dstStride, srcStride, bppRGBA, bppRGB, tier().Strip4SwapTo3)
}

// BGRAToRGBStrided is RGBAToBGRStrided under its other name.
func BGRAToRGBStrided(dst, src []byte, width, height, dstStride, srcStride int) error {
	return copyStrided(dst, src, width, height, dstStride, srcStride, bppRGBA, bppRGB, tier().Strip4SwapTo3)
}

// --- Gray / GrayAlpha -> RGBA/BGRA ---

// GrayToRGBA broadcasts each gray byte of src into the three colour
// channels of dst, appending alpha = 255. The result is identical for
// an RGBA or BGRA destination, since every colour channel receives
// the same value.
func GrayToRGBA(dst, src []byte) error {
	return copyContiguous(dst, src, bppGray, bppRGBA, tier().GrayTo4)
}

// GrayToBGRA is GrayToRGBA under its other name.
func GrayToBGRA(dst, src []byte) error {
	return copyContiguous(dst, src, bppGray, bppRGBA, tier().GrayTo4)
}

// GrayToRGBAStrided is the strided form of GrayToRGBA.
func GrayToRGBAStrided(dst, src []byte, width, height, dstStride, srcStride int) error {
	return copyStrided(dst, src, width, height, dstStride, srcStride, bppGray, bppRGBA, tier().GrayTo4)
}

// GrayToBGRAStrided is GrayToRGBAStrided under its other name.
func GrayToBGRAStrided(dst, src []byte, width, height, dstStride, srcStride int) error {
	return copyStrided(dst, src, width, height, dstStride, srcStride, bppGray, bppRGBA, tier().GrayTo4)
}

// GrayAlphaToRGBA broadcasts each (g,a) pair of src into (g,g,g,a) in
// dst. The result is identical for an RGBA or BGRA destination.
func GrayAlphaToRGBA(dst, src []byte) error {
	return copyContiguous(dst, src, bppGrayAlpha, bppRGBA, tier().GrayAlphaTo4)
}

// GrayAlphaToBGRA is GrayAlphaToRGBA under its other name.
func GrayAlphaToBGRA(dst, src []byte) error {
	return copyContiguous(dst, src, bppGrayAlpha, bppRGBA, tier().GrayAlphaTo4)
}

// GrayAlphaToRGBAStrided is the strided form of GrayAlphaToRGBA.
func GrayAlphaToRGBAStrided(dst, src []byte, width, height, dstStride, srcStride int) error {
	return copyStrided(dst, src, width, height, dstStride, srcStride, bppGrayAlpha, bppRGBA, tier().GrayAlphaTo4)
}

// GrayAlphaToBGRAStrided is GrayAlphaToRGBAStrided under its other name.
func GrayAlphaToBGRAStrided(dst, src []byte, width, height, dstStride, srcStride int) error {
	return copyStrided(dst, src, width, height, dstStride, srcStride, bppGrayAlpha, bppRGBA, tier().GrayAlphaTo4)
}

// --- fill_alpha_4 ---

// FillAlphaRGBAInplace sets every fourth byte of buf (the alpha
// channel) to 255, leaving the other three bytes of each pixel
// unchanged. The channel order of the other three bytes is
// irrelevant, since only the alpha position is touched; this serves
// both RGBA and BGRA buffers under their respective names.
func FillAlphaRGBAInplace(buf []byte) error {
	return fillContiguous(buf, bppRGBA, tier().FillAlpha4)
}

// FillAlphaBGRAInplace is FillAlphaRGBAInplace under its other name.
func FillAlphaBGRAInplace(buf []byte) error {
	return fillContiguous(buf, bppRGBA, tier().FillAlpha4)
}

// FillAlphaRGBAInplaceStrided is the strided form of
// FillAlphaRGBAInplace.
func FillAlphaRGBAInplaceStrided(buf []byte, width, height, stride int) error {
	return fillStrided(buf, width, height, stride, bppRGBA, tier().FillAlpha4)
}

// FillAlphaBGRAInplaceStrided is FillAlphaRGBAInplaceStrided under
// its other name.
func FillAlphaBGRAInplaceStrided(buf []byte, width, height, stride int) error {
	return fillStrided(buf, width, height, stride, bppRGBA, tier().FillAlpha4)
}
