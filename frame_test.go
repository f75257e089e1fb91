package pixconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyContiguousLengthMismatch(t *testing.T) {
	src := make([]byte, 9) // 3 RGB pixels
	dst := make([]byte, 8) // 2 RGBA pixels
	err := RGBToRGBA(dst, src)
	require.Error(t, err)
	var sizeErr *SizeError
	require.ErrorAs(t, err, &sizeErr)
	assert.Equal(t, LengthMismatch, sizeErr.Kind)
}

func TestStridedStrideTooSmall(t *testing.T) {
	buf := make([]byte, 1000)
	err := RGBAToBGRAInplaceStrided(buf, 10, 5, 39) // needs >= 40
	require.Error(t, err)
	var sizeErr *SizeError
	require.ErrorAs(t, err, &sizeErr)
	assert.Equal(t, StrideTooSmall, sizeErr.Kind)
}

func TestStridedBufferTooShort(t *testing.T) {
	buf := make([]byte, 100)
	err := RGBAToBGRAInplaceStrided(buf, 10, 5, 40) // needs 40*4+40=200
	require.Error(t, err)
	var sizeErr *SizeError
	require.ErrorAs(t, err, &sizeErr)
	assert.Equal(t, BufferTooShort, sizeErr.Kind)
}

func TestValidationPrecedesMutation(t *testing.T) {
	// dst is deliberately one pixel short; validation must fail before
	// either buffer is touched.
	src := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	dst := make([]byte, 4)
	dstBefore := append([]byte(nil), dst...)

	err := RGBAToBGRA(dst, src)
	require.Error(t, err)
	assert.Equal(t, dstBefore, dst)
}

func TestValidateStridedSideWidthZeroSkipsLengthCheck(t *testing.T) {
	// A zero-width row never needs the buffer to hold anything, no
	// matter how small stride or height are.
	buf := make([]byte, 4)
	require.NoError(t, validateStridedSide(buf, 0, 100, 1, 4))
}
