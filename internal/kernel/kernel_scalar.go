package kernel

// This file is the reference tier: straightforward per-pixel Go loops
// with no platform dependency. Every vector kernel in this package is
// checked against these functions by the conformance tests in
// kernel_test.go (spec §8, property 1) and is used verbatim as the
// tail handler once a vector body has consumed all whole blocks.

func swap4Scalar(dst, src []byte, n int) {
	for i := 0; i < n; i++ {
		o := 4 * i
		b0, b1, b2, b3 := src[o], src[o+1], src[o+2], src[o+3]
		dst[o] = b2
		dst[o+1] = b1
		dst[o+2] = b0
		dst[o+3] = b3
	}
}

func swap3Scalar(dst, src []byte, n int) {
	for i := 0; i < n; i++ {
		o := 3 * i
		b0, b1, b2 := src[o], src[o+1], src[o+2]
		dst[o] = b2
		dst[o+1] = b1
		dst[o+2] = b0
	}
}

func expand3To4Scalar(dst, src []byte, n int) {
	for i := 0; i < n; i++ {
		so, do := 3*i, 4*i
		dst[do] = src[so]
		dst[do+1] = src[so+1]
		dst[do+2] = src[so+2]
		dst[do+3] = 255
	}
}

func expand3SwapTo4Scalar(dst, src []byte, n int) {
	for i := 0; i < n; i++ {
		so, do := 3*i, 4*i
		dst[do] = src[so+2]
		dst[do+1] = src[so+1]
		dst[do+2] = src[so]
		dst[do+3] = 255
	}
}

func strip4To3Scalar(dst, src []byte, n int) {
	for i := 0; i < n; i++ {
		so, do := 4*i, 3*i
		dst[do] = src[so]
		dst[do+1] = src[so+1]
		dst[do+2] = src[so+2]
	}
}

func strip4SwapTo3Scalar(dst, src []byte, n int) {
	for i := 0; i < n; i++ {
		so, do := 4*i, 3*i
		dst[do] = src[so+2]
		dst[do+1] = src[so+1]
		dst[do+2] = src[so]
	}
}

func grayTo4Scalar(dst, src []byte, n int) {
	for i := 0; i < n; i++ {
		g := src[i]
		do := 4 * i
		dst[do] = g
		dst[do+1] = g
		dst[do+2] = g
		dst[do+3] = 255
	}
}

func grayAlphaTo4Scalar(dst, src []byte, n int) {
	for i := 0; i < n; i++ {
		so, do := 2*i, 4*i
		g, a := src[so], src[so+1]
		dst[do] = g
		dst[do+1] = g
		dst[do+2] = g
		dst[do+3] = a
	}
}

func fillAlpha4Scalar(buf []byte, n int) {
	for i := 0; i < n; i++ {
		buf[4*i+3] = 255
	}
}
