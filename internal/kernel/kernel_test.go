package kernel

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/deepteams/pixfmt/internal/cpu"
)

// genBytes returns deterministic pseudo-random pixel data so every
// run exercises the same bytes; the exact values don't matter, only
// that tiers agree on them.
func genBytes(n int) []byte {
	r := rand.New(rand.NewSource(1))
	b := make([]byte, n)
	r.Read(b)
	return b
}

type copyCase struct {
	name   string
	pick   func(Set) CopyFunc
	srcBpp int
	dstBpp int
}

var copyCases = []copyCase{
	{"Swap4", func(s Set) CopyFunc { return s.Swap4 }, 4, 4},
	{"Swap3", func(s Set) CopyFunc { return s.Swap3 }, 3, 3},
	{"Expand3To4", func(s Set) CopyFunc { return s.Expand3To4 }, 3, 4},
	{"Expand3SwapTo4", func(s Set) CopyFunc { return s.Expand3SwapTo4 }, 3, 4},
	{"Strip4To3", func(s Set) CopyFunc { return s.Strip4To3 }, 4, 3},
	{"Strip4SwapTo3", func(s Set) CopyFunc { return s.Strip4SwapTo3 }, 4, 3},
	{"GrayTo4", func(s Set) CopyFunc { return s.GrayTo4 }, 1, 4},
	{"GrayAlphaTo4", func(s Set) CopyFunc { return s.GrayAlphaTo4 }, 2, 4},
}

// TestTiersAgreeWithScalar checks every instruction-set tier this
// host actually supports against the scalar reference, across every
// pixel count from 0 through a couple of whole vector blocks plus a
// partial one, so both the bulk path and every tail residue gets
// exercised.
func TestTiersAgreeWithScalar(t *testing.T) {
	tiers := []struct {
		name string
		set  Set
	}{
		{"scalar", Scalar},
		{"narrow", Narrow},
		{"wide", Wide},
	}

	detected := cpu.Detect()

	for _, tc := range copyCases {
		for _, tier := range tiers {
			if tier.name == "narrow" && detected == cpu.Scalar {
				continue
			}
			if tier.name == "wide" && detected != cpu.Wide {
				continue
			}
			t.Run(tc.name+"/"+tier.name, func(t *testing.T) {
				for n := 0; n <= 20; n++ {
					src := genBytes(n * tc.srcBpp)
					want := make([]byte, n*tc.dstBpp)
					got := make([]byte, n*tc.dstBpp)

					tc.pick(Scalar)(want, src, n)
					tc.pick(tier.set)(got, src, n)

					if !bytes.Equal(want, got) {
						t.Fatalf("n=%d: %s tier diverged from scalar\nwant %x\ngot  %x", n, tier.name, want, got)
					}
				}
			})
		}
	}
}

func TestFillAlpha4TiersAgreeWithScalar(t *testing.T) {
	tiers := []struct {
		name string
		fn   FillFunc
	}{
		{"scalar", Scalar.FillAlpha4},
		{"narrow", Narrow.FillAlpha4},
		{"wide", Wide.FillAlpha4},
	}

	detected := cpu.Detect()

	for _, tier := range tiers {
		if tier.name == "narrow" && detected == cpu.Scalar {
			continue
		}
		if tier.name == "wide" && detected != cpu.Wide {
			continue
		}
		t.Run(tier.name, func(t *testing.T) {
			for n := 0; n <= 20; n++ {
				raw := genBytes(n * 4)

				want := append([]byte(nil), raw...)
				Scalar.FillAlpha4(want, n)

				got := append([]byte(nil), raw...)
				tier.fn(got, n)

				if !bytes.Equal(want, got) {
					t.Fatalf("n=%d: %s tier diverged from scalar\nwant %x\ngot  %x", n, tier.name, want, got)
				}
			}
		})
	}
}

func TestForTierReturnsPopulatedSet(t *testing.T) {
	if got := ForTier(cpu.Scalar); got.Swap4 == nil {
		t.Fatal("ForTier(Scalar) returned a Set with a nil Swap4")
	}
	// Narrow/Wide are aliases of Scalar on hosts that don't support
	// them, so this only checks the function table is populated, not
	// that it differs from Scalar.
	if got := ForTier(cpu.Narrow); got.Swap4 == nil {
		t.Fatal("ForTier(Narrow) returned a Set with a nil Swap4")
	}
	if got := ForTier(cpu.Wide); got.Swap4 == nil {
		t.Fatal("ForTier(Wide) returned a Set with a nil Swap4")
	}
	if got := ForTier(cpu.Tier(99)); got.Swap4 == nil {
		t.Fatal("ForTier(unknown) should fall back to Scalar, not nil")
	}
}
