package curve

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestGroupLawProperties checks the algebraic laws of the group operations on
// randomized scalars.
func TestGroupLawProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	properties.Property("(k1+k2)*G == k1*G + k2*G", prop.ForAll(
		func(a, b uint64) bool {
			k1 := new(big.Int).SetUint64(a)
			k2 := new(big.Int).SetUint64(b)
			sum := new(big.Int).Add(k1, k2)
			sum.Mod(sum, params.N)
			return ScalarBaseMult(sum).Equal(ScalarBaseMult(k1).Add(ScalarBaseMult(k2)))
		},
		gen.UInt64(), gen.UInt64(),
	))

	properties.Property("point addition commutes", prop.ForAll(
		func(a, b uint64) bool {
			p := ScalarBaseMult(new(big.Int).SetUint64(a))
			q := ScalarBaseMult(new(big.Int).SetUint64(b))
			return p.Add(q).Equal(q.Add(p))
		},
		gen.UInt64(), gen.UInt64(),
	))

	properties.Property("k*G stays on the curve", prop.ForAll(
		func(a uint64) bool {
			p := ScalarBaseMult(new(big.Int).SetUint64(a))
			if p.IsInfinity() {
				return a == 0
			}
			return IsOnCurve(p.X(), p.Y())
		},
		gen.UInt64(),
	))

	properties.TestingRun(t)
}
