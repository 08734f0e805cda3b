// Package curve implements affine group arithmetic on the secp256k1 curve
// (y² = x³ + 7 over the prime field F_p).
//
// The arithmetic is written against math/big and runs in variable time:
// scalar multiplication takes a code path that depends on the bit pattern of
// the scalar. Callers signing on hardware exposed to timing measurement
// should treat that as a leak of the secret scalar.
package curve

import (
	"crypto/elliptic"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Domain parameters are taken from the decred secp256k1 implementation
// rather than retyped here.
var params = secp256k1.S256().Params()

var (
	seven = big.NewInt(7)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// Params returns the secp256k1 domain parameters (field prime P, group order
// N, generator coordinates Gx/Gy).
func Params() *elliptic.CurveParams {
	return params
}

// N returns the order of the group generated by the base point.
func N() *big.Int {
	return params.N
}

// P returns the prime modulus of the coordinate field.
func P() *big.Int {
	return params.P
}
