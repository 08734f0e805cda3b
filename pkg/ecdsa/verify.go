package ecdsa

import (
	"math/big"

	"github.com/smallyu/go-ecdsa-secp256k1/internal/crypto/curve"
)

// Verify reports whether sig is a valid signature over message under k. It
// is a pure predicate: malformed components make it return false, never
// panic.
func (k *PublicKey) Verify(message []byte, sig *Signature) bool {
	n := curve.N()

	// Components outside [1, n-1] are rejected up front. In particular s = 0
	// has no modular inverse and must never reach the computation below.
	if !inScalarRange(sig.R, n) || !inScalarRange(sig.S, n) {
		return false
	}

	e := hashToInt(message)
	w := new(big.Int).ModInverse(sig.S, n)

	u1 := new(big.Int).Mul(e, w)
	u1.Mod(u1, n)
	u2 := new(big.Int).Mul(sig.R, w)
	u2.Mod(u2, n)

	p := curve.ScalarBaseMult(u1).Add(curve.ScalarMult(u2, k.q))
	if p.IsInfinity() {
		return false
	}

	v := new(big.Int).Mod(p.X(), n)
	return v.Cmp(sig.R) == 0
}

func inScalarRange(v, n *big.Int) bool {
	return v != nil && v.Sign() > 0 && v.Cmp(n) < 0
}
