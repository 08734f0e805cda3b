package curve

import (
	"fmt"
	"io"
	"math/big"
)

// ScalarMult computes k * p by binary double-and-add. k must be
// non-negative; it is not reduced mod N first, so callers may pass
// unreduced values. k = 0 yields the point at infinity for any p.
func ScalarMult(k *big.Int, p *Point) *Point {
	result := Infinity()
	addend := p
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			result = result.Add(addend)
		}
		addend = addend.Double()
	}
	return result
}

// ScalarBaseMult computes k * G.
func ScalarBaseMult(k *big.Int) *Point {
	return ScalarMult(k, Generator())
}

// RandScalar draws a uniformly random scalar in [1, N-1] from random, which
// must be a cryptographically secure source such as crypto/rand.Reader. It
// draws BitLen(N) bits, reduces mod N and redraws on zero, so both private
// keys and signing nonces come out of the same distribution.
func RandScalar(random io.Reader) (*big.Int, error) {
	buf := make([]byte, (params.N.BitLen()+7)/8)
	for {
		if _, err := io.ReadFull(random, buf); err != nil {
			return nil, fmt.Errorf("curve: reading random scalar: %w", err)
		}
		k := new(big.Int).SetBytes(buf)
		k.Mod(k, params.N)
		if k.Sign() != 0 {
			return k, nil
		}
	}
}
