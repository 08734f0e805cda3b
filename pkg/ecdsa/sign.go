package ecdsa

import (
	"crypto/sha256"
	"io"
	"math/big"

	"github.com/smallyu/go-ecdsa-secp256k1/internal/crypto/curve"
)

// hashToInt maps a message to the integer e used in the signature equations:
// its SHA-256 digest read as a big-endian unsigned integer. No reduction
// happens here; e is reduced inside the modular expressions that consume it.
func hashToInt(message []byte) *big.Int {
	digest := sha256.Sum256(message)
	return new(big.Int).SetBytes(digest[:])
}

// Sign produces an ECDSA signature over message. A fresh nonce is drawn from
// random on every call; random must be a cryptographically secure source
// such as crypto/rand.Reader.
//
// The rare nonces for which a signature component reduces to zero are
// discarded and redrawn, so both returned components lie in [1, n-1].
func (k *PrivateKey) Sign(random io.Reader, message []byte) (*Signature, error) {
	e := hashToInt(message)
	for {
		nonce, err := curve.RandScalar(random)
		if err != nil {
			return nil, err
		}
		if sig := signWithNonce(k.d, nonce, e); sig != nil {
			return sig, nil
		}
	}
}

// signWithNonce runs one attempt of the signing equation with nonce k:
// r = (k*G).x mod n, s = k⁻¹(e + r*d) mod n. It returns nil when either
// component reduces to zero, in which case the caller redraws the nonce.
func signWithNonce(d, k, e *big.Int) *Signature {
	n := curve.N()

	r := new(big.Int).Mod(curve.ScalarBaseMult(k).X(), n)
	if r.Sign() == 0 {
		return nil
	}

	s := new(big.Int).Mul(r, d)
	s.Add(s, e)
	s.Mul(s, new(big.Int).ModInverse(k, n))
	s.Mod(s, n)
	if s.Sign() == 0 {
		return nil
	}

	return &Signature{R: r, S: s}
}
