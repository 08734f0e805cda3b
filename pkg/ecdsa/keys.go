package ecdsa

import (
	"fmt"
	"io"
	"math/big"

	"github.com/smallyu/go-ecdsa-secp256k1/internal/crypto/curve"
)

// PrivateKey is a secp256k1 signing key: a scalar d in [1, n-1].
type PrivateKey struct {
	d *big.Int
}

// PublicKey is the curve point Q = d*G for some private scalar d. A valid
// public key is never the point at infinity.
type PublicKey struct {
	q *curve.Point
}

// KeyPair bundles a private key with its derived public key.
type KeyPair struct {
	Private *PrivateKey
	Public  *PublicKey
}

// GenerateKeyPair draws a fresh private scalar from random and derives the
// matching public key. random must be a cryptographically secure source such
// as crypto/rand.Reader.
func GenerateKeyPair(random io.Reader) (*KeyPair, error) {
	d, err := curve.RandScalar(random)
	if err != nil {
		return nil, err
	}
	priv := &PrivateKey{d: d}
	return &KeyPair{Private: priv, Public: priv.PublicKey()}, nil
}

// PublicKey derives Q = d*G.
func (k *PrivateKey) PublicKey() *PublicKey {
	return &PublicKey{q: curve.ScalarBaseMult(k.d)}
}

// Equal reports whether both keys hold the same scalar.
func (k *PrivateKey) Equal(other *PrivateKey) bool {
	return k.d.Cmp(other.d) == 0
}

// String returns the decimal encoding of the private scalar.
func (k *PrivateKey) String() string {
	return k.d.String()
}

// Fingerprint returns the SHA-256 hex digest of the key's text encoding.
func (k *PrivateKey) Fingerprint() string {
	return fingerprint(k.String())
}

// ParsePrivateKey parses the decimal encoding produced by
// PrivateKey.String. The scalar must lie in [1, n-1].
func ParsePrivateKey(s string) (*PrivateKey, error) {
	fields, err := splitFields(s, 1)
	if err != nil {
		return nil, err
	}
	return newPrivateKey(fields[0])
}

func newPrivateKey(d *big.Int) (*PrivateKey, error) {
	if d.Sign() < 1 || d.Cmp(curve.N()) >= 0 {
		return nil, fmt.Errorf("%w: %s", ErrScalarRange, d)
	}
	return &PrivateKey{d: d}, nil
}

// Equal reports whether both keys are the same curve point.
func (k *PublicKey) Equal(other *PublicKey) bool {
	return k.q.Equal(other.q)
}

// String returns the "x|y" decimal encoding of the public point.
func (k *PublicKey) String() string {
	return k.q.X().String() + fieldSep + k.q.Y().String()
}

// Fingerprint returns the SHA-256 hex digest of the key's text encoding.
func (k *PublicKey) Fingerprint() string {
	return fingerprint(k.String())
}

// ParsePublicKey parses the "x|y" encoding produced by PublicKey.String.
// The coordinates must name a point on the curve.
func ParsePublicKey(s string) (*PublicKey, error) {
	fields, err := splitFields(s, 2)
	if err != nil {
		return nil, err
	}
	return newPublicKey(fields[0], fields[1])
}

func newPublicKey(x, y *big.Int) (*PublicKey, error) {
	q, err := curve.NewPoint(x, y)
	if err != nil {
		return nil, fmt.Errorf("%w: (%s, %s)", ErrPointNotOnCurve, x, y)
	}
	return &PublicKey{q: q}, nil
}

// Equal reports whether both pairs hold the same keys.
func (kp *KeyPair) Equal(other *KeyPair) bool {
	return kp.Private.Equal(other.Private) && kp.Public.Equal(other.Public)
}

// String returns the "d|x|y" decimal encoding of the pair.
func (kp *KeyPair) String() string {
	return kp.Private.String() + fieldSep + kp.Public.String()
}

// Fingerprint returns the SHA-256 hex digest of the pair's text encoding.
func (kp *KeyPair) Fingerprint() string {
	return fingerprint(kp.String())
}

// ParseKeyPair parses the "d|x|y" encoding produced by KeyPair.String and
// checks that the public point is d*G.
func ParseKeyPair(s string) (*KeyPair, error) {
	fields, err := splitFields(s, 3)
	if err != nil {
		return nil, err
	}

	priv, err := newPrivateKey(fields[0])
	if err != nil {
		return nil, err
	}
	pub, err := newPublicKey(fields[1], fields[2])
	if err != nil {
		return nil, err
	}

	if !priv.PublicKey().Equal(pub) {
		return nil, fmt.Errorf("%w: %s", ErrKeyMismatch, pub.Fingerprint())
	}
	return &KeyPair{Private: priv, Public: pub}, nil
}
