package ecdsa

import (
	"crypto/rand"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecdsa-secp256k1/internal/crypto/curve"
)

func TestGenerateKeyPair(t *testing.T) {
	kp, err := GenerateKeyPair(rand.Reader)
	require.NoError(t, err)

	// The public point must be d*G and never the identity.
	require.True(t, kp.Private.PublicKey().Equal(kp.Public))
	require.True(t, curve.IsOnCurve(kp.Public.q.X(), kp.Public.q.Y()))
}

func TestGenerateKeyPairSourceError(t *testing.T) {
	_, err := GenerateKeyPair(failingReader{})
	assert.Error(t, err)
}

func TestKeyRoundTrips(t *testing.T) {
	kp, err := GenerateKeyPair(rand.Reader)
	require.NoError(t, err)

	priv, err := ParsePrivateKey(kp.Private.String())
	require.NoError(t, err)
	assert.True(t, priv.Equal(kp.Private))

	pub, err := ParsePublicKey(kp.Public.String())
	require.NoError(t, err)
	assert.True(t, pub.Equal(kp.Public))

	pair, err := ParseKeyPair(kp.String())
	require.NoError(t, err)
	assert.True(t, pair.Equal(kp))
}

func TestParseRejectsWrongFieldCount(t *testing.T) {
	cases := []struct {
		name string
		run  func() error
	}{
		{"public key with 3 fields", func() error { _, err := ParsePublicKey("1|2|3"); return err }},
		{"public key with 1 field", func() error { _, err := ParsePublicKey("1"); return err }},
		{"key pair with 2 fields", func() error { _, err := ParseKeyPair("1|2"); return err }},
		{"private key with 2 fields", func() error { _, err := ParsePrivateKey("1|2"); return err }},
		{"signature with 1 field", func() error { _, err := ParseSignature("1"); return err }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.run()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrFormat), "want ErrFormat, got %v", err)
		})
	}
}

func TestParseRejectsBadTokens(t *testing.T) {
	for _, s := range []string{"", "abc", "12x", "-5", "+5", " 12", "0x12", "1 2"} {
		_, err := ParsePrivateKey(s)
		require.Error(t, err, "input %q", s)
		assert.True(t, errors.Is(err, ErrFormat), "input %q: got %v", s, err)
	}
}

func TestParsePrivateKeyRange(t *testing.T) {
	_, err := ParsePrivateKey("0")
	assert.True(t, errors.Is(err, ErrScalarRange))

	_, err = ParsePrivateKey(curve.N().String())
	assert.True(t, errors.Is(err, ErrScalarRange))

	nMinus1 := new(big.Int).Sub(curve.N(), big.NewInt(1))
	priv, err := ParsePrivateKey(nMinus1.String())
	require.NoError(t, err)
	assert.Equal(t, nMinus1.String(), priv.String())
}

func TestParsePublicKeyOffCurve(t *testing.T) {
	_, err := ParsePublicKey("1|2")
	assert.True(t, errors.Is(err, ErrPointNotOnCurve))
}

func TestParseKeyPairMismatch(t *testing.T) {
	a, err := GenerateKeyPair(rand.Reader)
	require.NoError(t, err)
	b, err := GenerateKeyPair(rand.Reader)
	require.NoError(t, err)

	// A's scalar with B's point is structurally well formed but inconsistent.
	_, err = ParseKeyPair(a.Private.String() + "|" + b.Public.String())
	assert.True(t, errors.Is(err, ErrKeyMismatch))
}

func TestFingerprints(t *testing.T) {
	kp, err := GenerateKeyPair(rand.Reader)
	require.NoError(t, err)

	// 32 bytes of SHA-256 as lowercase hex.
	assert.Len(t, kp.Public.Fingerprint(), 64)
	assert.Len(t, kp.Private.Fingerprint(), 64)
	assert.Len(t, kp.Fingerprint(), 64)

	// Stable for the same key, distinct across entities.
	assert.Equal(t, kp.Public.Fingerprint(), kp.Public.Fingerprint())
	assert.NotEqual(t, kp.Public.Fingerprint(), kp.Private.Fingerprint())
}

// failingReader errors on every read, standing in for a broken entropy source.
type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy source unavailable")
}
