package ecdsa

import "math/big"

// Signature is an ECDSA signature pair. Both components of a valid signature
// lie in [1, n-1]; Verify range-checks them before use.
type Signature struct {
	R *big.Int
	S *big.Int
}

// Equal reports whether both signatures hold the same (r, s) pair.
func (sig *Signature) Equal(other *Signature) bool {
	return sig.R.Cmp(other.R) == 0 && sig.S.Cmp(other.S) == 0
}

// String returns the "r|s" decimal encoding.
func (sig *Signature) String() string {
	return sig.R.String() + fieldSep + sig.S.String()
}

// ParseSignature parses the "r|s" encoding produced by Signature.String.
// Only the encoding is validated here; out-of-range components are rejected
// by Verify, not by the parser.
func ParseSignature(s string) (*Signature, error) {
	fields, err := splitFields(s, 2)
	if err != nil {
		return nil, err
	}
	return &Signature{R: fields[0], S: fields[1]}, nil
}
