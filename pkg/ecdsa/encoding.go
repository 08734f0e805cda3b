package ecdsa

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

// The text encodings are decimal fields joined by '|', with no whitespace:
// "d" for a private key, "x|y" for a public key, "d|x|y" for a key pair and
// "r|s" for a signature.
const fieldSep = "|"

// splitFields splits s into exactly want '|'-delimited decimal integers.
func splitFields(s string, want int) ([]*big.Int, error) {
	fields := strings.Split(s, fieldSep)
	if len(fields) != want {
		return nil, fmt.Errorf("%w: got %d fields, want %d", ErrFormat, len(fields), want)
	}

	out := make([]*big.Int, len(fields))
	for i, f := range fields {
		v, err := parseDecimal(f)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// parseDecimal parses an unsigned decimal integer. Signs, whitespace and
// other bases are rejected so that parse(serialize(x)) is the only accepted
// spelling.
func parseDecimal(f string) (*big.Int, error) {
	if f == "" {
		return nil, fmt.Errorf("%w: empty field", ErrFormat)
	}
	for _, r := range f {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("%w: %q is not a decimal integer", ErrFormat, f)
		}
	}
	v, ok := new(big.Int).SetString(f, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a decimal integer", ErrFormat, f)
	}
	return v, nil
}

// fingerprint is the SHA-256 hex digest of a serialized value. It identifies
// keys in logs and tooling and is never used as signing material.
func fingerprint(serialized string) string {
	sum := sha256.Sum256([]byte(serialized))
	return hex.EncodeToString(sum[:])
}
