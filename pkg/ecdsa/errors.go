package ecdsa

import "errors"

// Errors returned when parsing or validating serialized values.
var (
	// ErrFormat reports serialized text with the wrong field count or a
	// token that is not a decimal integer.
	ErrFormat = errors.New("ecdsa: malformed encoding")

	// ErrScalarRange reports a private scalar outside [1, n-1].
	ErrScalarRange = errors.New("ecdsa: scalar outside [1, n-1]")

	// ErrPointNotOnCurve reports coordinates that fail the curve equation.
	ErrPointNotOnCurve = errors.New("ecdsa: point not on secp256k1")

	// ErrKeyMismatch reports a deserialized key pair whose public point is
	// not d*G for its private scalar.
	ErrKeyMismatch = errors.New("ecdsa: public key does not match private key")
)
