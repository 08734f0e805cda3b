// Package ecdsa implements the Elliptic Curve Digital Signature Algorithm
// over the secp256k1 curve: key generation, signing, verification, and a
// pipe-delimited decimal text encoding for keys and signatures.
//
// # Quick start
//
//	kp, err := ecdsa.GenerateKeyPair(rand.Reader)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sig, err := kp.Private.Sign(rand.Reader, []byte("hello"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if !kp.Public.Verify([]byte("hello"), sig) {
//	    log.Fatal("signature did not verify")
//	}
//
// Messages are hashed with SHA-256 before entering the signature equations.
// Every operation that consumes randomness takes an explicit io.Reader;
// production code passes crypto/rand.Reader. A fresh nonce is drawn for every
// Sign call. Feeding the same nonce into two signatures under one key reveals
// the key to anyone holding both signatures.
//
// The underlying arithmetic runs in variable time and is not hardened
// against side channels.
package ecdsa
