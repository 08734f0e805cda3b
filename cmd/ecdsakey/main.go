// Command ecdsakey generates secp256k1 keys and signs or verifies messages
// using the pipe-delimited text encodings.
//
//	ecdsakey -gen
//	ecdsakey -key 'd|x|y' -sign 'message'
//	ecdsakey -key 'x|y' -sig 'r|s' -verify 'message'
//	ecdsakey -key 'x|y' -fingerprint
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/smallyu/go-ecdsa-secp256k1/pkg/ecdsa"
)

func main() {
	var (
		gen     = flag.Bool("gen", false, "generate a key pair and print it as d|x|y")
		key     = flag.String("key", "", "key pair d|x|y (for -sign) or public key x|y (for -verify, -fingerprint)")
		sign    = flag.String("sign", "", "message to sign with -key")
		verify  = flag.String("verify", "", "message to verify with -key and -sig")
		sig     = flag.String("sig", "", "signature r|s (for -verify)")
		fprint  = flag.Bool("fingerprint", false, "print the fingerprint of -key")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	switch {
	case *gen:
		kp, err := ecdsa.GenerateKeyPair(rand.Reader)
		if err != nil {
			log.Fatal().Err(err).Msg("key generation failed")
		}
		log.Debug().Str("fingerprint", kp.Public.Fingerprint()).Msg("generated key pair")
		fmt.Println(kp)

	case *sign != "":
		kp, err := ecdsa.ParseKeyPair(*key)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid -key, expected d|x|y")
		}
		signature, err := kp.Private.Sign(rand.Reader, []byte(*sign))
		if err != nil {
			log.Fatal().Err(err).Msg("signing failed")
		}
		log.Debug().Str("fingerprint", kp.Public.Fingerprint()).Msg("signed message")
		fmt.Println(signature)

	case *verify != "":
		pub, err := ecdsa.ParsePublicKey(*key)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid -key, expected x|y")
		}
		signature, err := ecdsa.ParseSignature(*sig)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid -sig, expected r|s")
		}
		if !pub.Verify([]byte(*verify), signature) {
			log.Error().Str("fingerprint", pub.Fingerprint()).Msg("signature INVALID")
			os.Exit(1)
		}
		log.Info().Str("fingerprint", pub.Fingerprint()).Msg("signature valid")

	case *fprint:
		pub, err := ecdsa.ParsePublicKey(*key)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid -key, expected x|y")
		}
		fmt.Println(pub.Fingerprint())

	default:
		flag.Usage()
		os.Exit(2)
	}
}
