// Command csidh-exchange is a demonstration of a CSIDH-512 key exchange
// between two parties, Alice and Bob, run entirely in-process.  It takes
// no flags, reads no environment variables, and persists nothing to
// disk: every run samples fresh keys and reports whether the two
// derived shared secrets agree.
package main

import (
	"os"

	"go.uber.org/zap"

	"gitlab.com/csidh/csidh512"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Sugar()

	rng := csidh.DefaultRandomSource()

	alicePriv, err := csidh.GenerateKey(rng)
	if err != nil {
		log.Fatalw("failed to generate Alice's private key", "error", err)
	}
	defer alicePriv.Zeroize()

	bobPriv, err := csidh.GenerateKey(rng)
	if err != nil {
		log.Fatalw("failed to generate Bob's private key", "error", err)
	}
	defer bobPriv.Zeroize()

	alicePub := alicePriv.PublicKey()
	bobPub := bobPriv.PublicKey()
	log.Infow("exchanged public keys",
		"alice", alicePub.Bytes(),
		"bob", bobPub.Bytes(),
	)

	aliceShared := alicePriv.SharedSecret(bobPub)
	bobShared := bobPriv.SharedSecret(alicePub)

	match := true
	for i := range aliceShared {
		if aliceShared[i] != bobShared[i] {
			match = false
			break
		}
	}

	if !match {
		log.Errorw("shared secrets disagree",
			"alice_secret", aliceShared,
			"bob_secret", bobShared,
		)
		os.Exit(1)
	}

	log.Infow("shared secrets agree", "secret", aliceShared)
}
