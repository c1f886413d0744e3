package wallet

import (
	"crypto/sha256"
	"log"

	"golang.org/x/crypto/ripemd160"
)

// size of the hashes carried in address data
const HashLength = 20

// DoubleSha256 is the checksum hash of the bitcoin family:
// sha256 run twice. Every base58check string in this repo uses it.
func DoubleSha256(payload []byte) [32]byte {
	first := sha256.Sum256(payload)
	return sha256.Sum256(first[:])
}

// Hash160 produces the 20 byte public key hash that address data
// carries: sha256 of the input, then ripemd160 of that.
func Hash160(pubKey []byte) []byte {
	pubHash := sha256.Sum256(pubKey)

	hasher := ripemd160.New()
	_, err := hasher.Write(pubHash[:])
	if err != nil {
		log.Panic(err)
	}
	return hasher.Sum(nil)
}
