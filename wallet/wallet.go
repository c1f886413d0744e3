package wallet

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"log"
	"math/big"

	"coinaddr/chaincfg"
)

// Wallet is one keypair. The address people send to is a hash of the
// public key, never the key itself.
type Wallet struct {
	PrivateKey ecdsa.PrivateKey
	PublicKey  []byte
}

func MakeWallet() *Wallet {
	private, public := NewKeyPair()
	return &Wallet{PrivateKey: private, PublicKey: public}
}

func NewKeyPair() (ecdsa.PrivateKey, []byte) {
	curve := elliptic.P256()

	private, err := ecdsa.GenerateKey(curve, rand.Reader)
	if err != nil {
		log.Panic(err)
	}

	public := append(private.PublicKey.X.Bytes(), private.PublicKey.Y.Bytes()...)
	return *private, public
}

// FromPrivateKeyBytes rebuilds a wallet from a raw 32 byte scalar,
// e.g. one decoded from wallet import format. The public key is
// rederived from the curve.
func FromPrivateKeyBytes(key []byte) *Wallet {
	curve := elliptic.P256()

	private := ecdsa.PrivateKey{}
	private.Curve = curve
	private.D = new(big.Int).SetBytes(key)
	private.PublicKey.X, private.PublicKey.Y = curve.ScalarBaseMult(key)

	public := append(private.PublicKey.X.Bytes(), private.PublicKey.Y.Bytes()...)
	return &Wallet{PrivateKey: private, PublicKey: public}
}

// Address derives the pay-to-pubkey-hash address of this wallet on
// the given network: Hash160 of the public key, framed with the
// network's key-hash prefix.
func (w *Wallet) Address(params *chaincfg.Params) Address {
	addr, err := NewAddressPubKeyHash(Hash160(w.PublicKey), params)
	if err != nil {
		// Hash160 always yields 20 bytes
		log.Panic(err)
	}
	return addr
}

// PrivateKeyBytes returns the raw scalar left-padded to 32 bytes, the
// shape the secret key codec encodes.
func (w *Wallet) PrivateKeyBytes() []byte {
	key := make([]byte, SecretKeyLength)
	d := w.PrivateKey.D.Bytes()
	copy(key[SecretKeyLength-len(d):], d)
	return key
}

// Export renders the private key in wallet import format for the
// given network.
func (w *Wallet) Export(params *chaincfg.Params, compressed bool) (string, error) {
	key := w.PrivateKeyBytes()
	defer zero(key)
	return EncodeSecretKey(key, compressed, params)
}
