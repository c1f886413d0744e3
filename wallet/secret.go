package wallet

import (
	"bytes"
	"errors"

	"coinaddr/chaincfg"
)

const (
	// private keys are raw 32 byte scalars
	SecretKeyLength = 32
	// a single trailing 0x01 marks that the matching public key is
	// serialized compressed
	compressionMarker = 0x01
)

var (
	ErrInvalidKeyLength = errors.New("wallet: secret key data must be 32 bytes, or 33 with a 0x01 marker")
	ErrVersionMismatch  = errors.New("wallet: version prefix is not the network's secret key prefix")
)

// SecretKey is a decoded WIF export: the raw private key and whether
// the exporting wallet used compressed public keys.
type SecretKey struct {
	Key        []byte
	Compressed bool
}

// EncodeSecretKey renders a private key in wallet import format:
// secret key prefix, the 32 key bytes, a 0x01 marker iff compressed,
// all check-encoded.
func EncodeSecretKey(key []byte, compressed bool, params *chaincfg.Params) (string, error) {
	if len(key) != SecretKeyLength {
		return "", ErrInvalidKeyLength
	}
	data := make([]byte, 0, SecretKeyLength+1)
	data = append(data, key...)
	if compressed {
		data = append(data, compressionMarker)
	}
	p := NewPayload(params.Base58Prefix(chaincfg.SecretKey), data)
	text := p.String()
	zero(data)
	return text, nil
}

// DecodeSecretKey parses wallet import format text back into the raw
// key. Only two data shapes exist: exactly 32 bytes, or 33 bytes
// ending in the 0x01 marker.
func DecodeSecretKey(s string, params *chaincfg.Params) (SecretKey, error) {
	versionLen := len(params.Base58Prefix(chaincfg.SecretKey))
	payload, err := DecodePayload(s, versionLen)
	if err != nil {
		return SecretKey{}, err
	}

	compressed := false
	switch {
	case len(payload.Data) == SecretKeyLength:
	case len(payload.Data) == SecretKeyLength+1 && payload.Data[SecretKeyLength] == compressionMarker:
		compressed = true
	default:
		zero(payload.Data)
		return SecretKey{}, ErrInvalidKeyLength
	}

	if !bytes.Equal(payload.Version, params.Base58Prefix(chaincfg.SecretKey)) {
		zero(payload.Data)
		return SecretKey{}, ErrVersionMismatch
	}

	key := make([]byte, SecretKeyLength)
	copy(key, payload.Data[:SecretKeyLength])
	zero(payload.Data)
	return SecretKey{Key: key, Compressed: compressed}, nil
}
