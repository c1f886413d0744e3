package wallet

import (
	"bytes"
	"errors"

	"coinaddr/chaincfg"
)

var ErrInvalidHashLength = errors.New("wallet: address hash must be 20 bytes")

// DestinationKind tags what an address pays to. The set is closed:
// key hash, script hash, or nothing recognizable.
type DestinationKind int

const (
	NoDestination DestinationKind = iota
	KeyHashDestination
	ScriptHashDestination
)

// Destination is the interpreted form of an address: which kind it
// is and the 20 byte hash it carries. Kind NoDestination means the
// address did not validate and Hash is nil.
type Destination struct {
	Kind DestinationKind
	Hash []byte
}

// Address is a versioned payload whose version is one of the two
// address prefixes of its network and whose data is a 20 byte hash.
type Address struct {
	payload Payload
	params  *chaincfg.Params
}

// NewAddressPubKeyHash builds a pay-to-pubkey-hash address from a
// 20 byte public key hash.
func NewAddressPubKeyHash(hash []byte, params *chaincfg.Params) (Address, error) {
	return newAddress(hash, params.Base58Prefix(chaincfg.PubKeyHashAddr), params)
}

// NewAddressScriptHash builds a pay-to-script-hash address from a
// 20 byte script hash.
func NewAddressScriptHash(hash []byte, params *chaincfg.Params) (Address, error) {
	return newAddress(hash, params.Base58Prefix(chaincfg.ScriptHashAddr), params)
}

func newAddress(hash, version []byte, params *chaincfg.Params) (Address, error) {
	if len(hash) != HashLength {
		return Address{}, ErrInvalidHashLength
	}
	data := make([]byte, HashLength)
	copy(data, hash)
	return Address{payload: NewPayload(version, data), params: params}, nil
}

// DecodeAddress parses base58check address text. The version width is
// whatever the network's key-hash prefix uses; both address prefixes
// of a network are the same width.
func DecodeAddress(s string, params *chaincfg.Params) (Address, error) {
	versionLen := len(params.Base58Prefix(chaincfg.PubKeyHashAddr))
	payload, err := DecodePayload(s, versionLen)
	if err != nil {
		return Address{}, err
	}
	return Address{payload: payload, params: params}, nil
}

func (a Address) String() string {
	return a.payload.String()
}

// IsValid reports whether the data is exactly 20 bytes and the version
// is one of the two address prefixes of the network. Deny-listed
// addresses are a caller policy consulted separately, never here.
func (a Address) IsValid() bool {
	if len(a.payload.Data) != HashLength {
		return false
	}
	return bytes.Equal(a.payload.Version, a.params.Base58Prefix(chaincfg.PubKeyHashAddr)) ||
		bytes.Equal(a.payload.Version, a.params.Base58Prefix(chaincfg.ScriptHashAddr))
}

// Destination interprets the address. Invalid addresses come back as
// NoDestination, valid ones as the kind matching the version prefix.
func (a Address) Destination() Destination {
	if !a.IsValid() {
		return Destination{Kind: NoDestination}
	}
	hash := make([]byte, HashLength)
	copy(hash, a.payload.Data)

	if bytes.Equal(a.payload.Version, a.params.Base58Prefix(chaincfg.PubKeyHashAddr)) {
		return Destination{Kind: KeyHashDestination, Hash: hash}
	}
	return Destination{Kind: ScriptHashDestination, Hash: hash}
}

// Compare orders addresses like their payloads: version first, then
// hash bytes.
func (a Address) Compare(b Address) int {
	return Compare(a.payload, b.payload)
}
