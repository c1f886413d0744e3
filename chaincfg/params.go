package chaincfg

// VersionRole names the slot a base58 version prefix fills. Codecs ask
// for prefixes by role so they never hardcode network bytes.
type VersionRole int

const (
	PubKeyHashAddr VersionRole = iota // pay-to-pubkey-hash address
	ScriptHashAddr                    // pay-to-script-hash address
	SecretKey                         // WIF private key export
)

// Params holds the base58 version prefixes of one network. Prefixes
// are byte slices rather than single bytes so chains with multi-byte
// versions fit without changing the codecs.
type Params struct {
	Name string

	PubKeyHashPrefix []byte
	ScriptHashPrefix []byte
	SecretKeyPrefix  []byte
}

// Base58Prefix returns the version prefix for a role. Unknown roles
// return nil, which no valid payload version can equal.
func (p *Params) Base58Prefix(role VersionRole) []byte {
	switch role {
	case PubKeyHashAddr:
		return p.PubKeyHashPrefix
	case ScriptHashAddr:
		return p.ScriptHashPrefix
	case SecretKey:
		return p.SecretKeyPrefix
	}
	return nil
}

var MainNetParams = Params{
	Name:             "mainnet",
	PubKeyHashPrefix: []byte{0x00}, // addresses start with 1
	ScriptHashPrefix: []byte{0x05}, // addresses start with 3
	SecretKeyPrefix:  []byte{0x80},
}

var TestNet3Params = Params{
	Name:             "testnet3",
	PubKeyHashPrefix: []byte{0x6f},
	ScriptHashPrefix: []byte{0xc4},
	SecretKeyPrefix:  []byte{0xef},
}
