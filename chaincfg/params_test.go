package chaincfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMainnetPrefixesByRole(t *testing.T) {
	assert.Equal(t, []byte{0x00}, MainNetParams.Base58Prefix(PubKeyHashAddr))
	assert.Equal(t, []byte{0x05}, MainNetParams.Base58Prefix(ScriptHashAddr))
	assert.Equal(t, []byte{0x80}, MainNetParams.Base58Prefix(SecretKey))
}

func TestTestnetPrefixesDifferFromMainnet(t *testing.T) {
	for _, role := range []VersionRole{PubKeyHashAddr, ScriptHashAddr, SecretKey} {
		assert.NotEqual(t, MainNetParams.Base58Prefix(role), TestNet3Params.Base58Prefix(role))
	}
}

func TestUnknownRoleHasNoPrefix(t *testing.T) {
	assert.Nil(t, MainNetParams.Base58Prefix(VersionRole(99)))
}
