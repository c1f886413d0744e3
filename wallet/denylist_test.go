package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDenyListBlocksListedAddresses(t *testing.T) {
	d := NewDenyList("BCcBZ6B5sTtZPS4FhJ2PaToAayNahvKeKb")

	assert.True(t, d.Blocked("BCcBZ6B5sTtZPS4FhJ2PaToAayNahvKeKb"))
	assert.False(t, d.Blocked("1111111111111111111114oLvT2"))
}

func TestEmptyDenyListBlocksNothing(t *testing.T) {
	assert.False(t, NewDenyList().Blocked("1111111111111111111114oLvT2"))
}

func TestNilDenyListBlocksNothing(t *testing.T) {
	var d *DenyList

	assert.False(t, d.Blocked("1111111111111111111114oLvT2"))
}
