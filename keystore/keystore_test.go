package keystore

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"coinaddr/chaincfg"
	"coinaddr/testutils"
	"coinaddr/wallet"
)

func openTestStore(t *testing.T) *Store {
	store, err := Open(t.TempDir(), &chaincfg.MainNetParams)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPutThenGetReturnsSameKey(t *testing.T) {
	store := openTestStore(t)
	w := testutils.RandomWallet()

	address, err := store.Put(w)
	assert.NoError(t, err)

	secret, err := store.Get(address)
	assert.NoError(t, err)
	assert.Equal(t, w.PrivateKeyBytes(), secret.Key)
}

func TestGetUnknownAddressFails(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Get("1111111111111111111114oLvT2")

	assert.Error(t, err)
}

func TestAddressesListsEveryStoredKey(t *testing.T) {
	store := openTestStore(t)

	first, err := store.Put(testutils.RandomWallet())
	assert.NoError(t, err)
	second, err := store.Put(testutils.RandomWallet())
	assert.NoError(t, err)

	addresses, err := store.Addresses()
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{first, second}, addresses)
}

func TestPutKeyRejectsMalformedImport(t *testing.T) {
	store := openTestStore(t)

	err := store.PutKey("1111111111111111111114oLvT2", "not a key")

	assert.Error(t, err)
}

func TestPutKeyStoresValidImport(t *testing.T) {
	store := openTestStore(t)
	w := testutils.RandomWallet()

	wif, err := w.Export(&chaincfg.MainNetParams, false)
	assert.NoError(t, err)
	address := w.Address(&chaincfg.MainNetParams).String()

	assert.NoError(t, store.PutKey(address, wif))

	secret, err := store.Get(address)
	assert.NoError(t, err)
	assert.Equal(t, wallet.SecretKey{Key: w.PrivateKeyBytes(), Compressed: false}, secret)
}
