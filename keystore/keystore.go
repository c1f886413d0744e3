package keystore

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgraph-io/badger"
	"github.com/pkg/errors"

	"coinaddr/chaincfg"
	"coinaddr/wallet"
)

// Store persists private keys in a badger database, keyed by their
// address text. Values are wallet import format strings, so every key
// goes through the secret key codec on the way in and out.
type Store struct {
	db     *badger.DB
	params *chaincfg.Params
}

// Open opens (or creates) the store at path for one network.
func Open(path string, params *chaincfg.Params) (*Store, error) {
	opts := badger.DefaultOptions
	opts.Dir = path
	opts.ValueDir = path

	db, err := openDB(path, opts)
	if err != nil {
		return nil, errors.Wrap(err, "opening keystore")
	}
	return &Store{db: db, params: params}, nil
}

// opening can fail on a stale LOCK file if a previous process died
// mid-write; removing the lock and truncating the value log recovers
func openDB(dir string, opts badger.Options) (*badger.DB, error) {
	if db, err := badger.Open(opts); err != nil {
		if strings.Contains(err.Error(), "LOCK") {
			if db, err := retry(dir, opts); err == nil {
				log.Println("keystore unlocked, value log truncated")
				return db, nil
			}
			log.Println("could not unlock keystore:", err)
		}
		return nil, err
	} else {
		return db, nil
	}
}

func retry(dir string, originalOpts badger.Options) (*badger.DB, error) {
	lockPath := filepath.Join(dir, "LOCK")

	if err := os.Remove(lockPath); err != nil {
		return nil, fmt.Errorf(`removing "LOCK": %s`, err)
	}
	retryOpts := originalOpts
	retryOpts.Truncate = true

	return badger.Open(retryOpts)
}

// Put stores a wallet's private key under its address and returns the
// address text.
func (s *Store) Put(w *wallet.Wallet) (string, error) {
	address := w.Address(s.params).String()

	wif, err := w.Export(s.params, false)
	if err != nil {
		return "", errors.Wrap(err, "exporting private key")
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(address), []byte(wif))
	})
	if err != nil {
		return "", errors.Wrapf(err, "storing key for %s", address)
	}
	return address, nil
}

// PutKey stores an imported wallet import format string. The caller
// supplies the address to file it under, since deriving an address
// from a bare private key needs the caller's curve choice.
func (s *Store) PutKey(address, wif string) error {
	// decode first so a corrupt string never lands in the store
	if _, err := wallet.DecodeSecretKey(wif, s.params); err != nil {
		return errors.Wrap(err, "rejecting import")
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(address), []byte(wif))
	})
	return errors.Wrapf(err, "storing key for %s", address)
}

// Get loads and decodes the secret key stored for an address.
func (s *Store) Get(address string) (wallet.SecretKey, error) {
	var wif []byte

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(address))
		if err != nil {
			return err
		}
		v, err := item.Value()
		if err != nil {
			return err
		}
		// item bytes are only valid inside the transaction
		wif = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return wallet.SecretKey{}, errors.Wrapf(err, "no key stored for %s", address)
	}

	secret, err := wallet.DecodeSecretKey(string(wif), s.params)
	if err != nil {
		return wallet.SecretKey{}, errors.Wrapf(err, "stored key for %s is corrupt", address)
	}
	return secret, nil
}

// Addresses lists every address with a stored key.
func (s *Store) Addresses() ([]string, error) {
	var addresses []string

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			addresses = append(addresses, string(it.Item().Key()))
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "listing addresses")
	}
	return addresses, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
