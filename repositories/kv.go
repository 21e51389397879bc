package repositories

import (
	"errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

// KV is the durable key-value collaborator. An absent key is "no prior
// state", never an error.
type KV interface {
	Get(key string) (*string, error)
	Set(key, value string) error
}

type BadgerKV struct {
	db *badger.DB
}

func NewBadgerKV(db *badger.DB) BadgerKV {
	return BadgerKV{db: db}
}

func (s BadgerKV) Get(key string) (*string, error) {
	var value *string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			value = lo.ToPtr(string(v))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s BadgerKV) Set(key, value string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
}
