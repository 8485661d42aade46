package repositories

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

const (
	// Key prefixes for records, stored by collection position
	ProjectKeyPrefix = "project:"
	PostKeyPrefix    = "post:"

	// Index prefixes mapping a lookup key to a position key
	ProjectIndexPrefix = "project-id:"
	PostIndexPrefix    = "post-slug:"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key")
)

// positionKey builds a record key that sorts in collection order
func positionKey(prefix string, pos int) []byte {
	return []byte(fmt.Sprintf("%s%06d", prefix, pos))
}

func indexKey(prefix, key string) []byte {
	return []byte(prefix + key)
}

// getIndexed resolves an index key to its record and unmarshals it into entity
func getIndexed(txn *badger.Txn, key []byte, entity interface{}) error {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	recordKey, err := item.ValueCopy(nil)
	if err != nil {
		return err
	}

	record, err := txn.Get(recordKey)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	return record.Value(func(val []byte) error {
		return unmarshalEntity(val, entity)
	})
}

// marshalEntity marshals an entity to JSON
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %w", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %w", err)
	}
	return nil
}
