// Package registry persists seed ledger records, one versioned envelope
// per seed, and serves the query views over them.
package registry

import "errors"

// ErrKeyNotFound is returned by Store.Get for keys without a value.
var ErrKeyNotFound = errors.New("key does not exist")

// Store is the byte level KV storage the registry runs on. Iterate visits
// keys in ascending byte order, which is what makes listings
// deterministic.
type Store interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) error
	Delete(key []byte) error
	Iterate(prefix []byte, fn func(key []byte, value []byte) error) error
	Close() error
}
