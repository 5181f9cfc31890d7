package registry

import (
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// LevelDBStore keeps the seed ledger in a LevelDB database.
type LevelDBStore struct {
	db *leveldb.DB
}

var _ Store = (*LevelDBStore)(nil)

// NewLevelDBStore opens (creating if needed) the database under path.
func NewLevelDBStore(path string) (*LevelDBStore, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("opening leveldb at %s: %w", path, err)
	}
	return &LevelDBStore{db: db}, nil
}

// NewMemStore returns a store backed by in-memory LevelDB, for tests and
// throwaway ledgers.
func NewMemStore() (*LevelDBStore, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, fmt.Errorf("opening in-memory leveldb: %w", err)
	}
	return &LevelDBStore{db: db}, nil
}

func (s *LevelDBStore) Get(key []byte) ([]byte, error) {
	value, err := s.db.Get(key, nil)
	if err != nil {
		if err == leveldb.ErrNotFound {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	return value, nil
}

func (s *LevelDBStore) Set(key []byte, value []byte) error {
	return s.db.Put(key, value, nil)
}

func (s *LevelDBStore) Delete(key []byte) error {
	return s.db.Delete(key, nil)
}

func (s *LevelDBStore) Iterate(prefix []byte, fn func(key []byte, value []byte) error) error {
	var slice *util.Range
	if len(prefix) > 0 {
		slice = util.BytesPrefix(prefix)
	}
	it := s.db.NewIterator(slice, nil)
	defer it.Release()
	for it.Next() {
		if err := fn(it.Key(), it.Value()); err != nil {
			return err
		}
	}
	return it.Error()
}

func (s *LevelDBStore) Close() error {
	return s.db.Close()
}
