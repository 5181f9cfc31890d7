package registry

import (
	"errors"
	"fmt"

	"github.com/seedfarm-org/seedfarm-go-base/farming"
	"github.com/seedfarm-org/seedfarm-go-base/types"
)

var (
	ErrSeedExists   = errors.New("seed already exists")
	ErrSeedNotFound = errors.New("seed not found")

	errStopIteration = errors.New("stop iteration")
)

// Registry is the durable seed ledger. Entries go to the store as version
// tagged CBOR and come back migrated to the current schema version, so
// callers only ever see the current layout.
type Registry struct {
	store Store
}

func New(store Store) *Registry {
	return &Registry{store: store}
}

// CreateSeed registers a new seed with zero staked amount and stores it.
// The identifier must classify cleanly and must not be in the ledger yet.
func (r *Registry) CreateSeed(id types.SeedID, minDeposit types.U128, nftBalance farming.NFTBalance, metadata *farming.FarmSeedMetadata) (*farming.VersionedFarmSeed, error) {
	env, err := farming.NewVersionedFarmSeed(id, minDeposit, nftBalance, metadata)
	if err != nil {
		return nil, err
	}
	ok, err := r.HasSeed(id)
	if err != nil {
		return nil, err
	}
	if ok {
		return nil, fmt.Errorf("%w: %s", ErrSeedExists, id)
	}
	if err := r.putSeed(id, env); err != nil {
		return nil, err
	}
	return env, nil
}

// GetSeed loads the envelope of a seed, migrated to the current schema
// version. The migration is in memory only, the stored bytes keep their
// old layout until the seed is next written back.
func (r *Registry) GetSeed(id types.SeedID) (*farming.VersionedFarmSeed, error) {
	data, err := r.store.Get(seedKey(id))
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSeedNotFound, id)
		}
		return nil, fmt.Errorf("loading seed %s: %w", id, err)
	}
	env := &farming.VersionedFarmSeed{}
	if err := types.Cbor.Unmarshal(data, env); err != nil {
		return nil, fmt.Errorf("decoding seed %s: %w", id, err)
	}
	return env.Upgrade(), nil
}

// PutSeed validates the envelope and writes it back under its seed
// identifier. The id argument must agree with the identifier inside the
// entry, a mismatch would orphan the record.
func (r *Registry) PutSeed(id types.SeedID, env *farming.VersionedFarmSeed) error {
	if err := env.IsValid(); err != nil {
		return fmt.Errorf("invalid seed %s: %w", id, err)
	}
	if sid := env.GetRef().SeedID; sid != id {
		return fmt.Errorf("envelope of seed %s cannot be stored under seed %s", sid, id)
	}
	return r.putSeed(id, env)
}

func (r *Registry) putSeed(id types.SeedID, env *farming.VersionedFarmSeed) error {
	data, err := types.Cbor.Marshal(env)
	if err != nil {
		return fmt.Errorf("encoding seed %s: %w", id, err)
	}
	return r.store.Set(seedKey(id), data)
}

// RemoveSeed drops a seed from the ledger.
func (r *Registry) RemoveSeed(id types.SeedID) error {
	ok, err := r.HasSeed(id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrSeedNotFound, id)
	}
	return r.store.Delete(seedKey(id))
}

// HasSeed reports whether the seed is in the ledger.
func (r *Registry) HasSeed(id types.SeedID) (bool, error) {
	_, err := r.store.Get(seedKey(id))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrKeyNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("loading seed %s: %w", id, err)
	}
}

// SeedCount returns the number of seeds in the ledger.
func (r *Registry) SeedCount() (uint64, error) {
	var count uint64
	err := r.store.Iterate([]byte{tagSeed}, func([]byte, []byte) error {
		count++
		return nil
	})
	return count, err
}

// GetSeedInfo builds the query view of a single seed.
func (r *Registry) GetSeedInfo(id types.SeedID) (*farming.SeedInfo, error) {
	env, err := r.GetSeed(id)
	if err != nil {
		return nil, err
	}
	return farming.NewSeedInfo(env.GetRef()), nil
}

// ListSeedsInfo builds the query views of a page of seeds, ordered by
// seed identifier. fromIndex seeds are skipped and at most limit views
// returned, a page past the end is empty rather than an error.
func (r *Registry) ListSeedsInfo(fromIndex, limit uint64) ([]*farming.SeedInfo, error) {
	infos := []*farming.SeedInfo{}
	if limit == 0 {
		return infos, nil
	}
	var index uint64
	err := r.store.Iterate([]byte{tagSeed}, func(key []byte, value []byte) error {
		index++
		if index <= fromIndex {
			return nil
		}
		env := &farming.VersionedFarmSeed{}
		if err := types.Cbor.Unmarshal(value, env); err != nil {
			return fmt.Errorf("decoding seed %s: %w", key[1:], err)
		}
		infos = append(infos, farming.NewSeedInfo(env.Upgrade().GetRef()))
		if uint64(len(infos)) == limit {
			return errStopIteration
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStopIteration) {
		return nil, err
	}
	return infos, nil
}
