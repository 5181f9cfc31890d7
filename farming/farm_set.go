package farming

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/seedfarm-org/seedfarm-go-base/types"
)

// FarmIDSet is the set of farms fed by a seed. Both wire forms are a
// sorted array, so that encodings of the same set are identical; decoding
// rejects duplicate members.
type FarmIDSet map[types.FarmID]struct{}

func (s FarmIDSet) Add(id types.FarmID) {
	s[id] = struct{}{}
}

func (s FarmIDSet) Has(id types.FarmID) bool {
	_, ok := s[id]
	return ok
}

func (s FarmIDSet) Remove(id types.FarmID) {
	delete(s, id)
}

// Sorted returns the members as a new slice in lexical order. The slice is
// never nil, an empty set yields an empty array in both wire forms.
func (s FarmIDSet) Sorted() []types.FarmID {
	ids := make([]types.FarmID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (s FarmIDSet) MarshalCBOR() ([]byte, error) {
	return types.Cbor.Marshal(s.Sorted())
}

func (s *FarmIDSet) UnmarshalCBOR(data []byte) error {
	ids := []types.FarmID{}
	if err := types.Cbor.Unmarshal(data, &ids); err != nil {
		return fmt.Errorf("decoding farm list: %w", err)
	}
	set, err := newFarmIDSet(ids)
	if err != nil {
		return err
	}
	*s = set
	return nil
}

func (s FarmIDSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *FarmIDSet) UnmarshalJSON(data []byte) error {
	ids := []types.FarmID{}
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	set, err := newFarmIDSet(ids)
	if err != nil {
		return err
	}
	*s = set
	return nil
}

func newFarmIDSet(ids []types.FarmID) (FarmIDSet, error) {
	set := make(FarmIDSet, len(ids))
	for _, id := range ids {
		if set.Has(id) {
			return nil, fmt.Errorf("duplicate farm %s", id)
		}
		set.Add(id)
	}
	return set, nil
}
