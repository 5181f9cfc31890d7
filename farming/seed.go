// Package farming holds the per seed ledger records of the farming system:
// the staked balance of each seed, the farms it feeds and the versioned
// envelope the records are stored in.
package farming

import (
	"errors"
	"fmt"
	"maps"
	"math"

	"github.com/seedfarm-org/seedfarm-go-base/types"
)

const (
	SeedTypeFT SeedType = iota
	SeedTypeMFT
	SeedTypeNFT
)

var (
	// ErrInsufficientSeedAmount is the panic payload of SubAmount when the
	// seed holds less than the amount to withdraw.
	ErrInsufficientSeedAmount = errors.New("insufficient seed amount")

	// ErrSeedAmountOverflow is the panic payload of AddAmount when the
	// total would grow past 2^128.
	ErrSeedAmountOverflow = errors.New("seed amount overflow")

	ErrFarmIndexExhausted = errors.New("farm index space exhausted")
)

type (
	// SeedType classifies the staked asset of a seed.
	SeedType uint8

	// NFTBalance holds the balance equivalents of the tokens accepted under
	// an NFT seed. Its presence on an entry is what makes the seed an NFT
	// seed.
	NFTBalance map[types.NFTTokenID]types.U128

	// FarmSeedMetadata is optional display metadata of a seed.
	FarmSeedMetadata struct {
		_     struct{} `cbor:",toarray"`
		Title string   `json:"title"`
		Media string   `json:"media"`
	}

	// FarmSeed stores information per seed: the staked seed amount and the
	// farms under it.
	FarmSeed struct {
		_ struct{} `cbor:",toarray"`
		// SeedID and SeedType are fixed at construction and never change.
		SeedID   types.SeedID `json:"seedId"`
		SeedType SeedType     `json:"seedType"`
		// Farms holds all farms that accept this seed.
		Farms     FarmIDSet `json:"farms"`
		NextIndex uint32    `json:"nextIndex"`
		// Amount is the total staked balance of this seed.
		Amount     types.U128        `json:"amount"`
		MinDeposit types.U128        `json:"minDeposit"`
		NFTBalance NFTBalance        `json:"nftBalance,omitempty"`
		Metadata   *FarmSeedMetadata `json:"metadata,omitempty"`
	}
)

func (t SeedType) String() string {
	switch t {
	case SeedTypeFT:
		return "FT"
	case SeedTypeMFT:
		return "MFT"
	case SeedTypeNFT:
		return "NFT"
	default:
		return fmt.Sprintf("SeedType(%d)", uint8(t))
	}
}

func (t SeedType) IsValid() error {
	switch t {
	case SeedTypeFT, SeedTypeMFT, SeedTypeNFT:
		return nil
	}
	return fmt.Errorf("unknown seed type %d", uint8(t))
}

func (t SeedType) MarshalText() ([]byte, error) {
	if err := t.IsValid(); err != nil {
		return nil, err
	}
	return []byte(t.String()), nil
}

func (t *SeedType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "FT":
		*t = SeedTypeFT
	case "MFT":
		*t = SeedTypeMFT
	case "NFT":
		*t = SeedTypeNFT
	default:
		return fmt.Errorf("unknown seed type %q", text)
	}
	return nil
}

// ClassifySeed determines the type of a seed. A present NFT balance makes
// it an NFT seed whatever the identifier looks like, the identifier then
// names the balance equivalent. Otherwise a composite identifier names an
// inner token of a multi-token contract and a plain one a token contract.
func ClassifySeed(seedID types.SeedID, hasNFTBalance bool) (SeedType, error) {
	tokenID, tokenIndex, err := types.ParseSeedID(seedID)
	if err != nil {
		return 0, err
	}
	switch {
	case hasNFTBalance:
		return SeedTypeNFT, nil
	case tokenID == tokenIndex:
		return SeedTypeFT, nil
	default:
		return SeedTypeMFT, nil
	}
}

// NewFarmSeed creates the ledger entry of a new seed with zero staked
// amount. The NFT balance map, when given, is owned by the entry
// afterwards; its presence makes the seed an NFT seed.
func NewFarmSeed(seedID types.SeedID, minDeposit types.U128, nftBalance NFTBalance, metadata *FarmSeedMetadata) (*FarmSeed, error) {
	seedType, err := ClassifySeed(seedID, nftBalance != nil)
	if err != nil {
		return nil, err
	}
	return &FarmSeed{
		SeedID:     seedID,
		SeedType:   seedType,
		Farms:      FarmIDSet{},
		MinDeposit: minDeposit,
		NFTBalance: nftBalance,
		Metadata:   metadata,
	}, nil
}

// AddAmount stakes amount into the seed. Growing the total past 2^128 is a
// fault in the ledger itself and panics.
func (fs *FarmSeed) AddAmount(amount types.U128) {
	sum, ok := fs.Amount.SafeAdd(amount)
	if !ok {
		panic(fmt.Errorf("%w: %s + %s on seed %s", ErrSeedAmountOverflow, fs.Amount, amount, fs.SeedID))
	}
	fs.Amount = sum
}

// SubAmount unstakes amount from the seed and returns the remaining total.
// Withdrawing more than is staked is a fault in the caller's accounting
// and panics, with the entry unchanged.
func (fs *FarmSeed) SubAmount(amount types.U128) types.U128 {
	diff, ok := fs.Amount.SafeSub(amount)
	if !ok {
		panic(fmt.Errorf("%w: %s - %s on seed %s", ErrInsufficientSeedAmount, fs.Amount, amount, fs.SeedID))
	}
	fs.Amount = diff
	return fs.Amount
}

// RegisterFarm mints the identifier of the next farm under the seed and
// records it. Sequence numbers are never reused, removing a farm does not
// free its slot.
func (fs *FarmSeed) RegisterFarm() (types.FarmID, error) {
	if fs.NextIndex == math.MaxUint32 {
		return "", fmt.Errorf("%w: seed %s", ErrFarmIndexExhausted, fs.SeedID)
	}
	id := types.ComposeFarmID(fs.SeedID, fs.NextIndex)
	fs.Farms.Add(id)
	fs.NextIndex++
	return id, nil
}

// RemoveFarm forgets a farm and reports whether it was present.
func (fs *FarmSeed) RemoveFarm(id types.FarmID) bool {
	if !fs.Farms.Has(id) {
		return false
	}
	fs.Farms.Remove(id)
	return true
}

// IsValid verifies the structural invariants of the entry.
func (fs *FarmSeed) IsValid() error {
	if fs == nil {
		return errors.New("farm seed is nil")
	}
	if err := fs.SeedType.IsValid(); err != nil {
		return err
	}
	seedType, err := ClassifySeed(fs.SeedID, fs.NFTBalance != nil)
	if err != nil {
		return err
	}
	if fs.SeedType != seedType {
		return fmt.Errorf("seed type %s of seed %s does not match its classification %s", fs.SeedType, fs.SeedID, seedType)
	}
	for id := range fs.Farms {
		seedID, sequence, err := types.ParseFarmID(id)
		if err != nil {
			return err
		}
		if seedID != fs.SeedID {
			return fmt.Errorf("farm %s does not belong to seed %s", id, fs.SeedID)
		}
		if sequence >= fs.NextIndex {
			return fmt.Errorf("farm %s is beyond the next farm index %d", id, fs.NextIndex)
		}
	}
	return nil
}

// Copy returns a deep copy of the entry.
func (fs *FarmSeed) Copy() *FarmSeed {
	if fs == nil {
		return nil
	}
	c := *fs
	c.Farms = maps.Clone(fs.Farms)
	c.NFTBalance = maps.Clone(fs.NFTBalance)
	if fs.Metadata != nil {
		m := *fs.Metadata
		c.Metadata = &m
	}
	return &c
}
