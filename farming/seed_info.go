package farming

import (
	"maps"

	"github.com/seedfarm-org/seedfarm-go-base/types"
)

// SeedInfo is the query view of a seed ledger entry, rebuilt from the
// entry on every query and never stored. Amounts serialize as decimal
// strings so that consumers with narrower numeric types keep full
// precision, and the optional metadata fields flatten to empty strings.
type SeedInfo struct {
	SeedID     types.SeedID   `json:"seedId"`
	SeedType   string         `json:"seedType"`
	Farms      []types.FarmID `json:"farms"`
	NextIndex  uint32         `json:"nextIndex"`
	Amount     types.U128     `json:"amount"`
	MinDeposit types.U128     `json:"minDeposit"`
	NFTBalance NFTBalance     `json:"nftBalance"`
	Title      string         `json:"title"`
	Media      string         `json:"media"`
}

// NewSeedInfo builds the view of an entry. The farm list is sorted, so two
// views of the same entry are identical.
func NewSeedInfo(fs *FarmSeed) *SeedInfo {
	info := &SeedInfo{
		SeedID:     fs.SeedID,
		SeedType:   fs.SeedType.String(),
		Farms:      fs.Farms.Sorted(),
		NextIndex:  fs.NextIndex,
		Amount:     fs.Amount,
		MinDeposit: fs.MinDeposit,
		NFTBalance: maps.Clone(fs.NFTBalance),
	}
	if fs.Metadata != nil {
		info.Title = fs.Metadata.Title
		info.Media = fs.Metadata.Media
	}
	return info
}
