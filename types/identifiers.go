package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// IDSeparator joins the segments of composite identifiers: the inner token
// index of a multi-token seed ("mft.near#3") and the farm sequence number
// of a farm ("usdc.near#0").
const IDSeparator = "#"

type (
	// SeedID identifies the staked asset of a seed. A plain identifier
	// names a token contract, a composite "contract#index" identifier
	// names one inner token of a multi-token contract.
	SeedID string

	// NFTTokenID identifies a single token within an NFT contract. It is
	// opaque to the ledger.
	NFTTokenID string

	// FarmID identifies one farm under a seed, "{seed_id}#{sequence}".
	FarmID string
)

// ParseSeedID splits a seed identifier into its contract and inner token
// segments. A plain identifier yields the same value for both segments. It
// is the single well-formedness check for seed identifiers: empty input,
// an empty segment or more than one separator is an error.
func ParseSeedID(id SeedID) (tokenID string, tokenIndex string, err error) {
	if id == "" {
		return "", "", errors.New("empty seed identifier")
	}
	parts := strings.Split(string(id), IDSeparator)
	switch len(parts) {
	case 1:
		return parts[0], parts[0], nil
	case 2:
		if parts[0] == "" || parts[1] == "" {
			return "", "", fmt.Errorf("illegal seed identifier %q: empty segment", id)
		}
		return parts[0], parts[1], nil
	default:
		return "", "", fmt.Errorf("illegal seed identifier %q: more than one %q", id, IDSeparator)
	}
}

func (id SeedID) IsValid() error {
	_, _, err := ParseSeedID(id)
	return err
}

func (id SeedID) String() string {
	return string(id)
}

// ComposeFarmID builds the identifier of the farm with the given sequence
// number under a seed.
func ComposeFarmID(seedID SeedID, sequence uint32) FarmID {
	return FarmID(fmt.Sprintf("%s%s%d", seedID, IDSeparator, sequence))
}

// ParseFarmID splits a farm identifier into its seed and farm sequence
// number. The split is on the last separator so that farms under composite
// seed identifiers ("mft.near#3#7") parse correctly.
func ParseFarmID(id FarmID) (SeedID, uint32, error) {
	i := strings.LastIndex(string(id), IDSeparator)
	if i < 0 {
		return "", 0, fmt.Errorf("illegal farm identifier %q: no separator", id)
	}
	seedID := SeedID(id[:i])
	if err := seedID.IsValid(); err != nil {
		return "", 0, fmt.Errorf("illegal farm identifier %q: %w", id, err)
	}
	sequence, err := strconv.ParseUint(string(id[i+1:]), 10, 32)
	if err != nil {
		return "", 0, fmt.Errorf("illegal farm identifier %q: bad sequence number", id)
	}
	return seedID, uint32(sequence), nil
}

func (id FarmID) String() string {
	return string(id)
}
