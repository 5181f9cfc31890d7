package farming

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/seedfarm-org/seedfarm-go-base/types"
)

// Seed schema versions. SeedSchemaV101 is the first and so far only layout
// of the stored seed record.
const (
	SeedSchemaV101 types.SchemaVersion = 101

	SeedSchemaCurrent = SeedSchemaV101
)

// ErrSchemaVersionNotCurrent is the panic payload of GetRef on an envelope
// that has not been upgraded to the current schema version.
var ErrSchemaVersionNotCurrent = errors.New("seed schema version is not current")

// VersionedFarmSeed wraps a FarmSeed together with the schema version of
// its serialized layout. It exists for lazy upgrades: a stored record is
// decoded whatever its version, migrated in memory when touched and
// written back in the current layout. Each new version extends Upgrade
// and UnmarshalCBOR with a path from the versions before it.
type VersionedFarmSeed struct {
	version types.SchemaVersion
	v101    *FarmSeed
}

var _ types.Versioned = (*VersionedFarmSeed)(nil)

// NewVersionedFarmSeed creates the ledger entry of a new seed wrapped in
// the current schema version.
func NewVersionedFarmSeed(seedID types.SeedID, minDeposit types.U128, nftBalance NFTBalance, metadata *FarmSeedMetadata) (*VersionedFarmSeed, error) {
	fs, err := NewFarmSeed(seedID, minDeposit, nftBalance, metadata)
	if err != nil {
		return nil, err
	}
	return &VersionedFarmSeed{version: SeedSchemaCurrent, v101: fs}, nil
}

func (v *VersionedFarmSeed) GetVersion() types.SchemaVersion {
	return v.version
}

// NeedUpgrade reports whether the record was stored in an older layout
// than the current one.
func (v *VersionedFarmSeed) NeedUpgrade() bool {
	return v.version != SeedSchemaCurrent
}

// Upgrade migrates the record to the current schema version. It is
// idempotent, a record already at the current version is returned as is.
func (v *VersionedFarmSeed) Upgrade() *VersionedFarmSeed {
	switch v.version {
	case SeedSchemaCurrent:
		return v
	default:
		// UnmarshalCBOR refuses versions it does not know, so there is no
		// version an upgrade path could start from yet.
		panic(fmt.Errorf("%w: no upgrade from version %d", ErrSchemaVersionNotCurrent, v.version))
	}
}

// GetRef projects to the wrapped entry, for reads and writes alike. The
// envelope must be at the current schema version: any other version is a
// fault in the caller and panics rather than serving a stale layout.
func (v *VersionedFarmSeed) GetRef() *FarmSeed {
	if v.version != SeedSchemaCurrent {
		panic(fmt.Errorf("%w: version %d", ErrSchemaVersionNotCurrent, v.version))
	}
	return v.v101
}

func (v *VersionedFarmSeed) IsValid() error {
	if v == nil {
		return errors.New("versioned farm seed is nil")
	}
	if err := types.EnsureVersion(v, v.version, SeedSchemaCurrent); err != nil {
		return err
	}
	return v.v101.IsValid()
}

// MarshalCBOR encodes the envelope as the schema version tag wrapping the
// entry payload, the form stored records are in.
func (v *VersionedFarmSeed) MarshalCBOR() ([]byte, error) {
	if err := types.EnsureVersion(v, v.version, SeedSchemaCurrent); err != nil {
		return nil, err
	}
	content, err := types.Cbor.Marshal(v.v101)
	if err != nil {
		return nil, fmt.Errorf("encoding seed record: %w", err)
	}
	return types.Cbor.Marshal(cbor.RawTag{
		Number:  uint64(v.version),
		Content: content,
	})
}

// UnmarshalCBOR decodes the version tag first and the entry in the layout
// that version prescribes. Versions newer than this code knows are
// refused, never guessed at.
func (v *VersionedFarmSeed) UnmarshalCBOR(data []byte) error {
	var raw cbor.RawTag
	if err := types.Cbor.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding versioned seed: %w", err)
	}
	switch ver := types.SchemaVersion(raw.Number); ver {
	case SeedSchemaV101:
		fs := &FarmSeed{}
		if err := types.Cbor.Unmarshal(raw.Content, fs); err != nil {
			return fmt.Errorf("decoding seed record v%d: %w", ver, err)
		}
		*v = VersionedFarmSeed{version: ver, v101: fs}
		return nil
	default:
		return fmt.Errorf("unsupported seed schema version %d", ver)
	}
}
