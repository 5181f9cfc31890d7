package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ParseSeedID(t *testing.T) {
	t.Run("plain identifier yields the same segment twice", func(t *testing.T) {
		tokenID, tokenIndex, err := ParseSeedID("usdc.near")
		require.NoError(t, err)
		require.Equal(t, "usdc.near", tokenID)
		require.Equal(t, "usdc.near", tokenIndex)
	})

	t.Run("composite identifier", func(t *testing.T) {
		tokenID, tokenIndex, err := ParseSeedID("mft.near#3")
		require.NoError(t, err)
		require.Equal(t, "mft.near", tokenID)
		require.Equal(t, "3", tokenIndex)
	})

	t.Run("malformed identifiers", func(t *testing.T) {
		for _, id := range []SeedID{"", "#", "#x", "x#", "a#b#c", "##"} {
			_, _, err := ParseSeedID(id)
			require.Error(t, err, "id %q", id)
		}
	})
}

func Test_SeedID_IsValid(t *testing.T) {
	require.NoError(t, SeedID("usdc.near").IsValid())
	require.NoError(t, SeedID("mft.near#0").IsValid())
	require.Error(t, SeedID("").IsValid())
	require.Error(t, SeedID("mft.near#0#1").IsValid())
}

func Test_FarmID(t *testing.T) {
	t.Run("compose and parse", func(t *testing.T) {
		id := ComposeFarmID("usdc.near", 0)
		require.Equal(t, FarmID("usdc.near#0"), id)

		seedID, sequence, err := ParseFarmID(id)
		require.NoError(t, err)
		require.Equal(t, SeedID("usdc.near"), seedID)
		require.EqualValues(t, 0, sequence)
	})

	t.Run("farm under a composite seed splits on the last separator", func(t *testing.T) {
		id := ComposeFarmID("mft.near#3", 7)
		require.Equal(t, FarmID("mft.near#3#7"), id)

		seedID, sequence, err := ParseFarmID(id)
		require.NoError(t, err)
		require.Equal(t, SeedID("mft.near#3"), seedID)
		require.EqualValues(t, 7, sequence)
	})

	t.Run("malformed identifiers", func(t *testing.T) {
		ids := []FarmID{
			"",
			"usdc.near",
			"#0",
			"usdc.near#",
			"usdc.near#x",
			"usdc.near#-1",
			"a#b#c#0",
			"usdc.near#4294967296",
		}
		for _, id := range ids {
			_, _, err := ParseFarmID(id)
			require.Error(t, err, "id %q", id)
		}
	})
}
