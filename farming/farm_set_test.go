package farming

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seedfarm-org/seedfarm-go-base/types"
)

func Test_FarmIDSet(t *testing.T) {
	t.Run("membership", func(t *testing.T) {
		s := FarmIDSet{}
		require.False(t, s.Has("usdc.near#0"))

		s.Add("usdc.near#0")
		s.Add("usdc.near#0")
		require.True(t, s.Has("usdc.near#0"))
		require.Len(t, s, 1)

		s.Remove("usdc.near#0")
		require.Empty(t, s)
	})

	t.Run("sorted view is lexical and never nil", func(t *testing.T) {
		s := FarmIDSet{}
		s.Add("usdc.near#2")
		s.Add("usdc.near#0")
		s.Add("usdc.near#10")
		require.Equal(t, []types.FarmID{"usdc.near#0", "usdc.near#10", "usdc.near#2"}, s.Sorted())

		require.NotNil(t, FarmIDSet{}.Sorted())
		require.Empty(t, FarmIDSet{}.Sorted())
	})

	t.Run("CBOR form is a sorted array", func(t *testing.T) {
		s := FarmIDSet{}
		s.Add("b.near#1")
		s.Add("a.near#1")

		data, err := types.Cbor.Marshal(s)
		require.NoError(t, err)

		var ids []types.FarmID
		require.NoError(t, types.Cbor.Unmarshal(data, &ids))
		require.Equal(t, []types.FarmID{"a.near#1", "b.near#1"}, ids)

		var back FarmIDSet
		require.NoError(t, types.Cbor.Unmarshal(data, &back))
		require.Equal(t, s, back)
	})

	t.Run("duplicate members are refused", func(t *testing.T) {
		data, err := types.Cbor.Marshal([]types.FarmID{"a.near#1", "a.near#1"})
		require.NoError(t, err)

		var s FarmIDSet
		require.ErrorContains(t, types.Cbor.Unmarshal(data, &s), "duplicate farm")

		var fromJSON FarmIDSet
		require.ErrorContains(t, json.Unmarshal([]byte(`["a.near#1","a.near#1"]`), &fromJSON), "duplicate farm")
	})

	t.Run("JSON round trip", func(t *testing.T) {
		s := FarmIDSet{}
		s.Add("usdc.near#0")

		data, err := json.Marshal(s)
		require.NoError(t, err)
		require.JSONEq(t, `["usdc.near#0"]`, string(data))

		var back FarmIDSet
		require.NoError(t, json.Unmarshal(data, &back))
		require.Equal(t, s, back)
	})
}
