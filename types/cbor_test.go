package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Cbor_MarshalVersioned(t *testing.T) {
	t.Run("version zero is refused", func(t *testing.T) {
		_, err := Cbor.MarshalVersioned(NilSchemaVersion, "payload")
		require.EqualError(t, err, "version is nil")
	})

	t.Run("round trip", func(t *testing.T) {
		data, err := Cbor.MarshalVersioned(101, []string{"a", "b"})
		require.NoError(t, err)

		var payload []string
		ver, err := Cbor.UnmarshalVersioned(data, &payload)
		require.NoError(t, err)
		require.EqualValues(t, 101, ver)
		require.Equal(t, []string{"a", "b"}, payload)
	})

	t.Run("payload decoded into RawCBOR keeps its encoded form", func(t *testing.T) {
		data, err := Cbor.MarshalVersioned(7, uint64(42))
		require.NoError(t, err)

		var raw RawCBOR
		ver, err := Cbor.UnmarshalVersioned(data, &raw)
		require.NoError(t, err)
		require.EqualValues(t, 7, ver)

		var v uint64
		require.NoError(t, Cbor.Unmarshal(raw, &v))
		require.EqualValues(t, 42, v)
	})
}

func Test_RawCBOR(t *testing.T) {
	t.Run("empty encodes as nil marker", func(t *testing.T) {
		data, err := Cbor.Marshal(RawCBOR{})
		require.NoError(t, err)
		require.Equal(t, []byte{0xf6}, data)
	})

	t.Run("round trip", func(t *testing.T) {
		item, err := Cbor.Marshal("deposit")
		require.NoError(t, err)

		data, err := Cbor.Marshal(RawCBOR(item))
		require.NoError(t, err)

		var r RawCBOR
		require.NoError(t, Cbor.Unmarshal(data, &r))
		require.Equal(t, RawCBOR(item), r)
	})
}
