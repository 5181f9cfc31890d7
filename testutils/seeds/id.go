package seeds

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/seedfarm-org/seedfarm-go-base/farming"
	"github.com/seedfarm-org/seedfarm-go-base/types"
)

/*
NewFTSeedID generates "valid looking" seed ID of a fungible token
contract, unique with overwhelming probability.
*/
func NewFTSeedID(t *testing.T) types.SeedID {
	return types.SeedID(fmt.Sprintf("token-%s.near", randomSuffix(t)))
}

func NewMFTSeedID(t *testing.T, tokenIndex uint32) types.SeedID {
	return types.SeedID(fmt.Sprintf("amm-%s.near%s%d", randomSuffix(t), types.IDSeparator, tokenIndex))
}

func NewNFTBalance(t *testing.T, n int) farming.NFTBalance {
	balance := make(farming.NFTBalance, n)
	for i := 0; i < n; i++ {
		balance[types.NFTTokenID(fmt.Sprintf("comic-%s.near@1", randomSuffix(t)))] = types.NewU128(1)
	}
	return balance
}

func randomSuffix(t *testing.T) string {
	buf := make([]byte, 4)
	if err := Random(buf); err != nil {
		t.Fatal("failed to generate seed ID:", err)
	}
	return hex.EncodeToString(buf)
}

func Random(buf []byte) error {
	_, err := rand.Read(buf)
	return err
}
