package types

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"
)

// U128 is an unsigned 128-bit integer, the balance domain of the seed
// ledger. Arithmetic is exact within [0, 2^128) and never wraps; the Safe
// operations report when a result would leave the domain.
//
// JSON carries a U128 as a string of decimal digits so that consumers with
// narrower numeric types keep full precision. CBOR carries the minimal
// big-endian byte representation.
type U128 struct {
	v uint256.Int
}

const maxU128Bits = 128

func NewU128(v uint64) U128 {
	var u U128
	u.v.SetUint64(v)
	return u
}

// U128FromDecimal parses a base 10 amount.
func U128FromDecimal(s string) (U128, error) {
	if s == "" {
		return U128{}, errors.New("empty amount")
	}
	var u U128
	if err := u.v.SetFromDecimal(s); err != nil {
		return U128{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if u.v.BitLen() > maxU128Bits {
		return U128{}, fmt.Errorf("amount %s does not fit into 128 bits", s)
	}
	return u, nil
}

// MustU128 is U128FromDecimal for constants in tests and genesis data.
func MustU128(s string) U128 {
	u, err := U128FromDecimal(s)
	if err != nil {
		panic(err)
	}
	return u
}

// SafeAdd returns u+x and checks that the sum stays below 2^128.
func (u U128) SafeAdd(x U128) (U128, bool) {
	var sum U128
	sum.v.Add(&u.v, &x.v)
	if sum.v.BitLen() > maxU128Bits {
		return U128{}, false
	}
	return sum, true
}

// SafeSub returns u-x and checks for underflow.
func (u U128) SafeSub(x U128) (U128, bool) {
	var diff U128
	if _, underflow := diff.v.SubOverflow(&u.v, &x.v); underflow {
		return U128{}, false
	}
	return diff, true
}

func (u U128) Cmp(x U128) int {
	return u.v.Cmp(&x.v)
}

func (u U128) Less(x U128) bool {
	return u.v.Lt(&x.v)
}

func (u U128) Equal(x U128) bool {
	return u.v.Eq(&x.v)
}

func (u U128) IsZero() bool {
	return u.v.IsZero()
}

func (u U128) String() string {
	return u.v.Dec()
}

func (u U128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.v.Dec() + `"`), nil
}

func (u *U128) UnmarshalJSON(bs []byte) error {
	if len(bs) < 2 || bs[0] != '"' || bs[len(bs)-1] != '"' {
		return fmt.Errorf("amount must be a string of decimal digits, got %s", bs)
	}
	v, err := U128FromDecimal(string(bs[1 : len(bs)-1]))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U128) MarshalCBOR() ([]byte, error) {
	return Cbor.Marshal(u.v.Bytes())
}

func (u *U128) UnmarshalCBOR(data []byte) error {
	var b []byte
	if err := Cbor.Unmarshal(data, &b); err != nil {
		return fmt.Errorf("decoding amount bytes: %w", err)
	}
	if len(b) > maxU128Bits/8 {
		return fmt.Errorf("amount of %d bytes does not fit into 128 bits", len(b))
	}
	u.v.SetBytes(b)
	return nil
}
