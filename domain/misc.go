package domain

import (
	"math/big"
	"strings"

	"golang.org/x/xerrors"
)

var (
	Big0    = big.NewInt(0)
	Big1    = big.NewInt(1)
	Big100  = big.NewInt(100)
	BpsBase = big.NewInt(10000)
)

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)

type ChainId int32

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0 || a == EmptyAddress
}

// Table is a mongo collection name
type Table string

const (
	TableListings  Table = "listings"
	TablePayTokens Table = "pay_tokens"
)

// ParseBigInt parses a base-10 integer string as used for token amounts and
// prices in their smallest unit
func ParseBigInt(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, xerrors.Errorf("parse %q: %w", s, ErrInvalidNumberFormat)
	}
	return v, nil
}
