package domain

import (
	"github.com/tributary-xyz/goapi/base/ctx"
)

type PayTokenId struct {
	ChainId ChainId `bson:"chainId"`
	Address Address `bson:"address"`
}

// PayToken is metadata of a currency accepted by the market, used to turn
// smallest-unit integer prices into display decimals.
type PayToken struct {
	Name          string  `bson:"name" json:"name"`
	Symbol        string  `bson:"symbol" json:"symbol"`
	TokenDecimals int32   `bson:"tokenDecimals" json:"tokenDecimals"`
	ChainId       ChainId `bson:"chainId" json:"chainId"`
	Address       Address `bson:"address" json:"address"`
	IsMainnet     bool    `bson:"isMainnet" json:"isMainnet"`
}

func (t *PayToken) ToId() *PayTokenId {
	return &PayTokenId{
		ChainId: t.ChainId,
		Address: t.Address,
	}
}

type PayTokenRepo interface {
	FindOne(ctx.Ctx, ChainId, Address) (*PayToken, error)
	Upsert(ctx.Ctx, *PayToken) error
}
