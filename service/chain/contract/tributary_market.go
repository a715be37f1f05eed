package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	baseabi "github.com/tributary-xyz/goapi/base/abi"
	bCtx "github.com/tributary-xyz/goapi/base/ctx"
	"github.com/tributary-xyz/goapi/service/chain"
)

// OnChainListing is the raw listing struct as returned by the market
// contract. The indexer reconciles mongo rows against it.
type OnChainListing struct {
	Seller        string
	Vault         string
	Token         string
	Amount        *big.Int
	Sold          *big.Int
	PricePerToken *big.Int
	PaymentToken  string
	IsActive      bool
	IsPrimarySale bool
	CreatedAt     *big.Int
	ExpiresAt     *big.Int
}

type TributaryMarketContract interface {
	ListingCount(ctx bCtx.Ctx, chainId int32, addr string) (*big.Int, error)
	GetListing(ctx bCtx.Ctx, chainId int32, addr string, listingId *big.Int) (*OnChainListing, error)
	FloorPrice(ctx bCtx.Ctx, chainId int32, addr string, token string) (*big.Int, error)
}

type TributaryMarket struct {
	chainService chain.Client
	abi          ethabi.ABI
}

func NewTributaryMarket(chainService chain.Client) *TributaryMarket {
	return &TributaryMarket{
		chainService: chainService,
		abi:          baseabi.TributaryMarketABI,
	}
}

func (m *TributaryMarket) ListingCount(ctx bCtx.Ctx, chainId int32, addr string) (*big.Int, error) {
	method := "listingCount"
	unpacked, err := m.chainService.Call(ctx, chainId, common.HexToAddress(addr), nil, m.abi, method)
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

func (m *TributaryMarket) GetListing(ctx bCtx.Ctx, chainId int32, addr string, listingId *big.Int) (*OnChainListing, error) {
	method := "getListing"
	unpacked, err := m.chainService.Call(ctx, chainId, common.HexToAddress(addr), nil, m.abi, method, listingId)
	if err != nil {
		return nil, err
	}
	return &OnChainListing{
		Seller:        unpacked[0].(common.Address).String(),
		Vault:         unpacked[1].(common.Address).String(),
		Token:         unpacked[2].(common.Address).String(),
		Amount:        unpacked[3].(*big.Int),
		Sold:          unpacked[4].(*big.Int),
		PricePerToken: unpacked[5].(*big.Int),
		PaymentToken:  unpacked[6].(common.Address).String(),
		IsActive:      unpacked[7].(bool),
		IsPrimarySale: unpacked[8].(bool),
		CreatedAt:     unpacked[9].(*big.Int),
		ExpiresAt:     unpacked[10].(*big.Int),
	}, nil
}

func (m *TributaryMarket) FloorPrice(ctx bCtx.Ctx, chainId int32, addr string, token string) (*big.Int, error) {
	method := "floorPrice"
	unpacked, err := m.chainService.Call(ctx, chainId, common.HexToAddress(addr), nil, m.abi, method, common.HexToAddress(token))
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}
