package tributary

import (
	"fmt"
	"math/big"

	"github.com/tributary-xyz/goapi/base/ctx"
	"github.com/tributary-xyz/goapi/domain"
)

// FeeConfig carries the fee schedule in basis points over a 10000 base.
// It is injected at construction time so deployments (or, later, vaults)
// can override it without code changes.
type FeeConfig struct {
	PlatformFeeBps int64 `json:"platformFeeBps"`
	CreatorFeeBps  int64 `json:"creatorFeeBps"`
}

const (
	DefaultPlatformFeeBps = 250
	DefaultCreatorFeeBps  = 500
)

// Fill is one consumed listing inside a fill plan. Subtotal equals
// amountFilled * pricePerToken.
type Fill struct {
	ListingId     uint64         `json:"listingId"`
	Seller        domain.Address `json:"seller"`
	PricePerToken string         `json:"pricePerToken"`
	AmountFilled  string         `json:"amountFilled"`
	Subtotal      string         `json:"subtotal"`
}

// FillPlan is the ordered set of listings satisfying a buy amount at
// minimum aggregate cost. When CanFill is false the plan holds no fills
// and AvailableAmount reports the total fillable capacity instead.
type FillPlan struct {
	Fills           []Fill `json:"fills"`
	CanFill         bool   `json:"canFill"`
	AvailableAmount string `json:"availableAmount"`
	TotalCost       string `json:"totalCost"`
}

type BuyQuote struct {
	QuoteId       string         `json:"quoteId"`
	ChainId       domain.ChainId `json:"chainId"`
	Token         domain.Address `json:"token"`
	PaymentToken  domain.Address `json:"paymentToken"`
	Amount        string         `json:"amount"`
	TotalCost     string         `json:"totalCost"`
	AvgPrice      string         `json:"avgPrice"`
	PlatformFee   string         `json:"platformFee"`
	CreatorFee    string         `json:"creatorFee"`
	TotalWithFees string         `json:"totalWithFees"`
	// display prices are scaled by the payment token decimals, empty when
	// the payment token is unknown
	DisplayAvgPrice      string `json:"displayAvgPrice"`
	DisplayTotalWithFees string `json:"displayTotalWithFees"`
	// PriceImpactBps is the deviation of the average fill price from the
	// best consumed price, in basis points. PriceImpact is the same value
	// over 100 for display and must not feed further computation.
	PriceImpactBps int64    `json:"priceImpactBps"`
	PriceImpact    float64  `json:"priceImpact"`
	FillPlan       FillPlan `json:"fillPlan"`
	ExpiresAt      int64    `json:"expiresAt"`
}

type SellQuote struct {
	QuoteId            string         `json:"quoteId"`
	ChainId            domain.ChainId `json:"chainId"`
	Token              domain.Address `json:"token"`
	PaymentToken       domain.Address `json:"paymentToken"`
	Amount             string         `json:"amount"`
	PricePerToken      string         `json:"pricePerToken"`
	Proceeds           string         `json:"proceeds"`
	PlatformFee        string         `json:"platformFee"`
	CreatorFee         string         `json:"creatorFee"`
	NetProceeds        string         `json:"netProceeds"`
	SuggestedPrice     string         `json:"suggestedPrice"`
	FloorPrice         string         `json:"floorPrice"`
	DisplayNetProceeds string         `json:"displayNetProceeds"`
	ExpiresAt          int64          `json:"expiresAt"`
}

// InsufficientLiquidityError reports that a requested buy amount exceeds
// the fillable capacity across all eligible listings.
type InsufficientLiquidityError struct {
	Requested *big.Int
	Available *big.Int
}

func (e *InsufficientLiquidityError) Error() string {
	return fmt.Sprintf("insufficient liquidity: requested %s, available %s", e.Requested, e.Available)
}

type UseCase interface {
	GetBuyQuote(ctx ctx.Ctx, chainId domain.ChainId, token domain.Address, amount *big.Int) (*BuyQuote, error)
	// GetSellQuote prices a sale at listingPrice, falling back to the
	// current floor when listingPrice is nil. The seller's balance is
	// validated by the transaction path, not here.
	GetSellQuote(ctx ctx.Ctx, chainId domain.ChainId, token domain.Address, amount *big.Int, listingPrice *big.Int) (*SellQuote, error)
	GetPriceHistory(ctx ctx.Ctx, chainId domain.ChainId, token domain.Address, period Period, resolution Resolution) ([]PricePoint, error)
	GetFloorPrice(ctx ctx.Ctx, chainId domain.ChainId, token domain.Address) (string, error)
	GetListings(ctx ctx.Ctx, opts ...ListingFindAllOptionsFunc) ([]*Listing, error)
}
