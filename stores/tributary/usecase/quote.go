package usecase

import (
	"math/big"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tributary-xyz/goapi/base/ctx"
	"github.com/tributary-xyz/goapi/base/log"
	"github.com/tributary-xyz/goapi/domain"
	"github.com/tributary-xyz/goapi/domain/tributary"
)

// feeOf computes value * bps / 10000 with integer arithmetic. Multiply
// before divide; truncation toward zero is the accepted rounding policy.
func feeOf(value *big.Int, bps int64) *big.Int {
	fee := new(big.Int).Mul(value, big.NewInt(bps))
	return fee.Quo(fee, domain.BpsBase)
}

// priceImpactBps compares the average fill price to the best consumed
// price, in basis points. A zero floor means an undefined market and
// reports zero impact.
func priceImpactBps(avgPrice, floor *big.Int) int64 {
	if floor == nil || floor.Sign() == 0 {
		return 0
	}
	diff := new(big.Int).Sub(avgPrice, floor)
	diff.Mul(diff, domain.BpsBase)
	diff.Quo(diff, floor)
	return diff.Int64()
}

// displayBps renders a bps value as a two-decimal percentage. Presentation
// only, never feeds back into quote math.
func displayBps(bps int64) float64 {
	return decimal.NewFromInt(bps).Div(decimal.NewFromInt(100)).InexactFloat64()
}

func (im *impl) GetBuyQuote(ctx ctx.Ctx, chainId domain.ChainId, token domain.Address, amount *big.Int) (*tributary.BuyQuote, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	listings, err := im.getListings(ctx, chainId, token)
	if err != nil {
		return nil, err
	}

	now := timeNow()
	plan := buildFillPlan(listings, amount, now.Unix())
	if !plan.canFill {
		return nil, &tributary.InsufficientLiquidityError{
			Requested: new(big.Int).Set(amount),
			Available: plan.available,
		}
	}

	totalCost := plan.totalCost

	// truncating integer division is fine for quoting, fee math below
	// derives from totalCost rather than avgPrice * amount
	avgPrice := new(big.Int).Quo(totalCost, amount)

	platformFee := feeOf(totalCost, im.feeConfig.PlatformFeeBps)
	creatorFee := feeOf(totalCost, im.feeConfig.CreatorFeeBps)
	totalWithFees := new(big.Int).Add(totalCost, platformFee)
	totalWithFees.Add(totalWithFees, creatorFee)

	// the plan is never empty here since canFill holds and amount > 0
	floor := plan.fills[0].price
	impactBps := priceImpactBps(avgPrice, floor)

	paymentToken := plan.fills[0].paymentToken

	quote := &tributary.BuyQuote{
		QuoteId:              uuid.NewString(),
		ChainId:              chainId,
		Token:                token.ToLower(),
		PaymentToken:         paymentToken,
		Amount:               amount.String(),
		TotalCost:            totalCost.String(),
		AvgPrice:             avgPrice.String(),
		PlatformFee:          platformFee.String(),
		CreatorFee:           creatorFee.String(),
		TotalWithFees:        totalWithFees.String(),
		DisplayAvgPrice:      im.displayAmount(ctx, chainId, paymentToken, avgPrice),
		DisplayTotalWithFees: im.displayAmount(ctx, chainId, paymentToken, totalWithFees),
		PriceImpactBps:       impactBps,
		PriceImpact:          displayBps(impactBps),
		FillPlan:             plan.toDomain(),
		ExpiresAt:            now.Add(im.quoteTTL).Unix(),
	}

	ctx.WithFields(log.Fields{
		"token":     token,
		"amount":    amount.String(),
		"totalCost": totalCost.String(),
		"fills":     len(quote.FillPlan.Fills),
	}).Info("buy quote built")

	return quote, nil
}

func (im *impl) GetSellQuote(ctx ctx.Ctx, chainId domain.ChainId, token domain.Address, amount *big.Int, listingPrice *big.Int) (*tributary.SellQuote, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if listingPrice != nil && listingPrice.Sign() <= 0 {
		return nil, domain.ErrInvalidPrice
	}

	listings, err := im.getListings(ctx, chainId, token)
	if err != nil {
		return nil, err
	}

	now := timeNow()
	floor := floorPriceOf(listings, now.Unix())
	if floor == nil {
		floor = im.chainFloorPrice(ctx, chainId, token)
	}
	if floor == nil {
		floor = new(big.Int)
	}

	pricePerToken := listingPrice
	if pricePerToken == nil {
		pricePerToken = floor
	}

	proceeds := new(big.Int).Mul(amount, pricePerToken)
	platformFee := feeOf(proceeds, im.feeConfig.PlatformFeeBps)
	creatorFee := feeOf(proceeds, im.feeConfig.CreatorFeeBps)
	netProceeds := new(big.Int).Sub(proceeds, platformFee)
	netProceeds.Sub(netProceeds, creatorFee)

	// 2% below floor to encourage fills, a recommendation only
	suggestedPrice := new(big.Int).Set(pricePerToken)
	if floor.Sign() > 0 {
		suggestedPrice.Mul(floor, big.NewInt(98))
		suggestedPrice.Quo(suggestedPrice, domain.Big100)
	}

	paymentToken := paymentTokenOf(listings)

	quote := &tributary.SellQuote{
		QuoteId:            uuid.NewString(),
		ChainId:            chainId,
		Token:              token.ToLower(),
		PaymentToken:       paymentToken,
		Amount:             amount.String(),
		PricePerToken:      pricePerToken.String(),
		Proceeds:           proceeds.String(),
		PlatformFee:        platformFee.String(),
		CreatorFee:         creatorFee.String(),
		NetProceeds:        netProceeds.String(),
		SuggestedPrice:     suggestedPrice.String(),
		FloorPrice:         floor.String(),
		DisplayNetProceeds: im.displayAmount(ctx, chainId, paymentToken, netProceeds),
		ExpiresAt:          now.Add(im.quoteTTL).Unix(),
	}

	ctx.WithFields(log.Fields{
		"token":    token,
		"amount":   amount.String(),
		"proceeds": proceeds.String(),
	}).Info("sell quote built")

	return quote, nil
}

// paymentTokenOf picks the payment token of the first active listing.
// The market lists one payment token per royalty token, so any active
// listing is authoritative.
func paymentTokenOf(listings []*tributary.Listing) domain.Address {
	for _, l := range listings {
		if l.IsActive {
			return l.PaymentToken
		}
	}
	return ""
}
