package usecase

import (
	"math/big"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tributary-xyz/goapi/base/ctx"
	"github.com/tributary-xyz/goapi/base/log"
	"github.com/tributary-xyz/goapi/domain"
	"github.com/tributary-xyz/goapi/domain/tributary"
	"github.com/tributary-xyz/goapi/service/chain/contract"
)

const defaultQuoteTTL = 60 * time.Second

var timeNow = time.Now

type TributaryUseCaseCfg struct {
	ListingRepo  tributary.ListingRepo
	PayTokenRepo domain.PayTokenRepo
	FeeConfig    tributary.FeeConfig
	QuoteTTL     time.Duration
	// Market and MarketAddrs enable the on-chain floor fallback when the
	// listing store has no eligible asks. Optional.
	Market      contract.TributaryMarketContract
	MarketAddrs map[domain.ChainId]domain.Address
}

type impl struct {
	listingRepo  tributary.ListingRepo
	payTokenRepo domain.PayTokenRepo
	feeConfig    tributary.FeeConfig
	quoteTTL     time.Duration
	market       contract.TributaryMarketContract
	marketAddrs  map[domain.ChainId]domain.Address
}

func New(cfg *TributaryUseCaseCfg) tributary.UseCase {
	ttl := cfg.QuoteTTL
	if ttl == 0 {
		ttl = defaultQuoteTTL
	}
	return &impl{
		listingRepo:  cfg.ListingRepo,
		payTokenRepo: cfg.PayTokenRepo,
		feeConfig:    cfg.FeeConfig,
		quoteTTL:     ttl,
		market:       cfg.Market,
		marketAddrs:  cfg.MarketAddrs,
	}
}

func (im *impl) getListings(ctx ctx.Ctx, chainId domain.ChainId, token domain.Address) ([]*tributary.Listing, error) {
	listings, err := im.listingRepo.FindAll(ctx,
		tributary.WithChainId(chainId),
		tributary.WithToken(token),
	)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"chainId": chainId,
			"token":   token,
		}).Error("listingRepo.FindAll failed")
		return nil, err
	}
	return listings, nil
}

func (im *impl) GetListings(ctx ctx.Ctx, opts ...tributary.ListingFindAllOptionsFunc) ([]*tributary.Listing, error) {
	res, err := im.listingRepo.FindAll(ctx, opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("listingRepo.FindAll failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) GetFloorPrice(ctx ctx.Ctx, chainId domain.ChainId, token domain.Address) (string, error) {
	listings, err := im.getListings(ctx, chainId, token)
	if err != nil {
		return "", err
	}

	floor := floorPriceOf(listings, timeNow().Unix())
	if floor == nil {
		floor = im.chainFloorPrice(ctx, chainId, token)
	}
	if floor == nil {
		return "0", nil
	}
	return floor.String(), nil
}

// chainFloorPrice reads the market contract floor, used when the listing
// store has no eligible asks. Returns nil when no market is configured for
// the chain or the read fails.
func (im *impl) chainFloorPrice(ctx ctx.Ctx, chainId domain.ChainId, token domain.Address) *big.Int {
	if im.market == nil {
		return nil
	}
	marketAddr, ok := im.marketAddrs[chainId]
	if !ok {
		return nil
	}
	floor, err := im.market.FloorPrice(ctx, int32(chainId), string(marketAddr), string(token))
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"chainId": chainId,
			"token":   token,
		}).Warn("market.FloorPrice failed")
		return nil
	}
	if floor == nil || floor.Sign() <= 0 {
		return nil
	}
	return floor
}

// displayAmount scales a smallest-unit value by the payment token decimals.
// Returns empty string when the payment token is unknown; quoting proceeds
// without the display value.
func (im *impl) displayAmount(ctx ctx.Ctx, chainId domain.ChainId, paymentToken domain.Address, value *big.Int) string {
	if paymentToken.IsEmpty() {
		return ""
	}
	payToken, err := im.payTokenRepo.FindOne(ctx, chainId, paymentToken)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":          err,
			"chainId":      chainId,
			"paymentToken": paymentToken,
		}).Warn("payTokenRepo.FindOne failed")
		return ""
	}
	return decimal.NewFromBigInt(value, -payToken.TokenDecimals).String()
}
