package usecase

import (
	"math/big"

	"github.com/tributary-xyz/goapi/base/ctx"
	"github.com/tributary-xyz/goapi/base/log"
	"github.com/tributary-xyz/goapi/domain"
	"github.com/tributary-xyz/goapi/domain/tributary"
	"github.com/tributary-xyz/goapi/service/chain/contract"
)

type IndexerUseCaseCfg struct {
	ListingRepo tributary.ListingRepo
	Market      contract.TributaryMarketContract
}

type indexerImpl struct {
	listingRepo tributary.ListingRepo
	market      contract.TributaryMarketContract
}

func NewIndexer(cfg *IndexerUseCaseCfg) tributary.IndexerUseCase {
	return &indexerImpl{
		listingRepo: cfg.ListingRepo,
		market:      cfg.Market,
	}
}

func (im *indexerImpl) RefreshListings(ctx ctx.Ctx, chainId domain.ChainId, marketAddr domain.Address, token domain.Address) (int, error) {
	count, err := im.market.ListingCount(ctx, int32(chainId), string(marketAddr))
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"chainId": chainId,
			"market":  marketAddr,
		}).Error("market.ListingCount failed")
		return 0, err
	}

	token = token.ToLower()
	written := 0
	for id := int64(0); id < count.Int64(); id++ {
		onChain, err := im.market.GetListing(ctx, int32(chainId), string(marketAddr), big.NewInt(id))
		if err != nil {
			// one bad read must not stall the walk, the next tick retries
			ctx.WithFields(log.Fields{
				"err":       err,
				"listingId": id,
			}).Warn("market.GetListing failed")
			continue
		}
		if domain.Address(onChain.Token).ToLower() != token {
			continue
		}

		listing := &tributary.Listing{
			ChainId:       chainId,
			ListingId:     uint64(id),
			Seller:        domain.Address(onChain.Seller),
			Vault:         domain.Address(onChain.Vault),
			Token:         domain.Address(onChain.Token),
			Amount:        onChain.Amount.String(),
			Sold:          onChain.Sold.String(),
			PricePerToken: onChain.PricePerToken.String(),
			PaymentToken:  domain.Address(onChain.PaymentToken),
			IsActive:      onChain.IsActive,
			IsPrimarySale: onChain.IsPrimarySale,
			CreatedAt:     onChain.CreatedAt.Int64(),
			ExpiresAt:     onChain.ExpiresAt.Int64(),
		}
		if err := im.listingRepo.Upsert(ctx, listing); err != nil {
			ctx.WithFields(log.Fields{
				"err":       err,
				"listingId": id,
			}).Error("listingRepo.Upsert failed")
			return written, err
		}
		written++
	}

	ctx.WithFields(log.Fields{
		"chainId": chainId,
		"token":   token,
		"written": written,
	}).Info("listings refreshed")

	return written, nil
}
