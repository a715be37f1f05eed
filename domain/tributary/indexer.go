package tributary

import (
	"github.com/tributary-xyz/goapi/base/ctx"
	"github.com/tributary-xyz/goapi/domain"
)

// IndexerUseCase reconciles the listing store against chain state.
type IndexerUseCase interface {
	// RefreshListings walks the market contract's listings for one royalty
	// token and upserts them. Returns the number of listings written.
	RefreshListings(ctx ctx.Ctx, chainId domain.ChainId, marketAddr domain.Address, token domain.Address) (int, error)
}
