package usecase

import (
	"math/big"
	"sort"

	"github.com/tributary-xyz/goapi/domain"
	"github.com/tributary-xyz/goapi/domain/tributary"
)

// eligible is a fillable listing with its numeric fields parsed
type eligible struct {
	listing   *tributary.Listing
	price     *big.Int
	remaining *big.Int
}

type fill struct {
	listingId    uint64
	seller       domain.Address
	paymentToken domain.Address
	price        *big.Int
	amount       *big.Int
	subtotal     *big.Int
}

type fillPlan struct {
	fills     []fill
	canFill   bool
	available *big.Int
	totalCost *big.Int
}

// selectEligible filters listings down to the ones fillable at `now` and
// parses their amounts. Rows that fail to parse are skipped rather than
// failing the whole quote, since one malformed indexer row must not take
// the market down.
func selectEligible(listings []*tributary.Listing, now int64) []eligible {
	res := []eligible{}
	for _, l := range listings {
		if !l.Fillable(now) {
			continue
		}
		price, err := domain.ParseBigInt(l.PricePerToken)
		if err != nil {
			continue
		}
		remaining, err := l.Remaining()
		if err != nil {
			continue
		}
		res = append(res, eligible{listing: l, price: price, remaining: remaining})
	}

	// price-time priority: best price first, oldest offer breaks ties
	sort.SliceStable(res, func(i, j int) bool {
		if c := res[i].price.Cmp(res[j].price); c != 0 {
			return c < 0
		}
		return res[i].listing.CreatedAt < res[j].listing.CreatedAt
	})

	return res
}

// buildFillPlan greedily consumes the cheapest listings until `amount` is
// satisfied. It is a pure function of its inputs. When total capacity is
// short of `amount` the plan carries no fills, only the available capacity.
func buildFillPlan(listings []*tributary.Listing, amount *big.Int, now int64) *fillPlan {
	elig := selectEligible(listings, now)

	available := new(big.Int)
	for _, e := range elig {
		available.Add(available, e.remaining)
	}

	if available.Cmp(amount) < 0 {
		return &fillPlan{
			canFill:   false,
			available: available,
			totalCost: new(big.Int),
		}
	}

	plan := &fillPlan{
		canFill:   true,
		available: available,
		totalCost: new(big.Int),
	}

	left := new(big.Int).Set(amount)
	for _, e := range elig {
		if left.Sign() == 0 {
			break
		}

		take := new(big.Int).Set(e.remaining)
		if take.Cmp(left) > 0 {
			take.Set(left)
		}

		subtotal := new(big.Int).Mul(take, e.price)
		plan.fills = append(plan.fills, fill{
			listingId:    e.listing.ListingId,
			seller:       e.listing.Seller,
			paymentToken: e.listing.PaymentToken,
			price:        e.price,
			amount:       take,
			subtotal:     subtotal,
		})
		plan.totalCost.Add(plan.totalCost, subtotal)
		left.Sub(left, take)
	}

	return plan
}

// floorPriceOf returns the lowest fillable ask, or nil when there is none
func floorPriceOf(listings []*tributary.Listing, now int64) *big.Int {
	elig := selectEligible(listings, now)
	if len(elig) == 0 {
		return nil
	}
	return elig[0].price
}

func (p *fillPlan) toDomain() tributary.FillPlan {
	fills := make([]tributary.Fill, 0, len(p.fills))
	for _, f := range p.fills {
		fills = append(fills, tributary.Fill{
			ListingId:     f.listingId,
			Seller:        f.seller,
			PricePerToken: f.price.String(),
			AmountFilled:  f.amount.String(),
			Subtotal:      f.subtotal.String(),
		})
	}
	return tributary.FillPlan{
		Fills:           fills,
		CanFill:         p.canFill,
		AvailableAmount: p.available.String(),
		TotalCost:       p.totalCost.String(),
	}
}
