package usecase

import (
	"math/big"

	"github.com/tributary-xyz/goapi/base/ctx"
	"github.com/tributary-xyz/goapi/base/log"
	"github.com/tributary-xyz/goapi/domain"
	"github.com/tributary-xyz/goapi/domain/tributary"
)

// GetPriceHistory buckets listing activity into a fixed-width OHLC series
// over [now-period, now]. Buckets with no active listings are filled flat
// at the current floor price so charts render a continuous line; consumers
// depend on the series having no gaps.
func (im *impl) GetPriceHistory(ctx ctx.Ctx, chainId domain.ChainId, token domain.Address, period tributary.Period, resolution tributary.Resolution) ([]tributary.PricePoint, error) {
	lookback, err := period.Duration()
	if err != nil {
		return nil, err
	}
	interval, err := resolution.Interval()
	if err != nil {
		return nil, err
	}

	listings, err := im.getListings(ctx, chainId, token)
	if err != nil {
		return nil, err
	}

	now := timeNow().Unix()
	floor := floorPriceOf(listings, now)
	if floor == nil {
		floor = new(big.Int)
	}

	start := now - int64(lookback.Seconds())
	step := int64(interval.Seconds())

	points := []tributary.PricePoint{}
	for t := start; t <= now; t += step {
		point := bucketAt(listings, t, step, floor)
		points = append(points, point)
	}

	ctx.WithFields(log.Fields{
		"token":      token,
		"period":     period,
		"resolution": resolution,
		"points":     len(points),
	}).Info("price history built")

	return points, nil
}

// bucketAt aggregates listings active as of `t`. Volume is attributed to
// the bucket whose window the listing was created in, not carried forward.
func bucketAt(listings []*tributary.Listing, t, step int64, floor *big.Int) tributary.PricePoint {
	var (
		prices []*big.Int
		volume = new(big.Int)
	)

	for _, l := range listings {
		if l.CreatedAt > t {
			continue
		}
		if l.ExpiresAt < t && !l.IsActive {
			continue
		}
		price, err := domain.ParseBigInt(l.PricePerToken)
		if err != nil {
			continue
		}
		prices = append(prices, price)

		if l.CreatedAt > t-step {
			sold, err := domain.ParseBigInt(l.Sold)
			if err != nil {
				continue
			}
			volume.Add(volume, new(big.Int).Mul(sold, price))
		}
	}

	if len(prices) == 0 {
		// no-trade filler bucket at the current floor
		f := floor.String()
		return tributary.PricePoint{
			Timestamp: t,
			Open:      f,
			High:      f,
			Low:       f,
			Close:     f,
			Volume:    "0",
		}
	}

	sum := new(big.Int)
	high := prices[0]
	low := prices[0]
	for _, p := range prices {
		sum.Add(sum, p)
		if p.Cmp(high) > 0 {
			high = p
		}
		if p.Cmp(low) < 0 {
			low = p
		}
	}
	// integer mean, truncating
	mean := sum.Quo(sum, big.NewInt(int64(len(prices))))

	return tributary.PricePoint{
		Timestamp: t,
		Open:      mean.String(),
		High:      high.String(),
		Low:       low.String(),
		Close:     mean.String(),
		Volume:    volume.String(),
	}
}
