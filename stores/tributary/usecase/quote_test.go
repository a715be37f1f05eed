package usecase

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/tributary-xyz/goapi/base/ctx"
	"github.com/tributary-xyz/goapi/domain"
	mockPayToken "github.com/tributary-xyz/goapi/domain/mocks"
	"github.com/tributary-xyz/goapi/domain/tributary"
	mockTributary "github.com/tributary-xyz/goapi/domain/tributary/mocks"
	mockContract "github.com/tributary-xyz/goapi/service/chain/contract/mocks"
)

var (
	mockCtx = ctx.Background()

	frozenTime = time.Unix(1700000000, 0)
)

type quoteSuite struct {
	suite.Suite
	listingRepo  *mockTributary.ListingRepo
	payTokenRepo *mockPayToken.PayTokenRepo
	subject      *impl
}

func TestQuoteSuite(t *testing.T) {
	suite.Run(t, new(quoteSuite))
}

func (s *quoteSuite) SetupTest() {
	timeNow = func() time.Time { return frozenTime }
	s.listingRepo = &mockTributary.ListingRepo{}
	s.payTokenRepo = &mockPayToken.PayTokenRepo{}
	s.subject = New(&TributaryUseCaseCfg{
		ListingRepo:  s.listingRepo,
		PayTokenRepo: s.payTokenRepo,
		FeeConfig: tributary.FeeConfig{
			PlatformFeeBps: tributary.DefaultPlatformFeeBps,
			CreatorFeeBps:  tributary.DefaultCreatorFeeBps,
		},
	}).(*impl)
}

func (s *quoteSuite) TearDownTest() {
	timeNow = time.Now
}

func (s *quoteSuite) mockListings(listings []*tributary.Listing) {
	s.listingRepo.
		On("FindAll", mockCtx, mock.Anything, mock.Anything).
		Return(listings, nil)
}

func (s *quoteSuite) mockUsdc() {
	s.payTokenRepo.
		On("FindOne", mockCtx, domain.ChainId(1), domain.Address("0xusdc")).
		Return(&domain.PayToken{
			Symbol:        "USDC",
			TokenDecimals: 6,
			ChainId:       1,
			Address:       "0xusdc",
		}, nil)
}

// marketSubject builds a usecase with the on-chain floor fallback enabled
func (s *quoteSuite) marketSubject(market *mockContract.TributaryMarketContract) *impl {
	return New(&TributaryUseCaseCfg{
		ListingRepo:  s.listingRepo,
		PayTokenRepo: s.payTokenRepo,
		FeeConfig: tributary.FeeConfig{
			PlatformFeeBps: tributary.DefaultPlatformFeeBps,
			CreatorFeeBps:  tributary.DefaultCreatorFeeBps,
		},
		Market:      market,
		MarketAddrs: map[domain.ChainId]domain.Address{1: "0xmarket"},
	}).(*impl)
}

func listingFixture(id uint64, amount, sold, price string, createdAt int64) *tributary.Listing {
	return &tributary.Listing{
		ChainId:       1,
		ListingId:     id,
		Seller:        "0xseller",
		Vault:         "0xvault",
		Token:         "0xroyalty",
		Amount:        amount,
		Sold:          sold,
		PricePerToken: price,
		PaymentToken:  "0xusdc",
		IsActive:      true,
		CreatedAt:     createdAt,
		ExpiresAt:     frozenTime.Unix() + 3600,
	}
}

func (s *quoteSuite) TestGetBuyQuoteConsumesCheapestFirst() {
	s.mockListings([]*tributary.Listing{
		listingFixture(2, "50", "30", "1100000", 100),
		listingFixture(1, "100", "0", "1000000", 200),
	})
	s.mockUsdc()

	quote, err := s.subject.GetBuyQuote(mockCtx, 1, "0xRoyalty", big.NewInt(120))
	s.NoError(err)

	s.Equal(domain.Address("0xroyalty"), quote.Token)
	s.Equal(domain.Address("0xusdc"), quote.PaymentToken)
	s.Equal("120", quote.Amount)
	s.Equal("122000000", quote.TotalCost)
	s.Equal("1016666", quote.AvgPrice)
	s.Equal("3050000", quote.PlatformFee)
	s.Equal("6100000", quote.CreatorFee)
	s.Equal("131150000", quote.TotalWithFees)
	s.Equal("131.15", quote.DisplayTotalWithFees)
	s.Equal(int64(166), quote.PriceImpactBps)
	s.InDelta(1.66, quote.PriceImpact, 1e-9)
	s.Equal(frozenTime.Unix()+60, quote.ExpiresAt)
	s.NotEmpty(quote.QuoteId)

	s.True(quote.FillPlan.CanFill)
	s.Equal("120", quote.FillPlan.AvailableAmount)
	s.Equal("122000000", quote.FillPlan.TotalCost)
	s.Require().Len(quote.FillPlan.Fills, 2)
	s.Equal(uint64(1), quote.FillPlan.Fills[0].ListingId)
	s.Equal("100", quote.FillPlan.Fills[0].AmountFilled)
	s.Equal("100000000", quote.FillPlan.Fills[0].Subtotal)
	s.Equal(uint64(2), quote.FillPlan.Fills[1].ListingId)
	s.Equal("20", quote.FillPlan.Fills[1].AmountFilled)
	s.Equal("22000000", quote.FillPlan.Fills[1].Subtotal)
}

func (s *quoteSuite) TestGetBuyQuoteBreaksPriceTiesByAge() {
	newer := listingFixture(7, "10", "0", "1000000", 500)
	older := listingFixture(3, "10", "0", "1000000", 100)
	s.mockListings([]*tributary.Listing{newer, older})
	s.mockUsdc()

	quote, err := s.subject.GetBuyQuote(mockCtx, 1, "0xroyalty", big.NewInt(5))
	s.NoError(err)
	s.Require().Len(quote.FillPlan.Fills, 1)
	s.Equal(uint64(3), quote.FillPlan.Fills[0].ListingId)
}

func (s *quoteSuite) TestGetBuyQuoteZeroImpactOnSingleFill() {
	s.mockListings([]*tributary.Listing{
		listingFixture(1, "100", "0", "1000000", 100),
		listingFixture(2, "100", "0", "2000000", 100),
	})
	s.mockUsdc()

	quote, err := s.subject.GetBuyQuote(mockCtx, 1, "0xroyalty", big.NewInt(100))
	s.NoError(err)
	s.Equal(int64(0), quote.PriceImpactBps)
	s.Equal("1000000", quote.AvgPrice)
}

func (s *quoteSuite) TestGetBuyQuoteInsufficientLiquidity() {
	s.mockListings([]*tributary.Listing{
		listingFixture(1, "80", "30", "1000000", 100),
	})

	_, err := s.subject.GetBuyQuote(mockCtx, 1, "0xroyalty", big.NewInt(100))
	s.Require().Error(err)

	lerr, ok := err.(*tributary.InsufficientLiquidityError)
	s.Require().True(ok)
	s.Equal("100", lerr.Requested.String())
	s.Equal("50", lerr.Available.String())
}

func (s *quoteSuite) TestGetBuyQuoteOneOverCapacityFails() {
	s.mockListings([]*tributary.Listing{
		listingFixture(1, "80", "30", "1000000", 100),
	})

	_, err := s.subject.GetBuyQuote(mockCtx, 1, "0xroyalty", big.NewInt(51))
	s.Require().Error(err)

	lerr, ok := err.(*tributary.InsufficientLiquidityError)
	s.Require().True(ok)
	s.Equal("51", lerr.Requested.String())
	s.Equal("50", lerr.Available.String())
}

func (s *quoteSuite) TestGetBuyQuoteExactCapacityFills() {
	s.mockListings([]*tributary.Listing{
		listingFixture(1, "80", "30", "1000000", 100),
	})
	s.mockUsdc()

	quote, err := s.subject.GetBuyQuote(mockCtx, 1, "0xroyalty", big.NewInt(50))
	s.NoError(err)
	s.True(quote.FillPlan.CanFill)
	s.Equal("50", quote.FillPlan.AvailableAmount)
	s.Equal("50000000", quote.TotalCost)
}

func (s *quoteSuite) TestGetBuyQuoteSkipsUnfillableListings() {
	expired := listingFixture(1, "100", "0", "500000", 100)
	expired.ExpiresAt = frozenTime.Unix() - 1
	inactive := listingFixture(2, "100", "0", "600000", 100)
	inactive.IsActive = false
	soldOut := listingFixture(3, "100", "100", "700000", 100)
	live := listingFixture(4, "100", "0", "800000", 100)
	s.mockListings([]*tributary.Listing{expired, inactive, soldOut, live})
	s.mockUsdc()

	quote, err := s.subject.GetBuyQuote(mockCtx, 1, "0xroyalty", big.NewInt(10))
	s.NoError(err)
	s.Require().Len(quote.FillPlan.Fills, 1)
	s.Equal(uint64(4), quote.FillPlan.Fills[0].ListingId)
}

func (s *quoteSuite) TestGetBuyQuoteInvalidAmount() {
	for _, amount := range []*big.Int{nil, big.NewInt(0), big.NewInt(-5)} {
		_, err := s.subject.GetBuyQuote(mockCtx, 1, "0xroyalty", amount)
		s.ErrorIs(err, domain.ErrInvalidAmount)
	}
}

func (s *quoteSuite) TestGetBuyQuoteFeesDeriveFromTotalCost() {
	s.mockListings([]*tributary.Listing{
		listingFixture(1, "1000", "0", "333", 100),
	})
	s.mockUsdc()

	quote, err := s.subject.GetBuyQuote(mockCtx, 1, "0xroyalty", big.NewInt(7))
	s.NoError(err)

	// 7 * 333 = 2331, fees truncate toward zero
	s.Equal("2331", quote.TotalCost)
	s.Equal("58", quote.PlatformFee)
	s.Equal("116", quote.CreatorFee)
	s.Equal("2505", quote.TotalWithFees)
}

func (s *quoteSuite) TestGetSellQuoteAtFloor() {
	s.mockListings([]*tributary.Listing{
		listingFixture(1, "100", "0", "1000000", 100),
		listingFixture(2, "100", "0", "1200000", 100),
	})
	s.mockUsdc()

	quote, err := s.subject.GetSellQuote(mockCtx, 1, "0xroyalty", big.NewInt(40), nil)
	s.NoError(err)

	s.Equal("1000000", quote.PricePerToken)
	s.Equal("1000000", quote.FloorPrice)
	s.Equal("40000000", quote.Proceeds)
	s.Equal("1000000", quote.PlatformFee)
	s.Equal("2000000", quote.CreatorFee)
	s.Equal("37000000", quote.NetProceeds)
	s.Equal("980000", quote.SuggestedPrice)
	s.Equal("37", quote.DisplayNetProceeds)
	s.Equal(frozenTime.Unix()+60, quote.ExpiresAt)
}

func (s *quoteSuite) TestGetSellQuoteAtCallerPrice() {
	s.mockListings([]*tributary.Listing{
		listingFixture(1, "100", "0", "1000000", 100),
	})
	s.mockUsdc()

	quote, err := s.subject.GetSellQuote(mockCtx, 1, "0xroyalty", big.NewInt(10), big.NewInt(900000))
	s.NoError(err)
	s.Equal("900000", quote.PricePerToken)
	s.Equal("9000000", quote.Proceeds)
	s.Equal("1000000", quote.FloorPrice)
}

func (s *quoteSuite) TestGetSellQuoteEmptyMarket() {
	s.mockListings(nil)

	quote, err := s.subject.GetSellQuote(mockCtx, 1, "0xroyalty", big.NewInt(10), big.NewInt(500))
	s.NoError(err)
	s.Equal("0", quote.FloorPrice)
	s.Equal("500", quote.PricePerToken)
	// no floor to anchor to, the caller price stands
	s.Equal("500", quote.SuggestedPrice)
	s.Equal(domain.Address(""), quote.PaymentToken)
	s.Equal("", quote.DisplayNetProceeds)
}

func (s *quoteSuite) TestGetSellQuoteInvalidPrice() {
	_, err := s.subject.GetSellQuote(mockCtx, 1, "0xroyalty", big.NewInt(10), big.NewInt(0))
	s.ErrorIs(err, domain.ErrInvalidPrice)

	_, err = s.subject.GetSellQuote(mockCtx, 1, "0xroyalty", nil, nil)
	s.ErrorIs(err, domain.ErrInvalidAmount)
}

func (s *quoteSuite) TestGetFloorPrice() {
	s.mockListings([]*tributary.Listing{
		listingFixture(1, "100", "0", "1500000", 100),
		listingFixture(2, "100", "0", "1100000", 100),
	})

	floor, err := s.subject.GetFloorPrice(mockCtx, 1, "0xroyalty")
	s.NoError(err)
	s.Equal("1100000", floor)
}

func (s *quoteSuite) TestGetFloorPriceEmptyMarket() {
	s.mockListings(nil)

	floor, err := s.subject.GetFloorPrice(mockCtx, 1, "0xroyalty")
	s.NoError(err)
	s.Equal("0", floor)
}

func (s *quoteSuite) TestGetFloorPriceChainFallback() {
	s.mockListings(nil)
	market := &mockContract.TributaryMarketContract{}
	market.
		On("FloorPrice", mockCtx, int32(1), "0xmarket", "0xroyalty").
		Return(big.NewInt(1200000), nil)

	floor, err := s.marketSubject(market).GetFloorPrice(mockCtx, 1, "0xroyalty")
	s.NoError(err)
	s.Equal("1200000", floor)
}

func (s *quoteSuite) TestGetFloorPriceChainReadFailsOpen() {
	s.mockListings(nil)
	market := &mockContract.TributaryMarketContract{}
	market.
		On("FloorPrice", mockCtx, int32(1), "0xmarket", "0xroyalty").
		Return(nil, errors.New("rpc down"))

	floor, err := s.marketSubject(market).GetFloorPrice(mockCtx, 1, "0xroyalty")
	s.NoError(err)
	s.Equal("0", floor)
}

func (s *quoteSuite) TestGetSellQuoteChainFloorFallback() {
	s.mockListings(nil)
	market := &mockContract.TributaryMarketContract{}
	market.
		On("FloorPrice", mockCtx, int32(1), "0xmarket", "0xroyalty").
		Return(big.NewInt(1000000), nil)

	quote, err := s.marketSubject(market).GetSellQuote(mockCtx, 1, "0xroyalty", big.NewInt(10), nil)
	s.NoError(err)
	s.Equal("1000000", quote.FloorPrice)
	s.Equal("1000000", quote.PricePerToken)
	s.Equal("10000000", quote.Proceeds)
	s.Equal("9250000", quote.NetProceeds)
	s.Equal("980000", quote.SuggestedPrice)
}

func (s *quoteSuite) TestDisplayAmountUnknownPayToken() {
	s.mockListings([]*tributary.Listing{
		listingFixture(1, "100", "0", "1000000", 100),
	})
	s.payTokenRepo.
		On("FindOne", mockCtx, domain.ChainId(1), domain.Address("0xusdc")).
		Return(nil, domain.ErrNotFound)

	quote, err := s.subject.GetBuyQuote(mockCtx, 1, "0xroyalty", big.NewInt(10))
	s.NoError(err)
	s.Equal("", quote.DisplayTotalWithFees)
	s.Equal("10000000", quote.TotalCost)
}
