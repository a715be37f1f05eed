package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/tributary-xyz/goapi/domain"
	mockPayToken "github.com/tributary-xyz/goapi/domain/mocks"
	"github.com/tributary-xyz/goapi/domain/tributary"
	mockTributary "github.com/tributary-xyz/goapi/domain/tributary/mocks"
)

type historySuite struct {
	suite.Suite
	listingRepo *mockTributary.ListingRepo
	subject     *impl
}

func TestHistorySuite(t *testing.T) {
	suite.Run(t, new(historySuite))
}

func (s *historySuite) SetupTest() {
	timeNow = func() time.Time { return frozenTime }
	s.listingRepo = &mockTributary.ListingRepo{}
	s.subject = New(&TributaryUseCaseCfg{
		ListingRepo:  s.listingRepo,
		PayTokenRepo: &mockPayToken.PayTokenRepo{},
		FeeConfig: tributary.FeeConfig{
			PlatformFeeBps: tributary.DefaultPlatformFeeBps,
			CreatorFeeBps:  tributary.DefaultCreatorFeeBps,
		},
	}).(*impl)
}

func (s *historySuite) TearDownTest() {
	timeNow = time.Now
}

func (s *historySuite) mockListings(listings []*tributary.Listing) {
	s.listingRepo.
		On("FindAll", mockCtx, mock.Anything, mock.Anything).
		Return(listings, nil)
}

func (s *historySuite) TestBucketCountAndContinuity() {
	s.mockListings(nil)

	points, err := s.subject.GetPriceHistory(mockCtx, 1, "0xroyalty", tributary.Period24h, tributary.ResolutionHourly)
	s.NoError(err)
	s.Require().Len(points, 25)

	start := frozenTime.Unix() - 24*3600
	for i, p := range points {
		s.Equal(start+int64(i)*3600, p.Timestamp)
		s.Equal("0", p.Open)
		s.Equal("0", p.Close)
		s.Equal("0", p.Volume)
	}
}

func (s *historySuite) TestOhlcAggregation() {
	now := frozenTime.Unix()
	early := listingFixture(1, "10", "4", "1000", now-2*24*3600)
	late := listingFixture(2, "5", "2", "3000", now-3600)
	s.mockListings([]*tributary.Listing{early, late})

	points, err := s.subject.GetPriceHistory(mockCtx, 1, "0xroyalty", tributary.Period24h, tributary.ResolutionHourly)
	s.NoError(err)
	s.Require().Len(points, 25)

	// only the early listing exists until the second-to-last bucket
	first := points[0]
	s.Equal("1000", first.Open)
	s.Equal("1000", first.High)
	s.Equal("1000", first.Low)
	s.Equal("0", first.Volume)

	// the late listing lands in the second-to-last bucket window
	penultimate := points[23]
	s.Equal(now-3600, penultimate.Timestamp)
	s.Equal("2000", penultimate.Open)
	s.Equal("3000", penultimate.High)
	s.Equal("1000", penultimate.Low)
	s.Equal("6000", penultimate.Volume)

	// volume is not carried into later buckets
	last := points[24]
	s.Equal("2000", last.Close)
	s.Equal("0", last.Volume)
}

func (s *historySuite) TestPrePeriodListingsShapeEarlyBuckets() {
	now := frozenTime.Unix()
	old := listingFixture(1, "10", "0", "500", now-90*24*3600)
	s.mockListings([]*tributary.Listing{old})

	points, err := s.subject.GetPriceHistory(mockCtx, 1, "0xroyalty", tributary.Period7d, tributary.ResolutionDaily)
	s.NoError(err)
	s.Require().Len(points, 8)
	for _, p := range points {
		s.Equal("500", p.Open)
		s.Equal("0", p.Volume)
	}
}

func (s *historySuite) TestExpiredInactiveListingDropsOut() {
	now := frozenTime.Unix()
	gone := listingFixture(1, "10", "0", "700", now-24*3600)
	gone.IsActive = false
	gone.ExpiresAt = now - 12*3600
	live := listingFixture(2, "10", "0", "900", now-24*3600)
	s.mockListings([]*tributary.Listing{gone, live})

	points, err := s.subject.GetPriceHistory(mockCtx, 1, "0xroyalty", tributary.Period24h, tributary.ResolutionHourly)
	s.NoError(err)

	// both listings price the early buckets, only the live one the late ones
	s.Equal("800", points[0].Open)
	s.Equal("900", points[24].Open)
	s.Equal("900", points[24].High)
}

func (s *historySuite) TestInvalidPeriodAndResolution() {
	_, err := s.subject.GetPriceHistory(mockCtx, 1, "0xroyalty", tributary.Period("1y"), tributary.ResolutionHourly)
	s.ErrorIs(err, domain.ErrInvalidPeriod)

	_, err = s.subject.GetPriceHistory(mockCtx, 1, "0xroyalty", tributary.Period24h, tributary.Resolution("weekly"))
	s.ErrorIs(err, domain.ErrInvalidResolution)
}
