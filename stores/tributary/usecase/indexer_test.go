package usecase

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/tributary-xyz/goapi/domain"
	"github.com/tributary-xyz/goapi/domain/tributary"
	mockTributary "github.com/tributary-xyz/goapi/domain/tributary/mocks"
	"github.com/tributary-xyz/goapi/service/chain/contract"
	mockContract "github.com/tributary-xyz/goapi/service/chain/contract/mocks"
)

type indexerSuite struct {
	suite.Suite
	listingRepo *mockTributary.ListingRepo
	market      *mockContract.TributaryMarketContract
	subject     *indexerImpl
}

func TestIndexerSuite(t *testing.T) {
	suite.Run(t, new(indexerSuite))
}

func (s *indexerSuite) SetupTest() {
	s.listingRepo = &mockTributary.ListingRepo{}
	s.market = &mockContract.TributaryMarketContract{}
	s.subject = NewIndexer(&IndexerUseCaseCfg{
		ListingRepo: s.listingRepo,
		Market:      s.market,
	}).(*indexerImpl)
}

func onChainFixture(token string, amount int64) *contract.OnChainListing {
	return &contract.OnChainListing{
		Seller:        "0xSeller",
		Vault:         "0xVault",
		Token:         token,
		Amount:        big.NewInt(amount),
		Sold:          big.NewInt(0),
		PricePerToken: big.NewInt(1000),
		PaymentToken:  "0xUsdc",
		IsActive:      true,
		CreatedAt:     big.NewInt(100),
		ExpiresAt:     big.NewInt(200),
	}
}

func (s *indexerSuite) TestRefreshListingsUpsertsMatchingToken() {
	market := "0xmarket"

	s.market.On("ListingCount", mockCtx, int32(1), market).Return(big.NewInt(3), nil)
	s.market.On("GetListing", mockCtx, int32(1), market, big.NewInt(0)).Return(onChainFixture("0xRoyalty", 10), nil)
	s.market.On("GetListing", mockCtx, int32(1), market, big.NewInt(1)).Return(onChainFixture("0xOther", 20), nil)
	s.market.On("GetListing", mockCtx, int32(1), market, big.NewInt(2)).Return(onChainFixture("0xroyalty", 30), nil)

	s.listingRepo.On("Upsert", mockCtx, mock.Anything).Return(nil)

	written, err := s.subject.RefreshListings(mockCtx, 1, domain.Address(market), "0xROYALTY")
	s.NoError(err)
	s.Equal(2, written)

	s.listingRepo.AssertNumberOfCalls(s.T(), "Upsert", 2)
	first := s.listingRepo.Calls[0].Arguments.Get(1).(*tributary.Listing)
	s.Equal(uint64(0), first.ListingId)
	s.Equal("10", first.Amount)
	s.Equal("1000", first.PricePerToken)
	s.Equal(int64(200), first.ExpiresAt)
}

func (s *indexerSuite) TestRefreshListingsSkipsFailedReads() {
	market := "0xmarket"

	s.market.On("ListingCount", mockCtx, int32(1), market).Return(big.NewInt(2), nil)
	s.market.On("GetListing", mockCtx, int32(1), market, big.NewInt(0)).Return(nil, errors.New("rpc timeout"))
	s.market.On("GetListing", mockCtx, int32(1), market, big.NewInt(1)).Return(onChainFixture("0xroyalty", 5), nil)

	s.listingRepo.On("Upsert", mockCtx, mock.Anything).Return(nil)

	written, err := s.subject.RefreshListings(mockCtx, 1, domain.Address(market), "0xroyalty")
	s.NoError(err)
	s.Equal(1, written)
}

func (s *indexerSuite) TestRefreshListingsCountFailure() {
	market := "0xmarket"
	s.market.On("ListingCount", mockCtx, int32(1), market).Return(nil, errors.New("rpc down"))

	_, err := s.subject.RefreshListings(mockCtx, 1, domain.Address(market), "0xroyalty")
	s.Error(err)
}
