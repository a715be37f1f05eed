package usecase

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tributary-xyz/goapi/domain/tributary"
)

func TestSelectEligibleSkipsMalformedRows(t *testing.T) {
	now := frozenTime.Unix()
	badPrice := listingFixture(1, "10", "0", "not-a-number", 100)
	badSold := listingFixture(2, "10", "0xff", "1000", 100)
	overSold := listingFixture(3, "10", "20", "1000", 100)
	ok := listingFixture(4, "10", "0", "1000", 100)

	elig := selectEligible([]*tributary.Listing{badPrice, badSold, overSold, ok}, now)
	require.Len(t, elig, 1)
	require.Equal(t, uint64(4), elig[0].listing.ListingId)
}

func TestBuildFillPlanIsPure(t *testing.T) {
	now := frozenTime.Unix()
	listings := []*tributary.Listing{
		listingFixture(1, "10", "0", "1000", 100),
		listingFixture(2, "10", "0", "2000", 100),
	}
	amount := big.NewInt(15)

	a := buildFillPlan(listings, amount, now)
	b := buildFillPlan(listings, amount, now)
	require.Equal(t, a.toDomain(), b.toDomain())
	require.Equal(t, "15", amount.String())
	require.Equal(t, "10", listings[0].Amount)
}
