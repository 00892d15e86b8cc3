package catalog

import (
	"sort"
	"strings"
	"testing"
	"time"

	"swapsociety-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seedNow = time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)

func ids(listings []domain.Listing) []string {
	out := make([]string, len(listings))
	for i, l := range listings {
		out[i] = l.ListingID
	}
	return out
}

func TestFilterAndSort_DefaultIsEverythingNewestFirst(t *testing.T) {
	all := SeedListings(seedNow)
	got := FilterAndSort(all, domain.DefaultFilterState())
	require.Len(t, got, len(all))
	// createdAt offsets: 3 (-1d), 1 (-2d), 4 (-3d), 5 (-4d), 2 (-5d), 6 (-6d)
	assert.Equal(t, []string{"3", "1", "4", "5", "2", "6"}, ids(got))
}

func TestFilterAndSort_TextSearchMatchesTitleOrDescription(t *testing.T) {
	all := SeedListings(seedNow)

	criteria := domain.DefaultFilterState()
	criteria.Search = "macbook"
	got := FilterAndSort(all, criteria)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ListingID)

	// "hostel" appears only in the speaker's description
	criteria.Search = "hostel"
	got = FilterAndSort(all, criteria)
	require.Len(t, got, 1)
	assert.Equal(t, "6", got[0].ListingID)

	criteria.Search = "no such thing anywhere"
	assert.Empty(t, FilterAndSort(all, criteria))
}

func TestFilterAndSort_EveryResultContainsQuery(t *testing.T) {
	all := SeedListings(seedNow)
	for _, q := range []string{"a", "with", "size", "box", "JBL"} {
		criteria := domain.DefaultFilterState()
		criteria.Search = q
		for _, l := range FilterAndSort(all, criteria) {
			lq := strings.ToLower(q)
			ok := strings.Contains(strings.ToLower(l.Title), lq) ||
				strings.Contains(strings.ToLower(l.Description), lq)
			assert.True(t, ok, "listing %s does not contain %q", l.ListingID, q)
		}
	}
}

func TestFilterAndSort_CategoryFilter(t *testing.T) {
	all := SeedListings(seedNow)
	criteria := domain.DefaultFilterState()
	criteria.Category = string(domain.CategoryElectronics)
	got := FilterAndSort(all, criteria)
	assert.Equal(t, []string{"1", "6"}, ids(got))
}

func TestFilterAndSort_RentIncludesBothTypeListings(t *testing.T) {
	all := SeedListings(seedNow)
	criteria := domain.DefaultFilterState()
	criteria.ListingType = string(domain.TypeRent)
	got := FilterAndSort(all, criteria)

	assert.ElementsMatch(t, []string{"1", "3", "4", "6"}, ids(got))
	for _, l := range got {
		assert.NotEqual(t, domain.TypeSale, l.ListingType)
	}
}

func TestFilterAndSort_SaleIncludesBothTypeListings(t *testing.T) {
	all := SeedListings(seedNow)
	criteria := domain.DefaultFilterState()
	criteria.ListingType = string(domain.TypeSale)
	got := FilterAndSort(all, criteria)
	assert.ElementsMatch(t, []string{"1", "2", "4", "5"}, ids(got))
}

func TestFilterAndSort_ConditionFilter(t *testing.T) {
	all := SeedListings(seedNow)
	criteria := domain.DefaultFilterState()
	criteria.Condition = string(domain.ConditionLikeNew)
	got := FilterAndSort(all, criteria)
	assert.ElementsMatch(t, []string{"1", "3", "5"}, ids(got))
}

func TestFilterAndSort_SortOrders(t *testing.T) {
	all := SeedListings(seedNow)

	criteria := domain.DefaultFilterState()
	criteria.SortBy = domain.SortPriceAsc
	got := FilterAndSort(all, criteria)
	assert.True(t, sort.SliceIsSorted(got, func(i, j int) bool { return got[i].Price < got[j].Price }))

	criteria.SortBy = domain.SortPriceDesc
	got = FilterAndSort(all, criteria)
	assert.True(t, sort.SliceIsSorted(got, func(i, j int) bool { return got[i].Price > got[j].Price }))

	criteria.SortBy = domain.SortPopular
	got = FilterAndSort(all, criteria)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Likes, got[i].Likes)
	}
}

func TestFilterAndSort_UnknownCriteriaBehaveAsAll(t *testing.T) {
	all := SeedListings(seedNow)
	criteria := domain.FilterState{
		Category:    "spaceships",
		ListingType: "lease",
		Condition:   "mint",
		SortBy:      domain.SortBy("by-vibes"),
	}
	got := FilterAndSort(all, criteria)
	assert.Len(t, got, len(all))
	// fallback sort is newest
	assert.Equal(t, "3", got[0].ListingID)
}

func TestFilterAndSort_ConstraintsAreMonotonic(t *testing.T) {
	all := SeedListings(seedNow)

	base := domain.DefaultFilterState()
	base.ListingType = string(domain.TypeRent)
	baseLen := len(FilterAndSort(all, base))

	narrowed := base
	narrowed.Condition = string(domain.ConditionGood)
	assert.LessOrEqual(t, len(FilterAndSort(all, narrowed)), baseLen)

	narrowed.Category = string(domain.CategoryBooks)
	narrowed.Search = "kreyszig"
	got := FilterAndSort(all, narrowed)
	assert.LessOrEqual(t, len(got), baseLen)
	assert.Equal(t, []string{"4"}, ids(got))
}

func TestFilterAndSort_DoesNotMutateInput(t *testing.T) {
	all := SeedListings(seedNow)
	before := ids(all)

	criteria := domain.DefaultFilterState()
	criteria.SortBy = domain.SortPriceDesc
	criteria.Search = "the"
	_ = FilterAndSort(all, criteria)

	assert.Equal(t, before, ids(all))
}

func TestFilterAndSort_StableSortKeepsTieOrder(t *testing.T) {
	now := seedNow
	tied := []domain.Listing{
		{ListingID: "a", Price: 100, CreatedAt: now},
		{ListingID: "b", Price: 100, CreatedAt: now},
		{ListingID: "c", Price: 100, CreatedAt: now},
	}
	criteria := domain.DefaultFilterState()
	criteria.SortBy = domain.SortPriceAsc
	got := FilterAndSort(tied, criteria)
	assert.Equal(t, []string{"a", "b", "c"}, ids(got))
}

func TestSeedListings_Deterministic(t *testing.T) {
	a := SeedListings(seedNow)
	b := SeedListings(seedNow)
	require.Len(t, a, 6)
	assert.Equal(t, ids(a), ids(b))
	for i := range a {
		assert.Equal(t, a[i].Price, b[i].Price)
		assert.Equal(t, a[i].CreatedAt, b[i].CreatedAt)
	}
}

func TestSeedListings_RentalInvariants(t *testing.T) {
	for _, l := range SeedListings(seedNow) {
		l := l
		assert.NoError(t, l.ValidateNew(), "seed listing %s", l.ListingID)
		if l.Rentable() {
			assert.NotNil(t, l.RentalDuration, "seed listing %s", l.ListingID)
		} else {
			assert.Nil(t, l.RentalDuration, "seed listing %s", l.ListingID)
		}
	}
}
