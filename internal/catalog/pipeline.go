// Package catalog implements the listing search/filter/sort pipeline and the
// seed collection backing a fresh install.
package catalog

import (
	"sort"
	"strings"

	"swapsociety-backend/internal/domain"
)

// FilterAndSort derives the ordered visible subset of listings for the given
// criteria. Pure: the input slice is never mutated. Stages run as a strict
// pipeline — text search, category, listing type, condition, then sort —
// each consuming the previous stage's output. Criteria values outside the
// closed enums behave as "all".
func FilterAndSort(listings []domain.Listing, criteria domain.FilterState) []domain.Listing {
	result := make([]domain.Listing, len(listings))
	copy(result, listings)

	if q := strings.ToLower(strings.TrimSpace(criteria.Search)); q != "" {
		result = keep(result, func(l domain.Listing) bool {
			return strings.Contains(strings.ToLower(l.Title), q) ||
				strings.Contains(strings.ToLower(l.Description), q)
		})
	}
	if cat := domain.Category(criteria.Category); criteria.Category != domain.FilterAll && cat.Valid() {
		result = keep(result, func(l domain.Listing) bool {
			return l.Category == cat
		})
	}
	// "both" listings satisfy every non-"all" type filter.
	if lt := domain.ListingType(criteria.ListingType); criteria.ListingType != domain.FilterAll && lt.Valid() {
		result = keep(result, func(l domain.Listing) bool {
			return l.ListingType == lt || l.ListingType == domain.TypeBoth
		})
	}
	if cond := domain.Condition(criteria.Condition); criteria.Condition != domain.FilterAll && cond.Valid() {
		result = keep(result, func(l domain.Listing) bool {
			return l.Condition == cond
		})
	}

	// Stable so ties keep their post-filter order.
	switch criteria.SortBy {
	case domain.SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case domain.SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	case domain.SortPopular:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Likes > result[j].Likes })
	default: // newest, and the fallback for unrecognized values
		sort.SliceStable(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	}
	return result
}

func keep(in []domain.Listing, pred func(domain.Listing) bool) []domain.Listing {
	out := in[:0]
	for _, l := range in {
		if pred(l) {
			out = append(out, l)
		}
	}
	return out
}
