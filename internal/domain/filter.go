package domain

// SortBy selects the ordering of a filtered result set.
type SortBy string

const (
	SortNewest    SortBy = "newest"
	SortPriceAsc  SortBy = "price-asc"
	SortPriceDesc SortBy = "price-desc"
	SortPopular   SortBy = "popular"
)

func (s SortBy) Valid() bool {
	switch s {
	case SortNewest, SortPriceAsc, SortPriceDesc, SortPopular:
		return true
	}
	return false
}

// FilterAll is the selector value that matches everything.
const FilterAll = "all"

// FilterState is the ephemeral set of user-selected search/filter/sort
// criteria. Selectors hold an enum value or "all"; values outside the closed
// enums are treated as "all" so stale criteria never break a request.
type FilterState struct {
	Search      string `json:"search"`
	Category    string `json:"category"`
	ListingType string `json:"listingType"`
	Condition   string `json:"condition"`
	SortBy      SortBy `json:"sortBy"`
}

// DefaultFilterState is "show everything, newest first".
func DefaultFilterState() FilterState {
	return FilterState{
		Category:    FilterAll,
		ListingType: FilterAll,
		Condition:   FilterAll,
		SortBy:      SortNewest,
	}
}
