package catalog

import "github.com/shopspring/decimal"

// SortOption names the supported listing orders.
type SortOption string

const (
	SortNewest    SortOption = "newest"
	SortPriceAsc  SortOption = "price_asc"
	SortPriceDesc SortOption = "price_desc"
	SortName      SortOption = "name"
	SortDiscount  SortOption = "discount"
)

// ValidSort reports whether the provided sort is one the repository can order by.
func ValidSort(sort SortOption) bool {
	switch sort {
	case "", SortNewest, SortPriceAsc, SortPriceDesc, SortName, SortDiscount:
		return true
	}
	return false
}

// ListFilters describe the supported filter knobs for the browse endpoint.
type ListFilters struct {
	Category    string           `json:"category,omitempty"`
	Subcategory string           `json:"subcategory,omitempty"`
	Brand       string           `json:"brand,omitempty"`
	Seller      string           `json:"seller,omitempty"`
	PriceMin    *decimal.Decimal `json:"price_min,omitempty"`
	PriceMax    *decimal.Decimal `json:"price_max,omitempty"`
	Featured    *bool            `json:"featured,omitempty"`
	IsCombo     *bool            `json:"is_combo,omitempty"`
	Tag         string           `json:"tag,omitempty"`
	Query       string           `json:"q,omitempty"`
}

// ListInput captures the inputs needed to filter/sort/page the catalog.
type ListInput struct {
	Filters ListFilters
	Sort    SortOption
	Page    int
	Limit   int
}
