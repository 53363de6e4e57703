package catalog

import (
	"slices"

	"github.com/shopspring/decimal"
)

// The global slider range every price bound is clamped into.
var (
	PriceRangeMin = decimal.Zero
	PriceRangeMax = decimal.NewFromInt(1000)
)

// Criteria is the staged filter state. Empty seller/category lists mean no
// restriction on that facet.
type Criteria struct {
	MinPrice           decimal.Decimal `json:"minPrice"`
	MaxPrice           decimal.Decimal `json:"maxPrice"`
	HideOutOfStock     bool            `json:"hideOutOfStock"`
	SelectedSellers    []string        `json:"selectedSellers"`
	SelectedCategories []string        `json:"selectedCategories"`
}

// CriteriaPatch stages partial criteria changes; nil fields are untouched.
type CriteriaPatch struct {
	MinPrice           *decimal.Decimal `json:"minPrice,omitempty"`
	MaxPrice           *decimal.Decimal `json:"maxPrice,omitempty"`
	HideOutOfStock     *bool            `json:"hideOutOfStock,omitempty"`
	SelectedSellers    *[]string        `json:"selectedSellers,omitempty"`
	SelectedCategories *[]string        `json:"selectedCategories,omitempty"`
}

// DefaultCriteria matches everything: the full price range, out-of-stock
// products included, no facet restrictions.
func DefaultCriteria() Criteria {
	return Criteria{
		MinPrice: PriceRangeMin,
		MaxPrice: PriceRangeMax,
	}
}

// Clone returns an independent copy of the criteria.
func (c Criteria) Clone() Criteria {
	out := c
	out.SelectedSellers = slices.Clone(c.SelectedSellers)
	out.SelectedCategories = slices.Clone(c.SelectedCategories)
	return out
}

// Matches reports whether the product satisfies every active predicate.
// The four predicates are conjunctive; there is no OR-across-facets mode.
func (c Criteria) Matches(p Product) bool {
	price := p.EffectivePrice()
	if price.Cmp(c.MinPrice) < 0 || price.Cmp(c.MaxPrice) > 0 {
		return false
	}
	if c.HideOutOfStock && !p.InStock() {
		return false
	}
	if len(c.SelectedSellers) > 0 && !slices.Contains(c.SelectedSellers, p.SellerInfo) {
		return false
	}
	if len(c.SelectedCategories) > 0 && !slices.Contains(c.SelectedCategories, p.Category) {
		return false
	}
	return true
}

// Apply merges a patch into the criteria, clamping rather than rejecting.
// Bounds are clamped into the global price range; raising the min bound
// above the max drags the max up with it (the min slider is the max
// slider's floor), and a max bound below the min clamps up to the min.
func (c *Criteria) Apply(patch CriteriaPatch) {
	if patch.MinPrice != nil {
		c.MinPrice = clampPrice(*patch.MinPrice)
	}
	if patch.MaxPrice != nil {
		c.MaxPrice = clampPrice(*patch.MaxPrice)
	}
	if c.MaxPrice.Cmp(c.MinPrice) < 0 {
		c.MaxPrice = c.MinPrice
	}
	if patch.HideOutOfStock != nil {
		c.HideOutOfStock = *patch.HideOutOfStock
	}
	if patch.SelectedSellers != nil {
		c.SelectedSellers = slices.Clone(*patch.SelectedSellers)
	}
	if patch.SelectedCategories != nil {
		c.SelectedCategories = slices.Clone(*patch.SelectedCategories)
	}
}

func clampPrice(value decimal.Decimal) decimal.Decimal {
	if value.Cmp(PriceRangeMin) < 0 {
		return PriceRangeMin
	}
	if value.Cmp(PriceRangeMax) > 0 {
		return PriceRangeMax
	}
	return value
}

// Filter derives the view of the collection matching the criteria, order
// preserved. The view is a fresh slice, never aliased to the collection.
func Filter(c Collection, criteria Criteria) Collection {
	view := make(Collection, 0, len(c))
	for _, p := range c {
		if criteria.Matches(p) {
			view = append(view, p)
		}
	}
	return view
}
