package catalog

import (
	"github.com/shopspring/decimal"
)

func init() {
	// The persisted layout stores prices as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product is the canonical catalog record. Stored products are immutable:
// edits replace the record wholesale, nothing is patched in place.
type Product struct {
	ID               int64            `json:"id"`
	ProductName      string           `json:"productName"`
	SellerInfo       string           `json:"sellerInfo"`
	StockCount       int              `json:"stockCount"`
	Price            decimal.Decimal  `json:"price"`
	DiscountedPrice  *decimal.Decimal `json:"discountedPrice,omitempty"`
	Category         string           `json:"category"`
	ProductImageURLs []string         `json:"productImageUrls"`
}

// Collection is the full in-memory product set, insertion order preserved.
// It is always replaced on write, never mutated in place.
type Collection []Product

// EffectivePrice is the discounted price when one is set, else the listed
// price. Only a missing discounted price counts as absent; a zero discount
// is a real (free) price, not a fallback to the listed one.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.DiscountedPrice != nil {
		return *p.DiscountedPrice
	}
	return p.Price
}

// InStock reports whether any units remain.
func (p Product) InStock() bool {
	return p.StockCount > 0
}

// DiscountPercent returns the rounded percentage saved against the listed
// price, or nil when the product carries no discount. Inconsistent records
// (discounted price at or above the listed price) are displayed as given,
// never rejected here.
func (p Product) DiscountPercent() *int64 {
	if p.DiscountedPrice == nil || !p.Price.IsPositive() {
		return nil
	}
	percent := p.Price.Sub(*p.DiscountedPrice).
		Div(p.Price).
		Mul(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
	return &percent
}

// Clone returns an independent copy of the collection.
func (c Collection) Clone() Collection {
	if c == nil {
		return nil
	}
	out := make(Collection, len(c))
	copy(out, c)
	return out
}

// FindByID returns the product with the given id, if present.
func (c Collection) FindByID(id int64) (Product, bool) {
	for _, p := range c {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
