package catalog

import "github.com/shopspring/decimal"

// ProductDTO is the wire shape of one product, with the derived display
// fields the grid and detail views need.
type ProductDTO struct {
	ID               int64            `json:"id"`
	ProductName      string           `json:"productName"`
	SellerInfo       string           `json:"sellerInfo"`
	StockCount       int              `json:"stockCount"`
	Price            decimal.Decimal  `json:"price"`
	DiscountedPrice  *decimal.Decimal `json:"discountedPrice,omitempty"`
	EffectivePrice   decimal.Decimal  `json:"effectivePrice"`
	DiscountPercent  *int64           `json:"discountPercent,omitempty"`
	InStock          bool             `json:"inStock"`
	Category         string           `json:"category"`
	ProductImageURLs []string         `json:"productImageUrls"`
}

// PageDTO is one page of the filtered view plus the navigation numbers.
type PageDTO struct {
	Items     []ProductDTO `json:"items"`
	Page      int          `json:"page"`
	PageCount int          `json:"pageCount"`
	PageSize  int          `json:"pageSize"`
	Total     int          `json:"total"`
}

// SuggestionDTO is one typeahead hit on the wire.
type SuggestionDTO struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
}

// SearchStateDTO is the full dropdown state after a keystroke or key event.
type SearchStateDTO struct {
	Query       string          `json:"query"`
	Suggestions []SuggestionDTO `json:"suggestions"`
	ActiveIndex int             `json:"activeIndex"`
	Open        bool            `json:"open"`
}

// ToDTO derives the wire shape of a product.
func ToDTO(p Product) ProductDTO {
	return ProductDTO{
		ID:               p.ID,
		ProductName:      p.ProductName,
		SellerInfo:       p.SellerInfo,
		StockCount:       p.StockCount,
		Price:            p.Price,
		DiscountedPrice:  p.DiscountedPrice,
		EffectivePrice:   p.EffectivePrice(),
		DiscountPercent:  p.DiscountPercent(),
		InStock:          p.InStock(),
		Category:         p.Category,
		ProductImageURLs: p.ProductImageURLs,
	}
}

// ToDTOs maps a collection.
func ToDTOs(c Collection) []ProductDTO {
	out := make([]ProductDTO, len(c))
	for i, p := range c {
		out[i] = ToDTO(p)
	}
	return out
}

// ToSuggestionDTOs maps typeahead hits.
func ToSuggestionDTOs(hits []Suggestion) []SuggestionDTO {
	out := make([]SuggestionDTO, len(hits))
	for i, h := range hits {
		out[i] = SuggestionDTO{ProductID: h.ProductID, Name: h.Name}
	}
	return out
}
