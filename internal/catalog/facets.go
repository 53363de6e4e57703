package catalog

// DistinctSellers returns every seller once, in first-seen collection order.
// Recomputed in full whenever the collection changes; an O(n) pass is fine
// at expected catalog sizes.
func DistinctSellers(c Collection) []string {
	return distinct(c, func(p Product) string { return p.SellerInfo })
}

// DistinctCategories returns every category once, in first-seen order.
func DistinctCategories(c Collection) []string {
	return distinct(c, func(p Product) string { return p.Category })
}

func distinct(c Collection, field func(Product) string) []string {
	seen := make(map[string]struct{}, len(c))
	values := make([]string, 0, len(c))
	for _, p := range c {
		v := field(p)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}
