package catalog

// DefaultPageSize is the grid page size when none is configured.
const DefaultPageSize = 12

// PageCount returns ceil(len(view)/size), never less than 1: an empty view
// is still "page 1 of 1", which keeps every division edge case out of the
// navigation math.
func PageCount(total, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	count := (total + size - 1) / size
	if count < 1 {
		return 1
	}
	return count
}

// ClampPage forces page into [1, count].
func ClampPage(page, count int) int {
	if page < 1 {
		return 1
	}
	if page > count {
		return count
	}
	return page
}

// Paginate slices the view to [(page-1)*size, page*size), clamped to the
// view bounds. A page past the end yields an empty slice, not an error.
func Paginate(view Collection, size, page int) Collection {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * size
	if start >= len(view) {
		return Collection{}
	}
	end := start + size
	if end > len(view) {
		end = len(view)
	}
	return view[start:end:end]
}
