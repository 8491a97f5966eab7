package domain

import "sort"

// DefaultPageSize is the number of products shown per catalog page.
const DefaultPageSize = 2

// PagingInfo describes the page window handed to the browse view.
// TotalPages is derived on every call and never stored.
type PagingInfo struct {
	CurrentPage  int
	ItemsPerPage int
	TotalItems   int64
}

// TotalPages returns ceil(TotalItems / ItemsPerPage), or 0 for an empty set.
func (p PagingInfo) TotalPages() int {
	if p.ItemsPerPage <= 0 || p.TotalItems <= 0 {
		return 0
	}
	size := int64(p.ItemsPerPage)
	return int((p.TotalItems + size - 1) / size)
}

// Paginate orders items by ID and returns the window for requestedPage.
// Pages below 1 are clamped to 1; pages past the end yield an empty window.
func Paginate(items []Product, totalCount int64, requestedPage, pageSize int) ([]Product, PagingInfo) {
	if requestedPage < 1 {
		requestedPage = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if totalCount < 0 {
		totalCount = 0
	}

	info := PagingInfo{
		CurrentPage:  requestedPage,
		ItemsPerPage: pageSize,
		TotalItems:   totalCount,
	}

	sorted := make([]Product, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	// Compare page indexes, not offsets: (page-1)*size overflows for huge pages.
	pages := (len(sorted) + pageSize - 1) / pageSize
	if requestedPage-1 >= pages {
		return []Product{}, info
	}
	offset := (requestedPage - 1) * pageSize
	end := min(offset+pageSize, len(sorted))
	return sorted[offset:end], info
}
