package faq

import (
	"fmt"
	"math"
)

// page is a normalised listing window.
type page struct {
	number int
	size   int
}

// offset is the number of records before the page. ok is false when the
// product does not fit in an int, which places the page past any store.
func (p page) offset() (offset int, ok bool) {
	if p.number-1 > math.MaxInt/p.size {
		return 0, false
	}
	return (p.number - 1) * p.size, true
}

func (s *service) normalizePage(number, size int) page {
	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = s.cfg.DefaultPageSize
	}
	if size > s.cfg.MaxPageSize {
		size = s.cfg.MaxPageSize
	}
	return page{number: number, size: size}
}

func buildPagination(current, size int, total int64) Pagination {
	totalPages := 0
	if total > 0 && size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	return Pagination{
		CurrentPage: current,
		TotalPages:  totalPages,
		TotalItems:  total,
		HasNextPage: current < totalPages,
		HasPrevPage: current > 1,
	}
}

// listKey addresses one cached page: <prefix>:<lang>:<page>:<limit>.
func listKey(prefix string, lang Language, p page) string {
	return fmt.Sprintf("%s:%s:%d:%d", prefix, lang, p.number, p.size)
}

// namespace is the prefix shared by every listing key.
func namespace(prefix string) string {
	return prefix + ":"
}
