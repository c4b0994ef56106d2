package services

import (
	"net/url"
	"strconv"

	"realestate-backend/internal/repositories"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 12
	DefaultSort    = "default"
)

// ListParams is the flat filter/sort/paging state a listing page accepts via
// its query string.
type ListParams struct {
	Page     int    `json:"page"`
	PerPage  int    `json:"perPage"`
	Keyword  string `json:"keyword"`
	Location string `json:"location"`
	Category string `json:"category"`
	Status   string `json:"status"`
	Sort     string `json:"sort"`
}

// ParseListParams reads listing parameters with their defaults. Unparsable
// or non-positive numerics fall back to the defaults rather than erroring.
func ParseListParams(values url.Values) ListParams {
	p := ListParams{
		Page:     DefaultPage,
		PerPage:  DefaultPerPage,
		Keyword:  values.Get("keyword"),
		Location: values.Get("location"),
		Category: values.Get("category"),
		Status:   values.Get("status"),
		Sort:     values.Get("sort"),
	}
	if p.Sort == "" {
		p.Sort = DefaultSort
	}
	if n, err := strconv.Atoi(values.Get("page")); err == nil && n > 0 {
		p.Page = n
	}
	if n, err := strconv.Atoi(values.Get("perPage")); err == nil && n > 0 {
		p.PerPage = n
	}
	return p
}

// Offset is the zero-based row offset of the requested page.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Filter compiles the params into the repository-level filter.
func (p ListParams) Filter() repositories.ListFilter {
	return repositories.ListFilter{
		Keyword:  p.Keyword,
		Location: p.Location,
		Category: p.Category,
		Status:   p.Status,
		Sort:     p.Sort,
		Limit:    p.PerPage,
		Offset:   p.Offset(),
	}
}

// TotalPages is ceil(totalCount / perPage).
func TotalPages(totalCount, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	return (totalCount + perPage - 1) / perPage
}

// distinctNonEmpty deduplicates values preserving first-seen order, skipping
// nils and empty strings. This mirrors how the site derived its filter
// options from a full column scan.
func distinctNonEmpty(values []*string) []string {
	seen := make(map[string]struct{}, len(values))
	out := []string{}
	for _, v := range values {
		if v == nil || *v == "" {
			continue
		}
		if _, ok := seen[*v]; ok {
			continue
		}
		seen[*v] = struct{}{}
		out = append(out, *v)
	}
	return out
}
