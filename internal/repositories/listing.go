package repositories

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrNotFound is returned when a lookup by slug or id matches no row.
// Callers distinguish it from store failures with errors.Is.
var ErrNotFound = errors.New("not found")

// ListFilter is the compiled form of the listing page's filter state.
// Empty string fields mean "no predicate".
type ListFilter struct {
	Keyword  string
	Location string
	Category string
	Status   string
	Sort     string
	Limit    int
	Offset   int
}

// escapeLike neutralizes LIKE metacharacters in user input so a keyword of
// "100%" matches literally instead of acting as a wildcard.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// condSet accumulates WHERE conditions with positional placeholders.
type condSet struct {
	conds []string
	args  []any
}

// add appends a condition template, replacing each "?" with the next
// positional placeholder.
func (c *condSet) add(cond string, vals ...any) {
	for _, v := range vals {
		c.args = append(c.args, v)
		cond = strings.Replace(cond, "?", fmt.Sprintf("$%d", len(c.args)), 1)
	}
	c.conds = append(c.conds, cond)
}

func (c *condSet) whereClause() string {
	if len(c.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(c.conds, " AND ")
}

// categorySkipped reports whether a category value is one of the "no filter"
// sentinels the site sends ("", "all", "All", "View All").
func categorySkipped(category string) bool {
	switch category {
	case "", "all", "All", "View All":
		return true
	}
	return false
}

func statusSkipped(status string) bool {
	return status == "" || status == "all"
}

// projectFilterConditions compiles the filter state for the projects table.
// Keyword searches name and developer; location is a substring match.
func projectFilterConditions(f ListFilter) *condSet {
	c := &condSet{}
	if f.Keyword != "" {
		kw := "%" + escapeLike(f.Keyword) + "%"
		c.add("(name ILIKE ? OR developer ILIKE ?)", kw, kw)
	}
	if f.Location != "" {
		c.add("location ILIKE ?", "%"+escapeLike(f.Location)+"%")
	}
	if !categorySkipped(f.Category) {
		c.add("category = ?", f.Category)
	}
	if !statusSkipped(f.Status) {
		c.add("status = ?", f.Status)
	}
	return c
}

// propertyFilterConditions compiles the filter state for the properties
// table. Keyword searches name and description; category matches
// property_type.
func propertyFilterConditions(f ListFilter) *condSet {
	c := &condSet{}
	if f.Keyword != "" {
		kw := "%" + escapeLike(f.Keyword) + "%"
		c.add("(name ILIKE ? OR description ILIKE ?)", kw, kw)
	}
	if f.Location != "" {
		c.add("location ILIKE ?", "%"+escapeLike(f.Location)+"%")
	}
	if !categorySkipped(f.Category) {
		c.add("property_type = ?", f.Category)
	}
	if !statusSkipped(f.Status) {
		c.add("status = ?", f.Status)
	}
	return c
}

// projectOrderClause maps a sort key to its ordering. Unknown keys get the
// default display order: featured first, then newest.
func projectOrderClause(sort string) string {
	switch sort {
	case "price_asc":
		return " ORDER BY price ASC"
	case "price_desc":
		return " ORDER BY price DESC"
	case "newest":
		return " ORDER BY created_at DESC"
	case "completion":
		return " ORDER BY completion_date ASC"
	default:
		return " ORDER BY featured DESC, created_at DESC"
	}
}

// propertyOrderClause is the properties variant; it has no completion sort.
func propertyOrderClause(sort string) string {
	switch sort {
	case "price_asc":
		return " ORDER BY price ASC"
	case "price_desc":
		return " ORDER BY price DESC"
	case "newest":
		return " ORDER BY created_at DESC"
	default:
		return " ORDER BY featured DESC, created_at DESC"
	}
}

// pageWindow emits LIMIT/OFFSET for the zero-based row window. An
// out-of-range offset simply yields an empty result; it is never clamped.
func pageWindow(f ListFilter, args []any) (string, []any) {
	args = append(args, f.Limit)
	clause := fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, f.Offset)
	clause += fmt.Sprintf(" OFFSET $%d", len(args))
	return clause, args
}
