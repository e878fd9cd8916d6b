// Package listing builds the paginated search queries shared by every
// list-backed entity: one data query and one count query over the same
// filter predicate.
package listing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const DefaultLimit = 10

// Params are the normalized pagination inputs of a list call. Malformed
// page/limit values are coerced to defaults, never rejected.
type Params struct {
	Page   int
	Limit  int
	Search string
}

// Normalize parses the raw query string values. Non-numeric or non-positive
// page/limit fall back to page 1 and the given default limit.
func Normalize(pageStr, limitStr, search string, defaultLimit int) Params {
	if defaultLimit < 1 {
		defaultLimit = DefaultLimit
	}

	page, err := strconv.Atoi(strings.TrimSpace(pageStr))

	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(strings.TrimSpace(limitStr))

	if err != nil || limit < 1 {
		limit = defaultLimit
	}

	return Params{
		Page:   page,
		Limit:  limit,
		Search: strings.TrimSpace(search),
	}
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Spec describes one listable table: the columns a query selects (in scan
// order) and the fixed set of text columns a search term is matched against.
type Spec struct {
	Table         string
	Columns       []string
	SearchColumns []string
}

// column names are interpolated into SQL, so they are allow-listed instead
// of trusted
var identPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

func (s Spec) Validate() error {
	if !identPattern.MatchString(s.Table) {
		return fmt.Errorf("listing: invalid table name %q", s.Table)
	}

	if len(s.Columns) == 0 {
		return fmt.Errorf("listing: spec for %s has no columns", s.Table)
	}

	for _, c := range append(append([]string{}, s.Columns...), s.SearchColumns...) {
		if !identPattern.MatchString(c) {
			return fmt.Errorf("listing: invalid column name %q", c)
		}
	}

	return nil
}

// MustSpec validates a statically declared spec at package init time.
func MustSpec(s Spec) Spec {
	if err := s.Validate(); err != nil {
		panic(err)
	}

	return s
}

// SelectSQL returns the windowed data query. The window is always ordered by
// created_at descending with id as the tie-break key, so pages are stable
// for rows sharing a timestamp.
func (s Spec) SelectSQL(p Params) (string, []interface{}) {
	var b strings.Builder

	b.WriteString("SELECT ")
	b.WriteString(strings.Join(s.Columns, ", "))
	b.WriteString(" FROM ")
	b.WriteString(s.Table)

	args := make([]interface{}, 0, 3)

	if where, ok := s.searchPredicate(p, &args); ok {
		b.WriteString(" WHERE ")
		b.WriteString(where)
	}

	b.WriteString(" ORDER BY created_at DESC, id DESC")
	b.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2))
	args = append(args, p.Limit, p.Offset())

	return b.String(), args
}

// CountSQL returns the exact-total query over the identical predicate,
// without the pagination window.
func (s Spec) CountSQL(p Params) (string, []interface{}) {
	var b strings.Builder

	b.WriteString("SELECT COUNT(*) FROM ")
	b.WriteString(s.Table)

	args := make([]interface{}, 0, 1)

	if where, ok := s.searchPredicate(p, &args); ok {
		b.WriteString(" WHERE ")
		b.WriteString(where)
	}

	return b.String(), args
}

// searchPredicate appends the case-insensitive substring filter, OR-combined
// across the search columns. An empty search term means no filter at all.
func (s Spec) searchPredicate(p Params, args *[]interface{}) (string, bool) {
	if p.Search == "" || len(s.SearchColumns) == 0 {
		return "", false
	}

	*args = append(*args, "%"+p.Search+"%")
	pos := len(*args)

	conds := make([]string, 0, len(s.SearchColumns))

	for _, col := range s.SearchColumns {
		conds = append(conds, fmt.Sprintf("%s ILIKE $%d", col, pos))
	}

	return "(" + strings.Join(conds, " OR ") + ")", true
}
