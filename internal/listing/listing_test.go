package listing

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		page      string
		limit     string
		search    string
		wantPage  int
		wantLimit int
	}{
		{name: "defaults", page: "", limit: "", wantPage: 1, wantLimit: 10},
		{name: "explicit", page: "3", limit: "25", wantPage: 3, wantLimit: 25},
		{name: "non_numeric_page", page: "abc", limit: "5", wantPage: 1, wantLimit: 5},
		{name: "non_numeric_limit", page: "2", limit: "xyz", wantPage: 2, wantLimit: 10},
		{name: "zero_page", page: "0", limit: "5", wantPage: 1, wantLimit: 5},
		{name: "negative_limit", page: "2", limit: "-4", wantPage: 2, wantLimit: 10},
		{name: "whitespace", page: " 2 ", limit: " 5 ", wantPage: 2, wantLimit: 5},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			p := Normalize(tt.page, tt.limit, tt.search, 10)

			if p.Page != tt.wantPage {
				t.Fatalf("got page %d, want %d", p.Page, tt.wantPage)
			}
			if p.Limit != tt.wantLimit {
				t.Fatalf("got limit %d, want %d", p.Limit, tt.wantLimit)
			}
		})
	}
}

func TestNormalize_TrimsSearch(t *testing.T) {
	p := Normalize("", "", "  aspirin  ", 10)

	if p.Search != "aspirin" {
		t.Fatalf("got search %q, want %q", p.Search, "aspirin")
	}
}

func TestParamsOffset(t *testing.T) {
	p := Params{Page: 3, Limit: 2}

	if got := p.Offset(); got != 4 {
		t.Fatalf("got offset %d, want 4", got)
	}
}

var testSpec = MustSpec(Spec{
	Table:         "medicines",
	Columns:       []string{"id", "name", "generic_name", "category", "created_at", "updated_at"},
	SearchColumns: []string{"name", "generic_name", "category"},
})

func TestSelectSQL_NoSearch(t *testing.T) {
	sql, args := testSpec.SelectSQL(Params{Page: 1, Limit: 10})

	if strings.Contains(sql, "WHERE") {
		t.Fatalf("empty search should not produce a WHERE clause: %s", sql)
	}

	if !strings.Contains(sql, "ORDER BY created_at DESC, id DESC") {
		t.Fatalf("missing stable ordering: %s", sql)
	}

	if !strings.HasSuffix(sql, "LIMIT $1 OFFSET $2") {
		t.Fatalf("unexpected window clause: %s", sql)
	}

	if len(args) != 2 || args[0] != 10 || args[1] != 0 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSelectSQL_WithSearch(t *testing.T) {
	sql, args := testSpec.SelectSQL(Params{Page: 2, Limit: 5, Search: "para"})

	if !strings.Contains(sql, "(name ILIKE $1 OR generic_name ILIKE $1 OR category ILIKE $1)") {
		t.Fatalf("search predicate not OR-combined over the search columns: %s", sql)
	}

	if !strings.HasSuffix(sql, "LIMIT $2 OFFSET $3") {
		t.Fatalf("unexpected window clause: %s", sql)
	}

	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %v", args)
	}

	if args[0] != "%para%" {
		t.Fatalf("expected wrapped search term, got %v", args[0])
	}

	if args[1] != 5 || args[2] != 5 {
		t.Fatalf("expected limit 5 offset 5, got %v", args)
	}
}

func TestCountSQL_MatchesPredicate(t *testing.T) {
	withSearch, args := testSpec.CountSQL(Params{Page: 9, Limit: 3, Search: "para"})

	if !strings.HasPrefix(withSearch, "SELECT COUNT(*) FROM medicines") {
		t.Fatalf("unexpected count query: %s", withSearch)
	}

	if !strings.Contains(withSearch, "ILIKE $1") {
		t.Fatalf("count query must reuse the search predicate: %s", withSearch)
	}

	if strings.Contains(withSearch, "LIMIT") || strings.Contains(withSearch, "OFFSET") {
		t.Fatalf("count query must not be windowed: %s", withSearch)
	}

	if len(args) != 1 || args[0] != "%para%" {
		t.Fatalf("unexpected count args: %v", args)
	}

	// page and limit must not influence the predicate
	other, otherArgs := testSpec.CountSQL(Params{Page: 1, Limit: 100, Search: "para"})

	if other != withSearch || otherArgs[0] != args[0] {
		t.Fatalf("count query should be invariant under page/limit changes")
	}
}

func TestSpecValidate(t *testing.T) {
	tests := []struct {
		name    string
		spec    Spec
		wantErr bool
	}{
		{
			name: "valid",
			spec: Spec{Table: "staff", Columns: []string{"id"}, SearchColumns: []string{"first_name"}},
		},
		{
			name:    "bad_table",
			spec:    Spec{Table: "staff; DROP TABLE staff", Columns: []string{"id"}},
			wantErr: true,
		},
		{
			name:    "bad_search_column",
			spec:    Spec{Table: "staff", Columns: []string{"id"}, SearchColumns: []string{"name OR 1=1"}},
			wantErr: true,
		},
		{
			name:    "no_columns",
			spec:    Spec{Table: "staff"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()

			if tt.wantErr && err == nil {
				t.Fatalf("expected error, got nil")
			}

			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
