package postgres

import (
	"strings"
	"testing"

	"github.com/medixpro/medixpro/internal/listing"
)

// Each entity commits to a fixed set of searchable columns; a search term
// must produce an ILIKE predicate over exactly those columns.

func TestListingSpecSearchColumns(t *testing.T) {
	tests := []struct {
		name        string
		spec        listing.Spec
		wantColumns []string
	}{
		{"departments", departmentSpec, []string{"name", "head"}},
		{"staff", staffSpec, []string{"first_name", "last_name", "email", "role"}},
		{"patients", patientSpec, []string{"name", "email", "phone"}},
		{"prescriptions", prescriptionSpec, []string{"medications", "diagnosis", "status"}},
		{"medicines", medicineSpec, []string{"name", "generic_name", "category"}},
		{"blood_units", bloodUnitSpec, []string{"blood_type", "status"}},
		{"ambulances", ambulanceSpec, []string{"name", "registration_number", "driver_name"}},
		{"emergency_calls", emergencyCallSpec, []string{"patient_name", "location", "emergency_type"}},
		{"rooms", roomSpec, []string{"room_number", "room_type", "department"}},
		{"room_allotments", roomAllotmentSpec, []string{"patient_name", "attending_doctor", "status"}},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			if len(tt.spec.SearchColumns) != len(tt.wantColumns) {
				t.Fatalf("got search columns %v, want %v", tt.spec.SearchColumns, tt.wantColumns)
			}

			for i, col := range tt.wantColumns {
				if tt.spec.SearchColumns[i] != col {
					t.Fatalf("search column %d: got %q, want %q", i, tt.spec.SearchColumns[i], col)
				}
			}

			query, args := tt.spec.SelectSQL(listing.Params{Page: 1, Limit: 10, Search: "ward"})

			for _, col := range tt.wantColumns {
				if !strings.Contains(query, col+" ILIKE $1") {
					t.Fatalf("query misses ILIKE over %q: %s", col, query)
				}
			}

			if len(args) != 3 || args[0] != "%ward%" {
				t.Fatalf("unexpected args: %v", args)
			}
		})
	}
}

func TestRoomSpecColumnsMatchScanOrder(t *testing.T) {
	want := []string{
		"id", "room_number", "room_type", "department", "floor", "capacity",
		"status", "created_at", "updated_at",
	}

	if len(roomSpec.Columns) != len(want) {
		t.Fatalf("got columns %v, want %v", roomSpec.Columns, want)
	}

	for i, col := range want {
		if roomSpec.Columns[i] != col {
			t.Fatalf("column %d: got %q, want %q", i, roomSpec.Columns[i], col)
		}
	}
}

func TestRoomAllotmentSpecColumnsMatchScanOrder(t *testing.T) {
	want := []string{
		"id", "room_id", "patient_id", "patient_name", "attending_doctor",
		"allotment_date", "expected_discharge_date", "discharge_date",
		"status", "notes", "created_at", "updated_at",
	}

	if len(roomAllotmentSpec.Columns) != len(want) {
		t.Fatalf("got columns %v, want %v", roomAllotmentSpec.Columns, want)
	}

	for i, col := range want {
		if roomAllotmentSpec.Columns[i] != col {
			t.Fatalf("column %d: got %q, want %q", i, roomAllotmentSpec.Columns[i], col)
		}
	}
}
