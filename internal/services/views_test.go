package services

import (
	"testing"

	"car_rental/internal/models"
	"car_rental/internal/mutation"
)

func TestParseView(t *testing.T) {
	for _, v := range Views() {
		got, err := ParseView(v.String())
		if err != nil || got != v {
			t.Fatalf("ParseView(%q) = %v, %v", v.String(), got, err)
		}
		if len(v.Labels()) == 0 || v.Title() == "" {
			t.Fatalf("view %s lacks labels or title", v)
		}
	}

	_, err := ParseView("index")
	if mutation.KindOf(err) != mutation.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestViews_CoverEveryTable(t *testing.T) {
	seen := map[string]bool{}
	for _, v := range Views() {
		seen[v.Table().Entity] = true
	}
	for _, table := range models.Tables() {
		if !seen[table.Entity] {
			t.Errorf("no view deletes from %s", table.Entity)
		}
	}
	if ViewWorkers.Path() != "/workers" {
		t.Fatalf("unexpected path %s", ViewWorkers.Path())
	}
}
