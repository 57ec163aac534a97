package reporting

import (
	"strings"
	"testing"
)

func TestPredefinedMeasures(t *testing.T) {
	expectedIDs := []string{
		"revenue-by-day",
		"revenue-by-month",
		"outstanding-receivables",
		"expenses-by-category",
		"net-profit-by-month",
		"appointments-by-status",
		"prescriptions-issued",
	}
	if len(PredefinedMeasures) != len(expectedIDs) {
		t.Fatalf("expected %d measures, got %d", len(expectedIDs), len(PredefinedMeasures))
	}
	for i, id := range expectedIDs {
		m := PredefinedMeasures[i]
		if m.ID != id {
			t.Errorf("measure %d: id = %q, want %q", i, m.ID, id)
		}
		if m.Name == "" || m.Description == "" || m.SQL == "" {
			t.Errorf("measure %q has empty fields", m.ID)
		}
	}
}

func TestFindMeasure(t *testing.T) {
	if m := FindMeasure("net-profit-by-month"); m == nil {
		t.Error("net-profit-by-month not found")
	} else if !strings.Contains(m.SQL, "payments") || !strings.Contains(m.SQL, "expenses") {
		t.Errorf("net profit measure should join payments and expenses: %s", m.SQL)
	}
	if m := FindMeasure("no-such-measure"); m != nil {
		t.Errorf("expected nil, got %+v", m)
	}
}
