package utils

import "testing"

type countRow struct {
	name  string
	count int
}

func (r countRow) GetPurchaseCount() int {
	return r.count
}

func TestTopByCount(t *testing.T) {
	rows := []countRow{
		{"low", 1},
		{"high", 9},
		{"mid", 5},
		{"also-mid", 5},
	}

	top := TopByCount(rows, 3)

	if len(top) != 3 {
		t.Fatalf("TopByCount() returned %d rows, expected 3", len(top))
	}
	if top[0].name != "high" {
		t.Errorf("expected highest count first, got %q", top[0].name)
	}
	// Stable sort keeps original order for ties.
	if top[1].name != "mid" || top[2].name != "also-mid" {
		t.Errorf("tie order not preserved: got %q, %q", top[1].name, top[2].name)
	}
}

func TestTopByCountShortInput(t *testing.T) {
	rows := []countRow{{"only", 2}}
	top := TopByCount(rows, 10)
	if len(top) != 1 {
		t.Errorf("TopByCount() returned %d rows, expected 1", len(top))
	}
}
