package model

import (
	"errors"
	"math"
	"testing"
)

// TestNewReport tests sorting and percentage calculation.
func TestNewReport(t *testing.T) {
	t.Parallel()

	t.Run("orders rows by descending bytes", func(t *testing.T) {
		t.Parallel()

		tally := Tally{
			{Name: "JavaScript", Bytes: 20},
			{Name: "Python", Bytes: 80},
		}
		report := NewReport("octocat/hello", tally)

		if len(report.Rows) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(report.Rows))
		}
		if report.Rows[0].Language != "Python" || report.Rows[0].Bytes != 80 {
			t.Errorf("expected Python 80 first, got %+v", report.Rows[0])
		}
		if report.Rows[0].Percent != 80.0 {
			t.Errorf("expected 80.0%%, got %v", report.Rows[0].Percent)
		}
		if report.Rows[1].Language != "JavaScript" || report.Rows[1].Percent != 20.0 {
			t.Errorf("expected JavaScript 20.0%% second, got %+v", report.Rows[1])
		}
	})

	t.Run("ties keep source order", func(t *testing.T) {
		t.Parallel()

		tally := Tally{
			{Name: "Shell", Bytes: 10},
			{Name: "Go", Bytes: 50},
			{Name: "Makefile", Bytes: 10},
			{Name: "Dockerfile", Bytes: 10},
		}
		report := NewReport("o/r", tally)

		expected := []string{"Go", "Shell", "Makefile", "Dockerfile"}
		for i, name := range expected {
			if report.Rows[i].Language != name {
				t.Errorf("row %d: got %q, expected %q", i, report.Rows[i].Language, name)
			}
		}
	})

	t.Run("does not reorder the input tally", func(t *testing.T) {
		t.Parallel()

		tally := Tally{
			{Name: "C", Bytes: 1},
			{Name: "Rust", Bytes: 9},
		}
		_ = NewReport("o/r", tally)

		if tally[0].Name != "C" {
			t.Errorf("expected input tally to be untouched, got %v", tally.Names())
		}
	})

	t.Run("empty tally produces empty report", func(t *testing.T) {
		t.Parallel()

		report := NewReport("o/r", Tally{})
		if !report.IsEmpty() {
			t.Error("expected empty report")
		}
		if len(report.Rows) != 0 {
			t.Errorf("expected no rows, got %d", len(report.Rows))
		}
	})

	t.Run("zero byte languages produce empty report", func(t *testing.T) {
		t.Parallel()

		report := NewReport("o/r", Tally{{Name: "Go", Bytes: 0}})
		if !report.IsEmpty() {
			t.Error("expected empty report when total is zero")
		}
	})

	t.Run("records repository and total", func(t *testing.T) {
		t.Parallel()

		report := NewReport("octocat/hello", Tally{{Name: "Go", Bytes: 3}, {Name: "C", Bytes: 4}})
		if report.Repository != "octocat/hello" {
			t.Errorf("unexpected repository %q", report.Repository)
		}
		if report.TotalBytes != 7 {
			t.Errorf("expected total 7, got %d", report.TotalBytes)
		}
	})
}

// TestReportPercentSum checks that shares add up to 100 for arbitrary tallies.
func TestReportPercentSum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		tally Tally
	}{
		{name: "single language", tally: Tally{{Name: "Go", Bytes: 12345}}},
		{name: "thirds", tally: Tally{{Name: "A", Bytes: 1}, {Name: "B", Bytes: 1}, {Name: "C", Bytes: 1}}},
		{name: "skewed", tally: Tally{{Name: "A", Bytes: 999999937}, {Name: "B", Bytes: 3}, {Name: "C", Bytes: 71}}},
		{name: "with zero entry", tally: Tally{{Name: "A", Bytes: 7}, {Name: "B", Bytes: 0}, {Name: "C", Bytes: 13}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			report := NewReport("o/r", tt.tally)
			if sum := report.PercentSum(); math.Abs(sum-100) > 1e-9 {
				t.Errorf("expected percentages to sum to 100, got %v", sum)
			}
		})
	}
}

// TestTallyValidate tests tally validation rules.
func TestTallyValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid tally returns nil", func(t *testing.T) {
		t.Parallel()

		tally := Tally{{Name: "Go", Bytes: 1}, {Name: "C", Bytes: 0}}
		if err := tally.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("duplicate language returns ErrDuplicateLanguage", func(t *testing.T) {
		t.Parallel()

		tally := Tally{{Name: "Go", Bytes: 1}, {Name: "Go", Bytes: 2}}
		if err := tally.Validate(); !errors.Is(err, ErrDuplicateLanguage) {
			t.Errorf("expected ErrDuplicateLanguage, got %v", err)
		}
	})

	t.Run("negative bytes returns ErrNegativeBytes", func(t *testing.T) {
		t.Parallel()

		tally := Tally{{Name: "Go", Bytes: -1}}
		if err := tally.Validate(); !errors.Is(err, ErrNegativeBytes) {
			t.Errorf("expected ErrNegativeBytes, got %v", err)
		}
	})
}

func TestPlacementString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		placement Placement
		want      string
	}{
		{PlacementNone, "none"},
		{PlacementReplaced, "replaced"},
		{PlacementAppended, "appended"},
		{Placement(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.placement.String(); got != tt.want {
			t.Errorf("Placement(%d).String() = %q, want %q", tt.placement, got, tt.want)
		}
	}
}
