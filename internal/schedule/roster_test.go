package schedule

import (
	"reflect"
	"testing"
)

func TestApplyRangeOverwritesEveryDay(t *testing.T) {
	reg := Registry{
		"2025-12-09": {"OLD"},
		"2025-12-10": {"OLD"},
	}

	next, err := ApplyRange(reg, "2025-12-10", "2025-12-12", []string{"A+B", "C+D"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, day := range []string{"2025-12-10", "2025-12-11", "2025-12-12"} {
		if !reflect.DeepEqual(next.TeamsOn(day), []string{"A+B", "C+D"}) {
			t.Fatalf("day %s not overwritten: %v", day, next.TeamsOn(day))
		}
	}
	if !reflect.DeepEqual(next.TeamsOn("2025-12-09"), []string{"OLD"}) {
		t.Fatal("days outside the range must be untouched")
	}
	// replacement is total, not a merge
	for _, team := range next.TeamsOn("2025-12-10") {
		if team == "OLD" {
			t.Fatal("expected old entry to be dropped")
		}
	}
}

func TestApplyRangeIsIdempotent(t *testing.T) {
	reg := Registry{}
	once, err := ApplyRange(reg, "2025-12-10", "2025-12-11", []string{"A+B"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	twice, err := ApplyRange(once, "2025-12-10", "2025-12-11", []string{"A+B"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(once, twice) {
		t.Fatal("reapplying the same range must not change the registry")
	}
}

func TestApplyRangeDoesNotAliasInput(t *testing.T) {
	reg := Registry{"2025-12-09": {"KEEP"}}
	next, err := ApplyRange(reg, "2025-12-10", "2025-12-10", []string{"A+B"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	next["2025-12-09"][0] = "MUTATED"
	if reg["2025-12-09"][0] != "KEEP" {
		t.Fatal("ApplyRange leaked a shared slice")
	}
}

func TestApplyRangeRejectsInvertedRange(t *testing.T) {
	if _, err := ApplyRange(Registry{}, "2025-12-12", "2025-12-10", []string{"A+B"}); err == nil {
		t.Fatal("expected error for inverted range")
	}
}

func TestHasTeam(t *testing.T) {
	reg := Registry{"2025-12-10": {"A+B"}}
	if !reg.HasTeam("2025-12-10", "A+B") {
		t.Fatal("expected team to be active")
	}
	if reg.HasTeam("2025-12-10", "C+D") {
		t.Fatal("unexpected team")
	}
	if reg.HasTeam("2025-12-11", "A+B") {
		t.Fatal("missing day must have no teams")
	}
}
