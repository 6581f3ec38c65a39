package roster

import (
	"strings"
	"testing"
)

func TestBuildPredicate_EmptySearch(t *testing.T) {
	for _, filter := range []Filter{
		{},
		{Field: "first_name"},
		{Field: "not-a-field"},
	} {
		predicate := BuildPredicate(filter)
		if !predicate.IsEmpty() {
			t.Errorf("BuildPredicate(%+v) should be empty, got %+v", filter, predicate)
		}
		if len(predicate.Args) != 0 {
			t.Errorf("empty predicate should carry no args, got %v", predicate.Args)
		}
	}
}

func TestBuildPredicate_SubstringField(t *testing.T) {
	predicate := BuildPredicate(Filter{Search: "luka", Field: "first_name"})

	if predicate.Clause != "players.first_name ILIKE $1" {
		t.Errorf("clause = %q", predicate.Clause)
	}
	if len(predicate.Args) != 1 || predicate.Args[0] != "%luka%" {
		t.Errorf("args = %v, want [%%luka%%]", predicate.Args)
	}
}

func TestBuildPredicate_TeamNameJoinsOtherTable(t *testing.T) {
	predicate := BuildPredicate(Filter{Search: "lakers", Field: "team"})

	if predicate.Clause != "teams.team_name ILIKE $1" {
		t.Errorf("clause = %q", predicate.Clause)
	}
}

func TestBuildPredicate_NumericField(t *testing.T) {
	predicate := BuildPredicate(Filter{Search: "77", Field: "jersey_number"})

	if predicate.Clause != "players.jersey_number = $1" {
		t.Errorf("clause = %q", predicate.Clause)
	}
	// The term is passed through, not coerced; non-numeric terms match nothing.
	if len(predicate.Args) != 1 || predicate.Args[0] != "77" {
		t.Errorf("args = %v, want [77]", predicate.Args)
	}
}

func TestBuildPredicate_FormattedDateField(t *testing.T) {
	predicate := BuildPredicate(Filter{Search: "28.02.1999", Field: "birth_date"})

	want := "TO_CHAR(players.birthdate, 'DD.MM.YYYY') = $1"
	if predicate.Clause != want {
		t.Errorf("clause = %q, want %q", predicate.Clause, want)
	}
	if len(predicate.Args) != 1 || predicate.Args[0] != "28.02.1999" {
		t.Errorf("args = %v", predicate.Args)
	}
}

func TestBuildPredicate_AllFields(t *testing.T) {
	for _, field := range []string{"", AllFields} {
		predicate := BuildPredicate(Filter{Search: "luka", Field: field})

		if predicate.Unsupported != "" {
			t.Fatalf("all-field search should be supported, got %+v", predicate)
		}

		// One OR branch per textual field, numeric field, and the date.
		branches := strings.Split(predicate.Clause, " OR ")
		want := len(textFields) + len(numericFields) + 1
		if len(branches) != want {
			t.Errorf("clause has %d branches, want %d: %q", len(branches), want, predicate.Clause)
		}

		for _, column := range textFields {
			if !strings.Contains(predicate.Clause, column+" ILIKE $1") {
				t.Errorf("clause missing substring branch for %s", column)
			}
		}
		for _, column := range numericFields {
			if !strings.Contains(predicate.Clause, "CAST("+column+" AS TEXT) = $2") {
				t.Errorf("clause missing numeric branch for %s", column)
			}
		}
		if !strings.Contains(predicate.Clause, "TO_CHAR(players.birthdate, 'DD.MM.YYYY') = $3") {
			t.Errorf("clause missing formatted date branch: %q", predicate.Clause)
		}

		wantArgs := []interface{}{"%luka%", "luka", "luka"}
		if len(predicate.Args) != len(wantArgs) {
			t.Fatalf("args = %v, want %v", predicate.Args, wantArgs)
		}
		for i := range wantArgs {
			if predicate.Args[i] != wantArgs[i] {
				t.Errorf("args[%d] = %v, want %v", i, predicate.Args[i], wantArgs[i])
			}
		}
	}
}

func TestBuildPredicate_UnsupportedField(t *testing.T) {
	predicate := BuildPredicate(Filter{Search: "x", Field: "salary"})

	if predicate.Unsupported != "salary" {
		t.Errorf("Unsupported = %q, want salary", predicate.Unsupported)
	}
	if predicate.Clause != "" || len(predicate.Args) != 0 {
		t.Errorf("unsupported predicate should not build a clause, got %+v", predicate)
	}
	if predicate.IsEmpty() {
		t.Error("unsupported predicate must not be mistaken for match-all")
	}
}

func TestBuildPredicate_TermNeverInterpolated(t *testing.T) {
	hostile := `'; DROP TABLE players; --`

	for _, filter := range []Filter{
		{Search: hostile},
		{Search: hostile, Field: "first_name"},
		{Search: hostile, Field: "jersey_number"},
		{Search: hostile, Field: "birth_date"},
	} {
		predicate := BuildPredicate(filter)
		if strings.Contains(predicate.Clause, "DROP TABLE") {
			t.Errorf("term leaked into clause text: %q", predicate.Clause)
		}
	}
}
