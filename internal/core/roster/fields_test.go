package roster

import "testing"

func TestResolve_RecognizedFields(t *testing.T) {
	tests := []struct {
		name   string
		column string
		kind   ComparisonKind
	}{
		{"first_name", "players.first_name", SubstringCI},
		{"last_name", "players.last_name", SubstringCI},
		{"position", "players.position", SubstringCI},
		{"nationality", "players.nationality", SubstringCI},
		{"team", "teams.team_name", SubstringCI},
		{"jersey_number", "players.jersey_number", ExactNumeric},
		{"height_cm", "players.height_cm", ExactNumeric},
		{"weight_kg", "players.weight_kg", ExactNumeric},
		{"birth_date", "TO_CHAR(players.birthdate, 'DD.MM.YYYY')", ExactFormattedDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, ok := Resolve(tt.name)
			if !ok {
				t.Fatalf("Resolve(%q) should succeed", tt.name)
			}
			if spec.Column != tt.column {
				t.Errorf("Resolve(%q) column = %q, want %q", tt.name, spec.Column, tt.column)
			}
			if spec.Kind != tt.kind {
				t.Errorf("Resolve(%q) kind = %d, want %d", tt.name, spec.Kind, tt.kind)
			}
		})
	}
}

func TestResolve_UnrecognizedField(t *testing.T) {
	for _, name := range []string{"", "salary", "team_id", "players.first_name", AllFields} {
		if _, ok := Resolve(name); ok {
			t.Errorf("Resolve(%q) should not succeed", name)
		}
	}
}

func TestRecord_ColumnsMatchValues(t *testing.T) {
	record := &Record{
		ID:           7,
		FirstName:    "Luka",
		LastName:     "Doncic",
		Position:     "PG",
		JerseyNumber: 77,
		HeightCM:     201,
		WeightKG:     104,
		BirthDate:    "28.02.1999",
		Nationality:  "Slovenian",
		Team:         "Dallas Mavericks",
	}

	columns := record.Columns()
	values := record.Values()

	if len(columns) != len(values) {
		t.Fatalf("Columns() has %d entries, Values() has %d", len(columns), len(values))
	}
	if columns[0] != "id" || values[0] != "7" {
		t.Errorf("first attribute = %s/%s, want id/7", columns[0], values[0])
	}
	if columns[7] != "birth_date" || values[7] != "28.02.1999" {
		t.Errorf("birth_date attribute = %s/%s", columns[7], values[7])
	}
	if columns[9] != "team" || values[9] != "Dallas Mavericks" {
		t.Errorf("team attribute = %s/%s", columns[9], values[9])
	}
}
