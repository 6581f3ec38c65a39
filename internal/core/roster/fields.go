package roster

// ComparisonKind declares how a search term is compared against a field.
type ComparisonKind int

const (
	// SubstringCI matches case-insensitive containment (ILIKE with wildcards).
	SubstringCI ComparisonKind = iota
	// ExactNumeric compares the term directly against a numeric column; a
	// non-numeric term simply matches nothing.
	ExactNumeric
	// ExactFormattedDate compares against the rendered DD.MM.YYYY date, not
	// the raw stored date, so search input matches what clients see.
	ExactFormattedDate
)

// AllFields is the sentinel field name meaning "search every field".
const AllFields = "all"

// birthDateExpr renders the stored date the same way the read projection does.
const birthDateExpr = "TO_CHAR(players.birthdate, 'DD.MM.YYYY')"

// FieldSpec maps a logical field name onto its column expression. Only
// expressions from this closed set ever appear in generated query text;
// search terms are always bound parameters.
type FieldSpec struct {
	Column string
	Kind   ComparisonKind
}

var fieldSpecs = map[string]FieldSpec{
	"first_name":    {Column: "players.first_name", Kind: SubstringCI},
	"last_name":     {Column: "players.last_name", Kind: SubstringCI},
	"position":      {Column: "players.position", Kind: SubstringCI},
	"nationality":   {Column: "players.nationality", Kind: SubstringCI},
	"team":          {Column: "teams.team_name", Kind: SubstringCI},
	"jersey_number": {Column: "players.jersey_number", Kind: ExactNumeric},
	"height_cm":     {Column: "players.height_cm", Kind: ExactNumeric},
	"weight_kg":     {Column: "players.weight_kg", Kind: ExactNumeric},
	"birth_date":    {Column: birthDateExpr, Kind: ExactFormattedDate},
}

// textFields and numericFields fix the clause order of the all-field search.
var textFields = []string{
	"players.first_name",
	"players.last_name",
	"players.position",
	"players.nationality",
	"teams.team_name",
}

var numericFields = []string{
	"players.jersey_number",
	"players.height_cm",
	"players.weight_kg",
}

// Resolve looks up a logical field name in the registry.
func Resolve(name string) (FieldSpec, bool) {
	spec, ok := fieldSpecs[name]
	return spec, ok
}
