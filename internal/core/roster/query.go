package roster

import (
	"fmt"
	"strings"
)

// Predicate is a validated, parameterized filter over the joined relation.
// An empty Clause matches everything. Unsupported carries a field name that
// was not found in the registry; the caller decides whether to reject.
type Predicate struct {
	Clause      string
	Args        []interface{}
	Unsupported string
}

func (p Predicate) IsEmpty() bool {
	return p.Clause == "" && p.Unsupported == ""
}

// BuildPredicate turns raw search parameters into a predicate. Terms are
// always bound via placeholders; only registry column expressions appear in
// the clause text.
func BuildPredicate(f Filter) Predicate {
	if f.Search == "" {
		return Predicate{}
	}

	if f.Field == "" || f.Field == AllFields {
		return anyFieldPredicate(f.Search)
	}

	spec, ok := Resolve(f.Field)
	if !ok {
		return Predicate{Unsupported: f.Field}
	}

	switch spec.Kind {
	case SubstringCI:
		return Predicate{
			Clause: fmt.Sprintf("%s ILIKE $1", spec.Column),
			Args:   []interface{}{"%" + f.Search + "%"},
		}
	default:
		// ExactNumeric and ExactFormattedDate are both plain equality; the
		// column expression already carries any formatting.
		return Predicate{
			Clause: fmt.Sprintf("%s = $1", spec.Column),
			Args:   []interface{}{f.Search},
		}
	}
}

// anyFieldPredicate ORs every comparison kind together: substring containment
// on the textual fields, text-cast equality on the numeric fields, and
// equality on the formatted birth date.
func anyFieldPredicate(search string) Predicate {
	clauses := make([]string, 0, len(textFields)+len(numericFields)+1)
	for _, column := range textFields {
		clauses = append(clauses, fmt.Sprintf("%s ILIKE $1", column))
	}
	for _, column := range numericFields {
		clauses = append(clauses, fmt.Sprintf("CAST(%s AS TEXT) = $2", column))
	}
	clauses = append(clauses, fmt.Sprintf("%s = $3", birthDateExpr))

	return Predicate{
		Clause: strings.Join(clauses, " OR "),
		Args:   []interface{}{"%" + search + "%", search, search},
	}
}
