package entity

import "strings"

// Neutral is the criterion value meaning "no filtering on this dimension".
// Predicates encode the exemption themselves so the engine stays dumb.
const Neutral = "all"

// Criteria maps a filter dimension name to its current value.
// A fresh map is built on every input event; never mutated in place.
type Criteria map[string]string

// Clone returns an independent copy, nil-safe.
func (crit Criteria) Clone() Criteria {

	out := make(Criteria, len(crit))
	for dim, val := range crit {
		out[dim] = val
	}
	return out
}

// Predicate reports whether a project matches one dimension's criterion.
type Predicate func(prj Project, val string) bool

// PredicateTable maps dimension name to predicate.  Built once at startup
// and treated as immutable after.
type PredicateTable map[string]Predicate

// Predicates returns the table for the standard project dimensions:
// exact-match type and registry selectors plus a free-text search over
// name, location, and methodology.
func Predicates() PredicateTable {

	return PredicateTable{
		"type":     matchField(func(prj Project) string { return prj.Type }),
		"registry": matchField(func(prj Project) string { return prj.Registry }),
		"search":   searchText,
	}
}

// unexported

func matchField(field func(Project) string) Predicate {

	return func(prj Project, val string) bool {
		if neutral(val) {
			return true
		}
		return strings.EqualFold(field(prj), val)
	}
}

func searchText(prj Project, val string) bool {

	if neutral(val) {
		return true
	}

	needle := strings.ToLower(val)
	for _, hay := range []string{prj.Name, prj.Location, prj.Methodology} {
		if strings.Contains(strings.ToLower(hay), needle) {
			return true
		}
	}
	return false
}

func neutral(val string) bool {
	return val == "" || strings.EqualFold(val, Neutral)
}
