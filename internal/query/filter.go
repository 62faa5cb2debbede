package query

import "regexp"

// Cond is a condition on a single field: equality when Eq is set, otherwise
// an inclusive range where a nil bound is open.
type Cond struct {
	Field string
	Eq    any
	Min   any
	Max   any
}

// IsRange reports whether c is a range condition.
func (c Cond) IsRange() bool {
	return c.Eq == nil
}

// Search is a case-insensitive pattern matched against any of Fields.
type Search struct {
	Fields  []string
	Pattern string
}

// Filter is an immutable, store-neutral predicate. It holds at most one
// condition per field; every method returns a modified copy.
type Filter struct {
	conds  []Cond
	search *Search
	never  bool
}

// Where returns f with field constrained to equal value, replacing any
// previous condition on field.
func (f Filter) Where(field string, value any) Filter {
	return f.set(Cond{Field: field, Eq: value})
}

// Between returns f with field constrained to [min, max]. A nil bound is
// left open; when both are nil f is returned unchanged.
func (f Filter) Between(field string, min, max any) Filter {
	if min == nil && max == nil {
		return f
	}
	return f.set(Cond{Field: field, Min: min, Max: max})
}

// MatchAny returns f with a search for the literal text q across fields.
// Regex metacharacters in q are escaped.
func (f Filter) MatchAny(q string, fields ...string) Filter {
	out := f.clone()
	out.search = &Search{
		Fields:  append([]string(nil), fields...),
		Pattern: regexp.QuoteMeta(q),
	}
	return out
}

// Never returns a filter that matches no record.
func (f Filter) Never() Filter {
	out := f.clone()
	out.never = true
	return out
}

// IsNever reports whether f can match no record.
func (f Filter) IsNever() bool {
	return f.never
}

// Conds returns the field conditions in insertion order.
func (f Filter) Conds() []Cond {
	return append([]Cond(nil), f.conds...)
}

// Lookup returns the condition on field, if any.
func (f Filter) Lookup(field string) (Cond, bool) {
	for _, c := range f.conds {
		if c.Field == field {
			return c, true
		}
	}
	return Cond{}, false
}

// Search returns the text search, or nil.
func (f Filter) Search() *Search {
	if f.search == nil {
		return nil
	}
	s := *f.search
	s.Fields = append([]string(nil), f.search.Fields...)
	return &s
}

func (f Filter) set(c Cond) Filter {
	out := f.clone()
	for i := range out.conds {
		if out.conds[i].Field == c.Field {
			out.conds[i] = c
			return out
		}
	}
	out.conds = append(out.conds, c)
	return out
}

func (f Filter) clone() Filter {
	out := Filter{never: f.never, search: f.search}
	if f.conds != nil {
		out.conds = append(make([]Cond, 0, len(f.conds)+1), f.conds...)
	}
	return out
}
