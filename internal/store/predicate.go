package store

import "strings"

// Predicate selects resources for List.
//
// It carries the filter in two equivalent forms: a function evaluated by
// the memory store and a SQL condition used by the SQL store.
type Predicate[T any] struct {
	match func(T) bool
	query []string
	args  []any
}

// All matches every resource.
func All[T any]() Predicate[T] {
	return Predicate[T]{}
}

// Where returns a Predicate matching all resources for which match returns
// true. query and args are the equivalent gorm condition, e.g.
// "budget_id = ?", 4.
func Where[T any](match func(T) bool, query string, args ...any) Predicate[T] {
	return Predicate[T]{
		match: match,
		query: []string{query},
		args:  args,
	}
}

// And returns a Predicate that matches if both p and o match.
func (p Predicate[T]) And(o Predicate[T]) Predicate[T] {
	switch {
	case p.match == nil:
		return o
	case o.match == nil:
		return p
	}

	return Predicate[T]{
		match: func(r T) bool { return p.match(r) && o.match(r) },
		query: append(append([]string{}, p.query...), o.query...),
		args:  append(append([]any{}, p.args...), o.args...),
	}
}

// Match reports whether the resource matches.
func (p Predicate[T]) Match(r T) bool {
	return p.match == nil || p.match(r)
}

// sql returns the condition for a gorm Where call. The condition is empty
// for predicates matching everything.
func (p Predicate[T]) sql() (string, []any) {
	if len(p.query) == 0 {
		return "", nil
	}

	return "(" + strings.Join(p.query, ") AND (") + ")", p.args
}
