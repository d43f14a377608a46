// Package memobind memoizes bound-function creation.
//
// Binding the same function to the same receiver and leading arguments twice
// yields the very same *Bound, so callbacks handed out on every call cycle stay
// reference-equal and downstream identity checks keep working:
//
//	add := memobind.New(func(this any, args ...any) any { ... })
//	b1, _ := memobind.Bind(counter, add, 1, 2)
//	b2, _ := memobind.Bind(counter, add, 1, 2)
//	// b1 == b2
//
// Receivers and arguments are compared by identity, never structurally:
// two distinct pointers are different even if they point at equal values,
// while plain values (numbers, strings, comparable structs) compare with ==.
//
// A *Function is the identity of the original function. The cache holds it
// weakly, so once the caller drops every reference to a *Function its bound
// variants are reclaimed together with it. Bound functions already handed out
// keep working.
//
// There is no eviction, no size bound and no invalidation. All operations are
// safe for concurrent use.
package memobind
