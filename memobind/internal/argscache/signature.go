package argscache

import "reflect"

// Signature is the recorded [context, args...] tuple of a bind request.
// It is compared element by element and never invoked or mutated.
type Signature []any

// NewSignature copies context and args into a fresh Signature.
// The args are appended individually, never nested.
func NewSignature(context any, args []any) Signature {
	sig := make(Signature, 0, len(args)+1)
	sig = append(sig, context)
	return append(sig, args...)
}

// Equal reports whether both signatures have the same length and
// every position holds identical values.
func (s Signature) Equal(other Signature) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if !Identical(s[i], other[i]) {
			return false
		}
	}
	return true
}

// Identical reports identity equality of two dynamically typed values.
//
// Comparable values (numbers, strings, pointers, channels, comparable structs)
// use ==. Slices are identical when they share the backing array and length,
// maps when they are the same map. Funcs and values holding non-comparable
// parts are never identical, so no value is ever traversed.
func Identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Slice:
		return va.Len() == vb.Len() && va.Pointer() == vb.Pointer()
	case reflect.Map:
		return va.Pointer() == vb.Pointer()
	case reflect.Func:
		return false
	}
	if !va.Comparable() || !vb.Comparable() {
		return false
	}
	return a == b
}
