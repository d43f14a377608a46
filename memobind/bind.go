package memobind

import "sync"

var defaultBinder = sync.OnceValue(func() *Binder {
	return NewBinder()
})

// Default returns the process-wide Binder used by the package-level functions.
func Default() *Binder {
	return defaultBinder()
}

// Bind binds fn to context and args using the process-wide cache.
// See (*Binder).Bind.
func Bind(context any, fn any, args ...any) (*Bound, error) {
	return Default().BindAll(context, fn, args)
}

// BindArgs is Bind with no receiver.
func BindArgs(fn any, args ...any) (*Bound, error) {
	return Default().BindAll(nil, fn, args)
}

// BindAll is Bind with the arguments passed as a slice.
func BindAll(context any, fn any, args []any) (*Bound, error) {
	return Default().BindAll(context, fn, args)
}

// MustBind is the panic-on-failure variant of Bind.
func MustBind(context any, fn any, args ...any) *Bound {
	b, err := Bind(context, fn, args...)
	if err != nil {
		panic(err)
	}
	return b
}

// MustBindArgs is the panic-on-failure variant of BindArgs.
func MustBindArgs(fn any, args ...any) *Bound {
	return MustBind(nil, fn, args...)
}
