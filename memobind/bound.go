package memobind

import (
	"slices"

	"github.com/on-the-ground/memobind_go/shared/helper"
)

// Bound is a function permanently bound to a receiver and leading arguments.
//
// A Bound never references the *Function it was created from.
type Bound struct {
	fn       Func
	receiver any
	args     []any
}

func bindAllArgs(context any, fn Func, args []any) *Bound {
	return &Bound{
		fn:       fn,
		receiver: context,
		args:     slices.Clone(args),
	}
}

// Call invokes the original function with the bound receiver and the bound
// arguments followed by args.
func (b *Bound) Call(args ...any) any {
	all := make([]any, 0, len(b.args)+len(args))
	all = append(all, b.args...)
	all = append(all, args...)
	return b.fn(b.receiver, all...)
}

// Receiver returns the bound receiver.
func (b *Bound) Receiver() any {
	return b.receiver
}

// Args returns a copy of the bound leading arguments.
func (b *Bound) Args() []any {
	return slices.Clone(b.args)
}

// CallAs calls b and asserts the result to T. A nil result yields the zero T.
func CallAs[T any](b *Bound, args ...any) (T, error) {
	return helper.GetTypedValueOf[T](func() (any, error) {
		return b.Call(args...), nil
	})
}

// MustCallAs is the panic-on-failure variant of CallAs.
func MustCallAs[T any](b *Bound, args ...any) T {
	return helper.MustGetTypedValue[T](func() (any, error) {
		return b.Call(args...), nil
	})
}
