package memobind

import (
	"fmt"
	"reflect"
)

// Wrap adapts an arbitrary Go func into a Function. The first parameter of fn
// receives the bound receiver and the remaining parameters receive the
// arguments, which makes method expressions such as (*T).Method a natural fit.
//
// Calling the result panics with an ErrArgumentType error when an argument is
// not assignable to its parameter or when too many arguments are passed.
// Missing trailing arguments are filled with zero values.
//
// Results are returned as nil for no result, the value itself for one
// result and []any for more.
func Wrap(fn any) (*Function, error) {
	return wrap(fn, true)
}

// WrapFunc is like Wrap but discards the receiver; every parameter of fn
// receives an argument. Use it with BindArgs.
func WrapFunc(fn any) (*Function, error) {
	return wrap(fn, false)
}

func wrap(fn any, withReceiver bool) (*Function, error) {
	switch f := fn.(type) {
	case Func:
		return wrapDynamic(f, withReceiver)
	case func(any, ...any) any:
		return wrapDynamic(f, withReceiver)
	}

	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		return nil, fmt.Errorf("%w: %T", ErrNotAFunction, fn)
	}
	if withReceiver && v.Type().NumIn() == 0 {
		return nil, fmt.Errorf("%w: %s has no receiver parameter", ErrNotAFunction, v.Type())
	}
	return New(func(this any, args ...any) any {
		if withReceiver {
			args = append([]any{this}, args...)
		}
		return callReflect(v, args)
	}), nil
}

func wrapDynamic(fn Func, withReceiver bool) (*Function, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: nil Func", ErrNotAFunction)
	}
	if withReceiver {
		return New(fn), nil
	}
	return New(func(_ any, args ...any) any {
		return fn(nil, args...)
	}), nil
}

func callReflect(v reflect.Value, args []any) any {
	in, err := convertArgs(v.Type(), args)
	if err != nil {
		panic(err)
	}
	return collectResults(v.Call(in))
}

func convertArgs(t reflect.Type, args []any) ([]reflect.Value, error) {
	numIn := t.NumIn()
	fixed := numIn
	if t.IsVariadic() {
		fixed = numIn - 1
	} else if len(args) > numIn {
		return nil, fmt.Errorf("%w: %s takes %d arguments, got %d", ErrArgumentType, t, numIn, len(args))
	}

	in := make([]reflect.Value, 0, max(len(args), fixed))
	for i, arg := range args {
		var pt reflect.Type
		if i < fixed {
			pt = t.In(i)
		} else {
			pt = t.In(numIn - 1).Elem()
		}
		val, err := argValue(arg, pt)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		in = append(in, val)
	}
	for i := len(in); i < fixed; i++ {
		in = append(in, reflect.Zero(t.In(i)))
	}
	return in, nil
}

func argValue(arg any, pt reflect.Type) (reflect.Value, error) {
	if arg == nil {
		return reflect.Zero(pt), nil
	}
	v := reflect.ValueOf(arg)
	if !v.Type().AssignableTo(pt) {
		return reflect.Value{}, fmt.Errorf("%w: %s is not assignable to %s", ErrArgumentType, v.Type(), pt)
	}
	return v, nil
}

func collectResults(out []reflect.Value) any {
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0].Interface()
	default:
		results := make([]any, len(out))
		for i, o := range out {
			results[i] = o.Interface()
		}
		return results
	}
}
