package memobind

import (
	"github.com/google/uuid"
)

// Func is the dynamic calling convention of bindable functions:
// a receiver followed by positional arguments.
type Func func(this any, args ...any) any

// Function is the identity of an original function.
// Two Functions wrapping the same Func are still distinct cache keys.
type Function struct {
	id string
	fn Func
}

// New returns a new Function handle for fn.
func New(fn Func) *Function {
	return &Function{
		id: uuid.New().String(),
		fn: fn,
	}
}

// ID returns the unique id of the handle.
func (f *Function) ID() string {
	return f.id
}

// PartitionKey routes the handle to its cache shard.
func (f *Function) PartitionKey() string {
	return f.id
}

// Call invokes the original function directly, without binding.
func (f *Function) Call(this any, args ...any) any {
	return f.fn(this, args...)
}

func (f *Function) callable() bool {
	return f != nil && f.fn != nil
}
