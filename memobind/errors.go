package memobind

import "errors"

// ErrNotAFunction is returned when the value to bind is not a *Function.
var ErrNotAFunction = errors.New("argument is not a function")

// ErrArgumentType reports call arguments that do not fit a wrapped Go function.
var ErrArgumentType = errors.New("argument type mismatch")
