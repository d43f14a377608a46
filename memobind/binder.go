package memobind

import (
	"fmt"

	"github.com/on-the-ground/memobind_go/memobind/internal/argscache"
	"github.com/on-the-ground/memobind_go/shared/logging"
	"go.uber.org/zap"
)

// Binder owns an independent bound-function cache.
// The package-level functions share one process-wide Binder.
type Binder struct {
	cache  *argscache.Cache[Function, *Bound]
	logger *zap.Logger
}

type options struct {
	numShards int
	logger    *zap.Logger
}

// Option configures a Binder.
type Option func(*options)

// WithLogger sets the logger used for cache diagnostics. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithNumShards sets the number of independently locked cache shards.
// Non-positive values fall back to a single shard.
func WithNumShards(numShards int) Option {
	return func(o *options) {
		o.numShards = numShards
	}
}

// NewBinder returns a Binder with an empty cache.
func NewBinder(opts ...Option) *Binder {
	o := options{numShards: argscache.DefaultNumShards}
	for _, opt := range opts {
		opt(&o)
	}
	logger := logging.OrNop(o.logger)
	return &Binder{
		cache: argscache.New[Function, *Bound](
			argscache.NewConfig(o.numShards),
			(*Function).PartitionKey,
			logger,
		),
		logger: logger,
	}
}

// Bind returns fn bound to context and args, reusing the Bound produced by an
// earlier call with an identical context and identical args.
//
// fn must be a non-nil *Function; anything else fails with ErrNotAFunction
// before the cache is touched.
func (b *Binder) Bind(context any, fn any, args ...any) (*Bound, error) {
	return b.BindAll(context, fn, args)
}

// BindArgs is Bind with no receiver.
func (b *Binder) BindArgs(fn any, args ...any) (*Bound, error) {
	return b.BindAll(nil, fn, args)
}

// BindAll is Bind with the arguments passed as a slice.
func (b *Binder) BindAll(context any, fn any, args []any) (*Bound, error) {
	target, err := asFunction(fn)
	if err != nil {
		return nil, err
	}
	impl := target.fn
	sig := argscache.NewSignature(context, args)
	bound, loaded := b.cache.LoadOrRecord(target, sig, func() *Bound {
		return bindAllArgs(context, impl, args)
	})
	if loaded {
		b.logger.Sugar().Debugf("reused bound function: function: %v, args: %d", target.id, len(args))
	} else {
		b.logger.Sugar().Debugf("created bound function: function: %v, args: %d", target.id, len(args))
	}
	return bound, nil
}

// Len returns the number of functions that currently have bound variants.
func (b *Binder) Len() int {
	return b.cache.Len()
}

// Entries returns the number of bound variants recorded for fn.
func (b *Binder) Entries(fn *Function) int {
	if !fn.callable() {
		return 0
	}
	return b.cache.Entries(fn)
}

func asFunction(fn any) (*Function, error) {
	f, ok := fn.(*Function)
	if !ok || !f.callable() {
		return nil, fmt.Errorf("%w: %T", ErrNotAFunction, fn)
	}
	return f, nil
}
