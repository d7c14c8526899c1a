// SPDX-License-Identifier: MIT

// Package blockmat: functional configuration for the partitioned builders.
// Defaults are documented constants; user inputs are validated inside the
// entry points and reported via sentinels, never panics.
package blockmat

import (
	"context"

	"go.uber.org/zap"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultBlockSize is the target block height/width when none is set.
	DefaultBlockSize = 256

	// DefaultWorkers is the worker count; 1 means sequential computation.
	DefaultWorkers = 1
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option and resolve
// them via gatherOptions.
type Options struct {
	rowSize int
	colSize int
	workers int
	ctx     context.Context
	log     *zap.Logger
}

func defaultOptions() Options {
	return Options{
		rowSize: DefaultBlockSize,
		colSize: DefaultBlockSize,
		workers: DefaultWorkers,
		ctx:     context.Background(),
		log:     zap.NewNop(),
	}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// validate enforces the option invariants shared by all builders.
func (o *Options) validate() error {
	if o.rowSize <= 0 || o.colSize <= 0 {
		return ErrBlockSize
	}
	if o.workers <= 0 {
		return ErrWorkerCount
	}
	return nil
}

// WithBlockSize sets the target size for both block axes.
func WithBlockSize(n int) Option {
	return func(o *Options) { o.rowSize, o.colSize = n, n }
}

// WithRowBlockSize sets the target block height only.
func WithRowBlockSize(n int) Option {
	return func(o *Options) { o.rowSize = n }
}

// WithColBlockSize sets the target block width only.
func WithColBlockSize(n int) Option {
	return func(o *Options) { o.colSize = n }
}

// WithWorkers sets how many blocks may be computed concurrently. A value of
// 1 (the default) computes blocks sequentially; the assembled result is
// identical either way.
func WithWorkers(n int) Option {
	return func(o *Options) { o.workers = n }
}

// WithContext attaches a cancellation context. Once ctx is done, remaining
// blocks are not scheduled and the builder returns ctx.Err(); blocks are
// not interrupted mid-computation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithLogger injects a logging collaborator. The default is zap.NewNop().
func WithLogger(log *zap.Logger) Option {
	return func(o *Options) {
		if log != nil {
			o.log = log
		}
	}
}
