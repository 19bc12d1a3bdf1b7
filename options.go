package synthview

import "go.uber.org/zap"

const (
	defaultCacheSize   = 512
	defaultMaxChildren = 256
)

type (
	options struct {
		layout      Layout
		logger      *zap.Logger
		cacheSize   int
		maxChildren int
	}

	//Option represents provider and registry option
	Option func(o *options)
)

func newOptions(opts []Option) *options {
	ret := &options{layout: DefaultLayout()}
	ret.apply(opts)
	return ret
}

func (o *options) apply(opts []Option) {
	for _, opt := range opts {
		opt(o)
	}
	o.layout.Init()
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.cacheSize <= 0 {
		o.cacheSize = defaultCacheSize
	}
	if o.maxChildren <= 0 {
		o.maxChildren = defaultMaxChildren
	}
}

// WithLayout returns option with container member names
func WithLayout(layout Layout) Option {
	return func(o *options) {
		o.layout = layout
	}
}

// WithLogger returns option with logger
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithCacheSize returns option with type name match cache size
func WithCacheSize(size int) Option {
	return func(o *options) {
		o.cacheSize = size
	}
}

// WithMaxChildren returns option limiting number of children expanded per node
func WithMaxChildren(count int) Option {
	return func(o *options) {
		o.maxChildren = count
	}
}
