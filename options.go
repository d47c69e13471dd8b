package leopard16

// options holds the configuration assembled by Option values, following the
// New(dataShards, parityShards, opts ...Option) functional-options idiom
// used throughout this tree.
type options struct {
	engine Engine
	logger Logger
}

// Option configures an Encoder/Decoder at construction time.
type Option func(*options)

// WithEngine overrides the automatically selected Engine. Mainly useful for
// tests that need to pin a specific variant or for a
// caller that has already benchmarked variants on its target hardware.
func WithEngine(e Engine) Option {
	return func(o *options) { o.engine = e }
}

// WithLogger overrides the logger an Encoder/Decoder calls through. Defaults
// to the package-level logger (log.go).
func WithLogger(l Logger) Option {
	return func(o *options) { o.logger = l }
}

func defaultOptions() options {
	return options{engine: DefaultEngine(), logger: logger}
}
