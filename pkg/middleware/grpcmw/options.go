package grpcmw

// Option defines a configuration option for the gRPC interceptors.
type Option func(*options)

type options struct {
	errorsOnly  bool
	skipMethods map[string]struct{}
}

func newOptions(opts ...Option) options {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func (o options) skipped(method string) bool {
	_, ok := o.skipMethods[method]

	return ok
}

// WithErrorsOnly suppresses records for RPCs that complete without error.
func WithErrorsOnly(enable bool) Option {
	return func(o *options) {
		if o == nil {
			return
		}

		o.errorsOnly = enable
	}
}

// WithSkipMethods exempts full method names, such as
// "/grpc.health.v1.Health/Check", from call logging.
func WithSkipMethods(methods ...string) Option {
	return func(o *options) {
		if o == nil {
			return
		}

		for _, method := range methods {
			if method == "" {
				continue
			}

			if o.skipMethods == nil {
				o.skipMethods = make(map[string]struct{})
			}

			o.skipMethods[method] = struct{}{}
		}
	}
}
