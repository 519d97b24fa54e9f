// Package grpcmw provides gRPC server interceptors that log each RPC's
// method, status code, and duration through the asynclog front-end.
package grpcmw

// Option customizes the interceptor behavior.
type Option func(*options)

type options struct {
	traceKey   string
	requestKey string
}

// WithTraceKey overrides the incoming metadata key used for trace ids.
func WithTraceKey(key string) Option {
	return func(cfg *options) {
		cfg.traceKey = key
	}
}

// WithRequestKey overrides the incoming metadata key used for request ids.
func WithRequestKey(key string) Option {
	return func(cfg *options) {
		cfg.requestKey = key
	}
}

func actualOptions(opts ...Option) options {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.traceKey == "" {
		cfg.traceKey = "x-trace-id"
	}

	if cfg.requestKey == "" {
		cfg.requestKey = "x-request-id"
	}

	return cfg
}
