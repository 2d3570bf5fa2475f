package toolbox

import "go.uber.org/zap"

// settings holds the optional construction-time configuration shared by
// every ConsumedQueue instantiation.  Keeping it non generic keeps Option
// free of type arguments at call sites.
type settings struct {
	logger *zap.Logger
	name   string
}

func newSettings() *settings {
	return &settings{logger: zap.NewNop()}
}

// Option is a functional option applied to a queue at construction.
type Option func(s *settings)

// WithLogger attaches a structured logger to the queue.  The queue is
// silent by default.
func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithName labels every log entry the queue emits with a queue field,
// useful when a host runs more than one queue.
func WithName(name string) Option {
	return func(s *settings) {
		s.name = name
	}
}
