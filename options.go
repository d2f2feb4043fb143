package correspondence

import (
	"io"
	"log/slog"
)

const defaultTagName = "correspondence"

type options struct {
	logger  *slog.Logger
	tagName string
}

// Option configures an Iterator or a Builder
type Option func(o *options)

// Options represents options
type Options []Option

// Apply applies options
func (o Options) Apply(opts *options) {
	if len(o) == 0 {
		return
	}
	for _, opt := range o {
		opt(opts)
	}
}

func newOptions(opts []Option) *options {
	ret := &options{tagName: defaultTagName}
	Options(opts).Apply(ret)
	if ret.logger == nil {
		ret.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return ret
}

// WithLogger sets a debug logger, output is discarded by default
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithTagName sets the struct tag key Builder reads, "correspondence" by default
func WithTagName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.tagName = name
		}
	}
}
