package collections

import (
	log "github.com/sirupsen/logrus"
)

type options struct {
	capacity int
	logger   *log.Entry
}

type Option func(*options)

// WithCapacity sizes both containers for n pairs up front.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

func WithLogger(logger *log.Entry) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = log.WithField("component", "bimap")
	}
	return o
}
