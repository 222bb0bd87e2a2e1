package app

import (
	"time"

	"github.com/zhubert/dialogo/internal/chat"
)

type options struct {
	clock chat.Clock
	seed  chat.Seed
}

func defaultOptions() options {
	return options{
		clock: time.Now,
		seed:  chat.DefaultSeed(),
	}
}

// Option customizes a Model at construction
type Option func(*options)

// WithClock sets the clock used to timestamp new messages
func WithClock(clock chat.Clock) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithSeed replaces the built-in demo data
func WithSeed(seed chat.Seed) Option {
	return func(o *options) {
		o.seed = seed
	}
}
