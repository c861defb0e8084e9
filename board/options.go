// SPDX-License-Identifier: MIT

package board

// Option configures board construction.
type Option func(*Options)

// Options holds construction parameters for New.
type Options struct {
	// Validate runs Board.Validate before New returns.
	Validate bool
}

// DefaultOptions returns Options with validation disabled.
func DefaultOptions() Options {
	return Options{Validate: false}
}

// WithValidation makes New verify every board invariant before returning.
func WithValidation() Option {
	return func(o *Options) { o.Validate = true }
}
