/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"dirpx.dev/eqx/apis"
)

const (
	// DefaultFollowPointers represents the default for FollowPointers.
	// When true, non-nil pointers are dereferenced before comparison.
	DefaultFollowPointers = true
	// DefaultMaxUnwrap represents the default for MaxUnwrap.
	// A value of 8 should be sufficient for all practical purposes.
	DefaultMaxUnwrap = 8
	// DefaultMaxDepth represents the default for MaxDepth.
	// Structural recursion beyond 100 levels is truncated.
	DefaultMaxDepth = 100
	// DefaultDeepFallback represents the default for DeepFallback.
	// When true, non-comparable kinds fall back to structural comparison.
	DefaultDeepFallback = true
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure limits are valid.
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		FollowPointers: DefaultFollowPointers,
		MaxUnwrap:      DefaultMaxUnwrap,
		MaxDepth:       DefaultMaxDepth,
		DeepFallback:   DefaultDeepFallback,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithFollowPointers sets the FollowPointers option.
func WithFollowPointers(follow bool) Option {
	return func(c *apis.Config) {
		c.FollowPointers = follow
	}
}

// WithMaxUnwrap sets the MaxUnwrap option.
// A non-positive value resets to the default.
func WithMaxUnwrap(max int) Option {
	return func(c *apis.Config) {
		if max <= 0 {
			c.MaxUnwrap = DefaultMaxUnwrap
			return
		}
		c.MaxUnwrap = max
	}
}

// WithMaxDepth sets the MaxDepth option.
// A non-positive value resets to the default.
func WithMaxDepth(max int) Option {
	return func(c *apis.Config) {
		if max <= 0 {
			c.MaxDepth = DefaultMaxDepth
			return
		}
		c.MaxDepth = max
	}
}

// WithDeepFallback sets the DeepFallback option.
func WithDeepFallback(deep bool) Option {
	return func(c *apis.Config) {
		c.DeepFallback = deep
	}
}
