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
	"dirpx.dev/extensible/apis"
	"dirpx.dev/extensible/typeof"
)

const (
	// DefaultIncludeBuiltins represents the default for IncludeBuiltins.
	// When true, built-in types may serve as display names.
	DefaultIncludeBuiltins = true
	// DefaultMaxUnwrap represents the default for MaxUnwrap.
	DefaultMaxUnwrap = typeof.DefaultMaxUnwrap
	// DefaultMapPreferElem represents the default for MapPreferElem.
	// When true, map value types are preferred when searching for named inner types.
	DefaultMapPreferElem = true
	// DefaultFieldTag is the struct tag bean adapters read property names from.
	DefaultFieldTag = "attr"
	// DefaultPropertyMethods represents the default for PropertyMethods.
	DefaultPropertyMethods = true
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return normalize(cfg)
}

// normalize repairs values options or the environment may leave invalid.
func normalize(cfg apis.Config) apis.Config {
	if cfg.MaxUnwrap < 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		IncludeBuiltins: DefaultIncludeBuiltins,
		MaxUnwrap:       DefaultMaxUnwrap,
		MapPreferElem:   DefaultMapPreferElem,
		FieldTag:        DefaultFieldTag,
		PropertyMethods: DefaultPropertyMethods,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithIncludeBuiltins sets the IncludeBuiltins option.
func WithIncludeBuiltins(include bool) Option {
	return func(c *apis.Config) {
		c.IncludeBuiltins = include
	}
}

// WithMaxUnwrap sets the MaxUnwrap option.
// A negative value resets to the default.
func WithMaxUnwrap(max int) Option {
	return func(c *apis.Config) {
		if max < 0 {
			c.MaxUnwrap = DefaultMaxUnwrap
			return
		}
		c.MaxUnwrap = max
	}
}

// WithMapPreferElem sets the MapPreferElem option.
func WithMapPreferElem(prefer bool) Option {
	return func(c *apis.Config) {
		c.MapPreferElem = prefer
	}
}

// WithFieldTag sets the struct tag consulted for property names.
// An empty tag makes beans use field names only.
func WithFieldTag(tag string) Option {
	return func(c *apis.Config) {
		c.FieldTag = tag
	}
}

// WithPropertyMethods sets the PropertyMethods option.
func WithPropertyMethods(enabled bool) Option {
	return func(c *apis.Config) {
		c.PropertyMethods = enabled
	}
}
