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
	"runtime"

	"dirpx.dev/objprint/apis"
	uref "dirpx.dev/objprint/utils/reflect"
)

const (
	// DefaultIndent represents the default for Indent: one tab per level.
	DefaultIndent = "\t"
	// DefaultMaxUnwrap represents the default for MaxUnwrap.
	// A value of 8 should be sufficient for all practical purposes.
	DefaultMaxUnwrap = uref.DefaultMaxUnwrap
)

// PlatformNewLine returns the line break convention of the host platform.
func PlatformNewLine() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return normalize(cfg)
}

// Apply returns a copy of base with opts applied.
func Apply(base apis.Config, opts ...Option) apis.Config {
	for _, opt := range opts {
		opt(&base)
	}
	return normalize(base)
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		NewLine:   PlatformNewLine(),
		Indent:    DefaultIndent,
		MaxUnwrap: DefaultMaxUnwrap,
	}
}

// normalize restores defaults for values that cannot work.
func normalize(cfg apis.Config) apis.Config {
	if cfg.NewLine == "" {
		cfg.NewLine = PlatformNewLine()
	}
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	return cfg
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithNewLine sets the line break. An empty value resets to the platform default.
func WithNewLine(nl string) Option {
	return func(c *apis.Config) {
		c.NewLine = nl
	}
}

// WithIndent sets the per-level indentation. An empty indent is allowed.
func WithIndent(indent string) Option {
	return func(c *apis.Config) {
		c.Indent = indent
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
