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

package builder

import (
	"go.uber.org/zap"

	"dirpx.dev/objprint/apis"
	"dirpx.dev/objprint/printer"
	"dirpx.dev/objprint/registry"
	"dirpx.dev/objprint/resolver"
	"dirpx.dev/objprint/strategy"
)

// New creates and returns a new instance of an apis.Builder.
// Printers built by it log through log; nil disables logging.
func New(log *zap.Logger) apis.Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &builder{log: log}
}

// builder carries the logger handed to every printer it builds.
type builder struct {
	log *zap.Logger
}

// BuildRegistry builds and returns a new apis.Registry. If a pre-existing
// registry is provided, its rules are copied into the new registry.
func (b *builder) BuildRegistry(_ apis.Config, prev apis.Registry) apis.Registry {
	if prev == nil {
		return registry.New()
	}
	return registry.Copy(prev)
}

// BuildRuleResolver builds the chain applied to property values:
// property rules take precedence over type rules.
func (b *builder) BuildRuleResolver(cfg apis.Config, reg apis.Registry) apis.Resolver {
	return resolver.New(
		strategy.NewPropertyRuleStrategy(reg),
		strategy.NewTypeRuleStrategy(reg, cfg.MaxUnwrap),
	)
}

// BuildLeafResolver builds the chain applied to leaf values:
// locale-aware formatting, then the plain default.
func (b *builder) BuildLeafResolver(_ apis.Config, reg apis.Registry) apis.Resolver {
	return resolver.New(
		strategy.NewLocaleStrategy(reg),
		strategy.NewDefaultStrategy(),
	)
}

// BuildPrinter wires a printer over reg with both resolver chains.
func (b *builder) BuildPrinter(cfg apis.Config, reg apis.Registry) apis.Printer {
	return printer.New(
		cfg,
		reg,
		b.BuildRuleResolver(cfg, reg),
		b.BuildLeafResolver(cfg, reg),
		b.log,
	)
}
