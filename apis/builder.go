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

package apis

// Builder composes the printing pipeline from a Config and a Registry.
type Builder interface {
	// BuildRegistry constructs an empty Registry. If prev is non-nil its
	// rules are copied into the new registry.
	BuildRegistry(cfg Config, prev Registry) Registry
	// BuildRuleResolver constructs the chain consulted for property values.
	BuildRuleResolver(cfg Config, reg Registry) Resolver
	// BuildLeafResolver constructs the chain consulted for leaf values.
	BuildLeafResolver(cfg Config, reg Registry) Resolver
	// BuildPrinter wires a Printer over reg.
	BuildPrinter(cfg Config, reg Registry) Printer
}
