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

package strategy

import (
	"reflect"

	"dirpx.dev/objprint/apis"
)

// NewPropertyRuleStrategy creates an apis.Strategy that applies per-property
// formatters registered in reg. It is the highest-precedence rule.
func NewPropertyRuleStrategy(reg apis.Registry) apis.Strategy {
	return &propertyRuleStrategy{reg: reg}
}

// propertyRuleStrategy looks the property identity up in the registry.
// The formatter receives the raw field value, nil pointers included.
type propertyRuleStrategy struct {
	reg apis.Registry
}

// Ensure propertyRuleStrategy implements apis.Strategy.
var _ apis.Strategy = (*propertyRuleStrategy)(nil)

// TryFormat applies the rule registered for prop, if any.
func (s *propertyRuleStrategy) TryFormat(v reflect.Value, prop *apis.Property) (string, bool) {
	if prop == nil || s.reg == nil || !v.IsValid() || !v.CanInterface() {
		return "", false
	}
	f, ok := s.reg.PropertyRule(prop.Key())
	if !ok {
		return "", false
	}
	return f(v.Interface()), true
}
