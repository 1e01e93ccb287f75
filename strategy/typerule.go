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
	uref "dirpx.dev/objprint/utils/reflect"
)

// NewTypeRuleStrategy creates an apis.Strategy that applies per-type
// formatters registered in reg to property values.
func NewTypeRuleStrategy(reg apis.Registry, maxUnwrap int) apis.Strategy {
	return &typeRuleStrategy{reg: reg, maxUnwrap: maxUnwrap}
}

// typeRuleStrategy keys on the declared field type with pointers stripped,
// so a rule for int also covers *int fields. Nil pointers fall through.
type typeRuleStrategy struct {
	reg       apis.Registry
	maxUnwrap int
}

// Ensure typeRuleStrategy implements apis.Strategy.
var _ apis.Strategy = (*typeRuleStrategy)(nil)

// TryFormat applies the rule registered for prop's declared type, if any.
func (s *typeRuleStrategy) TryFormat(v reflect.Value, prop *apis.Property) (string, bool) {
	if prop == nil || s.reg == nil {
		return "", false
	}
	f, ok := s.reg.TypeRule(uref.IndirectType(prop.Type, s.maxUnwrap))
	if !ok {
		return "", false
	}
	base, ok := uref.Indirect(v, s.maxUnwrap)
	if !ok || !base.CanInterface() {
		return "", false
	}
	return f(base.Interface()), true
}
