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

// NewLocaleStrategy creates an apis.Strategy that formats leaf values with
// the locale registered for their type.
func NewLocaleStrategy(reg apis.Registry) apis.Strategy {
	return &localeStrategy{reg: reg}
}

// localeStrategy consults the registry's locale map by runtime type.
type localeStrategy struct {
	reg apis.Registry
}

// Ensure localeStrategy implements apis.Strategy.
var _ apis.Strategy = (*localeStrategy)(nil)

// TryFormat formats v with its type's locale, if one is registered.
func (s *localeStrategy) TryFormat(v reflect.Value, _ *apis.Property) (string, bool) {
	if s.reg == nil || !v.IsValid() || !v.CanInterface() {
		return "", false
	}
	l, ok := s.reg.Locale(v.Type())
	if !ok {
		return "", false
	}
	return l.Format(v.Interface()), true
}
