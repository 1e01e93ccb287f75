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
	"fmt"
	"reflect"

	"dirpx.dev/objprint/apis"
)

// NewDefaultStrategy creates the universal fallback: the value's default
// textual representation as produced by fmt.Sprint.
func NewDefaultStrategy() apis.Strategy {
	return defaultStrategy{}
}

// defaultStrategy always handles valid values.
type defaultStrategy struct{}

// Ensure defaultStrategy implements apis.Strategy.
var _ apis.Strategy = (*defaultStrategy)(nil)

// TryFormat returns fmt.Sprint of v.
func (defaultStrategy) TryFormat(v reflect.Value, _ *apis.Property) (string, bool) {
	if !v.IsValid() || !v.CanInterface() {
		return "", false
	}
	return fmt.Sprint(v.Interface()), true
}
