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

import (
	"reflect"
)

// Strategy is a pluggable formatting step. A Resolver chains multiple
// strategies in order (e.g., PropertyRule -> TypeRule, or Locale -> Default).
type Strategy interface {
	// TryFormat attempts to format v. prop is the property v was read from,
	// or nil for values rendered on their own (the root, rule output).
	// It returns (text, true) if handled; otherwise ("", false) to fall through.
	TryFormat(v reflect.Value, prop *Property) (text string, handled bool)
}
