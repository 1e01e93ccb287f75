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

package reflect

import (
	"reflect"
	"strings"
)

// SimpleName returns the unqualified name of t, as printed in a composite
// header: "Person" for pkg.Person, "Pair" for pkg.Pair[int,string].
// Unnamed types fall back to their kind ("struct", "slice", ...).
func SimpleName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	if name := stripTypeParams(t.Name()); name != "" {
		return name
	}
	return t.Kind().String()
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
