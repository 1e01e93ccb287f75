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
	"time"
)

var (
	timeType     = reflect.TypeOf(time.Time{})
	durationType = reflect.TypeOf(time.Duration(0))
	stringType   = reflect.TypeOf("")
)

// leafTypes is the built-in terminal set, in a stable order.
var leafTypes = []reflect.Type{
	reflect.TypeOf(int(0)),
	reflect.TypeOf(int8(0)),
	reflect.TypeOf(int16(0)),
	reflect.TypeOf(int32(0)),
	reflect.TypeOf(int64(0)),
	reflect.TypeOf(uint(0)),
	reflect.TypeOf(uint8(0)),
	reflect.TypeOf(uint16(0)),
	reflect.TypeOf(uint32(0)),
	reflect.TypeOf(uint64(0)),
	reflect.TypeOf(float32(0)),
	reflect.TypeOf(float64(0)),
	stringType,
	timeType,
	durationType,
}

// leafByType and leafByName index leafTypes.
var (
	leafByType = make(map[reflect.Type]struct{}, len(leafTypes))
	leafByName = make(map[string]reflect.Type, len(leafTypes))
)

func init() {
	for _, t := range leafTypes {
		leafByType[t] = struct{}{}
		leafByName[t.String()] = t
	}
	// Aliases accepted in profiles.
	leafByName["byte"] = leafByName["uint8"]
	leafByName["rune"] = leafByName["int32"]
}

// IsLeaf reports whether t belongs to the built-in leaf set.
// Only the exact predeclared types qualify; named types such as
// "type Celsius float64" are composites.
func IsLeaf(t reflect.Type) bool {
	if t == nil {
		return false
	}
	_, ok := leafByType[t]
	return ok
}

// IsString reports whether t is the predeclared string type.
func IsString(t reflect.Type) bool {
	return t == stringType
}

// Localizable reports whether a locale may be attached to t:
// numeric and temporal leaf types only.
func Localizable(t reflect.Type) bool {
	return IsLeaf(t) && t != stringType
}

// LeafTypes returns a copy of the built-in leaf set.
func LeafTypes() []reflect.Type {
	out := make([]reflect.Type, len(leafTypes))
	copy(out, leafTypes)
	return out
}

// LeafTypeByName resolves a leaf type from its Go spelling,
// e.g. "int", "float64", "string", "time.Time", "time.Duration".
func LeafTypeByName(name string) (reflect.Type, bool) {
	t, ok := leafByName[name]
	return t, ok
}
