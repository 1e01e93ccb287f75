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
)

// DefaultMaxUnwrap is used when a non-positive unwrap limit is supplied.
const DefaultMaxUnwrap = 8

// Indirect unwraps pointers and interfaces around v, at most maxUnwrap times.
// It returns ok=false when v is invalid or a nil pointer/interface is met on
// the way, which callers render as null.
//
// If maxUnwrap <= 0, DefaultMaxUnwrap is used.
func Indirect(v reflect.Value, maxUnwrap int) (reflect.Value, bool) {
	if maxUnwrap <= 0 {
		maxUnwrap = DefaultMaxUnwrap
	}
	if !v.IsValid() {
		return v, false
	}
	for i := 0; i < maxUnwrap; i++ {
		switch v.Kind() {
		case reflect.Pointer, reflect.Interface:
			if v.IsNil() {
				return v, false
			}
			v = v.Elem()
		default:
			return v, true
		}
	}
	// Limit reached: a remaining nil still prints as null.
	if (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) && v.IsNil() {
		return v, false
	}
	return v, true
}

// IndirectType strips pointer levels from t, at most maxUnwrap times.
// Declared field types are classified by the type they point to, so a *int
// field is treated like an int field.
//
// If maxUnwrap <= 0, DefaultMaxUnwrap is used.
func IndirectType(t reflect.Type, maxUnwrap int) reflect.Type {
	if maxUnwrap <= 0 {
		maxUnwrap = DefaultMaxUnwrap
	}
	for i := 0; t != nil && i < maxUnwrap && t.Kind() == reflect.Pointer; i++ {
		t = t.Elem()
	}
	return t
}
