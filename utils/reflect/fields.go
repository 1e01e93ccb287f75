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
	"sync"
)

// Field is an exported, direct field of a struct type.
type Field struct {
	// Index is the field index within the owner.
	Index int
	// Name is the Go field name.
	Name string
	// Type is the declared type.
	Type reflect.Type
}

// fieldCache caches the exported field list per struct type.
var fieldCache sync.Map // key: reflect.Type, val: []Field

// Fields returns the exported, direct fields of t in declaration order.
// Embedded structs are reported as a single field of the embedded type and
// are not flattened. Non-struct types have no fields.
func Fields(t reflect.Type) []Field {
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	if v, ok := fieldCache.Load(t); ok {
		return v.([]Field)
	}

	out := make([]Field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		out = append(out, Field{Index: i, Name: sf.Name, Type: sf.Type})
	}

	v, _ := fieldCache.LoadOrStore(t, out)
	return v.([]Field)
}
