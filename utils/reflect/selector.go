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
	"fmt"
	"reflect"
	"unsafe"

	"dirpx.dev/objprint/apis"
)

// FieldOf resolves the property selected by sel on the struct type T.
//
// sel must return the address of a direct, exported field of its argument,
// e.g. func(p *Person) *string { return &p.Name }. The selector is invoked
// once on a zero T; the returned address is matched against the field
// offsets of T together with the static type P, which pins the exact field
// even when names are shadowed by embedding.
//
// T may be a pointer to a struct, in which case the property belongs to the
// struct: func(p **Person) *int { return &(*p).Age }.
//
// Anything else (nested or promoted fields, addresses outside the owner,
// nil results, selectors that panic) yields an *apis.InvalidSelectorError.
func FieldOf[T, P any](sel func(*T) *P) (prop apis.Property, err error) {
	root := reflect.TypeOf((*T)(nil)).Elem()
	owner := IndirectType(root, DefaultMaxUnwrap)
	if owner.Kind() != reflect.Struct {
		return apis.Property{}, invalid(root, "owner is not a struct")
	}
	if sel == nil {
		return apis.Property{}, invalid(owner, "nil selector")
	}

	// Allocate every pointer level so the selector can dereference its way
	// down to a zero owner.
	arg := reflect.New(root)
	cur := arg.Elem()
	for cur.Kind() == reflect.Pointer {
		cur.Set(reflect.New(cur.Type().Elem()))
		cur = cur.Elem()
	}
	base := cur.Addr().Pointer()

	defer func() {
		if r := recover(); r != nil {
			prop, err = apis.Property{}, invalid(owner, fmt.Sprintf("selector panicked: %v", r))
		}
	}()
	ptr := sel(arg.Interface().(*T))
	if ptr == nil {
		return apis.Property{}, invalid(owner, "selector returned nil")
	}

	addr := uintptr(unsafe.Pointer(ptr))
	if addr < base || addr >= base+owner.Size() {
		return apis.Property{}, invalid(owner, "selector does not address a field of its argument")
	}
	off := addr - base
	want := reflect.TypeOf((*P)(nil)).Elem()

	for i := 0; i < owner.NumField(); i++ {
		sf := owner.Field(i)
		if sf.Offset != off || sf.Type != want {
			continue
		}
		if !sf.IsExported() {
			return apis.Property{}, invalid(owner, "field "+sf.Name+" is not exported")
		}
		return apis.Property{Owner: owner, Index: i, Name: sf.Name, Type: sf.Type}, nil
	}
	return apis.Property{}, invalid(owner, "selector is not a direct field access")
}

// FieldByName resolves the direct, exported field called name on owner.
// Pointers to structs resolve on the struct. Promoted fields of embedded
// structs are not direct and are rejected.
func FieldByName(owner reflect.Type, name string) (apis.Property, error) {
	root := owner
	owner = IndirectType(owner, DefaultMaxUnwrap)
	if owner == nil || owner.Kind() != reflect.Struct {
		return apis.Property{}, invalid(root, "owner is not a struct")
	}
	for _, f := range Fields(owner) {
		if f.Name == name {
			return apis.Property{Owner: owner, Index: f.Index, Name: f.Name, Type: f.Type}, nil
		}
	}
	return apis.Property{}, invalid(owner, fmt.Sprintf("no direct exported field %q", name))
}

func invalid(owner reflect.Type, reason string) error {
	return &apis.InvalidSelectorError{Owner: owner, Reason: reason}
}
