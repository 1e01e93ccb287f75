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

package reflect_test

import (
	"reflect"
	"testing"
	"time"

	uref "dirpx.dev/objprint/utils/reflect"
)

type celsius float64

func TestIsLeaf(t *testing.T) {
	leaves := []any{
		int(0), int8(0), int16(0), int32(0), int64(0),
		uint(0), uint8(0), uint16(0), uint32(0), uint64(0),
		float32(0), float64(0), "", time.Time{}, time.Duration(0),
	}
	for _, v := range leaves {
		if !uref.IsLeaf(reflect.TypeOf(v)) {
			t.Errorf("IsLeaf(%T) = false, want true", v)
		}
	}

	composites := []any{A{}, celsius(0), true, complex(1, 2), []int{}, map[string]int{}, &A{}}
	for _, v := range composites {
		if uref.IsLeaf(reflect.TypeOf(v)) {
			t.Errorf("IsLeaf(%T) = true, want false", v)
		}
	}
	if uref.IsLeaf(nil) {
		t.Error("IsLeaf(nil) = true")
	}
}

func TestLocalizable(t *testing.T) {
	if uref.Localizable(reflect.TypeOf("")) {
		t.Error("string must not be localizable")
	}
	if !uref.Localizable(reflect.TypeOf(time.Time{})) {
		t.Error("time.Time must be localizable")
	}
	if !uref.Localizable(reflect.TypeOf(1.5)) {
		t.Error("float64 must be localizable")
	}
	if !uref.IsString(reflect.TypeOf("")) || uref.IsString(reflect.TypeOf(0)) {
		t.Error("IsString misclassified")
	}
}

func TestLeafTypeByName(t *testing.T) {
	cases := map[string]reflect.Type{
		"int":           reflect.TypeOf(0),
		"float64":       reflect.TypeOf(0.0),
		"string":        reflect.TypeOf(""),
		"time.Time":     reflect.TypeOf(time.Time{}),
		"time.Duration": reflect.TypeOf(time.Duration(0)),
		"byte":          reflect.TypeOf(uint8(0)),
		"rune":          reflect.TypeOf(int32(0)),
	}
	for name, want := range cases {
		got, ok := uref.LeafTypeByName(name)
		if !ok || got != want {
			t.Errorf("LeafTypeByName(%q) = (%v,%v), want %v", name, got, ok, want)
		}
	}
	if _, ok := uref.LeafTypeByName("bool"); ok {
		t.Error("LeafTypeByName(bool) should fail")
	}
}

func TestLeafTypes_ReturnsCopy(t *testing.T) {
	a := uref.LeafTypes()
	if len(a) != 15 {
		t.Fatalf("len(LeafTypes) = %d, want 15", len(a))
	}
	a[0] = nil
	if uref.LeafTypes()[0] == nil {
		t.Fatal("LeafTypes exposed internal slice")
	}
}
