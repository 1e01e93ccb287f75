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

	uref "dirpx.dev/objprint/utils/reflect"
)

// Local test types.
type A struct{ X int }
type G[T any] struct{ V T }
type Pair[K comparable, V any] struct {
	Key K
	Val V
}

func TestIndirect_Values(t *testing.T) {
	n := 7
	pn := &n
	var nilp *int
	var iface any = &n
	var nilIface any

	cases := []struct {
		name   string
		v      reflect.Value
		wantOK bool
		want   any
	}{
		{"plain", reflect.ValueOf(3), true, 3},
		{"ptr", reflect.ValueOf(&n), true, 7},
		{"ptrptr", reflect.ValueOf(&pn), true, 7},
		{"iface", reflect.ValueOf(&iface).Elem(), true, 7},
		{"nil ptr", reflect.ValueOf(nilp), false, nil},
		{"nil iface", reflect.ValueOf(&nilIface).Elem(), false, nil},
		{"invalid", reflect.Value{}, false, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := uref.Indirect(tc.v, 8)
			if ok != tc.wantOK {
				t.Fatalf("Indirect ok = %v, want %v", ok, tc.wantOK)
			}
			if ok && got.Interface() != tc.want {
				t.Fatalf("Indirect = %v, want %v", got.Interface(), tc.want)
			}
		})
	}
}

func TestIndirect_MaxUnwrap(t *testing.T) {
	n := 1
	p1 := &n
	p2 := &p1

	got, ok := uref.Indirect(reflect.ValueOf(p2), 1)
	if !ok {
		t.Fatal("Indirect(**int, 1): ok = false")
	}
	if got.Kind() != reflect.Pointer {
		t.Fatalf("Indirect(**int, 1) kind = %v, want pointer", got.Kind())
	}

	// Non-positive limit falls back to the default.
	got, ok = uref.Indirect(reflect.ValueOf(p2), 0)
	if !ok || got.Kind() != reflect.Int {
		t.Fatalf("Indirect(**int, 0) = (%v,%v), want int", got.Kind(), ok)
	}
}

func TestIndirectType(t *testing.T) {
	intT := reflect.TypeOf(0)
	cases := []struct {
		name string
		typ  reflect.Type
		max  int
		want reflect.Type
	}{
		{"plain", intT, 8, intT},
		{"ptr", reflect.TypeOf((*int)(nil)), 8, intT},
		{"ptrptr", reflect.TypeOf((**int)(nil)), 8, intT},
		{"limited", reflect.TypeOf((**int)(nil)), 1, reflect.TypeOf((*int)(nil))},
		{"default", reflect.TypeOf((**int)(nil)), 0, intT},
		{"nil", nil, 8, nil},
		{"slice untouched", reflect.TypeOf([]int{}), 8, reflect.TypeOf([]int{})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := uref.IndirectType(tc.typ, tc.max); got != tc.want {
				t.Fatalf("IndirectType(%v, %d) = %v, want %v", tc.typ, tc.max, got, tc.want)
			}
		})
	}
}

func TestSimpleName(t *testing.T) {
	cases := []struct {
		typ  reflect.Type
		want string
	}{
		{reflect.TypeOf(A{}), "A"},
		{reflect.TypeOf(G[int]{}), "G"},
		{reflect.TypeOf(G[G[string]]{}), "G"},
		{reflect.TypeOf(Pair[string, int]{}), "Pair"},
		{reflect.TypeOf(struct{ X int }{}), "struct"},
		{reflect.TypeOf(0), "int"},
		{nil, "nil"},
	}
	for _, tc := range cases {
		if got := uref.SimpleName(tc.typ); got != tc.want {
			t.Fatalf("SimpleName(%v) = %q, want %q", tc.typ, got, tc.want)
		}
	}
}

func BenchmarkIndirect(b *testing.B) {
	n := 1
	p := &n
	v := reflect.ValueOf(&p)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = uref.Indirect(v, 8)
	}
}
