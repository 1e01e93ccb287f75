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

package builder_test

import (
	"reflect"
	"testing"

	"go.uber.org/zap"

	"dirpx.dev/objprint/apis"
	"dirpx.dev/objprint/builder"
	"dirpx.dev/objprint/registry"
)

type item struct {
	Title string
	Qty   int
}

var (
	itemT  = reflect.TypeOf(item{})
	titleP = apis.Property{Owner: itemT, Index: 0, Name: "Title", Type: reflect.TypeOf("")}
)

func defaultCfg() apis.Config {
	return apis.Config{NewLine: "\n", Indent: "  ", MaxUnwrap: 8}
}

func TestBuildRegistry_CopiesPrev(t *testing.T) {
	b := builder.New(nil)

	reg := b.BuildRegistry(defaultCfg(), nil)
	if reg == nil {
		t.Fatal("BuildRegistry returned nil")
	}

	prev := registry.New()
	prev.ExcludeType(reflect.TypeOf(0))
	next := b.BuildRegistry(defaultCfg(), prev)
	if !next.TypeExcluded(reflect.TypeOf(0)) {
		t.Fatal("BuildRegistry did not copy prev rules")
	}
	next.ExcludeType(reflect.TypeOf(""))
	if prev.TypeExcluded(reflect.TypeOf("")) {
		t.Fatal("BuildRegistry shares state with prev")
	}
}

func TestBuildRuleResolver_PropertyBeatsType(t *testing.T) {
	b := builder.New(zap.NewNop())
	reg := registry.New()
	reg.SetTypeRule(reflect.TypeOf(""), func(any) string { return "type" })
	r := b.BuildRuleResolver(defaultCfg(), reg)

	if got, _ := r.Resolve(reflect.ValueOf("x"), &titleP); got != "type" {
		t.Fatalf("Resolve = %q, want type", got)
	}
	reg.SetPropertyRule(titleP, func(any) string { return "prop" })
	if got, _ := r.Resolve(reflect.ValueOf("x"), &titleP); got != "prop" {
		t.Fatalf("Resolve = %q, want prop", got)
	}
}

func TestBuildLeafResolver_AlwaysHandles(t *testing.T) {
	r := builder.New(nil).BuildLeafResolver(defaultCfg(), registry.New())
	if got, ok := r.Resolve(reflect.ValueOf(12), nil); !ok || got != "12" {
		t.Fatalf("Resolve(12) = (%q,%v), want (12,true)", got, ok)
	}
}

func TestBuildPrinter_UsesConfig(t *testing.T) {
	b := builder.New(nil)
	reg := b.BuildRegistry(defaultCfg(), nil)
	p := b.BuildPrinter(defaultCfg(), reg)

	got := p.Render(item{Title: "lamp", Qty: 2})
	want := "item\n  Title = lamp\n  Qty = 2\n"
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}
