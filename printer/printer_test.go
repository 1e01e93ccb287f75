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

package printer_test

import (
	"reflect"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"dirpx.dev/objprint/apis"
	"dirpx.dev/objprint/printer"
	"dirpx.dev/objprint/registry"
	"dirpx.dev/objprint/resolver"
	"dirpx.dev/objprint/strategy"
)

type Person struct {
	Name   string
	Age    int
	Height float64
	Score  *int
	Tags   []string
	Friend *Person
	note   string
}

type Box[T any] struct{ V T }

var cfg = apis.Config{NewLine: "\r\n", Indent: "\t", MaxUnwrap: 8}

func newPrinter(reg apis.Registry, log *zap.Logger) apis.Printer {
	rules := resolver.New(
		strategy.NewPropertyRuleStrategy(reg),
		strategy.NewTypeRuleStrategy(reg, cfg.MaxUnwrap),
	)
	leaves := resolver.New(strategy.NewLocaleStrategy(reg), strategy.NewDefaultStrategy())
	return printer.New(cfg, reg, rules, leaves, log)
}

func TestRender_Composite(t *testing.T) {
	p := newPrinter(registry.New(), nil)
	n := 5
	got := p.Render(Person{Name: "Lalka", Age: 19, Height: 163.2, Score: &n, Tags: []string{"a"}, note: "x"})
	want := "Person\r\n\tName = Lalka\r\n\tAge = 19\r\n\tHeight = 163.2\r\n\tScore = 5\r\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Render mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_NilAndLeafRoots(t *testing.T) {
	p := newPrinter(registry.New(), nil)
	cases := []struct {
		name string
		root any
		want string
	}{
		{"untyped nil", nil, "null\r\n"},
		{"nil pointer", (*Person)(nil), "null\r\n"},
		{"int", 42, "42\r\n"},
		{"string", "hello", "hello\r\n"},
		{"duration", 90 * time.Second, "1m30s\r\n"},
		{"pointer to composite", &Person{Name: "P"}, "Person\r\n\tName = P\r\n\tAge = 0\r\n\tHeight = 0\r\n\tScore = null\r\n"},
		{"generic", Box[int]{V: 3}, "Box\r\n\tV = 3\r\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.Render(tc.root); got != tc.want {
				t.Fatalf("Render = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRender_TruncationCountsRunes(t *testing.T) {
	reg := registry.New()
	reg.SetStringTruncation(3)
	p := newPrinter(reg, nil)

	if got := p.Render("Лалка"); got != "Лал\r\n" {
		t.Fatalf("Render(cyrillic) = %q, want Лал", got)
	}
	if got := p.Render("ab"); got != "ab\r\n" {
		t.Fatalf("Render(short) = %q, want ab", got)
	}

	reg.SetStringTruncation(0)
	if got := p.Render("abc"); got != "\r\n" {
		t.Fatalf("Render with limit 0 = %q, want empty line", got)
	}
}

func TestRender_RuleOutputIsTruncated(t *testing.T) {
	reg := registry.New()
	ageP := apis.Property{Owner: reflect.TypeOf(Person{}), Index: 1, Name: "Age", Type: reflect.TypeOf(0)}
	reg.SetPropertyRule(ageP, func(v any) string { return "nineteen" })
	reg.SetStringTruncation(4)
	reg.ExcludeType(reflect.TypeOf(0.0))
	reg.ExcludeType(reflect.TypeOf(""))
	p := newPrinter(reg, nil)

	got := p.Render(Person{Age: 19})
	want := "Person\r\n\tAge = nine\r\n\tScore = null\r\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Render mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_RuleOutputSurvivesStringExclusion(t *testing.T) {
	reg := registry.New()
	reg.ExcludeType(reflect.TypeOf(""))
	reg.SetTypeRule(reflect.TypeOf(0), func(v any) string { return "age text" })
	p := newPrinter(reg, nil)

	got := p.Render(Person{Name: "Lalka", Age: 19, Height: 1.5})
	want := "Person\r\n\tAge = age text\r\n\tHeight = 1.5\r\n\tScore = null\r\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Render mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_Exclusions(t *testing.T) {
	reg := registry.New()
	reg.ExcludeType(reflect.TypeOf(0))
	reg.ExcludeProperty(apis.Property{Owner: reflect.TypeOf(Person{}), Index: 0, Name: "Name"})
	p := newPrinter(reg, nil)

	got := p.Render(Person{Name: "Lalka", Age: 19, Height: 1.5})
	want := "Person\r\n\tHeight = 1.5\r\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Render mismatch (-want +got):\n%s", diff)
	}

	// An excluded leaf type at the root prints as a composite header.
	if got := p.Render(7); got != "int\r\n" {
		t.Fatalf("Render(excluded int) = %q, want int header", got)
	}
}

func TestRender_LogsDecisions(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	reg := registry.New()
	reg.SetTypeRule(reflect.TypeOf(""), func(v any) string { return "s" })
	p := newPrinter(reg, zap.New(core))

	_ = p.Render(Person{})

	if n := logs.FilterMessage("rule applied").Len(); n != 1 {
		t.Fatalf("rule applied entries = %d, want 1", n)
	}
	skipped := logs.FilterMessage("field skipped").All()
	if len(skipped) != 2 {
		t.Fatalf("field skipped entries = %d, want 2 (Tags, Friend)", len(skipped))
	}
	if got := skipped[0].ContextMap()["property"]; got != "Person.Tags" {
		t.Fatalf("first skipped property = %v, want Person.Tags", got)
	}
}

func TestRender_Concurrent(t *testing.T) {
	reg := registry.New()
	reg.SetStringTruncation(2)
	p := newPrinter(reg, nil)
	want := p.Render(Person{Name: "Lalka", Age: 1})

	workers := runtime.GOMAXPROCS(0) * 4
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				if got := p.Render(Person{Name: "Lalka", Age: 1}); got != want {
					t.Errorf("concurrent Render = %q, want %q", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkRender(b *testing.B) {
	p := newPrinter(registry.New(), nil)
	v := Person{Name: "Lalka", Age: 19, Height: 163.2}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Render(v)
	}
}
