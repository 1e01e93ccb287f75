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

package objprint

import (
	"reflect"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"dirpx.dev/objprint/apis"
	"dirpx.dev/objprint/builder"
	"dirpx.dev/objprint/config"
	uref "dirpx.dev/objprint/utils/reflect"
)

// init publishes the default snapshot.
func init() {
	st.Store(&state{cfg: config.DefaultConfig(), bld: builder.New(nil)})
}

// InvalidSelectorError is raised by ExcludingField and PrintingField when
// the selector is not a direct field access on the owner.
type InvalidSelectorError = apis.InvalidSelectorError

// ErrInvalidSelector matches every *InvalidSelectorError via errors.Is.
var ErrInvalidSelector = apis.ErrInvalidSelector

// Localizable lists the leaf types a locale may be attached to.
type Localizable interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 |
		time.Time | time.Duration
}

// PrintingConfig is the printing configuration for root values of type T.
// Builder calls mutate it in place and return it for chaining; they are not
// meant to run concurrently. PrintToString only reads it and may run from
// many goroutines once configuration is complete.
type PrintingConfig[T any] struct {
	cfg apis.Config
	bld apis.Builder
	reg apis.Registry
}

// For creates a configuration for T, seeded with the process-wide render
// knobs and builder, with opts applied on top.
func For[T any](opts ...config.Option) *PrintingConfig[T] {
	s := st.Load()
	cfg := config.Apply(s.cfg, opts...)
	return &PrintingConfig[T]{
		cfg: cfg,
		bld: s.bld,
		reg: s.bld.BuildRegistry(cfg, nil),
	}
}

// Configure applies render options to c.
func (c *PrintingConfig[T]) Configure(opts ...config.Option) *PrintingConfig[T] {
	c.cfg = config.Apply(c.cfg, opts...)
	return c
}

// WithLogger switches c to the default builder logging through log.
func (c *PrintingConfig[T]) WithLogger(log *zap.Logger) *PrintingConfig[T] {
	c.bld = builder.New(log)
	return c
}

// Config returns the render knobs of c.
func (c *PrintingConfig[T]) Config() apis.Config {
	return c.cfg
}

// Registry returns the rule registry of c.
func (c *PrintingConfig[T]) Registry() apis.Registry {
	return c.reg
}

// ApplyProfile registers the rules and render knobs of p on c.
// Field names in p are resolved on T. On error c is left unchanged.
func (c *PrintingConfig[T]) ApplyProfile(p config.Profile) error {
	opts, err := p.Options()
	if err != nil {
		return err
	}
	if err := p.Apply(c.reg, typeOf[T]()); err != nil {
		return err
	}
	c.cfg = config.Apply(c.cfg, opts...)
	return nil
}

// PrintToString renders obj with the rules of c.
func (c *PrintingConfig[T]) PrintToString(obj T) string {
	return c.bld.BuildPrinter(c.cfg, c.reg).Render(obj)
}

// Excluding omits every property whose declared type is P. Pointer types
// stand for the type they point to: Excluding[*int] is Excluding[int], and
// both omit int and *int fields alike.
func Excluding[P, T any](c *PrintingConfig[T]) *PrintingConfig[T] {
	c.reg.ExcludeType(leafOf[P]())
	return c
}

// ExcludingField omits the single property selected by sel, e.g.
//
//	objprint.ExcludingField(c, func(p *Person) *int { return &p.Age })
//
// It panics with *InvalidSelectorError if sel is not a direct field access.
func ExcludingField[T, P any](c *PrintingConfig[T], sel func(*T) *P) *PrintingConfig[T] {
	c.reg.ExcludeProperty(mustField(sel))
	return c
}

// TypeRule configures how properties declared as P are printed.
type TypeRule[T, P any] struct {
	c *PrintingConfig[T]
	t reflect.Type
}

// Printing starts a rule for properties declared as P. As with Excluding,
// a pointer P shares the rule of the type it points to.
func Printing[P, T any](c *PrintingConfig[T]) *TypeRule[T, P] {
	return &TypeRule[T, P]{c: c, t: leafOf[P]()}
}

// Using registers f as the formatter for P, replacing any previous one.
// For a pointer P, f receives a pointer to a copy of the value; nil
// pointers print null without reaching f.
func (r *TypeRule[T, P]) Using(f func(P) string) *PrintingConfig[T] {
	r.c.reg.SetTypeRule(r.t, formatter(f))
	return r.c
}

// UsingLocale formats values of the numeric or temporal type P with l.
func UsingLocale[T any, P Localizable](r *TypeRule[T, P], l apis.Locale) *PrintingConfig[T] {
	r.c.reg.SetLocale(r.t, l)
	return r.c
}

// TruncatedToLength cuts every printed string to at most n runes.
// There is one truncation length per configuration; the last call wins.
func TruncatedToLength[T any](r *TypeRule[T, string], n int) *PrintingConfig[T] {
	r.c.reg.SetStringTruncation(n)
	return r.c
}

// FieldRule configures how one property is printed.
type FieldRule[T, P any] struct {
	c    *PrintingConfig[T]
	prop apis.Property
}

// PrintingField starts a rule for the property selected by sel.
// It panics with *InvalidSelectorError if sel is not a direct field access.
func PrintingField[T, P any](c *PrintingConfig[T], sel func(*T) *P) *FieldRule[T, P] {
	return &FieldRule[T, P]{c: c, prop: mustField(sel)}
}

// Using registers f as the formatter for the property. A property rule
// takes precedence over any type rule.
func (r *FieldRule[T, P]) Using(f func(P) string) *PrintingConfig[T] {
	r.c.reg.SetPropertyRule(r.prop, formatter(f))
	return r.c
}

// PrintToString renders obj with a default configuration for T.
func PrintToString[T any](obj T) string {
	return For[T]().PrintToString(obj)
}

// PrintToStringWith renders obj after configure has adjusted a default
// configuration for T.
func PrintToStringWith[T any](obj T, configure func(*PrintingConfig[T]) *PrintingConfig[T]) string {
	c := For[T]()
	if configure != nil {
		if r := configure(c); r != nil {
			c = r
		}
	}
	return c.PrintToString(obj)
}

// Config returns the process-wide render knobs used by For.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig replaces the process-wide render knobs used by For.
// Existing configurations keep the knobs they were created with.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(&state{cfg: config.Apply(cfg), bld: old.bld})
}

// Builder returns the process-wide builder used by For.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder replaces the process-wide builder used by For. Nil is ignored.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(&state{cfg: old.cfg, bld: b})
}

// Reset restores the default render knobs and builder.
func Reset() {
	buildMu.Lock()
	defer buildMu.Unlock()
	st.Store(&state{cfg: config.DefaultConfig(), bld: builder.New(nil)})
}

// buildMu serializes writers so we never publish partially-built snapshots.
var buildMu sync.Mutex

// st is the process-wide snapshot.
var st atomic.Pointer[state]

// state is an immutable snapshot published atomically via st.Store.
type state struct {
	// cfg seeds new configurations.
	cfg apis.Config
	// bld builds registries and printers for new configurations.
	bld apis.Builder
}

func typeOf[P any]() reflect.Type {
	return reflect.TypeOf((*P)(nil)).Elem()
}

// leafOf is the registry key for rules on P: P with pointers stripped, the
// same normalization the printer applies to declared field types.
func leafOf[P any]() reflect.Type {
	return uref.IndirectType(typeOf[P](), uref.DefaultMaxUnwrap)
}

func mustField[T, P any](sel func(*T) *P) apis.Property {
	prop, err := uref.FieldOf(sel)
	if err != nil {
		panic(err)
	}
	return prop
}

// formatter adapts a typed function to apis.Formatter.
// A nil f yields a nil Formatter, which removes the rule.
func formatter[P any](f func(P) string) apis.Formatter {
	if f == nil {
		return nil
	}
	return func(v any) string {
		return f(as[P](v))
	}
}

// as converts v to P. Values of the type P points to are boxed into fresh
// pointers until they reach P; anything else yields the zero P.
func as[P any](v any) P {
	if p, ok := v.(P); ok {
		return p
	}
	var zero P
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return zero
	}
	want := typeOf[P]()
	for i := 0; i < uref.DefaultMaxUnwrap && rv.Type() != want; i++ {
		box := reflect.New(rv.Type())
		box.Elem().Set(rv)
		rv = box
	}
	if rv.Type() != want {
		return zero
	}
	return rv.Interface().(P)
}
