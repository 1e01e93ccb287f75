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

// Package objprint renders Go values into an indented, human-readable text
// form, with a fluent configuration surface for per-type and per-property
// customization.
//
// # Output
//
// A struct value prints its type name, then one line per printable field:
//
//	Person
//		Name = Lalka
//		Age = 19
//		Height = 163.2
//
// Each field line is indented (depth+1) times with Config.Indent (one tab by
// default) and every line ends with Config.NewLine (the host platform line
// break by default). Fields are exported struct fields in declaration order.
//
// Only leaf-typed fields are printed. The leaf set is fixed: the predeclared
// integer types, float32, float64, string, time.Time and time.Duration.
// Pointers to leaves count as leaves and print "null" when nil. Fields of any
// other type (nested structs, slices, maps, interfaces) are skipped; nested
// composites are never descended into.
//
// # Configuration
//
// For[T] creates a configuration. Builder calls mutate it in place and return
// it, so they chain:
//
//	c := objprint.For[Person]()
//	objprint.Excluding[int](c)
//	objprint.UsingLocale(objprint.Printing[float64](c), locale.MustParse("de-DE"))
//	objprint.PrintingField(c, func(p *Person) *string { return &p.Name }).
//		Using(func(n string) string { return n + " Is a Person" })
//	objprint.TruncatedToLength(objprint.Printing[string](c), 10)
//	s := objprint.ExcludingField(c, func(p *Person) *string { return &p.ID }).
//		PrintToString(person)
//
// Rules resolve in this order, highest first:
//
//  1. Property rule (PrintingField(...).Using).
//  2. Type rule for the declared field type (Printing[P]().Using).
//  3. Locale for the value type (UsingLocale).
//  4. fmt.Sprint of the value.
//
// Rule output is printed as a string value, so string truncation still
// applies to it. Truncation applies to every printed string of the
// configuration; there is a single length per configuration.
//
// # Property selectors
//
// Go has no expression trees, so properties are named by a selector that
// returns the address of the field: func(p *Person) *int { return &p.Age }.
// The selector runs once on a zero value and the address is matched against
// the owner's field offsets and the static field type, which identifies the
// exact declared field. A selector that does anything else (nested or
// promoted fields, addresses that are not fields of the argument, nil) makes
// ExcludingField and PrintingField panic with *InvalidSelectorError at
// configuration time.
//
// # Profiles
//
// config.Profile carries the same rules in declarative form (by type name
// and field name) and loads from TOML or HCL files; ApplyProfile registers it
// on a configuration.
//
// # Process-wide defaults
//
// The render knobs and the builder that For starts from live in an immutable
// snapshot published through an atomic pointer. SetConfig and SetBuilder
// publish a new snapshot; configurations that already exist are unaffected.
//
// # Concurrency
//
// PrintToString never mutates the configuration and is safe to call from
// many goroutines. Builder calls on the same configuration must not race
// each other or a render. Cyclic graphs are not detected.
package objprint
