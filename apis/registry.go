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

package apis

import "reflect"

// Formatter is a late-bound formatting rule. Implementations receive a value
// of the type the rule was registered for and return its printed text.
type Formatter func(v any) string

// Property identifies one direct field of an owner struct type.
// Two properties are equal only if both Owner and Index match, so the
// identity is unambiguous even when field names are shadowed by embedding.
type Property struct {
	// Owner is the struct type that declares the field.
	Owner reflect.Type
	// Index is the field index within Owner.
	Index int
	// Name is the field name (diagnostics only).
	Name string
	// Type is the declared field type.
	Type reflect.Type
}

// Key returns the comparable identity of p.
func (p Property) Key() PropertyKey {
	return PropertyKey{Owner: p.Owner, Index: p.Index}
}

// String returns "Owner.Name".
func (p Property) String() string {
	if p.Owner == nil {
		return p.Name
	}
	return p.Owner.Name() + "." + p.Name
}

// PropertyKey is the map key form of a Property.
type PropertyKey struct {
	Owner reflect.Type
	Index int
}

// Registry holds the printing rules of one configuration.
// All mutators are last-write-wins by key and never traverse objects.
type Registry interface {
	// ExcludeType omits every value and property of type t.
	ExcludeType(t reflect.Type)
	// ExcludeProperty omits property p at its owner's level.
	ExcludeProperty(p Property)
	// SetTypeRule registers the formatter for properties declared as t.
	SetTypeRule(t reflect.Type, f Formatter)
	// SetPropertyRule registers the formatter for property p.
	SetPropertyRule(p Property, f Formatter)
	// SetLocale registers the locale used to format leaf values of type t.
	SetLocale(t reflect.Type, l Locale)
	// SetStringTruncation sets the global string truncation length.
	// A negative n clears it.
	SetStringTruncation(n int)

	// TypeExcluded reports whether t is excluded.
	TypeExcluded(t reflect.Type) bool
	// PropertyExcluded reports whether the property is excluded.
	PropertyExcluded(k PropertyKey) bool
	// TypeRule returns the formatter registered for t.
	TypeRule(t reflect.Type) (Formatter, bool)
	// PropertyRule returns the formatter registered for the property.
	PropertyRule(k PropertyKey) (Formatter, bool)
	// Locale returns the locale registered for t.
	Locale(t reflect.Type) (Locale, bool)
	// StringTruncation returns the truncation length if set.
	StringTruncation() (n int, ok bool)

	// Snapshot returns a copy of all rule keys for diagnostics.
	Snapshot() Snapshot
	// Reset clears all rules.
	Reset()
}

// Snapshot is a point-in-time listing of the rules held by a Registry.
// Slices are sorted for deterministic output.
type Snapshot struct {
	ExcludedTypes      []reflect.Type
	ExcludedProperties []Property
	TypeRules          []reflect.Type
	PropertyRules      []Property
	Locales            map[reflect.Type]string
	// Truncation is -1 when unset.
	Truncation int
}
