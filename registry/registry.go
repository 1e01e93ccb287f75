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

package registry

import (
	"reflect"
	"sort"
	"sync"

	"dirpx.dev/objprint/apis"
)

// New constructs an empty rule Registry.
func New() apis.Registry {
	return &registry{
		excludedTypes: make(map[reflect.Type]struct{}),
		excludedProps: make(map[apis.PropertyKey]apis.Property),
		typeRules:     make(map[reflect.Type]apis.Formatter),
		propRules:     make(map[apis.PropertyKey]propertyRule),
		locales:       make(map[reflect.Type]apis.Locale),
		truncation:    -1,
	}
}

// Copy returns a new registry holding the same rules as src.
func Copy(src apis.Registry) apis.Registry {
	dst := New()
	if src == nil {
		return dst
	}
	if r, ok := src.(*registry); ok {
		r.mu.RLock()
		defer r.mu.RUnlock()
		d := dst.(*registry)
		for t := range r.excludedTypes {
			d.excludedTypes[t] = struct{}{}
		}
		for k, p := range r.excludedProps {
			d.excludedProps[k] = p
		}
		for t, f := range r.typeRules {
			d.typeRules[t] = f
		}
		for k, pr := range r.propRules {
			d.propRules[k] = pr
		}
		for t, l := range r.locales {
			d.locales[t] = l
		}
		d.truncation = r.truncation
		return dst
	}

	// Foreign implementation: rebuild through the public surface.
	snap := src.Snapshot()
	for _, t := range snap.ExcludedTypes {
		dst.ExcludeType(t)
	}
	for _, p := range snap.ExcludedProperties {
		dst.ExcludeProperty(p)
	}
	for _, t := range snap.TypeRules {
		if f, ok := src.TypeRule(t); ok {
			dst.SetTypeRule(t, f)
		}
	}
	for _, p := range snap.PropertyRules {
		if f, ok := src.PropertyRule(p.Key()); ok {
			dst.SetPropertyRule(p, f)
		}
	}
	for t := range snap.Locales {
		if l, ok := src.Locale(t); ok {
			dst.SetLocale(t, l)
		}
	}
	dst.SetStringTruncation(snap.Truncation)
	return dst
}

// registry is the map-backed Registry implementation.
type registry struct {
	// mu guards every map below. Renders only take the read lock.
	mu sync.RWMutex
	// excludedTypes is the type exclusion set.
	excludedTypes map[reflect.Type]struct{}
	// excludedProps is the property exclusion set.
	excludedProps map[apis.PropertyKey]apis.Property
	// typeRules maps declared leaf types to formatters.
	typeRules map[reflect.Type]apis.Formatter
	// propRules maps properties to formatters.
	propRules map[apis.PropertyKey]propertyRule
	// locales maps numeric/temporal leaf types to locales.
	locales map[reflect.Type]apis.Locale
	// truncation is the global string truncation length, -1 when unset.
	truncation int
}

// propertyRule keeps the full Property next to its formatter for Snapshot.
type propertyRule struct {
	prop apis.Property
	f    apis.Formatter
}

// Ensure registry implements apis.Registry.
var _ apis.Registry = (*registry)(nil)

// ExcludeType adds t to the type exclusion set.
func (r *registry) ExcludeType(t reflect.Type) {
	if t == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.excludedTypes[t] = struct{}{}
}

// ExcludeProperty adds p to the property exclusion set.
func (r *registry) ExcludeProperty(p apis.Property) {
	if p.Owner == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.excludedProps[p.Key()] = p
}

// SetTypeRule registers f for t, replacing any previous rule.
// A nil f removes the rule.
func (r *registry) SetTypeRule(t reflect.Type, f apis.Formatter) {
	if t == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if f == nil {
		delete(r.typeRules, t)
		return
	}
	r.typeRules[t] = f
}

// SetPropertyRule registers f for p, replacing any previous rule.
// A nil f removes the rule.
func (r *registry) SetPropertyRule(p apis.Property, f apis.Formatter) {
	if p.Owner == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if f == nil {
		delete(r.propRules, p.Key())
		return
	}
	r.propRules[p.Key()] = propertyRule{prop: p, f: f}
}

// SetLocale registers l for t, replacing any previous locale.
// A nil l removes it.
func (r *registry) SetLocale(t reflect.Type, l apis.Locale) {
	if t == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if l == nil {
		delete(r.locales, t)
		return
	}
	r.locales[t] = l
}

// SetStringTruncation sets the global truncation length; n < 0 clears it.
func (r *registry) SetStringTruncation(n int) {
	if n < 0 {
		n = -1
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.truncation = n
}

// TypeExcluded reports whether t is in the type exclusion set.
func (r *registry) TypeExcluded(t reflect.Type) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.excludedTypes[t]
	return ok
}

// PropertyExcluded reports whether k is in the property exclusion set.
func (r *registry) PropertyExcluded(k apis.PropertyKey) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.excludedProps[k]
	return ok
}

// TypeRule returns the formatter registered for t.
func (r *registry) TypeRule(t reflect.Type) (apis.Formatter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.typeRules[t]
	return f, ok
}

// PropertyRule returns the formatter registered for k.
func (r *registry) PropertyRule(k apis.PropertyKey) (apis.Formatter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pr, ok := r.propRules[k]
	return pr.f, ok
}

// Locale returns the locale registered for t.
func (r *registry) Locale(t reflect.Type) (apis.Locale, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.locales[t]
	return l, ok
}

// StringTruncation returns the truncation length if one is set.
func (r *registry) StringTruncation() (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.truncation, r.truncation >= 0
}

// Snapshot returns a sorted copy of all rule keys.
func (r *registry) Snapshot() apis.Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap := apis.Snapshot{
		ExcludedTypes:      make([]reflect.Type, 0, len(r.excludedTypes)),
		ExcludedProperties: make([]apis.Property, 0, len(r.excludedProps)),
		TypeRules:          make([]reflect.Type, 0, len(r.typeRules)),
		PropertyRules:      make([]apis.Property, 0, len(r.propRules)),
		Locales:            make(map[reflect.Type]string, len(r.locales)),
		Truncation:         r.truncation,
	}
	for t := range r.excludedTypes {
		snap.ExcludedTypes = append(snap.ExcludedTypes, t)
	}
	for _, p := range r.excludedProps {
		snap.ExcludedProperties = append(snap.ExcludedProperties, p)
	}
	for t := range r.typeRules {
		snap.TypeRules = append(snap.TypeRules, t)
	}
	for _, pr := range r.propRules {
		snap.PropertyRules = append(snap.PropertyRules, pr.prop)
	}
	for t, l := range r.locales {
		snap.Locales[t] = l.Tag()
	}
	sortTypes(snap.ExcludedTypes)
	sortTypes(snap.TypeRules)
	sortProps(snap.ExcludedProperties)
	sortProps(snap.PropertyRules)
	return snap
}

// Reset clears all rules.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.excludedTypes = make(map[reflect.Type]struct{})
	r.excludedProps = make(map[apis.PropertyKey]apis.Property)
	r.typeRules = make(map[reflect.Type]apis.Formatter)
	r.propRules = make(map[apis.PropertyKey]propertyRule)
	r.locales = make(map[reflect.Type]apis.Locale)
	r.truncation = -1
}

func sortTypes(ts []reflect.Type) {
	sort.Slice(ts, func(i, j int) bool { return ts[i].String() < ts[j].String() })
}

func sortProps(ps []apis.Property) {
	sort.Slice(ps, func(i, j int) bool {
		oi, oj := ps[i].Owner.String(), ps[j].Owner.String()
		if oi != oj {
			return oi < oj
		}
		return ps[i].Index < ps[j].Index
	})
}
