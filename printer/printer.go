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

// Package printer implements the recursive rendering engine.
//
// A value is rendered as follows:
//
//   - nil (untyped, nil pointer, nil interface) prints "null".
//   - A string longer than the configured truncation length prints its
//     first runes only, before any other formatting.
//   - A leaf value prints through the leaf resolver (locale, then default).
//   - Anything else is a composite: its simple type name on one line, then
//     one indented "Name = value" line per exported field whose declared
//     type is a non-excluded leaf and which is not excluded itself.
//     Field values go through the rule resolver first (property rule, then
//     type rule); rule output is rendered again as a string value.
//
// Composite fields are never descended into, so the depth of the output is
// at most one level below the root. Cyclic graphs are not detected.
package printer

import (
	"reflect"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"dirpx.dev/objprint/apis"
	uref "dirpx.dev/objprint/utils/reflect"
)

// nullText is printed for nil values.
const nullText = "null"

// New constructs an apis.Printer. rules is consulted for property values,
// leaves for leaf values. A nil log disables logging.
func New(cfg apis.Config, reg apis.Registry, rules, leaves apis.Resolver, log *zap.Logger) apis.Printer {
	if log == nil {
		log = zap.NewNop()
	}
	return &printer{cfg: cfg, reg: reg, rules: rules, leaves: leaves, log: log}
}

// printer holds no per-render state; Render may run concurrently.
type printer struct {
	cfg    apis.Config
	reg    apis.Registry
	rules  apis.Resolver
	leaves apis.Resolver
	log    *zap.Logger
}

// Ensure printer implements apis.Printer.
var _ apis.Printer = (*printer)(nil)

// Render returns the complete rendering of root.
func (p *printer) Render(root any) string {
	var sb strings.Builder
	p.render(&sb, reflect.ValueOf(root), 0)
	return sb.String()
}

func (p *printer) render(sb *strings.Builder, v reflect.Value, depth int) {
	v, ok := uref.Indirect(v, p.cfg.MaxUnwrap)
	if !ok {
		p.line(sb, nullText)
		return
	}
	t := v.Type()

	if uref.IsString(t) {
		if s, cut := p.truncate(v.String()); cut {
			p.line(sb, s)
			return
		}
	}

	if p.isLeaf(t) {
		text, _ := p.leaves.Resolve(v, nil)
		p.line(sb, text)
		return
	}

	p.line(sb, uref.SimpleName(t))
	indent := strings.Repeat(p.cfg.Indent, depth+1)
	for _, f := range uref.Fields(t) {
		prop := apis.Property{Owner: t, Index: f.Index, Name: f.Name, Type: f.Type}
		if !p.isLeaf(uref.IndirectType(f.Type, p.cfg.MaxUnwrap)) {
			p.debug("field skipped", prop, "declared type is not a printable leaf")
			continue
		}
		if p.reg.PropertyExcluded(prop.Key()) {
			p.debug("field skipped", prop, "property excluded")
			continue
		}

		sb.WriteString(indent)
		sb.WriteString(f.Name)
		sb.WriteString(" = ")

		fv := v.Field(f.Index)
		if text, ok := p.rules.Resolve(fv, &prop); ok {
			p.debug("rule applied", prop, "")
			p.text(sb, text)
			continue
		}
		p.render(sb, fv, depth+1)
	}
}

// text renders rule output: a string value that bypasses the leaf set
// but is still subject to truncation and line termination.
func (p *printer) text(sb *strings.Builder, s string) {
	s, _ = p.truncate(s)
	p.line(sb, s)
}

// truncate cuts s to the configured number of runes.
// It reports whether s was longer than the limit.
func (p *printer) truncate(s string) (string, bool) {
	n, ok := p.reg.StringTruncation()
	if !ok || utf8.RuneCountInString(s) <= n {
		return s, false
	}
	i, count := 0, 0
	for i = range s {
		if count == n {
			break
		}
		count++
	}
	return s[:i], true
}

// isLeaf reports whether t is in the leaf set reduced by type exclusions.
func (p *printer) isLeaf(t reflect.Type) bool {
	return uref.IsLeaf(t) && !p.reg.TypeExcluded(t)
}

func (p *printer) line(sb *strings.Builder, s string) {
	sb.WriteString(s)
	sb.WriteString(p.cfg.NewLine)
}

func (p *printer) debug(msg string, prop apis.Property, reason string) {
	ce := p.log.Check(zap.DebugLevel, msg)
	if ce == nil {
		return
	}
	fields := []zap.Field{zap.Stringer("property", prop)}
	if reason != "" {
		fields = append(fields, zap.String("reason", reason))
	}
	ce.Write(fields...)
}
