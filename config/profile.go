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

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2/hclsimple"

	"dirpx.dev/objprint/apis"
	"dirpx.dev/objprint/locale"
	uref "dirpx.dev/objprint/utils/reflect"
)

var (
	// ErrUnsupportedFormat is returned for profile files that are neither .toml nor .hcl.
	ErrUnsupportedFormat = errors.New("objprint(config): unsupported profile format")
	// ErrUnknownType is returned when a profile names a type outside the leaf set.
	ErrUnknownType = errors.New("objprint(config): unknown leaf type")
	// ErrUnknownLocale is returned when a profile carries an unparsable locale tag.
	ErrUnknownLocale = errors.New("objprint(config): unknown locale")
	// ErrUnknownKey is returned when a TOML profile carries keys Profile does not define.
	ErrUnknownKey = errors.New("objprint(config): unknown profile key")
)

// Line break names accepted by Profile.LineBreak.
const (
	LineBreakPlatform = "platform"
	LineBreakLF       = "lf"
	LineBreakCRLF     = "crlf"
)

// Profile is a declarative printing configuration, loaded from TOML or HCL.
//
//	exclude_types  = ["int"]
//	exclude_fields = ["Secret"]
//	truncate       = 10
//	line_break     = "crlf"
//
//	[locales]
//	float64 = "de-DE"
//
// Types are spelled as in Go ("float64", "time.Time"); fields are direct
// exported fields of the configured owner type.
type Profile struct {
	ExcludeTypes  []string          `toml:"exclude_types" hcl:"exclude_types,optional"`
	ExcludeFields []string          `toml:"exclude_fields" hcl:"exclude_fields,optional"`
	Truncate      int               `toml:"truncate" hcl:"truncate,optional"`
	Locales       map[string]string `toml:"locales" hcl:"locales,optional"`
	LineBreak     string            `toml:"line_break" hcl:"line_break,optional"`
	Indent        *string           `toml:"indent" hcl:"indent,optional"`
}

// NewProfile returns an empty profile. Truncate is -1 (unset).
func NewProfile() Profile {
	return Profile{Truncate: -1}
}

// LoadProfile reads a profile file. The format follows the extension.
func LoadProfile(path string) (Profile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Profile{}, fmt.Errorf("stat profile: %w", err)
	}
	if info.IsDir() {
		return Profile{}, fmt.Errorf("profile path %s is a directory", path)
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}
	return DecodeProfile(path, src)
}

// DecodeProfile decodes src, using the extension of name to pick the format.
func DecodeProfile(name string, src []byte) (Profile, error) {
	p := NewProfile()
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		md, err := toml.Decode(string(src), &p)
		if err != nil {
			return Profile{}, fmt.Errorf("decode profile %s: %w", name, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Profile{}, fmt.Errorf("%w in %s: %v", ErrUnknownKey, name, undecoded)
		}
	case ".hcl":
		if err := hclsimple.Decode(name, src, nil, &p); err != nil {
			return Profile{}, fmt.Errorf("decode profile %s: %w", name, err)
		}
	default:
		return Profile{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
	return p, nil
}

// Options returns the render knobs carried by the profile.
func (p Profile) Options() ([]Option, error) {
	var opts []Option
	switch strings.ToLower(p.LineBreak) {
	case "":
	case LineBreakPlatform:
		opts = append(opts, WithNewLine(PlatformNewLine()))
	case LineBreakLF:
		opts = append(opts, WithNewLine("\n"))
	case LineBreakCRLF:
		opts = append(opts, WithNewLine("\r\n"))
	default:
		return nil, fmt.Errorf("objprint(config): unknown line_break %q", p.LineBreak)
	}
	if p.Indent != nil {
		opts = append(opts, WithIndent(*p.Indent))
	}
	return opts, nil
}

// Apply registers the profile's rules on reg for the given owner type.
// Nothing is registered if any entry is invalid.
func (p Profile) Apply(reg apis.Registry, owner reflect.Type) error {
	excluded := make([]reflect.Type, 0, len(p.ExcludeTypes))
	for _, name := range p.ExcludeTypes {
		t, ok := uref.LeafTypeByName(name)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownType, name)
		}
		excluded = append(excluded, t)
	}

	props := make([]apis.Property, 0, len(p.ExcludeFields))
	for _, name := range p.ExcludeFields {
		prop, err := uref.FieldByName(owner, name)
		if err != nil {
			return err
		}
		props = append(props, prop)
	}

	// Sorted so that errors are reported deterministically.
	names := make([]string, 0, len(p.Locales))
	for name := range p.Locales {
		names = append(names, name)
	}
	sort.Strings(names)

	type localeRule struct {
		t reflect.Type
		l apis.Locale
	}
	locales := make([]localeRule, 0, len(names))
	for _, name := range names {
		t, ok := uref.LeafTypeByName(name)
		if !ok || !uref.Localizable(t) {
			return fmt.Errorf("%w: %q cannot carry a locale", ErrUnknownType, name)
		}
		l, err := locale.Parse(p.Locales[name])
		if err != nil {
			return fmt.Errorf("%w for %s: %v", ErrUnknownLocale, name, err)
		}
		locales = append(locales, localeRule{t: t, l: l})
	}

	for _, t := range excluded {
		reg.ExcludeType(t)
	}
	for _, prop := range props {
		reg.ExcludeProperty(prop)
	}
	if p.Truncate >= 0 {
		reg.SetStringTruncation(p.Truncate)
	}
	for _, lr := range locales {
		reg.SetLocale(lr.t, lr.l)
	}
	return nil
}
