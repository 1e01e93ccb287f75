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

// Package locale implements apis.Locale on top of golang.org/x/text.
//
// Numbers are formatted as positional decimals with the decimal and grouping
// separators of the language, keeping every significant fraction digit. time.Time values use a short
// date-time layout chosen by matching the tag against a fixed table.
// time.Duration values keep Go notation ("1h30m0s"); no language in the
// table has a conventional alternative.
package locale

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"dirpx.dev/objprint/apis"
)

// ErrInvalidTag is returned when a BCP 47 tag cannot be parsed.
var ErrInvalidTag = errors.New("objprint(locale): invalid language tag")

// isoLayout is used for tags the layout table does not cover.
const isoLayout = "2006-01-02 15:04:05"

// layouts pairs supported tags with their date-time layout.
// The first entry is the matcher's fallback and is never used when
// the match confidence is language.No.
var layouts = []struct {
	tag    language.Tag
	layout string
}{
	{language.AmericanEnglish, "01/02/2006 15:04:05"},
	{language.BritishEnglish, "02/01/2006 15:04:05"},
	{language.German, "02.01.2006 15:04:05"},
	{language.French, "02/01/2006 15:04:05"},
	{language.Spanish, "02/01/2006 15:04:05"},
	{language.Italian, "02/01/2006 15:04:05"},
	{language.Russian, "02.01.2006 15:04:05"},
	{language.Polish, "02.01.2006 15:04:05"},
	{language.Dutch, "02-01-2006 15:04:05"},
	{language.Japanese, "2006/01/02 15:04:05"},
	{language.Chinese, "2006/01/02 15:04:05"},
	{language.Korean, "2006. 01. 02. 15:04:05"},
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(layouts))
	for i, l := range layouts {
		tags[i] = l.tag
	}
	return language.NewMatcher(tags)
}()

// New returns the locale for tag.
func New(tag language.Tag) apis.Locale {
	return &locale{
		tag:     tag,
		printer: message.NewPrinter(tag),
		layout:  layoutFor(tag),
	}
}

// Parse parses a BCP 47 tag such as "de-DE" or "ru" into a locale.
func Parse(s string) (apis.Locale, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidTag, s, err)
	}
	return New(tag), nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) apis.Locale {
	l, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return l
}

// locale is the x/text backed apis.Locale.
// message.Printer is safe for concurrent use, so a locale may be shared.
type locale struct {
	tag     language.Tag
	printer *message.Printer
	layout  string
}

// Ensure locale implements apis.Locale.
var _ apis.Locale = (*locale)(nil)

// Tag returns the BCP 47 tag.
func (l *locale) Tag() string {
	return l.tag.String()
}

// Format returns the localized text of v.
func (l *locale) Format(v any) string {
	switch x := v.(type) {
	case time.Time:
		return x.Format(l.layout)
	case time.Duration:
		return x.String()
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return l.printer.Sprint(number.Decimal(x, number.MaxFractionDigits(-1)))
	default:
		return fmt.Sprint(v)
	}
}

func layoutFor(tag language.Tag) string {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return isoLayout
	}
	return layouts[idx].layout
}
