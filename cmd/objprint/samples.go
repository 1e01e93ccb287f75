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

package main

import (
	"time"

	"go.uber.org/zap"

	"dirpx.dev/objprint"
	"dirpx.dev/objprint/apis"
	"dirpx.dev/objprint/config"
)

// Person is the "person" sample record.
type Person struct {
	ID       string
	Name     string
	Age      int
	Height   float64
	Birthday time.Time
}

// Order is the "order" sample record.
type Order struct {
	Number   int64
	Customer Person
	Total    float64
	Placed   time.Time
	Lead     time.Duration
	Note     *string
	Items    []string
}

// sample binds a record to the generic printing calls for its type.
type sample struct {
	name     string
	render   func(p *config.Profile, log *zap.Logger, opts []config.Option) (string, error)
	validate func(p config.Profile) (apis.Snapshot, error)
}

var samples = []sample{
	{
		name: "person",
		render: func(p *config.Profile, log *zap.Logger, opts []config.Option) (string, error) {
			return render(samplePerson(), p, log, opts)
		},
		validate: validate[Person],
	},
	{
		name: "order",
		render: func(p *config.Profile, log *zap.Logger, opts []config.Option) (string, error) {
			return render(sampleOrder(), p, log, opts)
		},
		validate: validate[Order],
	},
}

func findSample(name string) (sample, bool) {
	for _, s := range samples {
		if s.name == name {
			return s, true
		}
	}
	return sample{}, false
}

func render[T any](v T, p *config.Profile, log *zap.Logger, opts []config.Option) (string, error) {
	c := objprint.For[T](opts...).WithLogger(log)
	if p != nil {
		if err := c.ApplyProfile(*p); err != nil {
			return "", err
		}
	}
	return c.PrintToString(v), nil
}

func validate[T any](p config.Profile) (apis.Snapshot, error) {
	c := objprint.For[T]()
	if err := c.ApplyProfile(p); err != nil {
		return apis.Snapshot{}, err
	}
	return c.Registry().Snapshot(), nil
}

func samplePerson() Person {
	return Person{
		ID:       "p-0001",
		Name:     "Lalka",
		Age:      19,
		Height:   163.2,
		Birthday: time.Date(2005, time.March, 14, 9, 30, 0, 0, time.UTC),
	}
}

func sampleOrder() Order {
	return Order{
		Number:   1024,
		Customer: samplePerson(),
		Total:    1234567.89,
		Placed:   time.Date(2024, time.November, 2, 18, 5, 0, 0, time.UTC),
		Lead:     36 * time.Hour,
		Items:    []string{"book", "lamp"},
	}
}
