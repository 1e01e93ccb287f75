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

import (
	"errors"
	"reflect"
)

// ErrInvalidSelector is the sentinel matched by every *InvalidSelectorError.
var ErrInvalidSelector = errors.New("objprint: invalid property selector")

// InvalidSelectorError reports a property selector that is not a direct
// field access on the owner type.
type InvalidSelectorError struct {
	// Owner is the type the selector was written against.
	Owner reflect.Type
	// Reason describes what was wrong with the selector.
	Reason string
}

// Error implements error.
func (e *InvalidSelectorError) Error() string {
	owner := "<nil>"
	if e.Owner != nil {
		owner = e.Owner.String()
	}
	return "objprint: invalid property selector on " + owner + ": " + e.Reason
}

// Is reports whether target is ErrInvalidSelector.
func (e *InvalidSelectorError) Is(target error) bool {
	return target == ErrInvalidSelector
}
