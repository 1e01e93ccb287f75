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

// Locale formats numeric and temporal leaf values using regional conventions.
type Locale interface {
	// Tag returns the BCP 47 tag of the locale (e.g. "de-DE").
	Tag() string
	// Format returns the localized text of v. Values the locale does not
	// know how to localize are formatted with their default representation.
	Format(v any) string
}
