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

// Config carries read-only render knobs consumed by the Printer.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// NewLine terminates every emitted line. Defaults to the host
	// platform convention ("\r\n" on windows, "\n" elsewhere).
	NewLine string

	// Indent is repeated (depth+1) times in front of every property line.
	Indent string

	// MaxUnwrap limits pointer/interface unwrapping when classifying values
	// and declared field types. Acts as a guard against pathological **T chains.
	MaxUnwrap int
}
