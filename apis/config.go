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

// Config carries read-only knobs that influence adapters and resolvers.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// IncludeBuiltins controls whether builtin/no-package named types
	// (e.g., "int", "string") are used as display names. If false, such
	// values fall back to a generic "object" display name.
	IncludeBuiltins bool `env:"INCLUDE_BUILTINS"`

	// MaxUnwrap limits container unwrapping depth (ptr/slice/array/chan/map)
	// when deriving the nearest named type of a value.
	MaxUnwrap int `env:"MAX_UNWRAP"`

	// MapPreferElem controls which side of map[K]V is considered “primary”
	// when searching for a nearest named inner type. If true, prefer V; otherwise K.
	MapPreferElem bool `env:"MAP_PREFER_ELEM"`

	// FieldTag is the struct tag bean adapters consult for property names.
	FieldTag string `env:"FIELD_TAG"`

	// PropertyMethods lets the full resolver invoke callable property values
	// as methods once the ordinary method scan finds nothing.
	PropertyMethods bool `env:"PROPERTY_METHODS"`
}
