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
	"reflect"

	"dirpx.dev/extensible/typeof"
)

// Instantiator materializes new extension instances.
type Instantiator interface {
	// NewInstance constructs a value of type t using args as constructor arguments.
	NewInstance(t reflect.Type, args ...any) (any, error)
}

// InstantiatorFunc adapts a function to Instantiator.
type InstantiatorFunc func(t reflect.Type, args ...any) (any, error)

// NewInstance calls f.
func (f InstantiatorFunc) NewInstance(t reflect.Type, args ...any) (any, error) {
	return f(t, args...)
}

// PublicTyper is implemented by extensions that advertise the capability
// type they should be registered under when no type is given explicitly.
type PublicTyper interface {
	PublicType() typeof.Type
}
