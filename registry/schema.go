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
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"
)

// SchemaDocument renders the registry as a JSON Schema object with one
// property per extension, in registration order, each reflected from the
// extension's declared type. Types the reflector cannot describe (funcs,
// channels) produce an error naming the extension. Named struct types are
// emitted once under the root "$defs" and referenced from the properties,
// so self-referential types are supported.
func (r *Registry) SchemaDocument() ([]byte, error) {
	refl := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}

	root := &jsonschema.Schema{
		Version:     jsonschema.Version,
		Type:        "object",
		Title:       DisplayName,
		Properties:  jsonschema.NewProperties(),
		Definitions: jsonschema.Definitions{},
	}
	for _, e := range r.store.Entries() {
		s, err := reflectType(refl, e.Type.Reflect())
		if err != nil {
			return nil, fmt.Errorf("schema for extension '%s': %w", e.Name, err)
		}
		s.Version = ""
		s.ID = ""
		for name, def := range s.Definitions {
			root.Definitions[name] = def
		}
		s.Definitions = nil
		if s.Title == "" && s.Ref == "" {
			s.Title = e.Type.String()
		}
		root.Properties.Set(e.Name, s)
	}

	b, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal extension schema: %w", err)
	}
	return b, nil
}

// reflectType converts reflector panics (unsupported kinds) into errors.
func reflectType(refl *jsonschema.Reflector, rt reflect.Type) (s *jsonschema.Schema, err error) {
	switch rt.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return nil, fmt.Errorf("unsupported kind %s", rt.Kind())
	}
	defer func() {
		if p := recover(); p != nil {
			s, err = nil, fmt.Errorf("reflect %s: %v", rt, p)
		}
	}()
	s = refl.ReflectFromType(rt)
	if s == nil {
		return nil, fmt.Errorf("reflect %s: empty schema", rt)
	}
	return s, nil
}
