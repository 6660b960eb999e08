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

package extprops

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrNotMapping is returned when a YAML document is not a top-level mapping.
var ErrNotMapping = errors.New("extensible(extprops): YAML document is not a mapping")

// LoadYAML sets one property per top-level key of the YAML mapping read from
// r, in document order. Nested values decode to map[string]any, []any and
// scalars. An empty document is a no-op. On error no property is written.
func (e *Extension) LoadYAML(r io.Reader) error {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("extprops: decode YAML: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil
		}
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return ErrNotMapping
	}

	type pair struct {
		key string
		val any
	}
	pairs := make([]pair, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		k, v := root.Content[i], root.Content[i+1]
		var val any
		if err := v.Decode(&val); err != nil {
			return fmt.Errorf("extprops: decode %q (line %d): %w", k.Value, v.Line, err)
		}
		pairs = append(pairs, pair{key: k.Value, val: val})
	}

	for _, p := range pairs {
		e.Set(p.key, p.val)
	}
	return nil
}
