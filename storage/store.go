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

// Package storage holds the flat, insertion-ordered table of extension
// entries that an extension registry is built on.
package storage

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"dirpx.dev/extensible/apis"
	"dirpx.dev/extensible/typeof"
)

// Entry is one registered extension.
type Entry struct {
	// Name is unique within a Store.
	Name string
	// Type is the declared capability type used for type-based lookup.
	// It need not equal the dynamic type of Instance.
	Type typeof.Type
	// Instance is the extension object itself.
	Instance any
}

// Store is an insertion-ordered, name-unique table of entries.
// It is not safe for concurrent mutation.
type Store struct {
	entries []Entry
	// index maps a name to its position in entries.
	index map[string]int
}

// New returns an empty Store.
func New() *Store {
	return &Store{index: make(map[string]int)}
}

// Add appends e. It fails with ErrEmptyName, ErrNilType or a
// *apis.DuplicateNameError and leaves the store untouched on failure.
func (s *Store) Add(e Entry) error {
	if e.Name == "" {
		return apis.ErrEmptyName
	}
	if e.Type.IsZero() {
		return apis.ErrNilType
	}
	if _, ok := s.index[e.Name]; ok {
		return &apis.DuplicateNameError{Name: e.Name}
	}
	s.index[e.Name] = len(s.entries)
	s.entries = append(s.entries, e)
	return nil
}

// Has reports whether name is registered.
func (s *Store) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Len returns the number of entries.
func (s *Store) Len() int { return len(s.entries) }

// FindByName returns the entry registered under name.
func (s *Store) FindByName(name string) (Entry, bool) {
	i, ok := s.index[name]
	if !ok {
		return Entry{}, false
	}
	return s.entries[i], true
}

// GetByName is FindByName that fails with *apis.UnknownExtensionError.
func (s *Store) GetByName(name string) (Entry, error) {
	if e, ok := s.FindByName(name); ok {
		return e, nil
	}
	return Entry{}, &apis.UnknownExtensionError{Name: name, Known: s.Names()}
}

// FindByType returns the first entry declared exactly as t, or failing that
// the first entry whose declared type is assignable to t.
func (s *Store) FindByType(t typeof.Type) (Entry, bool) {
	if t.IsZero() {
		return Entry{}, false
	}
	for _, e := range s.entries {
		if e.Type.Equal(t) {
			return e, true
		}
	}
	for _, e := range s.entries {
		if t.IsAssignableFrom(e.Type) {
			return e, true
		}
	}
	return Entry{}, false
}

// GetByType is FindByType that fails with *apis.UnknownExtensionError.
func (s *Store) GetByType(t typeof.Type) (Entry, error) {
	if e, ok := s.FindByType(t); ok {
		return e, nil
	}
	known := make([]string, len(s.entries))
	for i, e := range s.entries {
		known[i] = e.Type.String()
	}
	return Entry{}, &apis.UnknownExtensionError{Type: t.String(), Known: known}
}

// Entries returns a copy of all entries in insertion order.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Names returns the registered names in insertion order.
func (s *Store) Names() []string {
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Name
	}
	return out
}

// Schema returns name -> declared type in insertion order.
func (s *Store) Schema() *orderedmap.OrderedMap[string, typeof.Type] {
	m := orderedmap.New[string, typeof.Type]()
	for _, e := range s.entries {
		m.Set(e.Name, e.Type)
	}
	return m
}

// AsMap returns a name -> instance snapshot in insertion order.
func (s *Store) AsMap() *orderedmap.OrderedMap[string, any] {
	m := orderedmap.New[string, any]()
	for _, e := range s.entries {
		m.Set(e.Name, e.Instance)
	}
	return m
}
