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
	"fmt"
	"strings"
)

// Sentinel errors. Every typed error below matches exactly one of them via
// errors.Is, so callers can branch on the kind and still use errors.As for
// the details.
var (
	// ErrNotFound is returned when a name or type is absent.
	ErrNotFound = errors.New("extensible(apis): not found")
	// ErrDuplicateName is returned when an extension name is already registered.
	ErrDuplicateName = errors.New("extensible(apis): duplicate extension name")
	// ErrAmbiguousType is returned when more than one plugin matches a type lookup.
	ErrAmbiguousType = errors.New("extensible(apis): ambiguous plugin type")
	// ErrReassignment is returned when a property write targets a registered extension.
	ErrReassignment = errors.New("extensible(apis): extension reassignment forbidden")
	// ErrInheritedReadOnly is returned for any write through an inheritable view.
	ErrInheritedReadOnly = errors.New("extensible(apis): inherited attributes are read-only")
	// ErrInstantiatorUnset is returned by create operations on a registry
	// built without an Instantiator.
	ErrInstantiatorUnset = errors.New("extensible(apis): instantiator not initialized")
	// ErrNotAssignable is returned when a value fails an assignability test.
	ErrNotAssignable = errors.New("extensible(apis): value not assignable")
	// ErrNilType is returned when a zero capability type is provided.
	ErrNilType = errors.New("extensible(apis): nil type provided")
	// ErrEmptyName is returned when an empty name is provided.
	ErrEmptyName = errors.New("extensible(apis): empty name provided")
)

// MissingPropertyError reports a property that no delegate could read or write.
type MissingPropertyError struct {
	Name  string
	Owner string
	// Set is true when the failed operation was a write.
	Set bool
}

func (e *MissingPropertyError) Error() string {
	op := "get"
	if e.Set {
		op = "set"
	}
	return fmt.Sprintf("could not %s unknown property '%s' for %s", op, e.Name, e.Owner)
}

// Is implements error matching for errors.Is() checks.
func (e *MissingPropertyError) Is(target error) bool {
	return target == ErrNotFound
}

// MissingMethodError reports a method that no delegate could invoke.
type MissingMethodError struct {
	Name  string
	Owner string
	Args  []any
}

func (e *MissingMethodError) Error() string {
	return fmt.Sprintf("could not find method %s() for arguments %s on %s", e.Name, formatArgs(e.Args), e.Owner)
}

// Is implements error matching for errors.Is() checks.
func (e *MissingMethodError) Is(target error) bool {
	return target == ErrNotFound
}

// UnknownExtensionError reports a failed extension lookup by name or by type.
// Exactly one of Name and Type is set.
type UnknownExtensionError struct {
	Name string
	Type string
	// Known lists the registered names (name lookup) or types (type lookup).
	Known []string
}

func (e *UnknownExtensionError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("extension of type '%s' does not exist; currently registered extension types: [%s]",
			e.Type, strings.Join(e.Known, ", "))
	}
	return fmt.Sprintf("extension with name '%s' does not exist; currently registered extension names: [%s]",
		e.Name, strings.Join(e.Known, ", "))
}

// Is implements error matching for errors.Is() checks.
func (e *UnknownExtensionError) Is(target error) bool {
	return target == ErrNotFound
}

// UnknownPluginError reports that no convention object matches a type.
type UnknownPluginError struct {
	Type string
}

func (e *UnknownPluginError) Error() string {
	return fmt.Sprintf("could not find any convention object of type %s", e.Type)
}

// Is implements error matching for errors.Is() checks.
func (e *UnknownPluginError) Is(target error) bool {
	return target == ErrNotFound
}

// DuplicateNameError reports an extension name that is already taken.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("cannot add extension with name '%s', as there is an extension already registered with that name", e.Name)
}

// Is implements error matching for errors.Is() checks.
func (e *DuplicateNameError) Is(target error) bool {
	return target == ErrDuplicateName
}

// AmbiguousTypeError reports a plugin type lookup with several matches.
type AmbiguousTypeError struct {
	Type    string
	Matches int
}

func (e *AmbiguousTypeError) Error() string {
	return fmt.Sprintf("found multiple convention objects of type %s (%d matches)", e.Type, e.Matches)
}

// Is implements error matching for errors.Is() checks.
func (e *AmbiguousTypeError) Is(target error) bool {
	return target == ErrAmbiguousType
}

// ReassignmentError reports a property write against a registered extension name.
type ReassignmentError struct {
	Name string
}

func (e *ReassignmentError) Error() string {
	return fmt.Sprintf("there's an extension registered with name '%s'; it must not be reassigned via a property setter", e.Name)
}

// Is implements error matching for errors.Is() checks.
func (e *ReassignmentError) Is(target error) bool {
	return target == ErrReassignment
}

// InheritedPropertyError reports a write attempted through an inheritable view.
type InheritedPropertyError struct {
	Name  string
	Owner string
}

func (e *InheritedPropertyError) Error() string {
	return fmt.Sprintf("could not find property '%s' inherited from %s", e.Name, e.Owner)
}

// Is implements error matching for errors.Is() checks.
func (e *InheritedPropertyError) Is(target error) bool {
	return target == ErrInheritedReadOnly
}

// AssignmentError reports a value whose type fails the assignability test
// against its destination.
type AssignmentError struct {
	Name  string
	Owner string
	Want  string
	Got   string
}

func (e *AssignmentError) Error() string {
	return fmt.Sprintf("cannot assign value of type %s to property '%s' of type %s on %s", e.Got, e.Name, e.Want, e.Owner)
}

// Is implements error matching for errors.Is() checks.
func (e *AssignmentError) Is(target error) bool {
	return target == ErrNotAssignable
}

func formatArgs(args []any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprintf("%v", a)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
