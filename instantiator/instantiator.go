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

// Package instantiator provides the reflective collaborator extension
// registries use to construct new extension instances.
package instantiator

import (
	"errors"
	"fmt"
	"reflect"

	"dirpx.dev/extensible/apis"
	"dirpx.dev/extensible/bean"
)

var (
	// ErrNoConstructor is returned when a type has no registered constructor
	// and cannot be zero-constructed with the given arguments.
	ErrNoConstructor = errors.New("extensible(instantiator): no constructor for type")
	// ErrBadConstructor is returned by Register for values that are not
	// functions returning T or (T, error).
	ErrBadConstructor = errors.New("extensible(instantiator): invalid constructor")
	// ErrArguments is returned when arguments do not fit the constructor.
	ErrArguments = errors.New("extensible(instantiator): arguments do not match constructor")
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Instantiator constructs values by type. Struct and pointer-to-struct
// types without a registered constructor are zero-constructed.
type Instantiator struct {
	ctors map[reflect.Type]reflect.Value
}

// Ensure Instantiator implements apis.Instantiator.
var _ apis.Instantiator = (*Instantiator)(nil)

// New returns an Instantiator with no constructors.
func New() *Instantiator {
	return &Instantiator{ctors: make(map[reflect.Type]reflect.Value)}
}

// Register adds fn as the constructor of its first result type. fn must be
// a function returning T or (T, error). A later registration for the same
// T replaces the earlier one.
func (i *Instantiator) Register(fn any) error {
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func || fv.IsNil() {
		return fmt.Errorf("%w: %T is not a function", ErrBadConstructor, fn)
	}
	ft := fv.Type()
	switch {
	case ft.NumOut() == 1 && ft.Out(0) != errorType:
	case ft.NumOut() == 2 && ft.Out(1) == errorType:
	default:
		return fmt.Errorf("%w: %s must return T or (T, error)", ErrBadConstructor, ft)
	}
	i.ctors[ft.Out(0)] = fv
	return nil
}

// NewInstance implements apis.Instantiator.
func (i *Instantiator) NewInstance(rt reflect.Type, args ...any) (any, error) {
	if rt == nil {
		return nil, apis.ErrNilType
	}
	if fv, ok := i.ctors[rt]; ok {
		return call(fv, args)
	}
	if len(args) == 0 {
		switch {
		case rt.Kind() == reflect.Struct:
			return reflect.New(rt).Elem().Interface(), nil
		case rt.Kind() == reflect.Ptr && rt.Elem().Kind() == reflect.Struct:
			return reflect.New(rt.Elem()).Interface(), nil
		}
	}
	return nil, fmt.Errorf("%w %s with %d argument(s)", ErrNoConstructor, rt, len(args))
}

func call(fv reflect.Value, args []any) (any, error) {
	ft := fv.Type()
	if ft.IsVariadic() {
		if len(args) < ft.NumIn()-1 {
			return nil, fmt.Errorf("%w: %s got %d argument(s)", ErrArguments, ft, len(args))
		}
	} else if len(args) != ft.NumIn() {
		return nil, fmt.Errorf("%w: %s got %d argument(s)", ErrArguments, ft, len(args))
	}

	in := make([]reflect.Value, len(args))
	for idx, a := range args {
		pt := paramType(ft, idx)
		rv, ok := bean.Coerce(a, pt)
		if !ok {
			return nil, fmt.Errorf("%w: argument %d of %s: cannot use %T as %s", ErrArguments, idx, ft, a, pt)
		}
		in[idx] = rv
	}

	out := fv.Call(in)
	if len(out) == 2 && !out[1].IsNil() {
		return nil, out[1].Interface().(error)
	}
	return out[0].Interface(), nil
}

func paramType(ft reflect.Type, idx int) reflect.Type {
	if ft.IsVariadic() && idx >= ft.NumIn()-1 {
		return ft.In(ft.NumIn() - 1).Elem()
	}
	return ft.In(idx)
}
