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
	"fmt"
	"log/slog"
	"reflect"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"dirpx.dev/extensible/apis"
	"dirpx.dev/extensible/extprops"
	"dirpx.dev/extensible/storage"
	"dirpx.dev/extensible/typeof"
)

// Option configures a Registry.
type Option func(*Registry)

// WithInstantiator sets the collaborator used by Create and CreateAs.
func WithInstantiator(inst apis.Instantiator) Option {
	return func(r *Registry) {
		r.inst = inst
	}
}

// WithLogger sets the logger for registration events.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// Registry is the typed, name-unique extension container of one host.
// It is meant for single-goroutine use during configuration.
type Registry struct {
	store  *storage.Store
	extra  *extprops.Extension
	inst   apis.Instantiator
	logger *slog.Logger
}

// New constructs a Registry with the reserved extra-properties entry
// already registered under extprops.Name.
func New(opts ...Option) *Registry {
	r := &Registry{
		store:  storage.New(),
		extra:  extprops.New(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	// Cannot fail on an empty store.
	_ = r.store.Add(storage.Entry{Name: extprops.Name, Type: extprops.Type, Instance: r.extra})
	return r
}

// Add registers instance under name with declared type t.
func (r *Registry) Add(t typeof.Type, name string, instance any) error {
	if err := r.store.Add(storage.Entry{Name: name, Type: t, Instance: instance}); err != nil {
		return err
	}
	r.logger.Debug("extension added", "name", name, "type", t.String())
	return nil
}

// AddDefault registers instance under its public type. A reflect.Type
// instance is created through the instantiator instead (see Create).
func (r *Registry) AddDefault(name string, instance any) error {
	if rt, ok := instance.(reflect.Type); ok {
		_, err := r.Create(name, rt)
		return err
	}
	return r.Add(publicType(instance), name, instance)
}

// Create instantiates rt with args and registers the result under its
// public type. It returns the new instance.
func (r *Registry) Create(name string, rt reflect.Type, args ...any) (any, error) {
	obj, err := r.instantiate(name, rt, args)
	if err != nil {
		return nil, err
	}
	if err := r.Add(publicType(obj), name, obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// CreateAs instantiates rt with args and registers the result under t.
func (r *Registry) CreateAs(t typeof.Type, name string, rt reflect.Type, args ...any) (any, error) {
	obj, err := r.instantiate(name, rt, args)
	if err != nil {
		return nil, err
	}
	if err := r.Add(t, name, obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func (r *Registry) instantiate(name string, rt reflect.Type, args []any) (any, error) {
	if r.inst == nil {
		return nil, fmt.Errorf("create extension '%s': %w", name, apis.ErrInstantiatorUnset)
	}
	if rt == nil {
		return nil, apis.ErrNilType
	}
	// Fail before constructing anything that could not be registered.
	if r.store.Has(name) {
		return nil, &apis.DuplicateNameError{Name: name}
	}
	obj, err := r.inst.NewInstance(rt, args...)
	if err != nil {
		return nil, fmt.Errorf("create extension '%s' of type %s: %w", name, rt, err)
	}
	return obj, nil
}

// publicType is the declared type used when none is given explicitly.
func publicType(instance any) typeof.Type {
	if p, ok := instance.(apis.PublicTyper); ok {
		if t := p.PublicType(); !t.IsZero() {
			return t
		}
	}
	return typeof.OfValue(instance)
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool { return r.store.Has(name) }

// Names returns the registered names in insertion order.
func (r *Registry) Names() []string { return r.store.Names() }

// FindByName returns the extension registered under name.
func (r *Registry) FindByName(name string) (any, bool) {
	e, ok := r.store.FindByName(name)
	return e.Instance, ok
}

// GetByName returns the extension registered under name or a
// *apis.UnknownExtensionError.
func (r *Registry) GetByName(name string) (any, error) {
	e, err := r.store.GetByName(name)
	return e.Instance, err
}

// FindByType returns the extension declared as t (exact match first,
// then the first assignable declared type).
func (r *Registry) FindByType(t typeof.Type) (any, bool) {
	e, ok := r.store.FindByType(t)
	return e.Instance, ok
}

// GetByType is FindByType failing with a *apis.UnknownExtensionError.
func (r *Registry) GetByType(t typeof.Type) (any, error) {
	e, err := r.store.GetByType(t)
	return e.Instance, err
}

// ConfigureByName runs cb against the extension registered under name and
// returns the extension.
func (r *Registry) ConfigureByName(name string, cb apis.Callback) (any, error) {
	obj, err := r.GetByName(name)
	if err != nil {
		return nil, err
	}
	return obj, runCallback(obj, cb)
}

// ConfigureByType runs cb against the extension declared as t and returns it.
func (r *Registry) ConfigureByType(t typeof.Type, cb apis.Callback) (any, error) {
	obj, err := r.GetByType(t)
	if err != nil {
		return nil, err
	}
	return obj, runCallback(obj, cb)
}

func runCallback(obj any, cb apis.Callback) error {
	if cb == nil {
		return nil
	}
	return cb(obj)
}

// Schema returns name -> declared type for every extension in insertion order.
func (r *Registry) Schema() *orderedmap.OrderedMap[string, typeof.Type] {
	return r.store.Schema()
}

// AsMap returns a name -> instance snapshot in insertion order.
func (r *Registry) AsMap() *orderedmap.OrderedMap[string, any] {
	return r.store.AsMap()
}

// ExtraProperties returns the reserved extra-properties bag.
func (r *Registry) ExtraProperties() *extprops.Extension { return r.extra }

// GetByTypeOf returns the extension declared as T, converted to T.
func GetByTypeOf[T any](r *Registry) (T, error) {
	var zero T
	obj, err := r.GetByType(typeof.Of[T]())
	if err != nil {
		return zero, err
	}
	v, ok := obj.(T)
	if !ok {
		return zero, &apis.AssignmentError{
			Name:  typeof.Of[T]().String(),
			Owner: DisplayName,
			Want:  typeof.Of[T]().String(),
			Got:   typeof.OfValue(obj).String(),
		}
	}
	return v, nil
}

// FindByTypeOf returns the extension declared as T, if any.
func FindByTypeOf[T any](r *Registry) (T, bool) {
	var zero T
	obj, ok := r.FindByType(typeof.Of[T]())
	if !ok {
		return zero, false
	}
	v, ok := obj.(T)
	return v, ok
}

// Configure runs fn against the extension declared as T and returns it.
func Configure[T any](r *Registry, fn func(T) error) (T, error) {
	v, err := GetByTypeOf[T](r)
	if err != nil || fn == nil {
		return v, err
	}
	return v, fn(v)
}
