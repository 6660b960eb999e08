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

// Package convention implements the legacy convention registry: a
// name -> plugin object map that sits beside an extension registry.
// Unlike extensions, several plugins may match one type; that is only an
// error when somebody looks the type up.
package convention

import (
	"log/slog"
	"reflect"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"dirpx.dev/extensible/apis"
	"dirpx.dev/extensible/bean"
	"dirpx.dev/extensible/registry"
	"dirpx.dev/extensible/typeof"
)

// Option configures a Convention.
type Option func(*Convention)

// WithBeanFactory sets how plugin objects that are not delegates themselves
// are adapted. The default is bean.Factory with a zero apis.Config.
func WithBeanFactory(f apis.BeanFactory) Option {
	return func(c *Convention) {
		if f != nil {
			c.factory = f
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Convention) {
		if l != nil {
			c.logger = l
		}
	}
}

// Convention wraps an extension registry. Every extension operation
// (Add, Create, GetByType, ConfigureByName, ...) is the embedded
// registry's; the plugin map is a separate namespace.
type Convention struct {
	*registry.Registry

	plugins *orderedmap.OrderedMap[string, any]
	beans   map[any]apis.Delegate
	factory apis.BeanFactory
	logger  *slog.Logger
}

// New wraps reg. A nil reg gets a fresh registry without an instantiator.
func New(reg *registry.Registry, opts ...Option) *Convention {
	if reg == nil {
		reg = registry.New()
	}
	c := &Convention{
		Registry: reg,
		plugins:  orderedmap.New[string, any](),
		beans:    make(map[any]apis.Delegate),
		factory:  bean.Factory(apis.Config{}),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Extensions returns the wrapped extension registry.
func (c *Convention) Extensions() *registry.Registry { return c.Registry }

// Plugins returns the live plugin map. Plugin loaders populate it
// directly; insertion order is the lookup order.
func (c *Convention) Plugins() *orderedmap.OrderedMap[string, any] { return c.plugins }

// FindPluginOfType returns the single plugin whose dynamic type is
// assignable to t. No match is (nil, false, nil); several matches fail
// with *apis.AmbiguousTypeError.
func (c *Convention) FindPluginOfType(t typeof.Type) (any, bool, error) {
	var (
		match   any
		matches int
	)
	for p := c.plugins.Oldest(); p != nil; p = p.Next() {
		if p.Value == nil || !t.IsInstance(p.Value) {
			continue
		}
		if matches == 0 {
			match = p.Value
		}
		matches++
	}
	switch matches {
	case 0:
		return nil, false, nil
	case 1:
		return match, true, nil
	default:
		c.logger.Debug("ambiguous convention lookup", "type", t.String(), "matches", matches)
		return nil, false, &apis.AmbiguousTypeError{Type: t.String(), Matches: matches}
	}
}

// GetPluginOfType is FindPluginOfType failing with *apis.UnknownPluginError
// when nothing matches.
func (c *Convention) GetPluginOfType(t typeof.Type) (any, error) {
	v, ok, err := c.FindPluginOfType(t)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &apis.UnknownPluginError{Type: t.String()}
	}
	return v, nil
}

// FindPlugin is FindPluginOfType for T.
func FindPlugin[T any](c *Convention) (T, bool, error) {
	var zero T
	v, ok, err := c.FindPluginOfType(typeof.Of[T]())
	if err != nil || !ok {
		return zero, ok, err
	}
	return v.(T), true, nil
}

// GetPlugin is GetPluginOfType for T.
func GetPlugin[T any](c *Convention) (T, error) {
	var zero T
	v, err := c.GetPluginOfType(typeof.Of[T]())
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

// delegateFor adapts a plugin object. Plugins that already implement
// apis.Delegate are used as is; comparable ones get a cached bean.
func (c *Convention) delegateFor(obj any) apis.Delegate {
	if d, ok := obj.(apis.Delegate); ok {
		return d
	}
	if !reflect.ValueOf(obj).Comparable() {
		return c.factory(obj)
	}
	if d, ok := c.beans[obj]; ok {
		return d
	}
	d := c.factory(obj)
	c.beans[obj] = d
	return d
}
