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

// Package luabind exposes delegates to Lua scripts.
//
// A pushed delegate is a userdata. Indexing it reads a property, or yields
// a function invoking the method of that name when no property matches.
// Assigning to a field writes the property and raises a Lua error when no
// delegate claims it. Calling the userdata with a single function runs the
// function against the wrapped object, the script form of configure:
//
//	project.version = "2.0"
//	project.signing(function(s) s.keyID = "ABCD" end)
//	print(project:build("jar"))
//
// Lua functions passed to Go become apis.Callback values. Go values that
// are not primitives, slices or string-keyed maps are wrapped through the
// bean factory.
package luabind

import (
	"fmt"
	"log/slog"
	"math"
	"reflect"

	"github.com/Shopify/go-lua"

	"dirpx.dev/extensible/apis"
	"dirpx.dev/extensible/bean"
	"dirpx.dev/extensible/config"
)

// TypeName is the metatable name of pushed delegates.
const TypeName = "extensible.delegate"

const callbackKeyPrefix = "extensible.callback."

// Option configures a Binder.
type Option func(*Binder)

// WithBeanFactory sets the factory wrapping plain Go values pushed to Lua.
func WithBeanFactory(f apis.BeanFactory) Option {
	return func(b *Binder) {
		if f != nil {
			b.factory = f
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(b *Binder) {
		if l != nil {
			b.logger = l
		}
	}
}

// Binder converts values between Go and one or more Lua states.
// It is not safe for concurrent use, and neither is a lua.State.
type Binder struct {
	factory apis.BeanFactory
	logger  *slog.Logger
	refs    int
}

// New returns a Binder.
func New(opts ...Option) *Binder {
	b := &Binder{
		factory: bean.Factory(config.DefaultConfig()),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// handle is the userdata payload of a pushed delegate.
type handle struct {
	d apis.Delegate
}

// Push pushes d onto the stack of l.
func (b *Binder) Push(l *lua.State, d apis.Delegate) {
	if d == nil {
		l.PushNil()
		return
	}
	b.register(l)
	l.PushUserData(&handle{d: d})
	lua.SetMetaTableNamed(l, TypeName)
}

// PushValue pushes an arbitrary Go value onto the stack of l.
func (b *Binder) PushValue(l *lua.State, v any) {
	b.push(l, v, make(map[uintptr]int))
}

// SetGlobal binds d to the global name.
func (b *Binder) SetGlobal(l *lua.State, name string, d apis.Delegate) {
	b.Push(l, d)
	l.SetGlobal(name)
	if d != nil {
		b.logger.Debug("luabind: global bound", slog.String("name", name), slog.String("delegate", d.DisplayName()))
	}
}

// Value converts the Lua value at index to Go.
func (b *Binder) Value(l *lua.State, index int) any {
	return b.toGo(l, index)
}

// register installs the delegate metatable once per state.
func (b *Binder) register(l *lua.State) {
	if lua.NewMetaTable(l, TypeName) {
		lua.SetFunctions(l, []lua.RegistryFunction{
			{Name: "__index", Function: b.index},
			{Name: "__newindex", Function: b.newIndex},
			{Name: "__call", Function: b.call},
			{Name: "__tostring", Function: b.tostring},
		}, 0)
	}
	l.Pop(1)
}

func checkHandle(l *lua.State, index int) *handle {
	h, ok := lua.CheckUserData(l, index, TypeName).(*handle)
	if !ok || h == nil {
		lua.ArgumentError(l, index, "delegate expected")
		return nil
	}
	return h
}

func (b *Binder) index(l *lua.State) int {
	h := checkHandle(l, 1)
	name := lua.CheckString(l, 2)
	if v, ok := h.d.TryGet(name); ok {
		b.PushValue(l, v)
		return 1
	}
	l.PushGoFunction(b.method(h, name))
	return 1
}

// method returns a function invoking name on h. Both h.name(...) and
// h:name(...) work: a leading h argument is dropped.
func (b *Binder) method(h *handle, name string) lua.Function {
	return func(l *lua.State) int {
		first := 1
		if l.Top() >= 1 {
			if self, ok := lua.TestUserData(l, 1, TypeName).(*handle); ok && self == h {
				first = 2
			}
		}
		args := make([]any, 0, l.Top())
		for i := first; i <= l.Top(); i++ {
			args = append(args, b.toGo(l, i))
		}
		res, found, err := h.d.TryInvoke(name, args...)
		if err != nil {
			lua.Errorf(l, "%s", err.Error())
			return 0
		}
		if !found {
			lua.Errorf(l, "%s", (&apis.MissingMethodError{Name: name, Owner: h.d.DisplayName(), Args: args}).Error())
			return 0
		}
		b.PushValue(l, res)
		return 1
	}
}

func (b *Binder) newIndex(l *lua.State) int {
	h := checkHandle(l, 1)
	name := lua.CheckString(l, 2)
	found, err := h.d.TrySet(name, b.toGo(l, 3))
	if err != nil {
		lua.Errorf(l, "%s", err.Error())
		return 0
	}
	if !found {
		lua.Errorf(l, "%s", (&apis.MissingPropertyError{Name: name, Owner: h.d.DisplayName(), Set: true}).Error())
	}
	return 0
}

// call runs a single callback argument against the wrapped object and
// returns the delegate.
func (b *Binder) call(l *lua.State) int {
	h := checkHandle(l, 1)
	if l.Top() != 2 || !l.IsFunction(2) {
		lua.Errorf(l, "%s can only be called with a single function", h.d.DisplayName())
		return 0
	}
	cb := b.callback(l, 2)
	if err := cb(unwrap(h.d)); err != nil {
		lua.Errorf(l, "%s", err.Error())
		return 0
	}
	l.PushValue(1)
	return 1
}

func (b *Binder) tostring(l *lua.State) int {
	h := checkHandle(l, 1)
	l.PushString(h.d.DisplayName())
	return 1
}

// callback anchors the function at index in the registry and returns a
// Callback calling it with the pushed target.
func (b *Binder) callback(l *lua.State, index int) apis.Callback {
	b.refs++
	key := fmt.Sprintf("%s%d", callbackKeyPrefix, b.refs)
	l.PushValue(index)
	l.SetField(lua.RegistryIndex, key)
	return func(target any) error {
		l.Field(lua.RegistryIndex, key)
		b.PushValue(l, target)
		return l.ProtectedCall(1, 0, 0)
	}
}

// unwrap returns the object behind a bean, or d itself.
func unwrap(d apis.Delegate) any {
	if u, ok := d.(interface{ Unwrap() any }); ok {
		return u.Unwrap()
	}
	return d
}

func (b *Binder) push(l *lua.State, v any, seen map[uintptr]int) {
	switch x := v.(type) {
	case nil:
		l.PushNil()
		return
	case apis.Delegate:
		b.Push(l, x)
		return
	case string:
		l.PushString(x)
		return
	case bool:
		l.PushBoolean(x)
		return
	case int:
		l.PushInteger(x)
		return
	}
	if fn, ok := apis.AsCallable(v); ok {
		b.pushCallable(l, fn)
		return
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		l.PushBoolean(rv.Bool())
	case reflect.String:
		l.PushString(rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		l.PushNumber(float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		l.PushNumber(float64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		l.PushNumber(rv.Float())
	case reflect.Slice, reflect.Array:
		b.pushList(l, rv, seen)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			b.Push(l, b.factory(v))
			return
		}
		b.pushMap(l, rv, seen)
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			l.PushNil()
			return
		}
		b.Push(l, b.factory(v))
	default:
		b.Push(l, b.factory(v))
	}
}

func (b *Binder) pushCallable(l *lua.State, fn apis.Callable) {
	l.PushGoFunction(func(l *lua.State) int {
		args := make([]any, 0, l.Top())
		for i := 1; i <= l.Top(); i++ {
			args = append(args, b.toGo(l, i))
		}
		res, err := fn.Call(args...)
		if err != nil {
			lua.Errorf(l, "%s", err.Error())
			return 0
		}
		b.PushValue(l, res)
		return 1
	})
}

func (b *Binder) pushList(l *lua.State, rv reflect.Value, seen map[uintptr]int) {
	if rv.Kind() == reflect.Slice && rv.IsNil() {
		l.PushNil()
		return
	}
	n := rv.Len()
	l.CreateTable(n, 0)
	for i := 0; i < n; i++ {
		b.push(l, rv.Index(i).Interface(), seen)
		l.RawSetInt(-2, i+1)
	}
}

// pushMap converts a string-keyed map. A map reached again while it is
// still being converted yields the same table.
func (b *Binder) pushMap(l *lua.State, rv reflect.Value, seen map[uintptr]int) {
	if rv.IsNil() {
		l.PushNil()
		return
	}
	ptr := rv.Pointer()
	if idx, ok := seen[ptr]; ok {
		l.PushValue(idx)
		return
	}
	l.CreateTable(0, rv.Len())
	seen[ptr] = l.AbsIndex(-1)
	defer delete(seen, ptr)

	iter := rv.MapRange()
	for iter.Next() {
		b.push(l, iter.Value().Interface(), seen)
		l.SetField(-2, iter.Key().String())
	}
}

func (b *Binder) toGo(l *lua.State, index int) any {
	switch l.TypeOf(index) {
	case lua.TypeString:
		s, _ := l.ToString(index)
		return s
	case lua.TypeNumber:
		n, _ := l.ToNumber(index)
		return normalizeNumber(n)
	case lua.TypeBoolean:
		return l.ToBoolean(index)
	case lua.TypeTable:
		return b.tableToGo(l, index)
	case lua.TypeFunction:
		return b.callback(l, index)
	case lua.TypeUserData:
		if h, ok := lua.TestUserData(l, index, TypeName).(*handle); ok && h != nil {
			return unwrap(h.d)
		}
		return l.ToUserData(index)
	default:
		return nil
	}
}

// tableToGo returns a []any for sequences with keys 1..n and a
// map[string]any otherwise.
func (b *Binder) tableToGo(l *lua.State, index int) any {
	index = l.AbsIndex(index)
	isArray := true
	maxIndex, count := 0, 0
	l.PushNil()
	for l.Next(index) {
		if isArray {
			if l.TypeOf(-2) != lua.TypeNumber {
				isArray = false
			} else if idx, ok := l.ToInteger(-2); ok && idx > 0 {
				count++
				if idx > maxIndex {
					maxIndex = idx
				}
			} else {
				isArray = false
			}
		}
		l.Pop(1)
	}

	if isArray && count > 0 && maxIndex == count {
		out := make([]any, 0, maxIndex)
		for i := 1; i <= maxIndex; i++ {
			l.RawGetInt(index, i)
			out = append(out, b.toGo(l, -1))
			l.Pop(1)
		}
		return out
	}

	out := make(map[string]any)
	l.PushNil()
	for l.Next(index) {
		if l.TypeOf(-2) == lua.TypeString {
			key, _ := l.ToString(-2)
			out[key] = b.toGo(l, -1)
		}
		l.Pop(1)
	}
	return out
}

func normalizeNumber(v float64) any {
	if math.Mod(v, 1) == 0 && math.Abs(v) < 1<<53 {
		return int(v)
	}
	return v
}
