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

package bean_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/extensible/apis"
	"dirpx.dev/extensible/bean"
)

type Options struct {
	Verbose bool
}

type Compile struct {
	Source string `attr:"src"`
	Debug  bool
	Level  int
	Skip   string `attr:"-"`
	Hook   func()
	hidden string
	Options
}

func (c *Compile) Describe(prefix string) string { return prefix + c.Source }

func (c *Compile) Add(a, b int) (int, error) { return a + b, nil }

func (c *Compile) Fail() error { return errors.New("failed") }

func (c *Compile) Reset() { c.Source = "" }

func (c *Compile) Join(sep string, parts ...string) string { return strings.Join(parts, sep) }

type named struct{}

func (named) String() string { return "custom name" }

var cfg = apis.Config{FieldTag: "attr", MaxUnwrap: 8, MapPreferElem: true}

func TestBean_DisplayName(t *testing.T) {
	assert.Equal(t, "bean_test.Compile", bean.New(&Compile{}, cfg).DisplayName())
	assert.Equal(t, "custom name", bean.New(named{}, cfg).DisplayName())
	assert.Equal(t, bean.DefaultDisplayName, bean.New(nil, cfg).DisplayName())
	assert.Equal(t, bean.DefaultDisplayName, bean.New(struct{}{}, cfg).DisplayName())
	assert.Equal(t, bean.DefaultDisplayName, bean.New(3, cfg).DisplayName(), "builtins hidden")

	withBuiltins := cfg
	withBuiltins.IncludeBuiltins = true
	assert.Equal(t, "int", bean.New(3, withBuiltins).DisplayName())
}

func TestBean_Properties(t *testing.T) {
	c := &Compile{Source: "main.go", Level: 2, hidden: "x", Skip: "s"}
	c.Verbose = true
	b := bean.New(c, cfg)

	assert.True(t, b.HasProperty("src"))
	assert.True(t, b.HasProperty("debug"))
	assert.True(t, b.HasProperty("verbose"), "promoted from embedded struct")
	assert.False(t, b.HasProperty("source"), "tag renames the field")
	assert.False(t, b.HasProperty("skip"))
	assert.False(t, b.HasProperty("hidden"))
	assert.False(t, b.HasProperty("options"), "embedded struct itself is not a property")

	v, ok := b.TryGet("src")
	require.True(t, ok)
	assert.Equal(t, "main.go", v)

	props := b.Properties()
	assert.Equal(t, "main.go", props["src"])
	assert.Equal(t, 2, props["level"])
	assert.Equal(t, true, props["verbose"])
	assert.NotContains(t, props, "skip")
	assert.NotContains(t, props, "hidden")
}

func TestBean_NoTagUsesFieldNames(t *testing.T) {
	b := bean.New(&Compile{Source: "a"}, apis.Config{})
	assert.True(t, b.HasProperty("source"))
	assert.True(t, b.HasProperty("skip"))
}

func TestBean_TrySet(t *testing.T) {
	c := &Compile{}
	b := bean.New(c, cfg)

	found, err := b.TrySet("src", "lib.go")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "lib.go", c.Source)

	// numeric conversion (script numbers are float64)
	found, err = b.TrySet("level", 3.0)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 3, c.Level)

	// nil for nillable kinds
	c.Hook = func() {}
	_, err = b.TrySet("hook", nil)
	require.NoError(t, err)
	assert.Nil(t, c.Hook)

	found, err = b.TrySet("debug", "yes")
	assert.True(t, found)
	var ae *apis.AssignmentError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, "debug", ae.Name)
	assert.Equal(t, "bool", ae.Want)
	assert.Equal(t, "string", ae.Got)

	found, err = b.TrySet("unknown", 1)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestBean_ValueIsReadOnly(t *testing.T) {
	b := bean.New(Compile{Source: "a"}, cfg)

	v, ok := b.TryGet("src")
	require.True(t, ok)
	assert.Equal(t, "a", v)

	found, err := b.TrySet("src", "b")
	assert.True(t, found)
	assert.ErrorIs(t, err, apis.ErrNotAssignable)
}

func TestBean_Methods(t *testing.T) {
	c := &Compile{Source: "main.go"}
	b := bean.New(c, cfg)

	assert.True(t, b.HasMethod("describe", "src: "))
	assert.True(t, b.HasMethod("Describe", "src: "))
	assert.False(t, b.HasMethod("describe"))
	assert.False(t, b.HasMethod("describe", 1))
	assert.False(t, b.HasMethod("missing"))

	res, found, err := b.TryInvoke("describe", "src: ")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "src: main.go", res)

	res, found, err = b.TryInvoke("add", 2, 3.0)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 5, res)

	_, found, err = b.TryInvoke("fail")
	assert.True(t, found)
	assert.EqualError(t, err, "failed")

	res, found, err = b.TryInvoke("reset")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Nil(t, res)
	assert.Empty(t, c.Source)

	res, found, err = b.TryInvoke("join", "-", "a", "b", "c")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "a-b-c", res)
	assert.True(t, b.HasMethod("join", ","))

	_, found, err = b.TryInvoke("describe", 1, 2)
	assert.NoError(t, err)
	assert.False(t, found, "signature mismatch falls through")
}

func TestFactory(t *testing.T) {
	f := bean.Factory(cfg)
	d := f(&Compile{Source: "x"})
	v, ok := d.TryGet("src")
	assert.True(t, ok)
	assert.Equal(t, "x", v)
	assert.Equal(t, "bean_test.Compile", d.DisplayName())
}

func TestCoerce(t *testing.T) {
	rv, ok := bean.Coerce(int64(7), reflect.TypeOf(int32(0)))
	require.True(t, ok)
	assert.Equal(t, int32(7), rv.Interface())

	_, ok = bean.Coerce("7", reflect.TypeOf(0))
	assert.False(t, ok)

	_, ok = bean.Coerce(nil, reflect.TypeOf(0))
	assert.False(t, ok)

	rv, ok = bean.Coerce(nil, reflect.TypeOf((*error)(nil)).Elem())
	require.True(t, ok)
	assert.True(t, rv.IsNil())
}
