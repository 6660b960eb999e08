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

package convention_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/extensible/apis"
	"dirpx.dev/extensible/bean"
	"dirpx.dev/extensible/convention"
	"dirpx.dev/extensible/registry"
	"dirpx.dev/extensible/typeof"
)

type Describer interface{ Describe() string }

type JavaConvention struct {
	X          int
	SourceSets []string
}

func (*JavaConvention) Describe() string { return "java" }

type GroovyConvention struct {
	X      int
	Groovy string
}

func (*GroovyConvention) Describe() string { return "groovy" }
func (*GroovyConvention) Compile(target string) string {
	return "groovyc " + target
}

type BasePlugin struct {
	Archives string
}

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func newConvention(t *testing.T) *convention.Convention {
	t.Helper()
	return convention.New(
		registry.New(registry.WithLogger(quiet)),
		convention.WithLogger(quiet),
		convention.WithBeanFactory(bean.Factory(apis.Config{MaxUnwrap: 8})),
	)
}

func TestPluginLookup_ExactlyOneMatch(t *testing.T) {
	c := newConvention(t)
	java := &JavaConvention{}
	c.Plugins().Set("java", java)
	c.Plugins().Set("base", &BasePlugin{})

	got, err := c.GetPluginOfType(typeof.Of[*JavaConvention]())
	require.NoError(t, err)
	assert.Same(t, java, got)

	found, ok, err := c.FindPluginOfType(typeof.Of[Describer]())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Same(t, java, found)

	typed, err := convention.GetPlugin[*JavaConvention](c)
	require.NoError(t, err)
	assert.Same(t, java, typed)
}

func TestPluginLookup_NoMatch(t *testing.T) {
	c := newConvention(t)
	c.Plugins().Set("base", &BasePlugin{})

	_, ok, err := c.FindPluginOfType(typeof.Of[Describer]())
	assert.NoError(t, err)
	assert.False(t, ok)

	_, err = c.GetPluginOfType(typeof.Of[Describer]())
	assert.ErrorIs(t, err, apis.ErrNotFound)
	var up *apis.UnknownPluginError
	require.True(t, errors.As(err, &up))
	assert.Equal(t, "convention_test.Describer", up.Type)

	_, ok, err = convention.FindPlugin[*JavaConvention](c)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestPluginLookup_Ambiguous(t *testing.T) {
	c := newConvention(t)
	c.Plugins().Set("java", &JavaConvention{})
	c.Plugins().Set("groovy", &GroovyConvention{})

	_, err := c.GetPluginOfType(typeof.Of[Describer]())
	assert.ErrorIs(t, err, apis.ErrAmbiguousType)

	_, ok, err := c.FindPluginOfType(typeof.Of[Describer]())
	assert.False(t, ok)
	var amb *apis.AmbiguousTypeError
	require.True(t, errors.As(err, &amb))
	assert.Equal(t, 2, amb.Matches)

	_, _, err = convention.FindPlugin[Describer](c)
	assert.ErrorIs(t, err, apis.ErrAmbiguousType)

	// Still fine for a type only one plugin has.
	_, err = convention.GetPlugin[*GroovyConvention](c)
	assert.NoError(t, err)
}

func TestExtensionOperationsDelegate(t *testing.T) {
	reg := registry.New(registry.WithLogger(quiet))
	c := convention.New(reg, convention.WithLogger(quiet))
	b := &BasePlugin{}

	require.NoError(t, c.Add(typeof.Of[*BasePlugin](), "base", b))
	got, err := reg.GetByName("base")
	require.NoError(t, err)
	assert.Same(t, b, got)
	assert.Same(t, reg, c.Extensions())

	// The plugin map is independent of the extensions.
	assert.Zero(t, c.Plugins().Len())
	_, err = c.GetPluginOfType(typeof.Of[*BasePlugin]())
	assert.ErrorIs(t, err, apis.ErrNotFound)
}

func TestNew_NilRegistry(t *testing.T) {
	c := convention.New(nil)
	require.NotNil(t, c.Extensions())
	assert.True(t, c.Has("ext"))
}
