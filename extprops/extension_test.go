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

package extprops_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/extensible/apis"
	"dirpx.dev/extensible/extprops"
)

func TestExtension_SetGet(t *testing.T) {
	ext := extprops.New()
	ext.Set("version", "1.2")
	ext.Set("flag", nil)

	v, err := ext.Get("version")
	require.NoError(t, err)
	assert.Equal(t, "1.2", v)

	assert.True(t, ext.Has("flag"), "nil values still count as set")

	_, err = ext.Get("missing")
	assert.ErrorIs(t, err, apis.ErrNotFound)
	assert.Contains(t, err.Error(), "extra properties")
}

func TestExtension_OrderAndOverwrite(t *testing.T) {
	ext := extprops.New()
	ext.Set("b", 1)
	ext.Set("a", 2)
	ext.Set("b", 3)

	assert.Equal(t, []string{"b", "a"}, ext.Names())
	assert.Equal(t, map[string]any{"a": 2, "b": 3}, ext.Properties())
	assert.Equal(t, "b", ext.Ordered().Oldest().Key)

	assert.True(t, ext.Remove("b"))
	assert.False(t, ext.Remove("b"))
	assert.Equal(t, 1, ext.Len())
}

func TestExtension_DelegateClaimsEveryWrite(t *testing.T) {
	var d apis.Delegate = extprops.New()

	found, err := d.TrySet("anything", 42)
	require.NoError(t, err)
	assert.True(t, found)

	v, ok := d.TryGet("anything")
	assert.True(t, ok)
	assert.Equal(t, 42, v)
	assert.Equal(t, extprops.DisplayName, d.DisplayName())
}

func TestExtension_CallablePropertyIsMethod(t *testing.T) {
	ext := extprops.New()
	var seen any
	ext.Set("hook", apis.Callback(func(target any) error {
		seen = target
		return nil
	}))
	ext.Set("sum", func(args ...any) (any, error) {
		return args[0].(int) + args[1].(int), nil
	})
	ext.Set("plain", "x")

	assert.True(t, ext.HasMethod("hook"))
	assert.False(t, ext.HasMethod("plain"))
	assert.False(t, ext.HasMethod("nope"))

	_, found, err := ext.TryInvoke("hook", "target")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "target", seen)

	res, found, err := ext.TryInvoke("sum", 2, 3)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 5, res)

	_, found, _ = ext.TryInvoke("plain")
	assert.False(t, found)
}

func TestAdapter_ClaimsExistingNamesOnly(t *testing.T) {
	ext := extprops.New()
	ext.Set("known", 1)
	a := extprops.NewAdapter(ext)

	found, err := a.TrySet("unknown", 2)
	require.NoError(t, err)
	assert.False(t, found)
	assert.False(t, ext.Has("unknown"))

	found, err = a.TrySet("known", 3)
	require.NoError(t, err)
	assert.True(t, found)
	v, _ := ext.Find("known")
	assert.Equal(t, 3, v)

	assert.True(t, a.HasProperty("known"))
	assert.False(t, a.HasMethod("known"))
	assert.Equal(t, map[string]any{"known": 3}, a.Properties())
}

func TestLoadYAML(t *testing.T) {
	ext := extprops.New()
	ext.Set("existing", true)

	doc := `
group: org.example
version: 3
tags: [a, b]
nested:
  key: value
`
	require.NoError(t, ext.LoadYAML(strings.NewReader(doc)))

	assert.Equal(t, []string{"existing", "group", "version", "tags", "nested"}, ext.Names())
	v, _ := ext.Find("version")
	assert.Equal(t, 3, v)
	v, _ = ext.Find("tags")
	assert.Equal(t, []any{"a", "b"}, v)
	v, _ = ext.Find("nested")
	assert.Equal(t, map[string]any{"key": "value"}, v)
}

func TestLoadYAML_Errors(t *testing.T) {
	ext := extprops.New()

	require.NoError(t, ext.LoadYAML(strings.NewReader("")), "empty document is a no-op")
	assert.ErrorIs(t, ext.LoadYAML(strings.NewReader("- a\n- b\n")), extprops.ErrNotMapping)
	assert.True(t, strings.HasPrefix(extprops.ErrNotMapping.Error(), "extensible(extprops): "))
	assert.Error(t, ext.LoadYAML(strings.NewReader("a: [unclosed\n")))
	assert.Zero(t, ext.Len())
}
