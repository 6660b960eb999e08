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

package registry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/extensible/apis"
	"dirpx.dev/extensible/extprops"
	"dirpx.dev/extensible/registry"
	"dirpx.dev/extensible/typeof"
)

func TestView_Reads(t *testing.T) {
	reg := newRegistry(t)
	sig := &Signing{}
	require.NoError(t, reg.Add(typeof.Of[*Signing](), "signing", sig))
	d := reg.AsDelegate()

	assert.Equal(t, registry.DisplayName, d.DisplayName())
	assert.True(t, d.HasProperty("signing"))
	assert.True(t, d.HasProperty(extprops.Name))
	assert.False(t, d.HasProperty("missing"))

	v, ok := d.TryGet("signing")
	assert.True(t, ok)
	assert.Same(t, sig, v)

	_, ok = d.TryGet("missing")
	assert.False(t, ok)

	props := d.Properties()
	assert.Len(t, props, 2)
	assert.Same(t, sig, props["signing"])
}

func TestView_WritesAreRejectedOrFallThrough(t *testing.T) {
	reg := newRegistry(t)
	require.NoError(t, reg.Add(typeof.Of[*Signing](), "signing", &Signing{}))
	d := reg.AsDelegate()

	found, err := d.TrySet("signing", &Signing{})
	assert.False(t, found)
	var re *apis.ReassignmentError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "signing", re.Name)
	assert.ErrorIs(t, err, apis.ErrReassignment)

	found, err = d.TrySet("other", 1)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.False(t, reg.Has("other"))
}

func TestView_InvokeConfigures(t *testing.T) {
	reg := newRegistry(t)
	sig := &Signing{}
	require.NoError(t, reg.Add(typeof.Of[*Signing](), "signing", sig))
	d := reg.AsDelegate()

	cb := apis.Callback(func(target any) error {
		target.(*Signing).KeyID = "configured"
		return nil
	})
	assert.True(t, d.HasMethod("signing", cb))
	assert.False(t, d.HasMethod("signing"))
	assert.False(t, d.HasMethod("signing", cb, cb))
	assert.False(t, d.HasMethod("signing", "not a callback"))
	assert.False(t, d.HasMethod("missing", cb))

	res, found, err := d.TryInvoke("signing", cb)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Same(t, sig, res)
	assert.Equal(t, "configured", sig.KeyID)

	// Plain func shapes are accepted as callbacks.
	_, found, err = d.TryInvoke("signing", func(target any) { target.(*Signing).KeyID = "plain" })
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "plain", sig.KeyID)

	_, found, err = d.TryInvoke("signing", 1, 2)
	assert.NoError(t, err)
	assert.False(t, found)
}
