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

package typeof_test

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/extensible/typeof"
)

func TestOf_PreservesInterfaces(t *testing.T) {
	rt := typeof.Of[io.Reader]().Reflect()
	require.NotNil(t, rt)
	assert.Equal(t, reflect.Interface, rt.Kind())
	assert.Equal(t, "io.Reader", typeof.Of[io.Reader]().String())
}

func TestType_Equal(t *testing.T) {
	assert.True(t, typeof.Of[A]().Equal(typeof.Of[A]()))
	assert.True(t, typeof.Of[A]() == typeof.FromReflect(reflect.TypeOf(A{})))
	assert.False(t, typeof.Of[A]().Equal(typeof.Of[B]()))

	// Generic arguments are part of the identity.
	assert.False(t, typeof.Of[G[int]]().Equal(typeof.Of[G[string]]()))
	assert.True(t, typeof.Of[G[int]]().Equal(typeof.OfValue(G[int]{})))
}

func TestType_Zero(t *testing.T) {
	var z typeof.Type
	assert.True(t, z.IsZero())
	assert.True(t, typeof.OfValue(nil).IsZero())
	assert.True(t, typeof.FromReflect(nil).IsZero())
	assert.False(t, typeof.Of[A]().IsZero())
	assert.Equal(t, "<nil>", z.String())
	assert.False(t, z.IsAssignableFrom(typeof.Of[A]()))
	assert.False(t, z.IsInstance(A{}))
}

func TestType_Assignability(t *testing.T) {
	reader := typeof.Of[io.Reader]()
	buf := typeof.Of[*bytes.Buffer]()

	assert.True(t, reader.IsAssignableFrom(buf))
	assert.False(t, buf.IsAssignableFrom(reader))
	assert.True(t, reader.IsInstance(&bytes.Buffer{}))
	assert.False(t, reader.IsInstance(A{}))

	// nil is an instance of nillable kinds only
	assert.True(t, reader.IsInstance(nil))
	assert.True(t, buf.IsInstance(nil))
	assert.False(t, typeof.Of[A]().IsInstance(nil))
}

func TestType_String(t *testing.T) {
	cases := []struct {
		typ  typeof.Type
		want string
	}{
		{typeof.Of[A](), "typeof_test.A"},
		{typeof.Of[*A](), "*typeof_test.A"},
		{typeof.Of[G[A]](), "typeof_test.G[typeof_test.A]"},
		{typeof.Of[W[G[int]]](), "typeof_test.W[typeof_test.G[int]]"},
		{typeof.Of[map[string]*B](), "map[string]*typeof_test.B"},
		{typeof.Of[int](), "int"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.typ.String())
		assert.Equal(t, tc.want, fmt.Sprint(tc.typ))
	}
}

func TestType_MarshalText(t *testing.T) {
	b, err := typeof.Of[G[A]]().MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "typeof_test.G[typeof_test.A]", string(b))
}
