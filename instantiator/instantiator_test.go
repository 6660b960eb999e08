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

package instantiator_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/extensible/apis"
	"dirpx.dev/extensible/instantiator"
)

type Repo struct {
	URL     string
	Retries int
}

func NewRepo(url string, retries int) *Repo { return &Repo{URL: url, Retries: retries} }

func TestNewInstance_ZeroConstruction(t *testing.T) {
	inst := instantiator.New()

	v, err := inst.NewInstance(reflect.TypeOf(&Repo{}))
	require.NoError(t, err)
	require.IsType(t, &Repo{}, v)

	v, err = inst.NewInstance(reflect.TypeOf(Repo{}))
	require.NoError(t, err)
	assert.Equal(t, Repo{}, v)

	_, err = inst.NewInstance(reflect.TypeOf(0))
	assert.ErrorIs(t, err, instantiator.ErrNoConstructor)

	_, err = inst.NewInstance(reflect.TypeOf(&Repo{}), "args need a constructor")
	assert.ErrorIs(t, err, instantiator.ErrNoConstructor)

	_, err = inst.NewInstance(nil)
	assert.ErrorIs(t, err, apis.ErrNilType)
}

func TestNewInstance_RegisteredConstructor(t *testing.T) {
	inst := instantiator.New()
	require.NoError(t, inst.Register(NewRepo))

	v, err := inst.NewInstance(reflect.TypeOf(&Repo{}), "https://repo", 3.0)
	require.NoError(t, err)
	assert.Equal(t, &Repo{URL: "https://repo", Retries: 3}, v)

	_, err = inst.NewInstance(reflect.TypeOf(&Repo{}), "https://repo")
	assert.ErrorIs(t, err, instantiator.ErrArguments)

	_, err = inst.NewInstance(reflect.TypeOf(&Repo{}), 1, 2)
	assert.ErrorIs(t, err, instantiator.ErrArguments)
}

func TestNewInstance_ConstructorError(t *testing.T) {
	inst := instantiator.New()
	boom := errors.New("boom")
	require.NoError(t, inst.Register(func(names ...string) (*Repo, error) {
		if len(names) == 0 {
			return nil, boom
		}
		return &Repo{URL: names[0]}, nil
	}))

	_, err := inst.NewInstance(reflect.TypeOf(&Repo{}))
	assert.ErrorIs(t, err, boom)

	v, err := inst.NewInstance(reflect.TypeOf(&Repo{}), "a", "b")
	require.NoError(t, err)
	assert.Equal(t, "a", v.(*Repo).URL)
}

func TestRegister_Invalid(t *testing.T) {
	inst := instantiator.New()
	assert.ErrorIs(t, inst.Register(42), instantiator.ErrBadConstructor)
	assert.ErrorIs(t, inst.Register(func() {}), instantiator.ErrBadConstructor)
	assert.ErrorIs(t, inst.Register(func() error { return nil }), instantiator.ErrBadConstructor)
	assert.ErrorIs(t, inst.Register(func() (int, int) { return 0, 0 }), instantiator.ErrBadConstructor)
	var nilFn func() *Repo
	assert.ErrorIs(t, inst.Register(nilFn), instantiator.ErrBadConstructor)
}
