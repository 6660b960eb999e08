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

package apis_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/extensible/apis"
)

func TestSentinels_PackagePrefix(t *testing.T) {
	sentinels := []error{
		apis.ErrNotFound,
		apis.ErrDuplicateName,
		apis.ErrAmbiguousType,
		apis.ErrReassignment,
		apis.ErrInheritedReadOnly,
		apis.ErrInstantiatorUnset,
		apis.ErrNotAssignable,
		apis.ErrNilType,
		apis.ErrEmptyName,
	}
	for _, err := range sentinels {
		assert.True(t, strings.HasPrefix(err.Error(), "extensible(apis): "), err.Error())
	}
}

func TestTypedErrors_MatchSentinels(t *testing.T) {
	cases := []struct {
		err  error
		want error
	}{
		{&apis.MissingPropertyError{Name: "x", Owner: "o"}, apis.ErrNotFound},
		{&apis.MissingMethodError{Name: "m", Owner: "o"}, apis.ErrNotFound},
		{&apis.UnknownPluginError{Type: "T"}, apis.ErrNotFound},
		{&apis.DuplicateNameError{Name: "x"}, apis.ErrDuplicateName},
		{&apis.AmbiguousTypeError{Type: "T", Matches: 2}, apis.ErrAmbiguousType},
		{&apis.ReassignmentError{Name: "x"}, apis.ErrReassignment},
		{&apis.InheritedPropertyError{Name: "x", Owner: "o"}, apis.ErrInheritedReadOnly},
		{&apis.AssignmentError{Name: "x", Owner: "o", Want: "int", Got: "string"}, apis.ErrNotAssignable},
	}
	for _, tc := range cases {
		assert.True(t, errors.Is(tc.err, tc.want), tc.err.Error())
	}
}
