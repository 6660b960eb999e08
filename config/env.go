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

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"dirpx.dev/extensible/apis"
)

// FromEnv starts from DefaultConfig and overrides every knob found in the
// process environment as prefix + tag, e.g. "EXTENSIBLE_MAX_UNWRAP".
// Options are applied last.
func FromEnv(prefix string, opts ...Option) (apis.Config, error) {
	return parse(env.Options{Prefix: prefix}, opts)
}

// FromEnvironment is FromEnv over an explicit variable set instead of the
// process environment.
func FromEnvironment(prefix string, environ map[string]string, opts ...Option) (apis.Config, error) {
	if environ == nil {
		environ = map[string]string{}
	}
	return parse(env.Options{Prefix: prefix, Environment: environ}, opts)
}

func parse(o env.Options, opts []Option) (apis.Config, error) {
	cfg := DefaultConfig()
	if err := env.ParseWithOptions(&cfg, o); err != nil {
		return apis.Config{}, fmt.Errorf("parse env: %w", err)
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return normalize(cfg), nil
}
