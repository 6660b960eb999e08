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

package extensible

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"dirpx.dev/extensible/apis"
	"dirpx.dev/extensible/builder"
	"dirpx.dev/extensible/config"
	"dirpx.dev/extensible/instantiator"
)

// init publishes the initial defaults snapshot.
func init() {
	st.Store(initialState())
}

func initialState() *state {
	return &state{
		cfg:    config.DefaultConfig(),
		bld:    builder.New(),
		inst:   instantiator.New(),
		logger: nil, // resolved lazily to slog.Default()
	}
}

// state is an immutable snapshot of the process-wide defaults New uses.
type state struct {
	cfg    apis.Config
	bld    apis.Builder
	inst   apis.Instantiator
	logger *slog.Logger
}

var (
	// st is the current snapshot; readers never lock.
	st atomic.Pointer[state]
	// buildMu serializes writers so read-modify-write updates don't race.
	buildMu sync.Mutex
)

// Settings is a copy of the process-wide defaults.
type Settings struct {
	Config       apis.Config
	Builder      apis.Builder
	Instantiator apis.Instantiator
	Logger       *slog.Logger
}

// Defaults returns the defaults New applies before its options.
// Objects copy them at construction and never observe later changes.
func Defaults() Settings {
	s := st.Load()
	return Settings{
		Config:       s.cfg,
		Builder:      s.bld,
		Instantiator: s.inst,
		Logger:       s.loggerOrDefault(),
	}
}

func (s *state) loggerOrDefault() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return slog.Default()
}

// SetDefaults replaces the process-wide defaults. Nil arguments leave the
// corresponding component unchanged.
func SetDefaults(cfg *apis.Config, bld apis.Builder, inst apis.Instantiator, logger *slog.Logger) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	if cfg != nil {
		next.cfg = *cfg
	}
	if bld != nil {
		next.bld = bld
	}
	if inst != nil {
		next.inst = inst
	}
	if logger != nil {
		next.logger = logger
	}
	st.Store(&next)
}

// SetConfig replaces the default configuration.
func SetConfig(cfg apis.Config) {
	SetDefaults(&cfg, nil, nil, nil)
}

// ResetDefaults restores the defaults the package started with.
func ResetDefaults() {
	buildMu.Lock()
	defer buildMu.Unlock()
	st.Store(initialState())
}
