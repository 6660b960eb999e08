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

// Package extensible resolves the attributes of a host object through a
// fixed chain of delegates, letting plugins attach named extensions,
// legacy convention objects and hooks to the host at configuration time.
//
// # Design
//
// An Object owns a slot array with a fixed index-to-role mapping:
//
//	0 self          the host, adapted by the Builder (a bean by default)
//	1 extra         the extra-properties bag, writable for existing names
//	2 before        the BeforeConvention hook
//	3 extensions    the extension registry view
//	4 conventions   the convention view, present once Convention() is called
//	5 after         the AfterConvention hook
//	6 parent        the parent delegate, read and invoke only
//
// Reads and invocations scan the slots in that order and the first delegate
// that reports found wins. Writes scan the same slots without the parent.
// Properties merges from the last slot to the first so the same delegate
// wins both forms of lookup, and the merged map holds itself under
// "properties".
//
// Inheritable returns a view over the extra, before, extensions,
// conventions and parent slots. Children use it to see inherited
// capabilities without the host's own identity. Every write through it
// fails with an error matching apis.ErrInheritedReadOnly.
//
// Slot arrays are allocated lazily and rewritten in place whenever
// SetParent, AddObject or the first Convention call changes a slot. A view
// obtained earlier observes the change without being recreated:
//
//	obj := extensible.New(project)
//	view := obj.Inheritable()
//	obj.SetParent(root)
//	v, err := view.Property("version") // served by root
//
// # Defaults
//
// New starts from a process-wide snapshot of Config, Builder, Instantiator
// and Logger. The snapshot is published atomically, so reads never lock:
//
//	cfg := config.NewConfig(config.WithFieldTag("json"))
//	extensible.SetDefaults(&cfg, nil, nil, nil)
//
// Objects copy the defaults at construction and never observe later
// changes. ResetDefaults restores the initial snapshot.
//
// # Concurrency
//
// Object and its registries are meant for a single configuration thread
// and carry no locks. Only the defaults snapshot is safe for concurrent
// use.
package extensible
