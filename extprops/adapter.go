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

package extprops

import "dirpx.dev/extensible/apis"

// NewAdapter returns the delegate that exposes ext on its host.
// Unlike the bag itself it only claims names that already exist, so a write
// to an unknown name on the host keeps scanning and eventually fails rather
// than silently creating an extra property.
func NewAdapter(ext *Extension) apis.Delegate {
	return adapter{ext: ext}
}

type adapter struct {
	ext *Extension
}

func (a adapter) DisplayName() string { return DisplayName }

func (a adapter) HasProperty(name string) bool { return a.ext.Has(name) }

func (a adapter) TryGet(name string) (any, bool) { return a.ext.Find(name) }

func (a adapter) TrySet(name string, value any) (bool, error) {
	if !a.ext.Has(name) {
		return false, nil
	}
	a.ext.Set(name, value)
	return true, nil
}

func (a adapter) Properties() map[string]any { return a.ext.Properties() }

func (a adapter) HasMethod(string, ...any) bool { return false }

func (a adapter) TryInvoke(string, ...any) (any, bool, error) { return nil, false, nil }
