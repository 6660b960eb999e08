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

package apis

// Builder produces the adapters an extensible object is composed from.
// Implementations decide how an arbitrary Go value becomes a Delegate.
type Builder interface {
	// BuildSelf constructs the adapter for the host object itself (slot 0).
	BuildSelf(host any, cfg Config) Delegate
	// BuildBean constructs the adapter for a plugin or extension object.
	// Convention registries call it once per plugin instance.
	BuildBean(obj any, cfg Config) Delegate
}

// BeanFactory turns an arbitrary object into a Delegate.
type BeanFactory func(obj any) Delegate
