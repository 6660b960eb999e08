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

package builder

import (
	"dirpx.dev/extensible/apis"
	"dirpx.dev/extensible/bean"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildSelf returns host itself when it already resolves its own
// attributes, and a reflective bean over it otherwise.
func (b *builder) BuildSelf(host any, cfg apis.Config) apis.Delegate {
	if d, ok := host.(apis.Delegate); ok {
		return d
	}
	return bean.New(host, cfg)
}

// BuildBean returns a reflective bean over obj.
func (b *builder) BuildBean(obj any, cfg apis.Config) apis.Delegate {
	return bean.New(obj, cfg)
}

// Factory binds bd and cfg into an apis.BeanFactory.
func Factory(bd apis.Builder, cfg apis.Config) apis.BeanFactory {
	if bd == nil {
		bd = New()
	}
	return func(obj any) apis.Delegate { return bd.BuildBean(obj, cfg) }
}
