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

// Callback is the single-argument configuration contract. It receives the
// resolved extension or plugin instance. Configure operations discard
// anything the callback produces other than its error.
type Callback func(target any) error

// Callable is implemented by values that may be invoked like a method when
// they are stored as a property (for example a script closure).
type Callable interface {
	Call(args ...any) (any, error)
}

// AsCallback reports whether v can serve as a configuration callback and
// returns it in normalized form. Accepted shapes: Callback, func(any) error,
// func(any).
func AsCallback(v any) (Callback, bool) {
	switch f := v.(type) {
	case Callback:
		return f, f != nil
	case func(any) error:
		return Callback(f), f != nil
	case func(any):
		if f == nil {
			return nil, false
		}
		return func(target any) error {
			f(target)
			return nil
		}, true
	default:
		return nil, false
	}
}

// AsCallable reports whether v can be invoked as a method and returns an
// adapter. Accepted shapes: Callable, func(...any) (any, error), and every
// shape accepted by AsCallback (invoked with exactly one argument).
func AsCallable(v any) (Callable, bool) {
	switch f := v.(type) {
	case Callable:
		return f, true
	case func(...any) (any, error):
		if f == nil {
			return nil, false
		}
		return CallableFunc(f), true
	}
	cb, ok := AsCallback(v)
	if !ok {
		return nil, false
	}
	return CallableFunc(func(args ...any) (any, error) {
		var target any
		if len(args) > 0 {
			target = args[0]
		}
		return nil, cb(target)
	}), true
}

// CallableFunc adapts a plain function to Callable.
type CallableFunc func(args ...any) (any, error)

// Call invokes f.
func (f CallableFunc) Call(args ...any) (any, error) {
	return f(args...)
}
