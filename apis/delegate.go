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

// Delegate is one source of attributes and methods in a resolution chain.
// A composite resolver scans its delegates in order and stops at the first
// one that reports found. Absence is never reported through an error: the
// found flags let the scan continue past delegates that do not know a name.
type Delegate interface {
	// DisplayName names the owner for diagnostics ("extensions", "conventions", ...).
	DisplayName() string

	// HasProperty reports whether name is readable on this delegate.
	HasProperty(name string) bool

	// TryGet returns (value, true) if the delegate knows name; otherwise (nil, false).
	TryGet(name string) (value any, found bool)

	// TrySet writes value under name if the delegate claims the write.
	// It returns (false, nil) to fall through. A non-nil error aborts the scan.
	TrySet(name string, value any) (found bool, err error)

	// Properties returns a snapshot of every readable attribute.
	Properties() map[string]any

	// HasMethod reports whether name can be invoked with args.
	HasMethod(name string, args ...any) bool

	// TryInvoke calls method name with args if the delegate knows it.
	// It returns (nil, false, nil) to fall through.
	TryInvoke(name string, args ...any) (result any, found bool, err error)
}

// Resolver is a Delegate with "fail hard" accessors that turn absence into
// ErrNotFound errors carrying the owner's display name.
type Resolver interface {
	Delegate

	// Property returns the value of name or a *MissingPropertyError.
	Property(name string) (any, error)

	// SetProperty writes name or returns a *MissingPropertyError if no delegate claims it.
	SetProperty(name string, value any) error

	// InvokeMethod calls name or returns a *MissingMethodError.
	InvokeMethod(name string, args ...any) (any, error)
}
