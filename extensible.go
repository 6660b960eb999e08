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
	"fmt"
	"log/slog"
	"sort"

	"dirpx.dev/extensible/apis"
	"dirpx.dev/extensible/builder"
	"dirpx.dev/extensible/convention"
	"dirpx.dev/extensible/extprops"
	"dirpx.dev/extensible/registry"
	"dirpx.dev/extensible/resolver"
)

// Location selects the hook slot AddObject fills.
type Location int

const (
	// BeforeConvention places the object ahead of the extensions and
	// conventions views.
	BeforeConvention Location = iota
	// AfterConvention places the object behind the conventions view and
	// ahead of the parent.
	AfterConvention
)

// String implements fmt.Stringer.
func (l Location) String() string {
	switch l {
	case BeforeConvention:
		return "before-convention"
	case AfterConvention:
		return "after-convention"
	default:
		return fmt.Sprintf("Location(%d)", int(l))
	}
}

// Slot indices of the full resolution chain.
const (
	slotSelf = iota
	slotExtra
	slotBefore
	slotExtensions
	slotConventions
	slotAfter
	slotParent
	slotCount
)

// Slot indices of the inheritable chain.
const (
	inhExtra = iota
	inhBefore
	inhExtensions
	inhConventions
	inhParent
	inhCount
)

// Option configures an Object.
type Option func(*options)

type options struct {
	cfg     apis.Config
	bld     apis.Builder
	inst    apis.Instantiator
	logger  *slog.Logger
	display string
	self    apis.Delegate
}

// WithConfig overrides the default configuration.
func WithConfig(cfg apis.Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithBuilder overrides the builder producing the self delegate and the
// bean delegates of convention plugins.
func WithBuilder(bld apis.Builder) Option {
	return func(o *options) {
		if bld != nil {
			o.bld = bld
		}
	}
}

// WithInstantiator sets the instantiator used by Extensions().Create.
// Passing nil leaves the registry without one.
func WithInstantiator(inst apis.Instantiator) Option {
	return func(o *options) { o.inst = inst }
}

// WithLogger sets the logger of the object and of its registries.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithDisplayName overrides the owner name used in errors.
func WithDisplayName(name string) Option {
	return func(o *options) { o.display = name }
}

// WithSelf supplies the self delegate directly instead of building one
// from the host.
func WithSelf(d apis.Delegate) Option {
	return func(o *options) { o.self = d }
}

// Object resolves attributes of a host through a fixed chain of delegates:
// the host itself, extra properties, the before-convention hook, the
// extensions, the conventions, the after-convention hook and the parent.
//
// Object is not safe for concurrent use.
type Object struct {
	host    any
	cfg     apis.Config
	bld     apis.Builder
	logger  *slog.Logger
	display string

	self       apis.Delegate
	before     apis.Delegate
	after      apis.Delegate
	parent     apis.Delegate
	extensions *registry.Registry
	convention *convention.Convention

	// Slot arrays are allocated on first use and rewritten in place by
	// updateDelegates, so every resolver built over them stays current.
	objects     *[slotCount]apis.Delegate
	updates     *[slotCount]apis.Delegate
	inheritable *[inhCount]apis.Delegate

	full      *resolver.Composite
	inherited *InheritedView
}

var _ apis.Resolver = (*Object)(nil)

// New returns an Object over host. The process defaults apply first and
// opts override them.
func New(host any, opts ...Option) *Object {
	d := Defaults()
	o := options{
		cfg:    d.Config,
		bld:    d.Builder,
		inst:   d.Instantiator,
		logger: d.Logger,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.bld == nil {
		o.bld = builder.New()
	}

	self := o.self
	if self == nil {
		self = o.bld.BuildSelf(host, o.cfg)
	}

	regOpts := []registry.Option{registry.WithLogger(o.logger)}
	if o.inst != nil {
		regOpts = append(regOpts, registry.WithInstantiator(o.inst))
	}

	obj := &Object{
		host:       host,
		cfg:        o.cfg,
		bld:        o.bld,
		logger:     o.logger,
		display:    o.display,
		self:       self,
		extensions: registry.New(regOpts...),
	}
	return obj
}

// Host returns the object New was called with.
func (o *Object) Host() any { return o.host }

// Self returns the delegate resolving the host's own attributes.
func (o *Object) Self() apis.Delegate { return o.self }

// Extensions returns the extension registry of the object.
func (o *Object) Extensions() *registry.Registry { return o.extensions }

// ExtraProperties returns the ad-hoc property bag registered as the "ext"
// extension.
func (o *Object) ExtraProperties() *extprops.Extension {
	return o.extensions.ExtraProperties()
}

// AddProperties writes every pair of props into the extra properties, in
// key order.
func (o *Object) AddProperties(props map[string]any) {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	ext := o.ExtraProperties()
	for _, k := range keys {
		ext.Set(k, props[k])
	}
}

// Convention returns the convention registry, creating it and its slot on
// first use. It wraps the same extension registry as Extensions.
func (o *Object) Convention() *convention.Convention {
	if o.convention == nil {
		o.convention = convention.New(o.extensions,
			convention.WithBeanFactory(builder.Factory(o.bld, o.cfg)),
			convention.WithLogger(o.logger),
		)
		o.updateDelegates("convention")
	}
	return o.convention
}

// Parent returns the current parent delegate, or nil.
func (o *Object) Parent() apis.Delegate { return o.parent }

// SetParent replaces the parent delegate. Views already handed out observe
// the new parent.
func (o *Object) SetParent(parent apis.Delegate) {
	o.parent = parent
	o.updateDelegates("parent")
}

// AddObject installs d in the hook slot named by loc, replacing any
// previous occupant.
func (o *Object) AddObject(d apis.Delegate, loc Location) error {
	switch loc {
	case BeforeConvention:
		o.before = d
	case AfterConvention:
		o.after = d
	default:
		return fmt.Errorf("extensible: unsupported location %v", loc)
	}
	o.updateDelegates(loc.String())
	return nil
}

// Inheritable returns the read-only view children of this object inherit.
// The same view is returned on every call.
func (o *Object) Inheritable() *InheritedView {
	if o.inherited == nil {
		if o.inheritable == nil {
			o.inheritable = new([inhCount]apis.Delegate)
			o.fillInheritable()
		}
		o.inherited = newInheritedView(o, o.inheritable[:])
	}
	return o.inherited
}

func (o *Object) conventionsView() apis.Delegate {
	if o.convention == nil {
		return nil
	}
	return o.convention.AsDelegate()
}

func (o *Object) fillObjects() {
	o.objects[slotSelf] = o.self
	o.objects[slotExtra] = extprops.NewAdapter(o.ExtraProperties())
	o.objects[slotBefore] = o.before
	o.objects[slotExtensions] = o.extensions.AsDelegate()
	o.objects[slotConventions] = o.conventionsView()
	o.objects[slotAfter] = o.after
	o.objects[slotParent] = o.parent
}

func (o *Object) fillUpdates() {
	*o.updates = *o.objects
	o.updates[slotParent] = nil
}

func (o *Object) fillInheritable() {
	o.inheritable[inhExtra] = extprops.NewAdapter(o.ExtraProperties())
	o.inheritable[inhBefore] = o.before
	o.inheritable[inhExtensions] = o.extensions.AsDelegate()
	o.inheritable[inhConventions] = o.conventionsView()
	o.inheritable[inhParent] = o.parent
}

// updateDelegates rewrites every allocated slot array in place.
func (o *Object) updateDelegates(reason string) {
	if o.objects != nil {
		o.fillObjects()
		o.fillUpdates()
	}
	if o.inheritable != nil {
		o.fillInheritable()
	}
	o.logger.Debug("extensible: delegates rebuilt",
		slog.String("object", o.DisplayName()),
		slog.String("reason", reason),
	)
}

func (o *Object) chain() *resolver.Composite {
	if o.full == nil {
		if o.objects == nil {
			o.objects = new([slotCount]apis.Delegate)
			o.updates = new([slotCount]apis.Delegate)
			o.fillObjects()
			o.fillUpdates()
		}
		o.full = resolver.New(o.objects[:],
			resolver.WithWriteDelegates(o.updates[:]),
			resolver.WithDisplayName(o.DisplayName),
			resolver.WithPropertyMethods(o.cfg.PropertyMethods),
		)
	}
	return o.full
}

// DisplayName implements apis.Delegate.
func (o *Object) DisplayName() string {
	if o.display != "" {
		return o.display
	}
	if o.self != nil {
		return o.self.DisplayName()
	}
	return "object"
}

// HasProperty implements apis.Delegate.
func (o *Object) HasProperty(name string) bool { return o.chain().HasProperty(name) }

// TryGet implements apis.Delegate.
func (o *Object) TryGet(name string) (any, bool) { return o.chain().TryGet(name) }

// TrySet implements apis.Delegate. The parent never receives writes.
func (o *Object) TrySet(name string, value any) (bool, error) {
	return o.chain().TrySet(name, value)
}

// Properties implements apis.Delegate.
func (o *Object) Properties() map[string]any { return o.chain().Properties() }

// HasMethod implements apis.Delegate.
func (o *Object) HasMethod(name string, args ...any) bool {
	return o.chain().HasMethod(name, args...)
}

// TryInvoke implements apis.Delegate.
func (o *Object) TryInvoke(name string, args ...any) (any, bool, error) {
	return o.chain().TryInvoke(name, args...)
}

// Property implements apis.Resolver.
func (o *Object) Property(name string) (any, error) { return o.chain().Property(name) }

// SetProperty implements apis.Resolver.
func (o *Object) SetProperty(name string, value any) error {
	return o.chain().SetProperty(name, value)
}

// InvokeMethod implements apis.Resolver.
func (o *Object) InvokeMethod(name string, args ...any) (any, error) {
	return o.chain().InvokeMethod(name, args...)
}
