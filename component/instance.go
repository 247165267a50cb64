package component

import (
	"log/slog"
	"maps"

	"github.com/ardnew/hwsys/log"
)

// Instance is a named use of a shared [Component] definition with its own
// parameter overrides.
//
// The override map belongs to the Instance. Instance methods are not
// synchronized; callers that mutate one Instance from several goroutines
// must serialize those calls themselves.
type Instance struct {
	name      string
	def       *Component
	overrides map[string]string
	config
}

// NewInstance returns an Instance of def named name. Creating an Instance
// seals def against further modification.
func NewInstance(name string, def *Component, opts ...Option) *Instance {
	def.seal()

	return &Instance{
		name:      name,
		def:       def,
		overrides: make(map[string]string),
		config:    apply(config{}, opts...),
	}
}

// Name returns the instance name.
func (i *Instance) Name() string { return i.name }

// Definition returns the shared component definition.
func (i *Instance) Definition() *Component { return i.def }

// Override sets the value of parameter name for this instance only,
// replacing any earlier override. It fails with [ErrUnknownParameter],
// recording nothing, if the definition does not declare name.
func (i *Instance) Override(name, value string) error {
	if _, ok := i.def.Parameter(name); !ok {
		return i.def.unknownParameter(name).
			With(slog.String("instance", i.name))
	}

	i.overrides[name] = value

	i.logger.Trace("parameter override",
		slog.String("instance", i.name),
		slog.String("parameter", name),
		slog.String("value", value),
	)

	return nil
}

// Value returns the effective value of parameter name: the override if one
// was set, otherwise the definition default.
func (i *Instance) Value(name string) (string, error) {
	p, ok := i.def.Parameter(name)
	if !ok {
		return "", i.def.unknownParameter(name).
			With(slog.String("instance", i.name))
	}

	if v, ok := i.overrides[name]; ok {
		return v, nil
	}

	return p.value, nil
}

// Overrides returns a copy of the instance's overrides.
func (i *Instance) Overrides() map[string]string {
	return maps.Clone(i.overrides)
}

// Bindings returns the effective value of every definition parameter in
// declaration order. It is recomputed on each call.
func (i *Instance) Bindings() []Parameter {
	params := i.def.Parameters()

	for n, p := range params {
		if v, ok := i.overrides[p.name]; ok {
			params[n].value = v
		}
	}

	return params
}

// Resolve returns the resolved expression of every member of kind, keyed by
// member name.
func (i *Instance) Resolve(kind Kind) map[string]string {
	members := i.def.Members(kind)
	resolved := NewResolver(i.Bindings()).ResolveAll(members)

	if !i.logger.LevelEnabled(log.LevelTrace) {
		return resolved
	}

	logger := i.logger.With(
		slog.String("instance", i.name),
		slog.String("kind", kind.String()),
	)

	for _, m := range members {
		logger.Trace("resolve member",
			slog.String("member", m.Name()),
			slog.String("expression", m.Expression()),
			slog.String("value", resolved[m.Name()]),
		)
	}

	return resolved
}

// ResolveAll resolves every kind that has members.
func (i *Instance) ResolveAll() map[Kind]map[string]string {
	r := NewResolver(i.Bindings())
	out := make(map[Kind]map[string]string)

	for _, k := range i.def.Kinds() {
		out[k] = r.ResolveAll(i.def.Members(k))
	}

	return out
}

// LogValue implements slog.LogValuer.
func (i *Instance) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", i.name),
		slog.String("component", i.def.name),
		slog.Int("overrides", len(i.overrides)),
	)
}
