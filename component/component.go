package component

import (
	"log/slog"
	"slices"
	"sync/atomic"
)

// Component is a reusable hardware definition: a set of parameters and the
// parameter-aware members that reference them, grouped by [Kind].
//
// A Component is populated with [Component.AddParameter] and
// [Component.AddMember] and is sealed when the first [Instance] of it is
// created. A sealed Component is read-only and may be shared freely.
type Component struct {
	name    string
	params  []Parameter
	members map[Kind][]Member
	sealed  atomic.Bool
}

// NewComponent returns a Component declaring the given parameters in order.
// It fails with [ErrDuplicateParameter] if two parameters share a name.
func NewComponent(name string, params ...Parameter) (*Component, error) {
	c := &Component{
		name:    name,
		members: make(map[Kind][]Member),
	}

	for _, p := range params {
		if err := c.AddParameter(p); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Name returns the component name.
func (c *Component) Name() string { return c.name }

// Sealed reports whether c has been shared by an [Instance].
func (c *Component) Sealed() bool { return c.sealed.Load() }

func (c *Component) seal() { c.sealed.Store(true) }

// AddParameter appends p to the component's parameters.
func (c *Component) AddParameter(p Parameter) error {
	if c.Sealed() {
		return ErrSealed.With(
			slog.String("component", c.name),
			slog.String("parameter", p.name),
		)
	}

	if _, ok := c.Parameter(p.name); ok {
		return ErrDuplicateParameter.With(
			slog.String("component", c.name),
			slog.String("parameter", p.name),
		)
	}

	c.params = append(c.params, p)

	return nil
}

// AddMember appends m to the members of the given kind.
//
// Member names are not required to be unique. When two members of one kind
// share a name, resolution keeps only the later one.
func (c *Component) AddMember(kind Kind, m Member) error {
	if !kind.Valid() {
		return ErrUnknownKind.With(
			slog.String("component", c.name),
			slog.String("kind", kind.String()),
		)
	}

	if c.Sealed() {
		return ErrSealed.With(
			slog.String("component", c.name),
			slog.String("member", m.Name()),
		)
	}

	if c.members == nil {
		c.members = make(map[Kind][]Member)
	}

	c.members[kind] = append(c.members[kind], m)

	return nil
}

// Members returns the members of the given kind in the order they were
// added. The result is empty, not an error, for a kind with no members.
func (c *Component) Members(kind Kind) []Member {
	return slices.Clone(c.members[kind])
}

// Kinds returns the kinds that have at least one member, in enumeration
// order.
func (c *Component) Kinds() []Kind {
	var kinds []Kind

	for k := range Kinds() {
		if len(c.members[k]) > 0 {
			kinds = append(kinds, k)
		}
	}

	return kinds
}

// Parameter returns the first parameter named name.
func (c *Component) Parameter(name string) (Parameter, bool) {
	i := slices.IndexFunc(c.params, func(p Parameter) bool {
		return p.name == name
	})
	if i < 0 {
		return Parameter{}, false
	}

	return c.params[i], true
}

// Parameters returns the declared parameters in order.
func (c *Component) Parameters() []Parameter {
	return slices.Clone(c.params)
}

// unknownParameter builds the error returned when name is not declared by c.
func (c *Component) unknownParameter(name string) *Error {
	attrs := []slog.Attr{
		slog.String("component", c.name),
		slog.String("parameter", name),
	}

	if s := suggest(name, parameterNames(c.params)); len(s) > 0 {
		attrs = append(attrs, slog.Any("suggestions", s))
	}

	return ErrUnknownParameter.With(attrs...)
}
