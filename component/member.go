package component

import "log/slog"

// Member is anything declared by a [Component] whose value is an expression
// that may reference the component's parameters by name.
//
// Expression returns the raw, unresolved text.
type Member interface {
	Name() string
	Expression() string
}

// Register is a component register located at an address expression.
type Register struct {
	name    string
	address string
}

// NewRegister returns a Register with the given name and address expression.
func NewRegister(name, address string) Register {
	return Register{name: name, address: address}
}

func (r Register) Name() string       { return r.name }
func (r Register) Expression() string { return r.address }

// Address returns the unresolved address expression.
func (r Register) Address() string { return r.address }

// Interface is a bus interface located at an offset expression.
type Interface struct {
	name   string
	offset string
}

// NewInterface returns an Interface with the given name and offset
// expression.
func NewInterface(name, offset string) Interface {
	return Interface{name: name, offset: offset}
}

func (i Interface) Name() string       { return i.name }
func (i Interface) Expression() string { return i.offset }

// Offset returns the unresolved offset expression.
func (i Interface) Offset() string { return i.offset }

// NewMember constructs the member variant for kind.
func NewMember(kind Kind, name, expr string) (Member, error) {
	switch kind {
	case KindRegister:
		return NewRegister(name, expr), nil
	case KindInterface:
		return NewInterface(name, expr), nil
	default:
		return nil, ErrUnknownKind.With(
			slog.String("kind", kind.String()),
			slog.String("member", name),
		)
	}
}
