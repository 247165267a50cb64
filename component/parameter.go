package component

import "log/slog"

// Parameter is a named string value declared by a [Component].
//
// A Parameter is never modified after construction. Instance-level values
// are recorded as overrides on the [Instance] instead.
type Parameter struct {
	name  string
	value string
}

// NewParameter returns a Parameter with the given name and default value.
func NewParameter(name, value string) Parameter {
	return Parameter{name: name, value: value}
}

// Name returns the parameter name.
func (p Parameter) Name() string { return p.name }

// Value returns the parameter value.
func (p Parameter) Value() string { return p.value }

// LogValue implements slog.LogValuer.
func (p Parameter) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", p.name),
		slog.String("value", p.value),
	)
}

// parameterNames returns the names of params in declaration order.
func parameterNames(params []Parameter) []string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.name
	}

	return names
}
