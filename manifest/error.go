package manifest

import "github.com/ardnew/hwsys/component"

// Predefined errors (sentinel values).
var (
	ErrDecode           = component.NewError("invalid manifest")
	ErrUnknownFormat    = component.NewError("unknown manifest format")
	ErrUnknownComponent = component.NewError("unknown component")
	ErrMissingName      = component.NewError("missing name")
	ErrDuplicateName    = component.NewError("duplicate name")
	ErrNotScalar        = component.NewError("value is not a scalar")
)
