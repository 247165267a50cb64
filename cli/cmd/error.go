package cmd

import "github.com/ardnew/hwsys/component"

// Predefined errors (sentinel values).
var (
	ErrNoSource         = component.NewError("no manifest file (use --file)")
	ErrSystemNotFound   = component.NewError("system not found")
	ErrInstanceNotFound = component.NewError("instance not found")
	ErrInvalidOverride  = component.NewError("invalid override (want INSTANCE.PARAMETER=VALUE)")
	ErrJSONMarshal      = component.NewError("marshal JSON")
	ErrYAMLMarshal      = component.NewError("marshal YAML")
	ErrTableRender      = component.NewError("render table")
	ErrWriteConfig      = component.NewError("write configuration file")
	ErrFileExists       = component.NewError("file exists (use --force to overwrite)")
)
