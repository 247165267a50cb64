package browse

import "github.com/ardnew/hwsys/component"

// ErrNoRows is returned when there is nothing to browse.
var ErrNoRows = component.NewError("no members to browse")
