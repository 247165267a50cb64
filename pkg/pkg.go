//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

// Version is the semantic version of the hwsys module embedded at build
// time. It is printed by the CLI's --version flag.
//
//go:embed VERSION
var Version string

const (
	// Name is the canonical command and module identifier used across the
	// project. For example, it appears in help text and default config paths.
	Name = "hwsys"
	// Description is a short, human-readable summary of the project used in
	// help output and documentation.
	Description = "Parameterized hardware component resolver"
)

// AuthorInfo represents an individual author's name and email address.
type AuthorInfo struct {
	// Name is the author's preferred name or handle.
	Name string
	// Email is the author's contact email address.
	Email string
}

// String returns the author as "Name <Email>".
func (a AuthorInfo) String() string {
	return a.Name + " <" + a.Email + ">"
}

// Author lists the primary author(s) of the project for display in metadata.
//
//nolint:gochecknoglobals
var Author = []AuthorInfo{
	{"ardnew", "andrew@ardnew.com"},
}

// VersionInfo returns the text printed by --version: the name and version
// on the first line, followed by one line per author.
func VersionInfo() string {
	var b strings.Builder

	b.WriteString(Name + " " + strings.TrimSpace(Version))

	for _, a := range Author {
		b.WriteString("\n" + a.String())
	}

	return b.String()
}
