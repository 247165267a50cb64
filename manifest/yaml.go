package manifest

import (
	"log/slog"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
)

func decodeYAML(src []byte, source string) (*document, error) {
	var doc document

	err := yaml.UnmarshalWithOptions(src, &doc, yaml.DisallowUnknownField())
	if err != nil {
		return nil, ErrDecode.Wrap(err).With(
			slog.String("source", source),
			slog.String("format", FormatYAML.String()),
		)
	}

	return &doc, nil
}

// scalar is text taken from a YAML scalar exactly as written. Plain scalars
// such as 0x1000, 010 or 1_000 keep their spelling instead of being read
// as numbers and reformatted.
type scalar string

// UnmarshalYAML implements yaml.NodeUnmarshaler.
func (s *scalar) UnmarshalYAML(node ast.Node) error {
	switch n := node.(type) {
	case *ast.TagNode:
		return s.UnmarshalYAML(n.Value)

	case *ast.NullNode:
		*s = ""

	case *ast.StringNode:
		*s = scalar(n.Value)

	case *ast.LiteralNode:
		*s = scalar(n.Value.Value)

	case ast.ScalarNode:
		*s = scalar(n.GetToken().Value)

	default:
		return ErrNotScalar.With(
			slog.String("path", node.GetPath()),
			slog.String("node", node.Type().String()),
		)
	}

	return nil
}
