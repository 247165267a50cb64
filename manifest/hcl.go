package manifest

import (
	"log/slog"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

func decodeHCL(src []byte, source string) (*document, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, source)
	if diags.HasErrors() {
		return nil, diagnosticError(diags, source)
	}

	var doc document

	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return nil, diagnosticError(diags, source)
	}

	return &doc, nil
}

// diagnosticError converts HCL diagnostics into an [ErrDecode] carrying the
// position of the first error.
func diagnosticError(diags hcl.Diagnostics, source string) error {
	attrs := []slog.Attr{
		slog.String("source", source),
		slog.String("format", FormatHCL.String()),
	}

	for _, d := range diags {
		if d.Severity != hcl.DiagError || d.Subject == nil {
			continue
		}

		attrs = append(attrs,
			slog.Int("line", d.Subject.Start.Line),
			slog.Int("column", d.Subject.Start.Column),
		)

		break
	}

	return ErrDecode.Wrap(diags).With(attrs...)
}
