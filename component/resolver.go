package component

import (
	"cmp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Resolver substitutes parameter values into member expressions.
//
// Substitution is textual; no arithmetic is performed and any text is
// accepted. A parameter name is replaced wherever it occurs as a whole
// token: an edge of the name made of identifier characters must not be
// adjacent to another identifier character in the expression, so BASE is
// replaced in "BASE+4" but not in "BASE2", "0xBASE" or "BASEé".
// Identifier characters are underscore and any Unicode letter or digit.
//
// The expression is scanned once, left to right, and replacement text is
// never rescanned. A value that happens to contain another parameter's name
// is therefore emitted verbatim.
type Resolver struct {
	value map[string]string
	names []string // longest first, so overlapping names prefer the longer
}

// NewResolver returns a Resolver over the given bindings. If a name appears
// more than once, the first binding wins.
func NewResolver(bindings []Parameter) *Resolver {
	r := &Resolver{value: make(map[string]string, len(bindings))}

	for _, b := range bindings {
		if b.name == "" {
			continue
		}

		if _, ok := r.value[b.name]; ok {
			continue
		}

		r.value[b.name] = b.value
		r.names = append(r.names, b.name)
	}

	slices.SortStableFunc(r.names, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})

	return r
}

// Resolve returns expr with every parameter token replaced by its value.
func (r *Resolver) Resolve(expr string) string {
	if len(r.names) == 0 || expr == "" {
		return expr
	}

	var (
		sb   strings.Builder
		last int // start of pending unmatched text
	)

	for i := 0; i < len(expr); {
		name, ok := r.match(expr, i)
		if !ok {
			i++

			continue
		}

		sb.WriteString(expr[last:i])
		sb.WriteString(r.value[name])

		i += len(name)
		last = i
	}

	if last == 0 {
		return expr
	}

	sb.WriteString(expr[last:])

	return sb.String()
}

// ResolveAll resolves the expression of each member and returns the results
// keyed by member name. A later member replaces an earlier one of the same
// name.
func (r *Resolver) ResolveAll(members []Member) map[string]string {
	out := make(map[string]string, len(members))

	for _, m := range members {
		out[m.Name()] = r.Resolve(m.Expression())
	}

	return out
}

// match returns the longest parameter name that occurs as a token at
// position i of expr.
func (r *Resolver) match(expr string, i int) (string, bool) {
	for _, name := range r.names {
		if !strings.HasPrefix(expr[i:], name) {
			continue
		}

		first, _ := utf8.DecodeRuneInString(name)
		if prev, _ := utf8.DecodeLastRuneInString(expr[:i]); isIdentRune(first) && isIdentRune(prev) {
			continue
		}

		end := i + len(name)
		last, _ := utf8.DecodeLastRuneInString(name)

		if next, _ := utf8.DecodeRuneInString(expr[end:]); isIdentRune(last) && isIdentRune(next) {
			continue
		}

		return name, true
	}

	return "", false
}

// isIdentRune reports whether r can be part of an identifier. The
// utf8.RuneError returned for an empty string is not.
func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
