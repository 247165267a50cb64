package component

import (
	"iter"
	"log/slog"
	"strconv"
	"strings"
)

// Kind identifies a category of parameter-aware [Member].
//
// The set of kinds is closed: adding one means adding a constant below and
// a case to each switch in this file and in [NewMember].
type Kind int

const (
	KindRegister  Kind = iota // register
	KindInterface             // interface

	kindCount
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindRegister:
		return "register"
	case KindInterface:
		return "interface"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Field returns the name of the expression a member of kind k carries,
// e.g. "address" for registers.
func (k Kind) Field() string {
	switch k {
	case KindRegister:
		return "address"
	case KindInterface:
		return "offset"
	default:
		return "expression"
	}
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool { return k >= 0 && k < kindCount }

// ParseKind parses the name of a kind, case-insensitively.
// Plural forms ("registers") are accepted.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	for k := range Kinds() {
		if s == k.String() || s == k.String()+"s" {
			return k, nil
		}
	}

	return 0, ErrUnknownKind.With(slog.String("kind", s))
}

// Kinds returns an iterator over all defined kinds in enumeration order.
func Kinds() iter.Seq[Kind] {
	return func(yield func(Kind) bool) {
		for k := range kindCount {
			if !yield(k) {
				return
			}
		}
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}

	*k = v

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, ErrUnknownKind.With(slog.Int("kind", int(k)))
	}

	return []byte(k.String()), nil
}
