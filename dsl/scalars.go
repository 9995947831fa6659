package dsl

import (
	"context"
	"strconv"
	"strings"

	xmlu "github.com/mcef/xmlu"
	"github.com/mcef/xmlu/i18n"
)

// text resolves a leaf's source text under the none policy: absent text yields
// done=true (the caller returns nil) when none is on, or an empty string for
// the parser when it is off.
func text(n xmlu.Node, none bool) (s string, done bool) {
	s, ok := n.Text()
	if !ok {
		if none {
			return "", true
		}
		return "", false
	}
	return s, false
}

// IntSchema converts element text into an integer.
type IntSchema struct{ none bool }

// Int returns an integer leaf schema. Absent text converts to nil.
func Int() *IntSchema { return &IntSchema{none: true} }

// Strict hands absent text to the parser instead of yielding nil.
func (s *IntSchema) Strict() *IntSchema { s.none = false; return s }

func (s *IntSchema) Convert(ctx context.Context, n xmlu.Node) (*int64, error) {
	txt, done := text(n, s.none)
	if done {
		return nil, nil
	}
	v, err := strconv.ParseInt(strings.TrimSpace(txt), 10, 64)
	if err != nil {
		return nil, xmlu.Issues{xmlu.Issue{
			Path:    "/",
			Code:    xmlu.CodeInvalidNumber,
			Message: i18n.T(xmlu.CodeInvalidNumber, nil),
			Hint:    "integer text expected",
			Cause:   err,
		}}
	}
	return &v, nil
}

// FloatSchema converts element text into a floating point number.
type FloatSchema struct{ none bool }

// Float returns a float leaf schema. Absent text converts to nil.
func Float() *FloatSchema { return &FloatSchema{none: true} }

// Strict hands absent text to the parser instead of yielding nil.
func (s *FloatSchema) Strict() *FloatSchema { s.none = false; return s }

func (s *FloatSchema) Convert(ctx context.Context, n xmlu.Node) (*float64, error) {
	txt, done := text(n, s.none)
	if done {
		return nil, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(txt), 64)
	if err != nil {
		return nil, xmlu.Issues{xmlu.Issue{
			Path:    "/",
			Code:    xmlu.CodeInvalidNumber,
			Message: i18n.T(xmlu.CodeInvalidNumber, nil),
			Hint:    "float text expected",
			Cause:   err,
		}}
	}
	return &v, nil
}

// ComplexSchema converts element text into a complex number. "j" is accepted
// as the imaginary unit and rewritten to "i" before parsing.
type ComplexSchema struct{ none bool }

// Complex returns a complex leaf schema. Absent text converts to nil.
func Complex() *ComplexSchema { return &ComplexSchema{none: true} }

// Strict hands absent text to the parser instead of yielding nil.
func (s *ComplexSchema) Strict() *ComplexSchema { s.none = false; return s }

func (s *ComplexSchema) Convert(ctx context.Context, n xmlu.Node) (*complex128, error) {
	txt, done := text(n, s.none)
	if done {
		return nil, nil
	}
	txt = strings.TrimSpace(txt)
	txt = strings.ReplaceAll(txt, "j", "i")
	txt = strings.ReplaceAll(txt, "J", "i")
	v, err := strconv.ParseComplex(txt, 128)
	if err != nil {
		return nil, xmlu.Issues{xmlu.Issue{
			Path:    "/",
			Code:    xmlu.CodeInvalidComplex,
			Message: i18n.T(xmlu.CodeInvalidComplex, nil),
			Hint:    "complex text expected",
			Cause:   err,
		}}
	}
	return &v, nil
}

// StrSchema converts element text into a string.
type StrSchema struct {
	none  bool
	strip bool
}

// Str returns a string leaf schema. Absent text converts to nil; present text
// is returned verbatim unless Strip is chained.
func Str() *StrSchema { return &StrSchema{none: true} }

// Strict hands absent text to the parser instead of yielding nil, so an
// absent source produces an empty string.
func (s *StrSchema) Strict() *StrSchema { s.none = false; return s }

// Strip trims surrounding whitespace after the absence check.
func (s *StrSchema) Strip() *StrSchema { s.strip = true; return s }

func (s *StrSchema) Convert(ctx context.Context, n xmlu.Node) (*string, error) {
	txt, done := text(n, s.none)
	if done {
		return nil, nil
	}
	if s.strip {
		txt = strings.TrimSpace(txt)
	}
	return &txt, nil
}

// BoolSchema converts element text into a boolean. The parse is deliberately
// permissive and asymmetric: after trimming and lowering, membership in
// {"true", "t", "1", "yes", "y"} means true and anything else means false.
// Unrecognized text never raises; keep it that way for compatibility with
// consumers relying on the false fallback.
type BoolSchema struct{ none bool }

// Bool returns a boolean leaf schema. Absent text converts to nil.
func Bool() *BoolSchema { return &BoolSchema{none: true} }

// Strict hands absent text to the parser instead of yielding nil, so an
// absent source converts to false.
func (s *BoolSchema) Strict() *BoolSchema { s.none = false; return s }

func (s *BoolSchema) Convert(ctx context.Context, n xmlu.Node) (*bool, error) {
	txt, done := text(n, s.none)
	if done {
		return nil, nil
	}
	var v bool
	switch strings.ToLower(strings.TrimSpace(txt)) {
	case "true", "t", "1", "yes", "y":
		v = true
	}
	return &v, nil
}

// ElementSchema returns the matched node itself. It is the identity leaf and
// the only one with no none policy at all.
type ElementSchema struct{}

// Element returns the identity leaf schema.
func Element() xmlu.Schema[xmlu.Node] { return ElementSchema{} }

func (ElementSchema) Convert(ctx context.Context, n xmlu.Node) (xmlu.Node, error) { return n, nil }

// ValueSchema yields a constant captured at construction time, regardless of
// the node it is given.
type ValueSchema struct{ v any }

// Value returns a constant leaf schema.
func Value(v any) xmlu.Schema[any] { return ValueSchema{v: v} }

func (s ValueSchema) Convert(ctx context.Context, n xmlu.Node) (any, error) { return s.v, nil }
