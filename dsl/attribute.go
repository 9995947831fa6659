package dsl

import (
	"context"

	xmlu "github.com/mcef/xmlu"
	"github.com/mcef/xmlu/i18n"
)

// AttrSchema reads one named attribute of the node it is given and converts
// the raw string via an injected converter (default: identity pass-through).
// Standalone it always needs an explicit name (AttrOf); inside an Object the
// Attr adapter receives its name from the owning field at Build time.
type AttrSchema struct {
	name string
	conv func(string) (any, error)
	none bool
}

// AttrOf returns an attribute schema with an explicit attribute name. It
// operates on whatever node it is handed, so nested in an Object it reads the
// attribute of the matched child.
func AttrOf(name string) *AttrSchema { return &AttrSchema{name: name, none: true} }

// As injects the string converter (default: identity).
func (a *AttrSchema) As(fn func(string) (any, error)) *AttrSchema { a.conv = fn; return a }

// Strict hands an absent attribute to the converter as an empty string
// instead of yielding nil.
func (a *AttrSchema) Strict() *AttrSchema { a.none = false; return a }

// withName returns a copy bound to the given attribute name. The Object
// builder uses it to complete field-name-bound Attr adapters.
func (a *AttrSchema) withName(name string) *AttrSchema {
	cp := *a
	cp.name = name
	return &cp
}

func (a *AttrSchema) Convert(ctx context.Context, n xmlu.Node) (any, error) {
	s, ok := n.Attr(a.name)
	if !ok {
		if a.none {
			return nil, nil
		}
		s = ""
	}
	if a.conv == nil {
		return s, nil
	}
	v, err := a.conv(s)
	if err != nil {
		if iss, ok := xmlu.AsIssues(err); ok {
			return nil, iss
		}
		return nil, xmlu.Issues{xmlu.Issue{
			Path:    "/",
			Code:    xmlu.CodeParseError,
			Message: i18n.T(xmlu.CodeParseError, nil),
			Hint:    "attribute " + a.name,
			Cause:   err,
		}}
	}
	return v, nil
}
