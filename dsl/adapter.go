package dsl

import (
	"context"

	xmlu "github.com/mcef/xmlu"
)

// bindClass partitions a registered field by how the enclosing Object resolves
// it: against the node it is itself bound to, or against a matched child.
type bindClass int

const (
	bindChild bindClass = iota // deferred: matched against a child tag during the scan
	bindAttr                   // immediate: attribute of the current node
	bindSame                   // immediate: tag-filtered children of the current node
)

// AnyAdapter adapts a typed Schema to an any-typed field adapter for the
// Object builder, tagging it with its binding class. Adapters are values;
// chaining methods return modified copies.
type AnyAdapter struct {
	convert func(ctx context.Context, n xmlu.Node) (any, error)
	class   bindClass
	name    string      // explicit match/filter name; "" means "use the field name"
	attr    *AttrSchema // set for bindAttr; completed with its name at Build time
	orig    any
}

// Of wraps a typed schema as a deferred-bind field adapter: the enclosing
// Object resolves it against the child whose tag matches the field name (or
// the Tag override).
func Of[T any](s xmlu.Schema[T]) AnyAdapter {
	return AnyAdapter{
		class:   bindChild,
		convert: func(ctx context.Context, n xmlu.Node) (any, error) { return s.Convert(ctx, n) },
		orig:    s,
	}
}

// Orig returns the original underlying schema used to create this adapter,
// when there is one. It is intended for advanced integrations.
func (ad AnyAdapter) Orig() any { return ad.orig }

// Attr returns an immediate-bind adapter reading an attribute of the node the
// enclosing Object converts. The attribute name defaults to the field name;
// a Tag override on the field changes it.
func Attr() AnyAdapter {
	return AnyAdapter{class: bindAttr, attr: &AttrSchema{none: true}}
}

// As injects the string converter of an Attr adapter (default: identity).
// It has no effect on other adapter kinds.
func (ad AnyAdapter) As(fn func(string) (any, error)) AnyAdapter {
	if ad.attr == nil {
		return ad
	}
	out := ad
	cp := *ad.attr
	cp.conv = fn
	out.attr = &cp
	return out
}

// Strict disables the none policy of an Attr adapter: an absent attribute is
// handed to the converter as an empty string instead of yielding nil.
// It has no effect on other adapter kinds.
func (ad AnyAdapter) Strict() AnyAdapter {
	if ad.attr == nil {
		return ad
	}
	out := ad
	cp := *ad.attr
	cp.none = false
	out.attr = &cp
	return out
}

// ManyOf wraps an element schema as an immediate-bind adapter converting the
// tag-filtered children of the node the enclosing Object is bound to. Unlike
// ListOf it never targets a child container node, so the filter name is
// mandatory.
func ManyOf[E any](elem xmlu.Schema[E], name string) AnyAdapter {
	m := Many(elem, name)
	return AnyAdapter{
		class:   bindSame,
		name:    name,
		convert: func(ctx context.Context, n xmlu.Node) (any, error) { return m.Convert(ctx, n) },
		orig:    m,
	}
}

// ---- deferred-bind sugar over the typed schemas ----

// IntOf adapts Int() for field registration.
func IntOf() AnyAdapter { return Of[*int64](Int()) }

// FloatOf adapts Float() for field registration.
func FloatOf() AnyAdapter { return Of[*float64](Float()) }

// ComplexOf adapts Complex() for field registration.
func ComplexOf() AnyAdapter { return Of[*complex128](Complex()) }

// StrOf adapts Str() for field registration.
func StrOf() AnyAdapter { return Of[*string](Str()) }

// BoolOf adapts Bool() for field registration.
func BoolOf() AnyAdapter { return Of[*bool](Bool()) }

// ElementOf adapts Element() for field registration.
func ElementOf() AnyAdapter { return Of[xmlu.Node](Element()) }

// ValueOf adapts Value(v) for field registration.
func ValueOf(v any) AnyAdapter { return Of[any](Value(v)) }

// ListOf adapts List(elem) for field registration.
func ListOf[E any](elem xmlu.Schema[E]) AnyAdapter { return Of[[]E](List(elem)) }

// DictOf adapts Dict(elem) for field registration.
func DictOf[V any](elem xmlu.Schema[V]) AnyAdapter { return Of[map[string]V](Dict(elem)) }
