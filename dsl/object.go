package dsl

import (
	"context"

	xmlu "github.com/mcef/xmlu"
	"github.com/mcef/xmlu/i18n"
)

type fieldDecl struct {
	key string
	ad  AnyAdapter
	tag string // explicit match-name override; "" defers to the adapter or field name
}

type objectBuilder struct {
	fields    []fieldDecl
	overwrite bool
	text      func(string) (any, error)
}

// Object creates a new object builder. Fields resolve in declaration order;
// duplicate handling defaults to first-wins.
func Object() *objectBuilder { return &objectBuilder{} }

// Field registers a field with its adapter. Re-registering a key replaces the
// earlier declaration in place, keeping its position.
func (b *objectBuilder) Field(name string, ad AnyAdapter) *fieldStep {
	for i := range b.fields {
		if b.fields[i].key == name {
			b.fields[i] = fieldDecl{key: name, ad: ad}
			return &fieldStep{b: b, idx: i}
		}
	}
	b.fields = append(b.fields, fieldDecl{key: name, ad: ad})
	return &fieldStep{b: b, idx: len(b.fields) - 1}
}

type fieldStep struct {
	b   *objectBuilder
	idx int
}

// Tag overrides the match name of the current field: the child tag a
// deferred field matches, or the attribute name of an Attr field.
func (f *fieldStep) Tag(name string) *objectBuilder {
	f.b.fields[f.idx].tag = name
	return f.b
}

func (f *fieldStep) Field(name string, ad AnyAdapter) *fieldStep { return f.b.Field(name, ad) }
func (f *fieldStep) Overwrite() *objectBuilder                   { return f.b.Overwrite() }
func (f *fieldStep) Text(conv func(string) (any, error)) *objectBuilder {
	return f.b.Text(conv)
}
func (f *fieldStep) Build() (xmlu.Schema[*xmlu.Obj], error) { return f.b.Build() }
func (f *fieldStep) MustBuild() xmlu.Schema[*xmlu.Obj]      { return f.b.MustBuild() }

// objectRef lets a builder chain end on either the builder itself or the
// field step of the last Field call; BuildInto and Bind accept both.
type objectRef interface {
	builder() *objectBuilder
}

func (b *objectBuilder) builder() *objectBuilder { return b }
func (f *fieldStep) builder() *objectBuilder     { return f.b }

// Overwrite switches duplicate handling to last-wins: a later field or a
// later matching child replaces the value already stored under the same
// output key.
func (b *objectBuilder) Overwrite() *objectBuilder { b.overwrite = true; return b }

// Text configures the unconditional text converter: after children are
// processed, the node's own text is converted into the reserved TextKey slot.
// Absent text stores nil there regardless of any none policy, since opting in
// to the slot is explicit.
func (b *objectBuilder) Text(conv func(string) (any, error)) *objectBuilder {
	b.text = conv
	return b
}

// binding is the immutable record a field declaration resolves into at Build
// time. Resolving here, rather than lazily on first use, keeps built schemas
// free of shared mutable state.
type binding struct {
	key   string // output key on the sink
	match string // tag (or attribute name) this binding resolves against
	class bindClass
	conv  func(ctx context.Context, n xmlu.Node) (any, error)
}

func (b *objectBuilder) bindings() ([]binding, error) {
	out := make([]binding, 0, len(b.fields))
	for _, f := range b.fields {
		match := f.tag
		if match == "" {
			match = f.ad.name
		}
		if match == "" {
			match = f.key
		}
		bd := binding{key: f.key, match: match, class: f.ad.class, conv: f.ad.convert}
		switch f.ad.class {
		case bindAttr:
			bd.conv = f.ad.attr.withName(match).Convert
		case bindSame:
			if f.ad.name == "" {
				return nil, xmlu.Issues{xmlu.Issue{
					Path:    "/" + f.key,
					Code:    xmlu.CodeParseError,
					Message: i18n.T(xmlu.CodeParseError, nil),
					Hint:    "many field requires a filter name",
				}}
			}
		default:
			if bd.conv == nil {
				return nil, xmlu.Issues{xmlu.Issue{
					Path:    "/" + f.key,
					Code:    xmlu.CodeParseError,
					Message: i18n.T(xmlu.CodeParseError, nil),
					Hint:    "field adapter has no schema",
				}}
			}
		}
		out = append(out, bd)
	}
	return out, nil
}

// Build validates the builder and returns a schema producing the default
// ordered aggregate.
func (b *objectBuilder) Build() (xmlu.Schema[*xmlu.Obj], error) {
	return BuildInto(b, xmlu.NewObj)
}

// MustBuild is like Build but panics on error.
func (b *objectBuilder) MustBuild() xmlu.Schema[*xmlu.Obj] {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// BuildInto validates the builder and returns a schema filling sinks produced
// by the factory, one per conversion (free function because methods cannot
// introduce type parameters).
func BuildInto[S xmlu.Sink](ref objectRef, factory func() S) (xmlu.Schema[S], error) {
	b := ref.builder()
	bds, err := b.bindings()
	if err != nil {
		return nil, err
	}
	return &objectSchema[S]{bindings: bds, overwrite: b.overwrite, text: b.text, factory: factory}, nil
}

type objectSchema[S xmlu.Sink] struct {
	bindings  []binding
	overwrite bool
	text      func(string) (any, error)
	factory   func() S
}

// Convert partitions the bindings by class, resolves immediate bindings
// against the current node in declaration order, then scans the children once
// in document order against the pending match table. Each child is inspected
// exactly once; unmatched children are extra data and are skipped silently.
func (o *objectSchema[S]) Convert(ctx context.Context, n xmlu.Node) (S, error) {
	var zero S
	out := o.factory()
	pending := make(map[string]binding, len(o.bindings))
	for _, bd := range o.bindings {
		if !o.overwrite && out.Has(bd.key) {
			continue
		}
		switch bd.class {
		case bindAttr, bindSame:
			v, err := bd.conv(ctx, n)
			if err != nil {
				return zero, xmlu.RebaseIssues("/"+bd.key, err)
			}
			out.Set(bd.key, v)
		default:
			// Later declarations with the same match name replace earlier
			// ones in the table.
			pending[bd.match] = bd
		}
	}
	for _, c := range n.Children() {
		bd, ok := pending[c.Tag()]
		if !ok {
			continue
		}
		if !o.overwrite && out.Has(bd.key) {
			continue
		}
		v, err := bd.conv(ctx, c)
		if err != nil {
			return zero, xmlu.RebaseIssues("/"+c.Tag(), err)
		}
		out.Set(bd.key, v)
	}
	if o.text != nil {
		if txt, ok := n.Text(); ok {
			v, err := o.text(txt)
			if err != nil {
				return zero, xmlu.RebaseIssues("/"+xmlu.TextKey, err)
			}
			out.Set(xmlu.TextKey, v)
		} else {
			out.Set(xmlu.TextKey, nil)
		}
	}
	return out, nil
}
