package dsl

import (
	"context"
	"strconv"

	xmlu "github.com/mcef/xmlu"
)

// ListSchema converts the children of the node it is given into an ordered
// slice, optionally keeping only children with a matching tag. A list is
// never an absence value: no matching children means an empty slice.
type ListSchema[E any] struct {
	elem xmlu.Schema[E]
	tag  string
}

// List returns a list schema over the given element schema, converting every
// child in document order.
func List[E any](elem xmlu.Schema[E]) *ListSchema[E] { return &ListSchema[E]{elem: elem} }

// Tag restricts the list to children whose tag equals the filter.
func (l *ListSchema[E]) Tag(tag string) *ListSchema[E] { l.tag = tag; return l }

func (l *ListSchema[E]) Convert(ctx context.Context, n xmlu.Node) ([]E, error) {
	out := []E{}
	for _, c := range n.Children() {
		if l.tag != "" && c.Tag() != l.tag {
			continue
		}
		ev, err := l.elem.Convert(ctx, c)
		if err != nil {
			return nil, xmlu.RebaseIssues("/"+strconv.Itoa(len(out)), err)
		}
		out = append(out, ev)
	}
	return out, nil
}

// ManySchema is behaviorally a tag-filtered list, but its contract is to run
// against the same node its enclosing Object converts rather than a matched
// child container; the filter name is therefore mandatory.
type ManySchema[E any] struct {
	elem xmlu.Schema[E]
	name string
}

// Many returns a same-node list schema keeping children whose tag equals name.
func Many[E any](elem xmlu.Schema[E], name string) *ManySchema[E] {
	return &ManySchema[E]{elem: elem, name: name}
}

func (m *ManySchema[E]) Convert(ctx context.Context, n xmlu.Node) ([]E, error) {
	out := []E{}
	for _, c := range n.Children() {
		if c.Tag() != m.name {
			continue
		}
		ev, err := m.elem.Convert(ctx, c)
		if err != nil {
			return nil, xmlu.RebaseIssues("/"+strconv.Itoa(len(out)), err)
		}
		out = append(out, ev)
	}
	return out, nil
}
