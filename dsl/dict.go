package dsl

import (
	"context"

	xmlu "github.com/mcef/xmlu"
)

// DictSchema converts the children of the node it is given into a tag-keyed
// map. Duplicate tags follow the overwrite policy: first-wins unless
// Overwrite is chained, in which case the last child with the tag wins.
type DictSchema[V any] struct {
	elem      xmlu.Schema[V]
	overwrite bool
}

// Dict returns a tag-keyed map schema over the given element schema.
func Dict[V any](elem xmlu.Schema[V]) *DictSchema[V] { return &DictSchema[V]{elem: elem} }

// Overwrite switches duplicate-tag handling to last-wins.
func (d *DictSchema[V]) Overwrite() *DictSchema[V] { d.overwrite = true; return d }

func (d *DictSchema[V]) Convert(ctx context.Context, n xmlu.Node) (map[string]V, error) {
	out := map[string]V{}
	for _, c := range n.Children() {
		tag := c.Tag()
		if !d.overwrite {
			if _, dup := out[tag]; dup {
				continue
			}
		}
		v, err := d.elem.Convert(ctx, c)
		if err != nil {
			return nil, xmlu.RebaseIssues("/"+tag, err)
		}
		out[tag] = v
	}
	return out, nil
}
