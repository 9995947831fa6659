package xmltree

import (
	"errors"

	"gopkg.in/yaml.v3"
)

// DecodeYAML builds an element tree from a single YAML document so that
// tree-driven schemas can run over YAML as well. Mapping keys become child
// element tags, scalars become text, and a sequence value repeats its key
// once per item. YAML has no attribute concept, so attribute lookups over the
// resulting tree always miss.
func DecodeYAML(data []byte, root string) (*Element, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	el := &Element{Name: root}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return el, nil
	}
	if err := fillFromYAML(el, doc.Content[0]); err != nil {
		return nil, err
	}
	return el, nil
}

func fillFromYAML(el *Element, n *yaml.Node) error {
	n = resolveAlias(n)
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Tag != "!!null" {
			el.SetText(n.Value)
		}
		return nil
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			val := resolveAlias(n.Content[i+1])
			if val.Kind == yaml.SequenceNode {
				for _, item := range val.Content {
					child := &Element{Name: key}
					if err := fillFromYAML(child, item); err != nil {
						return err
					}
					el.Nodes = append(el.Nodes, child)
				}
				continue
			}
			child := &Element{Name: key}
			if err := fillFromYAML(child, val); err != nil {
				return err
			}
			el.Nodes = append(el.Nodes, child)
		}
		return nil
	case yaml.SequenceNode:
		return errors.New("xmltree: sequence without an enclosing key has no tag to repeat")
	default:
		return nil
	}
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}
