// Package xmltree provides the default tree implementation consumed by xmlu:
// a minimal ordered element tree decoded from XML text via encoding/xml.
package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
)

// Attr is a single name/value attribute.
type Attr struct {
	Name  string
	Value string
}

// Element is one node of the tree: a tag name, ordered attributes, optional
// text content, and ordered children. Namespace prefixes are flattened into
// the local name.
type Element struct {
	Name    string
	Attrs   []Attr
	Content *string // nil when the element carries no text at all
	Nodes   []*Element
}

// Text returns the element's own text content; ok is false when the element
// has none. Only character data preceding the first child element counts as
// the element's text.
func (e *Element) Text() (string, bool) {
	if e.Content == nil {
		return "", false
	}
	return *e.Content, true
}

// Attr looks up a named attribute; ok is false when absent.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetText assigns the element's text content.
func (e *Element) SetText(s string) { e.Content = &s }

// Decode reads one XML document from r and builds its element tree.
func Decode(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)
	var root *Element
	var stack []*Element
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Name: t.Name.Local}
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
					continue
				}
				el.Attrs = append(el.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("xmltree: multiple root elements")
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Nodes = append(parent.Nodes, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			cur := stack[len(stack)-1]
			// Only the text before the first child belongs to the element.
			if len(cur.Nodes) > 0 {
				continue
			}
			s := string(t)
			if cur.Content == nil {
				cur.Content = &s
			} else {
				joined := *cur.Content + s
				cur.Content = &joined
			}
		}
	}
	if root == nil {
		return nil, errors.New("xmltree: no root element")
	}
	if len(stack) != 0 {
		return nil, errors.New("xmltree: unexpected end of input")
	}
	return root, nil
}

// Parse builds the element tree of an XML document held in memory.
func Parse(data []byte) (*Element, error) { return Decode(bytes.NewReader(data)) }
