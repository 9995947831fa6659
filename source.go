package xmlu

import (
	"io"
	"strings"
	"sync"

	"github.com/mcef/xmlu/xmltree"
)

// Source abstracts over polymorphic input sources. Root produces the single
// node a conversion starts from; it parses lazily and memoizes, so a Source is
// safe to hand to multiple conversions.
type Source interface {
	Root() (Node, error)
}

// XMLDriver converts raw XML input into a Source via a pluggable SPI. The
// default implementation is backed by the xmltree package (encoding/xml) and
// may be swapped with SetXMLDriver.
type XMLDriver interface {
	NewReader(r io.Reader) Source
	NewBytes(b []byte) Source
	Name() string
}

var (
	xmlDriverMu      sync.RWMutex
	currentXMLDriver XMLDriver = defaultXMLDriver{}
)

// SetXMLDriver replaces the global XML driver; nil values are ignored.
func SetXMLDriver(d XMLDriver) {
	if d == nil {
		return
	}
	xmlDriverMu.Lock()
	currentXMLDriver = d
	xmlDriverMu.Unlock()
}

// UseDefaultXMLDriver restores the default xmltree-backed driver.
func UseDefaultXMLDriver() {
	xmlDriverMu.Lock()
	currentXMLDriver = defaultXMLDriver{}
	xmlDriverMu.Unlock()
}

func getXMLDriver() XMLDriver {
	xmlDriverMu.RLock()
	d := currentXMLDriver
	xmlDriverMu.RUnlock()
	return d
}

// defaultXMLDriver wraps the xmltree implementation.
type defaultXMLDriver struct{}

func (defaultXMLDriver) NewReader(r io.Reader) Source {
	return lazySource(func() (Node, error) {
		el, err := xmltree.Decode(r)
		if err != nil {
			return nil, Issues{Issue{Path: "/", Code: CodeInvalidSource, Message: err.Error(), Cause: err}}
		}
		return WrapElement(el), nil
	})
}

func (defaultXMLDriver) NewBytes(b []byte) Source {
	return lazySource(func() (Node, error) {
		el, err := xmltree.Parse(b)
		if err != nil {
			return nil, Issues{Issue{Path: "/", Code: CodeInvalidSource, Message: err.Error(), Cause: err}}
		}
		return WrapElement(el), nil
	})
}

func (defaultXMLDriver) Name() string { return "xmltree" }

// XMLReader wraps an io.Reader as an XML Source.
func XMLReader(r io.Reader) Source { return getXMLDriver().NewReader(r) }

// XMLBytes wraps a byte slice as an XML Source.
func XMLBytes(b []byte) Source { return getXMLDriver().NewBytes(b) }

// XMLString wraps a string as an XML Source.
func XMLString(s string) Source { return getXMLDriver().NewReader(strings.NewReader(s)) }

// YAMLBytes wraps a YAML document as a Source. Mapping keys become child tags
// under a synthetic root named "doc"; sequences repeat their key per item.
func YAMLBytes(b []byte) Source {
	return lazySource(func() (Node, error) {
		el, err := xmltree.DecodeYAML(b, "doc")
		if err != nil {
			return nil, Issues{Issue{Path: "/", Code: CodeInvalidSource, Message: err.Error(), Cause: err}}
		}
		return WrapElement(el), nil
	})
}

// FromNode wraps an already-parsed node as a Source.
func FromNode(n Node) Source {
	return lazySource(func() (Node, error) { return n, nil })
}

// lazySource memoizes the first Root call so repeated conversions reuse one
// parse.
func lazySource(open func() (Node, error)) Source {
	return &memoSource{open: open}
}

type memoSource struct {
	once sync.Once
	open func() (Node, error)
	root Node
	err  error
}

func (s *memoSource) Root() (Node, error) {
	s.once.Do(func() { s.root, s.err = s.open() })
	return s.root, s.err
}

// WrapElement adapts an xmltree.Element to the Node contract. Wrapping the
// same element twice yields values that compare equal.
func WrapElement(el *xmltree.Element) Node { return elementNode{el: el} }

type elementNode struct{ el *xmltree.Element }

func (n elementNode) Tag() string { return n.el.Name }

func (n elementNode) Text() (string, bool) { return n.el.Text() }

func (n elementNode) Attr(name string) (string, bool) { return n.el.Attr(name) }

func (n elementNode) Children() []Node {
	kids := n.el.Nodes
	out := make([]Node, len(kids))
	for i, c := range kids {
		out[i] = elementNode{el: c}
	}
	return out
}
