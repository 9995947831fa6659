package xmlu

// Node is the minimal accessor contract the engine requires from its tree
// collaborator. The default implementation lives in the xmltree package; any
// tree representation satisfying this interface can be converted.
type Node interface {
	// Tag returns the element's tag name.
	Tag() string
	// Text returns the element's own text content. ok is false when the
	// element has no text at all, which is distinct from an empty string.
	Text() (text string, ok bool)
	// Attr looks up a named attribute. ok is false when the attribute is
	// absent.
	Attr(name string) (value string, ok bool)
	// Children returns the element's child nodes in document order. The
	// returned slice must be stable across calls.
	Children() []Node
}
