package xmltree_test

import (
	"strings"
	"testing"

	"github.com/mcef/xmlu/xmltree"
)

func TestParse_Basic(t *testing.T) {
	el, err := xmltree.Parse([]byte(`<foo bar="baz" n="1"><a/><b>hi</b></foo>`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if el.Name != "foo" {
		t.Fatalf("root name: %q", el.Name)
	}
	if v, ok := el.Attr("bar"); !ok || v != "baz" {
		t.Fatalf("attr bar: %q ok=%v", v, ok)
	}
	if _, ok := el.Attr("zzz"); ok {
		t.Fatalf("absent attribute should miss")
	}
	if len(el.Nodes) != 2 || el.Nodes[0].Name != "a" || el.Nodes[1].Name != "b" {
		t.Fatalf("children: %+v", el.Nodes)
	}
	if txt, ok := el.Nodes[1].Text(); !ok || txt != "hi" {
		t.Fatalf("child text: %q ok=%v", txt, ok)
	}
}

func TestParse_TextSemantics(t *testing.T) {
	// self-closing and empty elements carry no text
	for _, data := range []string{`<a/>`, `<a></a>`} {
		el, err := xmltree.Parse([]byte(data))
		if err != nil {
			t.Fatalf("parse %q: %v", data, err)
		}
		if _, ok := el.Text(); ok {
			t.Fatalf("%q should have no text", data)
		}
	}

	// only character data before the first child is the element's text
	el, err := xmltree.Parse([]byte(`<a>head<b/>tail</a>`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if txt, ok := el.Text(); !ok || txt != "head" {
		t.Fatalf("leading text expected, got %q ok=%v", txt, ok)
	}

	// whitespace text is preserved verbatim
	el, err = xmltree.Parse([]byte("<a>foo  </a>"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if txt, _ := el.Text(); txt != "foo  " {
		t.Fatalf("verbatim text expected, got %q", txt)
	}
}

func TestDecode_Reader(t *testing.T) {
	el, err := xmltree.Decode(strings.NewReader(`<r><x>1</x></r>`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if el.Name != "r" || len(el.Nodes) != 1 {
		t.Fatalf("tree mismatch: %+v", el)
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []string{
		``,           // no root element
		`<a><b></a>`, // mismatched close
		`<a>`,        // unclosed root
	}
	for _, data := range cases {
		if _, err := xmltree.Parse([]byte(data)); err == nil {
			t.Fatalf("parse %q: error expected", data)
		}
	}
}

func TestDecodeYAML_Mapping(t *testing.T) {
	data := []byte("bar: baz\nnum: 200\nnested:\n  inner: x\n")
	el, err := xmltree.DecodeYAML(data, "doc")
	if err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if el.Name != "doc" || len(el.Nodes) != 3 {
		t.Fatalf("tree mismatch: %+v", el)
	}
	if txt, _ := el.Nodes[0].Text(); el.Nodes[0].Name != "bar" || txt != "baz" {
		t.Fatalf("bar child mismatch: %+v", el.Nodes[0])
	}
	nested := el.Nodes[2]
	if nested.Name != "nested" || len(nested.Nodes) != 1 || nested.Nodes[0].Name != "inner" {
		t.Fatalf("nested mapping mismatch: %+v", nested)
	}
}

func TestDecodeYAML_SequenceRepeatsKey(t *testing.T) {
	data := []byte("b:\n  - qwe\n  - asd\n")
	el, err := xmltree.DecodeYAML(data, "doc")
	if err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if len(el.Nodes) != 2 {
		t.Fatalf("sequence should repeat its key, got %+v", el.Nodes)
	}
	for i, want := range []string{"qwe", "asd"} {
		if el.Nodes[i].Name != "b" {
			t.Fatalf("item %d tag: %q", i, el.Nodes[i].Name)
		}
		if txt, _ := el.Nodes[i].Text(); txt != want {
			t.Fatalf("item %d text: %q", i, txt)
		}
	}
}

func TestDecodeYAML_NullHasNoText(t *testing.T) {
	el, err := xmltree.DecodeYAML([]byte("empty: null\n"), "doc")
	if err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if _, ok := el.Nodes[0].Text(); ok {
		t.Fatalf("null scalar should carry no text")
	}
}

func TestDecodeYAML_TopLevelSequenceRejected(t *testing.T) {
	if _, err := xmltree.DecodeYAML([]byte("- a\n- b\n"), "doc"); err == nil {
		t.Fatalf("top-level sequence has no tag to repeat; error expected")
	}
}
