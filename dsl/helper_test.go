package dsl_test

import (
	"testing"

	xmlu "github.com/mcef/xmlu"
	"github.com/mcef/xmlu/xmltree"
)

func mustNode(t *testing.T, s string) xmlu.Node {
	t.Helper()
	el, err := xmltree.Parse([]byte(s))
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return xmlu.WrapElement(el)
}

func issueCode(t *testing.T, err error) string {
	t.Helper()
	iss, ok := xmlu.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected Issues error, got %v", err)
	}
	return iss[0].Code
}
