package dsl_test

import (
	"context"
	"testing"

	d "github.com/mcef/xmlu/dsl"
)

type page struct {
	Bar   string    `xmlu:"bar"`
	Num   int64     `xmlu:"num"`
	Words []*string `xmlu:"b"`
	Skip  string    `xmlu:"-"`
	Title *string
}

func TestBind_Struct(t *testing.T) {
	ctx := context.Background()

	b := d.Object().
		Field("bar", d.Attr()).
		Field("b", d.ListOf[*string](d.Str())).
		Field("num", d.IntOf()).Tag("i").
		Field("title", d.StrOf())
	s, err := d.Bind[page](b)
	if err != nil {
		t.Fatalf("bind err: %v", err)
	}

	got, err := s.Convert(ctx, mustNode(t, `<foo bar="baz"><b><s>qwe</s><s>asd</s></b><i>200</i><title>hey</title></foo>`))
	if err != nil {
		t.Fatalf("convert err: %v", err)
	}
	if got.Bar != "baz" {
		t.Fatalf("Bar: got %q", got.Bar)
	}
	if got.Num != 200 {
		t.Fatalf("Num: got %d", got.Num)
	}
	if len(got.Words) != 2 || *got.Words[0] != "qwe" || *got.Words[1] != "asd" {
		t.Fatalf("Words: got %v", got.Words)
	}
	if got.Title == nil || *got.Title != "hey" {
		t.Fatalf("Title (lower-cased field name fallback): got %v", got.Title)
	}
	if got.Skip != "" {
		t.Fatalf("Skip should stay zero, got %q", got.Skip)
	}
}

func TestBind_AbsenceLeavesZero(t *testing.T) {
	ctx := context.Background()

	b := d.Object().
		Field("num", d.IntOf()).
		Field("title", d.StrOf())
	s := d.MustBind[page](b)

	got, err := s.Convert(ctx, mustNode(t, `<foo><num/><title/></foo>`))
	if err != nil {
		t.Fatalf("convert err: %v", err)
	}
	if got.Num != 0 {
		t.Fatalf("absent number should leave zero, got %d", got.Num)
	}
	if got.Title != nil {
		t.Fatalf("absent string should leave nil pointer, got %v", got.Title)
	}
}

func TestBind_PointerTarget(t *testing.T) {
	ctx := context.Background()

	b := d.Object().Field("bar", d.Attr())
	s := d.MustBind[*page](b)

	got, err := s.Convert(ctx, mustNode(t, `<foo bar="baz"/>`))
	if err != nil {
		t.Fatalf("convert err: %v", err)
	}
	if got == nil || got.Bar != "baz" {
		t.Fatalf("pointer target: got %+v", got)
	}
}

func TestBind_RequiresStruct(t *testing.T) {
	if _, err := d.Bind[int](d.Object()); err == nil {
		t.Fatalf("expected error for non-struct T")
	}
}
