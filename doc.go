package xmlu

// Package xmlu provides:
//
// - Declarative conversion of XML-like node trees into typed values via Schema[T] (Convert)
// - A stable error model via Issues (tag path, code, message)
// - Ordered name->value output aggregates (Obj) with pluggable Sink containers
// - Polymorphic input via Source (bytes, string, reader, pre-parsed node, YAML bridge)
//
// Design policy:
// - Keep only public APIs in the root package; the default tree implementation lives in xmltree/.
// - Place schema constructors under dsl/ (Object/List/Many/Dict/Attr and the scalar leaves).
// - Schemas are immutable after Build and safe for concurrent reuse; conversion is a pure
//   function of (schema, node).
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s := dsl.Object().
//		Field("bar", dsl.Attr()).
//		Field("b", dsl.ListOf[*string](dsl.Str())).
//		Field("num", dsl.IntOf()).Tag("i").
//		MustBuild()
//	obj, err := xmlu.Unmarshal(ctx, s, xmlu.XMLBytes(data))
