// Package dsl holds the schema constructors: the Object builder, the
// collection schemas (List/Many/Dict), the attribute extractors (Attr/AttrOf)
// and the scalar leaves (Int/Float/Complex/Str/Bool/Element/Value).
//
// Leaves treat absent source text as nil by default (the none policy of the
// conversion contract); chaining Strict() hands absent text to the parser as
// an empty string instead.
package dsl
