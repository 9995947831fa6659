package xmlu

import (
	"reflect"
	"strings"
)

// ResolveStructKey resolves the output key a struct field binds to: the first
// comma-separated part of the `xmlu` tag when present, otherwise the
// lower-cased field name. A tag name of "-" opts the field out.
func ResolveStructKey(sf reflect.StructField) string {
	if tag, ok := sf.Tag.Lookup("xmlu"); ok {
		name := tag
		if i := strings.IndexByte(tag, ','); i >= 0 {
			name = tag[:i]
		}
		if name != "" {
			return name
		}
	}
	return strings.ToLower(sf.Name)
}
