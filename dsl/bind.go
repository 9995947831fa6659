package dsl

import (
	"context"
	"reflect"

	xmlu "github.com/mcef/xmlu"
)

// Bind builds the object schema and binds its output aggregate to struct type
// T (free function because methods cannot introduce type parameters). Keys
// resolve via the `xmlu` struct tag, falling back to the lower-cased field
// name; a tag of "-" opts a field out.
func Bind[T any](ref objectRef) (xmlu.Schema[T], error) {
	inner, err := ref.builder().Build()
	if err != nil {
		var zero xmlu.Schema[T]
		return zero, err
	}
	return newTypedObjectSchema[T](inner)
}

// MustBind is like Bind but panics on error.
func MustBind[T any](ref objectRef) xmlu.Schema[T] {
	s, err := Bind[T](ref)
	if err != nil {
		panic(err)
	}
	return s
}

// typedObjectSchema adapts the aggregate-producing object schema to a typed
// struct T using key resolution prepared at construction.
type typedObjectSchema[T any] struct {
	inner      xmlu.Schema[*xmlu.Obj]
	rt         reflect.Type
	ptr        bool
	fieldByKey map[string]int // output key -> struct field index
}

func newTypedObjectSchema[T any](inner xmlu.Schema[*xmlu.Obj]) (xmlu.Schema[T], error) {
	var t T
	rt := reflect.TypeOf(&t).Elem()
	ptr := false
	if rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
		ptr = true
	}
	if rt.Kind() != reflect.Struct {
		return nil, xmlu.IssueAt("/", xmlu.CodeParseError, "Bind[T] requires struct T")
	}
	fm := make(map[string]int)
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := xmlu.ResolveStructKey(sf)
		if name == "-" || name == "" {
			continue
		}
		fm[name] = i
	}
	return &typedObjectSchema[T]{inner: inner, rt: rt, ptr: ptr, fieldByKey: fm}, nil
}

// Convert maps node -> aggregate via the inner schema, then into struct
// fields by the prepared key mapping. Absence values leave nillable fields
// nil and non-nillable fields at their zero value.
func (s *typedObjectSchema[T]) Convert(ctx context.Context, n xmlu.Node) (T, error) {
	var zero T
	m, err := s.inner.Convert(ctx, n)
	if err != nil {
		return zero, err
	}
	pv := reflect.New(s.rt)
	rv := pv.Elem()
	for key, idx := range s.fieldByKey {
		val, ok := m.Get(key)
		if !ok {
			continue
		}
		fv := rv.Field(idx)
		if !fv.CanSet() {
			continue
		}
		if val == nil {
			switch fv.Kind() {
			case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
				fv.Set(reflect.Zero(fv.Type()))
			default:
				// leave zero value for non-nillable fields
			}
			continue
		}
		vv := reflect.ValueOf(val)
		// Leaves produce pointers; dereference when the target field is not
		// pointer-shaped.
		if vv.Kind() == reflect.Pointer && fv.Kind() != reflect.Pointer && !vv.IsNil() {
			vv = vv.Elem()
		}
		switch {
		case vv.Type().AssignableTo(fv.Type()):
			fv.Set(vv)
		case vv.Type().ConvertibleTo(fv.Type()):
			fv.Set(vv.Convert(fv.Type()))
		}
	}
	if s.ptr {
		return pv.Interface().(T), nil
	}
	return rv.Interface().(T), nil
}
