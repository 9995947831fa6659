package xmlu

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// TextKey is the reserved output key an Object schema's text converter writes
// into. It deliberately starts with an underscore so it cannot collide with a
// declared field name.
const TextKey = "_text"

// Sink is the capability interface an Object schema fills during conversion.
// *Obj is the default implementation; alternative containers can be injected
// via dsl.BuildInto.
type Sink interface {
	// Set stores a value under key, replacing any previous value.
	Set(key string, v any)
	// Has reports whether key already holds a value.
	Has(key string) bool
}

// Obj is the default output aggregate: a name->value mapping that preserves
// insertion order. A fresh Obj is created per conversion and is owned solely
// by the caller once the conversion returns.
type Obj struct {
	keys []string
	m    map[string]any
}

// NewObj returns an empty aggregate.
func NewObj() *Obj { return &Obj{m: map[string]any{}} }

// Set stores v under key. First insertion fixes the key's position in
// iteration order; later Sets replace the value in place.
func (o *Obj) Set(key string, v any) {
	if _, ok := o.m[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.m[key] = v
}

// Has reports whether key holds a value.
func (o *Obj) Has(key string) bool {
	_, ok := o.m[key]
	return ok
}

// Get returns the value stored under key.
func (o *Obj) Get(key string) (any, bool) {
	v, ok := o.m[key]
	return v, ok
}

// Len returns the number of stored keys.
func (o *Obj) Len() int { return len(o.keys) }

// Keys returns the stored keys in insertion order.
func (o *Obj) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Text returns the value of the reserved text slot, when an Object schema with
// a text converter produced this aggregate.
func (o *Obj) Text() (any, bool) { return o.Get(TextKey) }

// MarshalJSON renders the aggregate as a JSON object in insertion order.
// Values are encoded with goccy/go-json; nested *Obj values nest naturally.
func (o *Obj) MarshalJSON() ([]byte, error) {
	b := &bytes.Buffer{}
	b.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		b.Write(kb)
		b.WriteByte(':')
		vb, err := json.Marshal(o.m[k])
		if err != nil {
			return nil, err
		}
		b.Write(vb)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// String renders the aggregate as its JSON form, falling back to the type name
// on encoding failure.
func (o *Obj) String() string {
	b, err := o.MarshalJSON()
	if err != nil {
		return "xmlu.Obj"
	}
	return string(b)
}
