package xmlu

import "context"

// Schema converts one node of the input tree into a typed value. A schema is
// constructed once, is immutable afterwards, and may be shared across
// concurrently running conversions. Convert performs no local recovery: either
// the whole subtree converts or an error surfaces to the caller.
type Schema[T any] interface {
	Convert(ctx context.Context, n Node) (T, error)
}

// SchemaFunc adapts a plain function to a Schema.
type SchemaFunc[T any] func(ctx context.Context, n Node) (T, error)

func (f SchemaFunc[T]) Convert(ctx context.Context, n Node) (T, error) { return f(ctx, n) }
