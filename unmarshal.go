package xmlu

import "context"

// Unmarshal is the primary entry point. It obtains the root node from the
// Source and delegates conversion to the Schema. Errors from the schema
// propagate unchanged; there is no partial result.
func Unmarshal[T any](ctx context.Context, s Schema[T], src Source) (T, error) {
	var zero T
	if s == nil {
		return zero, IssueAt("/", CodeNilSchema, "nil schema")
	}
	if src == nil {
		return zero, IssueAt("/", CodeInvalidSource, "nil source")
	}
	root, err := src.Root()
	if err != nil {
		if iss, ok := AsIssues(err); ok {
			return zero, iss
		}
		return zero, Issues{Issue{Path: "/", Code: CodeInvalidSource, Message: err.Error(), Cause: err}}
	}
	return s.Convert(ctx, root)
}
