package vladify

// Schema is one node of a validation rule tree. A schema tree is built once
// (see the dsl package), is immutable afterwards, and may be reused across
// any number of documents.
type Schema interface {
	// IsKey reports whether this node is the designated identity field of
	// its enclosing mapping schema.
	IsKey() bool

	// GetKey extracts the identity key from v. Leaf schemas marked as key
	// return the raw scalar value; mapping schemas delegate to their
	// key-marked field. The second return is false when no key applies.
	GetKey(v any) (any, bool)

	// BuildIndex walks v during document construction, registering key
	// indices on doc for every keyed sequence it encounters. A non-nil
	// error is a SchemaError and aborts the document.
	BuildIndex(v any, path string, doc *Document) error

	// Validate checks v, reporting ordinary failures through c. A non-nil
	// error aborts the walk: either the fail-fast reporter unwinding on the
	// first failure, or a fatal SchemaError.
	Validate(v any, doc *Document, c *Checker) error
}
