package vladify

// Document pairs a raw data tree with the schema describing it. Construction
// runs the full index-building pass; the resulting key indices are fixed
// afterwards and only read during validation for reference checks.
type Document struct {
	data    any
	schema  Schema
	indices map[string]map[any]int
}

// NewDocument builds a Document from a parsed data tree and a schema,
// immediately running the index pass rooted at the empty path. Duplicate keys
// within one sequence and duplicate index registrations surface here as
// SchemaErrors, before any validation runs.
func NewDocument(data any, schema Schema) (*Document, error) {
	d := &Document{
		data:    data,
		schema:  schema,
		indices: make(map[string]map[any]int),
	}
	if err := schema.BuildIndex(data, "", d); err != nil {
		return nil, err
	}
	return d, nil
}

// RegisterIndex records the key index built for the sequence at path. Each
// path may be registered at most once.
func (d *Document) RegisterIndex(index map[any]int, path string) error {
	if _, ok := d.indices[path]; ok {
		return schemaErrorf(CodeDuplicateIndex, path, "index already registered")
	}
	d.indices[path] = index
	return nil
}

// Index returns the key index registered at path, if any.
func (d *Document) Index(path string) (map[any]int, bool) {
	index, ok := d.indices[path]
	return index, ok
}

// CheckRef verifies that key exists in the index registered at refPath,
// reporting a missing key through c. A refPath that was never registered is a
// SchemaError: the schema references an index that never came into existence,
// which is a configuration problem rather than a data problem.
func (d *Document) CheckRef(refPath string, key any, c *Checker) error {
	index, ok := d.indices[refPath]
	if !ok {
		return schemaErrorf(CodeUnknownRef, c.Path(), "no index registered at ref path '%s'", refPath)
	}
	_, found := index[key]
	return c.Assert(found, CodeRefNotFound,
		"key reference ('%v') not found at index path '%s'", key, refPath)
}

// Validate starts the recursive validation pass at the root. Callers normally
// go through a Reporter instead.
func (d *Document) Validate(c *Checker) error {
	return d.schema.Validate(d.data, d, c)
}
