package dsl

import (
	"fmt"
	"sort"

	vladify "github.com/vladify/vladify"
)

// DictSchema validates mappings field by field. A field absent from the data
// is simply not validated; there is no required-field enforcement. It
// implements vladify.Schema.
type DictSchema struct {
	fields   []dictField // traversal order
	byName   map[string]vladify.Schema
	keyField string // name of the key-marked child, if any
}

type dictField struct {
	name   string
	schema vladify.Schema
}

// DictBuilder accumulates fields in declaration order.
type DictBuilder struct {
	fields []dictField
	err    error
}

// Dict returns an empty mapping schema builder. Fields are traversed in the
// order they are declared.
func Dict() *DictBuilder { return &DictBuilder{} }

// Field declares one field. Declaring the same name twice is a build error.
func (b *DictBuilder) Field(name string, schema vladify.Schema) *DictBuilder {
	if b.err == nil {
		for _, f := range b.fields {
			if f.name == name {
				b.err = fmt.Errorf("dsl: field %q declared twice", name)
				return b
			}
		}
	}
	b.fields = append(b.fields, dictField{name: name, schema: schema})
	return b
}

// Build finalizes the mapping schema. At most one field may be marked as key.
func (b *DictBuilder) Build() (*DictSchema, error) {
	if b.err != nil {
		return nil, b.err
	}
	s := &DictSchema{
		fields: b.fields,
		byName: make(map[string]vladify.Schema, len(b.fields)),
	}
	for _, f := range b.fields {
		s.byName[f.name] = f.schema
		if f.schema.IsKey() {
			if s.keyField != "" {
				return nil, fmt.Errorf("dsl: multiple fields marked as key (%q and %q)", s.keyField, f.name)
			}
			s.keyField = f.name
		}
	}
	return s, nil
}

// MustBuild is Build panicking on error, for statically known schemas.
func (b *DictBuilder) MustBuild() *DictSchema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// MustDict builds a mapping schema from a field map, with fields traversed in
// sorted name order. Panics when more than one field is marked as key.
func MustDict(items map[string]vladify.Schema) *DictSchema {
	names := make([]string, 0, len(items))
	for name := range items {
		names = append(names, name)
	}
	sort.Strings(names)
	b := Dict()
	for _, name := range names {
		b.Field(name, items[name])
	}
	return b.MustBuild()
}

func (s *DictSchema) IsKey() bool { return false }

// GetKey returns the value of the key-marked field when v is a mapping that
// carries it.
func (s *DictSchema) GetKey(v any) (any, bool) {
	if s.keyField == "" {
		return nil, false
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	k, present := m[s.keyField]
	if !present {
		return nil, false
	}
	return k, true
}

func (s *DictSchema) BuildIndex(v any, path string, doc *vladify.Document) error {
	m, ok := v.(map[string]any)
	if !ok {
		// The validation pass reports the type mismatch.
		return nil
	}
	for _, f := range s.fields {
		fv, present := m[f.name]
		if !present {
			continue
		}
		if err := f.schema.BuildIndex(fv, vladify.ExtendPath(f.name, path), doc); err != nil {
			return err
		}
	}
	return nil
}

func (s *DictSchema) Validate(v any, doc *vladify.Document, c *vladify.Checker) error {
	m, ok := v.(map[string]any)
	if err := c.Assert(ok, vladify.CodeInvalidType,
		"incorrect type, expected mapping, found %T", v); err != nil {
		return err
	}
	if !ok {
		return nil
	}
	for _, f := range s.fields {
		fv, present := m[f.name]
		if !present {
			continue
		}
		if err := c.ValidateChild(fv, f.schema, f.name, doc); err != nil {
			return err
		}
	}
	return nil
}

// ListSchema validates sequences, applying the same item schema to every
// element. During the index pass it collects the keys its items report and
// registers the resulting index on the document. It implements
// vladify.Schema.
type ListSchema struct {
	item vladify.Schema
}

// List returns a sequence schema over the given item schema.
func List(item vladify.Schema) *ListSchema { return &ListSchema{item: item} }

func (s *ListSchema) IsKey() bool { return false }

func (s *ListSchema) GetKey(v any) (any, bool) { return nil, false }

func (s *ListSchema) BuildIndex(v any, path string, doc *vladify.Document) error {
	seq, ok := v.([]any)
	if !ok {
		return nil
	}
	index := make(map[any]int)
	for i, item := range seq {
		key, ok := s.item.GetKey(item)
		if !ok || key == nil {
			continue
		}
		if !scalarKey(key) {
			return &vladify.SchemaError{
				Path:    path,
				Code:    vladify.CodeInvalidKey,
				Message: fmt.Sprintf("key field must hold a scalar, found %T", key),
			}
		}
		if _, dup := index[key]; dup {
			return &vladify.SchemaError{
				Path:    path,
				Code:    vladify.CodeDuplicateKey,
				Message: fmt.Sprintf("duplicate key ('%v')", key),
			}
		}
		index[key] = i
		// Extend by the key, or by position when the key is empty, to keep
		// nested index paths distinct.
		seg := key
		if falsyKey(key) {
			seg = i
		}
		if err := s.item.BuildIndex(item, vladify.ExtendPath(seg, path), doc); err != nil {
			return err
		}
	}
	if len(index) > 0 {
		return doc.RegisterIndex(index, path)
	}
	return nil
}

func (s *ListSchema) Validate(v any, doc *vladify.Document, c *vladify.Checker) error {
	seq, ok := v.([]any)
	if err := c.Assert(ok, vladify.CodeInvalidType,
		"incorrect type, expected sequence, found %T", v); err != nil {
		return err
	}
	if !ok {
		return nil
	}
	for i, item := range seq {
		if err := c.ValidateChild(item, s.item, i, doc); err != nil {
			return err
		}
	}
	return nil
}

func scalarKey(key any) bool {
	switch key.(type) {
	case string, int, int32, int64, float64, bool:
		return true
	}
	return false
}

func falsyKey(key any) bool {
	switch k := key.(type) {
	case string:
		return k == ""
	case int:
		return k == 0
	case int64:
		return k == 0
	}
	return false
}
