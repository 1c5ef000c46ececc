package dsl

import (
	"math"
	"strconv"
	"strings"

	vladify "github.com/vladify/vladify"
)

// IntSchema validates integer leaves with inclusive bounds and optional
// string coercion. It implements vladify.Schema.
type IntSchema struct {
	key    bool
	min    int64
	max    int64
	coerce bool
}

// Int returns an integer schema with the 32-bit signed range as bounds.
func Int() *IntSchema {
	return &IntSchema{min: math.MinInt32, max: math.MaxInt32}
}

// Min sets the inclusive minimum.
func (s *IntSchema) Min(n int64) *IntSchema { s.min = n; return s }

// Max sets the inclusive maximum.
func (s *IntSchema) Max(n int64) *IntSchema { s.max = n; return s }

// Coerce makes string values parse to integer before the type and bounds
// checks run.
func (s *IntSchema) Coerce() *IntSchema { s.coerce = true; return s }

// Key marks this field as its mapping's identity field.
func (s *IntSchema) Key() *IntSchema { s.key = true; return s }

func (s *IntSchema) IsKey() bool { return s.key }

func (s *IntSchema) GetKey(v any) (any, bool) { return nil, false }

func (s *IntSchema) BuildIndex(v any, path string, doc *vladify.Document) error { return nil }

func (s *IntSchema) Validate(v any, doc *vladify.Document, c *vladify.Checker) error {
	if s.coerce {
		if str, ok := v.(string); ok {
			n, err := strconv.ParseInt(strings.TrimSpace(str), 10, 64)
			if err != nil {
				// Stop here: type/bounds checks on the unparsed value would
				// only cascade.
				return c.Assert(false, vladify.CodeParseError,
					"could not coerce value ('%s') to int", str)
			}
			v = n
		}
	}
	n, ok := asInt(v)
	if err := c.Assert(ok, vladify.CodeInvalidType,
		"incorrect type, expected int, found %T", v); err != nil {
		return err
	}
	// Bounds are attempted (and counted) even after a type failure, but hold
	// vacuously for non-integers so a bad type yields exactly one issue.
	if err := c.Assert(!ok || n >= s.min, vladify.CodeTooSmall,
		"int value (%d) less than minimum (%d)", n, s.min); err != nil {
		return err
	}
	return c.Assert(!ok || n <= s.max, vladify.CodeTooBig,
		"int value (%d) greater than maximum (%d)", n, s.max)
}

func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	}
	return 0, false
}

// StrSchema validates string leaves, optionally requiring the value to exist
// as a key in the index registered at a ref path. It implements
// vladify.Schema.
type StrSchema struct {
	key bool
	ref string
}

// String returns a plain string schema.
func String() *StrSchema { return &StrSchema{} }

// Ref requires every validated value to exist as a key in the index
// registered at path.
func (s *StrSchema) Ref(path string) *StrSchema { s.ref = path; return s }

// Key marks this field as its mapping's identity field.
func (s *StrSchema) Key() *StrSchema { s.key = true; return s }

func (s *StrSchema) IsKey() bool { return s.key }

func (s *StrSchema) GetKey(v any) (any, bool) {
	if s.key {
		return v, true
	}
	return nil, false
}

func (s *StrSchema) BuildIndex(v any, path string, doc *vladify.Document) error { return nil }

func (s *StrSchema) Validate(v any, doc *vladify.Document, c *vladify.Checker) error {
	str, ok := v.(string)
	if err := c.Assert(ok, vladify.CodeInvalidType,
		"incorrect type, expected str, found %T", v); err != nil {
		return err
	}
	if !ok {
		// No index lookup on a non-string value.
		return nil
	}
	if s.ref != "" {
		return doc.CheckRef(s.ref, str, c)
	}
	return nil
}
