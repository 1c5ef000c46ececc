package vladify

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType  = "invalid_type"
	CodeTooSmall     = "too_small"
	CodeTooBig       = "too_big"
	CodeParseError   = "parse_error"
	CodeRefNotFound  = "ref_not_found"
	CodeDuplicateKey = "duplicate_key"
	// Schema/topology errors (fatal, never routed through a Reporter)
	CodeDuplicateIndex = "duplicate_index"
	CodeUnknownRef     = "unknown_ref"
	CodeInvalidKey     = "invalid_key"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // Dotted/bracketed path (for example: blocks[0].type).
	Code    string // One of the codes listed above.
	Message string
}

// Error renders the issue with its path prefix.
func (it Issue) Error() string {
	return fmt.Sprintf("Error at path '%s': %s", it.Path, it.Message)
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error renders every issue; multiple issues gain a trailing total count. A
// single issue renders bare, which is the fail-fast outcome format; the
// aggregate reporter renders through Summary instead.
func (iss Issues) Error() string {
	switch len(iss) {
	case 0:
		return ""
	case 1:
		return iss[0].Error()
	}
	return iss.Summary()
}

// Summary renders every issue on its own line followed by the total count,
// regardless of how many issues there are.
func (iss Issues) Summary() string {
	b := &strings.Builder{}
	for _, it := range iss {
		b.WriteString(it.Error())
		b.WriteString("\n")
	}
	fmt.Fprintf(b, "Validation failed with %d errors!", len(iss))
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// SchemaError reports a schema or topology problem: duplicate key fields in a
// mapping schema, duplicate keys within one keyed sequence, duplicate index
// registration, or a reference to an index path that was never registered.
// These indicate a malformed schema or structurally inconsistent data and
// abort the current document outright; they are never collected by the
// aggregate reporter.
type SchemaError struct {
	Path    string
	Code    string
	Message string
}

func (e *SchemaError) Error() string {
	if e.Path == "" {
		return "schema error: " + e.Message
	}
	return fmt.Sprintf("schema error at path '%s': %s", e.Path, e.Message)
}

// AsSchemaError extracts a SchemaError from an error chain.
func AsSchemaError(err error) (*SchemaError, bool) {
	var se *SchemaError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

func schemaErrorf(code, path, format string, args ...any) *SchemaError {
	return &SchemaError{Path: path, Code: code, Message: fmt.Sprintf(format, args...)}
}
