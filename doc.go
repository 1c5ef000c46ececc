package vladify

// Package vladify validates structured documents (JSON-like trees of
// mappings, sequences, strings and integers) against a declarative schema.
//
// It provides:
//
// - A schema node tree (see the dsl package) that knows how to validate a
//   value, extract an identity key, and build per-path key indices
// - A two-pass document protocol: Document construction runs the index pass,
//   a Reporter then drives the validation pass
// - Cross-reference resolution: string leaves may require their value to
//   exist as a key in the index registered at another path
// - A stable error model via Issues (dotted path, code, message), with
//   fail-fast and aggregate reporting strategies
//
// Design policy:
// - Keep only public APIs in the root package; schema construction lives
//   under dsl/, the CLI under cmd/vladify.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	schema := dsl.MustBuild(desc)
//	data, err := vladify.DecodeJSON(raw)
//	doc, err := vladify.NewDocument(data, schema)
//	err = vladify.Aggregate().Validate(doc)
