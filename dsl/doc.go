// Package dsl constructs vladify schema trees, either programmatically via
// chaining builders:
//
//	schema := dsl.Dict().
//		Field("types", dsl.List(dsl.String().Key())).
//		Field("blocks", dsl.List(dsl.MustDict(map[string]vladify.Schema{
//			"type":   dsl.String().Ref("types"),
//			"column": dsl.Int().Min(0).Max(18).Coerce(),
//		}))).
//		MustBuild()
//
// or by compiling a description tree of nested mapping/sequence/string
// literals, where string leaves use a comma-separated micro-syntax:
//
//	schema, err := dsl.Build(map[string]any{
//		"types": []any{"str, key"},
//		"blocks": []any{map[string]any{
//			"type":   "str, ref=types",
//			"column": "int, min=0, max=18, coerce",
//		}},
//	})
package dsl
