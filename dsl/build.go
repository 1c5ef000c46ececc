package dsl

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
	vladify "github.com/vladify/vladify"
)

// Build compiles a schema description into a schema tree. The description
// mirrors the data shape: mappings become DictSchema, single-element
// sequences become ListSchema, and string leaves are parsed with the
// comma-separated micro-syntax ("int, min=0, max=18, coerce").
func Build(desc any) (vladify.Schema, error) {
	switch d := desc.(type) {
	case map[string]any:
		names := make([]string, 0, len(d))
		for name := range d {
			names = append(names, name)
		}
		sort.Strings(names)
		b := Dict()
		for _, name := range names {
			child, err := Build(d[name])
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", name, err)
			}
			b.Field(name, child)
		}
		return b.Build()
	case []any:
		if len(d) != 1 {
			return nil, fmt.Errorf("dsl: sequence description needs exactly one item schema, found %d", len(d))
		}
		item, err := Build(d[0])
		if err != nil {
			return nil, err
		}
		return List(item), nil
	case string:
		return buildValue(d)
	default:
		return nil, fmt.Errorf("dsl: unsupported schema description %T", desc)
	}
}

// MustBuild is Build panicking on error, for statically known descriptions.
func MustBuild(desc any) vladify.Schema {
	s, err := Build(desc)
	if err != nil {
		panic(err)
	}
	return s
}

// intParams and strParams are the typed forms of the micro-syntax parameters.
// The engine never re-parses strings: everything is decoded here, once.
type intParams struct {
	Min    int64 `mapstructure:"min"`
	Max    int64 `mapstructure:"max"`
	Coerce bool  `mapstructure:"coerce"`
	Key    bool  `mapstructure:"key"`
}

type strParams struct {
	Ref string `mapstructure:"ref"`
	Key bool   `mapstructure:"key"`
}

func buildValue(desc string) (vladify.Schema, error) {
	tokens := strings.Split(desc, ",")
	typ := strings.TrimSpace(tokens[0])
	params := make(map[string]any)
	for _, tok := range tokens[1:] {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if name, val, ok := strings.Cut(tok, "="); ok {
			params[strings.TrimSpace(name)] = strings.TrimSpace(val)
		} else {
			params[tok] = true // bare parameters are boolean flags
		}
	}

	switch typ {
	case "int":
		p := intParams{Min: math.MinInt32, Max: math.MaxInt32}
		if err := decodeParams(desc, params, &p); err != nil {
			return nil, err
		}
		s := Int().Min(p.Min).Max(p.Max)
		if p.Coerce {
			s = s.Coerce()
		}
		if p.Key {
			s = s.Key()
		}
		return s, nil
	case "str":
		var p strParams
		if err := decodeParams(desc, params, &p); err != nil {
			return nil, err
		}
		s := String()
		if p.Ref != "" {
			s = s.Ref(p.Ref)
		}
		if p.Key {
			s = s.Key()
		}
		return s, nil
	default:
		return nil, fmt.Errorf("dsl: unknown value type %q in description %q", typ, desc)
	}
}

func decodeParams(desc string, params map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true, // "min=0" arrives as the string "0"
		ErrorUnused:      true, // reject unknown parameters
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(params); err != nil {
		return fmt.Errorf("dsl: invalid parameters in description %q: %w", desc, err)
	}
	return nil
}
