package vladify

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"
)

// DetectDuplicateKeys scans raw JSON for mapping keys that appear more than
// once within the same object. Decoders silently keep the last occurrence, so
// this runs on the raw bytes before decoding. Each duplicate yields one Issue
// with the dotted path of the repeated key; a non-nil error means the input
// is not valid JSON.
func DetectDuplicateKeys(data []byte) (Issues, error) {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var iss Issues
	var stack []dupFrame

	// childPath renders the path of the next value to be read.
	childPath := func() string {
		if len(stack) == 0 {
			return ""
		}
		top := &stack[len(stack)-1]
		if top.object {
			return ExtendPath(top.key, top.path)
		}
		return ExtendPath(top.index, top.path)
	}
	// endValue advances the enclosing container past one completed value.
	endValue := func() {
		if len(stack) == 0 {
			return
		}
		top := &stack[len(stack)-1]
		if top.object {
			top.expectKey = true
		} else {
			top.index++
		}
	}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return iss, nil
		}
		if err != nil {
			return nil, fmt.Errorf("scan json: %w", err)
		}
		switch t := tok.(type) {
		case gojson.Delim:
			switch t {
			case '{', '[':
				f := dupFrame{object: t == '{', path: childPath()}
				if f.object {
					f.keys = make(map[string]struct{})
					f.expectKey = true
				}
				stack = append(stack, f)
			case '}', ']':
				stack = stack[:len(stack)-1]
				endValue()
			}
		case string:
			if len(stack) > 0 {
				top := &stack[len(stack)-1]
				if top.object && top.expectKey {
					if _, dup := top.keys[t]; dup {
						iss = AppendIssues(iss, Issue{
							Path:    ExtendPath(t, top.path),
							Code:    CodeDuplicateKey,
							Message: fmt.Sprintf("duplicate mapping key ('%s')", t),
						})
					}
					top.keys[t] = struct{}{}
					top.key = t
					top.expectKey = false
					continue
				}
			}
			endValue()
		default:
			endValue()
		}
	}
}

type dupFrame struct {
	object    bool
	path      string // path of the container itself
	keys      map[string]struct{}
	key       string // last key read (objects)
	expectKey bool
	index     int // next element position (arrays)
}
