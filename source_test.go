package vladify_test

import (
	"testing"

	vladify "github.com/vladify/vladify"
)

func TestDecodeJSONPinsScalarKinds(t *testing.T) {
	v, err := vladify.DecodeJSON([]byte(`{"a":1,"b":1.5,"c":"x","d":[1,2],"e":true,"f":null,"g":9223372036854775807}`))
	if err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("root = %T, want map", v)
	}
	if n, ok := m["a"].(int64); !ok || n != 1 {
		t.Errorf("a = %#v, want int64(1)", m["a"])
	}
	if f, ok := m["b"].(float64); !ok || f != 1.5 {
		t.Errorf("b = %#v, want float64(1.5)", m["b"])
	}
	if _, ok := m["c"].(string); !ok {
		t.Errorf("c = %T, want string", m["c"])
	}
	seq, ok := m["d"].([]any)
	if !ok || len(seq) != 2 {
		t.Fatalf("d = %#v, want 2-element sequence", m["d"])
	}
	if n, ok := seq[1].(int64); !ok || n != 2 {
		t.Errorf("d[1] = %#v, want int64(2)", seq[1])
	}
	if n, ok := m["g"].(int64); !ok || n != 9223372036854775807 {
		t.Errorf("g = %#v, want max int64", m["g"])
	}
}

func TestDecodeYAMLNormalizes(t *testing.T) {
	v, err := vladify.DecodeYAML([]byte("a: 1\nb: text\nc:\n  - 2\n  - deep\n"))
	if err != nil {
		t.Fatalf("DecodeYAML: %v", err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("root = %T, want map", v)
	}
	if n, ok := m["a"].(int64); !ok || n != 1 {
		t.Errorf("a = %#v, want int64(1)", m["a"])
	}
	seq, ok := m["c"].([]any)
	if !ok {
		t.Fatalf("c = %T, want sequence", m["c"])
	}
	if n, ok := seq[0].(int64); !ok || n != 2 {
		t.Errorf("c[0] = %#v, want int64(2)", seq[0])
	}
}

func TestDetectDuplicateKeys(t *testing.T) {
	raw := []byte(`{"outer":{"x":1,"x":2},"arr":[{"k":1},{"k":1,"k":2}],"ok":3}`)
	iss, err := vladify.DetectDuplicateKeys(raw)
	if err != nil {
		t.Fatalf("DetectDuplicateKeys: %v", err)
	}
	if len(iss) != 2 {
		t.Fatalf("expected 2 issues, got %d: %v", len(iss), iss)
	}
	if iss[0].Path != "outer.x" {
		t.Errorf("first path = %q, want %q", iss[0].Path, "outer.x")
	}
	if iss[1].Path != "arr[1].k" {
		t.Errorf("second path = %q, want %q", iss[1].Path, "arr[1].k")
	}
	for _, it := range iss {
		if it.Code != vladify.CodeDuplicateKey {
			t.Errorf("code = %q, want %q", it.Code, vladify.CodeDuplicateKey)
		}
	}
}

func TestDetectDuplicateKeysClean(t *testing.T) {
	iss, err := vladify.DetectDuplicateKeys([]byte(`{"a":1,"b":{"a":1}}`))
	if err != nil {
		t.Fatalf("DetectDuplicateKeys: %v", err)
	}
	if len(iss) != 0 {
		t.Errorf("expected no issues, got %v", iss)
	}
	if _, err := vladify.DetectDuplicateKeys([]byte(`{"a":`)); err == nil {
		t.Errorf("expected error for malformed input")
	}
}
