package vladify_test

import (
	"strings"
	"testing"

	vladify "github.com/vladify/vladify"
	"github.com/vladify/vladify/dsl"
)

// threeFailureDoc yields one type failure per field: a, b, c.
func threeFailureDoc(t *testing.T) *vladify.Document {
	t.Helper()
	schema := dsl.Dict().
		Field("a", dsl.Int()).
		Field("b", dsl.Int()).
		Field("c", dsl.Int()).
		MustBuild()
	data := map[string]any{"a": "x", "b": "y", "c": "z"}
	doc, err := vladify.NewDocument(data, schema)
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	return doc
}

func TestFailFastReportsFirstFailureOnly(t *testing.T) {
	doc := threeFailureDoc(t)
	err := vladify.FailFast().Validate(doc)
	if err == nil {
		t.Fatalf("expected failure")
	}
	iss, ok := vladify.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	if len(iss) != 1 {
		t.Fatalf("expected exactly 1 issue, got %d: %v", len(iss), iss)
	}
	// Fields are visited in declaration order, so 'a' fails first.
	if iss[0].Path != "a" {
		t.Errorf("first failure path = %q, want %q", iss[0].Path, "a")
	}
	if iss[0].Code != vladify.CodeInvalidType {
		t.Errorf("first failure code = %q, want %q", iss[0].Code, vladify.CodeInvalidType)
	}
}

func TestAggregateReportsEveryFailure(t *testing.T) {
	doc := threeFailureDoc(t)
	rep := vladify.Aggregate()
	err := rep.Validate(doc)
	if err == nil {
		t.Fatalf("expected failure")
	}
	iss, ok := vladify.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	if len(iss) != 3 {
		t.Fatalf("expected exactly 3 issues, got %d: %v", len(iss), iss)
	}
	for i, want := range []string{"a", "b", "c"} {
		if iss[i].Path != want {
			t.Errorf("issue %d path = %q, want %q", i, iss[i].Path, want)
		}
	}
	if !strings.Contains(err.Error(), "Validation failed with 3 errors!") {
		t.Errorf("summary missing total count: %q", err.Error())
	}
}

func TestReporterCountersOnSuccess(t *testing.T) {
	schema := dsl.MustBuild(map[string]any{"types": []any{"str, key"}})
	data := map[string]any{"types": []any{"a", "b", "c"}}
	doc, err := vladify.NewDocument(data, schema)
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	rep := vladify.Aggregate()
	if err := rep.Validate(doc); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	// root + types + 3 items visited; one type check at each position.
	if got := rep.NumFields(); got != 5 {
		t.Errorf("NumFields = %d, want 5", got)
	}
	if got := rep.NumChecks(); got != 5 {
		t.Errorf("NumChecks = %d, want 5", got)
	}
}

func TestIssueRendering(t *testing.T) {
	it := vladify.Issue{Path: "blocks[0].type", Code: vladify.CodeRefNotFound, Message: "nope"}
	if got := it.Error(); got != "Error at path 'blocks[0].type': nope" {
		t.Errorf("Issue.Error() = %q", got)
	}
	// Bare rendering for one issue is the fail-fast outcome format.
	if got := (vladify.Issues{it}).Error(); got != it.Error() {
		t.Errorf("single-issue rendering = %q", got)
	}
	// Summary always carries the total, even for one issue.
	want := it.Error() + "\nValidation failed with 1 errors!"
	if got := (vladify.Issues{it}).Summary(); got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}

func TestAggregateSingleFailureIncludesSummary(t *testing.T) {
	schema := dsl.Dict().Field("a", dsl.Int()).MustBuild()
	doc, err := vladify.NewDocument(map[string]any{"a": "x"}, schema)
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	err = vladify.Aggregate().Validate(doc)
	if err == nil {
		t.Fatalf("expected failure")
	}
	iss, ok := vladify.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected 1 extractable issue, got %v", err)
	}
	if !strings.Contains(err.Error(), iss[0].Error()) {
		t.Errorf("outcome missing the issue line: %q", err.Error())
	}
	if !strings.Contains(err.Error(), "Validation failed with 1 errors!") {
		t.Errorf("outcome missing the total count: %q", err.Error())
	}
}
