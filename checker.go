package vladify

import "fmt"

// Checker is a path-scoped validation cursor. One instance exists per tree
// position: composite schemas call ValidateChild rather than recursing on
// themselves, so path extension and field counting stay centralized here. A
// Checker holds no state beyond its path and is discarded after the frame.
type Checker struct {
	rep  Reporter
	path string
}

// NewChecker binds a checker to a reporter at the given path and counts the
// visited field.
func NewChecker(rep Reporter, path string) *Checker {
	rep.reportField()
	return &Checker{rep: rep, path: path}
}

// Path returns the dotted/bracketed path of this cursor.
func (c *Checker) Path() string { return c.path }

// ValidateChild validates v against schema at the path extended by key.
func (c *Checker) ValidateChild(v any, schema Schema, key any, doc *Document) error {
	return schema.Validate(v, doc, NewChecker(c.rep, ExtendPath(key, c.path)))
}

// Assert counts one check and, when ok is false, routes a failure to the
// reporter. The message is only formatted on failure. The returned error is
// non-nil when the reporter wants the walk aborted (fail-fast).
func (c *Checker) Assert(ok bool, code, format string, args ...any) error {
	c.rep.reportCheck()
	if ok {
		return nil
	}
	return c.rep.raiseIssue(Issue{
		Path:    c.path,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	})
}
