package vladify

// Reporter is the strategy governing what happens when an assertion fails:
// abort immediately (FailFast) or collect everything and report at the end
// (Aggregate). A reporter lives for exactly one validation run.
type Reporter interface {
	// Validate drives one full validation pass over doc with a fresh root
	// Checker. On failure it returns Issues (ordinary validation failures)
	// or a SchemaError (fatal topology problem).
	Validate(doc *Document) error

	// NumChecks reports how many individual assertions ran.
	NumChecks() int
	// NumFields reports how many tree positions were visited.
	NumFields() int

	reportCheck()
	reportField()
	raiseIssue(it Issue) error
}

// counters carries the diagnostics shared by both reporter strategies.
type counters struct {
	checks int
	fields int
}

func (c *counters) reportCheck()   { c.checks++ }
func (c *counters) reportField()   { c.fields++ }
func (c *counters) NumChecks() int { return c.checks }
func (c *counters) NumFields() int { return c.fields }

// FailFastReporter aborts the whole run on the first failure, surfacing only
// that failure.
type FailFastReporter struct {
	counters
}

// FailFast returns a reporter that stops at the first failure.
func FailFast() *FailFastReporter { return &FailFastReporter{} }

func (r *FailFastReporter) raiseIssue(it Issue) error { return Issues{it} }

func (r *FailFastReporter) Validate(doc *Document) error {
	return doc.Validate(NewChecker(r, ""))
}

// AggregateReporter collects every failure and keeps walking, so every
// reachable check in the document is attempted before the run is reported as
// failed.
type AggregateReporter struct {
	counters
	issues Issues
}

// Aggregate returns a reporter that collects all failures before reporting.
func Aggregate() *AggregateReporter { return &AggregateReporter{} }

func (r *AggregateReporter) raiseIssue(it Issue) error {
	r.issues = AppendIssues(r.issues, it)
	return nil
}

// Issues returns the failures collected so far.
func (r *AggregateReporter) Issues() Issues { return r.issues }

func (r *AggregateReporter) Validate(doc *Document) error {
	// A SchemaError mid-walk still aborts; only ordinary failures aggregate.
	if err := doc.Validate(NewChecker(r, "")); err != nil {
		return err
	}
	if len(r.issues) > 0 {
		return aggregateError{issues: r.issues}
	}
	return nil
}

// aggregateError is the aggregate run's outcome: every collected issue plus
// the trailing total count, even for a single failure. AsIssues still
// extracts the underlying Issues via Unwrap.
type aggregateError struct {
	issues Issues
}

func (e aggregateError) Error() string { return e.issues.Summary() }
func (e aggregateError) Unwrap() error { return e.issues }
