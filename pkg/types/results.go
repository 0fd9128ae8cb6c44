package types

import "time"

// OutcomeStatus is what happened to one file during a run
type OutcomeStatus string

const (
	StatusMoved     OutcomeStatus = "moved"
	StatusUnmatched OutcomeStatus = "unmatched"
	// StatusSkipped marks a file that already sits at its target path
	StatusSkipped OutcomeStatus = "skipped"
	StatusFailed  OutcomeStatus = "failed"
)

// FileOutcome records the decision and action taken for one file
type FileOutcome struct {
	File   FileTask
	Status OutcomeStatus
	// RuleIndex is the position of the matching rule, -1 when unmatched
	RuleIndex int
	Rule      Rule
	// Target is the final path for moved files, the intended one otherwise
	Target    string
	Renamed   bool
	Overwrote bool
	Err       error
}

// RunStats aggregates counters across a run
type RunStats struct {
	Total      int
	Moved      int
	Unmatched  int
	Skipped    int
	Failed     int
	BytesMoved int64
}

// SortResult is the report of one sorting run. A run aborted by a fatal
// error still returns the outcomes recorded before the failure.
type SortResult struct {
	RunID      string
	Source     string
	Recursive  bool
	StartedAt  time.Time
	FinishedAt time.Time
	Outcomes   []FileOutcome
}

// Stats computes the aggregate counters for the run
func (r *SortResult) Stats() RunStats {
	var s RunStats
	if r == nil {
		return s
	}
	s.Total = len(r.Outcomes)
	for _, o := range r.Outcomes {
		switch o.Status {
		case StatusMoved:
			s.Moved++
			s.BytesMoved += o.File.Size
		case StatusUnmatched:
			s.Unmatched++
		case StatusSkipped:
			s.Skipped++
		case StatusFailed:
			s.Failed++
		}
	}
	return s
}

// Failures returns the outcomes of files that could not be moved
func (r *SortResult) Failures() []FileOutcome {
	if r == nil {
		return nil
	}
	var failed []FileOutcome
	for _, o := range r.Outcomes {
		if o.Status == StatusFailed {
			failed = append(failed, o)
		}
	}
	return failed
}

// Duration is the wall time of the run
func (r *SortResult) Duration() time.Duration {
	if r == nil || r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
