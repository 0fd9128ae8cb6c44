package types

import (
	"fmt"
	"strings"
)

// SortRequest is the complete input to one sorting run. It is built once
// by the caller and never mutated by the sorter.
type SortRequest struct {
	Source    string
	Rules     []Rule
	Recursive bool
}

// NewSortRequest copies rules so later edits by the caller do not leak
// into a run in progress
func NewSortRequest(source string, rules []Rule, recursive bool) SortRequest {
	copied := make([]Rule, len(rules))
	copy(copied, rules)
	return SortRequest{
		Source:    source,
		Rules:     copied,
		Recursive: recursive,
	}
}

// ConflictPolicy decides what happens when the destination already holds
// a file with the same name
type ConflictPolicy string

const (
	ConflictFail      ConflictPolicy = "fail"
	ConflictOverwrite ConflictPolicy = "overwrite"
	ConflictRename    ConflictPolicy = "rename"
)

// ParseConflictPolicy accepts the policy names case-insensitively; the
// empty string selects ConflictFail
func ParseConflictPolicy(s string) (ConflictPolicy, error) {
	switch ConflictPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", ConflictFail:
		return ConflictFail, nil
	case ConflictOverwrite:
		return ConflictOverwrite, nil
	case ConflictRename:
		return ConflictRename, nil
	}
	return "", fmt.Errorf("unknown conflict policy %q (want fail, overwrite or rename)", s)
}

// UnmarshalText lets config decoders fill a ConflictPolicy from a string
func (p *ConflictPolicy) UnmarshalText(text []byte) error {
	parsed, err := ParseConflictPolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// String implements fmt.Stringer
func (p ConflictPolicy) String() string {
	if p == "" {
		return string(ConflictFail)
	}
	return string(p)
}
