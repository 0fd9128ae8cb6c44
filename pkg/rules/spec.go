package rules

import (
	"strings"

	"github.com/arthur-debert/filesort/pkg/errors"
	"github.com/arthur-debert/filesort/pkg/types"
)

// ParseRuleSpec reads a command-line rule of the form PATTERN=DEST. The
// text is split at the first '=', so patterns cannot contain one.
func ParseRuleSpec(spec string) (types.Rule, error) {
	pattern, dest, ok := strings.Cut(spec, "=")
	if !ok {
		return types.Rule{}, errors.Newf(errors.ErrInvalidInput,
			"rule %q must have the form PATTERN=DESTINATION", spec)
	}
	if pattern == "" {
		return types.Rule{}, errors.Newf(errors.ErrInvalidInput, "rule %q has empty pattern", spec)
	}
	if strings.TrimSpace(dest) == "" {
		return types.Rule{}, errors.Newf(errors.ErrInvalidInput, "rule %q has empty destination", spec)
	}
	return types.Rule{Pattern: pattern, Destination: dest}, nil
}

// ParseRuleSpecs parses each spec in order
func ParseRuleSpecs(specs []string) ([]types.Rule, error) {
	parsed := make([]types.Rule, 0, len(specs))
	for _, spec := range specs {
		rule, err := ParseRuleSpec(spec)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, rule)
	}
	return parsed, nil
}
