package rules

import (
	"github.com/arthur-debert/filesort/pkg/errors"
	"github.com/arthur-debert/filesort/pkg/logging"
	"github.com/arthur-debert/filesort/pkg/types"
	"github.com/rs/zerolog"
)

// Decision is the outcome of classifying one file
type Decision struct {
	Matched bool
	// Index is the position of the winning rule, -1 for NoMatch
	Index       int
	Rule        types.Rule
	Destination string
}

// NoMatch is the decision for a file no rule matches
var NoMatch = Decision{Index: -1}

func matchDecision(m *matcher) Decision {
	return Decision{
		Matched:     true,
		Index:       m.index,
		Rule:        m.rule,
		Destination: m.rule.Destination,
	}
}

// Classify returns the destination of the first rule in rules whose
// predicate holds for file. Rules are compiled as evaluation reaches
// them, so a malformed rule after the winning one is never reported.
func Classify(file types.FileTask, rules []types.Rule) (Decision, error) {
	for i, rule := range rules {
		m, err := compileRule(i, rule)
		if err != nil {
			return NoMatch, err
		}
		if m.matches(file) {
			return matchDecision(m), nil
		}
	}
	return NoMatch, nil
}

// Ruleset is an ordered list of compiled rules
type Ruleset struct {
	matchers []*matcher
	logger   zerolog.Logger
}

// RuleInfo describes a compiled rule
type RuleInfo struct {
	Index int
	Rule  types.Rule
	// Kind is the resolved kind, never RuleKindAuto
	Kind types.RuleKind
}

// Compile checks and compiles every rule in order. It fails on the first
// malformed size threshold (RULE_PARSE), on empty patterns, values or
// destinations, unknown kinds, and on a rule whose predicate repeats an
// earlier one (INVALID_INPUT).
func Compile(rules []types.Rule) (*Ruleset, error) {
	logger := logging.GetLogger("rules.engine")

	rs := &Ruleset{
		matchers: make([]*matcher, 0, len(rules)),
		logger:   logger,
	}
	seen := make(map[string]int, len(rules))

	for i, rule := range rules {
		m, err := compileRule(i, rule)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[m.key()]; dup {
			return nil, errors.Newf(errors.ErrInvalidInput,
				"rule %d (%s) duplicates rule %d (%s)",
				i+1, rule.Label(), prev+1, rules[prev].Label()).
				WithDetail("rule", rule.Label())
		}
		seen[m.key()] = i
		rs.matchers = append(rs.matchers, m)
	}

	logger.Debug().Int("ruleCount", len(rs.matchers)).Msg("Compiled rules")
	return rs, nil
}

// Classify returns the first matching rule's decision, or NoMatch
func (rs *Ruleset) Classify(file types.FileTask) Decision {
	for _, m := range rs.matchers {
		if m.matches(file) {
			rs.logger.Trace().
				Str("file", file.Path).
				Str("rule", m.rule.Label()).
				Str("destination", m.rule.Destination).
				Msg("File matched rule")
			return matchDecision(m)
		}
	}
	rs.logger.Trace().Str("file", file.Path).Msg("No rule matched")
	return NoMatch
}

// Len is the number of rules
func (rs *Ruleset) Len() int {
	return len(rs.matchers)
}

// Describe lists the compiled rules with their resolved kinds
func (rs *Ruleset) Describe() []RuleInfo {
	infos := make([]RuleInfo, len(rs.matchers))
	for i, m := range rs.matchers {
		infos[i] = RuleInfo{Index: m.index, Rule: m.rule, Kind: m.kind}
	}
	return infos
}
