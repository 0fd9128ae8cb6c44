package rules

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/filesort/pkg/errors"
	"github.com/arthur-debert/filesort/pkg/types"
)

const (
	extensionPrefix   = "."
	sizeLessPrefix    = "size<"
	sizeGreaterPrefix = "size>"
)

// matcher is a rule whose kind has been resolved and operand parsed
type matcher struct {
	index     int
	rule      types.Rule
	kind      types.RuleKind
	text      string // folded suffix or substring
	threshold int64
}

// compileRule resolves the kind of rule and parses its operand
func compileRule(index int, rule types.Rule) (*matcher, error) {
	if strings.TrimSpace(rule.Destination) == "" {
		return nil, errors.Newf(errors.ErrInvalidInput,
			"rule %d (%s) has empty destination", index+1, rule.Label()).
			WithDetail("rule", rule.Label())
	}

	m := &matcher{index: index, rule: rule}

	switch rule.Kind {
	case types.RuleKindAuto:
		pattern := rule.Pattern
		if pattern == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, "rule %d has empty pattern", index+1)
		}
		switch {
		case strings.HasPrefix(pattern, extensionPrefix):
			m.kind = types.RuleKindExtension
			m.text = fold(pattern)
		case strings.HasPrefix(pattern, sizeLessPrefix):
			m.kind = types.RuleKindSizeLess
		case strings.HasPrefix(pattern, sizeGreaterPrefix):
			m.kind = types.RuleKindSizeGreater
		default:
			m.kind = types.RuleKindSubstring
			m.text = fold(pattern)
		}
		if m.kind == types.RuleKindSizeLess || m.kind == types.RuleKindSizeGreater {
			// both size prefixes have the same length
			threshold, err := parseThreshold(pattern[len(sizeLessPrefix):], rule)
			if err != nil {
				return nil, err
			}
			m.threshold = threshold
		}

	case types.RuleKindExtension:
		if rule.Value == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, "rule %d has empty extension", index+1)
		}
		m.kind = rule.Kind
		ext := rule.Value
		if !strings.HasPrefix(ext, extensionPrefix) {
			ext = extensionPrefix + ext
		}
		m.text = fold(ext)

	case types.RuleKindSizeLess, types.RuleKindSizeGreater:
		threshold, err := parseThreshold(rule.Value, rule)
		if err != nil {
			return nil, err
		}
		m.kind = rule.Kind
		m.threshold = threshold

	case types.RuleKindSubstring:
		if rule.Value == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, "rule %d has empty substring", index+1)
		}
		m.kind = rule.Kind
		m.text = fold(rule.Value)

	default:
		return nil, errors.Newf(errors.ErrInvalidInput,
			"rule %d has unknown kind %q", index+1, string(rule.Kind)).
			WithDetail("kind", string(rule.Kind))
	}

	return m, nil
}

// parseThreshold reads a base-10 byte count; surrounding spaces and a
// sign are accepted
func parseThreshold(text string, rule types.Rule) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0, errors.Newf(errors.ErrRuleParse,
			"invalid size threshold %q in rule %q: must be an integer", text, rule.Label()).
			WithDetail("rule", rule.Label())
	}
	return n, nil
}

// matches tests the rule's predicate against one file
func (m *matcher) matches(file types.FileTask) bool {
	switch m.kind {
	case types.RuleKindExtension:
		return strings.HasSuffix(fold(file.Name), m.text)
	case types.RuleKindSizeLess:
		return file.Size < m.threshold
	case types.RuleKindSizeGreater:
		return file.Size > m.threshold
	case types.RuleKindSubstring:
		return strings.Contains(fold(file.Name), m.text)
	}
	return false
}

// key identifies rules with the same predicate
func (m *matcher) key() string {
	switch m.kind {
	case types.RuleKindSizeLess, types.RuleKindSizeGreater:
		return string(m.kind) + ":" + strconv.FormatInt(m.threshold, 10)
	}
	return string(m.kind) + ":" + m.text
}
