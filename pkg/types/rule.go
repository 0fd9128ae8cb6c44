package types

import "fmt"

// RuleKind tags how a rule's operand is interpreted
type RuleKind string

const (
	// RuleKindAuto derives the kind from the pattern prefix
	RuleKindAuto        RuleKind = ""
	RuleKindExtension   RuleKind = "extension"
	RuleKindSizeLess    RuleKind = "size_less"
	RuleKindSizeGreater RuleKind = "size_greater"
	RuleKindSubstring   RuleKind = "substring"
)

// RuleKinds lists the explicit kinds accepted in rules files
var RuleKinds = []RuleKind{
	RuleKindExtension,
	RuleKindSizeLess,
	RuleKindSizeGreater,
	RuleKindSubstring,
}

// Rule pairs a matching pattern with a destination directory.
//
// With an empty Kind the Pattern is prefix-parsed (".ext", "size<N",
// "size>N", anything else is a substring). With an explicit Kind the
// Value is taken literally and no prefix parsing happens.
type Rule struct {
	Pattern     string   `json:"pattern,omitempty" toml:"pattern,omitempty" yaml:"pattern,omitempty"`
	Kind        RuleKind `json:"kind,omitempty" toml:"kind,omitempty" yaml:"kind,omitempty"`
	Value       string   `json:"value,omitempty" toml:"value,omitempty" yaml:"value,omitempty"`
	Destination string   `json:"destination" toml:"destination" yaml:"destination"`
}

// Operand returns the text the rule matches with
func (r Rule) Operand() string {
	if r.Kind == RuleKindAuto {
		return r.Pattern
	}
	return r.Value
}

// Label is the user-facing form of the rule's matching half
func (r Rule) Label() string {
	if r.Kind == RuleKindAuto {
		return r.Pattern
	}
	return fmt.Sprintf("%s:%s", r.Kind, r.Value)
}

// String renders the rule the way it is listed to users
func (r Rule) String() string {
	return fmt.Sprintf("%s -> %s", r.Label(), r.Destination)
}
