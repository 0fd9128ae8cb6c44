// Package rules classifies files against an ordered list of rules.
//
// Each rule pairs a pattern with a destination directory. Rules are
// evaluated in list order and the first matching rule wins; a file no
// rule matches is left where it is.
//
// # Pattern Conventions
//
// A rule without an explicit kind is recognised by its prefix:
//
//   - `.jpg` - filename ends with the text (case-insensitive). `.tar.gz`
//     only matches names that literally end in `.tar.gz`.
//   - `size<1024` - file is strictly smaller than 1024 bytes
//   - `size>1000000` - file is strictly larger than 1000000 bytes
//   - anything else - filename contains the text (case-insensitive)
//
// The size prefixes are case-sensitive and need the operator: `size`
// alone, or `SIZE<10`, is a substring rule. Size thresholds must be
// base-10 integers; anything else fails with a RULE_PARSE error.
//
// # Explicit Kinds
//
// Rules files may tag a rule with a kind, in which case the value is
// taken literally and never prefix-parsed:
//
//	[[rules]]
//	kind = "substring"
//	value = "size"
//	destination = "/data/size-reports"
//
//	[[rules]]
//	kind = "size_greater"
//	value = "1000000"
//	destination = "/data/big"
//
// # Evaluation
//
// Classify compiles rules lazily while walking the list, so a malformed
// rule is only reported once evaluation reaches it. Compile checks a
// whole list up front and also rejects empty patterns, empty
// destinations and duplicate rules; the sorter always compiles first so
// a bad rule aborts the run before any file moves.
package rules
