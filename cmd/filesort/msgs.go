package filesort

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Sort files into directories by rules"
	MsgSortShort       = "Move files from SOURCE according to the rules"
	MsgClassifyShort   = "Show where files would go without moving them"
	MsgRulesShort      = "Work with rule lists"
	MsgRulesCheckShort = "Validate rules and list them in evaluation order"
	MsgWatchShort      = "Sort SOURCE now and again whenever new files arrive"
	MsgGenConfigShort  = "Print the default configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Status messages
	MsgWatchStarted   = "Watching %s (Ctrl-C to stop)\n"
	MsgConfigWritten  = "Wrote %s\n"
	MsgManWritten     = "Man pages written to %s\n"
	MsgVersionFormat  = "filesort version %s\n  commit: %s\n  built:  %s\n"
	MsgRulesValid     = "%d rule(s) OK\n"
	MsgFailuresFormat = "%d file(s) could not be moved"

	// Error messages
	MsgErrNoRules      = "no rules given: use --rule PATTERN=DEST or --rules-file FILE"
	MsgErrConfigExists = "config file %s already exists"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig     = "Config file (default $XDG_CONFIG_HOME/filesort/config.toml)"
	MsgFlagFormat     = "Output format: text, table or json"
	MsgFlagColor      = "Colour output: auto, always or never"
	MsgFlagRule       = "Rule as PATTERN=DEST; repeat for more, order matters"
	MsgFlagRulesFile  = "TOML or YAML file with [[rules]] entries, read before --rule flags"
	MsgFlagRecursive  = "Also sort files in nested directories"
	MsgFlagOnConflict = "When the destination has a file with the same name: fail, overwrite or rename"
	MsgFlagKeepGoing  = "Attempt every file and report failures at the end"
	MsgFlagNoLock     = "Do not take the per-source run lock"
	MsgFlagDebounce   = "Quiet period before re-sorting after file events"
	MsgFlagWrite      = "Write the config file instead of printing it"
	MsgFlagManDir     = "Directory to write man pages to"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/sort-long.txt
	msgSortLongRaw string
	MsgSortLong    = strings.TrimSpace(msgSortLongRaw)

	//go:embed msgs/sort-example.txt
	msgSortExampleRaw string
	MsgSortExample    = strings.TrimRight(msgSortExampleRaw, "\n")

	//go:embed msgs/classify-long.txt
	msgClassifyLongRaw string
	MsgClassifyLong    = strings.TrimSpace(msgClassifyLongRaw)

	//go:embed msgs/rules-check-long.txt
	msgRulesCheckLongRaw string
	MsgRulesCheckLong    = strings.TrimSpace(msgRulesCheckLongRaw)

	//go:embed msgs/watch-long.txt
	msgWatchLongRaw string
	MsgWatchLong    = strings.TrimSpace(msgWatchLongRaw)

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
