package filesort

import (
	"embed"
	"fmt"

	"github.com/arthur-debert/filesort/internal/version"
	"github.com/arthur-debert/filesort/pkg/cobrax/topics"
	"github.com/arthur-debert/filesort/pkg/config"
	"github.com/arthur-debert/filesort/pkg/errors"
	"github.com/arthur-debert/filesort/pkg/filesystem"
	"github.com/arthur-debert/filesort/pkg/logging"
	"github.com/arthur-debert/filesort/pkg/output"
	"github.com/arthur-debert/filesort/pkg/rules"
	"github.com/arthur-debert/filesort/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

//go:embed topics/*.md
var topicsFS embed.FS

// flagConfigKeys maps flags that mirror a config setting to its key
var flagConfigKeys = map[string]string{
	"format":      "output.format",
	"color":       "output.color",
	"recursive":   "sort.recursive",
	"on-conflict": "sort.on_conflict",
	"keep-going":  "sort.keep_going",
	"debounce":    "watch.debounce",
}

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	verbosity  int
	configFile string
	format     string
	color      string
}

// ruleOptions are the flags of commands that take rules
type ruleOptions struct {
	specs     []string
	rulesFile string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "filesort",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	pf.StringVar(&opts.format, "format", "text", MsgFlagFormat)
	pf.StringVar(&opts.color, "color", "auto", MsgFlagColor)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newSortCmd(opts))
	rootCmd.AddCommand(newClassifyCmd(opts))
	rootCmd.AddCommand(newRulesCmd(opts))
	rootCmd.AddCommand(newWatchCmd(opts))
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	topicOpts := topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(),
	}
	if _, err := topics.InitializeWithOptions(rootCmd, topicsFS, "topics", topicOpts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// addRuleFlags registers --rule and --rules-file on cmd
func addRuleFlags(cmd *cobra.Command, ro *ruleOptions) {
	cmd.Flags().StringArrayVar(&ro.specs, "rule", nil, MsgFlagRule)
	cmd.Flags().StringVar(&ro.rulesFile, "rules-file", "", MsgFlagRulesFile)
}

// load returns the rules file entries followed by the --rule flags
func (ro *ruleOptions) load() ([]types.Rule, error) {
	var list []types.Rule

	if ro.rulesFile != "" {
		fromFile, err := rules.LoadFile(filesystem.NewOS(), ro.rulesFile)
		if err != nil {
			return nil, err
		}
		list = append(list, fromFile...)
	}

	fromFlags, err := rules.ParseRuleSpecs(ro.specs)
	if err != nil {
		return nil, err
	}
	list = append(list, fromFlags...)

	return list, nil
}

// loadRequired is load but fails when no rule was given at all
func (ro *ruleOptions) loadRequired() ([]types.Rule, error) {
	list, err := ro.load()
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, MsgErrNoRules)
	}
	return list, nil
}

// loadConfig merges configuration with the flags the user set on cmd
func (g *globalOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	overrides := make(map[string]interface{})

	cmd.Flags().Visit(func(f *pflag.Flag) {
		if key, ok := flagConfigKeys[f.Name]; ok {
			overrides[key] = f.Value.String()
		}
	})
	if cmd.Flags().Changed("no-lock") {
		noLock, _ := cmd.Flags().GetBool("no-lock")
		overrides["sort.lock"] = !noLock
	}

	return config.Load(config.LoadOptions{
		File:      g.configFile,
		Overrides: overrides,
	})
}

// newRenderer creates the output renderer for cmd's standard output
func newRenderer(cmd *cobra.Command, cfg *config.Config) *output.Renderer {
	w := cmd.OutOrStdout()
	return output.NewRenderer(w, cfg.Output.Format, output.UseColor(cfg.Output.Color, w))
}
