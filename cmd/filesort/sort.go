package filesort

import (
	"github.com/arthur-debert/filesort/pkg/config"
	"github.com/arthur-debert/filesort/pkg/errors"
	"github.com/arthur-debert/filesort/pkg/logging"
	"github.com/arthur-debert/filesort/pkg/runlock"
	"github.com/arthur-debert/filesort/pkg/sorter"
	"github.com/arthur-debert/filesort/pkg/types"
	"github.com/spf13/cobra"
)

// sortFlags are the flags shared by sort and watch
type sortFlags struct {
	rules      ruleOptions
	recursive  bool
	onConflict string
	keepGoing  bool
	noLock     bool
}

func addSortFlags(cmd *cobra.Command, sf *sortFlags) {
	addRuleFlags(cmd, &sf.rules)
	cmd.Flags().BoolVarP(&sf.recursive, "recursive", "r", false, MsgFlagRecursive)
	cmd.Flags().StringVar(&sf.onConflict, "on-conflict", string(types.ConflictFail), MsgFlagOnConflict)
	cmd.Flags().BoolVar(&sf.keepGoing, "keep-going", false, MsgFlagKeepGoing)
	cmd.Flags().BoolVar(&sf.noLock, "no-lock", false, MsgFlagNoLock)

	_ = cmd.RegisterFlagCompletionFunc("on-conflict", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"fail", "overwrite", "rename"}, cobra.ShellCompDirectiveNoFileComp
	})
}

// buildRun turns the command line and configuration into a sort request
func buildRun(source string, sf *sortFlags, cfg *config.Config) (types.SortRequest, sorter.Options, error) {
	list, err := sf.rules.loadRequired()
	if err != nil {
		return types.SortRequest{}, sorter.Options{}, err
	}

	req := types.NewSortRequest(source, list, cfg.Sort.Recursive)
	opts := sorter.Options{
		OnConflict: cfg.Sort.OnConflict,
		KeepGoing:  cfg.Sort.KeepGoing,
	}
	if cfg.Sort.Lock {
		opts.LockDir = runlock.DefaultDir()
	}
	return req, opts, nil
}

func newSortCmd(g *globalOptions) *cobra.Command {
	sf := &sortFlags{}

	cmd := &cobra.Command{
		Use:     "sort SOURCE",
		Short:   MsgSortShort,
		Long:    MsgSortLong,
		Example: MsgSortExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.sort")

			cfg, err := g.loadConfig(cmd)
			if err != nil {
				return err
			}

			req, opts, err := buildRun(args[0], sf, cfg)
			if err != nil {
				return err
			}

			result, runErr := sorter.Run(req, opts)

			logger.Info().
				Str("runID", result.RunID).
				Int("files", len(result.Outcomes)).
				Bool("failed", runErr != nil).
				Msg("Sort finished")

			// Nothing was attempted: the error alone says it all
			if runErr != nil && len(result.Outcomes) == 0 {
				return runErr
			}

			if err := newRenderer(cmd, cfg).RenderResult(result, runErr); err != nil {
				return err
			}
			if runErr != nil {
				return runErr
			}
			if failures := result.Failures(); len(failures) > 0 {
				return errors.Newf(errors.ErrIO, MsgFailuresFormat, len(failures)).
					WithDetail("runID", result.RunID)
			}
			return nil
		},
	}

	addSortFlags(cmd, sf)
	return cmd
}
