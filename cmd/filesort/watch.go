package filesort

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arthur-debert/filesort/pkg/logging"
	"github.com/arthur-debert/filesort/pkg/sorter"
	"github.com/arthur-debert/filesort/pkg/types"
	"github.com/arthur-debert/filesort/pkg/watch"
	"github.com/spf13/cobra"
)

func newWatchCmd(g *globalOptions) *cobra.Command {
	sf := &sortFlags{}
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:     "watch SOURCE",
		Short:   MsgWatchShort,
		Long:    MsgWatchLong,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.watch")

			cfg, err := g.loadConfig(cmd)
			if err != nil {
				return err
			}
			req, opts, err := buildRun(args[0], sf, cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			renderer := newRenderer(cmd, cfg)
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), MsgWatchStarted, args[0])

			return watch.Run(ctx, watch.Options{
				Source:    args[0],
				Recursive: cfg.Sort.Recursive,
				Debounce:  cfg.Watch.Debounce,
				Sort: func() (*types.SortResult, error) {
					return sorter.Run(req, opts)
				},
				OnResult: func(result *types.SortResult, err error) {
					if result == nil {
						return
					}
					stats := result.Stats()
					if err == nil && stats.Moved == 0 && stats.Failed == 0 {
						logger.Debug().Str("runID", result.RunID).Msg("Nothing to move")
						return
					}
					if renderErr := renderer.RenderResult(result, err); renderErr != nil {
						logger.Warn().Err(renderErr).Msg("Failed to render result")
					}
				},
			})
		},
	}

	addSortFlags(cmd, sf)
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, MsgFlagDebounce)
	return cmd
}
