package filesort

import (
	"fmt"

	"github.com/arthur-debert/filesort/pkg/output"
	"github.com/arthur-debert/filesort/pkg/rules"
	"github.com/spf13/cobra"
)

func newRulesCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rules",
		Short:   MsgRulesShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newRulesCheckCmd(g))
	return cmd
}

func newRulesCheckCmd(g *globalOptions) *cobra.Command {
	ro := &ruleOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: MsgRulesCheckShort,
		Long:  MsgRulesCheckLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig(cmd)
			if err != nil {
				return err
			}

			list, err := ro.load()
			if err != nil {
				return err
			}
			ruleset, err := rules.Compile(list)
			if err != nil {
				return err
			}

			if err := newRenderer(cmd, cfg).RenderRules(ruleset.Describe()); err != nil {
				return err
			}
			if cfg.Output.Format == output.FormatText && ruleset.Len() > 0 {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), MsgRulesValid, ruleset.Len())
			}
			return err
		},
	}

	addRuleFlags(cmd, ro)
	return cmd
}
