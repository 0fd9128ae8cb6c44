package filesort

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/filesort/pkg/errors"
	"github.com/arthur-debert/filesort/pkg/output"
	"github.com/arthur-debert/filesort/pkg/rules"
	"github.com/arthur-debert/filesort/pkg/types"
	"github.com/spf13/cobra"
)

func newClassifyCmd(g *globalOptions) *cobra.Command {
	ro := &ruleOptions{}

	cmd := &cobra.Command{
		Use:     "classify FILE...",
		Short:   MsgClassifyShort,
		Long:    MsgClassifyLong,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig(cmd)
			if err != nil {
				return err
			}

			list, err := ro.loadRequired()
			if err != nil {
				return err
			}
			ruleset, err := rules.Compile(list)
			if err != nil {
				return err
			}

			items := make([]output.Classification, 0, len(args))
			for _, arg := range args {
				items = append(items, classifyPath(ruleset, arg))
			}

			return newRenderer(cmd, cfg).RenderClassifications(items)
		},
	}

	addRuleFlags(cmd, ro)
	return cmd
}

// classifyPath stats path and asks the ruleset where it belongs
func classifyPath(ruleset *rules.Ruleset, path string) output.Classification {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	item := output.Classification{
		File:     types.NewFileTask(path, 0),
		Decision: rules.NoMatch,
	}

	info, err := os.Stat(path)
	if err != nil {
		item.Err = errors.Wrapf(err, errors.ErrIO, "cannot read %s", path)
		return item
	}
	if !info.Mode().IsRegular() {
		item.Err = errors.Newf(errors.ErrInvalidInput, "%s is not a regular file", path)
		return item
	}

	item.File = types.NewFileTask(path, info.Size())
	item.Decision = ruleset.Classify(item.File)
	return item
}
