package filesort

import (
	"io"

	"github.com/arthur-debert/filesort/pkg/config"
	"github.com/arthur-debert/filesort/pkg/output"
	"github.com/spf13/cobra"
)

// ReportError writes err to w in the output format the run asked for,
// so a --format json caller gets a JSON error document. An explicit
// --format wins; otherwise the configured format is used, falling back
// to text when the configuration itself cannot be read.
func ReportError(rootCmd *cobra.Command, w io.Writer, err error) {
	format := output.FormatText

	flags := rootCmd.PersistentFlags()
	if flag := flags.Lookup("format"); flag != nil && flag.Changed {
		if parsed, perr := output.ParseFormat(flag.Value.String()); perr == nil {
			format = parsed
		}
	} else {
		configFile, _ := flags.GetString("config")
		if cfg, cerr := config.Load(config.LoadOptions{File: configFile}); cerr == nil {
			format = cfg.Output.Format
		}
	}

	_ = output.NewRenderer(w, format, output.UseColor(output.ColorAuto, w)).RenderError(err)
}
