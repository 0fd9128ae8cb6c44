package output

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/filesort/pkg/errors"
	"github.com/arthur-debert/filesort/pkg/logging"
	"github.com/arthur-debert/filesort/pkg/rules"
	"github.com/arthur-debert/filesort/pkg/types"
	"github.com/dustin/go-humanize"
)

// Classification is the decision for one file as reported by classify
type Classification struct {
	File     types.FileTask
	Decision rules.Decision
	Err      error
}

// Renderer writes results in one format to one writer
type Renderer struct {
	w       io.Writer
	format  Format
	color   bool
	palette palette
}

// NewRenderer creates a Renderer. color is ignored by the json and table
// formats.
func NewRenderer(w io.Writer, format Format, color bool) *Renderer {
	if format == "" {
		format = FormatText
	}

	logger := logging.GetLogger("output")
	logger.Debug().
		Str("format", string(format)).
		Bool("color", color).
		Msg("Creating renderer")

	return &Renderer{
		w:       w,
		format:  format,
		color:   color,
		palette: newPalette(w, color && format == FormatText),
	}
}

// RenderResult reports a sort run. runErr is the error the run stopped
// with, if any.
func (r *Renderer) RenderResult(result *types.SortResult, runErr error) error {
	switch r.format {
	case FormatJSON:
		return writeJSON(r.w, newResultDoc(result, runErr))
	case FormatTable:
		return r.resultTable(result, runErr)
	}
	return r.resultText(result, runErr)
}

// RenderClassifications reports where files would go
func (r *Renderer) RenderClassifications(items []Classification) error {
	switch r.format {
	case FormatJSON:
		return writeJSON(r.w, newClassificationDocs(items))
	case FormatTable:
		return r.classificationTable(items)
	}

	p := r.palette
	for _, item := range items {
		var line string
		switch {
		case item.Err != nil:
			line = fmt.Sprintf("%s %s: %s", p.statusLabel(types.StatusFailed), item.File.Path, item.Err)
		case !item.Decision.Matched:
			line = fmt.Sprintf("%s %s", p.statusLabel(types.StatusUnmatched), item.File.Path)
		default:
			line = fmt.Sprintf("%s %s -> %s %s",
				p.statusLabel(statusMatch),
				item.File.Path,
				p.target.Render(item.Decision.Destination),
				p.muted.Render(fmt.Sprintf("(rule %d: %s)", item.Decision.Index+1, item.Decision.Rule.Label())))
		}
		if _, err := fmt.Fprintln(r.w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderRules lists compiled rules in evaluation order
func (r *Renderer) RenderRules(infos []rules.RuleInfo) error {
	switch r.format {
	case FormatJSON:
		return writeJSON(r.w, newRuleDocs(infos))
	case FormatTable:
		return r.rulesTable(infos)
	}

	p := r.palette
	if len(infos) == 0 {
		_, err := fmt.Fprintln(r.w, p.muted.Render("No rules defined"))
		return err
	}
	for _, info := range infos {
		if _, err := fmt.Fprintf(r.w, "%2d. %-24s %-13s -> %s\n",
			info.Index+1,
			info.Rule.Label(),
			p.muted.Render(string(info.Kind)),
			p.target.Render(info.Rule.Destination)); err != nil {
			return err
		}
	}
	return nil
}

// RenderError writes err the way the user sees it, with its code when
// it carries one
func (r *Renderer) RenderError(err error) error {
	if err == nil {
		return nil
	}
	if r.format == FormatJSON {
		return writeJSON(r.w, newErrorDoc(err))
	}
	_, werr := fmt.Fprintf(r.w, "%s %s\n", r.palette.err.Render("Error:"), err.Error())
	return werr
}

func (r *Renderer) resultText(result *types.SortResult, runErr error) error {
	p := r.palette
	var b strings.Builder

	for _, o := range result.Outcomes {
		name := relativeTo(result.Source, o.File.Path)
		b.WriteString(p.statusLabel(o.Status))
		b.WriteString(" ")
		b.WriteString(p.path.Render(name))

		switch o.Status {
		case types.StatusMoved:
			b.WriteString(" -> ")
			b.WriteString(p.target.Render(o.Target))
			if o.Renamed {
				b.WriteString(p.muted.Render(" (renamed)"))
			}
			if o.Overwrote {
				b.WriteString(p.muted.Render(" (replaced existing)"))
			}
		case types.StatusSkipped:
			b.WriteString(p.muted.Render(" (already in place)"))
		case types.StatusFailed:
			b.WriteString(": ")
			b.WriteString(o.Err.Error())
		}
		b.WriteString("\n")
	}

	b.WriteString(p.heading.Render(summary(result)))
	b.WriteString("\n")

	if runErr != nil {
		b.WriteString(p.err.Render("Stopped:"))
		b.WriteString(" ")
		b.WriteString(runErr.Error())
		b.WriteString("\n")
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

// summary is the one-line account of a run
func summary(result *types.SortResult) string {
	s := result.Stats()
	line := fmt.Sprintf("Sorted %s: %d moved, %d unmatched, %d skipped, %d failed",
		result.Source, s.Moved, s.Unmatched, s.Skipped, s.Failed)
	if s.Moved > 0 {
		line += fmt.Sprintf(" (%s)", humanize.Bytes(uint64(s.BytesMoved)))
	}
	return line
}

func relativeTo(base, path string) string {
	if base == "" {
		return path
	}
	rel, err := filepath.Rel(base, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

func errorCode(err error) string {
	if err == nil {
		return ""
	}
	return string(errors.GetErrorCode(err))
}
