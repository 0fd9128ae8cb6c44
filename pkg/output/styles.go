package output

import (
	"io"

	"github.com/arthur-debert/filesort/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	colorSuccess = lipgloss.AdaptiveColor{Light: "#1a7f37", Dark: "#3fb950"}
	colorWarning = lipgloss.AdaptiveColor{Light: "#9a6700", Dark: "#d29922"}
	colorError   = lipgloss.AdaptiveColor{Light: "#cf222e", Dark: "#f85149"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#6e7781", Dark: "#8b949e"}
	colorAccent  = lipgloss.AdaptiveColor{Light: "#0969da", Dark: "#58a6ff"}
)

// statusMatch labels a classify decision that found a rule
const statusMatch types.OutcomeStatus = "match"

// palette holds the styles used by the text format
type palette struct {
	status  map[types.OutcomeStatus]lipgloss.Style
	path    lipgloss.Style
	target  lipgloss.Style
	muted   lipgloss.Style
	heading lipgloss.Style
	err     lipgloss.Style
}

func newPalette(w io.Writer, color bool) palette {
	r := lipgloss.NewRenderer(w)
	switch {
	case !color:
		r.SetColorProfile(termenv.Ascii)
	case r.ColorProfile() == termenv.Ascii:
		// forced colour on a writer that is not a terminal
		r.SetColorProfile(termenv.ANSI256)
		r.SetHasDarkBackground(true)
	}

	label := r.NewStyle().Width(10)

	return palette{
		status: map[types.OutcomeStatus]lipgloss.Style{
			types.StatusMoved:     label.Foreground(colorSuccess).Bold(true),
			statusMatch:           label.Foreground(colorSuccess),
			types.StatusUnmatched: label.Foreground(colorMuted),
			types.StatusSkipped:   label.Foreground(colorWarning),
			types.StatusFailed:    label.Foreground(colorError).Bold(true),
		},
		path:    r.NewStyle(),
		target:  r.NewStyle().Foreground(colorAccent),
		muted:   r.NewStyle().Foreground(colorMuted),
		heading: r.NewStyle().Bold(true),
		err:     r.NewStyle().Foreground(colorError).Bold(true),
	}
}

func (p palette) statusLabel(s types.OutcomeStatus) string {
	style, ok := p.status[s]
	if !ok {
		style = p.muted.Width(10)
	}
	return style.Render(string(s))
}
