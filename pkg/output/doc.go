// Package output renders sort results, classification decisions and rule
// listings for the command line.
//
// Three formats are supported:
//
//	text   one styled line per file plus a summary (lipgloss)
//	table  a rounded table (go-pretty)
//	json   an indented document for scripts
//
// Colour is decided once per Renderer from the configured ColorMode, the
// NO_COLOR environment variable and whether the writer is a terminal.
package output
