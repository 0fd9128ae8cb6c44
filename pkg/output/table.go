package output

import (
	"fmt"
	"io"

	"github.com/arthur-debert/filesort/pkg/rules"
	"github.com/arthur-debert/filesort/pkg/types"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func (r *Renderer) resultTable(result *types.SortResult, runErr error) error {
	rows := make([][]string, 0, len(result.Outcomes))
	for _, o := range result.Outcomes {
		detail := o.Target
		if o.Status == types.StatusFailed && o.Err != nil {
			detail = o.Err.Error()
		}
		rows = append(rows, []string{
			string(o.Status),
			relativeTo(result.Source, o.File.Path),
			humanize.Bytes(uint64(o.File.Size)),
			ruleLabel(o.RuleIndex, o.Rule),
			detail,
		})
	}

	out := renderTable(
		[]string{"Status", "File", "Size", "Rule", "Target"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignLeft},
	)
	if _, err := fmt.Fprintln(r.w, out); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(r.w, summary(result)); err != nil {
		return err
	}
	if runErr != nil {
		_, err := fmt.Fprintf(r.w, "Stopped: %s\n", runErr)
		return err
	}
	return nil
}

func (r *Renderer) classificationTable(items []Classification) error {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		dest := item.Decision.Destination
		if item.Err != nil {
			dest = item.Err.Error()
		}
		rows = append(rows, []string{
			item.File.Path,
			humanize.Bytes(uint64(item.File.Size)),
			ruleLabel(item.Decision.Index, item.Decision.Rule),
			dest,
		})
	}
	return writeLine(r.w, renderTable(
		[]string{"File", "Size", "Rule", "Destination"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft},
	))
}

func (r *Renderer) rulesTable(infos []rules.RuleInfo) error {
	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, []string{
			fmt.Sprintf("%d", info.Index+1),
			info.Rule.Label(),
			string(info.Kind),
			info.Rule.Destination,
		})
	}
	return writeLine(r.w, renderTable(
		[]string{"#", "Pattern", "Kind", "Destination"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
	))
}

func ruleLabel(index int, rule types.Rule) string {
	if index < 0 {
		return "-"
	}
	return fmt.Sprintf("%d: %s", index+1, rule.Label())
}

func writeLine(w io.Writer, s string) error {
	_, err := fmt.Fprintln(w, s)
	return err
}
