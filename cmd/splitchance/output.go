package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/npratt/splitchance/internal/analysis"
	"github.com/npratt/splitchance/internal/run"
	"github.com/npratt/splitchance/internal/settings"
	"github.com/npratt/splitchance/internal/timing"
)

// writeSettingsTable prints a settings description with field indices.
func writeSettingsTable(w io.Writer, name string, desc settings.Description) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle(name)
	t.AppendHeader(table.Row{"#", "Setting", "Value", "Description"})
	for i, f := range desc.Fields {
		t.AppendRow(table.Row{i, f.Name, f.Value.String(), f.Description})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, WidthMax: 60},
	})
	t.Render()
}

// writeSummary prints, for every segment, how many attempts reached it and
// how many completed it, followed by the run as a whole.
func writeSummary(w io.Writer, r *run.Run) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	if r.Game != "" || r.Category != "" {
		t.SetTitle(fmt.Sprintf("%s %s", r.Game, r.Category))
	}
	t.AppendHeader(table.Row{"#", "Segment", "Reached", "Completed", "Success", "Reset"})

	for i, seg := range r.Segments {
		counts := analysis.Calculate(timing.NewSnapshot(r, timing.Running, i))
		t.AppendRow(countsRow(i+1, seg.Name, counts))
	}
	t.AppendSeparator()
	t.AppendFooter(countsRow("", "Run", analysis.Calculate(timing.NewSnapshot(r, timing.NotRunning, timing.NoSplit))))

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})
	t.Render()
}

func countsRow(index any, name string, c analysis.SuccessCounts) table.Row {
	success, reset := "-", "-"
	if c.TotalAttempts > 0 && c.SuccessfulAttempts <= c.TotalAttempts {
		p := float64(c.SuccessfulAttempts) / float64(c.TotalAttempts)
		success = fmt.Sprintf("%.1f%%", 100*p)
		reset = fmt.Sprintf("%.1f%%", 100*(1-p))
	}
	return table.Row{
		index,
		name,
		humanize.Comma(int64(c.TotalAttempts)),
		humanize.Comma(int64(c.SuccessfulAttempts)),
		success,
		reset,
	}
}
