package utils

import (
	"io"
	"kinnosuke/lib/scrapers/kinnosuke"

	"github.com/jedib0t/go-pretty/v6/table"
)

func NewTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(out)
	return t
}

func orDash(stamp string) string {
	if stamp == "" {
		return "-"
	}
	return stamp
}

func RenderTimeRecorder(out io.Writer, recorder kinnosuke.TimeRecorder) {
	t := NewTable(out)
	t.AppendHeader(table.Row{"clock in", "clock out", "go out", "go back"})
	t.AppendRow(table.Row{
		orDash(recorder.ClockIn),
		orDash(recorder.ClockOut),
		orDash(recorder.GoOut),
		orDash(recorder.GoBack),
	})
	t.Render()
}

func RenderRows(out io.Writer, title string, rows [][]string) {
	t := NewTable(out)
	t.SetTitle(title)
	for _, row := range rows {
		r := make(table.Row, len(row))
		for i, cell := range row {
			r[i] = cell
		}
		t.AppendRow(r)
	}
	t.Render()
}
