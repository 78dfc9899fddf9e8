package main

import (
	"path/filepath"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"clipcut/internal/history"
	"clipcut/internal/runner"
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

func renderPlanTable(entries []runner.Entry) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		status := "ready"
		switch {
		case e.DestinationExists:
			status = "exists"
		case e.SourceMissing:
			status = "missing source"
		}
		rows = append(rows, []string{
			e.VideoTitle,
			e.ClipTitle,
			formatSeconds(e.StartSeconds),
			formatSeconds(e.LengthSeconds),
			filepath.Base(e.Destination),
			status,
		})
	}
	return renderTable(
		[]string{"Video", "Clip", "Start", "Length", "Destination", "Status"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft, alignLeft},
	)
}

func renderHistoryTable(records []history.Record) string {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			strconv.FormatInt(rec.ID, 10),
			rec.CreatedAt.Local().Format(time.DateTime),
			string(rec.Status),
			formatSeconds(rec.StartSeconds),
			formatSeconds(rec.LengthSeconds),
			filepath.Base(rec.Destination),
		})
	}
	return renderTable(
		[]string{"ID", "When", "Status", "Start", "Length", "Destination"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight, alignLeft},
	)
}

func formatSeconds(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64) + "s"
}
