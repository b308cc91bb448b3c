// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Padding(1, 4, 0, 4)
	headerStyle = lipgloss.NewStyle().Reverse(true).Padding(0, 2).Align(lipgloss.Center)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	failedStyle = cellStyle.
			Foreground(lipgloss.AdaptiveColor{Light: "9", Dark: "9"}).
			Bold(true)
)

// column of a report: its header (empty for a headerless report) and alignment.
type column struct {
	name  string
	align lipgloss.Position
}

// tableReport is a titled table whose rows can be flagged as failed, rendered in red.
type tableReport struct {
	title   string
	columns []column
	rows    [][]string
	failed  []bool
}

func newTableReport(title string, columns ...column) *tableReport {
	return &tableReport{title: title, columns: columns}
}

// newFieldsReport returns a two-column report of right-aligned names and their values.
func newFieldsReport(title string) *tableReport {
	return newTableReport(title, column{align: lipgloss.Right}, column{align: lipgloss.Left})
}

// add appends a row. Missing cells are left empty.
func (r *tableReport) add(failed bool, cells ...string) {
	r.rows = append(r.rows, cells)
	r.failed = append(r.failed, failed)
}

// field appends a name/value row.
func (r *tableReport) field(name, value string) {
	r.add(false, name, value)
}

func (r *tableReport) hasHeader() bool {
	for _, c := range r.columns {
		if c.name != "" {
			return true
		}
	}
	return false
}

func (r *tableReport) style(row, col int) lipgloss.Style {
	if row == lgtable.HeaderRow {
		return headerStyle
	}
	s := cellStyle.Faint(row%2 == 1)
	if row < len(r.failed) && r.failed[row] {
		s = failedStyle
	}
	if col < len(r.columns) {
		s = s.Align(r.columns[col].align)
	}
	return s
}

// String renders the title followed by the table.
func (r *tableReport) String() string {
	t := lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		StyleFunc(r.style).
		Rows(r.rows...)
	if r.hasHeader() {
		headers := make([]string, len(r.columns))
		for ii, c := range r.columns {
			headers[ii] = c.name
		}
		t = t.Headers(headers...)
	}
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(r.title))
	sb.WriteByte('\n')
	sb.WriteString(t.Render())
	return sb.String()
}
