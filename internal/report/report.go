// Package report lays calculation results out as titled tables, the rows a
// printed report shows, and renders them as text or CSV.
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
)

// Table is a titled grid of formatted cells
type Table struct {
	Title  string     `json:"title"`
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// Report groups the tables produced for one calculation
type Report struct {
	Title  string  `json:"title"`
	Tables []Table `json:"tables"`
}

func money(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}

func number(v float64) string {
	return humanize.FormatFloat("#,###.####", v)
}

func percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}

// kv builds a two-column label/value table
func kv(title string, pairs ...string) Table {
	t := Table{Title: title, Header: []string{"Concepto", "Valor"}}
	for i := 0; i+1 < len(pairs); i += 2 {
		t.Rows = append(t.Rows, []string{pairs[i], pairs[i+1]})
	}
	return t
}

// WriteText renders r as aligned plain text
func (r Report) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s\n%s\n", r.Title, strings.Repeat("=", len([]rune(r.Title)))); err != nil {
		return fmt.Errorf("failed to write report title: %w", err)
	}
	for _, t := range r.Tables {
		if _, err := fmt.Fprintf(w, "\n%s\n", t.Title); err != nil {
			return fmt.Errorf("failed to write table title: %w", err)
		}
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		if len(t.Header) > 0 {
			fmt.Fprintln(tw, strings.Join(t.Header, "\t"))
		}
		for _, row := range t.Rows {
			fmt.Fprintln(tw, strings.Join(row, "\t"))
		}
		if err := tw.Flush(); err != nil {
			return fmt.Errorf("failed to write table %q: %w", t.Title, err)
		}
	}
	return nil
}

// Text renders r as a string
func (r Report) Text() string {
	var buf bytes.Buffer
	_ = r.WriteText(&buf)
	return buf.String()
}

// WriteCSV renders every table as CSV, each preceded by its title row
func (r Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	for i, t := range r.Tables {
		if i > 0 {
			if err := cw.Write([]string{}); err != nil {
				return fmt.Errorf("failed to write csv separator: %w", err)
			}
		}
		if err := cw.Write([]string{t.Title}); err != nil {
			return fmt.Errorf("failed to write csv title: %w", err)
		}
		if len(t.Header) > 0 {
			if err := cw.Write(t.Header); err != nil {
				return fmt.Errorf("failed to write csv header: %w", err)
			}
		}
		if err := cw.WriteAll(t.Rows); err != nil {
			return fmt.Errorf("failed to write csv rows: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
