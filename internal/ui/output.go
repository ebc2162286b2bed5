// Package ui provides consistent styled output for the toolbox CLI.
package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// ANSI color codes.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

// status is a prefix and the color it is drawn in.
type status struct {
	prefix string
	color  string
}

var (
	statusSuccess = status{prefix: "✓", color: colorGreen}
	statusInfo    = status{prefix: "info:", color: colorCyan}
	statusWarning = status{prefix: "warning:", color: colorYellow}
	statusError   = status{prefix: "error:", color: colorRed}
)

// Writer prints status lines and tables. Success and info lines go to out,
// warnings and errors to errOut.
type Writer struct {
	out     io.Writer
	errOut  io.Writer
	noColor bool
}

// NewWriterWithOutputs creates a Writer over the given destinations.
func NewWriterWithOutputs(out, errOut io.Writer, noColor bool) *Writer {
	return &Writer{
		out:     out,
		errOut:  errOut,
		noColor: noColor,
	}
}

// Successf prints a formatted message with a green checkmark prefix.
func (w *Writer) Successf(format string, args ...any) {
	w.printf(w.out, statusSuccess, format, args...)
}

// Infof prints a formatted message with a cyan "info:" prefix.
func (w *Writer) Infof(format string, args ...any) {
	w.printf(w.out, statusInfo, format, args...)
}

// Warningf prints a formatted message to stderr with a yellow "warning:" prefix.
func (w *Writer) Warningf(format string, args ...any) {
	w.printf(w.errOut, statusWarning, format, args...)
}

// Error prints err to stderr with a red "error:" prefix.
func (w *Writer) Error(err error) {
	w.printf(w.errOut, statusError, "%v", err)
}

// Table writes header and rows to stdout as tab-aligned columns.
// Header cells are upper-cased.
func (w *Writer) Table(header []string, rows [][]string) error {
	return WriteTable(w.out, header, rows)
}

// WriteTable writes header and rows to out as tab-aligned columns.
func WriteTable(out io.Writer, header []string, rows [][]string) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	if len(header) > 0 {
		upper := make([]string, len(header))
		for i, h := range header {
			upper[i] = strings.ToUpper(h)
		}

		if _, err := fmt.Fprintln(tw, strings.Join(upper, "\t")); err != nil {
			return err
		}
	}

	for _, row := range rows {
		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")); err != nil {
			return err
		}
	}

	return tw.Flush()
}

func (w *Writer) printf(dst io.Writer, s status, format string, args ...any) {
	prefix := s.prefix
	if !w.noColor {
		prefix = s.color + prefix + colorReset
	}

	// Best-effort output; a failed write to the terminal has nowhere to go.
	_, _ = fmt.Fprintf(dst, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}
