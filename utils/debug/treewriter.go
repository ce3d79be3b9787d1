// Package debug renders indented, human readable dumps of parsed stylesheets
// for logs and debug reports.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

const indent = "  "

// TreeWriter accumulates an indented text tree.
type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw *TreeWriter) String() string {
	return tw.w.String()
}

func (tw *TreeWriter) pad(depth int) {
	for range depth {
		tw.w.WriteString(indent)
	}
}

// Line writes a formatted line at depth.
func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	tw.pad(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// TextBlock writes "label: value" with value quoted, so raw source text with
// line breaks stays on one line.
func (tw *TreeWriter) TextBlock(depth int, label, value string) {
	tw.pad(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value))
	tw.w.WriteByte('\n')
}

// Node writes label at depth and calls children to fill in the level below.
func (tw *TreeWriter) Node(depth int, label string, children func(depth int)) {
	tw.Line(depth, "%s", label)
	if children != nil {
		children(depth + 1)
	}
}

// List writes label followed by one line per item, "(none)" when empty.
func (tw *TreeWriter) List(depth int, label string, items []string) {
	if len(items) == 0 {
		tw.Line(depth, "%s: (none)", label)
		return
	}
	tw.Line(depth, "%s:", label)
	for _, item := range items {
		tw.Line(depth+1, "- %s", item)
	}
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
