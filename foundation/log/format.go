// File: format.go
// Title: Record Formatters
// Description: Defines the formatter interface and the two line renderers:
//              the compact colorized console format for interactive use and
//              the verbose file format that carries the source location.
// Author: voyager-mc
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation with console and file formats

package log

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// timeLayout is the timestamp layout shared by both line formats.
const timeLayout = "2006-01-02 15:04:05"

// Formatter renders a record into one display line (including the
// trailing newline). Formatters must be safe for concurrent use; the
// owning sink serializes writes, not formatting.
type Formatter interface {
	Format(record *Record) ([]byte, error)
}

// TextFormatter renders the durable file format:
//
//	2006-01-02 15:04:05 - <name> - <LEVEL> - <function>:<line> - <message>
//
// The <function>:<line> segment is omitted when no caller information is
// available; the rest of the layout is unchanged.
type TextFormatter struct{}

// NewTextFormatter creates a new file-format renderer.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format formats a record as a durable log line.
func (f *TextFormatter) Format(record *Record) ([]byte, error) {
	ts := record.Time.Format(timeLayout)
	if record.Caller != nil {
		return []byte(fmt.Sprintf("%s - %s - %s - %s:%d - %s\n",
			ts, record.Name, record.Level,
			record.Caller.Function, record.Caller.Line,
			record.Message)), nil
	}
	return []byte(fmt.Sprintf("%s - %s - %s - %s\n",
		ts, record.Name, record.Level, record.Message)), nil
}

// ConsoleFormatter renders the compact interactive format:
//
//	2006-01-02 15:04:05 - <name> - <LEVEL> - <message>
//
// with the level colored by severity and the namespace in magenta when
// the destination is a terminal.
type ConsoleFormatter struct {
	// DisableColors suppresses ANSI codes regardless of the destination.
	DisableColors bool

	// ForceColors emits ANSI codes even when the destination is not a
	// terminal.
	ForceColors bool

	isTerminal bool
}

// NewConsoleFormatter creates a console renderer that colorizes output
// when w is an interactive terminal.
func NewConsoleFormatter(w io.Writer) *ConsoleFormatter {
	return &ConsoleFormatter{isTerminal: IsTerminal(w)}
}

// Format formats a record as a compact console line.
func (f *ConsoleFormatter) Format(record *Record) ([]byte, error) {
	ts := record.Time.Format(timeLayout)
	if f.colorized() {
		return []byte(fmt.Sprintf("%s - %s%s%s - %s%s%s - %s\n",
			ts,
			colorNamespace, record.Name, colorReset,
			record.Level.Color(), record.Level, colorReset,
			record.Message)), nil
	}
	return []byte(fmt.Sprintf("%s - %s - %s - %s\n",
		ts, record.Name, record.Level, record.Message)), nil
}

func (f *ConsoleFormatter) colorized() bool {
	if f.DisableColors {
		return false
	}
	return f.ForceColors || f.isTerminal
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
