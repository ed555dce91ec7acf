package errors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"triadc/token"
)

type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
	Help    ErrorLevel = "help"
)

// CompilerError is one diagnostic about a triad program. Length is counted
// in runes from Position; zero underlines a single rune.
type CompilerError struct {
	Level       ErrorLevel
	Code        string
	Message     string
	Position    token.Position
	Length      int
	Suggestions []Suggestion
	Notes       []string
	HelpText    string
}

func (e CompilerError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Position, e.label(), e.Message)
}

// label is "error[E0203]" or just the level when there is no code.
func (e CompilerError) label() string {
	if e.Code == "" {
		return string(e.Level)
	}
	return fmt.Sprintf("%s[%s]", e.Level, e.Code)
}

// Suggestion proposes a fix. Replacement, when set, is the text to put at
// Position in place of Length runes.
type Suggestion struct {
	Message     string
	Replacement string
	Position    token.Position
	Length      int
}

// minGutter keeps the line-number column aligned for short files.
const minGutter = 3

// ErrorReporter renders diagnostics against the source they refer to: a
// header, the location, the offending line between its neighbours with a
// caret underline, then suggestions, notes and help.
type ErrorReporter struct {
	filename string
	lines    []string
}

func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// FormatAll renders errs in order, each followed by a blank line.
func (er *ErrorReporter) FormatAll(errs []CompilerError) string {
	var b strings.Builder
	for _, err := range errs {
		b.WriteString(er.FormatError(err))
	}
	return b.String()
}

func (er *ErrorReporter) FormatError(err CompilerError) string {
	var b strings.Builder
	w := newGutterWriter(&b, err.Position.Line)

	fmt.Fprintf(&b, "%s: %s\n", levelStyle(err.Level)(err.label()), err.Message)

	if err.Position.IsValid() {
		w.arrow(fmt.Sprintf("%s:%d:%d", er.filename, err.Position.Line, err.Position.Column))
		w.bar("")
		er.writeSnippet(w, err)
	} else {
		w.arrow(er.filename)
	}

	writeSuggestions(w, err.Suggestions)
	for _, note := range err.Notes {
		w.bar(color.BlueString("note:") + " " + note)
	}
	if err.HelpText != "" {
		w.bar(color.GreenString("help:") + " " + err.HelpText)
	}

	b.WriteString("\n")
	return b.String()
}

// writeSnippet prints the line before, the offending line with its marker,
// and the line after, skipping neighbours outside the source.
func (er *ErrorReporter) writeSnippet(w *gutterWriter, err CompilerError) {
	line := err.Position.Line
	for n := line - 1; n <= line+1; n++ {
		if n < 1 || n > len(er.lines) {
			continue
		}
		if n != line {
			w.numbered(n, er.lines[n-1], false)
			continue
		}
		w.numbered(n, er.lines[n-1], true)
		w.bar(caret(err.Position.Column, err.Length, err.Level))
	}
}

func writeSuggestions(w *gutterWriter, suggestions []Suggestion) {
	if len(suggestions) == 0 {
		return
	}
	cyan := color.New(color.FgCyan).SprintFunc()

	w.bar("")
	for i, s := range suggestions {
		prefix := cyan("    ")
		if i == 0 {
			prefix = cyan("help") + " " + cyan("try") + ":"
		}
		w.plain(prefix + " " + s.Message)

		if s.Replacement != "" {
			w.bar("")
			w.plain(cyan("│") + " " + cyan(s.Replacement))
		}
	}
}

// caret underlines length runes starting at the 1-based column. Everything
// but warnings is underlined in red.
func caret(column, length int, level ErrorLevel) string {
	length = max(length, 1)
	style := levelStyle(Error)
	if level == Warning {
		style = levelStyle(Warning)
	}
	return strings.Repeat(" ", max(0, column-1)) + style(strings.Repeat("^", length))
}

func levelStyle(level ErrorLevel) func(...interface{}) string {
	switch level {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	case Help:
		return color.New(color.FgGreen, color.Bold).SprintFunc()
	}
	return color.New(color.FgRed, color.Bold).SprintFunc()
}

// gutterWriter writes lines behind a right-aligned line-number column.
type gutterWriter struct {
	b     *strings.Builder
	width int
	dim   func(...interface{}) string
	bold  func(...interface{}) string
}

func newGutterWriter(b *strings.Builder, line int) *gutterWriter {
	return &gutterWriter{
		b:     b,
		width: max(len(strconv.Itoa(line)), minGutter),
		dim:   color.New(color.Faint).SprintFunc(),
		bold:  color.New(color.Bold).SprintFunc(),
	}
}

func (w *gutterWriter) blank() string {
	return strings.Repeat(" ", w.width)
}

func (w *gutterWriter) arrow(location string) {
	fmt.Fprintf(w.b, "%s %s %s\n", w.blank(), w.dim("-->"), location)
}

// bar writes text after an empty gutter and a separator; empty text leaves
// only the separator.
func (w *gutterWriter) bar(text string) {
	if text == "" {
		fmt.Fprintf(w.b, "%s %s\n", w.blank(), w.dim("│"))
		return
	}
	fmt.Fprintf(w.b, "%s %s %s\n", w.blank(), w.dim("│"), text)
}

func (w *gutterWriter) plain(text string) {
	fmt.Fprintf(w.b, "%s %s\n", w.blank(), text)
}

func (w *gutterWriter) numbered(n int, text string, current bool) {
	number := fmt.Sprintf("%*d", w.width, n)
	if current {
		number = w.bold(number)
	} else {
		number = w.dim(number)
	}
	fmt.Fprintf(w.b, "%s %s %s\n", number, w.dim("│"), text)
}
