// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"triadc/grammar"
	"triadc/internal/errors"
	"triadc/internal/ir"
	"triadc/internal/parser"
	"triadc/internal/semantic"
	"triadc/internal/symtab"
)

var (
	showTokens  = flag.Bool("tokens", false, "print the token stream")
	showTree    = flag.Bool("tree", false, "print the parse tree")
	formatOnly  = flag.Bool("fmt", false, "print the program in canonical layout")
	showEBNF    = flag.Bool("ebnf", false, "print the grammar in EBNF")
	showSymbols = flag.Bool("symbols", false, "compare identifier lookups in a rehash table and a binary tree")
	tableSize   = flag.Int("table-size", symtab.DefaultTableSize, "rehash table size used by -symbols")
	rawOnly     = flag.Bool("raw", false, "print the triads before optimization")
	verbose     = flag.Bool("v", false, "log optimization passes")
	noColor     = flag.Bool("no-color", false, "disable colored output")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: triadc [flags] <file.tri | ->")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *noColor {
		color.NoColor = true
	}
	if *verbose {
		commonlog.Configure(2, nil)
	} else {
		commonlog.Configure(0, nil)
	}

	if *showEBNF {
		fmt.Println(grammar.EBNF())
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	startTime := time.Now()
	path := flag.Arg(0)

	source, err := readSource(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		os.Exit(1)
	}
	if path == "-" {
		path = "<stdin>"
	}

	if *formatOnly {
		formatted, err := grammar.Format(path, source)
		if err != nil {
			fmt.Fprint(os.Stderr, grammar.FormatParseError(source, err))
			os.Exit(1)
		}
		fmt.Print(formatted)
		return
	}

	if *showTokens {
		if !printTokens(parser.Tokenize(source)) {
			os.Exit(1)
		}
		return
	}

	if *showSymbols {
		tokens, _ := parser.SplitResults(parser.Tokenize(source))
		printSymbols(symtab.Compare(symtab.Identifiers(tokens), *tableSize))
		return
	}

	root, scanErrors, violation := parser.ParseSource(source)
	errorReporter := errors.NewErrorReporter(path, source)

	// Report lexical errors and the grammar violation
	if errs := errors.Collect(scanErrors, violation); len(errs) > 0 {
		fmt.Print(errorReporter.FormatAll(errs))
		color.Red("Compilation failed with %s after %s", errors.Summary(errs), formatDuration(time.Since(startTime)))
		os.Exit(1)
	}

	// Warnings never stop the pipeline
	warnings := semantic.NewAnalyzer().Analyze(root)
	fmt.Print(errorReporter.FormatAll(warnings))

	switch {
	case *showTree:
		fmt.Println(root.String())
	case *rawOnly:
		fmt.Print(ir.Print(ir.BuildTriads(root)))
	default:
		fmt.Print(highlightHeaders(ir.PrintCompilation(ir.Compile(root))))
	}

	color.Green("Successfully processed %s in %s", path, formatDuration(time.Since(startTime)))
}

func readSource(path string) (string, error) {
	var (
		content []byte
		err     error
	)
	if path == "-" {
		content, err = io.ReadAll(os.Stdin)
	} else {
		content, err = os.ReadFile(path)
	}
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// printTokens lists tokens and lexical errors in source order. It reports
// whether the stream was free of errors.
func printTokens(results []parser.ScanResult) bool {
	clean := true
	for _, res := range results {
		if res.IsError() {
			clean = false
			fmt.Println(color.RedString("%-8s %-20s %s", res.Err.Position, "error", res.Err.Message))
			continue
		}
		fmt.Printf("%-8s %-20s %s\n", res.Token.Position, res.Token.Kind, res.Token.Text)
	}
	return clean
}

func printSymbols(report symtab.Report) {
	bold := color.New(color.Bold).SprintFunc()

	fmt.Println(bold(fmt.Sprintf("%-16s %8s %8s", "identifier", "rehash", "tree")))
	for _, e := range report.Entries {
		if !e.Stored {
			fmt.Printf("%-16s %8s %8d\n", e.ID, color.YellowString("missing"), e.TreeAttempts)
			continue
		}
		fmt.Printf("%-16s %8d %8d\n", e.ID, e.RehashAttempts, e.TreeAttempts)
	}
	fmt.Printf("%-16s %8.2f %8.2f\n", "average", report.RehashAverage, report.TreeAverage)
	if report.Missing > 0 {
		color.Yellow("%d identifier(s) did not fit the rehash table; raise -table-size", report.Missing)
	}
}

// highlightHeaders colors the unindented stage headers of a compilation listing.
func highlightHeaders(listing string) string {
	header := color.New(color.FgCyan, color.Bold).SprintFunc()

	lines := strings.SplitAfter(listing, "\n")
	for i, line := range lines {
		if line != "" && line != "\n" && !strings.HasPrefix(line, " ") {
			lines[i] = header(strings.TrimSuffix(line, "\n")) + "\n"
		}
	}
	return strings.Join(lines, "")
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
