// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"triadc/internal/errors"
	"triadc/internal/ir"
	"triadc/internal/parser"
)

const PROMPT = ">> "

// Start compiles each input line on its own and prints the final triads,
// or the diagnostics when the line does not compile. It returns at end of input.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		fmt.Fprint(out, Eval(line))
	}
}

// Eval runs the whole pipeline over one line.
func Eval(line string) string {
	root, scanErrors, violation := parser.ParseSource(line)
	if errs := errors.Collect(scanErrors, violation); len(errs) > 0 {
		return errors.NewErrorReporter("<repl>", line).FormatAll(errs)
	}

	return ir.PrintProgram(ir.Compile(root))
}
