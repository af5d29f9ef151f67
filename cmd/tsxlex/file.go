/*
File    : tsxlex/cmd/tsxlex/file.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"os"

	"github.com/akashmaji946/tsxlex/lexer"
)

// runFile reads fileName, tokenizes its contents, prints the full token
// stream, and exits non-zero if any lexing error was produced. Every
// KindUnexpectedToken / KindUnexpectedEndOfProgram is reported, not just
// the first.
func runFile(fileName string) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file %q: %v\n", fileName, err)
		os.Exit(1)
	}

	l := lexer.New(string(source))
	diag := &diagnostics{}
	dumpTokens(os.Stdout, l, diag, verboseMode)

	if diag.HasErrors() {
		redColor.Fprint(os.Stderr, formatDiagnostics(diag))
		os.Exit(1)
	}
}
