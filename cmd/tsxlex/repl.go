/*
File    : tsxlex/cmd/tsxlex/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"io"
	"os"
	"strings"

	"github.com/akashmaji946/tsxlex/lexer"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	greenColor  = color.New(color.FgGreen)
	yellowColor = color.New(color.FgYellow)
)

// printBanner writes the welcome banner and usage instructions.
func printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", LINE)
	greenColor.Fprintf(w, "%s\n", BANNER)
	blueColor.Fprintf(w, "%s\n", LINE)
	yellowColor.Fprintf(w, "Version: %s | Author: %s | License: %s\n", VERSION, AUTHOR, LICENCE)
	blueColor.Fprintf(w, "%s\n", LINE)
	cyanColor.Fprintf(w, "%s\n", "Type a line of ECMAScript/TypeScript and press enter to see its tokens")
	cyanColor.Fprintf(w, "%s\n", "Type '.exit' to quit")
	blueColor.Fprintf(w, "%s\n", LINE)
}

// startRepl runs the interactive REPL against stdin/stdout.
func startRepl() {
	printBanner(os.Stdout)

	rl, err := readline.New(PROMPT)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[REPL ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			os.Stdout.Write([]byte("Good bye!\n"))
			return
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			os.Stdout.Write([]byte("Good bye!\n"))
			return
		}
		rl.SaveHistory(line)

		tokenizeLine(os.Stdout, line)
	}
}

// tokenizeLine lexes a single line and prints its colorized token stream.
// Used by both the interactive REPL and the TCP server, which tokenizes
// one line per connection round-trip rather than keeping a persistent
// evaluator.
func tokenizeLine(w io.Writer, line string) {
	l := lexer.New(line)
	diag := &diagnostics{}
	dumpTokens(w, l, diag, verboseMode)
}
