/*
File    : tsxlex/cmd/tsxlex/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the command-line harness for the tsxlex scanner. It
provides three modes of operation:
 1. REPL mode (default): interactive, line-at-a-time tokenization
 2. File mode: tokenize a whole source file
 3. Server mode: a line-oriented TCP service, one goroutine per
    connection and a fresh Lexer per line received

This harness only ever drives the lexer; there is no parser or
evaluator downstream of it.
*/
package main

import (
	"log/slog"
	"os"

	"github.com/fatih/color"
)

// VERSION is the current version of the tsxlex harness.
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the harness's author.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENCE specifies the software license.
var LICENCE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "tsxlex >>> "

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
 ██ ▄▄▄▄▄ ██   ██ ██   ██ ██      ███████ ██   ██
 ██ ██    ▄▄▄▄▄██ ▀██ ██  ██      ██       ██ ██
 ██ ▀▀▀▀▀ ▀▀▀▀▀██  ████   ██      █████     ███
 ██     ██ ██   ██  ██ ██ ██      ██       ██ ██
 ██ █████  ██   ██ ██   ██ ██████ ███████ ██   ██
`

// LINE is a separator used for visual formatting in the REPL banner.
var LINE = "----------------------------------------------------------------"

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

// verboseMode enables log/slog debug tracing of every token produced,
// shared by every mode (REPL, file, server) since only main parses flags.
var verboseMode bool

func main() {
	args := os.Args[1:]

	// --verbose/-V may appear anywhere; strip it out before dispatch.
	filtered := args[:0]
	for _, a := range args {
		if a == "--verbose" || a == "-V" {
			verboseMode = true
			continue
		}
		filtered = append(filtered, a)
	}
	args = filtered

	if verboseMode {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	} else {
		slog.SetLogLoggerLevel(slog.LevelWarn)
	}

	if len(args) == 0 {
		startRepl()
		return
	}

	switch arg := args[0]; arg {
	case "--help", "-h":
		showHelp()
	case "--version", "-v":
		showVersion()
	case "server":
		if len(args) < 2 {
			redColor.Fprintf(os.Stderr, "[USAGE ERROR] missing port for server mode. Usage: tsxlex server <port>\n")
			os.Exit(1)
		}
		startServer(args[1])
	default:
		runFile(args[0])
	}
}

func showHelp() {
	cyanColor.Println("tsxlex - a byte-level scanner for ECMAScript + TypeScript-superset source")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	cyanColor.Println("  tsxlex                     Start interactive REPL mode")
	cyanColor.Println("  tsxlex <path-to-file>      Tokenize a source file")
	cyanColor.Println("  tsxlex server <port>       Start a line-oriented TCP tokenizer server")
	cyanColor.Println("  tsxlex --help              Display this help message")
	cyanColor.Println("  tsxlex --version           Display version information")
	cyanColor.Println("  tsxlex --verbose           Trace every token to stderr via log/slog")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	cyanColor.Println("  .exit                      Exit the REPL")
}

func showVersion() {
	cyanColor.Println("tsxlex - a byte-level ECMAScript/TypeScript-superset lexer")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENCE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}
