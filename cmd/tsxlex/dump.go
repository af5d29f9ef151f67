/*
File    : tsxlex/cmd/tsxlex/dump.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/akashmaji946/tsxlex/lexer"
	"github.com/fatih/color"
)

// Color definitions for the token dump. Keywords and soft keywords stand
// out in blue, literals in yellow, identifiers plain, punctuators dim,
// and either error sentinel in red.
var (
	keywordColor    = color.New(color.FgBlue)
	literalColor    = color.New(color.FgYellow)
	identifierColor = color.New(color.FgWhite)
	punctuatorColor = color.New(color.FgHiBlack)
	errorColor      = color.New(color.FgRed, color.Bold)
)

// diagnostics collects every lexing error encountered while dumping a
// token stream, instead of stopping at the first one.
type diagnostics struct {
	errs []*lexer.LexError
}

func (d *diagnostics) record(err *lexer.LexError) {
	d.errs = append(d.errs, err)
}

func (d *diagnostics) HasErrors() bool {
	return len(d.errs) > 0
}

// colorFor picks the display color for a token kind.
func colorFor(kind lexer.Kind) *color.Color {
	switch {
	case kind == lexer.KindUnexpectedToken || kind == lexer.KindUnexpectedEndOfProgram:
		return errorColor
	case kind == lexer.KindLiteralString || kind == lexer.KindLiteralNumber ||
		kind == lexer.KindLiteralRegExp || kind == lexer.KindLiteralTrue ||
		kind == lexer.KindLiteralFalse || kind == lexer.KindLiteralNull ||
		kind == lexer.KindLiteralUndefined:
		return literalColor
	case kind == lexer.KindIdentifier:
		return identifierColor
	case kind.IsWord():
		return keywordColor
	default:
		return punctuatorColor
	}
}

// dumpTokens drives l to KindEOF, writing one colorized line per token to
// w and recording every KindUnexpectedToken / KindUnexpectedEndOfProgram
// it hits into diag. When verbose is true, each token is also traced to
// slog at debug level (kind, span, ASI classification) before it prints.
func dumpTokens(w io.Writer, l *lexer.Lexer, diag *diagnostics, verbose bool) {
	for {
		kind := l.Token()
		start, end := l.Loc()

		if verbose {
			slog.Debug("token", "kind", kind.String(), "start", start, "end", end, "asi", l.ASI())
		}

		switch kind {
		case lexer.KindUnexpectedToken, lexer.KindUnexpectedEndOfProgram:
			err := l.InvalidToken()
			diag.record(err)
			errorColor.Fprintf(w, "%-24s %q  [%d,%d)\n", kind.String(), err.Raw, start, end)
			if kind == lexer.KindUnexpectedEndOfProgram {
				return
			}
			continue
		case lexer.KindEOF:
			punctuatorColor.Fprintf(w, "%-24s [%d,%d)\n", "EOF", start, end)
			return
		}

		text := l.TokenText()
		colorFor(kind).Fprintf(w, "%-24s %q  [%d,%d)\n", kind.String(), text, start, end)
		l.Consume()
	}
}

// formatDiagnostics renders a summary line per collected lexing error, for
// use at the end of file mode once the whole stream has been walked.
func formatDiagnostics(diag *diagnostics) string {
	if !diag.HasErrors() {
		return ""
	}
	out := fmt.Sprintf("%d lexing error(s):\n", len(diag.errs))
	for _, err := range diag.errs {
		out += fmt.Sprintf("  %s\n", err)
	}
	return out
}
