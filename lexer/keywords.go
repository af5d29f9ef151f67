/*
File    : tsxlex/lexer/keywords.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package lexer

// This file implements the per-first-letter keyword trie: one handler
// per letter that can start a reserved word, registered into the
// dispatch table in lexer.go's init(). Each handler tries its letter's
// candidate spellings in turn and falls back to a plain identifier scan
// if none match. Matching this way — instead of scanning the whole
// label first and then doing a map lookup — means an identifier that
// isn't a keyword (the overwhelmingly common case) never pays for a
// string allocation or hash before it's recognized as one.
//
// A candidate only matches if the byte immediately following its last
// letter cannot itself continue a label and is not a backslash
// (tryKeyword's boundary check), so "class" matches but "classroom"
// falls through to the identifier path.

// tryKeyword attempts to match word against the source starting at
// start (which must point at word's first byte, already identified by
// the dispatch table but not yet consumed). On success it leaves the
// lexer positioned just past the match, sets l.token to kind, and
// returns true. On failure it leaves l.index wherever the mismatch was
// found; every attempt begins by resetting l.index to start, and
// fallbackIdentifier resets it as well.
func tryKeyword(l *Lexer, start int, word string, kind Kind) bool {
	l.index = start
	for i := 1; i < len(word); i++ {
		if l.nextByte() != word[i] {
			return false
		}
	}
	l.bump()
	if ch := l.readByte(); legalInLabel(ch) || ch == '\\' {
		return false
	}
	l.token = kind
	return true
}

// fallbackIdentifier is reached when no candidate for this letter
// matched: rewind to just past the first letter and scan the rest of
// the label normally.
func fallbackIdentifier(l *Lexer, start int) {
	l.index = start + 1
	l.readLabel()
	l.token = KindIdentifier
}

func lA(l *Lexer) {
	start := l.index
	switch {
	case tryKeyword(l, start, "async", KindKeywordAsync):
	case tryKeyword(l, start, "await", KindKeywordAwait):
	case tryKeyword(l, start, "as", KindAs):
	case tryKeyword(l, start, "any", KindTypeAny):
	default:
		fallbackIdentifier(l, start)
	}
}

func lB(l *Lexer) {
	start := l.index
	switch {
	case tryKeyword(l, start, "break", KindKeywordBreak):
	case tryKeyword(l, start, "boolean", KindTypeBoolean):
	default:
		fallbackIdentifier(l, start)
	}
}

func lC(l *Lexer) {
	start := l.index
	switch {
	case tryKeyword(l, start, "const", KindKeywordConst):
	case tryKeyword(l, start, "continue", KindKeywordContinue):
	case tryKeyword(l, start, "case", KindKeywordCase):
	case tryKeyword(l, start, "catch", KindKeywordCatch):
	case tryKeyword(l, start, "class", KindKeywordClass):
	default:
		fallbackIdentifier(l, start)
	}
}

func lD(l *Lexer) {
	start := l.index
	switch {
	case tryKeyword(l, start, "do", KindKeywordDo):
	case tryKeyword(l, start, "delete", KindDelete):
	case tryKeyword(l, start, "default", KindKeywordDefault):
	case tryKeyword(l, start, "debugger", KindKeywordDebugger):
	default:
		fallbackIdentifier(l, start)
	}
}

func lE(l *Lexer) {
	start := l.index
	switch {
	case tryKeyword(l, start, "else", KindKeywordElse):
	case tryKeyword(l, start, "export", KindKeywordExport):
	case tryKeyword(l, start, "extends", KindKeywordExtends):
	case tryKeyword(l, start, "enum", KindKeywordEnum):
	default:
		fallbackIdentifier(l, start)
	}
}

func lF(l *Lexer) {
	start := l.index
	switch {
	case tryKeyword(l, start, "finally", KindKeywordFinally):
	case tryKeyword(l, start, "for", KindKeywordFor):
	case tryKeyword(l, start, "function", KindKeywordFunction):
	case tryKeyword(l, start, "false", KindLiteralFalse):
	default:
		fallbackIdentifier(l, start)
	}
}

// lG handles the letter `g`: the reference this lexer was ported from
// has no keyword starting with `g`, but `get` is needed for
// TypeScript-style accessor declarations. It is scanned as the general
// keyword KindKeywordGet, not as a soft keyword.
func lG(l *Lexer) {
	start := l.index
	switch {
	case tryKeyword(l, start, "get", KindKeywordGet):
	default:
		fallbackIdentifier(l, start)
	}
}

func lI(l *Lexer) {
	start := l.index
	switch {
	case tryKeyword(l, start, "in", KindIn):
	case tryKeyword(l, start, "instanceof", KindInstanceof):
	case tryKeyword(l, start, "interface", KindKeywordInterface):
	case tryKeyword(l, start, "if", KindKeywordIf):
	case tryKeyword(l, start, "import", KindKeywordImport):
	case tryKeyword(l, start, "implements", KindKeywordImplements):
	default:
		fallbackIdentifier(l, start)
	}
}

func lL(l *Lexer) {
	start := l.index
	switch {
	case tryKeyword(l, start, "let", KindKeywordLet):
	default:
		fallbackIdentifier(l, start)
	}
}

func lN(l *Lexer) {
	start := l.index
	switch {
	case tryKeyword(l, start, "new", KindNew):
	case tryKeyword(l, start, "null", KindLiteralNull):
	case tryKeyword(l, start, "number", KindTypeNumber):
	case tryKeyword(l, start, "never", KindTypeNever):
	default:
		fallbackIdentifier(l, start)
	}
}

// lO handles the letter `o`: added for the soft keyword `of`, used in
// `for...of` loops, which the reference this lexer was ported from does
// not recognize at all.
func lO(l *Lexer) {
	start := l.index
	switch {
	case tryKeyword(l, start, "of", KindOf):
	default:
		fallbackIdentifier(l, start)
	}
}

func lP(l *Lexer) {
	start := l.index
	switch {
	case tryKeyword(l, start, "package", KindKeywordPackage):
	case tryKeyword(l, start, "public", KindKeywordPublic):
	case tryKeyword(l, start, "protected", KindKeywordProtected):
	case tryKeyword(l, start, "private", KindKeywordPrivate):
	default:
		fallbackIdentifier(l, start)
	}
}

func lR(l *Lexer) {
	start := l.index
	switch {
	case tryKeyword(l, start, "return", KindKeywordReturn):
	default:
		fallbackIdentifier(l, start)
	}
}

func lS(l *Lexer) {
	start := l.index
	switch {
	case tryKeyword(l, start, "super", KindKeywordSuper):
	case tryKeyword(l, start, "switch", KindKeywordSwitch):
	case tryKeyword(l, start, "static", KindKeywordStatic):
	case tryKeyword(l, start, "string", KindTypeString):
	case tryKeyword(l, start, "set", KindKeywordSet):
	default:
		fallbackIdentifier(l, start)
	}
}

func lT(l *Lexer) {
	start := l.index
	switch {
	case tryKeyword(l, start, "typeof", KindTypeof):
	case tryKeyword(l, start, "this", KindKeywordThis):
	case tryKeyword(l, start, "throw", KindKeywordThrow):
	case tryKeyword(l, start, "try", KindKeywordTry):
	case tryKeyword(l, start, "true", KindLiteralTrue):
	default:
		fallbackIdentifier(l, start)
	}
}

func lU(l *Lexer) {
	start := l.index
	switch {
	case tryKeyword(l, start, "undefined", KindLiteralUndefined):
	default:
		fallbackIdentifier(l, start)
	}
}

func lV(l *Lexer) {
	start := l.index
	switch {
	case tryKeyword(l, start, "var", KindKeywordVar):
	case tryKeyword(l, start, "void", KindVoid):
	default:
		fallbackIdentifier(l, start)
	}
}

func lW(l *Lexer) {
	start := l.index
	switch {
	case tryKeyword(l, start, "while", KindKeywordWhile):
	case tryKeyword(l, start, "with", KindKeywordWith):
	default:
		fallbackIdentifier(l, start)
	}
}

func lY(l *Lexer) {
	start := l.index
	switch {
	case tryKeyword(l, start, "yield", KindKeywordYield):
	default:
		fallbackIdentifier(l, start)
	}
}
