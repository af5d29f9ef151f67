/*
File    : tsxlex/lexer/token.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package lexer implements a byte-level scanner for a superset of
// ECMAScript source with TypeScript-style type annotations. It turns a
// UTF-8 source buffer into a stream of classified Tokens, driven one
// Consume call at a time by an external consumer (a parser, or — in this
// repository — the cmd/tsxlex harness).
package lexer

import "fmt"

// Kind identifies the category of a Token. Go has no tagged union, so the
// nested variants the source grammar distinguishes (Comment(style),
// Literal(kind), Type(name), Keyword(name)) are flattened into their own
// leaf Kind values rather than carried as a payload alongside a coarser
// Kind. See DESIGN.md for why that flattening was chosen over a payload
// struct.
type Kind uint8

const (
	// KindEOF marks the end of the input stream. Idempotent: once
	// reached, further Consume calls leave the token at KindEOF.
	KindEOF Kind = iota

	// KindUnexpectedToken and KindUnexpectedEndOfProgram are the two
	// in-band error sentinels. See errors.go.
	KindUnexpectedToken
	KindUnexpectedEndOfProgram

	KindIdentifier

	// Comments
	KindCommentLine
	KindCommentBlock

	// Literals
	KindLiteralTrue
	KindLiteralFalse
	KindLiteralNull
	KindLiteralUndefined
	KindLiteralString
	KindLiteralNumber
	KindLiteralRegExp

	// Type annotations (TypeScript superset)
	KindTypeNumber
	KindTypeString
	KindTypeBoolean
	KindTypeAny
	KindTypeNever

	// Punctuators
	KindSemicolon
	KindColon
	KindComma
	KindQuestionMark
	KindParenOpen
	KindParenClose
	KindBracketOpen
	KindBracketClose
	KindBraceOpen
	KindBraceClose
	KindLesser
	KindGreater
	KindFatArrow
	KindAsterisk
	KindForwardSlash
	KindRemainder
	KindExponent
	KindPlus
	KindMinus
	KindIncrement
	KindDecrement
	KindExclamation
	KindTilde
	KindAmpersand
	KindCaret
	KindPipe
	KindLogicalAnd
	KindLogicalOr
	KindAssign
	KindDot
	KindRestSpread
	KindAt
	KindHash
	KindTemplateOpen
	KindTemplateClosed
	KindStrictEquality
	KindStrictInequality
	KindEquality
	KindInequality

	// Soft keywords: reserved words with their own Kind rather than
	// folding into the general KindKeyword* family.
	KindNew
	KindTypeof
	KindVoid
	KindDelete
	KindInstanceof
	KindIn
	KindOf
	KindAs

	// Reserved words (general keyword family).
	KindKeywordAsync
	KindKeywordAwait
	KindKeywordBreak
	KindKeywordCase
	KindKeywordCatch
	KindKeywordClass
	KindKeywordConst
	KindKeywordContinue
	KindKeywordDebugger
	KindKeywordDefault
	KindKeywordDo
	KindKeywordElse
	KindKeywordEnum
	KindKeywordExport
	KindKeywordExtends
	KindKeywordFinally
	KindKeywordFor
	KindKeywordFunction
	KindKeywordGet
	KindKeywordIf
	KindKeywordImplements
	KindKeywordImport
	KindKeywordInterface
	KindKeywordLet
	KindKeywordPackage
	KindKeywordPrivate
	KindKeywordProtected
	KindKeywordPublic
	KindKeywordReturn
	KindKeywordSet
	KindKeywordStatic
	KindKeywordSuper
	KindKeywordSwitch
	KindKeywordThis
	KindKeywordThrow
	KindKeywordTry
	KindKeywordVar
	KindKeywordWhile
	KindKeywordWith
	KindKeywordYield
)

// kindNames backs Kind.String() for debugging and the CLI harness's
// colorized token dump. Not exhaustive of every internal detail, just
// enough for a human to read a trace.
var kindNames = map[Kind]string{
	KindEOF:                    "EOF",
	KindUnexpectedToken:        "UnexpectedToken",
	KindUnexpectedEndOfProgram: "UnexpectedEndOfProgram",
	KindIdentifier:             "Identifier",
	KindCommentLine:            "Comment(Line)",
	KindCommentBlock:           "Comment(Block)",
	KindLiteralTrue:            "Literal(True)",
	KindLiteralFalse:           "Literal(False)",
	KindLiteralNull:            "Literal(Null)",
	KindLiteralUndefined:       "Literal(Undefined)",
	KindLiteralString:          "Literal(String)",
	KindLiteralNumber:          "Literal(Number)",
	KindLiteralRegExp:          "Literal(RegExp)",
	KindTypeNumber:             "Type(Number)",
	KindTypeString:             "Type(String)",
	KindTypeBoolean:            "Type(Boolean)",
	KindTypeAny:                "Type(Any)",
	KindTypeNever:              "Type(Never)",
	KindSemicolon:              ";",
	KindColon:                  ":",
	KindComma:                  ",",
	KindQuestionMark:           "?",
	KindParenOpen:              "(",
	KindParenClose:             ")",
	KindBracketOpen:            "[",
	KindBracketClose:           "]",
	KindBraceOpen:              "{",
	KindBraceClose:             "}",
	KindLesser:                 "<",
	KindGreater:                ">",
	KindFatArrow:               "=>",
	KindAsterisk:               "*",
	KindForwardSlash:           "/",
	KindRemainder:              "%",
	KindExponent:               "**",
	KindPlus:                   "+",
	KindMinus:                  "-",
	KindIncrement:              "++",
	KindDecrement:              "--",
	KindExclamation:            "!",
	KindTilde:                  "~",
	KindAmpersand:              "&",
	KindCaret:                  "^",
	KindPipe:                   "|",
	KindLogicalAnd:             "&&",
	KindLogicalOr:              "||",
	KindAssign:                 "=",
	KindDot:                    ".",
	KindRestSpread:             "...",
	KindAt:                     "@",
	KindHash:                   "#",
	KindTemplateOpen:           "TemplateOpen",
	KindTemplateClosed:         "TemplateClosed",
	KindStrictEquality:         "===",
	KindStrictInequality:       "!==",
	KindEquality:               "==",
	KindInequality:             "!=",
	KindNew:                    "new",
	KindTypeof:                 "typeof",
	KindVoid:                   "void",
	KindDelete:                 "delete",
	KindInstanceof:             "instanceof",
	KindIn:                     "in",
	KindOf:                     "of",
	KindAs:                     "as",
	KindKeywordAsync:           "Keyword(async)",
	KindKeywordAwait:           "Keyword(await)",
	KindKeywordBreak:           "Keyword(break)",
	KindKeywordCase:            "Keyword(case)",
	KindKeywordCatch:           "Keyword(catch)",
	KindKeywordClass:           "Keyword(class)",
	KindKeywordConst:           "Keyword(const)",
	KindKeywordContinue:        "Keyword(continue)",
	KindKeywordDebugger:        "Keyword(debugger)",
	KindKeywordDefault:         "Keyword(default)",
	KindKeywordDo:              "Keyword(do)",
	KindKeywordElse:            "Keyword(else)",
	KindKeywordEnum:            "Keyword(enum)",
	KindKeywordExport:          "Keyword(export)",
	KindKeywordExtends:         "Keyword(extends)",
	KindKeywordFinally:         "Keyword(finally)",
	KindKeywordFor:             "Keyword(for)",
	KindKeywordFunction:        "Keyword(function)",
	KindKeywordGet:             "Keyword(get)",
	KindKeywordIf:              "Keyword(if)",
	KindKeywordImplements:      "Keyword(implements)",
	KindKeywordImport:          "Keyword(import)",
	KindKeywordInterface:       "Keyword(interface)",
	KindKeywordLet:             "Keyword(let)",
	KindKeywordPackage:         "Keyword(package)",
	KindKeywordPrivate:         "Keyword(private)",
	KindKeywordProtected:       "Keyword(protected)",
	KindKeywordPublic:          "Keyword(public)",
	KindKeywordReturn:          "Keyword(return)",
	KindKeywordSet:             "Keyword(set)",
	KindKeywordStatic:          "Keyword(static)",
	KindKeywordSuper:           "Keyword(super)",
	KindKeywordSwitch:          "Keyword(switch)",
	KindKeywordThis:            "Keyword(this)",
	KindKeywordThrow:           "Keyword(throw)",
	KindKeywordTry:             "Keyword(try)",
	KindKeywordVar:             "Keyword(var)",
	KindKeywordWhile:           "Keyword(while)",
	KindKeywordWith:            "Keyword(with)",
	KindKeywordYield:           "Keyword(yield)",
}

// String renders a Kind for debugging and CLI output.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsWord reports whether a token of this kind is legal as a property name
// in a member access expression (foo.<word>). True for identifiers, the
// soft keywords, every general keyword, and every type annotation name.
func (k Kind) IsWord() bool {
	switch k {
	case KindIdentifier, KindNew, KindTypeof, KindVoid, KindDelete,
		KindInstanceof, KindIn, KindOf, KindAs,
		KindTypeNumber, KindTypeString, KindTypeBoolean, KindTypeAny, KindTypeNever:
		return true
	}
	return k >= KindKeywordAsync && k <= KindKeywordYield
}

// Asi classifies the current token for Automatic Semicolon Insertion, a
// decision left entirely to the consumer: the lexer never synthesizes or
// drops tokens, it only annotates each one.
type Asi uint8

const (
	// NoSemicolon: no ASI rule was triggered; the consumer should
	// continue parsing the statement or report an error.
	NoSemicolon Asi = iota

	// ImplicitSemicolon: the current token is ")", "}", EOF, or was
	// preceded by at least one newline since the previous token. The
	// consumer may finalize the statement without consuming this token.
	ImplicitSemicolon

	// ExplicitSemicolon: the current token is ";". The consumer should
	// consume it and finalize the statement.
	ExplicitSemicolon
)

// keywordKind maps every reserved-word spelling recognized by the trie
// handlers in keywords.go to its Kind. It exists purely as a
// cross-check / fallback table for tests and tooling — the hot scanning
// path in keywords.go never consults it, matching the reference's
// per-letter inline trie rather than a post-hoc map lookup.
var keywordKind = map[string]Kind{
	"async":      KindKeywordAsync,
	"await":      KindKeywordAwait,
	"as":         KindAs,
	"any":        KindTypeAny,
	"break":      KindKeywordBreak,
	"boolean":    KindTypeBoolean,
	"const":      KindKeywordConst,
	"continue":   KindKeywordContinue,
	"case":       KindKeywordCase,
	"catch":      KindKeywordCatch,
	"class":      KindKeywordClass,
	"do":         KindKeywordDo,
	"delete":     KindDelete,
	"default":    KindKeywordDefault,
	"debugger":   KindKeywordDebugger,
	"else":       KindKeywordElse,
	"export":     KindKeywordExport,
	"extends":    KindKeywordExtends,
	"enum":       KindKeywordEnum,
	"finally":    KindKeywordFinally,
	"for":        KindKeywordFor,
	"function":   KindKeywordFunction,
	"false":      KindLiteralFalse,
	"get":        KindKeywordGet,
	"in":         KindIn,
	"instanceof": KindInstanceof,
	"interface":  KindKeywordInterface,
	"if":         KindKeywordIf,
	"import":     KindKeywordImport,
	"implements": KindKeywordImplements,
	"let":        KindKeywordLet,
	"new":        KindNew,
	"null":       KindLiteralNull,
	"number":     KindTypeNumber,
	"never":      KindTypeNever,
	"of":         KindOf,
	"package":    KindKeywordPackage,
	"public":     KindKeywordPublic,
	"protected":  KindKeywordProtected,
	"private":    KindKeywordPrivate,
	"return":     KindKeywordReturn,
	"super":      KindKeywordSuper,
	"switch":     KindKeywordSwitch,
	"static":     KindKeywordStatic,
	"string":     KindTypeString,
	"set":        KindKeywordSet,
	"typeof":     KindTypeof,
	"this":       KindKeywordThis,
	"throw":      KindKeywordThrow,
	"try":        KindKeywordTry,
	"true":       KindLiteralTrue,
	"undefined":  KindLiteralUndefined,
	"var":        KindKeywordVar,
	"void":       KindVoid,
	"while":      KindKeywordWhile,
	"with":       KindKeywordWith,
	"yield":      KindKeywordYield,
}

// LookupKeyword returns the dedicated Kind for a reserved-word spelling,
// or KindIdentifier if ident is not reserved. Exposed for tests; the trie
// handlers in keywords.go do not call it on their hot path.
func LookupKeyword(ident string) Kind {
	if kind, ok := keywordKind[ident]; ok {
		return kind
	}
	return KindIdentifier
}
