// Package reltime parses and resolves relative time expressions such as
// "now-1h", "now/d" or "now-7d/w". An expression is a chain of calendar
// shifts and floors applied to a single "now" anchor.
package reltime

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// TokenKind identifies a lexical token.
type TokenKind int

const (
	TokenNow TokenKind = iota
	TokenValue
	TokenAdd
	TokenSub
	TokenFloor
	TokenYear
	TokenMonth
	TokenWeek
	TokenDay
	TokenHour
	TokenMinute
	TokenSecond
)

var tokenKindNames = [...]string{
	TokenNow:    "now",
	TokenValue:  "number",
	TokenAdd:    "add",
	TokenSub:    "subtract",
	TokenFloor:  "floor",
	TokenYear:   "year",
	TokenMonth:  "month",
	TokenWeek:   "week",
	TokenDay:    "day",
	TokenHour:   "hour",
	TokenMinute: "minute",
	TokenSecond: "second",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "unknown"
}

// Token is a single lexical token. Pos is the byte offset of the token's
// first character in the input.
type Token struct {
	Kind  TokenKind
	Pos   int
	Value uint32 // set when Kind == TokenValue
}

// Lexer splits an expression into tokens. It deliberately knows nothing about
// structure: "now+-//now" tokenizes without complaint, the parser rejects it.
type Lexer struct {
	input string
	pos   int
	tok   Token
	err   error
}

func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Scan advances to the next token. It returns false when the input is
// exhausted or a lexical error occurred; Err tells the two apart.
func (l *Lexer) Scan() bool {
	if l.err != nil {
		return false
	}

	for l.pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		if !unicode.IsSpace(r) {
			break
		}
		l.pos += size
	}
	if l.pos >= len(l.input) {
		return false
	}

	start := l.pos
	r, size := utf8.DecodeRuneInString(l.input[l.pos:])

	switch {
	case r >= '0' && r <= '9':
		end := start + size
		for end < len(l.input) && l.input[end] >= '0' && l.input[end] <= '9' {
			end++
		}
		literal := l.input[start:end]
		v, err := strconv.ParseUint(literal, 10, 32)
		if err != nil {
			l.err = &NumberError{Pos: start, Literal: literal, Err: err}
			return false
		}
		l.tok = Token{Kind: TokenValue, Pos: start, Value: uint32(v)}
		l.pos = end

	case r == 'n':
		// Only "now" starts with n.
		for i, want := range []byte{'o', 'w'} {
			at := start + 1 + i
			if at >= len(l.input) {
				l.err = &CharError{Pos: at}
				return false
			}
			if l.input[at] != want {
				got, _ := utf8.DecodeRuneInString(l.input[at:])
				l.err = &CharError{Pos: at, Char: got}
				return false
			}
		}
		l.tok = Token{Kind: TokenNow, Pos: start}
		l.pos = start + len("now")

	default:
		kind, ok := singleCharTokens[r]
		if !ok {
			l.err = &CharError{Pos: start, Char: r}
			return false
		}
		l.tok = Token{Kind: kind, Pos: start}
		l.pos = start + size
	}

	return true
}

// Token returns the token produced by the last successful Scan.
func (l *Lexer) Token() Token { return l.tok }

// Err returns the first lexical error, if any.
func (l *Lexer) Err() error { return l.err }

// Unit letters are case sensitive: m is minute, M is month.
var singleCharTokens = map[rune]TokenKind{
	'/': TokenFloor,
	'+': TokenAdd,
	'-': TokenSub,
	'y': TokenYear,
	'M': TokenMonth,
	'w': TokenWeek,
	'd': TokenDay,
	'h': TokenHour,
	'm': TokenMinute,
	's': TokenSecond,
}
