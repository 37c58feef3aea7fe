package lexer

import (
	"unicode/utf8"

	"github.com/tekwizely/go-parsing/lexer"
)

type runeFn func(rune) bool

// next consumes the next rune, advancing the byte cursor.
// All consumption goes through here so error offsets stay exact.
//
func (ctx *LexContext) next(l *lexer.Lexer) rune {
	r := l.Next()
	ctx.pos += utf8.RuneLen(r)
	return r
}

// matchRune attempts to match the next rune to one specified, returning success or failure.
//
func (ctx *LexContext) matchRune(l *lexer.Lexer, runes ...rune) bool {
	if l.CanPeek(1) {
		p := l.Peek(1)
		for _, r := range runes {
			if r == p {
				ctx.next(l)
				return true
			}
		}
	}
	return false
}

// matchOne attempts to match one of the specified predicate, returning success or failure.
//
func (ctx *LexContext) matchOne(l *lexer.Lexer, fn runeFn) bool {
	if l.CanPeek(1) && fn(l.Peek(1)) {
		ctx.next(l)
		return true
	}
	return false
}

// matchZeroOrMore attempts to match zero or more of the specified predicate, returning success regardless.
//
func (ctx *LexContext) matchZeroOrMore(l *lexer.Lexer, fn runeFn) bool {
	for l.CanPeek(1) && fn(l.Peek(1)) {
		ctx.next(l)
	}
	return true
}

// matchOneOrMore attempts to match one or more of the specified predicate, returning success or failure.
//
func (ctx *LexContext) matchOneOrMore(l *lexer.Lexer, fn runeFn) bool {
	b := false
	for l.CanPeek(1) && fn(l.Peek(1)) {
		ctx.next(l)
		b = true
	}
	return b
}

// matchString attempts to match the exact literal at the cursor,
// consuming it in full or not at all.
//
func (ctx *LexContext) matchString(l *lexer.Lexer, s string) bool {
	n := 0
	for _, r := range s {
		n++
		if !l.CanPeek(n) || l.Peek(n) != r {
			return false
		}
	}
	for i := 0; i < n; i++ {
		ctx.next(l)
	}
	return true
}

// matchID matches [a-zA-Z_][a-zA-Z0-9_]*
//
func (ctx *LexContext) matchID(l *lexer.Lexer) bool {
	return ctx.matchOne(l, isAlphaUnder) && ctx.matchZeroOrMore(l, isAlphaNumUnder)
}

func peekRuneEquals(l *lexer.Lexer, r rune) bool {
	return l.CanPeek(1) && l.Peek(1) == r
}
