package lexer

import (
	"io"
	"strings"

	"github.com/tekwizely/go-parsing/lexer"
	"github.com/tekwizely/go-parsing/lexer/token"

	"github.com/robinlinden/ffs/internal/ast"
	"github.com/robinlinden/ffs/internal/config"
)

// LexFn is a lexer fn that takes a context
//
type LexFn func(*LexContext, *lexer.Lexer) LexFn

// LexContext tracks additional states of the lexer: the active fn, the
// byte cursor used for error offsets, and the first failure, if any.
//
type LexContext struct {
	Fn     LexFn
	Tokens token.Nexter
	Err    *ast.SyntaxError

	pos        int   // Byte offset of the cursor into the input
	tokenStart int   // Byte offset of the token currently being matched
	starts     []int // Byte offset of each emitted token, in emit order
}

// lex delegates incoming lexer calls to the configured fn
//
func (ctx *LexContext) lex(l *lexer.Lexer) lexer.Fn {
	fn := ctx.Fn
	if fn == nil {
		return nil
	}
	config.TraceFn("Calling lexer function", fn)
	ctx.Fn = fn(ctx, l)
	return ctx.lex
}

// Pos returns the current byte offset of the cursor.
//
func (ctx *LexContext) Pos() int {
	return ctx.pos
}

// TokenStart returns the byte offset of the i-th emitted token, or the
// current cursor position when i is past the tokens emitted so far.
//
func (ctx *LexContext) TokenStart(i int) int {
	if i >= 0 && i < len(ctx.starts) {
		return ctx.starts[i]
	}
	return ctx.pos
}

// emitType emits just the token type, discarding the matched text.
//
func (ctx *LexContext) emitType(l *lexer.Lexer, t token.Type) {
	l.EmitType(t)
	ctx.starts = append(ctx.starts, ctx.tokenStart)
}

// emitToken emits the token type along with the matched text.
//
func (ctx *LexContext) emitToken(l *lexer.Lexer, t token.Type) {
	l.EmitToken(t)
	ctx.starts = append(ctx.starts, ctx.tokenStart)
}

// fail records the failure and stops the lexer. Every failure is fatal
// to the enclosing tokenize/parse.
//
func (ctx *LexContext) fail(l *lexer.Lexer, err *ast.SyntaxError) LexFn {
	ctx.Err = err
	l.EmitError(err.Error())
	return nil
}

// Lex initiates the lexer against an input text.
//
func Lex(input string) *LexContext {
	ctx := &LexContext{Fn: LexMain}
	ctx.Tokens = lexer.LexRuneReader(strings.NewReader(input), ctx.lex)
	return ctx
}

// Tokenize converts input into its full token sequence, stopping at end
// of input. The end-of-input sentinel is not included in the result.
// The first malformed construct aborts tokenization with a
// *ast.SyntaxError; partial results are discarded.
//
func Tokenize(input string) ([]token.Token, error) {
	ctx := Lex(input)
	var tokens []token.Token
	for {
		t, err := ctx.Tokens.Next()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			if ctx.Err != nil {
				return nil, ctx.Err
			}
			return nil, err
		}
		tokens = append(tokens, t)
	}
}

// LexMain is the primary lexer entry point. One invocation skips
// insignificant text or matches exactly one token.
//
func LexMain(ctx *LexContext, l *lexer.Lexer) LexFn {
	// EOF
	//
	if !l.CanPeek(1) {
		return nil
	}
	ctx.tokenStart = ctx.pos
	switch {
	// Whitespace
	//
	case ctx.matchOneOrMore(l, isWhitespace):
		l.Clear() // Discard
	// Comment - '#' through end of line
	//
	case ctx.matchRune(l, runeHash):
		for l.CanPeek(1) && l.Peek(1) != runeNewline {
			ctx.next(l)
		}
		l.Clear() // Discard
	// Multiline string - Check BEFORE single-quote
	//
	case l.CanPeek(3) && l.Peek(1) == runeDQuote && l.Peek(2) == runeDQuote && l.Peek(3) == runeDQuote:
		return lexMultilineString
	// String
	//
	case peekRuneEquals(l, runeDQuote):
		return lexString
	// Keyword / ID
	//
	case ctx.matchID(l):
		if t, ok := keywords[l.PeekToken()]; ok {
			ctx.emitType(l, t)
		} else {
			ctx.emitToken(l, TokenID)
		}
	// Punctuator - table is longest-first, so first match wins
	//
	default:
		for _, p := range punctuators {
			if ctx.matchString(l, p.spelling) {
				ctx.emitType(l, p.typ)
				return LexMain
			}
		}
		return ctx.fail(l, &ast.SyntaxError{
			Kind:   ast.ErrUnknownRune,
			Offset: ctx.pos,
			Actual: string(l.Peek(1)),
		})
	}
	return LexMain
}

// lexMultilineString lexes a triple-quoted string. The value is taken
// verbatim between the quote runs; escapes are not decoded.
//
func lexMultilineString(ctx *LexContext, l *lexer.Lexer) LexFn {
	// Opening quotes
	//
	ctx.next(l)
	ctx.next(l)
	ctx.next(l)
	l.Clear()
	// Scan for the closing quotes, one rune at a time
	//
	for {
		if !l.CanPeek(3) {
			return ctx.fail(l, &ast.SyntaxError{
				Kind:   ast.ErrUnterminatedMultilineString,
				Offset: ctx.tokenStart,
			})
		}
		if l.Peek(1) == runeDQuote && l.Peek(2) == runeDQuote && l.Peek(3) == runeDQuote {
			break
		}
		ctx.next(l)
	}
	ctx.emitToken(l, TokenStringLit) // Could be empty
	// Closing quotes
	//
	ctx.next(l)
	ctx.next(l)
	ctx.next(l)
	l.Clear()
	return LexMain
}

// lexString lexes a double-quoted string. The value is taken verbatim
// between the quotes; escapes are not decoded.
//
func lexString(ctx *LexContext, l *lexer.Lexer) LexFn {
	// Opening quote
	//
	ctx.next(l)
	l.Clear()
	// Match quoted value as a one-shot
	//
	ctx.matchZeroOrMore(l, isStringChar)
	if !l.CanPeek(1) {
		return ctx.fail(l, &ast.SyntaxError{
			Kind:   ast.ErrUnterminatedString,
			Offset: ctx.tokenStart,
		})
	}
	ctx.emitToken(l, TokenStringLit) // Could be empty
	// Closing quote
	//
	ctx.next(l)
	l.Clear()
	return LexMain
}
