package parser

import (
	"io"

	"github.com/tekwizely/go-parsing/lexer/token"
	"github.com/tekwizely/go-parsing/parser"

	"github.com/robinlinden/ffs/internal/ast"
	"github.com/robinlinden/ffs/internal/config"
	"github.com/robinlinden/ffs/internal/lexer"
)

// parseFn
//
type parseFn func(*parseContext, *parser.Parser) parseFn

// parseContext
//
type parseContext struct {
	l        *lexer.LexContext
	prog     *ast.Program
	fn       parseFn
	consumed int // Tokens consumed so far, used to recover byte offsets
}

// parse delegates incoming parser calls to the configured fn
//
func (ctx *parseContext) parse(p *parser.Parser) parser.Fn {
	fn := ctx.fn
	if fn == nil {
		return nil
	}
	config.TraceFn("Calling parser function", fn)
	ctx.fn = fn(ctx, p)
	return ctx.parse
}

// next consumes a token, keeping count for offset bookkeeping.
//
func (ctx *parseContext) next(p *parser.Parser) token.Token {
	ctx.consumed++
	return p.Next()
}

// lastStart returns the byte offset of the most recently consumed token.
//
func (ctx *parseContext) lastStart() int {
	return ctx.l.TokenStart(ctx.consumed - 1)
}

// nextStart returns the byte offset of the next unconsumed token.
//
func (ctx *parseContext) nextStart() int {
	return ctx.l.TokenStart(ctx.consumed)
}

// Parse interprets input as a Program. The whole parse fails atomically
// on the first malformed token or statement: no partial Program is ever
// returned.
//
func Parse(input string) (prog *ast.Program, err error) {
	l := lexer.Lex(input)
	ctx := &parseContext{
		l:    l,
		prog: ast.NewProgram(),
		fn:   parseMain,
	}
	defer func() {
		if r := recover(); r != nil {
			// A tokenizer failure trumps whatever the parser tripped over
			//
			if l.Err != nil {
				prog, err = nil, l.Err
				return
			}
			if e, ok := r.(*ast.SyntaxError); ok {
				prog, err = nil, e
				return
			}
			panic(r)
		}
	}()
	if _, perr := parser.Parse(l.Tokens, ctx.parse).Next(); perr != nil && perr != io.EOF { // No emits
		if l.Err != nil {
			return nil, l.Err
		}
		return nil, perr
	}
	if l.Err != nil {
		return nil, l.Err
	}
	return ctx.prog, nil
}

// parseMain parses one top-level statement per invocation.
// Program = { LoadStmt } EOF .
//
func parseMain(ctx *parseContext, p *parser.Parser) parseFn {
	// EOF - program is complete
	//
	if !p.CanPeek(1) {
		return nil
	}
	t := ctx.next(p)
	switch typ := t.Type(); {
	case typ == lexer.TokenLoad:
		ctx.prog.Add(expectLoadStmt(ctx, p))
		p.Clear()
		return parseMain
	case lexer.IsKeyword(typ):
		// Only load statements are understood at the top level
		//
		panic(&ast.SyntaxError{
			Kind:     ast.ErrUnsupportedKeyword,
			Offset:   ctx.lastStart(),
			Expected: "'load'",
			Actual:   lexer.TokenString(t),
		})
	default:
		panic(unexpectedToken(ctx, t, "statement"))
	}
}

// expectLoadStmt matches: '(' string {',' [identifier '='] string} ')'
// The leading 'load' keyword was consumed by the caller.
//
func expectLoadStmt(ctx *parseContext, p *parser.Parser) *ast.LoadStmt {
	expectToken(ctx, p, lexer.TokenLParen, "'(' after 'load'")
	module := expectToken(ctx, p, lexer.TokenStringLit, "module name string").Value()

	var symbols []ast.Symbol
loop:
	for {
		t := nextToken(ctx, p, "',' or ')'")
		switch t.Type() {
		case lexer.TokenRParen:
			break loop
		case lexer.TokenComma:
			t = nextToken(ctx, p, "symbol string or identifier")
			switch t.Type() {
			// "exported" - local name equals exported name
			//
			case lexer.TokenStringLit:
				symbols = append(symbols, ast.Symbol{Local: t.Value(), Exported: t.Value()})
			// local = "exported"
			//
			case lexer.TokenID:
				local := t.Value()
				expectToken(ctx, p, lexer.TokenEquals, "'='")
				exported := expectToken(ctx, p, lexer.TokenStringLit, "symbol string").Value()
				symbols = append(symbols, ast.Symbol{Local: local, Exported: exported})
			default:
				panic(unexpectedToken(ctx, t, "symbol string or identifier"))
			}
		default:
			panic(unexpectedToken(ctx, t, "',' or ')'"))
		}
	}
	// A load importing zero symbols is invalid
	//
	if len(symbols) == 0 {
		panic(&ast.SyntaxError{Kind: ast.ErrEmptySymbolList, Offset: ctx.lastStart()})
	}
	return &ast.LoadStmt{Module: module, Symbols: symbols}
}

// expectToken requires the next token to be of the given type.
//
func expectToken(ctx *parseContext, p *parser.Parser, typ token.Type, expected string) token.Token {
	if !p.CanPeek(1) {
		panic(unexpectedEOF(ctx, expected))
	}
	if p.PeekType(1) != typ {
		panic(&ast.SyntaxError{
			Kind:     ast.ErrUnexpectedToken,
			Offset:   ctx.nextStart(),
			Expected: expected,
			Actual:   lexer.TokenString(p.Peek(1)),
		})
	}
	return ctx.next(p)
}

// nextToken requires a next token of any type.
//
func nextToken(ctx *parseContext, p *parser.Parser, expected string) token.Token {
	if !p.CanPeek(1) {
		panic(unexpectedEOF(ctx, expected))
	}
	return ctx.next(p)
}

// unexpectedToken reports the most recently consumed token as unexpected.
//
func unexpectedToken(ctx *parseContext, t token.Token, expected string) *ast.SyntaxError {
	return &ast.SyntaxError{
		Kind:     ast.ErrUnexpectedToken,
		Offset:   ctx.lastStart(),
		Expected: expected,
		Actual:   lexer.TokenString(t),
	}
}

// unexpectedEOF reports premature end of input at an expectation point.
//
func unexpectedEOF(ctx *parseContext, expected string) *ast.SyntaxError {
	return &ast.SyntaxError{
		Kind:     ast.ErrUnexpectedEOF,
		Offset:   ctx.l.Pos(),
		Expected: expected,
		Actual:   "<eof>",
	}
}
