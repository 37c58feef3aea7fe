package lexer

import (
	"sort"
	"strings"

	"github.com/tekwizely/go-parsing/lexer"
	"github.com/tekwizely/go-parsing/lexer/token"
)

// We define our lexer tokens starting from the pre-defined START token
//
const (
	TokenID = lexer.TStart + iota
	TokenStringLit

	// Keywords
	//
	TokenAnd
	TokenBreak
	TokenContinue
	TokenDef
	TokenElif
	TokenElse
	TokenFor
	TokenIf
	TokenIn
	TokenLambda
	TokenLoad
	TokenNot
	TokenOr
	TokenPass
	TokenReturn

	// Punctuators
	//
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenSlashSlash
	TokenPercent
	TokenStarStar
	TokenTilde
	TokenAmpersand
	TokenPipe
	TokenCaret
	TokenLShift
	TokenRShift
	TokenDot
	TokenComma
	TokenEquals
	TokenSemicolon
	TokenColon
	TokenLParen
	TokenRParen
	TokenLBracket
	TokenRBracket
	TokenLBrace
	TokenRBrace
	TokenLess
	TokenGreater
	TokenGreaterEquals
	TokenLessEquals
	TokenEqualsEquals
	TokenNotEquals
	TokenPlusEquals
	TokenMinusEquals
	TokenStarEquals
	TokenSlashEquals
	TokenSlashSlashEquals
	TokenPercentEquals
	TokenAmpersandEquals
	TokenPipeEquals
	TokenCaretEquals
	TokenLShiftEquals
	TokenRShiftEquals

	// TokenEOF marks end of input. The token stream reports end of input
	// as io.EOF, so this type is never emitted; it exists so diagnostics
	// can render the sentinel.
	//
	TokenEOF
)

// Keywords are matched case-sensitively and in full.
//
var keywords = map[string]token.Type{
	"and":      TokenAnd,
	"else":     TokenElse,
	"load":     TokenLoad,
	"break":    TokenBreak,
	"for":      TokenFor,
	"not":      TokenNot,
	"continue": TokenContinue,
	"if":       TokenIf,
	"or":       TokenOr,
	"def":      TokenDef,
	"in":       TokenIn,
	"pass":     TokenPass,
	"elif":     TokenElif,
	"lambda":   TokenLambda,
	"return":   TokenReturn,
}

// punct pairs a punctuator spelling with its token type.
//
type punct struct {
	spelling string
	typ      token.Type
}

// punctuators holds every matchable punctuator spelling.
// Sorted by spelling length, longest first, once at init and read-only
// after that, so prefix-overlapping spellings ('<<=' vs '<<' vs '<',
// '//' vs '/', '**' vs '*') resolve to the longest match.
// NOTE: '//=' has a token type and a rendering but no table entry, so it
// lexes as '//' '='.
//
var punctuators = []punct{
	{"+", TokenPlus},
	{"-", TokenMinus},
	{"*", TokenStar},
	{"/", TokenSlash},
	{"//", TokenSlashSlash},
	{"%", TokenPercent},
	{"**", TokenStarStar},
	{"&", TokenAmpersand},
	{"|", TokenPipe},
	{"^", TokenCaret},
	{"<<", TokenLShift},
	{">>", TokenRShift},
	{".", TokenDot},
	{",", TokenComma},
	{"=", TokenEquals},
	{";", TokenSemicolon},
	{":", TokenColon},
	{"(", TokenLParen},
	{")", TokenRParen},
	{"[", TokenLBracket},
	{"]", TokenRBracket},
	{"{", TokenLBrace},
	{"}", TokenRBrace},
	{"<", TokenLess},
	{">", TokenGreater},
	{"==", TokenEqualsEquals},
	{"!=", TokenNotEquals},
	{"+=", TokenPlusEquals},
	{"-=", TokenMinusEquals},
	{"*=", TokenStarEquals},
	{"/=", TokenSlashEquals},
	{"%=", TokenPercentEquals},
	{"~", TokenTilde},
	{"&=", TokenAmpersandEquals},
	{"|=", TokenPipeEquals},
	{"^=", TokenCaretEquals},
	{"<=", TokenLessEquals},
	{"<<=", TokenLShiftEquals},
	{">=", TokenGreaterEquals},
	{">>=", TokenRShiftEquals},
}

// tokenNames maps fixed-spelling token types to their golden rendering.
//
var tokenNames = map[token.Type]string{
	TokenSlashSlashEquals: "//=",
	TokenEOF:              "<eof>",
}

func init() {
	sort.SliceStable(punctuators, func(i, j int) bool {
		return len(punctuators[i].spelling) > len(punctuators[j].spelling)
	})
	for name, t := range keywords {
		tokenNames[t] = name
	}
	for _, p := range punctuators {
		tokenNames[p.typ] = p.spelling
	}
}

// IsKeyword reports whether t is one of the reserved words.
//
func IsKeyword(t token.Type) bool {
	return t >= TokenAnd && t <= TokenReturn
}

// IsPunctuator reports whether t is a fixed-spelling operator or delimiter.
//
func IsPunctuator(t token.Type) bool {
	return t >= TokenPlus && t <= TokenRShiftEquals
}

// TokenString renders a token in its golden form: a punctuator as its
// spelling, a keyword as its word, an identifier as its name, a string
// literal as its value wrapped in double quotes (no re-escaping), and
// end of input as `<eof>`.
//
func TokenString(t token.Token) string {
	switch t.Type() {
	case TokenID:
		return t.Value()
	case TokenStringLit:
		return `"` + t.Value() + `"`
	default:
		if name, ok := tokenNames[t.Type()]; ok {
			return name
		}
		return t.Value()
	}
}

// TokensString renders a token sequence joined by single spaces, with a
// trailing space after the last token.
//
func TokensString(tokens []token.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(TokenString(t))
		b.WriteByte(' ')
	}
	return b.String()
}
