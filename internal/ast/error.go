package ast

import "fmt"

// ErrorKind classifies tokenize/parse failures.
//
type ErrorKind int

const (
	ErrUnterminatedString ErrorKind = iota
	ErrUnterminatedMultilineString
	ErrUnknownRune
	ErrUnexpectedToken
	ErrUnexpectedEOF
	ErrUnsupportedKeyword
	ErrEmptySymbolList
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnterminatedString:
		return "unterminated string"
	case ErrUnterminatedMultilineString:
		return "unterminated multiline string"
	case ErrUnknownRune:
		return "unrecognized character"
	case ErrUnexpectedToken:
		return "unexpected token"
	case ErrUnexpectedEOF:
		return "unexpected end of input"
	case ErrUnsupportedKeyword:
		return "unsupported keyword"
	case ErrEmptySymbolList:
		return "empty symbol list in load statement"
	}
	return "syntax error"
}

// SyntaxError reports a tokenize/parse failure and where it happened.
// Offset is the byte offset into the input: for bad tokens the start of
// the offending token, for unterminated strings the opening delimiter.
// Expected and Actual are golden-form token renderings where applicable.
//
type SyntaxError struct {
	Kind     ErrorKind
	Offset   int
	Expected string
	Actual   string
}

func (e *SyntaxError) Error() string {
	msg := fmt.Sprintf("offset %d: %s", e.Offset, e.Kind)
	if e.Expected != "" {
		msg += ": expecting " + e.Expected
	}
	if e.Actual != "" {
		msg += ", got '" + e.Actual + "'"
	}
	return msg
}
