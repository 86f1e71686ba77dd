// Package lexer implements the Monkey language tokenizer.
package lexer

import (
	"github.com/thomasrohde/monkey/pkg/ast"
)

// TokenType identifies the type of a lexer token.
type TokenType int

const (
	// Keywords
	TokLet TokenType = iota
	TokFn
	TokIf
	TokElse
	TokReturn
	TokTrue
	TokFalse

	// Literals
	TokIntLit

	// Identifiers
	TokIdent

	// Operators
	TokAssign // =
	TokPlus   // +
	TokMinus  // -
	TokBang   // !
	TokStar   // *
	TokSlash  // /
	TokLt     // <
	TokGt     // >
	TokEqEq   // ==
	TokBangEq // !=

	// Delimiters
	TokComma     // ,
	TokSemicolon // ;
	TokLParen    // (
	TokRParen    // )
	TokLBrace    // {
	TokRBrace    // }

	// Special
	TokEOF
	TokIllegal
)

// String returns the canonical display name of a token type, used in
// parser diagnostics ("expected next token to be =, got INT").
func (t TokenType) String() string {
	switch t {
	case TokLet:
		return "let"
	case TokFn:
		return "fn"
	case TokIf:
		return "if"
	case TokElse:
		return "else"
	case TokReturn:
		return "return"
	case TokTrue:
		return "true"
	case TokFalse:
		return "false"
	case TokIntLit:
		return "INT"
	case TokIdent:
		return "IDENT"
	case TokAssign:
		return "="
	case TokPlus:
		return "+"
	case TokMinus:
		return "-"
	case TokBang:
		return "!"
	case TokStar:
		return "*"
	case TokSlash:
		return "/"
	case TokLt:
		return "<"
	case TokGt:
		return ">"
	case TokEqEq:
		return "=="
	case TokBangEq:
		return "!="
	case TokComma:
		return ","
	case TokSemicolon:
		return ";"
	case TokLParen:
		return "("
	case TokRParen:
		return ")"
	case TokLBrace:
		return "{"
	case TokRBrace:
		return "}"
	case TokEOF:
		return "EOF"
	case TokIllegal:
		return "ILLEGAL"
	default:
		return "UNKNOWN"
	}
}

// Token represents a single lexer token.
type Token struct {
	Type  TokenType
	Value string
	Span  ast.Span
}

var keywords = map[string]TokenType{
	"let":    TokLet,
	"fn":     TokFn,
	"if":     TokIf,
	"else":   TokElse,
	"return": TokReturn,
	"true":   TokTrue,
	"false":  TokFalse,
}

type scanner struct {
	source   string
	filename string
	pos      int
	line     int
	col      int
}

func newScanner(source, filename string) *scanner {
	return &scanner{
		source:   source,
		filename: filename,
		pos:      0,
		line:     1,
		col:      1,
	}
}

func (s *scanner) atEnd() bool {
	return s.pos >= len(s.source)
}

func (s *scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.source[s.pos]
}

func (s *scanner) advance() byte {
	ch := s.source[s.pos]
	s.pos++
	if ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return ch
}

func (s *scanner) span(startLine, startCol int) ast.Span {
	return ast.Span{
		File:      s.filename,
		StartLine: startLine,
		StartCol:  startCol,
		EndLine:   s.line,
		EndCol:    s.col,
	}
}

func (s *scanner) skipWhitespace() {
	for !s.atEnd() {
		ch := s.peek()
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			s.advance()
		} else {
			break
		}
	}
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func (s *scanner) scanNumber() Token {
	startLine, startCol := s.line, s.col
	startPos := s.pos

	for !s.atEnd() && isDigit(s.peek()) {
		s.advance()
	}

	return Token{
		Type:  TokIntLit,
		Value: s.source[startPos:s.pos],
		Span:  s.span(startLine, startCol),
	}
}

func (s *scanner) scanIdentOrKeyword() Token {
	startLine, startCol := s.line, s.col
	startPos := s.pos

	for !s.atEnd() && (isLetter(s.peek()) || isDigit(s.peek())) {
		s.advance()
	}

	text := s.source[startPos:s.pos]
	if tokType, ok := keywords[text]; ok {
		return Token{
			Type:  tokType,
			Value: text,
			Span:  s.span(startLine, startCol),
		}
	}

	return Token{
		Type:  TokIdent,
		Value: text,
		Span:  s.span(startLine, startCol),
	}
}

func (s *scanner) nextToken() Token {
	s.skipWhitespace()

	if s.atEnd() {
		return Token{
			Type:  TokEOF,
			Value: "",
			Span:  s.span(s.line, s.col),
		}
	}

	ch := s.peek()
	startLine, startCol := s.line, s.col

	// Single-char tokens
	switch ch {
	case '+':
		s.advance()
		return Token{Type: TokPlus, Value: "+", Span: s.span(startLine, startCol)}
	case '-':
		s.advance()
		return Token{Type: TokMinus, Value: "-", Span: s.span(startLine, startCol)}
	case '*':
		s.advance()
		return Token{Type: TokStar, Value: "*", Span: s.span(startLine, startCol)}
	case '/':
		s.advance()
		return Token{Type: TokSlash, Value: "/", Span: s.span(startLine, startCol)}
	case '<':
		s.advance()
		return Token{Type: TokLt, Value: "<", Span: s.span(startLine, startCol)}
	case '>':
		s.advance()
		return Token{Type: TokGt, Value: ">", Span: s.span(startLine, startCol)}
	case ',':
		s.advance()
		return Token{Type: TokComma, Value: ",", Span: s.span(startLine, startCol)}
	case ';':
		s.advance()
		return Token{Type: TokSemicolon, Value: ";", Span: s.span(startLine, startCol)}
	case '(':
		s.advance()
		return Token{Type: TokLParen, Value: "(", Span: s.span(startLine, startCol)}
	case ')':
		s.advance()
		return Token{Type: TokRParen, Value: ")", Span: s.span(startLine, startCol)}
	case '{':
		s.advance()
		return Token{Type: TokLBrace, Value: "{", Span: s.span(startLine, startCol)}
	case '}':
		s.advance()
		return Token{Type: TokRBrace, Value: "}", Span: s.span(startLine, startCol)}
	}

	// Multi-char tokens: one character of lookahead for == and !=
	switch ch {
	case '=':
		s.advance()
		if !s.atEnd() && s.peek() == '=' {
			s.advance()
			return Token{Type: TokEqEq, Value: "==", Span: s.span(startLine, startCol)}
		}
		return Token{Type: TokAssign, Value: "=", Span: s.span(startLine, startCol)}

	case '!':
		s.advance()
		if !s.atEnd() && s.peek() == '=' {
			s.advance()
			return Token{Type: TokBangEq, Value: "!=", Span: s.span(startLine, startCol)}
		}
		return Token{Type: TokBang, Value: "!", Span: s.span(startLine, startCol)}
	}

	// Numbers
	if isDigit(ch) {
		return s.scanNumber()
	}

	// Identifiers and keywords
	if isLetter(ch) {
		return s.scanIdentOrKeyword()
	}

	// Anything else is an illegal token carrying the offending character.
	// Not fatal here: the parser reports it when no parse rule matches.
	s.advance()
	return Token{Type: TokIllegal, Value: string(ch), Span: s.span(startLine, startCol)}
}

// Tokenize breaks source code into a slice of tokens, always terminated
// by exactly one EOF token. Tokenize never fails; unrecognized input is
// represented by Illegal tokens.
func Tokenize(source, filename string) []Token {
	s := newScanner(source, filename)
	var tokens []Token

	for {
		tok := s.nextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokEOF {
			break
		}
	}

	return tokens
}
