// Package parser implements the Monkey language parser.
//
// Expression parsing is Pratt-style: each token type may register a prefix
// rule and an infix rule, and parseExpression folds infix rules into the
// left operand while the next token binds tighter than the current minimum
// precedence. Parsing is best-effort: diagnostics accumulate in order and
// parsing resumes at the next statement, so a single pass can surface
// several independent mistakes. A non-empty diagnostic list means the
// returned Program must not be evaluated.
package parser

import (
	"fmt"
	"strconv"

	"github.com/thomasrohde/monkey/pkg/ast"
	"github.com/thomasrohde/monkey/pkg/diagnostics"
	"github.com/thomasrohde/monkey/pkg/lexer"
)

// Operator precedence levels, lowest to highest.
const (
	precLowest      = iota
	precEquals      // == !=
	precLessGreater // < >
	precSum         // + -
	precProduct     // * /
	precPrefix      // -x !x
	precCall        // fn(x)
)

var precedences = map[lexer.TokenType]int{
	lexer.TokEqEq:   precEquals,
	lexer.TokBangEq: precEquals,
	lexer.TokLt:     precLessGreater,
	lexer.TokGt:     precLessGreater,
	lexer.TokPlus:   precSum,
	lexer.TokMinus:  precSum,
	lexer.TokStar:   precProduct,
	lexer.TokSlash:  precProduct,
	lexer.TokLParen: precCall,
}

type (
	prefixParseFn func() ast.Expr
	infixParseFn  func(left ast.Expr) ast.Expr
)

type parser struct {
	tokens []lexer.Token
	pos    int
	diags  []diagnostics.Diagnostic

	prefixFns map[lexer.TokenType]prefixParseFn
	infixFns  map[lexer.TokenType]infixParseFn
}

// Parse tokenizes source and parses it into an AST. It always returns the
// best-effort Program together with the ordered diagnostics; callers must
// treat the Program as unsafe to evaluate when diagnostics are non-empty.
func Parse(source, filename string) (*ast.Program, []diagnostics.Diagnostic) {
	p := &parser{tokens: lexer.Tokenize(source, filename), pos: 0}

	p.prefixFns = map[lexer.TokenType]prefixParseFn{
		lexer.TokIdent:  p.parseIdent,
		lexer.TokIntLit: p.parseIntLiteral,
		lexer.TokTrue:   p.parseBoolLiteral,
		lexer.TokFalse:  p.parseBoolLiteral,
		lexer.TokBang:   p.parsePrefixExpr,
		lexer.TokMinus:  p.parsePrefixExpr,
		lexer.TokLParen: p.parseGroupedExpr,
		lexer.TokIf:     p.parseIfExpr,
		lexer.TokFn:     p.parseFnLiteral,
	}
	p.infixFns = map[lexer.TokenType]infixParseFn{
		lexer.TokPlus:   p.parseInfixExpr,
		lexer.TokMinus:  p.parseInfixExpr,
		lexer.TokStar:   p.parseInfixExpr,
		lexer.TokSlash:  p.parseInfixExpr,
		lexer.TokLt:     p.parseInfixExpr,
		lexer.TokGt:     p.parseInfixExpr,
		lexer.TokEqEq:   p.parseInfixExpr,
		lexer.TokBangEq: p.parseInfixExpr,
		lexer.TokLParen: p.parseCallExpr,
	}

	prog := p.parseProgram()
	return prog, p.diags
}

func (p *parser) current() lexer.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[p.pos]
}

func (p *parser) peek() lexer.TokenType {
	return p.current().Type
}

func (p *parser) advance() lexer.Token {
	tok := p.current()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *parser) expect(typ lexer.TokenType) (lexer.Token, bool) {
	tok := p.current()
	if tok.Type != typ {
		p.addError(fmt.Sprintf("expected next token to be %s, got %s", typ, tok.Type), &tok.Span)
		return tok, false
	}
	return p.advance(), true
}

func (p *parser) addError(msg string, span *ast.Span) {
	p.diags = append(p.diags, diagnostics.MakeDiag(diagnostics.EParse, msg, span, ""))
}

func (p *parser) spanFromTo(start, end ast.Span) ast.Span {
	return ast.Span{
		File:      start.File,
		StartLine: start.StartLine,
		StartCol:  start.StartCol,
		EndLine:   end.EndLine,
		EndCol:    end.EndCol,
	}
}

func (p *parser) currentPrecedence() int {
	if prec, ok := precedences[p.peek()]; ok {
		return prec
	}
	return precLowest
}

// synchronize skips forward to the token after the next semicolon (or to
// EOF) so statement parsing can resume after a malformed statement. The
// failing token is always consumed, guaranteeing forward progress.
func (p *parser) synchronize() {
	for p.peek() != lexer.TokEOF {
		if p.advance().Type == lexer.TokSemicolon {
			return
		}
	}
}

// --- Program ---

func (p *parser) parseProgram() *ast.Program {
	startSpan := p.current().Span

	var stmts []ast.Stmt
	for p.peek() != lexer.TokEOF {
		stmt := p.parseStmt()
		if stmt == nil {
			p.synchronize()
			continue
		}
		stmts = append(stmts, stmt)
	}

	return &ast.Program{
		Span:       p.spanFromTo(startSpan, p.current().Span),
		Statements: stmts,
	}
}

// --- Statements ---

func (p *parser) parseStmt() ast.Stmt {
	switch p.peek() {
	case lexer.TokLet:
		s := p.parseLetStmt()
		if s == nil {
			return nil
		}
		return s
	case lexer.TokReturn:
		s := p.parseReturnStmt()
		if s == nil {
			return nil
		}
		return s
	default:
		s := p.parseExprStmt()
		if s == nil {
			return nil
		}
		return s
	}
}

func (p *parser) parseLetStmt() *ast.LetStmt {
	start := p.advance() // consume 'let'
	nameTok, ok := p.expect(lexer.TokIdent)
	if !ok {
		return nil
	}
	if _, ok := p.expect(lexer.TokAssign); !ok {
		return nil
	}
	value := p.parseExpression(precLowest)
	if value == nil {
		return nil
	}
	end := value.NodeSpan()
	if p.peek() == lexer.TokSemicolon {
		end = p.advance().Span
	}
	return &ast.LetStmt{
		Span:  p.spanFromTo(start.Span, end),
		Name:  &ast.Ident{Span: nameTok.Span, Name: nameTok.Value},
		Value: value,
	}
}

func (p *parser) parseReturnStmt() *ast.ReturnStmt {
	start := p.advance() // consume 'return'
	value := p.parseExpression(precLowest)
	if value == nil {
		return nil
	}
	end := value.NodeSpan()
	if p.peek() == lexer.TokSemicolon {
		end = p.advance().Span
	}
	return &ast.ReturnStmt{
		Span:  p.spanFromTo(start.Span, end),
		Value: value,
	}
}

func (p *parser) parseExprStmt() *ast.ExprStmt {
	expr := p.parseExpression(precLowest)
	if expr == nil {
		return nil
	}
	end := expr.NodeSpan()
	if p.peek() == lexer.TokSemicolon {
		end = p.advance().Span
	}
	return &ast.ExprStmt{
		Span: p.spanFromTo(expr.NodeSpan(), end),
		Expr: expr,
	}
}

// --- Block ---

func (p *parser) parseBlock() *ast.BlockStmt {
	start, ok := p.expect(lexer.TokLBrace)
	if !ok {
		return nil
	}
	var stmts []ast.Stmt
	for p.peek() != lexer.TokRBrace && p.peek() != lexer.TokEOF {
		stmt := p.parseStmt()
		if stmt == nil {
			return nil
		}
		stmts = append(stmts, stmt)
	}
	end, ok := p.expect(lexer.TokRBrace)
	if !ok {
		return nil
	}
	return &ast.BlockStmt{
		Span:       p.spanFromTo(start.Span, end.Span),
		Statements: stmts,
	}
}

// --- Expressions (Pratt core) ---

func (p *parser) parseExpression(minPrecedence int) ast.Expr {
	prefix, ok := p.prefixFns[p.peek()]
	if !ok {
		tok := p.current()
		p.diags = append(p.diags, diagnostics.MakeDiag(
			diagnostics.ENoPrefix,
			fmt.Sprintf("no prefix parse function for %s", tok.Type),
			&tok.Span,
			"",
		))
		return nil
	}

	left := prefix()
	if left == nil {
		return nil
	}

	for p.peek() != lexer.TokSemicolon && minPrecedence < p.currentPrecedence() {
		infix, ok := p.infixFns[p.peek()]
		if !ok {
			return left
		}
		left = infix(left)
		if left == nil {
			return nil
		}
	}

	return left
}

func (p *parser) parseIdent() ast.Expr {
	tok := p.advance()
	return &ast.Ident{Span: tok.Span, Name: tok.Value}
}

func (p *parser) parseIntLiteral() ast.Expr {
	tok := p.advance()
	val, err := strconv.ParseInt(tok.Value, 10, 64)
	if err != nil {
		p.diags = append(p.diags, diagnostics.MakeDiag(
			diagnostics.ELiteral,
			fmt.Sprintf("could not parse %q as integer", tok.Value),
			&tok.Span,
			"",
		))
		return nil
	}
	return &ast.IntLiteral{Span: tok.Span, Value: val}
}

func (p *parser) parseBoolLiteral() ast.Expr {
	tok := p.advance()
	return &ast.BoolLiteral{Span: tok.Span, Value: tok.Type == lexer.TokTrue}
}

func (p *parser) parsePrefixExpr() ast.Expr {
	tok := p.advance()
	right := p.parseExpression(precPrefix)
	if right == nil {
		return nil
	}
	return &ast.PrefixExpr{
		Span:  p.spanFromTo(tok.Span, right.NodeSpan()),
		Op:    tok.Value,
		Right: right,
	}
}

func (p *parser) parseInfixExpr(left ast.Expr) ast.Expr {
	tok := p.advance()
	right := p.parseExpression(precedences[tok.Type])
	if right == nil {
		return nil
	}
	return &ast.InfixExpr{
		Span:  p.spanFromTo(left.NodeSpan(), right.NodeSpan()),
		Op:    tok.Value,
		Left:  left,
		Right: right,
	}
}

func (p *parser) parseGroupedExpr() ast.Expr {
	p.advance() // consume '('
	expr := p.parseExpression(precLowest)
	if expr == nil {
		return nil
	}
	if _, ok := p.expect(lexer.TokRParen); !ok {
		return nil
	}
	return expr
}

func (p *parser) parseIfExpr() ast.Expr {
	start := p.advance() // consume 'if'
	if _, ok := p.expect(lexer.TokLParen); !ok {
		return nil
	}
	cond := p.parseExpression(precLowest)
	if cond == nil {
		return nil
	}
	if _, ok := p.expect(lexer.TokRParen); !ok {
		return nil
	}

	consequence := p.parseBlock()
	if consequence == nil {
		return nil
	}

	var alternative *ast.BlockStmt
	endSpan := consequence.Span
	if p.peek() == lexer.TokElse {
		p.advance() // consume 'else'
		alternative = p.parseBlock()
		if alternative == nil {
			return nil
		}
		endSpan = alternative.Span
	}

	return &ast.IfExpr{
		Span:        p.spanFromTo(start.Span, endSpan),
		Cond:        cond,
		Consequence: consequence,
		Alternative: alternative,
	}
}

func (p *parser) parseFnLiteral() ast.Expr {
	start := p.advance() // consume 'fn'
	if _, ok := p.expect(lexer.TokLParen); !ok {
		return nil
	}

	// Commas are mandatory delimiters: after each parameter the next
	// token must be ',' or ')', and a comma must introduce a parameter.
	var params []*ast.Ident
	if p.peek() != lexer.TokRParen {
		for {
			paramTok, ok := p.expect(lexer.TokIdent)
			if !ok {
				return nil
			}
			params = append(params, &ast.Ident{Span: paramTok.Span, Name: paramTok.Value})
			if p.peek() != lexer.TokComma {
				break
			}
			p.advance() // consume ','
		}
	}
	if _, ok := p.expect(lexer.TokRParen); !ok {
		return nil
	}

	body := p.parseBlock()
	if body == nil {
		return nil
	}

	return &ast.FnLiteral{
		Span:   p.spanFromTo(start.Span, body.Span),
		Params: params,
		Body:   body,
	}
}

func (p *parser) parseCallExpr(fn ast.Expr) ast.Expr {
	p.advance() // consume '('

	// Same delimiter rule as parameter lists: ',' or ')' after each
	// argument, and no trailing comma.
	var args []ast.Expr
	if p.peek() != lexer.TokRParen {
		for {
			arg := p.parseExpression(precLowest)
			if arg == nil {
				return nil
			}
			args = append(args, arg)
			if p.peek() != lexer.TokComma {
				break
			}
			p.advance() // consume ','
		}
	}
	end, ok := p.expect(lexer.TokRParen)
	if !ok {
		return nil
	}

	return &ast.CallExpr{
		Span: p.spanFromTo(fn.NodeSpan(), end.Span),
		Fn:   fn,
		Args: args,
	}
}
