// Package parser implements the MicroScheme reader: it turns the token
// stream into the tagged AST evaluated by the interpreter.
//
// The parser recognizes the special forms of the language and performs
// the standard desugarings at read time: function-define sugar becomes a
// lambda declaration, let becomes a single lambda application, and let*
// becomes nested single-parameter lambda applications. letrec stays a
// dedicated node because it cannot be expressed as an application
// without placeholder bindings.
package parser

import (
	"fmt"

	"github.com/mscheme-lang/go-mscheme/internal/ast"
	"github.com/mscheme-lang/go-mscheme/internal/lexer"
	"github.com/mscheme-lang/go-mscheme/internal/number"
)

// Error is a parse error with its source position.
type Error struct {
	Pos     lexer.Position
	Message string
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// Parser consumes tokens from a Lexer and produces AST nodes.
type Parser struct {
	l      *lexer.Lexer
	errors []Error

	curToken  lexer.Token
	peekToken lexer.Token
}

// New creates a Parser over the given lexer and primes the token window.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns the parse errors collected so far, including lexical
// errors surfaced by the underlying lexer.
func (p *Parser) Errors() []Error {
	errs := make([]Error, 0, len(p.errors)+len(p.l.Errors()))
	for _, le := range p.l.Errors() {
		errs = append(errs, Error{Pos: le.Pos, Message: le.Message})
	}
	return append(errs, p.errors...)
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) addError(pos lexer.Position, format string, args ...any) {
	p.errors = append(p.errors, Error{Pos: pos, Message: fmt.Sprintf(format, args...)})
}

// ParseProgram parses the whole input and returns the ROOT node holding
// the top-level forms in order. Check Errors before evaluating.
func (p *Parser) ParseProgram() *ast.Node {
	root := &ast.Node{Kind: ast.ROOT}
	for p.curToken.Type != lexer.EOF {
		form := p.parseForm()
		if form != nil {
			root.Children = append(root.Children, form)
		}
	}
	return root
}

// parseForm parses one expression in evaluated position.
func (p *Parser) parseForm() *ast.Node {
	tok := p.curToken
	switch tok.Type {
	case lexer.NUMBER, lexer.STRING, lexer.CHARACTER, lexer.TRUE, lexer.FALSE:
		return p.parseAtom()
	case lexer.IDENT:
		p.nextToken()
		node := ast.NewVariable(tok.Literal)
		node.Pos = tok.Pos
		return node
	case lexer.QUOTE:
		p.nextToken()
		return p.parseDatum(ast.SYMBOL)
	case lexer.QUASIQUOTE:
		p.nextToken()
		return p.parseDatum(ast.QUASISYMBOL)
	case lexer.HASHLPAREN:
		return p.parseVector(ast.SYMBOL)
	case lexer.LPAREN:
		return p.parseParenForm()
	case lexer.RPAREN:
		p.addError(tok.Pos, "unexpected )")
		p.nextToken()
		return nil
	case lexer.DOT:
		p.addError(tok.Pos, "unexpected . outside a quoted pair")
		p.nextToken()
		return nil
	default: // ILLEGAL; the lexer already reported it
		p.nextToken()
		return nil
	}
}

// parseAtom parses a literal token into its node.
func (p *Parser) parseAtom() *ast.Node {
	tok := p.curToken
	p.nextToken()
	var node *ast.Node
	switch tok.Type {
	case lexer.NUMBER:
		n, err := number.Parse(tok.Literal)
		if err != nil {
			p.addError(tok.Pos, "%v", err)
			return nil
		}
		node = ast.NewNumber(n)
	case lexer.STRING:
		node = ast.NewString(tok.Literal)
	case lexer.CHARACTER:
		node = ast.NewCharacter([]rune(tok.Literal)[0])
	case lexer.TRUE:
		node = ast.NewBoolean(true)
	case lexer.FALSE:
		node = ast.NewBoolean(false)
	}
	node.Pos = tok.Pos
	return node
}

// specialForms maps head identifiers to their parse routines.
var specialForms map[string]func(*Parser, lexer.Position) *ast.Node

func init() {
	specialForms = map[string]func(*Parser, lexer.Position) *ast.Node{
		"define":      (*Parser).parseDefine,
		"if":          (*Parser).parseIf,
		"cond":        (*Parser).parseCond,
		"lambda":      (*Parser).parseLambda,
		"λ":           (*Parser).parseLambda,
		"begin":       (*Parser).parseBegin,
		"quote":       (*Parser).parseQuote,
		"let":         (*Parser).parseLet,
		"let*":        (*Parser).parseLetStar,
		"letrec":      (*Parser).parseLetrec,
		"set!":        (*Parser).parseSet,
		"set-car!":    (*Parser).parseSetCar,
		"set-cdr!":    (*Parser).parseSetCdr,
		"vector-set!": (*Parser).parseSetVector,
		"do":          (*Parser).parseDo,
		"and":         (*Parser).parseAnd,
		"or":          (*Parser).parseOr,
		"apply":       (*Parser).parseApply,
		"eval":        (*Parser).parseEval,
	}
}

// parseParenForm parses a parenthesized form: a special form when the
// head identifier names one, an application otherwise.
func (p *Parser) parseParenForm() *ast.Node {
	open := p.curToken.Pos
	p.nextToken() // consume (

	if p.curToken.Type == lexer.RPAREN {
		// () in evaluated position is the empty list literal.
		p.nextToken()
		return ast.Empty
	}

	if p.curToken.Type == lexer.IDENT {
		if parse, ok := specialForms[p.curToken.Literal]; ok {
			p.nextToken() // consume the keyword
			return parse(p, open)
		}
		if p.curToken.Literal == "else" {
			p.addError(p.curToken.Pos, "else outside cond")
			p.skipToClose()
			return nil
		}
	}

	// Application: operator followed by operands.
	app := &ast.Node{Kind: ast.APPLICATION, Pos: open}
	for !p.atClose() {
		if form := p.parseForm(); form != nil {
			app.Children = append(app.Children, form)
		}
	}
	p.expectClose(open)
	return app
}

// atClose reports whether the current token ends the enclosing form.
func (p *Parser) atClose() bool {
	return p.curToken.Type == lexer.RPAREN || p.curToken.Type == lexer.EOF
}

// expectClose consumes the ) of a form opened at pos.
func (p *Parser) expectClose(pos lexer.Position) {
	if p.curToken.Type != lexer.RPAREN {
		p.addError(pos, "expecting matching )")
		return
	}
	p.nextToken()
}

// skipToClose discards tokens through the matching close paren. Used for
// error recovery so one malformed form does not cascade.
func (p *Parser) skipToClose() {
	depth := 1
	for depth > 0 && p.curToken.Type != lexer.EOF {
		switch p.curToken.Type {
		case lexer.LPAREN, lexer.HASHLPAREN:
			depth++
		case lexer.RPAREN:
			depth--
		}
		p.nextToken()
	}
}

// expectIdent consumes and returns an identifier, reporting context on
// failure.
func (p *Parser) expectIdent(context string) (string, bool) {
	if p.curToken.Type != lexer.IDENT {
		p.addError(p.curToken.Pos, "%s: expected identifier, got %s", context, p.curToken.Type)
		return "", false
	}
	name := p.curToken.Literal
	p.nextToken()
	return name, true
}
