package parser

import (
	"github.com/mscheme-lang/go-mscheme/internal/ast"
	"github.com/mscheme-lang/go-mscheme/internal/lexer"
)

// parseDatum reads one datum in quoted context. Nothing inside a datum
// is evaluated: identifiers become symbols of symKind (SYMBOL for quote,
// QUASISYMBOL for quasiquote), parenthesized groups become literal list
// structure with dotted-pair support, and #(...) becomes a vector.
func (p *Parser) parseDatum(symKind ast.Kind) *ast.Node {
	tok := p.curToken
	switch tok.Type {
	case lexer.NUMBER, lexer.STRING, lexer.CHARACTER, lexer.TRUE, lexer.FALSE:
		return p.parseAtom()
	case lexer.IDENT:
		p.nextToken()
		sym := &ast.Node{Kind: symKind, Text: tok.Literal, Pos: tok.Pos}
		return sym
	case lexer.QUOTE:
		// 'x inside a datum reads as the two-element list (quote x).
		p.nextToken()
		inner := p.parseDatum(symKind)
		if inner == nil {
			return nil
		}
		quote := &ast.Node{Kind: symKind, Text: "quote", Pos: tok.Pos}
		return ast.Cons(quote, ast.Cons(inner, ast.Empty))
	case lexer.QUASIQUOTE:
		p.nextToken()
		inner := p.parseDatum(ast.QUASISYMBOL)
		if inner == nil {
			return nil
		}
		quote := &ast.Node{Kind: ast.QUASISYMBOL, Text: "quasiquote", Pos: tok.Pos}
		return ast.Cons(quote, ast.Cons(inner, ast.Empty))
	case lexer.LPAREN:
		return p.parseListDatum(symKind)
	case lexer.HASHLPAREN:
		return p.parseVector(symKind)
	case lexer.RPAREN, lexer.EOF:
		p.addError(tok.Pos, "expected datum")
		return nil
	default: // ILLEGAL or stray DOT
		p.addError(tok.Pos, "expected datum, got %s", tok.Type)
		p.nextToken()
		return nil
	}
}

// parseListDatum reads a parenthesized datum: a proper list, or a dotted
// pair chain when a . appears before the final element.
func (p *Parser) parseListDatum(symKind ast.Kind) *ast.Node {
	open := p.curToken.Pos
	p.nextToken() // consume (

	var elems []*ast.Node
	tail := ast.Empty
	for !p.atClose() {
		if p.curToken.Type == lexer.DOT {
			dotPos := p.curToken.Pos
			p.nextToken()
			if len(elems) == 0 {
				p.addError(dotPos, "dotted pair without a car")
				p.skipToClose()
				return nil
			}
			t := p.parseDatum(symKind)
			if t == nil {
				p.skipToClose()
				return nil
			}
			tail = t
			break
		}
		elem := p.parseDatum(symKind)
		if elem == nil {
			p.skipToClose()
			return nil
		}
		elems = append(elems, elem)
	}
	p.expectClose(open)

	list := tail
	for i := len(elems) - 1; i >= 0; i-- {
		list = ast.Cons(elems[i], list)
	}
	return list
}

// parseVector reads a #(...) vector literal; elements are datums.
func (p *Parser) parseVector(symKind ast.Kind) *ast.Node {
	open := p.curToken.Pos
	p.nextToken() // consume #(
	vec := &ast.Node{Kind: ast.VECTOR, Pos: open}
	for !p.atClose() {
		elem := p.parseDatum(symKind)
		if elem == nil {
			p.skipToClose()
			return nil
		}
		vec.Children = append(vec.Children, elem)
	}
	p.expectClose(open)
	return vec
}
