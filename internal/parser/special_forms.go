package parser

import (
	"github.com/mscheme-lang/go-mscheme/internal/ast"
	"github.com/mscheme-lang/go-mscheme/internal/lexer"
)

// parseDefine handles both binding forms:
//
//	(define name expr)
//	(define (name formal...) body...)
//
// The second is sugar for binding name to a lambda.
func (p *Parser) parseDefine(open lexer.Position) *ast.Node {
	decl := &ast.Node{Kind: ast.DECLARATION, Pos: open}

	switch p.curToken.Type {
	case lexer.IDENT:
		decl.Text = p.curToken.Literal
		p.nextToken()
		expr := p.parseForm()
		if expr == nil {
			p.addError(open, "define: missing expression")
			p.skipToClose()
			return nil
		}
		decl.Children = []*ast.Node{expr}
		p.expectClose(open)
		return decl
	case lexer.LPAREN:
		p.nextToken()
		name, ok := p.expectIdent("define")
		if !ok {
			p.skipToClose()
			p.skipToClose()
			return nil
		}
		decl.Text = name
		lambda := &ast.Node{Kind: ast.LAMBDA, Pos: open}
		for !p.atClose() {
			formal, ok := p.expectIdent("define: formal parameter")
			if !ok {
				p.skipToClose()
				p.skipToClose()
				return nil
			}
			lambda.Names = append(lambda.Names, formal)
		}
		p.expectClose(open)
		lambda.Children = p.parseBody(open, "define")
		p.expectClose(open)
		decl.Children = []*ast.Node{lambda}
		return decl
	default:
		p.addError(p.curToken.Pos, "define: expected identifier or (name formals...)")
		p.skipToClose()
		return nil
	}
}

// parseIf builds a COND with a single predicate and one or two
// consequents.
func (p *Parser) parseIf(open lexer.Position) *ast.Node {
	cond := &ast.Node{Kind: ast.COND, Pos: open}
	pred := p.parseForm()
	conseq := p.parseForm()
	if pred == nil || conseq == nil {
		p.addError(open, "if: expected predicate and consequent")
		p.skipToClose()
		return nil
	}
	cond.Children = []*ast.Node{pred, conseq}
	if !p.atClose() {
		if alt := p.parseForm(); alt != nil {
			cond.Children = append(cond.Children, alt)
		}
	}
	p.expectClose(open)
	return cond
}

// parseCond parses clause lists. Each clause contributes a predicate and
// a consequent child; an else clause contributes the trailing consequent.
func (p *Parser) parseCond(open lexer.Position) *ast.Node {
	cond := &ast.Node{Kind: ast.COND, Pos: open}
	sawElse := false
	for !p.atClose() {
		clausePos := p.curToken.Pos
		if p.curToken.Type != lexer.LPAREN {
			p.addError(clausePos, "cond: expected clause")
			p.skipToClose()
			return nil
		}
		p.nextToken()
		if sawElse {
			p.addError(clausePos, "cond: clause after else")
			p.skipToClose()
			p.skipToClose()
			return nil
		}
		isElse := p.curToken.Type == lexer.IDENT && p.curToken.Literal == "else"
		var pred *ast.Node
		if isElse {
			sawElse = true
			p.nextToken()
		} else {
			pred = p.parseForm()
			if pred == nil {
				p.skipToClose()
				continue
			}
		}
		body := p.parseBody(clausePos, "cond clause")
		p.expectClose(clausePos)
		if len(body) == 0 {
			p.addError(clausePos, "cond: clause without consequent")
			continue
		}
		if pred != nil {
			cond.Children = append(cond.Children, pred)
		}
		cond.Children = append(cond.Children, sequenceOf(body, clausePos))
	}
	p.expectClose(open)
	if len(cond.Children) == 0 {
		p.addError(open, "cond: no clauses")
		return nil
	}
	return cond
}

// parseLambda parses (lambda (formal...) body...).
func (p *Parser) parseLambda(open lexer.Position) *ast.Node {
	lambda := &ast.Node{Kind: ast.LAMBDA, Pos: open}
	if p.curToken.Type != lexer.LPAREN {
		p.addError(p.curToken.Pos, "lambda: expected formal parameter list")
		p.skipToClose()
		return nil
	}
	p.nextToken()
	for !p.atClose() {
		formal, ok := p.expectIdent("lambda: formal parameter")
		if !ok {
			p.skipToClose()
			p.skipToClose()
			return nil
		}
		lambda.Names = append(lambda.Names, formal)
	}
	p.expectClose(open)
	lambda.Children = p.parseBody(open, "lambda")
	p.expectClose(open)
	if len(lambda.Children) == 0 {
		p.addError(open, "lambda: empty body")
		return nil
	}
	return lambda
}

func (p *Parser) parseBegin(open lexer.Position) *ast.Node {
	seq := &ast.Node{Kind: ast.SEQUENCE, Pos: open}
	seq.Children = p.parseBody(open, "begin")
	p.expectClose(open)
	return seq
}

func (p *Parser) parseQuote(open lexer.Position) *ast.Node {
	datum := p.parseDatum(ast.SYMBOL)
	if datum == nil {
		p.addError(open, "quote: missing datum")
		p.skipToClose()
		return nil
	}
	p.expectClose(open)
	return datum
}

// parseLet desugars (let ((v e)...) body...) into a single lambda
// application binding every name at once.
func (p *Parser) parseLet(open lexer.Position) *ast.Node {
	names, inits, ok := p.parseBindings(open, "let")
	if !ok {
		return nil
	}
	body := p.parseBody(open, "let")
	p.expectClose(open)
	if len(body) == 0 {
		p.addError(open, "let: empty body")
		return nil
	}
	lambda := &ast.Node{Kind: ast.LAMBDA, Pos: open, Names: names, Children: body}
	app := &ast.Node{Kind: ast.APPLICATION, Pos: open}
	app.Children = append([]*ast.Node{lambda}, inits...)
	return app
}

// parseLetStar desugars (let* ((v e)...) body...) into nested
// single-parameter lambda applications, built right-to-left so each
// binding sees the ones before it.
func (p *Parser) parseLetStar(open lexer.Position) *ast.Node {
	names, inits, ok := p.parseBindings(open, "let*")
	if !ok {
		return nil
	}
	body := p.parseBody(open, "let*")
	p.expectClose(open)
	if len(body) == 0 {
		p.addError(open, "let*: empty body")
		return nil
	}
	if len(names) == 0 {
		lambda := &ast.Node{Kind: ast.LAMBDA, Pos: open, Children: body}
		return &ast.Node{Kind: ast.APPLICATION, Pos: open, Children: []*ast.Node{lambda}}
	}
	inner := body
	var result *ast.Node
	for i := len(names) - 1; i >= 0; i-- {
		lambda := &ast.Node{
			Kind:     ast.LAMBDA,
			Pos:      open,
			Names:    []string{names[i]},
			Children: inner,
		}
		result = &ast.Node{
			Kind:     ast.APPLICATION,
			Pos:      open,
			Children: []*ast.Node{lambda, inits[i]},
		}
		inner = []*ast.Node{result}
	}
	return result
}

// parseLetrec keeps letrec as its own node: names bind to placeholders
// before the right-hand sides are evaluated, which an application cannot
// express.
func (p *Parser) parseLetrec(open lexer.Position) *ast.Node {
	names, inits, ok := p.parseBindings(open, "letrec")
	if !ok {
		return nil
	}
	body := p.parseBody(open, "letrec")
	p.expectClose(open)
	if len(body) == 0 {
		p.addError(open, "letrec: empty body")
		return nil
	}
	letrec := &ast.Node{Kind: ast.LETREC, Pos: open, Names: names}
	rhs := &ast.Node{Kind: ast.SEQUENCE, Pos: open, Children: inits}
	letrec.Children = append([]*ast.Node{rhs}, body...)
	return letrec
}

func (p *Parser) parseSet(open lexer.Position) *ast.Node {
	name, ok := p.expectIdent("set!")
	if !ok {
		p.skipToClose()
		return nil
	}
	expr := p.parseForm()
	if expr == nil {
		p.addError(open, "set!: missing expression")
		p.skipToClose()
		return nil
	}
	p.expectClose(open)
	return &ast.Node{Kind: ast.SET, Pos: open, Text: name, Children: []*ast.Node{expr}}
}

func (p *Parser) parseSetCar(open lexer.Position) *ast.Node {
	return p.parseMutation(open, ast.SETCAR, "set-car!", 2)
}

func (p *Parser) parseSetCdr(open lexer.Position) *ast.Node {
	return p.parseMutation(open, ast.SETCDR, "set-cdr!", 2)
}

func (p *Parser) parseSetVector(open lexer.Position) *ast.Node {
	return p.parseMutation(open, ast.SETVECTOR, "vector-set!", 3)
}

func (p *Parser) parseMutation(open lexer.Position, kind ast.Kind, name string, arity int) *ast.Node {
	node := &ast.Node{Kind: kind, Pos: open}
	for i := 0; i < arity; i++ {
		form := p.parseForm()
		if form == nil {
			p.addError(open, "%s: expected %d operands", name, arity)
			p.skipToClose()
			return nil
		}
		node.Children = append(node.Children, form)
	}
	p.expectClose(open)
	return node
}

// parseDo parses the iterative form:
//
//	(do ((var init step)...) (test result...) body...)
//
// A binding without a step expression steps to itself.
func (p *Parser) parseDo(open lexer.Position) *ast.Node {
	node := &ast.Node{Kind: ast.DO, Pos: open}
	if p.curToken.Type != lexer.LPAREN {
		p.addError(p.curToken.Pos, "do: expected binding list")
		p.skipToClose()
		return nil
	}
	p.nextToken()
	inits := &ast.Node{Kind: ast.SEQUENCE, Pos: open}
	steps := &ast.Node{Kind: ast.SEQUENCE, Pos: open}
	for !p.atClose() {
		bindPos := p.curToken.Pos
		if p.curToken.Type != lexer.LPAREN {
			p.addError(bindPos, "do: expected (var init step) binding")
			p.skipToClose()
			p.skipToClose()
			return nil
		}
		p.nextToken()
		name, ok := p.expectIdent("do: binding name")
		if !ok {
			p.skipToClose()
			p.skipToClose()
			p.skipToClose()
			return nil
		}
		init := p.parseForm()
		if init == nil {
			p.addError(bindPos, "do: binding without init expression")
			p.skipToClose()
			p.skipToClose()
			p.skipToClose()
			return nil
		}
		step := ast.NewVariable(name)
		step.Pos = bindPos
		if !p.atClose() {
			if s := p.parseForm(); s != nil {
				step = s
			}
		}
		p.expectClose(bindPos)
		node.Names = append(node.Names, name)
		inits.Children = append(inits.Children, init)
		steps.Children = append(steps.Children, step)
	}
	p.expectClose(open)

	if p.curToken.Type != lexer.LPAREN {
		p.addError(p.curToken.Pos, "do: expected (test result...) clause")
		p.skipToClose()
		return nil
	}
	testPos := p.curToken.Pos
	p.nextToken()
	test := p.parseForm()
	if test == nil {
		p.addError(testPos, "do: missing test expression")
		p.skipToClose()
		p.skipToClose()
		return nil
	}
	results := &ast.Node{Kind: ast.SEQUENCE, Pos: testPos}
	results.Children = p.parseBody(testPos, "do result")
	p.expectClose(testPos)

	body := &ast.Node{Kind: ast.SEQUENCE, Pos: open}
	body.Children = p.parseBody(open, "do body")
	p.expectClose(open)

	node.Children = []*ast.Node{inits, steps, test, results, body}
	return node
}

func (p *Parser) parseAnd(open lexer.Position) *ast.Node {
	node := &ast.Node{Kind: ast.AND, Pos: open}
	node.Children = p.parseBody(open, "and")
	p.expectClose(open)
	return node
}

func (p *Parser) parseOr(open lexer.Position) *ast.Node {
	node := &ast.Node{Kind: ast.OR, Pos: open}
	node.Children = p.parseBody(open, "or")
	p.expectClose(open)
	return node
}

func (p *Parser) parseApply(open lexer.Position) *ast.Node {
	fn := p.parseForm()
	args := p.parseForm()
	if fn == nil || args == nil {
		p.addError(open, "apply: expected procedure and argument list")
		p.skipToClose()
		return nil
	}
	p.expectClose(open)
	return &ast.Node{Kind: ast.APPLY, Pos: open, Children: []*ast.Node{fn, args}}
}

func (p *Parser) parseEval(open lexer.Position) *ast.Node {
	expr := p.parseForm()
	if expr == nil {
		p.addError(open, "eval: missing expression")
		p.skipToClose()
		return nil
	}
	p.expectClose(open)
	return &ast.Node{Kind: ast.EVAL, Pos: open, Children: []*ast.Node{expr}}
}

// parseBody collects forms until the enclosing close paren.
func (p *Parser) parseBody(open lexer.Position, context string) []*ast.Node {
	var body []*ast.Node
	for !p.atClose() {
		if form := p.parseForm(); form != nil {
			body = append(body, form)
		}
	}
	return body
}

// parseBindings parses a ((name expr)...) binding list.
func (p *Parser) parseBindings(open lexer.Position, context string) (names []string, inits []*ast.Node, ok bool) {
	if p.curToken.Type != lexer.LPAREN {
		p.addError(p.curToken.Pos, "%s: expected binding list", context)
		p.skipToClose()
		return nil, nil, false
	}
	p.nextToken()
	for !p.atClose() {
		bindPos := p.curToken.Pos
		if p.curToken.Type != lexer.LPAREN {
			p.addError(bindPos, "%s: expected (name expr) binding", context)
			p.skipToClose()
			p.skipToClose()
			return nil, nil, false
		}
		p.nextToken()
		name, identOK := p.expectIdent(context + ": binding name")
		if !identOK {
			p.skipToClose()
			p.skipToClose()
			p.skipToClose()
			return nil, nil, false
		}
		expr := p.parseForm()
		if expr == nil {
			p.addError(bindPos, "%s: binding without expression", context)
			p.skipToClose()
			p.skipToClose()
			p.skipToClose()
			return nil, nil, false
		}
		p.expectClose(bindPos)
		names = append(names, name)
		inits = append(inits, expr)
	}
	p.expectClose(open)
	return names, inits, true
}

// sequenceOf wraps forms in a SEQUENCE unless there is exactly one.
func sequenceOf(forms []*ast.Node, pos lexer.Position) *ast.Node {
	if len(forms) == 1 {
		return forms[0]
	}
	return &ast.Node{Kind: ast.SEQUENCE, Pos: pos, Children: forms}
}
