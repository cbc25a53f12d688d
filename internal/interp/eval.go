package interp

import (
	"github.com/mscheme-lang/go-mscheme/internal/ast"
	"github.com/mscheme-lang/go-mscheme/internal/interp/runtime"
)

// Eval evaluates a node in the given environment, dispatching on its
// kind.
func (i *Interpreter) Eval(node *ast.Node, env *runtime.Environment) (runtime.Value, error) {
	switch node.Kind {
	case ast.NUMBER, ast.STRING, ast.BOOLEAN, ast.CHARACTER, ast.SYMBOL, ast.QUASISYMBOL, ast.LIST, ast.VECTOR:
		// Self-evaluating: the value wraps the node itself. Quotation
		// already happened at parse time, so list structure is data
		// here; only the eval form treats a datum as code, through
		// evalDatum.
		return runtime.NewDatum(node), nil

	case ast.VARIABLE:
		return i.evalVariable(node, env)

	case ast.DECLARATION:
		val, err := i.Eval(node.Children[0], env)
		if err != nil {
			return nil, err
		}
		env.Define(node.Text, val)
		return runtime.Unspecified, nil

	case ast.SEQUENCE:
		return i.evalSequence(node.Children, env)

	case ast.COND:
		return i.evalCond(node, env)

	case ast.AND:
		result := runtime.Value(runtime.NewBoolean(true))
		for _, operand := range node.Children {
			val, err := i.Eval(operand, env)
			if err != nil {
				return nil, err
			}
			if !runtime.IsTruthy(val) {
				return val, nil
			}
			result = val
		}
		return result, nil

	case ast.OR:
		for _, operand := range node.Children {
			val, err := i.Eval(operand, env)
			if err != nil {
				return nil, err
			}
			if runtime.IsTruthy(val) {
				return val, nil
			}
		}
		return runtime.NewBoolean(false), nil

	case ast.LAMBDA:
		return &runtime.Closure{Lambda: node, Env: env}, nil

	case ast.LETREC:
		return i.evalLetrec(node, env)

	case ast.SET:
		return i.evalSet(node, env)

	case ast.SETCAR, ast.SETCDR:
		return i.evalSetSlot(node, env)

	case ast.SETVECTOR:
		return i.evalSetVector(node, env)

	case ast.DO:
		return i.evalDo(node, env)

	case ast.APPLICATION:
		return i.evalApplication(node, env)

	case ast.APPLY:
		return i.evalApply(node, env)

	case ast.EVAL:
		return i.evalEval(node, env)

	default:
		return nil, runtime.Semanticf("cannot evaluate %s node", node.Kind)
	}
}

// evalVariable resolves an identifier through the environment chain,
// falling back to the primitive registry.
func (i *Interpreter) evalVariable(node *ast.Node, env *runtime.Environment) (runtime.Value, error) {
	if val, ok := env.Get(node.Text); ok {
		return val, nil
	}
	if i.registry.Has(node.Text) {
		return &runtime.PrimitiveRef{Name: node.Text}, nil
	}
	return nil, &runtime.UnboundIdentifierError{Name: node.Text}
}

// evalSequence evaluates forms in order and returns the last value; an
// empty sequence is unspecified.
func (i *Interpreter) evalSequence(forms []*ast.Node, env *runtime.Environment) (runtime.Value, error) {
	result := runtime.Unspecified
	for _, form := range forms {
		val, err := i.Eval(form, env)
		if err != nil {
			return nil, err
		}
		result = val
	}
	return result, nil
}

// evalCond walks the alternating predicate/consequent children; an odd
// trailing child is the else consequent.
func (i *Interpreter) evalCond(node *ast.Node, env *runtime.Environment) (runtime.Value, error) {
	children := node.Children
	for len(children) >= 2 {
		pred, err := i.Eval(children[0], env)
		if err != nil {
			return nil, err
		}
		if runtime.IsTruthy(pred) {
			return i.Eval(children[1], env)
		}
		children = children[2:]
	}
	if len(children) == 1 {
		return i.Eval(children[0], env)
	}
	return runtime.Unspecified, nil
}

// evalLetrec binds every name to a placeholder, evaluates the
// right-hand sides in the child environment so they see each other,
// then overwrites the bindings and runs the body.
func (i *Interpreter) evalLetrec(node *ast.Node, env *runtime.Environment) (runtime.Value, error) {
	child := runtime.NewEnclosedEnvironment(env)
	for _, name := range node.Names {
		child.Define(name, runtime.Unspecified)
	}
	rhs := node.Children[0].Children
	values := make([]runtime.Value, len(rhs))
	for idx, expr := range rhs {
		val, err := i.Eval(expr, child)
		if err != nil {
			return nil, err
		}
		values[idx] = val
	}
	for idx, name := range node.Names {
		child.Define(name, values[idx])
	}
	return i.evalSequence(node.Children[1:], child)
}

// evalSet rebinds an identifier in the nearest frame that defines it.
func (i *Interpreter) evalSet(node *ast.Node, env *runtime.Environment) (runtime.Value, error) {
	val, err := i.Eval(node.Children[0], env)
	if err != nil {
		return nil, err
	}
	if !env.Assign(node.Text, val) {
		return nil, runtime.Semanticf("set!: assignment to undefined identifier: %s", node.Text)
	}
	return runtime.Unspecified, nil
}

// evalSetSlot implements set-car! and set-cdr!: the target must be a
// non-empty list and the replacement a datum.
func (i *Interpreter) evalSetSlot(node *ast.Node, env *runtime.Environment) (runtime.Value, error) {
	name := node.Kind.String()
	target, err := i.Eval(node.Children[0], env)
	if err != nil {
		return nil, err
	}
	val, err := i.Eval(node.Children[1], env)
	if err != nil {
		return nil, err
	}
	d, ok := target.(*runtime.Datum)
	if !ok || d.Node.Kind != ast.LIST {
		return nil, &runtime.TypeError{Callee: name, Position: 1, Expected: "pair", Actual: target.Type()}
	}
	if d.Node.IsEmptyList() {
		return nil, &runtime.DomainError{Callee: name, Message: "empty list"}
	}
	replacement, ok := val.(*runtime.Datum)
	if !ok {
		return nil, &runtime.TypeError{Callee: name, Position: 2, Expected: "datum", Actual: val.Type()}
	}
	slot := 0
	if node.Kind == ast.SETCDR {
		slot = 1
	}
	d.Node.Children[slot] = replacement.Node
	return runtime.Unspecified, nil
}

// evalSetVector implements vector-set! with a range-checked index.
func (i *Interpreter) evalSetVector(node *ast.Node, env *runtime.Environment) (runtime.Value, error) {
	target, err := i.Eval(node.Children[0], env)
	if err != nil {
		return nil, err
	}
	index, err := i.Eval(node.Children[1], env)
	if err != nil {
		return nil, err
	}
	val, err := i.Eval(node.Children[2], env)
	if err != nil {
		return nil, err
	}
	vec, ok := target.(*runtime.Datum)
	if !ok || vec.Node.Kind != ast.VECTOR {
		return nil, &runtime.TypeError{Callee: "vector-set!", Position: 1, Expected: "vector", Actual: target.Type()}
	}
	idx, ok := index.(*runtime.Datum)
	if !ok || idx.Node.Kind != ast.NUMBER || !idx.Node.Num.IsInteger() {
		return nil, &runtime.TypeError{Callee: "vector-set!", Position: 2, Expected: "integer", Actual: index.Type()}
	}
	k := int(idx.Node.Num.Int64())
	if k < 0 || k >= len(vec.Node.Children) {
		return nil, &runtime.DomainError{Callee: "vector-set!", Message: "index out of range"}
	}
	replacement, ok := val.(*runtime.Datum)
	if !ok {
		return nil, &runtime.TypeError{Callee: "vector-set!", Position: 3, Expected: "datum", Actual: val.Type()}
	}
	vec.Node.Children[k] = replacement.Node
	return runtime.Unspecified, nil
}

// evalDo runs the iterative form with a host-language loop, so the
// stack stays flat no matter how many iterations run. Step expressions
// are evaluated into a staging list before any variable is updated,
// giving simultaneous-assignment semantics.
func (i *Interpreter) evalDo(node *ast.Node, env *runtime.Environment) (runtime.Value, error) {
	inits := node.Children[0].Children
	steps := node.Children[1].Children
	test := node.Children[2]
	results := node.Children[3].Children
	body := node.Children[4]

	child := runtime.NewEnclosedEnvironment(env)
	for idx, name := range node.Names {
		val, err := i.Eval(inits[idx], env)
		if err != nil {
			return nil, err
		}
		child.Define(name, val)
	}

	for {
		testVal, err := i.Eval(test, child)
		if err != nil {
			return nil, err
		}
		if runtime.IsTruthy(testVal) {
			return i.evalSequence(results, child)
		}
		if _, err := i.Eval(body, child); err != nil {
			return nil, err
		}
		staged := make([]runtime.Value, len(steps))
		for idx, step := range steps {
			val, err := i.Eval(step, child)
			if err != nil {
				return nil, err
			}
			staged[idx] = val
		}
		for idx, name := range node.Names {
			child.Define(name, staged[idx])
		}
	}
}

// evalApplication evaluates the operator first, then the operands left
// to right, then applies.
func (i *Interpreter) evalApplication(node *ast.Node, env *runtime.Environment) (runtime.Value, error) {
	if len(node.Children) == 0 {
		return nil, runtime.Semanticf("cannot apply an empty combination")
	}
	operator, err := i.Eval(node.Children[0], env)
	if err != nil {
		return nil, err
	}
	args := make([]runtime.Value, len(node.Children)-1)
	for idx, operand := range node.Children[1:] {
		val, err := i.Eval(operand, env)
		if err != nil {
			return nil, err
		}
		args[idx] = val
	}
	return i.Apply(operator, args)
}

// Apply invokes a procedure value on already-evaluated arguments:
// closures get a fresh child frame of their captured environment,
// primitive references dispatch into the registry.
func (i *Interpreter) Apply(operator runtime.Value, args []runtime.Value) (runtime.Value, error) {
	switch fn := operator.(type) {
	case *runtime.Closure:
		formals := fn.Lambda.Names
		if len(args) != len(formals) {
			return nil, &runtime.ArityError{Callee: "procedure", Expected: len(formals), Got: len(args)}
		}
		frame := fn.Env.Extend(formals, args)
		return i.evalSequence(fn.Lambda.Children, frame)
	case *runtime.PrimitiveRef:
		info, ok := i.registry.Lookup(fn.Name)
		if !ok {
			return nil, &runtime.UnboundIdentifierError{Name: fn.Name}
		}
		return info.Function(i.ctx, args)
	default:
		return nil, runtime.Semanticf("not applicable: %s", operator.Type())
	}
}

// evalApply implements the apply form: the second operand must evaluate
// to a proper list, whose elements become the arguments.
func (i *Interpreter) evalApply(node *ast.Node, env *runtime.Environment) (runtime.Value, error) {
	fn, err := i.Eval(node.Children[0], env)
	if err != nil {
		return nil, err
	}
	argsVal, err := i.Eval(node.Children[1], env)
	if err != nil {
		return nil, err
	}
	d, ok := argsVal.(*runtime.Datum)
	if !ok || d.Node.Kind != ast.LIST {
		return nil, runtime.Semanticf("apply: argument list must be a list, got %s", argsVal.Type())
	}
	elems, proper := d.Node.Elements()
	if !proper {
		return nil, runtime.Semanticf("apply: argument list must be a proper list")
	}
	args := make([]runtime.Value, len(elems))
	for idx, elem := range elems {
		args[idx] = runtime.NewDatum(elem)
	}
	return i.Apply(fn, args)
}

// evalEval implements the eval form: the operand must evaluate to a
// quoted datum, which is then evaluated in the global environment.
func (i *Interpreter) evalEval(node *ast.Node, env *runtime.Environment) (runtime.Value, error) {
	val, err := i.Eval(node.Children[0], env)
	if err != nil {
		return nil, err
	}
	d, ok := val.(*runtime.Datum)
	if !ok {
		return nil, runtime.Semanticf("eval: expected a quoted datum, got %s", val.Type())
	}
	return i.evalDatum(d.Node, i.global)
}

// evalDatum evaluates quoted data as code: symbols resolve as
// variables, non-empty lists become applications with (quote x)
// special-cased, and every other datum evaluates to itself.
func (i *Interpreter) evalDatum(node *ast.Node, env *runtime.Environment) (runtime.Value, error) {
	switch node.Kind {
	case ast.SYMBOL, ast.QUASISYMBOL:
		return i.evalVariable(ast.NewVariable(node.Text), env)
	case ast.LIST:
		if node.IsEmptyList() {
			return runtime.NewDatum(node), nil
		}
		elems, proper := node.Elements()
		if !proper {
			return nil, runtime.Semanticf("eval: cannot evaluate an improper list")
		}
		head := elems[0]
		if isSymbolText(head, "quote") && len(elems) == 2 {
			return runtime.NewDatum(elems[1]), nil
		}
		operator, err := i.evalDatum(head, env)
		if err != nil {
			return nil, err
		}
		args := make([]runtime.Value, len(elems)-1)
		for idx, elem := range elems[1:] {
			val, err := i.evalDatum(elem, env)
			if err != nil {
				return nil, err
			}
			args[idx] = val
		}
		return i.Apply(operator, args)
	default:
		return i.Eval(node, env)
	}
}

func isSymbolText(node *ast.Node, text string) bool {
	return (node.Kind == ast.SYMBOL || node.Kind == ast.QUASISYMBOL) && node.Text == text
}
