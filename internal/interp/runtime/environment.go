package runtime

// Environment is a lexical frame: a mapping of identifier text to values
// plus a reference to the enclosing frame. Lookup walks the parent
// chain; binding writes to the local frame only. Closures retain the
// environment live at lambda evaluation time, so frames outlive their
// activation whenever a closure captures them.
type Environment struct {
	store map[string]Value
	outer *Environment
}

// NewEnvironment creates a root environment with no parent. This is the
// global frame of a program.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Value)}
}

// NewEnclosedEnvironment creates a child frame of outer. Used for lambda
// application, letrec and do bindings.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{store: make(map[string]Value), outer: outer}
}

// Get resolves an identifier by walking the frame chain outward.
// It returns the value and true, or nil and false when the identifier is
// unbound everywhere.
func (e *Environment) Get(name string) (Value, bool) {
	if val, ok := e.store[name]; ok {
		return val, true
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return nil, false
}

// Define binds name in the local frame unconditionally, shadowing any
// binding in an enclosing frame.
func (e *Environment) Define(name string, val Value) {
	e.store[name] = val
}

// Assign rebinds name in the nearest enclosing frame that already
// defines it. Assigning an identifier no frame defines is an error,
// reported by the caller as a SemanticError.
func (e *Environment) Assign(name string, val Value) bool {
	if _, ok := e.store[name]; ok {
		e.store[name] = val
		return true
	}
	if e.outer != nil {
		return e.outer.Assign(name, val)
	}
	return false
}

// Extend returns a child frame binding each formal to the argument at
// the same position. Arity has been checked by the caller; Extend
// assumes len(formals) == len(args).
func (e *Environment) Extend(formals []string, args []Value) *Environment {
	child := NewEnclosedEnvironment(e)
	for i, formal := range formals {
		child.store[formal] = args[i]
	}
	return child
}
