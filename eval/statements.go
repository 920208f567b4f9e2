package eval

import (
	"fmt"

	"github.com/geoffreydatema/graveyard/lexer"
	"github.com/geoffreydatema/graveyard/object"
	"github.com/geoffreydatema/graveyard/parser"
	"github.com/geoffreydatema/graveyard/scope"
)

// execStatement is the single type switch every statement kind dispatches
// through, mirroring evalExpr's shape for expressions.
func (e *Evaluator) execStatement(stmt parser.Statement, sc *scope.Scope) outcome {
	switch n := stmt.(type) {
	case *parser.ExpressionStatement:
		return normalValue(e.evalExpr(n.Expression, sc))
	case *parser.AssignmentStatement:
		return e.execAssignment(n, sc)
	case *parser.CompoundAssignStatement:
		return e.execCompoundAssign(n, sc)
	case *parser.IncDecStatement:
		return e.execIncDec(n, sc)
	case *parser.ArrayAssignStatement:
		return e.execArrayAssign(n, sc)
	case *parser.ArrayAppendStatement:
		return e.execArrayAppend(n, sc)
	case *parser.HashtableAssignStatement:
		return e.execHashtableAssign(n, sc)
	case *parser.TypeMemberAssignStatement:
		return e.execTypeMemberAssign(n, sc)
	case *parser.FunctionDefStatement:
		return e.execFunctionDef(n, sc)
	case *parser.IfStatement:
		return e.execIf(n, sc)
	case *parser.WhileStatement:
		return e.execWhile(n, sc)
	case *parser.ForStatement:
		return e.execFor(n, sc)
	case *parser.ReturnStatement:
		return e.execReturn(n, sc)
	case *parser.PrintStatement:
		return e.execPrint(n, sc)
	case *parser.AssertStatement:
		return e.execAssert(n, sc)
	case *parser.RaiseStatement:
		return e.execRaise(n, sc)
	case *parser.ContinueStatement:
		return outcome{kind: continueOutcome}
	case *parser.BreakStatement:
		return outcome{kind: breakOutcome}
	case *parser.TypeDefStatement:
		return e.execTypeDef(n, sc)
	case *parser.TypeInstantiationStatement:
		return e.execTypeInstantiation(n, sc)
	case *parser.NamespaceDefStatement:
		return e.execNamespaceDef(n, sc)
	default:
		return normalValue(object.NewError("Syntax", 0, 0, "unhandled statement node %T", stmt))
	}
}

func (e *Evaluator) execAssignment(n *parser.AssignmentStatement, sc *scope.Scope) outcome {
	v := e.evalExpr(n.Value, sc)
	if isError(v) {
		return outcome{kind: errorOutcome, value: v}
	}
	sc.Assign(n.Name, v)
	return normalNull
}

func (e *Evaluator) execCompoundAssign(n *parser.CompoundAssignStatement, sc *scope.Scope) outcome {
	current, ok := sc.LookUp(n.Name)
	if !ok {
		return normalValue(object.NewError("Name", n.Token.Line, n.Token.Column, "undefined name '%s'", n.Name))
	}
	rhs := e.evalExpr(n.Value, sc)
	if isError(rhs) {
		return outcome{kind: errorOutcome, value: rhs}
	}
	op := compoundToBinaryOp(n.Op)
	result := applyBinaryOp(n.Token, op, current, rhs)
	if isError(result) {
		return outcome{kind: errorOutcome, value: result}
	}
	sc.AssignExisting(n.Name, result)
	return normalNull
}

func compoundToBinaryOp(op lexer.TokenType) lexer.TokenType {
	switch op {
	case lexer.PLUS_ASSIGN:
		return lexer.PLUS
	case lexer.MINUS_ASSIGN:
		return lexer.MINUS
	case lexer.STAR_ASSIGN:
		return lexer.STAR
	case lexer.SLASH_ASSIGN:
		return lexer.SLASH
	case lexer.POW_ASSIGN:
		return lexer.STAR_STAR
	default:
		return op
	}
}

func (e *Evaluator) execIncDec(n *parser.IncDecStatement, sc *scope.Scope) outcome {
	current, ok := sc.LookUp(n.Name)
	if !ok {
		return normalValue(object.NewError("Name", n.Token.Line, n.Token.Column, "undefined name '%s'", n.Name))
	}
	delta := int64(1)
	if n.Op == lexer.DECREMENT {
		delta = -1
	}
	switch v := current.(type) {
	case *object.Integer:
		sc.AssignExisting(n.Name, &object.Integer{Value: v.Value + delta})
	case *object.Float:
		sc.AssignExisting(n.Name, &object.Float{Value: v.Value + float64(delta)})
	default:
		return normalValue(typeError(n.Token, "'%s' requires a number, got %s", n.Op, current.Type()))
	}
	return normalNull
}

func (e *Evaluator) execArrayAssign(n *parser.ArrayAssignStatement, sc *scope.Scope) outcome {
	value := e.evalExpr(n.Value, sc)
	if isError(value) {
		return outcome{kind: errorOutcome, value: value}
	}
	if n.Index == nil {
		sc.Assign(n.Name, value)
		return normalNull
	}
	current, ok := sc.LookUp(n.Name)
	if !ok {
		return normalValue(object.NewError("Name", n.Token.Line, n.Token.Column, "undefined name '%s'", n.Name))
	}
	arr, ok := current.(*object.Array)
	if !ok {
		return normalValue(typeError(n.Token, "'%s' is not an array", n.Name))
	}
	idxV := e.evalExpr(n.Index, sc)
	if isError(idxV) {
		return outcome{kind: errorOutcome, value: idxV}
	}
	idxF, numOk := numericValue(idxV)
	if !numOk || !isInteger(idxV) {
		return normalValue(typeError(n.Token, "array index must be an integer"))
	}
	idx := int64(idxF)
	if idx < 0 || idx >= int64(len(arr.Elements)) {
		return normalValue(object.NewError("Key", n.Token.Line, n.Token.Column, "array index %d out of range", idx))
	}
	arr.Elements[idx] = value
	return normalNull
}

func (e *Evaluator) execArrayAppend(n *parser.ArrayAppendStatement, sc *scope.Scope) outcome {
	current, ok := sc.LookUp(n.Name)
	if !ok {
		return normalValue(object.NewError("Name", n.Token.Line, n.Token.Column, "undefined name '%s'", n.Name))
	}
	arr, ok := current.(*object.Array)
	if !ok {
		return normalValue(typeError(n.Token, "'%s' is not an array", n.Name))
	}
	value := e.evalExpr(n.Value, sc)
	if isError(value) {
		return outcome{kind: errorOutcome, value: value}
	}
	arr.Elements = append(arr.Elements, value)
	return normalNull
}

func (e *Evaluator) execHashtableAssign(n *parser.HashtableAssignStatement, sc *scope.Scope) outcome {
	current, ok := sc.LookUp(n.Name)
	if !ok {
		return normalValue(object.NewError("Name", n.Token.Line, n.Token.Column, "undefined name '%s'", n.Name))
	}
	h, ok := current.(*object.Hashtable)
	if !ok {
		return normalValue(typeError(n.Token, "'%s' is not a hashtable", n.Name))
	}
	keyV := e.evalExpr(n.Key, sc)
	if isError(keyV) {
		return outcome{kind: errorOutcome, value: keyV}
	}
	nativeKey, kerr := hashKey(keyV, n.Token)
	if kerr != nil {
		return normalValue(kerr)
	}
	value := e.evalExpr(n.Value, sc)
	if isError(value) {
		return outcome{kind: errorOutcome, value: value}
	}
	h.Set(nativeKey, value)
	return normalNull
}

func (e *Evaluator) execTypeMemberAssign(n *parser.TypeMemberAssignStatement, sc *scope.Scope) outcome {
	inst, err := e.resolveInstance(n.InstanceName, sc, n.Token)
	if err != nil {
		return normalValue(err)
	}
	existing, isMember := inst.Fields[n.Member]
	if !isMember {
		return normalValue(object.NewError("Name", n.Token.Line, n.Token.Column, "'%s' is not a member of '%s'", n.Member, n.InstanceName))
	}
	if _, isMethod := existing.(*object.Function); isMethod {
		return normalValue(object.NewError("Type", n.Token.Line, n.Token.Column, "cannot reassign method '%s'", n.Member))
	}
	value := e.evalExpr(n.Value, sc)
	if isError(value) {
		return outcome{kind: errorOutcome, value: value}
	}
	inst.Fields[n.Member] = value
	return normalNull
}

// execFunctionDef hoists the definition to the global scope regardless of
// where it textually appears, per the language's function-definition rule.
func (e *Evaluator) execFunctionDef(n *parser.FunctionDefStatement, sc *scope.Scope) outcome {
	global := sc.Global()
	fn := &object.Function{
		Name:          n.Name,
		Params:        n.Params,
		Body:          n.Body,
		DefiningScope: global,
	}
	global.Bind(n.Name, fn)
	return normalNull
}

func (e *Evaluator) execIf(n *parser.IfStatement, sc *scope.Scope) outcome {
	for _, branch := range n.Branches {
		cond := e.evalExpr(branch.Condition, sc)
		if isError(cond) {
			return outcome{kind: errorOutcome, value: cond}
		}
		if object.Truthy(cond) {
			return e.execBlock(branch.Body, scope.New(sc))
		}
	}
	if n.Else != nil {
		return e.execBlock(n.Else, scope.New(sc))
	}
	return normalNull
}

func (e *Evaluator) execWhile(n *parser.WhileStatement, sc *scope.Scope) outcome {
	for {
		cond := e.evalExpr(n.Condition, sc)
		if isError(cond) {
			return outcome{kind: errorOutcome, value: cond}
		}
		if !object.Truthy(cond) {
			return normalNull
		}
		out := e.execBlock(n.Body, scope.New(sc))
		switch out.kind {
		case breakOutcome:
			return normalNull
		case continueOutcome, normalOutcome:
			continue
		default:
			return out
		}
	}
}

func (e *Evaluator) execFor(n *parser.ForStatement, sc *scope.Scope) outcome {
	limit := e.evalExpr(n.Limit, sc)
	if isError(limit) {
		return outcome{kind: errorOutcome, value: limit}
	}

	runBody := func(iterVal object.Value) outcome {
		bodyScope := scope.New(sc)
		bodyScope.Bind(n.Iterator, iterVal)
		return e.execBlock(n.Body, bodyScope)
	}

	switch lim := limit.(type) {
	case *object.Integer:
		for i := int64(0); i < lim.Value; i++ {
			out := runBody(&object.Integer{Value: i})
			switch out.kind {
			case breakOutcome:
				return normalNull
			case continueOutcome, normalOutcome:
				continue
			default:
				return out
			}
		}
	case *object.Array:
		for _, elem := range lim.Elements {
			out := runBody(elem)
			switch out.kind {
			case breakOutcome:
				return normalNull
			case continueOutcome, normalOutcome:
				continue
			default:
				return out
			}
		}
	case *object.Hashtable:
		for _, key := range lim.Keys {
			out := runBody(hashKeyToValue(key))
			switch out.kind {
			case breakOutcome:
				return normalNull
			case continueOutcome, normalOutcome:
				continue
			default:
				return out
			}
		}
	default:
		return normalValue(typeError(n.Token, "for-loop limit must be an integer, array, or hashtable, got %s", limit.Type()))
	}
	return normalNull
}

func hashKeyToValue(key interface{}) object.Value {
	switch k := key.(type) {
	case string:
		return &object.String{Value: k}
	case int64:
		return &object.Integer{Value: k}
	default:
		return object.NULL
	}
}

func (e *Evaluator) execReturn(n *parser.ReturnStatement, sc *scope.Scope) outcome {
	if n.Value == nil {
		return outcome{kind: returnOutcome, value: object.NULL}
	}
	v := e.evalExpr(n.Value, sc)
	if isError(v) {
		return outcome{kind: errorOutcome, value: v}
	}
	return outcome{kind: returnOutcome, value: v}
}

func (e *Evaluator) execPrint(n *parser.PrintStatement, sc *scope.Scope) outcome {
	args := make([]object.Value, len(n.Args))
	for i, a := range n.Args {
		v := e.evalExpr(a, sc)
		if isError(v) {
			return outcome{kind: errorOutcome, value: v}
		}
		args[i] = v
	}
	fn, _ := e.Builtins.Lookup("print")
	fn(args, n.Token.Line, n.Token.Column)
	return normalNull
}

func (e *Evaluator) execAssert(n *parser.AssertStatement, sc *scope.Scope) outcome {
	cond := e.evalExpr(n.Condition, sc)
	if isError(cond) {
		return outcome{kind: errorOutcome, value: cond}
	}
	if !object.Truthy(cond) {
		msg := e.renderAssertFailure(n.Condition, sc)
		return normalValue(object.NewError("Assertion", n.Token.Line, n.Token.Column, "Assertion failed: %s", msg))
	}
	return normalNull
}

// renderAssertFailure reproduces the failing condition for the assertion
// message: "left op right" when the condition is any binary expression
// (comparison, arithmetic or logical), otherwise the condition's own
// rendered value.
func (e *Evaluator) renderAssertFailure(cond parser.Expression, sc *scope.Scope) string {
	if bin, ok := cond.(*parser.BinaryExpression); ok {
		left := e.evalExpr(bin.Left, sc)
		right := e.evalExpr(bin.Right, sc)
		return fmt.Sprintf("%s %s %s", left.String(), bin.Op, right.String())
	}
	return e.evalExpr(cond, sc).String()
}

func (e *Evaluator) execRaise(n *parser.RaiseStatement, sc *scope.Scope) outcome {
	v := e.evalExpr(n.Message, sc)
	if isError(v) {
		return outcome{kind: errorOutcome, value: v}
	}
	return normalValue(object.NewError("Raised", n.Token.Line, n.Token.Column, "%s", v.String()))
}

func (e *Evaluator) execTypeDef(n *parser.TypeDefStatement, sc *scope.Scope) outcome {
	global := sc.Global()
	parents := make([]*object.TypeDescriptor, len(n.Parents))
	for i, pname := range n.Parents {
		pv, ok := global.LookUp(pname)
		if !ok {
			return normalValue(object.NewError("Name", n.Token.Line, n.Token.Column, "undefined parent type '%s'", pname))
		}
		pd, ok := pv.(*object.TypeDescriptor)
		if !ok {
			return normalValue(typeError(n.Token, "'%s' is not a type", pname))
		}
		parents[i] = pd
	}

	own := make(map[string]object.Value, len(n.Members))
	for _, m := range n.Members {
		if m.Method != nil {
			own[m.Name] = &object.Function{
				Name:          m.Method.Name,
				Params:        m.Method.Params,
				Body:          m.Method.Body,
				DefiningScope: global,
			}
			continue
		}
		v := e.evalExpr(m.Value, sc)
		if isError(v) {
			return outcome{kind: errorOutcome, value: v}
		}
		own[m.Name] = v
	}

	desc := object.NewTypeDescriptor(n.Name, parents, own)
	global.Bind(n.Name, desc)
	return normalNull
}

func (e *Evaluator) execTypeInstantiation(n *parser.TypeInstantiationStatement, sc *scope.Scope) outcome {
	tv, ok := sc.Global().LookUp(n.TypeName)
	if !ok {
		return normalValue(object.NewError("Name", n.Token.Line, n.Token.Column, "undefined type '%s'", n.TypeName))
	}
	desc, ok := tv.(*object.TypeDescriptor)
	if !ok {
		return normalValue(typeError(n.Token, "'%s' is not a type", n.TypeName))
	}
	sc.Bind(n.InstanceName, object.NewInstance(desc))
	return normalNull
}

func (e *Evaluator) execNamespaceDef(n *parser.NamespaceDefStatement, sc *scope.Scope) outcome {
	nsScope := scope.New(sc.Global())
	out := e.execBlock(n.Body, nsScope)
	if out.kind == errorOutcome {
		return out
	}
	ns := &object.Namespace{Name: n.Name, Members: nsScope.Variables}
	sc.Global().Bind(n.Name, ns)
	return normalNull
}
