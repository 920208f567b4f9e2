package eval

import (
	"math"
	"strings"

	"github.com/geoffreydatema/graveyard/lexer"
	"github.com/geoffreydatema/graveyard/object"
	"github.com/geoffreydatema/graveyard/parser"
	"github.com/geoffreydatema/graveyard/scope"
)

// evalExpr is the single type switch every expression kind dispatches
// through. Errors are returned as ordinary object.Value results (an
// *object.Error) rather than via panic, so callers just need to check
// isError before using a result.
func (e *Evaluator) evalExpr(node parser.Expression, sc *scope.Scope) object.Value {
	switch n := node.(type) {
	case *parser.IntegerLiteral:
		return &object.Integer{Value: n.Value}
	case *parser.FloatLiteral:
		return &object.Float{Value: n.Value}
	case *parser.StringLiteral:
		return &object.String{Value: n.Value}
	case *parser.BooleanLiteral:
		return object.NativeBool(n.Value)
	case *parser.NullLiteral:
		return object.NULL
	case *parser.Identifier:
		return e.evalIdentifier(n, sc)
	case *parser.FormattedStringExpression:
		return e.evalFormattedString(n, sc)
	case *parser.UnaryExpression:
		return e.evalUnary(n, sc)
	case *parser.BinaryExpression:
		return e.evalBinary(n, sc)
	case *parser.ArrayLiteral:
		return e.evalArrayLiteral(n, sc)
	case *parser.HashtableLiteral:
		return e.evalHashtableLiteral(n, sc)
	case *parser.RangeExpression:
		return e.evalRange(n, sc)
	case *parser.IndexExpression:
		return e.evalIndex(n, sc)
	case *parser.HashtableLookupExpression:
		return e.evalHashtableLookup(n, sc)
	case *parser.FunctionCallExpression:
		return e.evalFunctionCall(n, sc)
	case *parser.MemberLookupExpression:
		return e.evalMemberLookup(n, sc)
	case *parser.MethodCallExpression:
		return e.evalMethodCall(n, sc)
	case *parser.NamespaceAccessExpression:
		return e.evalNamespaceAccess(n, sc)
	case *parser.ScanExpression:
		return e.evalScan(n, sc)
	default:
		return object.NewError("Syntax", 0, 0, "unhandled expression node %T", node)
	}
}

func (e *Evaluator) evalIdentifier(n *parser.Identifier, sc *scope.Scope) object.Value {
	if v, ok := sc.LookUp(n.Name); ok {
		return v
	}
	return object.NewError("Name", n.Token.Line, n.Token.Column, "undefined name '%s'", n.Name)
}

func (e *Evaluator) evalFormattedString(n *parser.FormattedStringExpression, sc *scope.Scope) object.Value {
	var b strings.Builder
	for _, part := range n.Parts {
		if lit, ok := part.(*parser.StringLiteral); ok {
			b.WriteString(lit.Value)
			continue
		}
		v := e.evalExpr(part, sc)
		if isError(v) {
			return v
		}
		b.WriteString(v.String())
	}
	return &object.String{Value: b.String()}
}

func (e *Evaluator) evalUnary(n *parser.UnaryExpression, sc *scope.Scope) object.Value {
	right := e.evalExpr(n.Right, sc)
	if isError(right) {
		return right
	}
	switch n.Op {
	case lexer.MINUS:
		switch v := right.(type) {
		case *object.Integer:
			return &object.Integer{Value: -v.Value}
		case *object.Float:
			return &object.Float{Value: -v.Value}
		default:
			return typeError(n.Token, "unary '-' requires a number, got %s", right.Type())
		}
	case lexer.NOT:
		return object.NativeBool(!object.Truthy(right))
	default:
		return typeError(n.Token, "unsupported unary operator %s", n.Op)
	}
}

func (e *Evaluator) evalBinary(n *parser.BinaryExpression, sc *scope.Scope) object.Value {
	switch n.Op {
	case lexer.AND:
		left := e.evalExpr(n.Left, sc)
		if isError(left) {
			return left
		}
		right := e.evalExpr(n.Right, sc)
		if isError(right) {
			return right
		}
		return object.NativeBool(object.Truthy(left) && object.Truthy(right))
	case lexer.OR:
		left := e.evalExpr(n.Left, sc)
		if isError(left) {
			return left
		}
		right := e.evalExpr(n.Right, sc)
		if isError(right) {
			return right
		}
		return object.NativeBool(object.Truthy(left) || object.Truthy(right))
	}

	left := e.evalExpr(n.Left, sc)
	if isError(left) {
		return left
	}
	right := e.evalExpr(n.Right, sc)
	if isError(right) {
		return right
	}
	return applyBinaryOp(n.Token, n.Op, left, right)
}

// applyBinaryOp implements every binary operator except logical AND/OR,
// which evalBinary handles itself: both of their operands are always
// evaluated (no short-circuit), the decision recorded in SPEC_FULL.md.
func applyBinaryOp(tok lexer.Token, op lexer.TokenType, left, right object.Value) object.Value {
	if op == lexer.PLUS {
		if _, lok := left.(*object.String); lok {
			return &object.String{Value: left.String() + right.String()}
		}
		if _, rok := right.(*object.String); rok {
			return &object.String{Value: left.String() + right.String()}
		}
	}

	switch op {
	case lexer.EQ:
		return object.NativeBool(valuesEqual(left, right))
	case lexer.NOT_EQ:
		return object.NativeBool(!valuesEqual(left, right))
	}

	lf, lIsNum := numericValue(left)
	rf, rIsNum := numericValue(right)

	switch op {
	case lexer.GT, lexer.LT, lexer.GTE, lexer.LTE:
		if !lIsNum || !rIsNum {
			return typeError(tok, "comparison operator %s requires two numbers", op)
		}
		switch op {
		case lexer.GT:
			return object.NativeBool(lf > rf)
		case lexer.LT:
			return object.NativeBool(lf < rf)
		case lexer.GTE:
			return object.NativeBool(lf >= rf)
		case lexer.LTE:
			return object.NativeBool(lf <= rf)
		}
	}

	if !lIsNum || !rIsNum {
		return typeError(tok, "operator %s requires two numbers, got %s and %s", op, left.Type(), right.Type())
	}

	bothInt := isInteger(left) && isInteger(right)

	switch op {
	case lexer.PLUS:
		return numericResult(bothInt, lf+rf)
	case lexer.MINUS:
		return numericResult(bothInt, lf-rf)
	case lexer.STAR:
		return numericResult(bothInt, lf*rf)
	case lexer.SLASH:
		if rf == 0 {
			return object.NewError("Value", tok.Line, tok.Column, "division by zero")
		}
		return &object.Float{Value: lf / rf}
	case lexer.STAR_STAR:
		return numericResult(bothInt, power(lf, rf))
	default:
		return typeError(tok, "unsupported binary operator %s", op)
	}
}

func power(base, exp float64) float64 {
	return math.Pow(base, exp)
}

func numericResult(asInt bool, f float64) object.Value {
	if asInt {
		return &object.Integer{Value: int64(f)}
	}
	return &object.Float{Value: f}
}

func numericValue(v object.Value) (float64, bool) {
	switch n := v.(type) {
	case *object.Integer:
		return float64(n.Value), true
	case *object.Float:
		return n.Value, true
	default:
		return 0, false
	}
}

func isInteger(v object.Value) bool {
	_, ok := v.(*object.Integer)
	return ok
}

func valuesEqual(a, b object.Value) bool {
	if af, aok := numericValue(a); aok {
		if bf, bok := numericValue(b); bok {
			return af == bf
		}
	}
	switch av := a.(type) {
	case *object.String:
		bv, ok := b.(*object.String)
		return ok && av.Value == bv.Value
	case *object.Boolean:
		bv, ok := b.(*object.Boolean)
		return ok && av.Value == bv.Value
	case *object.Null:
		_, ok := b.(*object.Null)
		return ok
	case *object.Array:
		bv, ok := b.(*object.Array)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !valuesEqual(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

func typeError(tok lexer.Token, format string, args ...interface{}) *object.Error {
	return object.NewError("Type", tok.Line, tok.Column, format, args...)
}

func (e *Evaluator) evalArrayLiteral(n *parser.ArrayLiteral, sc *scope.Scope) object.Value {
	elems := make([]object.Value, len(n.Elements))
	for i, el := range n.Elements {
		v := e.evalExpr(el, sc)
		if isError(v) {
			return v
		}
		elems[i] = v
	}
	return &object.Array{Elements: elems}
}

func (e *Evaluator) evalHashtableLiteral(n *parser.HashtableLiteral, sc *scope.Scope) object.Value {
	h := object.NewHashtable()
	for i, keyExpr := range n.Keys {
		key := e.evalExpr(keyExpr, sc)
		if isError(key) {
			return key
		}
		nativeKey, err := hashKey(key, n.Token)
		if err != nil {
			return err
		}
		val := e.evalExpr(n.Values[i], sc)
		if isError(val) {
			return val
		}
		h.Set(nativeKey, val)
	}
	return h
}

// hashKey converts a Graveyard value used as a hashtable key into the
// interface{} the object.Hashtable stores it under. Only strings and
// integers are valid keys.
func hashKey(v object.Value, tok lexer.Token) (interface{}, *object.Error) {
	switch val := v.(type) {
	case *object.String:
		return val.Value, nil
	case *object.Integer:
		return val.Value, nil
	default:
		return nil, object.NewError("Key", tok.Line, tok.Column, "hashtable keys must be a string or integer, got %s", v.Type())
	}
}

func (e *Evaluator) evalRange(n *parser.RangeExpression, sc *scope.Scope) object.Value {
	startV := e.evalExpr(n.Start, sc)
	if isError(startV) {
		return startV
	}
	endV := e.evalExpr(n.End, sc)
	if isError(endV) {
		return endV
	}
	startF, ok1 := numericValue(startV)
	endF, ok2 := numericValue(endV)
	if !ok1 || !ok2 {
		return typeError(n.Token, "range endpoints must be numbers")
	}
	start, end := int64(startF), int64(endF)

	var elems []object.Value
	switch {
	case start == end:
		elems = []object.Value{&object.Integer{Value: start}}
	case start < end:
		for i := start; i <= end; i++ {
			elems = append(elems, &object.Integer{Value: i})
		}
	default:
		for i := start; i >= end; i-- {
			elems = append(elems, &object.Integer{Value: i})
		}
	}
	return &object.Array{Elements: elems}
}

func (e *Evaluator) evalIndex(n *parser.IndexExpression, sc *scope.Scope) object.Value {
	left := e.evalExpr(n.Left, sc)
	if isError(left) {
		return left
	}
	idxV := e.evalExpr(n.Index, sc)
	if isError(idxV) {
		return idxV
	}
	arr, ok := left.(*object.Array)
	if !ok {
		return typeError(n.Token, "index operator requires an array, got %s", left.Type())
	}
	idxF, numOk := numericValue(idxV)
	if !numOk || !isInteger(idxV) {
		return typeError(n.Token, "array index must be an integer, got %s", idxV.Type())
	}
	idx := int64(idxF)
	if idx < 0 || idx >= int64(len(arr.Elements)) {
		return object.NewError("Key", n.Token.Line, n.Token.Column, "array index %d out of range", idx)
	}
	return arr.Elements[idx]
}

func (e *Evaluator) evalHashtableLookup(n *parser.HashtableLookupExpression, sc *scope.Scope) object.Value {
	left := e.evalExpr(n.Left, sc)
	if isError(left) {
		return left
	}
	keyV := e.evalExpr(n.Key, sc)
	if isError(keyV) {
		return keyV
	}
	h, ok := left.(*object.Hashtable)
	if !ok {
		return typeError(n.Token, "'#' lookup requires a hashtable, got %s", left.Type())
	}
	nativeKey, kerr := hashKey(keyV, n.Token)
	if kerr != nil {
		return kerr
	}
	v, found := h.Get(nativeKey)
	if !found {
		return object.NewError("Key", n.Token.Line, n.Token.Column, "key %v not found", nativeKey)
	}
	return v
}

func (e *Evaluator) evalFunctionCall(n *parser.FunctionCallExpression, sc *scope.Scope) object.Value {
	args := make([]object.Value, len(n.Args))
	for i, a := range n.Args {
		v := e.evalExpr(a, sc)
		if isError(v) {
			return v
		}
		args[i] = v
	}

	fnVal, ok := sc.Global().LookUp(n.Name)
	if fn, isFn := fnVal.(*object.Function); ok && isFn {
		return e.callFunction(fn, args, n.Token)
	}

	if fn, found := e.Builtins.Lookup(n.Name); found {
		return fn(args, n.Token.Line, n.Token.Column)
	}

	if !ok {
		return object.NewError("Name", n.Token.Line, n.Token.Column, "undefined function '%s'", n.Name)
	}
	return typeError(n.Token, "'%s' is not callable", n.Name)
}

func (e *Evaluator) callFunction(fn *object.Function, args []object.Value, tok lexer.Token) object.Value {
	if len(args) != len(fn.Params) {
		return object.NewError("Value", tok.Line, tok.Column, "'%s' expects %d argument(s), got %d", fn.Name, len(fn.Params), len(args))
	}
	defScope, _ := fn.DefiningScope.(*scope.Scope)
	callScope := scope.New(defScope)
	for i, p := range fn.Params {
		callScope.Bind(p, args[i])
	}
	out := e.execBlock(fn.Body, callScope)
	switch out.kind {
	case returnOutcome:
		return out.value
	case errorOutcome:
		return out.value
	case breakOutcome, continueOutcome:
		return object.NewError("Syntax", tok.Line, tok.Column, "'%s' has a break/continue outside any loop", fn.Name)
	default:
		return object.NULL
	}
}

func (e *Evaluator) evalMemberLookup(n *parser.MemberLookupExpression, sc *scope.Scope) object.Value {
	inst, err := e.resolveInstance(n.InstanceName, sc, n.Token)
	if err != nil {
		return err
	}
	v, ok := inst.Fields[n.Member]
	if !ok {
		return object.NewError("Key", n.Token.Line, n.Token.Column, "'%s' has no member '%s'", inst.TypeName, n.Member)
	}
	return v
}

func (e *Evaluator) resolveInstance(name string, sc *scope.Scope, tok lexer.Token) (*object.Instance, *object.Error) {
	v, ok := sc.LookUp(name)
	if !ok {
		return nil, object.NewError("Name", tok.Line, tok.Column, "undefined name '%s'", name)
	}
	inst, ok := v.(*object.Instance)
	if !ok {
		return nil, typeError(tok, "'%s' is not a type instance", name)
	}
	return inst, nil
}

func (e *Evaluator) evalMethodCall(n *parser.MethodCallExpression, sc *scope.Scope) object.Value {
	inst, err := e.resolveInstance(n.InstanceName, sc, n.Token)
	if err != nil {
		return err
	}
	member, ok := inst.Fields[n.Method]
	if !ok {
		return object.NewError("Key", n.Token.Line, n.Token.Column, "'%s' has no method '%s'", inst.TypeName, n.Method)
	}
	fn, ok := member.(*object.Function)
	if !ok {
		return typeError(n.Token, "'%s' is not a method on '%s'", n.Method, inst.TypeName)
	}

	args := make([]object.Value, len(n.Args))
	for i, a := range n.Args {
		v := e.evalExpr(a, sc)
		if isError(v) {
			return v
		}
		args[i] = v
	}
	if len(args) != len(fn.Params) {
		return object.NewError("Value", n.Token.Line, n.Token.Column, "'%s' expects %d argument(s), got %d", n.Method, len(fn.Params), len(args))
	}

	callScope := scope.New(sc.Global())
	callScope.Bind("this", inst)
	for i, p := range fn.Params {
		callScope.Bind(p, args[i])
	}
	out := e.execBlock(fn.Body, callScope)
	switch out.kind {
	case returnOutcome, errorOutcome:
		return out.value
	case breakOutcome, continueOutcome:
		return object.NewError("Syntax", n.Token.Line, n.Token.Column, "'%s' has a break/continue outside any loop", n.Method)
	default:
		return object.NULL
	}
}

func (e *Evaluator) evalNamespaceAccess(n *parser.NamespaceAccessExpression, sc *scope.Scope) object.Value {
	v, ok := sc.Global().LookUp(n.Namespace)
	if !ok {
		return object.NewError("Name", n.Token.Line, n.Token.Column, "undefined namespace '%s'", n.Namespace)
	}
	ns, ok := v.(*object.Namespace)
	if !ok {
		return typeError(n.Token, "'%s' is not a namespace", n.Namespace)
	}
	member, ok := ns.Members[n.Member]
	if !ok {
		return object.NewError("Key", n.Token.Line, n.Token.Column, "namespace '%s' has no member '%s'", n.Namespace, n.Member)
	}
	return member
}

func (e *Evaluator) evalScan(n *parser.ScanExpression, sc *scope.Scope) object.Value {
	scanFn, _ := e.Builtins.Lookup("scan")
	var args []object.Value
	if n.Prompt != nil {
		p := e.evalExpr(n.Prompt, sc)
		if isError(p) {
			return p
		}
		args = append(args, p)
	}
	return scanFn(args, n.Token.Line, n.Token.Column)
}
