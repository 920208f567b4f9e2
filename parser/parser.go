package parser

import (
	"fmt"

	"github.com/geoffreydatema/graveyard/lexer"
)

// Parser builds a Program from a token slice using recursive descent with
// explicit precedence climbing via a match/predict/consume idiom, with a
// precedence cascade of or -> and -> not -> comparison -> add/sub ->
// mul/div -> exponent -> primary. Graveyard's grammar is small and
// irregular enough (character-alias keywords, heavy lookahead for
// statement dispatch) that a hand-written recursive-descent cascade is a
// clearer fit than a Pratt-table parser.
type Parser struct {
	tokens  []lexer.Token
	current int
	errors  []string
}

// NewParser tokenizes src (already passed through the library ingestor) and
// prepares a Parser over the resulting token slice.
func NewParser(src string) *Parser {
	return &Parser{tokens: lexer.Tokenize(src)}
}

func (p *Parser) HasErrors() bool       { return len(p.errors) > 0 }
func (p *Parser) GetErrors() []string   { return p.errors }
func (p *Parser) addError(format string, args ...interface{}) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

// parseError aborts the current Parse call via panic/recover: a syntax
// error is fatal and stops the whole parse rather than letting the parser
// struggle on with a corrupted position.
type parseError struct{ msg string }

func (p *Parser) fail(format string, args ...interface{}) {
	panic(parseError{msg: fmt.Sprintf(format, args...)})
}

func (p *Parser) current_() lexer.Token {
	if p.current < len(p.tokens) {
		return p.tokens[p.current]
	}
	return lexer.Token{Type: lexer.EOF}
}

func (p *Parser) match(types ...lexer.TokenType) bool {
	cur := p.current_().Type
	for _, t := range types {
		if cur == t {
			return true
		}
	}
	return false
}

func (p *Parser) predict(offset int) lexer.Token {
	idx := p.current + offset
	if idx < len(p.tokens) {
		return p.tokens[idx]
	}
	return lexer.Token{Type: lexer.EOF}
}

func (p *Parser) consume(t lexer.TokenType) lexer.Token {
	if !p.match(t) {
		p.fail("[%d:%d] expected %s, found %q", p.current_().Line, p.current_().Column, t, p.current_().Literal)
	}
	tok := p.tokens[p.current]
	p.current++
	return tok
}

// Parse runs the full statement loop over the token stream, recovering a
// single fatal syntax error into p.errors rather than panicking out of the
// call, exposed via HasErrors/GetErrors.
func (p *Parser) Parse() (prog *Program) {
	prog = &Program{}
	defer func() {
		if r := recover(); r != nil {
			if pe, ok := r.(parseError); ok {
				p.addError(pe.msg)
				return
			}
			panic(r)
		}
	}()

	for p.current < len(p.tokens) && !p.match(lexer.EOF) {
		prog.Statements = append(prog.Statements, p.parseStatement())
	}
	return prog
}

func (p *Parser) parseBlock() []Statement {
	p.consume(lexer.LBRACE)
	var body []Statement
	for !p.match(lexer.RBRACE) {
		body = append(body, p.parseStatement())
	}
	p.consume(lexer.RBRACE)
	return body
}

// parseStatement dispatches on a cascade of lookahead checks on the
// current and following tokens to pick which statement form to parse.
func (p *Parser) parseStatement() Statement {
	tok := p.current_()

	switch {
	case p.match(lexer.WHILE):
		stmt := p.parseWhileStatement()
		p.consume(lexer.SEMICOLON)
		return stmt

	case p.match(lexer.NOT):
		stmt := p.parseAssertStatement()
		p.consume(lexer.SEMICOLON)
		return stmt

	case p.match(lexer.RAISE):
		stmt := p.parseRaiseStatement()
		p.consume(lexer.SEMICOLON)
		return stmt

	case p.match(lexer.IDENT) && p.predict(1).Type == lexer.FOR:
		stmt := p.parseForStatement()
		p.consume(lexer.SEMICOLON)
		return stmt

	case p.match(lexer.CONTINUE):
		p.consume(lexer.CONTINUE)
		p.consume(lexer.SEMICOLON)
		return &ContinueStatement{Token: tok}

	case p.match(lexer.BREAK):
		p.consume(lexer.BREAK)
		p.consume(lexer.SEMICOLON)
		return &BreakStatement{Token: tok}

	case p.match(lexer.IF):
		stmt := p.parseIfStatement()
		p.consume(lexer.SEMICOLON)
		return stmt

	case p.match(lexer.PRINT):
		stmt := p.parsePrintStatement()
		p.consume(lexer.SEMICOLON)
		return stmt

	case p.match(lexer.NAMESPACE) && p.predict(1).Type == lexer.IDENT && p.predict(2).Type == lexer.LBRACE:
		stmt := p.parseNamespaceDef()
		p.consume(lexer.SEMICOLON)
		return stmt

	case p.match(lexer.RETURN):
		stmt := p.parseReturnStatement()
		p.consume(lexer.SEMICOLON)
		return stmt

	case p.match(lexer.TYPE_NAME):
		stmt := p.parseTypeDefinition()
		p.consume(lexer.SEMICOLON)
		return stmt

	case p.match(lexer.IDENT) && p.predict(1).Type == lexer.ASSIGN && p.predict(2).Type == lexer.TYPE_NAME:
		stmt := p.parseTypeInstantiation()
		p.consume(lexer.SEMICOLON)
		return stmt

	case p.match(lexer.IDENT):
		return p.parseIdentifierLedStatement()
	}

	expr := p.parseOr()
	p.consume(lexer.SEMICOLON)
	return &ExpressionStatement{Token: tok, Expression: expr}
}

func (p *Parser) parseIdentifierLedStatement() Statement {
	next := p.predict(1)

	switch next.Type {
	case lexer.ASSIGN:
		stmt := p.parseAssignment()
		p.consume(lexer.SEMICOLON)
		return stmt
	case lexer.SCAN:
		stmt := p.parseScanAssignment()
		p.consume(lexer.SEMICOLON)
		return stmt
	case lexer.INCREMENT, lexer.DECREMENT:
		stmt := p.parseIncDec()
		p.consume(lexer.SEMICOLON)
		return stmt
	case lexer.PLUS_ASSIGN, lexer.MINUS_ASSIGN, lexer.STAR_ASSIGN, lexer.SLASH_ASSIGN, lexer.POW_ASSIGN:
		stmt := p.parseCompoundAssign()
		p.consume(lexer.SEMICOLON)
		return stmt
	case lexer.LPAREN:
		tok := p.current_()
		call := p.parseFunctionCall()
		p.consume(lexer.SEMICOLON)
		return &ExpressionStatement{Token: tok, Expression: call}
	case lexer.LBRACKET:
		stmt := p.parseArrayAssign()
		p.consume(lexer.SEMICOLON)
		return stmt
	case lexer.APPEND:
		stmt := p.parseArrayAppend()
		p.consume(lexer.SEMICOLON)
		return stmt
	case lexer.REFERENCE:
		stmt := p.parseHashtableAssign()
		p.consume(lexer.SEMICOLON)
		return stmt
	case lexer.PERIOD:
		if p.predict(2).Type == lexer.IDENT && p.predict(3).Type == lexer.LPAREN {
			tok := p.current_()
			call := p.parseMethodCall()
			p.consume(lexer.SEMICOLON)
			return &ExpressionStatement{Token: tok, Expression: call}
		}
		if p.predict(2).Type == lexer.IDENT {
			stmt := p.parseTypeMemberAssign()
			p.consume(lexer.SEMICOLON)
			return stmt
		}
	case lexer.PARAMETER, lexer.LBRACE:
		stmt := p.parseFunctionDefinition()
		p.consume(lexer.SEMICOLON)
		return stmt
	}

	tok := p.current_()
	expr := p.parseOr()
	p.consume(lexer.SEMICOLON)
	return &ExpressionStatement{Token: tok, Expression: expr}
}

func (p *Parser) parseAssertStatement() Statement {
	tok := p.consume(lexer.NOT)
	cond := p.parseOr()
	return &AssertStatement{Token: tok, Condition: cond}
}

func (p *Parser) parseRaiseStatement() Statement {
	tok := p.consume(lexer.RAISE)
	msg := p.parseOr()
	return &RaiseStatement{Token: tok, Message: msg}
}

func (p *Parser) parseScanAssignment() Statement {
	nameTok := p.consume(lexer.IDENT)
	p.consume(lexer.SCAN)
	var prompt Expression
	if !p.match(lexer.SEMICOLON) {
		prompt = p.parseOr()
	}
	return &AssignmentStatement{Token: nameTok, Name: nameTok.Literal, Value: &ScanExpression{Token: nameTok, Prompt: prompt}}
}

func (p *Parser) parsePrintStatement() Statement {
	tok := p.consume(lexer.PRINT)
	var args []Expression
	for {
		args = append(args, p.parseOr())
		if p.match(lexer.COMMA) {
			p.consume(lexer.COMMA)
			continue
		}
		break
	}
	return &PrintStatement{Token: tok, Args: args}
}

func (p *Parser) parseTypeMemberAssign() Statement {
	nameTok := p.consume(lexer.IDENT)
	p.consume(lexer.PERIOD)
	member := p.consume(lexer.IDENT)
	p.consume(lexer.ASSIGN)
	value := p.parseOr()
	return &TypeMemberAssignStatement{Token: nameTok, InstanceName: nameTok.Literal, Member: member.Literal, Value: value}
}

func (p *Parser) parseTypeDefinition() Statement {
	typeTok := p.consume(lexer.TYPE_NAME)
	var parents []string
	if p.match(lexer.PARAMETER) {
		for p.match(lexer.PARAMETER) {
			p.consume(lexer.PARAMETER)
			parents = append(parents, p.consume(lexer.TYPE_NAME).Literal)
		}
	}
	p.consume(lexer.ASSIGN)
	p.consume(lexer.LBRACE)

	var members []TypeMember
	for !p.match(lexer.RBRACE) {
		name := p.consume(lexer.IDENT).Literal
		p.consume(lexer.COLON)

		if p.match(lexer.LBRACE) || p.match(lexer.PARAMETER) {
			method := p.parseMethodDefinition(name)
			members = append(members, TypeMember{Name: name, Method: method})
		} else {
			value := p.parseOr()
			members = append(members, TypeMember{Name: name, Value: value})
		}

		if p.match(lexer.COMMA) {
			p.consume(lexer.COMMA)
		}
	}
	p.consume(lexer.RBRACE)
	return &TypeDefStatement{Token: typeTok, Name: typeTok.Literal, Parents: parents, Members: members}
}

func (p *Parser) parseMethodDefinition(name string) *FunctionDefStatement {
	var params []string
	for p.match(lexer.PARAMETER) {
		p.consume(lexer.PARAMETER)
		params = append(params, p.consume(lexer.IDENT).Literal)
	}
	body := p.parseBlock()
	return &FunctionDefStatement{Name: name, Params: params, Body: body}
}

func (p *Parser) parseTypeInstantiation() Statement {
	nameTok := p.consume(lexer.IDENT)
	p.consume(lexer.ASSIGN)
	typeTok := p.consume(lexer.TYPE_NAME)
	return &TypeInstantiationStatement{Token: nameTok, InstanceName: nameTok.Literal, TypeName: typeTok.Literal}
}

func (p *Parser) parseMethodCall() Expression {
	nameTok := p.consume(lexer.IDENT)
	p.consume(lexer.PERIOD)
	method := p.consume(lexer.IDENT)
	p.consume(lexer.LPAREN)
	var args []Expression
	if !p.match(lexer.RPAREN) {
		for {
			args = append(args, p.parseOr())
			if p.match(lexer.COMMA) {
				p.consume(lexer.COMMA)
				continue
			}
			break
		}
	}
	p.consume(lexer.RPAREN)
	return &MethodCallExpression{Token: nameTok, InstanceName: nameTok.Literal, Method: method.Literal, Args: args}
}

func (p *Parser) parseReturnStatement() Statement {
	tok := p.consume(lexer.RETURN)
	value := p.parseOr()
	return &ReturnStatement{Token: tok, Value: value}
}

func (p *Parser) parseNamespaceDef() Statement {
	tok := p.consume(lexer.NAMESPACE)
	name := p.consume(lexer.IDENT)
	body := p.parseBlock()
	return &NamespaceDefStatement{Token: tok, Name: name.Literal, Body: body}
}

func (p *Parser) parseNamespaceAccess() Expression {
	tok := p.consume(lexer.NAMESPACE)
	ns := p.consume(lexer.IDENT)
	p.consume(lexer.REFERENCE)
	member := p.consume(lexer.IDENT)
	return &NamespaceAccessExpression{Token: tok, Namespace: ns.Literal, Member: member.Literal}
}

func (p *Parser) parseHashtableAssign() Statement {
	nameTok := p.consume(lexer.IDENT)
	p.consume(lexer.REFERENCE)
	key := p.parseOr()
	p.consume(lexer.ASSIGN)
	value := p.parseOr()
	return &HashtableAssignStatement{Token: nameTok, Name: nameTok.Literal, Key: key, Value: value}
}

func (p *Parser) parseArrayAssign() Statement {
	nameTok := p.consume(lexer.IDENT)
	var index Expression
	if p.match(lexer.LBRACKET) {
		p.consume(lexer.LBRACKET)
		index = p.parseOr()
		p.consume(lexer.RBRACKET)
	}
	p.consume(lexer.ASSIGN)
	value := p.parseOr()
	return &ArrayAssignStatement{Token: nameTok, Name: nameTok.Literal, Index: index, Value: value}
}

func (p *Parser) parseAssignment() Statement {
	nameTok := p.consume(lexer.IDENT)
	p.consume(lexer.ASSIGN)
	value := p.parseOr()
	return &AssignmentStatement{Token: nameTok, Name: nameTok.Literal, Value: value}
}

func (p *Parser) parseFunctionDefinition() Statement {
	nameTok := p.consume(lexer.IDENT)
	var params []string
	for p.match(lexer.PARAMETER) {
		p.consume(lexer.PARAMETER)
		params = append(params, p.consume(lexer.IDENT).Literal)
	}
	body := p.parseBlock()
	return &FunctionDefStatement{Token: nameTok, Name: nameTok.Literal, Params: params, Body: body}
}

func (p *Parser) parseCompoundAssign() Statement {
	nameTok := p.consume(lexer.IDENT)
	op := p.current_().Type
	p.consume(op)
	value := p.parseOr()
	return &CompoundAssignStatement{Token: nameTok, Name: nameTok.Literal, Op: op, Value: value}
}

func (p *Parser) parseFunctionCall() Expression {
	nameTok := p.consume(lexer.IDENT)
	p.consume(lexer.LPAREN)
	var args []Expression
	if !p.match(lexer.RPAREN) {
		for {
			args = append(args, p.parseOr())
			if p.match(lexer.COMMA) {
				p.consume(lexer.COMMA)
				continue
			}
			break
		}
	}
	p.consume(lexer.RPAREN)
	return &FunctionCallExpression{Token: nameTok, Name: nameTok.Literal, Args: args}
}

func (p *Parser) parseIfStatement() Statement {
	tok := p.consume(lexer.IF)
	var branches []ConditionBlock

	cond := p.parseOr()
	body := p.parseBlock()
	branches = append(branches, ConditionBlock{Condition: cond, Body: body})

	for p.match(lexer.COMMA) {
		p.consume(lexer.COMMA)
		cond := p.parseOr()
		body := p.parseBlock()
		branches = append(branches, ConditionBlock{Condition: cond, Body: body})
	}

	var elseBody []Statement
	if p.match(lexer.COLON) {
		p.consume(lexer.COLON)
		elseBody = p.parseBlock()
	}

	return &IfStatement{Token: tok, Branches: branches, Else: elseBody}
}

func (p *Parser) parseWhileStatement() Statement {
	tok := p.consume(lexer.WHILE)
	cond := p.parseOr()
	body := p.parseBlock()
	return &WhileStatement{Token: tok, Condition: cond, Body: body}
}

func (p *Parser) parseForStatement() Statement {
	iterator := p.consume(lexer.IDENT)
	tok := p.consume(lexer.FOR)
	limit := p.parseOr()
	body := p.parseBlock()
	return &ForStatement{Token: tok, Iterator: iterator.Literal, Limit: limit, Body: body}
}

func (p *Parser) parseIncDec() Statement {
	nameTok := p.consume(lexer.IDENT)
	op := p.current_().Type
	p.consume(op)
	return &IncDecStatement{Token: nameTok, Name: nameTok.Literal, Op: op}
}

func (p *Parser) parseArrayAppend() Statement {
	nameTok := p.consume(lexer.IDENT)
	p.consume(lexer.APPEND)
	value := p.parseOr()
	return &ArrayAppendStatement{Token: nameTok, Name: nameTok.Literal, Value: value}
}

// ---- precedence cascade: or -> and -> not -> comparison -> addsub -> muldiv -> exponent -> primary ----

func (p *Parser) parseOr() Expression {
	left := p.parseAnd()
	for p.match(lexer.OR) {
		opTok := p.consume(lexer.OR)
		right := p.parseAnd()
		left = &BinaryExpression{Token: opTok, Left: left, Op: lexer.OR, Right: right}
	}
	return left
}

func (p *Parser) parseAnd() Expression {
	left := p.parseNot()
	for p.match(lexer.AND) {
		opTok := p.consume(lexer.AND)
		right := p.parseNot()
		left = &BinaryExpression{Token: opTok, Left: left, Op: lexer.AND, Right: right}
	}
	return left
}

func (p *Parser) parseNot() Expression {
	if p.match(lexer.NOT) {
		opTok := p.consume(lexer.NOT)
		right := p.parseNot()
		return &UnaryExpression{Token: opTok, Op: lexer.NOT, Right: right}
	}
	return p.parseComparison()
}

func (p *Parser) parseComparison() Expression {
	left := p.parseAddSub()
	for p.match(lexer.EQ, lexer.NOT_EQ, lexer.GTE, lexer.LTE, lexer.GT, lexer.LT) {
		opTok := p.current_()
		op := opTok.Type
		p.consume(op)
		right := p.parseAddSub()
		left = &BinaryExpression{Token: opTok, Left: left, Op: op, Right: right}
	}
	return left
}

func (p *Parser) parseAddSub() Expression {
	left := p.parseMulDiv()
	for p.match(lexer.PLUS, lexer.MINUS) {
		opTok := p.current_()
		op := opTok.Type
		p.consume(op)
		right := p.parseMulDiv()
		left = &BinaryExpression{Token: opTok, Left: left, Op: op, Right: right}
	}
	return left
}

func (p *Parser) parseMulDiv() Expression {
	left := p.parseExponent()
	for p.match(lexer.STAR, lexer.SLASH) {
		opTok := p.current_()
		op := opTok.Type
		p.consume(op)
		right := p.parseExponent()
		left = &BinaryExpression{Token: opTok, Left: left, Op: op, Right: right}
	}
	return left
}

// parseExponent is deliberately left-associative: `2 ** 3 ** 2` parses as
// `(2 ** 3) ** 2`, because this rule loops exactly like
// addition/multiplication instead of recursing into the right operand.
// Kept intentionally (see SPEC_FULL.md).
func (p *Parser) parseExponent() Expression {
	left := p.parsePrimary()
	for p.match(lexer.STAR_STAR) {
		opTok := p.consume(lexer.STAR_STAR)
		right := p.parsePrimary()
		left = &BinaryExpression{Token: opTok, Left: left, Op: lexer.STAR_STAR, Right: right}
	}
	return left
}

func (p *Parser) parsePrimary() Expression {
	tok := p.current_()

	switch {
	case p.match(lexer.IDENT):
		switch p.predict(1).Type {
		case lexer.LBRACKET:
			return p.parseIndexChain()
		case lexer.REFERENCE:
			switch p.predict(2).Type {
			case lexer.INT, lexer.STRING, lexer.IDENT:
				return p.parseIndexChain()
			}
		case lexer.PERIOD:
			if p.predict(2).Type == lexer.IDENT && p.predict(3).Type == lexer.LPAREN {
				return p.parseMethodCall()
			} else if p.predict(2).Type == lexer.IDENT {
				nameTok := p.consume(lexer.IDENT)
				p.consume(lexer.PERIOD)
				member := p.consume(lexer.IDENT)
				return &MemberLookupExpression{Token: nameTok, InstanceName: nameTok.Literal, Member: member.Literal}
			}
		case lexer.LPAREN:
			return p.parseFunctionCall()
		}
		p.consume(lexer.IDENT)
		ident := Expression(&Identifier{Token: tok, Name: tok.Literal})
		if p.match(lexer.RANGE) {
			p.consume(lexer.RANGE)
			right := p.parsePrimary()
			return &RangeExpression{Token: tok, Start: ident, End: right}
		}
		return ident

	case p.match(lexer.INT):
		p.consume(lexer.INT)
		left := mustParseIntLiteral(tok)
		if p.match(lexer.RANGE) {
			p.consume(lexer.RANGE)
			right := p.parsePrimary()
			return &RangeExpression{Token: tok, Start: left, End: right}
		}
		return left

	case p.match(lexer.FLOAT):
		p.consume(lexer.FLOAT)
		return mustParseFloatLiteral(tok)

	case p.match(lexer.STRING):
		p.consume(lexer.STRING)
		return &StringLiteral{Token: tok, Value: tok.Literal}

	case p.match(lexer.FORMATTED_STRING):
		return p.parseFormattedString()

	case p.match(lexer.MINUS):
		p.consume(lexer.MINUS)
		return &UnaryExpression{Token: tok, Op: lexer.MINUS, Right: p.parsePrimary()}

	case p.match(lexer.LPAREN):
		p.consume(lexer.LPAREN)
		expr := p.parseOr()
		p.consume(lexer.RPAREN)
		return expr

	case p.match(lexer.LBRACKET):
		return p.parseArrayLiteral()

	case p.match(lexer.LBRACE):
		return p.parseHashtableLiteral()

	case p.match(lexer.NULL_LIT):
		p.consume(lexer.NULL_LIT)
		return &NullLiteral{Token: tok}

	case p.match(lexer.TRUE_LIT):
		p.consume(lexer.TRUE_LIT)
		return &BooleanLiteral{Token: tok, Value: true}

	case p.match(lexer.FALSE_LIT):
		p.consume(lexer.FALSE_LIT)
		return &BooleanLiteral{Token: tok, Value: false}

	case p.match(lexer.NAMESPACE):
		if p.predict(1).Type == lexer.IDENT && p.predict(2).Type == lexer.REFERENCE {
			return p.parseNamespaceAccess()
		}
	}

	p.fail("[%d:%d] expected an expression, found %q", tok.Line, tok.Column, tok.Literal)
	return nil
}

// parseIndexChain parses the shared `ident ([expr] | #key)*` loop used for
// both array indexing and hashtable lookup.
func (p *Parser) parseIndexChain() Expression {
	nameTok := p.consume(lexer.IDENT)
	var expr Expression = &Identifier{Token: nameTok, Name: nameTok.Literal}

	for p.match(lexer.LBRACKET) || p.match(lexer.REFERENCE) {
		if p.match(lexer.LBRACKET) {
			p.consume(lexer.LBRACKET)
			index := p.parseOr()
			p.consume(lexer.RBRACKET)
			expr = &IndexExpression{Token: nameTok, Left: expr, Index: index}
		} else {
			p.consume(lexer.REFERENCE)
			key := p.parseOr()
			expr = &HashtableLookupExpression{Token: nameTok, Left: expr, Key: key}
		}
	}
	return expr
}

func (p *Parser) parseArrayLiteral() Expression {
	tok := p.consume(lexer.LBRACKET)
	var elements []Expression
	if !p.match(lexer.RBRACKET) {
		for {
			elements = append(elements, p.parseOr())
			if p.match(lexer.COMMA) {
				p.consume(lexer.COMMA)
				continue
			}
			break
		}
	}
	p.consume(lexer.RBRACKET)
	return &ArrayLiteral{Token: tok, Elements: elements}
}

func (p *Parser) parseHashtableLiteral() Expression {
	tok := p.consume(lexer.LBRACE)
	var keys, values []Expression
	for !p.match(lexer.RBRACE) {
		key := p.parseOr()
		p.consume(lexer.COLON)
		value := p.parseOr()
		keys = append(keys, key)
		values = append(values, value)
		if !p.match(lexer.RBRACE) {
			p.consume(lexer.COMMA)
		}
	}
	p.consume(lexer.RBRACE)
	return &HashtableLiteral{Token: tok, Keys: keys, Values: values}
}

// parseFormattedString drains FORMATTED_STRING/LBRACE pairs, relying on
// the lexer switching between text-chunk mode and ordinary token mode.
func (p *Parser) parseFormattedString() Expression {
	tok := p.current_()
	var parts []Expression

	for p.match(lexer.FORMATTED_STRING) || p.match(lexer.LBRACE) {
		if p.match(lexer.FORMATTED_STRING) {
			chunk := p.consume(lexer.FORMATTED_STRING)
			if chunk.Literal != "" {
				parts = append(parts, &StringLiteral{Token: chunk, Value: chunk.Literal})
			}
		} else {
			p.consume(lexer.LBRACE)
			parts = append(parts, p.parseOr())
			p.consume(lexer.RBRACE)
		}
	}
	return &FormattedStringExpression{Token: tok, Parts: parts}
}
