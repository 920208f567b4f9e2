package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOK(t *testing.T, src string) *Program {
	t.Helper()
	p := NewParser(src)
	prog := p.Parse()
	require.False(t, p.HasErrors(), "parse errors: %v", p.GetErrors())
	return prog
}

func TestParsesAssignmentStatement(t *testing.T) {
	prog := parseOK(t, "x = 1 + 2;")
	require.Len(t, prog.Statements, 1)
	stmt, ok := prog.Statements[0].(*AssignmentStatement)
	require.True(t, ok)
	assert.Equal(t, "x", stmt.Name)
	_, isBinary := stmt.Value.(*BinaryExpression)
	assert.True(t, isBinary)
}

func TestExponentIsLeftAssociativeInAST(t *testing.T) {
	prog := parseOK(t, ">> 2 ** 3 ** 2;")
	stmt := prog.Statements[0].(*PrintStatement)
	outer, ok := stmt.Args[0].(*BinaryExpression)
	require.True(t, ok)
	left, ok := outer.Left.(*BinaryExpression)
	require.True(t, ok, "left-associative exponentiation should nest on the left")
	assert.IsType(t, &IntegerLiteral{}, left.Left)
}

func TestParsesZeroParamFunctionDefinition(t *testing.T) {
	prog := parseOK(t, "greet { >> \"hi\"; };")
	stmt, ok := prog.Statements[0].(*FunctionDefStatement)
	require.True(t, ok)
	assert.Equal(t, "greet", stmt.Name)
	assert.Empty(t, stmt.Params)
}

func TestParsesFunctionDefinitionWithParams(t *testing.T) {
	prog := parseOK(t, "add &a &b{ -> a + b; };")
	stmt, ok := prog.Statements[0].(*FunctionDefStatement)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, stmt.Params)
}

func TestParsesIfElseIfElse(t *testing.T) {
	prog := parseOK(t, `
		? x == 1 { >> "one"; },
		  x == 2 { >> "two"; }
		:{ >> "other"; };
	`)
	stmt, ok := prog.Statements[0].(*IfStatement)
	require.True(t, ok)
	assert.Len(t, stmt.Branches, 2)
	assert.NotNil(t, stmt.Else)
}

func TestParsesForStatement(t *testing.T) {
	prog := parseOK(t, "i @ 3 { >> i; };")
	stmt, ok := prog.Statements[0].(*ForStatement)
	require.True(t, ok)
	assert.Equal(t, "i", stmt.Iterator)
}

func TestParsesWhileStatement(t *testing.T) {
	prog := parseOK(t, "~ i < 10 { i++; };")
	_, ok := prog.Statements[0].(*WhileStatement)
	assert.True(t, ok)
}

func TestParsesTypeDefinitionWithParent(t *testing.T) {
	prog := parseOK(t, `<Dog> & <Animal> = { sound: "woof" };`)
	stmt, ok := prog.Statements[0].(*TypeDefStatement)
	require.True(t, ok)
	assert.Equal(t, "Dog", stmt.Name)
	assert.Equal(t, []string{"Animal"}, stmt.Parents)
}

func TestParsesMethodCallAndMemberLookup(t *testing.T) {
	prog := parseOK(t, "c.bump(); >> c.count;")
	_, isCall := prog.Statements[0].(*ExpressionStatement).Expression.(*MethodCallExpression)
	assert.True(t, isCall)
	print := prog.Statements[1].(*PrintStatement)
	_, isMember := print.Args[0].(*MemberLookupExpression)
	assert.True(t, isMember)
}

func TestParsesHashtableReferenceAssignAndLookup(t *testing.T) {
	prog := parseOK(t, `h#"key" = 42;`)
	stmt, ok := prog.Statements[0].(*HashtableAssignStatement)
	require.True(t, ok)
	assert.Equal(t, "h", stmt.Name)
}

func TestParsesArrayIndexAssignAndAppend(t *testing.T) {
	prog := parseOK(t, "arr[0] = 1; arr <- 2;")
	_, isAssign := prog.Statements[0].(*ArrayAssignStatement)
	_, isAppend := prog.Statements[1].(*ArrayAppendStatement)
	assert.True(t, isAssign)
	assert.True(t, isAppend)
}

func TestParsesRangeExpression(t *testing.T) {
	prog := parseOK(t, ">> 1...5;")
	stmt := prog.Statements[0].(*PrintStatement)
	_, ok := stmt.Args[0].(*RangeExpression)
	assert.True(t, ok)
}

func TestParsesNamespaceDefinitionAndAccess(t *testing.T) {
	prog := parseOK(t, "::Config { version = 1; }; >> ::Config#version;")
	_, isDef := prog.Statements[0].(*NamespaceDefStatement)
	assert.True(t, isDef)
	print := prog.Statements[1].(*PrintStatement)
	_, isAccess := print.Args[0].(*NamespaceAccessExpression)
	assert.True(t, isAccess)
}

func TestParsesFormattedString(t *testing.T) {
	prog := parseOK(t, ">> 'hello, {name}!';")
	stmt := prog.Statements[0].(*PrintStatement)
	fs, ok := stmt.Args[0].(*FormattedStringExpression)
	require.True(t, ok)
	assert.NotEmpty(t, fs.Parts)
}

func TestCollectsErrorsOnMalformedInput(t *testing.T) {
	p := NewParser("x = ;")
	p.Parse()
	assert.True(t, p.HasErrors())
}
