package main

import (
	"testing"

	"github.com/geoffreydatema/graveyard/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintProgramRendersAssignmentAndPrint(t *testing.T) {
	p := parser.NewParser("x = 1 + 2; >> x;")
	prog := p.Parse()
	require.False(t, p.HasErrors())

	out := printProgram(prog)

	assert.Contains(t, out, "Assignment x =")
	assert.Contains(t, out, "Binary +")
	assert.Contains(t, out, "Print")
	assert.Contains(t, out, "Identifier x")
}

func TestPrintProgramRendersIfAndWhile(t *testing.T) {
	p := parser.NewParser(`
		? x == 1 { >> "one"; } :{ >> "other"; };
		~ x < 5 { x++; };
	`)
	prog := p.Parse()
	require.False(t, p.HasErrors())

	out := printProgram(prog)

	assert.Contains(t, out, "If")
	assert.Contains(t, out, "Branch")
	assert.Contains(t, out, "Else")
	assert.Contains(t, out, "While")
}

func TestPrintProgramRendersTypeDef(t *testing.T) {
	p := parser.NewParser(`<Counter> = { count: 0, bump: { this.count = this.count + 1; } };`)
	prog := p.Parse()
	require.False(t, p.HasErrors())

	out := printProgram(prog)

	assert.Contains(t, out, "TypeDef <Counter>")
	assert.Contains(t, out, "Field count")
	assert.Contains(t, out, "Method bump")
}
