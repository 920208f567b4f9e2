package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/geoffreydatema/graveyard/object"
	"github.com/geoffreydatema/graveyard/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) (object.Value, string) {
	t.Helper()
	p := parser.NewParser(src)
	prog := p.Parse()
	require.False(t, p.HasErrors(), "parse errors: %v", p.GetErrors())
	var out bytes.Buffer
	ev := New(&out, strings.NewReader(""))
	result := ev.Run(prog)
	return result, out.String()
}

func TestArithmeticAndPrecedence(t *testing.T) {
	result, output := run(t, "x = 2 + 3 * 4; >> x;")
	assert.Equal(t, object.NULL, result)
	assert.Equal(t, "14\n", output)
}

func TestExponentIsLeftAssociative(t *testing.T) {
	_, output := run(t, ">> 2 ** 3 ** 2;")
	assert.Equal(t, "64\n", output)
}

func TestStringConcatenationCoerces(t *testing.T) {
	_, output := run(t, `>> "count: " + 5;`)
	assert.Equal(t, "count: 5\n", output)
}

func TestComparisonRejectsStrings(t *testing.T) {
	result, _ := run(t, `x = "a" < "b";`)
	errVal, ok := result.(*object.Error)
	require.True(t, ok)
	assert.Equal(t, "Type", errVal.Kind)
}

func TestLogicalOperatorsDoNotShortCircuit(t *testing.T) {
	_, output := run(t, `
		f { >> "called"; -> $; };
		x = % && f();
		>> x;
	`)
	assert.Equal(t, "called\nfalse\n", output)
}

func TestIfElseIfElse(t *testing.T) {
	_, output := run(t, `
		x = 2;
		? x == 1 { >> "one"; },
		  x == 2 { >> "two"; }
		:{ >> "other"; };
	`)
	assert.Equal(t, "two\n", output)
}

func TestWhileLoopWithBreakAndContinue(t *testing.T) {
	_, output := run(t, `
		i = 0;
		~ i < 10 {
			i++;
			? i == 2 { ^; };
			? i == 5 { `+"`"+`; };
			>> i;
		};
	`)
	assert.Equal(t, "1\n3\n4\n", output)
}

func TestForLoopOverIntegerLimit(t *testing.T) {
	_, output := run(t, `
		i @ 3 {
			>> i;
		};
	`)
	assert.Equal(t, "0\n1\n2\n", output)
}

func TestForLoopOverArray(t *testing.T) {
	_, output := run(t, `
		arr = [10, 20, 30];
		v @ arr {
			>> v;
		};
	`)
	assert.Equal(t, "10\n20\n30\n", output)
}

func TestFunctionDefinitionAndCall(t *testing.T) {
	_, output := run(t, `
		add &a &b{
			-> a + b;
		};
		>> add(2, 3);
	`)
	assert.Equal(t, "5\n", output)
}

func TestArrayIndexAssignAndAppend(t *testing.T) {
	_, output := run(t, `
		arr = [1, 2, 3];
		arr[0] = 99;
		arr <- 4;
		>> arr;
	`)
	assert.Equal(t, "[99, 2, 3, 4]\n", output)
}

func TestHashtableAssignAndLookup(t *testing.T) {
	_, output := run(t, `
		h = {};
		h#"key" = 42;
		>> h#"key";
	`)
	assert.Equal(t, "42\n", output)
}

func TestRangeAscendingDescendingSingleton(t *testing.T) {
	_, output := run(t, `
		>> 1...3;
		>> 3...1;
		>> 2...2;
	`)
	assert.Equal(t, "[1, 2, 3]\n[3, 2, 1]\n[2]\n", output)
}

func TestTypeDefinitionInstantiationAndMethodCall(t *testing.T) {
	_, output := run(t, `
		<Counter> = { count: 0, bump: { this.count = this.count + 1; -> this.count; } };
		c = <Counter>;
		>> c.bump();
		>> c.bump();
	`)
	assert.Equal(t, "1\n2\n", output)
}

func TestTypeInheritanceMergesParentMembers(t *testing.T) {
	_, output := run(t, `
		<Animal> = { sound: "..." };
		<Dog> & <Animal> = { sound: "woof" };
		d = <Dog>;
		>> d.sound;
	`)
	assert.Equal(t, "woof\n", output)
}

func TestNamespaceDefinitionAndAccess(t *testing.T) {
	_, output := run(t, `
		:: Config {
			version = 1;
		};
		>> ::Config#version;
	`)
	assert.Equal(t, "1\n", output)
}

func TestFormattedStringInterpolation(t *testing.T) {
	_, output := run(t, `
		name = "world";
		>> 'hello, {name}!';
	`)
	assert.Equal(t, "hello, world!\n", output)
}

func TestAssertFailureProducesError(t *testing.T) {
	result, _ := run(t, `! %;`)
	errVal, ok := result.(*object.Error)
	require.True(t, ok)
	assert.Equal(t, "Assertion", errVal.Kind)
}

func TestRaiseProducesError(t *testing.T) {
	result, _ := run(t, `!>> "boom";`)
	errVal, ok := result.(*object.Error)
	require.True(t, ok)
	assert.Equal(t, "Raised", errVal.Kind)
}

func TestDivisionByZeroIsValueError(t *testing.T) {
	result, _ := run(t, `x = 1 / 0;`)
	errVal, ok := result.(*object.Error)
	require.True(t, ok)
	assert.Equal(t, "Value", errVal.Kind)
}

func TestUndefinedNameIsNameError(t *testing.T) {
	result, _ := run(t, `>> nope;`)
	errVal, ok := result.(*object.Error)
	require.True(t, ok)
	assert.Equal(t, "Name", errVal.Kind)
}

func TestPlainAssignmentWritesToEnclosingScope(t *testing.T) {
	_, output := run(t, `
		x = 1;
		f {
			x = 2;
		};
		f();
		>> x;
	`)
	assert.Equal(t, "2\n", output)
}
