package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/geoffreydatema/graveyard/eval"
	"github.com/stretchr/testify/assert"
)

func TestExecuteWithRecoveryPrintsResult(t *testing.T) {
	var out bytes.Buffer
	r := NewRepl("banner", "v1", "author", "---", "MIT", "gy> ")
	ev := eval.New(&out, strings.NewReader(""))

	r.executeWithRecovery(&out, "1 + 1;", ev)

	assert.Contains(t, out.String(), "2")
}

func TestExecuteWithRecoveryReportsParseErrors(t *testing.T) {
	var out bytes.Buffer
	r := NewRepl("banner", "v1", "author", "---", "MIT", "gy> ")
	ev := eval.New(&out, strings.NewReader(""))

	r.executeWithRecovery(&out, "x = ;", ev)

	assert.NotEmpty(t, out.String())
}

func TestExecuteWithRecoveryReportsLanguageErrors(t *testing.T) {
	var out bytes.Buffer
	r := NewRepl("banner", "v1", "author", "---", "MIT", "gy> ")
	ev := eval.New(&out, strings.NewReader(""))

	r.executeWithRecovery(&out, `x = "a" < "b";`, ev)

	assert.Contains(t, out.String(), "Type error")
}

func TestExecuteWithRecoverySuppressesNullResult(t *testing.T) {
	var out bytes.Buffer
	r := NewRepl("banner", "v1", "author", "---", "MIT", "gy> ")
	ev := eval.New(&out, strings.NewReader(""))

	r.executeWithRecovery(&out, "x = 1;", ev)

	assert.Empty(t, out.String())
}
