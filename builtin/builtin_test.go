package builtin

import (
	"bytes"
	"strings"
	"testing"

	"github.com/geoffreydatema/graveyard/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTable() (*Table, *bytes.Buffer) {
	var out bytes.Buffer
	return NewTable(&out, strings.NewReader("")), &out
}

func TestCastInt(t *testing.T) {
	tbl, _ := newTestTable()
	fn, ok := tbl.Lookup("i")
	require.True(t, ok)
	result := fn([]object.Value{&object.Float{Value: 3.9}}, 1, 1)
	assert.Equal(t, &object.Integer{Value: 3}, result)
}

func TestCastIntRejectsBadString(t *testing.T) {
	tbl, _ := newTestTable()
	fn, _ := tbl.Lookup("i")
	result := fn([]object.Value{&object.String{Value: "nope"}}, 1, 1)
	errVal, ok := result.(*object.Error)
	require.True(t, ok)
	assert.Equal(t, "Value", errVal.Kind)
}

func TestModFollowsDivisorSign(t *testing.T) {
	tbl, _ := newTestTable()
	fn, _ := tbl.Lookup("mod")
	result := fn([]object.Value{&object.Integer{Value: -7}, &object.Integer{Value: 3}}, 1, 1)
	assert.Equal(t, &object.Integer{Value: 2}, result)
}

func TestReverseString(t *testing.T) {
	tbl, _ := newTestTable()
	fn, _ := tbl.Lookup("reverse")
	result := fn([]object.Value{&object.String{Value: "abc"}}, 1, 1)
	assert.Equal(t, &object.String{Value: "cba"}, result)
}

func TestPrintWritesToTableWriter(t *testing.T) {
	tbl, out := newTestTable()
	fn, _ := tbl.Lookup("print")
	fn([]object.Value{&object.String{Value: "hi"}, &object.Integer{Value: 1}}, 1, 1)
	assert.Equal(t, "hi 1\n", out.String())
}

func TestJSONRoundTrip(t *testing.T) {
	tbl, _ := newTestTable()
	encode, _ := tbl.Lookup("json_encode")
	decode, _ := tbl.Lookup("json_decode")

	h := object.NewHashtable()
	h.Set("a", &object.Integer{Value: 1})
	encoded := encode([]object.Value{h}, 1, 1)
	encStr, ok := encoded.(*object.String)
	require.True(t, ok)

	decoded := decode([]object.Value{encStr}, 1, 1)
	decodedHash, ok := decoded.(*object.Hashtable)
	require.True(t, ok)
	v, found := decodedHash.Get("a")
	require.True(t, found)
	assert.Equal(t, &object.Integer{Value: 1}, v)
}

func TestMD5KnownVector(t *testing.T) {
	tbl, _ := newTestTable()
	fn, _ := tbl.Lookup("md5")
	result := fn([]object.Value{&object.String{Value: ""}}, 1, 1)
	assert.Equal(t, &object.String{Value: "d41d8cd98f00b204e9800998ecf8427e"}, result)
}
