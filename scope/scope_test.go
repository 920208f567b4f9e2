package scope

import (
	"testing"

	"github.com/geoffreydatema/graveyard/object"
	"github.com/stretchr/testify/assert"
)

func TestLookUpWalksParentChain(t *testing.T) {
	global := New(nil)
	global.Bind("x", &object.Integer{Value: 1})
	child := New(global)

	v, ok := child.LookUp("x")
	assert.True(t, ok)
	assert.Equal(t, &object.Integer{Value: 1}, v)
}

func TestLookUpMissingReturnsFalse(t *testing.T) {
	s := New(nil)
	_, ok := s.LookUp("nope")
	assert.False(t, ok)
}

func TestBindIsCurrentScopeOnly(t *testing.T) {
	global := New(nil)
	global.Bind("x", &object.Integer{Value: 1})
	child := New(global)
	child.Bind("x", &object.Integer{Value: 2})

	childVal, _ := child.LookUp("x")
	globalVal, _ := global.LookUp("x")
	assert.Equal(t, &object.Integer{Value: 2}, childVal)
	assert.Equal(t, &object.Integer{Value: 1}, globalVal)
}

func TestAssignWritesToEnclosingOwner(t *testing.T) {
	global := New(nil)
	global.Bind("x", &object.Integer{Value: 1})
	child := New(global)

	child.Assign("x", &object.Integer{Value: 9})

	childVal, _ := child.LookUp("x")
	globalVal, _ := global.LookUp("x")
	assert.Equal(t, &object.Integer{Value: 9}, childVal)
	assert.Equal(t, &object.Integer{Value: 9}, globalVal)
	_, ownChild := child.Variables["x"]
	assert.False(t, ownChild)
}

func TestAssignWithNoExistingBindingCreatesInCurrentScope(t *testing.T) {
	global := New(nil)
	child := New(global)

	child.Assign("y", &object.Integer{Value: 5})

	_, inChild := child.Variables["y"]
	_, inGlobal := global.Variables["y"]
	assert.True(t, inChild)
	assert.False(t, inGlobal)
}

func TestAssignExistingFailsWhenUnbound(t *testing.T) {
	s := New(nil)
	ok := s.AssignExisting("z", &object.Integer{Value: 1})
	assert.False(t, ok)
	_, bound := s.LookUp("z")
	assert.False(t, bound)
}

func TestAssignExistingSucceedsOnEnclosingScope(t *testing.T) {
	global := New(nil)
	global.Bind("z", &object.Integer{Value: 1})
	child := New(global)

	ok := child.AssignExisting("z", &object.Integer{Value: 2})
	assert.True(t, ok)
	v, _ := global.LookUp("z")
	assert.Equal(t, &object.Integer{Value: 2}, v)
}

func TestGlobalWalksToRoot(t *testing.T) {
	global := New(nil)
	mid := New(global)
	leaf := New(mid)

	assert.Same(t, global, leaf.Global())
	assert.Same(t, global, global.Global())
}
