package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)
	assert.Equal(t, 25, r.Right())
	assert.Equal(t, 25, r.Bottom())
}

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRotate)
	f.Set(ActionNone)
	f.Set(ActionMoveLeft)

	assert.Equal(t, []Action{ActionRotate, ActionMoveLeft}, f.Actions)
	assert.True(t, f.Has(ActionMoveLeft))
	assert.False(t, f.Has(ActionHardDrop))

	clone := f.Clone()
	f.Clear()
	assert.Empty(t, f.Actions)
	assert.Len(t, clone.Actions, 2)
}
