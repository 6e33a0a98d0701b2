package customize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionRendersOnCreationAndEverySet(t *testing.T) {
	var rendered []State
	s := NewSession(State{Color: "#FFFFFF"}, func(st State) {
		rendered = append(rendered, st)
	})

	assert.Len(t, rendered, 1)
	assert.Equal(t, "#FFFFFF", rendered[0].Color)

	s.Set(State{Color: "#000000", Text: "hi"})
	assert.Len(t, rendered, 2, "Set triggers a synchronous re-render")
	assert.Equal(t, "hi", rendered[1].Text)
	assert.Equal(t, State{Color: "#000000", Text: "hi"}, s.Snapshot())
}

func TestSessionSetReplacesWholeState(t *testing.T) {
	s := NewSession(State{Color: "#FF6B6B", Size: "M", Text: "keep?"}, nil)

	// A state carrying only a color drops the previous size and text:
	// updates are whole-state replacements, not merges.
	s.Set(State{Color: "#4ECDC4"})
	got := s.Snapshot()
	assert.Equal(t, "#4ECDC4", got.Color)
	assert.Empty(t, got.Size)
	assert.Empty(t, got.Text)
}

func TestSessionWithoutRenderHook(t *testing.T) {
	s := NewSession(State{}, nil)
	s.Set(State{Text: "no hook, no panic"})
	assert.Equal(t, "no hook, no panic", s.Snapshot().Text)
}
