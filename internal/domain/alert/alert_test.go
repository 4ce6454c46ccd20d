package alert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSoundGate(t *testing.T) {
	gate := NewSoundGate()

	assert.Equal(t, 0, gate.Observe([]string{"a", "b", "c"}), "first callback is silent")
	assert.True(t, gate.Primed())

	assert.Equal(t, 0, gate.Observe([]string{"a", "b", "c"}), "nothing new")
	assert.Equal(t, 2, gate.Observe([]string{"a", "b", "c", "d", "e"}), "one per new raw id")
	assert.Equal(t, 0, gate.Observe([]string{"a"}), "removals are silent")
	assert.Equal(t, 1, gate.Observe([]string{"a", "b"}), "a forgotten id sounds again when it returns")
	assert.Equal(t, 1, gate.Observe([]string{"a", "b", "f", "f"}), "repeated ids in one callback count once")
}

func TestSoundGate_EmptyFirstCallback(t *testing.T) {
	gate := NewSoundGate()

	assert.Equal(t, 0, gate.Observe(nil))
	assert.Equal(t, 1, gate.Observe([]string{"x"}))
}

func TestBadge(t *testing.T) {
	tests := []struct {
		count int
		want  Badge
	}{
		{count: 0, want: Badge{}},
		{count: -1, want: Badge{}},
		{count: 1, want: Badge{Count: 1, Label: "1", Visible: true, Attention: true}},
		{count: 99, want: Badge{Count: 99, Label: "99", Visible: true, Attention: true}},
		{count: 100, want: Badge{Count: 100, Label: "99+", Visible: true, Attention: true}},
		{count: 2500, want: Badge{Count: 2500, Label: "99+", Visible: true, Attention: true}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NewBadge(tt.count), "count=%d", tt.count)
	}
}
