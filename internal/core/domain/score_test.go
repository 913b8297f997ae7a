package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointsForIntention(t *testing.T) {
	tests := []struct {
		name     string
		avg      float64
		expected int
	}{
		{"perfect", 100, 100},
		{"ninety boundary", 90, 100},
		{"just under ninety", 89.9, 75},
		{"eighty boundary", 80, 75},
		{"seventy boundary", 70, 50},
		{"sixty boundary", 60, 25},
		{"fifty boundary", 50, 10},
		{"below fifty", 49.9, 0},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PointsForIntention(tt.avg))
		})
	}
}

func TestInstructionMode_IsValid(t *testing.T) {
	assert.True(t, ModeRelax.IsValid())
	assert.True(t, ModeLeft.IsValid())
	assert.True(t, ModeRight.IsValid())
	assert.False(t, InstructionMode("jump").IsValid())
	assert.False(t, InstructionMode("").IsValid())
}

func TestInstructionMode_IsActive(t *testing.T) {
	assert.False(t, ModeRelax.IsActive())
	assert.True(t, ModeLeft.IsActive())
	assert.True(t, ModeRight.IsActive())
}

func TestInstructionMode_AwardsOnTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    InstructionMode
		to      InstructionMode
		expects bool
	}{
		{"relax to left", ModeRelax, ModeLeft, true},
		{"relax to right", ModeRelax, ModeRight, true},
		{"relax to relax", ModeRelax, ModeRelax, false},
		{"left to right", ModeLeft, ModeRight, true},
		{"right to left", ModeRight, ModeLeft, true},
		{"left to relax", ModeLeft, ModeRelax, true},
		{"right to relax", ModeRight, ModeRelax, true},
		{"left to left", ModeLeft, ModeLeft, false},
		{"right to right", ModeRight, ModeRight, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expects, tt.from.AwardsOnTransition(tt.to))
		})
	}
}
