package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	assert.Equal(t, 33.33, Round(33.333333))
	assert.Equal(t, 33.34, Round(33.335001))
	assert.Equal(t, 0.0, Round(0))
	assert.Equal(t, -12.35, Round(-12.345001))
	assert.Equal(t, 100.0, Round(99.9999))
}

func TestWithinTolerance(t *testing.T) {
	assert.True(t, WithinTolerance(100, 100))
	assert.True(t, WithinTolerance(100, 99.99))
	assert.True(t, WithinTolerance(99.99, 100))
	assert.False(t, WithinTolerance(100, 99.989))
	assert.False(t, WithinTolerance(100, 100.02))
}
