package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHuman(t *testing.T) {
	assert.Equal(t, "0 B", Human(0))
	assert.Equal(t, "512 B", Human(512))
	assert.Equal(t, "2.00 KB", Human(2048))
	assert.Equal(t, "1.50 MB", Human(3<<19))
	// a docs page never gets this big; MB stays the largest unit
	assert.Equal(t, "2048.00 MB", Human(2<<30))
}
