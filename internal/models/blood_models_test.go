package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidBloodType(t *testing.T) {
	for _, bt := range ValidBloodTypes {
		assert.True(t, IsValidBloodType(bt), bt)
	}

	invalid := []string{"", "O", "C+", "ab+", "A +", "O+ ", "AB"}
	for _, bt := range invalid {
		assert.False(t, IsValidBloodType(bt), bt)
	}
}
