package main

import (
	"testing"

	"sews/internal/validator"

	"github.com/stretchr/testify/assert"
)

func TestSampleClothingStyles_AreValid(t *testing.T) {
	v := validator.New()
	seen := map[string]bool{}

	for _, style := range sampleClothingStyles() {
		assert.NoError(t, v.Validate(style), style.Name)
		assert.False(t, seen[style.Name], "duplicate %s", style.Name)
		seen[style.Name] = true
	}

	assert.Len(t, seen, 12)
}
