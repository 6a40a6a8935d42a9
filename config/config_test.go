package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollection(t *testing.T) {
	t.Run("KnownName", func(t *testing.T) {
		preset, ok := Collection("ingredients")
		assert.True(t, ok)
		assert.Equal(t, DefaultDimension, preset.Dimension)
		assert.Equal(t, IndexFlat, preset.Index)
	})

	t.Run("UnknownName", func(t *testing.T) {
		_, ok := Collection("desserts")
		assert.False(t, ok)
	})
}

func TestThresholdOrdering(t *testing.T) {
	assert.Greater(t, ThresholdExact, ThresholdHigh)
	assert.Greater(t, ThresholdHigh, ThresholdMedium)
	assert.Greater(t, ThresholdMedium, ThresholdLow)
	assert.Greater(t, ThresholdLow, ThresholdMinimal)
}
