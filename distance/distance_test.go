package distance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosine(t *testing.T) {
	t.Run("SelfSimilarity", func(t *testing.T) {
		v := []float32{0.3, -1.2, 4.5, 0.01}
		assert.InDelta(t, 1.0, Cosine(v, v), 1e-9)
	})

	t.Run("Orthogonal", func(t *testing.T) {
		a := []float32{1, 0, 0, 0}
		b := []float32{0, 1, 0, 0}
		assert.InDelta(t, 0.0, Cosine(a, b), 1e-9)
	})

	t.Run("Opposite", func(t *testing.T) {
		a := []float32{1, 2, 3}
		b := []float32{-1, -2, -3}
		assert.InDelta(t, -1.0, Cosine(a, b), 1e-9)
	})

	t.Run("ZeroMagnitudeGuard", func(t *testing.T) {
		zero := []float32{0, 0, 0}
		v := []float32{1, 2, 3}
		assert.Equal(t, 0.0, Cosine(zero, v))
		assert.Equal(t, 0.0, Cosine(v, zero))
		assert.Equal(t, 0.0, Cosine(zero, zero))
	})

	t.Run("MagnitudeIndependent", func(t *testing.T) {
		a := []float32{1, 1, 0}
		b := []float32{10, 10, 0}
		assert.InDelta(t, 1.0, Cosine(a, b), 1e-9)
	})
}

func TestDot(t *testing.T) {
	a := []float32{1, 2, 3}
	b := []float32{4, 5, 6}
	assert.InDelta(t, 32.0, Dot(a, b), 1e-9)
}

func TestNorm(t *testing.T) {
	assert.InDelta(t, 5.0, Norm([]float32{3, 4}), 1e-9)
	assert.Equal(t, 0.0, Norm([]float32{0, 0}))
}

func TestNormalizeCopy(t *testing.T) {
	t.Run("Normalizes", func(t *testing.T) {
		v := NormalizeCopy([]float32{3, 4})
		assert.InDelta(t, 1.0, Norm(v), 1e-6)
	})

	t.Run("ZeroVectorCopiedUnchanged", func(t *testing.T) {
		assert.Equal(t, []float32{0, 0}, NormalizeCopy([]float32{0, 0}))
	})
}

func TestProvider(t *testing.T) {
	fn, err := Provider(MetricCosine)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, fn([]float32{1, 0}, []float32{2, 0}), 1e-9)

	_, err = Provider(Metric(99))
	assert.Error(t, err)
}

func TestMetricString(t *testing.T) {
	assert.Equal(t, "cosine", MetricCosine.String())
	assert.Equal(t, "dot", MetricDot.String())
}
