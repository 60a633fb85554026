package usecase

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"posfit/internal/catalog"
	"posfit/internal/domain"
)

func TestSampleLengthAndBounds(t *testing.T) {
	c := catalog.Default()
	uc := NewSampleUseCase(c, NewSeededSource(42), nil)

	for _, w := range c.Scenarios() {
		scores, err := uc.Sample(100, w, nil)
		require.NoError(t, err)
		require.Len(t, scores, 100)

		total := w.Total()
		for _, s := range scores {
			assert.GreaterOrEqual(t, s, 0)
			assert.LessOrEqual(t, s, total)
		}
	}
}

func TestSampleDeterministicWithSeed(t *testing.T) {
	c := catalog.Default()
	w, err := c.Weights(1)
	require.NoError(t, err)

	a, err := NewSampleUseCase(c, NewSeededSource(7), nil).Sample(50, w, nil)
	require.NoError(t, err)
	b, err := NewSampleUseCase(c, NewSeededSource(7), nil).Sample(50, w, nil)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSampleSpreads(t *testing.T) {
	c := catalog.Default()
	uc := NewSampleUseCase(c, NewSeededSource(1), nil)

	scores, err := uc.SampleScenario(1000, 1, nil)
	require.NoError(t, err)

	distinct := make(map[int]bool)
	sum := 0
	for _, s := range scores {
		distinct[s] = true
		sum += s
	}
	assert.Greater(t, len(distinct), 5)

	// expected value is half the weight total
	mean := float64(sum) / float64(len(scores))
	assert.InDelta(t, 50.0, mean, 5.0)
}

func TestSampleZeroAndNegative(t *testing.T) {
	c := catalog.Default()
	uc := NewSampleUseCase(c, NewSeededSource(3), nil)
	w, _ := c.Weights(2)

	scores, err := uc.Sample(0, w, nil)
	require.NoError(t, err)
	assert.Empty(t, scores)

	_, err = uc.Sample(-1, w, nil)
	var is *domain.InvalidSampleSizeError
	assert.ErrorAs(t, err, &is)
}

func TestSampleMissingWeight(t *testing.T) {
	uc := NewSampleUseCase(catalog.Default(), NewSeededSource(3), nil)

	_, err := uc.Sample(10, domain.WeightSet{ID: 5, Weights: map[string]int{"pos": 1}}, nil)
	var mw *domain.MissingWeightError
	assert.ErrorAs(t, err, &mw)
}

func TestSampleUnknownScenario(t *testing.T) {
	uc := NewSampleUseCase(catalog.Default(), nil, nil)

	_, err := uc.SampleScenario(10, 99, nil)
	var us *domain.UnknownScenarioError
	assert.ErrorAs(t, err, &us)
}

func TestSampleProgress(t *testing.T) {
	c := catalog.Default()
	uc := NewSampleUseCase(c, NewSeededSource(9), nil)
	w, _ := c.Weights(3)

	var calls, last int
	_, err := uc.Sample(25, w, func(done, total int) {
		calls++
		last = done
		assert.Equal(t, 25, total)
	})
	require.NoError(t, err)
	assert.Equal(t, 25, calls)
	assert.Equal(t, 25, last)
}

func TestSampleConcurrentCallers(t *testing.T) {
	c := catalog.Default()
	uc := NewSampleUseCase(c, NewSeededSource(11), nil)
	w, _ := c.Weights(1)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			scores, err := uc.Sample(100, w, nil)
			assert.NoError(t, err)
			assert.Len(t, scores, 100)
		}()
	}
	wg.Wait()
}
