package usecase

import (
	"math/rand/v2"
	"sync"

	"go.uber.org/zap"
	"posfit/internal/domain"
	"posfit/internal/port"
)

// ProgressFunc is called after each synthetic system is scored.
type ProgressFunc func(done, total int)

// SampleUseCase scores randomly generated systems to show how effectiveness
// spreads across an unconstrained population. Each feature bit is an
// independent fair coin flip. Calls are serialised so one instance can be
// shared.
type SampleUseCase struct {
	catalog port.Catalog
	logger  *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSampleUseCase creates a sampler drawing from src. A nil src uses a
// generator seeded from the runtime's entropy source.
func NewSampleUseCase(catalog port.Catalog, src rand.Source, logger *zap.Logger) *SampleUseCase {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SampleUseCase{
		catalog: catalog,
		logger:  logger,
		rng:     rand.New(src),
	}
}

// NewSeededSource returns a deterministic source for reproducible runs.
func NewSeededSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// Sample returns n scores in generation order. progress may be nil.
func (u *SampleUseCase) Sample(n int, weights domain.WeightSet, progress ProgressFunc) ([]int, error) {
	if n < 0 {
		return nil, &domain.InvalidSampleSizeError{N: n}
	}

	vec, err := weightVector(u.catalog.Features(), weights)
	if err != nil {
		return nil, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	scores := make([]int, n)
	support := make([]bool, len(vec))
	for i := 0; i < n; i++ {
		for j := range support {
			support[j] = u.rng.IntN(2) == 1
		}
		scores[i] = dot(support, vec)
		if progress != nil {
			progress(i+1, n)
		}
	}

	u.logger.Debug("sampled synthetic systems",
		zap.Int("scenario", weights.ID),
		zap.Int("n", n),
		zap.Int("features", len(vec)),
	)

	return scores, nil
}

// SampleScenario samples under a registered scenario.
func (u *SampleUseCase) SampleScenario(n, scenario int, progress ProgressFunc) ([]int, error) {
	weights, err := u.catalog.Weights(scenario)
	if err != nil {
		return nil, err
	}
	return u.Sample(n, weights, progress)
}
