package usecase

import (
	"go.uber.org/zap"
	"posfit/internal/domain"
	"posfit/internal/port"
)

// MatchUseCase filters the catalog down to systems supporting every
// requested feature.
type MatchUseCase struct {
	catalog port.Catalog
	logger  *zap.Logger
}

// NewMatchUseCase creates a new match use case.
func NewMatchUseCase(catalog port.Catalog, logger *zap.Logger) *MatchUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MatchUseCase{
		catalog: catalog,
		logger:  logger,
	}
}

// Match returns the qualifying systems in catalog order. An empty request
// fails with domain.ErrNoSelection; a request nothing satisfies yields an
// empty, non-nil slice.
func (u *MatchUseCase) Match(required []string) ([]domain.MatchResult, error) {
	if len(required) == 0 {
		return nil, domain.ErrNoSelection
	}

	wanted := make(map[int]bool, len(required))
	for _, key := range required {
		i, ok := u.catalog.FeatureIndex(key)
		if !ok {
			return nil, &domain.UnknownFeatureError{Key: key}
		}
		wanted[i] = true
	}

	features := u.catalog.Features()
	results := make([]domain.MatchResult, 0)
	for _, s := range u.catalog.Systems() {
		if !supportsAll(s, wanted) {
			continue
		}

		var supported, extras []domain.Feature
		for i, f := range features {
			if !s.Supports(i) {
				continue
			}
			supported = append(supported, f)
			if !wanted[i] {
				extras = append(extras, f)
			}
		}
		results = append(results, domain.MatchResult{
			System:      s.Name,
			Description: s.Description,
			Supported:   supported,
			Extras:      extras,
		})
	}

	u.logger.Debug("matched systems",
		zap.Strings("required", required),
		zap.Int("matches", len(results)),
	)

	return results, nil
}

func supportsAll(s domain.System, wanted map[int]bool) bool {
	for i := range wanted {
		if !s.Supports(i) {
			return false
		}
	}
	return true
}
