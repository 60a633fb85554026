package usecase

import (
	"sort"

	"go.uber.org/zap"
	"posfit/internal/domain"
	"posfit/internal/port"
)

// ScoreUseCase computes weighted effectiveness scores over the catalog.
// Scores use exact integer arithmetic.
type ScoreUseCase struct {
	catalog port.Catalog
	logger  *zap.Logger
}

// NewScoreUseCase creates a new score use case.
func NewScoreUseCase(catalog port.Catalog, logger *zap.Logger) *ScoreUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScoreUseCase{
		catalog: catalog,
		logger:  logger,
	}
}

// Score returns the weighted sum of supported features for every system,
// keyed by system name.
func (u *ScoreUseCase) Score(weights domain.WeightSet) (map[string]int, error) {
	vec, err := weightVector(u.catalog.Features(), weights)
	if err != nil {
		return nil, err
	}

	systems := u.catalog.Systems()
	scores := make(map[string]int, len(systems))
	for _, s := range systems {
		scores[s.Name] = dot(s.Support, vec)
	}
	return scores, nil
}

// Rank scores every system and orders them by descending score. Ties keep
// catalog order.
func (u *ScoreUseCase) Rank(weights domain.WeightSet) (domain.Ranking, error) {
	vec, err := weightVector(u.catalog.Features(), weights)
	if err != nil {
		return domain.Ranking{}, err
	}

	total := sum(vec)
	systems := u.catalog.Systems()
	scores := make([]domain.SystemScore, len(systems))
	for i, s := range systems {
		score := dot(s.Support, vec)
		scores[i] = domain.SystemScore{
			System:  s.Name,
			Score:   score,
			Percent: percent(score, total),
		}
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})

	u.logger.Debug("ranked systems",
		zap.Int("scenario", weights.ID),
		zap.Int("systems", len(scores)),
		zap.Int("weight_total", total),
	)

	return domain.Ranking{Scenario: weights, Scores: scores}, nil
}

// RankScenario ranks the systems under a registered scenario.
func (u *ScoreUseCase) RankScenario(id int) (domain.Ranking, error) {
	weights, err := u.catalog.Weights(id)
	if err != nil {
		return domain.Ranking{}, err
	}
	return u.Rank(weights)
}

// RankAll ranks the systems under every registered scenario in id order.
func (u *ScoreUseCase) RankAll() ([]domain.Ranking, error) {
	scenarios := u.catalog.Scenarios()
	rankings := make([]domain.Ranking, 0, len(scenarios))
	for _, w := range scenarios {
		r, err := u.Rank(w)
		if err != nil {
			return nil, err
		}
		rankings = append(rankings, r)
	}
	return rankings, nil
}

// weightVector lays the weights out in feature order. The first feature
// without a weight is reported.
func weightVector(features []domain.Feature, weights domain.WeightSet) ([]int, error) {
	vec := make([]int, len(features))
	for i, f := range features {
		w, ok := weights.Weights[f.Key]
		if !ok {
			return nil, &domain.MissingWeightError{Scenario: weights.ID, Feature: f.Key}
		}
		if w < 0 {
			return nil, &domain.NegativeWeightError{Scenario: weights.ID, Feature: f.Key, Weight: w}
		}
		vec[i] = w
	}
	return vec, nil
}

func sum(vec []int) int {
	total := 0
	for _, v := range vec {
		total += v
	}
	return total
}

func dot(support []bool, vec []int) int {
	total := 0
	for i, ok := range support {
		if ok && i < len(vec) {
			total += vec[i]
		}
	}
	return total
}

// percent expresses score as a share of the weight total. Scores are not
// rescaled; built-in scenarios sum to 100 so the two readings coincide.
func percent(score, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(score) * 100 / float64(total)
}
