package selector

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"posfit/internal/domain"
	"posfit/internal/port"
)

var _ port.FeatureResolver = (*Selector)(nil)

// Selector resolves user tokens to feature keys. A token may be a feature
// key, a display name (case-insensitive) or a glob pattern over keys such
// as "*o*" or "{loyalty,offline}".
type Selector struct {
	features []domain.Feature
}

func NewSelector(features []domain.Feature) *Selector {
	return &Selector{features: features}
}

// Resolve returns the matched keys in catalog order without duplicates.
func (s *Selector) Resolve(tokens []string) ([]string, error) {
	picked := make(map[string]bool)
	for _, raw := range tokens {
		for _, token := range splitTokens(raw) {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}
			keys := s.resolveOne(token)
			if len(keys) == 0 {
				return nil, &domain.UnknownFeatureError{Key: token}
			}
			for _, k := range keys {
				picked[k] = true
			}
		}
	}

	var keys []string
	for _, f := range s.features {
		if picked[f.Key] {
			keys = append(keys, f.Key)
		}
	}
	return keys, nil
}

func (s *Selector) resolveOne(token string) []string {
	lower := strings.ToLower(token)
	for _, f := range s.features {
		if strings.EqualFold(f.Key, token) || strings.EqualFold(f.Name, token) {
			return []string{f.Key}
		}
	}

	if !isPattern(token) {
		return nil
	}

	var keys []string
	for _, f := range s.features {
		matched, err := doublestar.Match(lower, f.Key)
		if err == nil && matched {
			keys = append(keys, f.Key)
		}
	}
	return keys
}

func isPattern(token string) bool {
	return strings.ContainsAny(token, "*?[{")
}

// splitTokens splits on commas that are not inside a brace group.
func splitTokens(raw string) []string {
	var out []string
	depth, start := 0, 0
	for i, r := range raw {
		switch r {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				out = append(out, raw[start:i])
				start = i + 1
			}
		}
	}
	return append(out, raw[start:])
}
