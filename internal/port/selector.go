package port

// FeatureResolver turns user-supplied feature tokens into catalog feature keys.
type FeatureResolver interface {
	Resolve(tokens []string) ([]string, error)
}
