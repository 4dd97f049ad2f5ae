package orchestration

import (
	"github.com/agbru/picalc/internal/series"
)

// SelectAlgorithm resolves the configured algorithm name against the
// factory. An empty name selects the first registered kind, which keeps the
// choice reproducible.
func SelectAlgorithm(name string, factory series.Factory) (series.Kind, error) {
	if name == "" {
		return series.Next(factory, "")
	}
	kind := series.Kind(name)
	if _, err := factory.New(kind); err != nil {
		return "", err
	}
	return kind, nil
}
