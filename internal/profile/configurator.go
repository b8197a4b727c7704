package profile

import (
	"log/slog"
	"slices"
)

// Configurator resolves the effective taxonomy against a fixed set of
// defaults, logging and recording the outcome. Resolve is the pure core.
type Configurator struct {
	defaults []Topic
	logger   *slog.Logger
}

// NewConfigurator keeps its own copy of defaults.
func NewConfigurator(defaults []Topic, logger *slog.Logger) *Configurator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Configurator{
		defaults: slices.Clone(defaults),
		logger:   logger.With("component", "profile"),
	}
}

// Defaults returns a copy of the configured default topics.
func (c *Configurator) Defaults() []Topic {
	return slices.Clone(c.defaults)
}

// Effective returns the topic list for o.
func (c *Configurator) Effective(o Overrides) ([]Topic, error) {
	topics, policy, err := Resolve(c.defaults, o)
	if err != nil {
		recordValidationFailure()
		c.logger.Error("invalid profile configuration", "policy", policy, "error", err)
		return nil, err
	}
	recordResolution(policy, len(topics))
	c.logger.Debug("resolved profile topics",
		"policy", policy,
		"defaults", len(c.defaults),
		"topics", len(topics),
	)
	return topics, nil
}
