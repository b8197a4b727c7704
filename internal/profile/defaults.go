package profile

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed default_topics.yaml
var defaultTopicsYAML []byte

// DefaultTopics builds the built-in taxonomy. Each call returns a fresh list.
func DefaultTopics() ([]Topic, error) {
	var raws []RawTopic
	if err := yaml.Unmarshal(defaultTopicsYAML, &raws); err != nil {
		return nil, fmt.Errorf("failed to parse default topics: %w", err)
	}
	topics, err := BuildTopics(raws)
	if err != nil {
		return nil, fmt.Errorf("invalid default topics: %w", err)
	}
	return topics, nil
}
