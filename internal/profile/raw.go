package profile

import "gopkg.in/yaml.v3"

// RawTopic is a topic record as it appears in configuration.
// Description is kept as decoded (string, *string or nil are valid);
// BuildTopic applies the same rule to it as to sub-topic descriptions.
type RawTopic struct {
	Topic       string        `yaml:"topic"`
	Description any           `yaml:"description,omitempty"`
	SubTopics   []RawSubTopic `yaml:"sub_topics"`
}

// RawSubTopic is one entry of a raw sub_topics list. Value is either a bare
// name (string) or a record (map) with "name", "description" and
// "update_description" keys. Anything else is rejected by BuildTopic.
type RawSubTopic struct {
	Value any
}

// UnmarshalYAML keeps the decoded value untouched; shape checks happen in
// BuildTopic so that YAML and programmatic records share one validation path.
func (r *RawSubTopic) UnmarshalYAML(node *yaml.Node) error {
	var v any
	if err := node.Decode(&v); err != nil {
		return err
	}
	r.Value = v
	return nil
}

// MarshalYAML writes the record back in the shape it was given.
func (r RawSubTopic) MarshalYAML() (any, error) {
	return r.Value, nil
}
