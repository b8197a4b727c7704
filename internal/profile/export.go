package profile

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is the exported form of a topic list.
type Document struct {
	Profiles []ExportedTopic `yaml:"profiles"`
}

// ExportedTopic is a topic as written by ExportYAML. Field order is the
// output key order.
type ExportedTopic struct {
	Topic       string             `yaml:"topic"`
	Description string             `yaml:"description,omitempty"`
	SubTopics   []ExportedSubTopic `yaml:"sub_topics"`
}

// ExportedSubTopic carries name and description only; update descriptions
// are internal to extraction and are not exported.
type ExportedSubTopic struct {
	Name        string  `yaml:"name"`
	Description *string `yaml:"description"`
}

// ToDocument converts topics to their export form, keeping input order.
func ToDocument(topics []Topic) Document {
	doc := Document{Profiles: make([]ExportedTopic, 0, len(topics))}
	for _, t := range topics {
		et := ExportedTopic{
			Topic:       t.Topic,
			Description: deref(t.Description),
			SubTopics:   make([]ExportedSubTopic, 0, len(t.SubTopics)),
		}
		for _, st := range t.SubTopics {
			et.SubTopics = append(et.SubTopics, ExportedSubTopic{
				Name:        st.Name,
				Description: st.Description,
			})
		}
		doc.Profiles = append(doc.Profiles, et)
	}
	return doc
}

// ExportYAML renders topics as a YAML document with a top-level "profiles"
// key. Non-ASCII text is written as-is.
func ExportYAML(topics []Topic) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(ToDocument(topics)); err != nil {
		return "", fmt.Errorf("failed to encode profiles: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("failed to encode profiles: %w", err)
	}
	return buf.String(), nil
}
