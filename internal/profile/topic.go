// Package profile holds the user profile taxonomy: topics and their
// sub-topics, how they are built from configuration, merged with the
// built-in defaults, rendered into prompts and exported as YAML.
package profile

import (
	"fmt"
)

// Topic is a top-level preference category of a user profile (e.g. "interest").
// Topic and sub-topic names are unified on construction and never change after.
type Topic struct {
	Topic       string
	Description *string
	SubTopics   []SubTopic
}

// SubTopic is a named facet under a Topic (e.g. "foods" under "interest").
// UpdateDescription tells the extractor how to revise the value on
// re-extraction; it is not rendered or exported.
type SubTopic struct {
	Name              string
	Description       *string
	UpdateDescription *string
}

// BuildTopic validates a raw record and returns its canonical form.
// Bare sub-topic names expand to a SubTopic without descriptions.
func BuildTopic(raw RawTopic) (Topic, error) {
	name := Unify(raw.Topic)
	if name == "" {
		return Topic{}, &ValidationError{Record: raw, Field: "topic", Reason: "must not be empty"}
	}

	desc, ok := stringOrNil(raw.Description)
	if !ok {
		return Topic{}, &ValidationError{Record: raw, Field: "description", Reason: "must be a string or null"}
	}

	t := Topic{
		Topic:       name,
		Description: desc,
		SubTopics:   make([]SubTopic, 0, len(raw.SubTopics)),
	}
	for _, rs := range raw.SubTopics {
		st, err := buildSubTopic(rs.Value)
		if err != nil {
			return Topic{}, fmt.Errorf("topic %q: %w", name, err)
		}
		t.SubTopics = append(t.SubTopics, st)
	}
	return t, nil
}

// BuildTopics builds every record in order and stops at the first invalid one.
func BuildTopics(raws []RawTopic) ([]Topic, error) {
	topics := make([]Topic, 0, len(raws))
	for i, raw := range raws {
		t, err := BuildTopic(raw)
		if err != nil {
			return nil, fmt.Errorf("profile %d: %w", i, err)
		}
		topics = append(topics, t)
	}
	return topics, nil
}

func buildSubTopic(v any) (SubTopic, error) {
	switch rec := v.(type) {
	case string:
		return SubTopic{Name: Unify(rec)}, nil
	case map[string]string:
		fields := make(map[string]any, len(rec))
		for k, s := range rec {
			fields[k] = s
		}
		return buildSubTopicRecord(fields)
	case map[string]any:
		return buildSubTopicRecord(rec)
	default:
		return SubTopic{}, &ValidationError{
			Record: v,
			Reason: "sub-topic must be a name or a record with a name",
		}
	}
}

func buildSubTopicRecord(rec map[string]any) (SubTopic, error) {
	name, ok := rec["name"].(string)
	if !ok {
		return SubTopic{}, &ValidationError{Record: rec, Field: "name", Reason: "must be a string"}
	}
	desc, err := optionalString(rec, "description")
	if err != nil {
		return SubTopic{}, err
	}
	update, err := optionalString(rec, "update_description")
	if err != nil {
		return SubTopic{}, err
	}
	return SubTopic{
		Name:              Unify(name),
		Description:       desc,
		UpdateDescription: update,
	}, nil
}

// optionalString reads key from rec: absent and null both yield nil.
func optionalString(rec map[string]any, key string) (*string, error) {
	s, ok := stringOrNil(rec[key])
	if !ok {
		return nil, &ValidationError{Record: rec, Field: key, Reason: "must be a string or null"}
	}
	return s, nil
}

// stringOrNil accepts nil, string and *string. ok is false for anything else.
func stringOrNil(v any) (s *string, ok bool) {
	switch x := v.(type) {
	case nil:
		return nil, true
	case string:
		return &x, true
	case *string:
		if x == nil {
			return nil, true
		}
		c := *x
		return &c, true
	default:
		return nil, false
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
