package profile

import (
	"fmt"
	"strings"
)

// NoSubtopics is what SubtopicLines renders to when no topic matched.
// Prompt templates interpolate it verbatim.
const NoSubtopics = "None"

// Render formats a topic for inclusion in an extraction prompt.
// A topic without sub-topics renders as a single "- topic" line. Otherwise
// the first line is "- topic (description)" and each sub-topic follows on
// its own line, indented by two spaces, as "  - name(description)", or
// "  - name" when it has no description.
func Render(t Topic) string {
	if len(t.SubTopics) == 0 {
		return "- " + t.Topic
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "- %s (%s)", t.Topic, deref(t.Description))
	for _, st := range t.SubTopics {
		sb.WriteString("\n  - ")
		sb.WriteString(st.Name)
		if d := deref(st.Description); d != "" {
			fmt.Fprintf(&sb, "(%s)", d)
		}
	}
	return sb.String()
}

// RenderAll renders every topic, one block per topic.
func RenderAll(topics []Topic) string {
	blocks := make([]string, len(topics))
	for i, t := range topics {
		blocks[i] = Render(t)
	}
	return strings.Join(blocks, "\n")
}

// SubtopicLines are display lines for the sub-topics of one topic.
type SubtopicLines []string

// IsNone reports whether no sub-topic matched.
func (l SubtopicLines) IsNone() bool {
	return len(l) == 0
}

// String joins the lines with newlines, or returns NoSubtopics when empty.
func (l SubtopicLines) String() string {
	if l.IsNone() {
		return NoSubtopics
	}
	return strings.Join(l, "\n")
}

// Subtopics collects "- name(description)" lines for every topic named
// exactly topic. A name may appear more than once after merging; all
// matches contribute, in list order.
func Subtopics(topic string, topics []Topic) SubtopicLines {
	var lines SubtopicLines
	for _, t := range topics {
		if t.Topic != topic {
			continue
		}
		for _, st := range t.SubTopics {
			line := "- " + st.Name
			if d := deref(st.Description); d != "" {
				line += "(" + d + ")"
			}
			lines = append(lines, line)
		}
	}
	return lines
}
