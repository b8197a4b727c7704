package profile

import "slices"

// Overrides are the profile fields of the configuration file.
type Overrides struct {
	// Overwrite replaces the default taxonomy entirely.
	Overwrite []RawTopic
	// Additional is appended after the defaults.
	Additional []RawTopic
}

// Policy names the rule that produced an effective topic list.
type Policy string

const (
	PolicyOverwrite  Policy = "overwrite"
	PolicyAdditional Policy = "additional"
	PolicyDefaults   Policy = "defaults"
)

// String implements fmt.Stringer.
func (p Policy) String() string {
	return string(p)
}

// ChoosePolicy picks the first matching rule: overwrite, then additional,
// then defaults. Empty lists count as unset.
func ChoosePolicy(o Overrides) Policy {
	switch {
	case len(o.Overwrite) > 0:
		return PolicyOverwrite
	case len(o.Additional) > 0:
		return PolicyAdditional
	default:
		return PolicyDefaults
	}
}

// Resolve returns the effective topic list for o on top of defaults.
// The result never shares a backing array with defaults. Any invalid
// record fails the whole resolution.
func Resolve(defaults []Topic, o Overrides) ([]Topic, Policy, error) {
	policy := ChoosePolicy(o)
	switch policy {
	case PolicyOverwrite:
		topics, err := BuildTopics(o.Overwrite)
		if err != nil {
			return nil, policy, err
		}
		return topics, policy, nil
	case PolicyAdditional:
		additions, err := BuildTopics(o.Additional)
		if err != nil {
			return nil, policy, err
		}
		topics := make([]Topic, 0, len(defaults)+len(additions))
		topics = append(topics, defaults...)
		return append(topics, additions...), policy, nil
	default:
		return slices.Clone(defaults), policy, nil
	}
}
