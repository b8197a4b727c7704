// Package prompts provides the fixed instruction templates sent to the LLM,
// each paired with the metadata the request dispatcher uses to identify it.
package prompts

// Provider supplies one prompt template.
type Provider interface {
	// ID returns the prompt identifier, also carried in Kwargs.
	ID() string

	// Prompt returns the template text.
	Prompt() string

	// Kwargs returns the metadata attached to requests using this prompt.
	Kwargs() Kwargs
}

// Kwargs is the request metadata that identifies a prompt to the dispatcher.
type Kwargs struct {
	PromptID string `json:"prompt_id" yaml:"prompt_id"`
}

// Map returns the kwargs in the key/value form the dispatcher forwards.
func (k Kwargs) Map() map[string]string {
	return map[string]string{"prompt_id": k.PromptID}
}
