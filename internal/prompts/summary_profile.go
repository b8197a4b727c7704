package prompts

// SummaryProfileID identifies the profile summary prompt.
const SummaryProfileID = "summary_profile"

const summaryProfilePrompt = `You are given a user profile with some information about the user.
Extract high-level preference from the profile

## Requirement
- Extract high-level preference from the profile
- The preference should be the most important and representative preference of the user.
  For example, the original perference is "user likes Chocolate[mentioned in 2023/1/23], Ice cream, Cake, Cookies, Brownies[mentioned in 2023/1/24]...", then your extraction should be "user likes sweet food(cake/cookies...)".
- The preference should be concise and clear.

The result should use the same language as the input.
结果应该使用与输入相同的语言。
`

// SummaryProfile asks the model to compress a verbose, timestamped profile
// value into one high-level preference statement.
type SummaryProfile struct{}

// ID implements Provider.
func (SummaryProfile) ID() string { return SummaryProfileID }

// Prompt implements Provider.
func (SummaryProfile) Prompt() string { return summaryProfilePrompt }

// Kwargs implements Provider.
func (SummaryProfile) Kwargs() Kwargs { return Kwargs{PromptID: SummaryProfileID} }
