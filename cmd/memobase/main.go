// Command memobase inspects the user profile taxonomy and the prompt
// templates the memory service sends to the LLM.
//
// Usage:
//
//	memobase topics --config configs/config.yaml
//	memobase subtopics interest
//	memobase export --output profiles.yaml
//	memobase prompt summary_profile --kwargs
package main

import (
	"context"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		// Cobra already printed the error
		os.Exit(1)
	}
}
