// Package app holds process bootstrap helpers shared by the binaries.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment files into the process environment.
// With no arguments it reads .env from the working directory.
// Missing files are ignored; unreadable or malformed ones are an error.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// NewLogger builds the text logger used by the command-line tools.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
