// Package testutil provides shared helpers for tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
)

// LogCapture collects slog JSON records written by code under test.
type LogCapture struct {
	mu     sync.Mutex
	buffer bytes.Buffer
	logger *slog.Logger
}

// LogEntry is one captured record. Fields holds every attribute except
// level, msg and time.
type LogEntry struct {
	Level   string
	Message string
	Fields  map[string]any
}

// NewLogCapture creates a capture that records every level from debug up.
func NewLogCapture() *LogCapture {
	lc := &LogCapture{}
	lc.logger = slog.New(slog.NewJSONHandler(lockedWriter{lc}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	return lc
}

// Logger returns the slog.Logger that writes to this capture.
func (lc *LogCapture) Logger() *slog.Logger {
	return lc.logger
}

// Entries parses everything written so far.
func (lc *LogCapture) Entries() []LogEntry {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	var entries []LogEntry
	for _, line := range bytes.Split(lc.buffer.Bytes(), []byte{'\n'}) {
		if len(line) == 0 {
			continue
		}
		var raw map[string]any
		if err := json.Unmarshal(line, &raw); err != nil {
			continue
		}
		entry := LogEntry{Fields: make(map[string]any)}
		for k, v := range raw {
			switch k {
			case "level":
				entry.Level, _ = v.(string)
			case "msg":
				entry.Message, _ = v.(string)
			case "time":
			default:
				entry.Fields[k] = v
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

// Find returns entries matching the level (case-insensitive, empty for any)
// whose message contains msgSubstring.
func (lc *LogCapture) Find(level, msgSubstring string) []LogEntry {
	var results []LogEntry
	for _, e := range lc.Entries() {
		if (level == "" || strings.EqualFold(e.Level, level)) &&
			strings.Contains(e.Message, msgSubstring) {
			results = append(results, e)
		}
	}
	return results
}

// HasError returns true if any ERROR level entries were captured.
func (lc *LogCapture) HasError() bool {
	return len(lc.Find("error", "")) > 0
}

type lockedWriter struct{ lc *LogCapture }

func (w lockedWriter) Write(p []byte) (int, error) {
	w.lc.mu.Lock()
	defer w.lc.mu.Unlock()
	return w.lc.buffer.Write(p)
}
