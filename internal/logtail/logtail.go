package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Line is one entry of the satchel log with its parsed level.
type Line struct {
	Text  string
	Level logrus.Level
	// Parsed reports whether a level field was found.
	Parsed bool
}

// Tail returns at most maxLines entries from the end of the log at path.
// A missing file yields no lines and no error.
func Tail(path string, maxLines int) ([]Line, error) {
	if maxLines <= 0 || strings.TrimSpace(path) == "" {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count, next := 0, 0
	for scanner.Scan() {
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		ring[next] = text
		next = (next + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	start := 0
	if count == maxLines {
		start = next
	}
	lines := make([]Line, count)
	for i := range count {
		lines[i] = Parse(ring[(start+i)%maxLines])
	}
	return lines, nil
}

// Parse extracts the level from a logrus text or JSON line.
func Parse(text string) Line {
	line := Line{Text: text, Level: logrus.InfoLevel}
	if raw, ok := levelField(text); ok {
		if lvl, err := logrus.ParseLevel(raw); err == nil {
			line.Level = lvl
			line.Parsed = true
		}
	}
	return line
}

func levelField(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "{") {
		var entry struct {
			Level string `json:"level"`
		}
		if err := json.Unmarshal([]byte(trimmed), &entry); err != nil || entry.Level == "" {
			return "", false
		}
		return entry.Level, true
	}
	for _, field := range strings.Fields(trimmed) {
		if value, ok := strings.CutPrefix(field, "level="); ok {
			return strings.Trim(value, `"`), true
		}
	}
	return "", false
}
