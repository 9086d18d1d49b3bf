package config

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// LoadRoster reads an ordered club list from a newline-delimited file. Blank
// lines and lines starting with '#' are skipped. The file's order is the
// section order used during extraction.
func LoadRoster(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("read roster %s: content is not valid UTF-8", path)
	}

	var roster []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		roster = append(roster, line)
	}
	if len(roster) == 0 {
		return nil, fmt.Errorf("roster %s: no clubs found", path)
	}
	return roster, nil
}
