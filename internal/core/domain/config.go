// Package domain contains the pure core types for rlink: the parsed R
// configuration, linker-flag extraction and directive rendering.
package domain

import "strings"

// CommentMarker terminates the structured section of an R configuration dump.
// `R CMD config --all` appends free-form commentary after the KEY=VALUE block,
// and that commentary must never be parsed as data.
const CommentMarker = "##"

// ConfigVariables holds key/value pairs parsed from `R CMD config --all`.
type ConfigVariables struct {
	values map[string]string
}

// ParseConfig builds a ConfigVariables from raw subcommand output.
//
// Parsing is lenient and line-oriented: it stops entirely at the first line
// beginning with CommentMarker, and keeps only lines that split on "=" into
// exactly two non-empty parts after trimming. Everything else (blank lines,
// lines without "=", lines with more than one "=") is skipped. On duplicate
// keys the last occurrence wins.
func ParseConfig(text string) *ConfigVariables {
	values := make(map[string]string)
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, CommentMarker) {
			break
		}
		parts := strings.Split(line, "=")
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if key == "" || value == "" {
			continue
		}
		values[key] = value
	}
	return &ConfigVariables{values: values}
}

// Get returns the value for key, or the empty string when the key is absent.
// A missing key is not an error: it simply contributes no linker flags.
func (c *ConfigVariables) Get(key string) string {
	return c.values[key]
}

// Len returns the number of parsed variables.
func (c *ConfigVariables) Len() int {
	return len(c.values)
}
