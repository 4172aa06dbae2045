package domain

import "strings"

// Linker flag prefixes as they appear in R's configuration values.
const (
	searchPathPrefix = "-L"
	libraryPrefix    = "-l"
)

// LinkFlags holds the linker inputs extracted from configuration values:
// library search paths (from -L tokens) and library names (from -l tokens),
// in the order they were scanned.
type LinkFlags struct {
	SearchPaths []string
	Libraries   []string
}

// ExtractLinkFlags scans the whitespace-separated tokens of each value and
// buckets them by prefix: "-L" tokens become search paths, "-l" tokens become
// library names, and every other token (optimization flags, warning flags,
// anything else the configuration mixes in) is discarded.
func ExtractLinkFlags(values []string) LinkFlags {
	var flags LinkFlags
	for _, value := range values {
		for _, token := range strings.Fields(value) {
			switch {
			case strings.HasPrefix(token, searchPathPrefix):
				flags.SearchPaths = append(flags.SearchPaths, strings.TrimPrefix(token, searchPathPrefix))
			case strings.HasPrefix(token, libraryPrefix):
				flags.Libraries = append(flags.Libraries, strings.TrimPrefix(token, libraryPrefix))
			}
		}
	}
	return flags
}
