package vcs

import (
	"strconv"
	"strings"
)

// parseNumstat reads "additions\tdeletions\tpath" lines. Binary files report
// "-" for both counts and are kept with zero counts so the path still
// resolves during stats lookup.
func parseNumstat(out string) FileStats {
	stats := make(FileStats)

	for _, line := range SplitLines(out) {
		parts := strings.Split(line, "\t")
		if len(parts) < 3 {
			continue
		}

		path := strings.TrimSpace(parts[2])
		if path == "" {
			continue
		}

		stats[path] = Stat{
			Additions: parseCount(parts[0]),
			Deletions: parseCount(parts[1]),
		}
	}

	return stats
}

func parseCount(v string) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0
	}
	return n
}
