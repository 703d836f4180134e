package vcs

import "strings"

var arrows = []string{" => ", " -> "}

// SplitRenamePath decodes a path that may encode a move, returning the old
// and new full paths. Three shapes are tried in order: the brace form
// "prefix/{old => new}/suffix", the flat form "old/path => new/path", and
// plain paths, which map to themselves. Both git and jj emit arrow-encoded
// paths in some listings, so this runs on every path before content lookup.
func SplitRenamePath(path string) (string, string) {
	if l := strings.IndexByte(path, '{'); l >= 0 {
		if r := strings.IndexByte(path[l:], '}'); r >= 0 {
			if oldPart, newPart, ok := splitArrow(path[l+1 : l+r]); ok {
				prefix := path[:l]
				suffix := path[l+r+1:]
				return prefix + oldPart + suffix, prefix + newPart + suffix
			}
		}
	}

	if oldPath, newPath, ok := splitArrow(path); ok {
		return oldPath, newPath
	}

	return path, path
}

func splitArrow(s string) (string, string, bool) {
	for _, arrow := range arrows {
		if !strings.Contains(s, arrow) {
			continue
		}

		parts := strings.SplitN(s, arrow, 2)
		oldPart := strings.TrimSpace(parts[0])
		newPart := strings.TrimSpace(parts[1])
		if oldPart == "" || newPart == "" {
			return "", "", false
		}

		return oldPart, newPart, true
	}

	return "", "", false
}

// SplitLines splits command output into lines the way the aligner expects:
// no trailing empty line, and no lines at all for empty content.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}
