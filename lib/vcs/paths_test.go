package vcs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitRenamePath(t *testing.T) {
	t.Parallel()

	cases := []struct {
		path    string
		oldPath string
		newPath string
	}{
		{"a/{old => new}/b", "a/old/b", "a/new/b"},
		{"a/{old -> new}/b", "a/old/b", "a/new/b"},
		{"old.txt => new.txt", "old.txt", "new.txt"},
		{"old.txt -> new.txt", "old.txt", "new.txt"},
		{"plain.txt", "plain.txt", "plain.txt"},
		{"src/{lib.rs => main.rs}", "src/lib.rs", "src/main.rs"},
	}

	for _, c := range cases {
		oldPath, newPath := SplitRenamePath(c.path)
		assert.Equal(t, c.oldPath, oldPath, c.path)
		assert.Equal(t, c.newPath, newPath, c.path)
	}
}

func TestSplitRenamePathIsIdempotent(t *testing.T) {
	t.Parallel()

	_, newPath := SplitRenamePath("a/{old => new}/b")
	oldAgain, newAgain := SplitRenamePath(newPath)

	assert.Equal(t, "a/new/b", oldAgain)
	assert.Equal(t, "a/new/b", newAgain)
}

func TestSplitLines(t *testing.T) {
	t.Parallel()

	assert.Nil(t, SplitLines(""))
	assert.Equal(t, []string{"single"}, SplitLines("single"))
	assert.Equal(t, []string{"line1", "line2", "line3"}, SplitLines("line1\nline2\nline3\n"))
	assert.Equal(t, []string{""}, SplitLines("\n"))
}
