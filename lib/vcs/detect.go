package vcs

import (
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/pkg/errors"
)

// Detect figures out which VCS tracks dir. A colocated repository (both .jj
// and .git) is reported as jj, since jj is the frontend there.
func Detect(dir string) (Kind, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Git, err
	}

	for d := abs; ; d = filepath.Dir(d) {
		if info, err := os.Stat(filepath.Join(d, ".jj")); err == nil && info.IsDir() {
			return Jj, nil
		}
		if filepath.Dir(d) == d {
			break
		}
	}

	if _, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{DetectDotGit: true}); err == nil {
		return Git, nil
	}

	return Git, errors.Errorf("no git or jj repository found at %v", dir)
}
