package diff

import (
	"github.com/hashicorp/go-set/v2"
	"github.com/samber/lo"

	"github.com/clabby/difftastic.nvim/lib/align"
	"github.com/clabby/difftastic.nvim/lib/difft"
)

// reconcile merges the separate rename query into the assembled list. A
// renamed file shows up as created-with-history, and the matching phantom
// delete of its old path is dropped: some backends report a move as an
// add+delete pair instead of a single rename record.
func reconcile(files []*align.DisplayFile, renames map[string]string) []*align.DisplayFile {
	if len(renames) == 0 {
		return files
	}

	oldPaths := set.New[string](len(renames))
	for _, oldPath := range renames {
		oldPaths.Insert(oldPath)
	}

	for _, file := range files {
		if oldPath, ok := renames[file.Path]; ok {
			file.MovedFrom = oldPath
			file.Status = difft.Created
		}
	}

	return lo.Filter(files, func(file *align.DisplayFile, _ int) bool {
		return file.Status != difft.Deleted || !oldPaths.Contains(file.Path)
	})
}
