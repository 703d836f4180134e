package linediff

import (
	"time"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

type Diff struct {
	Type  Operation
	Lines int
}

type Operation int8

const (
	DiffDelete Operation = Operation(diffmatchpatch.DiffDelete)
	DiffInsert Operation = Operation(diffmatchpatch.DiffInsert)
	DiffEqual  Operation = Operation(diffmatchpatch.DiffEqual)
)

// Do computes a line-level diff between two files, already split into lines,
// returning run lengths per operation instead of the joined text.
func Do(src, dst []string) []Diff {
	return DoWithTimeout(src, dst, time.Minute)
}

func DoWithTimeout(src, dst []string, timeout time.Duration) []Diff {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = timeout
	wSrc, wDst := linesToIndexes(src, dst)
	dmpd := dmp.DiffMainRunes(wSrc, wDst, false)
	diffs := indexesToDiff(dmpd)
	return diffs
}

func indexesToDiff(diffs []diffmatchpatch.Diff) []Diff {
	hydrated := make([]Diff, 0, len(diffs))
	for _, aDiff := range diffs {
		hydrated = append(hydrated, Diff{
			Type:  Operation(aDiff.Type),
			Lines: utf8.RuneCountInString(aDiff.Text),
		})
	}
	return hydrated
}

func linesToIndexes(src, dst []string) ([]rune, []rune) {
	lineToIndex := make(map[string]int)
	indexes1 := toIndexes(src, lineToIndex)
	indexes2 := toIndexes(dst, lineToIndex)
	return indexes1, indexes2
}

func toIndexes(lines []string, lineToIndex map[string]int) []rune {
	result := make([]rune, len(lines))
	for i, line := range lines {
		lineValue, ok := lineToIndex[line]

		if !ok {
			lineValue = len(lineToIndex)
			lineToIndex[line] = lineValue
		}

		result[i] = rune(lineValue)
	}
	return result
}
