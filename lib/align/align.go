package align

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
	"github.com/samber/lo"

	"github.com/clabby/difftastic.nvim/lib/difft"
	"github.com/clabby/difftastic.nvim/lib/linediff"
	"github.com/clabby/difftastic.nvim/lib/utils"
)

// ProcessFile pairs the old and new content of one file into side-by-side
// rows. When neither side's content is available the rows are reconstructed
// from the difftastic chunks alone, which only cover changed lines.
func ProcessFile(file *difft.File, oldLines, newLines []string, stats *Stats) *DisplayFile {
	result := &DisplayFile{
		Path:     file.Path,
		Language: language(file, oldLines, newLines),
		Status:   file.Status,
		Stats:    stats,
	}

	if len(oldLines) == 0 && len(newLines) == 0 {
		result.Rows = rowsFromChunks(file)
	} else {
		result.Rows = alignLines(oldLines, newLines)
	}

	return result
}

func language(file *difft.File, oldLines, newLines []string) string {
	if file.Language != "" && file.Language != "Text" {
		return file.Language
	}

	sample := newLines
	if len(sample) == 0 {
		sample = oldLines
	}

	content := strings.Join(utils.Take(sample, 100), "\n")
	if lang := enry.GetLanguage(filepath.Base(file.Path), []byte(content)); lang != enry.OtherLanguage {
		return lang
	}

	return file.Language
}

func alignLines(oldLines, newLines []string) []Row {
	diffs := linediff.Do(oldLines, newLines)

	rows := make([]Row, 0, utils.Max(len(oldLines), len(newLines)))
	oi, ni := 0, 0

	for i := 0; i < len(diffs); i++ {
		d := diffs[i]

		switch d.Type {
		case linediff.DiffEqual:
			for j := 0; j < d.Lines; j++ {
				rows = append(rows, Row{Kind: Context, Left: cell(oldLines, oi), Right: cell(newLines, ni)})
				oi++
				ni++
			}

		case linediff.DiffDelete:
			removed := d.Lines
			inserted := 0
			if i+1 < len(diffs) && diffs[i+1].Type == linediff.DiffInsert {
				inserted = diffs[i+1].Lines
				i++
			}

			// Pair a delete run with the insert run that replaces it, so a
			// changed region renders as aligned left/right cells.
			for j := 0; j < utils.Max(removed, inserted); j++ {
				row := Row{Kind: Changed}
				if j < removed {
					row.Left = cell(oldLines, oi)
					oi++
				}
				if j < inserted {
					row.Right = cell(newLines, ni)
					ni++
				}
				rows = append(rows, kindFromSides(row))
			}

		case linediff.DiffInsert:
			for j := 0; j < d.Lines; j++ {
				rows = append(rows, Row{Kind: Added, Right: cell(newLines, ni)})
				ni++
			}
		}
	}

	return rows
}

func rowsFromChunks(file *difft.File) []Row {
	var rows []Row

	for _, chunk := range file.Chunks {
		for _, line := range chunk {
			row := Row{Kind: Changed}
			if line.Lhs != nil {
				row.Left = &Cell{LineNumber: line.Lhs.LineNumber + 1, Content: sideContent(line.Lhs)}
			}
			if line.Rhs != nil {
				row.Right = &Cell{LineNumber: line.Rhs.LineNumber + 1, Content: sideContent(line.Rhs)}
			}
			if !hasChanges(line) {
				row.Kind = Context
			}
			rows = append(rows, kindFromSides(row))
		}
	}

	return rows
}

func kindFromSides(row Row) Row {
	if row.Left == nil && row.Right != nil {
		row.Kind = Added
	} else if row.Right == nil && row.Left != nil {
		row.Kind = Removed
	}
	return row
}

func hasChanges(line difft.ChunkLine) bool {
	return (line.Lhs != nil && len(line.Lhs.Changes) > 0) ||
		(line.Rhs != nil && len(line.Rhs.Changes) > 0)
}

func sideContent(side *difft.Side) string {
	return strings.Join(lo.Map(side.Changes, func(c difft.Change, _ int) string {
		return c.Content
	}), "")
}

func cell(lines []string, i int) *Cell {
	if i >= len(lines) {
		return nil
	}
	return &Cell{LineNumber: i + 1, Content: lines[i]}
}
