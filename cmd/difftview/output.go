package main

import (
	"encoding/json"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/gertd/go-pluralize"

	"github.com/clabby/difftastic.nvim/lib/diff"
)

var plural = pluralize.NewClient()

// printResult writes the JSON result to stdout, where the host binding reads
// it, and a human summary to the console on stderr.
func printResult(ctx *context, result *diff.Result) error {
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(out))

	additions, deletions := 0, 0
	for _, file := range result.Files {
		if file.Stats != nil {
			additions += file.Stats.Additions
			deletions += file.Stats.Deletions
		}
	}

	ctx.console.Printf("%v changed, %v insertions(+), %v deletions(-)\n",
		plural.Pluralize("file", len(result.Files), true),
		humanize.Comma(int64(additions)),
		humanize.Comma(int64(deletions)))

	return nil
}
