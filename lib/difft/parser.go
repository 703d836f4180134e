package difft

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Parse decodes difftastic JSON output into the file list.
//
// git invokes the external diff tool once per file, so the captured output is
// a sequence of JSON documents; jj materializes both trees and invokes it
// once, producing a single array. Both shapes are accepted. Anything else is
// a fatal parse error: without the file list there is nothing to display.
func Parse(raw string) ([]*File, error) {
	var files []*File

	dec := json.NewDecoder(strings.NewReader(raw))
	for {
		var doc json.RawMessage
		err := dec.Decode(&doc)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "malformed difftastic output")
		}

		batch, err := decode(doc)
		if err != nil {
			return nil, err
		}

		files = append(files, batch...)
	}

	return files, nil
}

func decode(doc json.RawMessage) ([]*File, error) {
	trimmed := bytes.TrimSpace(doc)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var batch []*File
		if err := json.Unmarshal(trimmed, &batch); err != nil {
			return nil, errors.Wrap(err, "malformed difftastic output")
		}
		return batch, nil
	}

	var file File
	if err := json.Unmarshal(trimmed, &file); err != nil {
		return nil, errors.Wrap(err, "malformed difftastic output")
	}
	return []*File{&file}, nil
}
