package rag

import (
	"encoding/json"
	"strings"
)

// BuildContext renders retrieval hits into a prompt-ready string: one
// "{name}: {description}" line per result, newline-joined, falling back
// to the metadata's JSON form when no description field is present. The
// result is cut hard at the configured character budget — no attempt is
// made to break at a sentence or line boundary.
func (p *Pipeline[T]) BuildContext(results []Retrieved[T]) string {
	lines := make([]string, 0, len(results))
	for _, result := range results {
		name := result.Document.Metadata["name"].Text()
		if name == "" {
			name = result.ID
		}

		description := result.Document.Metadata["description"].Text()
		if description == "" {
			if raw, err := json.Marshal(result.Document.Metadata); err == nil {
				description = string(raw)
			}
		}
		lines = append(lines, name+": "+description)
	}

	context := strings.Join(lines, "\n")
	if len(context) > p.opts.MaxContextLength {
		context = context[:p.opts.MaxContextLength]
	}
	return context
}
