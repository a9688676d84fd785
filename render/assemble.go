package render

import (
	"fmt"
	"strings"

	"github.com/htmldown/htmldown"
)

// refTable collects link destinations for referenced link style,
// numbered in first-use order. Destinations are deduplicated by URL;
// the title from the first registration sticks.
type refTable struct {
	ids  map[string]int
	refs []reference
}

type reference struct {
	url   string
	title string
}

func newRefTable() *refTable {
	return &refTable{ids: map[string]int{}}
}

// add registers a destination and returns its 1-based reference id.
func (t *refTable) add(url, title string) int {
	if id, ok := t.ids[url]; ok {
		return id
	}
	t.refs = append(t.refs, reference{url: url, title: title})
	id := len(t.refs)
	t.ids[url] = id
	return id
}

// assemble normalizes the rendered body and, for referenced link style,
// appends the reference definitions.
func assemble(body string, refs *refTable, opts *htmldown.Options) string {
	out := normalizeBlocks(body)
	if opts.LinkStyle != htmldown.LinkReferenced || len(refs.refs) == 0 {
		return out
	}
	var sb strings.Builder
	sb.WriteString(out)
	if out != "" {
		sb.WriteString("\n\n")
	}
	for i, ref := range refs.refs {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if ref.title != "" {
			fmt.Fprintf(&sb, "[%d]: %s \"%s\"", i+1, ref.url, ref.title)
		} else {
			fmt.Fprintf(&sb, "[%d]: %s", i+1, ref.url)
		}
	}
	return sb.String()
}

// normalizeBlocks trims the output to canonical block spacing: no
// leading or trailing blank lines, runs of blank lines collapsed to
// one, and trailing whitespace stripped from each line. Lines inside
// fenced code blocks are left untouched.
func normalizeBlocks(s string) string {
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	inFence := false
	fence := ""
	blank := false

	for _, line := range lines {
		if inFence {
			out = append(out, line)
			if isFenceClose(line, fence) {
				inFence = false
			}
			continue
		}
		trimmed := strings.TrimRight(line, " \t")
		if open := fenceOpen(trimmed); open != "" {
			inFence = true
			fence = open
			blank = false
			out = append(out, trimmed)
			continue
		}
		if trimmed == "" {
			blank = true
			continue
		}
		if blank && len(out) > 0 {
			out = append(out, "")
		}
		blank = false
		out = append(out, trimmed)
	}
	return strings.Join(out, "\n")
}

// fenceOpen reports the fence marker opening a code block on this line,
// or "" when the line opens none.
func fenceOpen(line string) string {
	t := strings.TrimLeft(line, " ")
	var c byte
	switch {
	case strings.HasPrefix(t, "```"):
		c = '`'
	case strings.HasPrefix(t, "~~~"):
		c = '~'
	default:
		return ""
	}
	n := 0
	for n < len(t) && t[n] == c {
		n++
	}
	return t[:n]
}

// isFenceClose reports whether line closes a fence opened with marker.
func isFenceClose(line, marker string) bool {
	t := strings.TrimRight(strings.TrimLeft(line, " "), " \t")
	if len(t) < len(marker) || t[0] != marker[0] {
		return false
	}
	for i := 0; i < len(t); i++ {
		if t[i] != marker[0] {
			return false
		}
	}
	return true
}
