package htmldown

import (
	"strconv"
	"strings"
	"unicode"
)

// Heading is one entry in a Markdown document outline.
type Heading struct {
	Level  int    `json:"level"`
	Text   string `json:"text"`
	Anchor string `json:"anchor"`
}

// Outline scans Markdown and returns its atx headings in document order,
// with GitHub-style anchors. Duplicate anchors get numeric suffixes.
// Fenced code blocks are ignored so a # inside code is not a heading.
func Outline(markdown string) []Heading {
	if markdown == "" {
		return nil
	}

	var headings []Heading
	anchorCounts := make(map[string]int)
	inFence := false
	fenceMarker := ""

	for _, line := range strings.SplitAfter(markdown, "\n") {
		line = strings.TrimRight(line, "\n")
		trimmed := strings.TrimSpace(line)

		if marker := fencePrefix(trimmed); marker != "" {
			if !inFence {
				inFence = true
				fenceMarker = marker
			} else if strings.HasPrefix(trimmed, fenceMarker) {
				inFence = false
			}
			continue
		}
		if inFence {
			continue
		}

		level := 0
		for level < len(line) && level < 7 && line[level] == '#' {
			level++
		}
		if level == 0 || level > 6 || level >= len(line) || line[level] != ' ' {
			continue
		}

		text := strings.TrimSpace(line[level+1:])
		if text == "" {
			continue
		}

		anchor := slugify(text)
		if n := anchorCounts[anchor]; n > 0 {
			anchorCounts[anchor] = n + 1
			anchor = anchor + "-" + strconv.Itoa(n)
		} else {
			anchorCounts[anchor] = 1
		}

		headings = append(headings, Heading{Level: level, Text: text, Anchor: anchor})
	}

	return headings
}

// fencePrefix returns the leading fence run ("```" or "~~~") if the line
// opens or closes a fenced code block, or "" otherwise.
func fencePrefix(line string) string {
	for _, marker := range []string{"```", "~~~"} {
		if strings.HasPrefix(line, marker) {
			return marker
		}
	}
	return ""
}

// slugify builds a GitHub-style anchor: lowercase, alphanumerics kept,
// spaces and hyphens collapsed to single hyphens, everything else dropped.
func slugify(text string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
			prevHyphen = false
		case unicode.IsSpace(r) || r == '-':
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}
