package render

import (
	"strings"

	"golang.org/x/net/html"
)

// knownLanguages recognizes bare language-name classes as a fallback when
// no prefixed class (language-*, lang-*, ...) is present.
var knownLanguages = map[string]bool{
	"bash": true, "c": true, "cpp": true, "csharp": true, "css": true,
	"dart": true, "diff": true, "go": true, "graphql": true, "html": true,
	"java": true, "javascript": true, "js": true, "json": true,
	"kotlin": true, "lua": true, "makefile": true, "markdown": true,
	"objectivec": true, "perl": true, "php": true, "plaintext": true,
	"python": true, "r": true, "ruby": true, "rust": true, "scala": true,
	"shell": true, "sql": true, "swift": true, "typescript": true,
	"ts": true, "xml": true, "yaml": true, "yml": true, "zig": true,
}

// hljsTokens are highlight.js syntax-category class suffixes that must not
// be mistaken for language labels (hljs-keyword is a token class,
// hljs-typescript a language).
var hljsTokens = map[string]bool{
	"keyword": true, "string": true, "number": true, "comment": true,
	"function": true, "class": true, "built_in": true, "built-in": true,
	"literal": true, "title": true, "attr": true, "symbol": true,
	"meta": true, "params": true, "operator": true, "punctuation": true,
	"variable": true, "regexp": true, "subst": true, "doctag": true,
	"selector-tag": true, "selector-class": true, "selector-id": true,
	"type": true, "name": true, "property": true,
}

// renderPre emits a fenced code block. Content is collected literally
// under a Code scope, line-number gutters are skipped, and the fence is
// one character longer than the longest embedded fence run (minimum 3).
func (r *renderer) renderPre(n *html.Node) string {
	lang := detectLanguage(n)

	r.stack.push(scope{kind: scopeCode, language: lang})
	code := collectCode(n)
	r.stack.pop()

	code = strings.TrimRight(code, "\n")
	if strings.TrimSpace(code) == "" {
		return ""
	}

	fence := strings.Repeat(string(r.opts.CodeFence), fenceLength(code, byte(r.opts.CodeFence)))
	return "\n\n" + fence + lang + "\n" + code + "\n" + fence + "\n\n"
}

// fenceLength returns the fence size needed to contain code: the longest
// run of the fence character plus one, never less than three.
func fenceLength(code string, fenceChar byte) int {
	return max(3, longestRun(code, fenceChar)+1)
}

// collectCode gathers the literal text under a pre element, skipping
// elements recognized as line-number gutters and turning br into
// newlines.
func collectCode(pre *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			sb.WriteString(n.Data)
			return
		case html.ElementNode:
			if n.Data == "br" {
				sb.WriteByte('\n')
				return
			}
			if isGutter(attr(n, "class")) {
				return
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	for child := pre.FirstChild; child != nil; child = child.NextSibling {
		walk(child)
	}
	return sb.String()
}

// isGutter recognizes line-number gutter elements by class substring,
// case-insensitively.
func isGutter(class string) bool {
	if class == "" {
		return false
	}
	class = strings.ToLower(class)
	for _, marker := range []string{"gutter", "line-number", "lineno", "linenumber"} {
		if strings.Contains(class, marker) {
			return true
		}
	}
	return false
}

// detectLanguage resolves the code block language from the pre element's
// class, then from a child code element's class.
func detectLanguage(pre *html.Node) string {
	if lang := languageFromClass(attr(pre, "class")); lang != "" {
		return lang
	}
	for child := pre.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode && child.Data == "code" {
			if lang := languageFromClass(attr(child, "class")); lang != "" {
				return lang
			}
		}
	}
	return ""
}

// languageFromClass scans a class list for a language label. Prefixed
// forms win in order (language-, lang-, highlight-, hljs- minus token
// categories), then a bare known language name.
func languageFromClass(class string) string {
	fields := strings.Fields(class)

	for _, f := range fields {
		if lang, ok := strings.CutPrefix(f, "language-"); ok {
			return lang
		}
	}
	for _, f := range fields {
		if lang, ok := strings.CutPrefix(f, "lang-"); ok {
			return lang
		}
	}
	for _, f := range fields {
		if lang, ok := strings.CutPrefix(f, "highlight-"); ok {
			return lang
		}
	}
	for _, f := range fields {
		if lang, ok := strings.CutPrefix(f, "hljs-"); ok && !hljsTokens[lang] {
			return lang
		}
	}
	for _, f := range fields {
		if lower := strings.ToLower(f); knownLanguages[lower] {
			return lower
		}
	}
	return ""
}
