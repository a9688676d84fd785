package render

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/htmldown/htmldown"
)

// renderChildren renders every child of n in document order and
// concatenates the results.
func (r *renderer) renderChildren(n *html.Node) string {
	var sb strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		sb.WriteString(r.renderNode(child))
	}
	return sb.String()
}

// renderText renders one text node. Entity decoding already happened in
// the parser. Escaping and whitespace collapsing are suppressed while a
// Code scope is active; the fence length carries the safety guarantee.
func (r *renderer) renderText(n *html.Node) string {
	if r.stack.inCode() {
		return n.Data
	}
	return escapeText(collapseWhitespace(n.Data))
}

// inlineContent renders the children of n as single-line inline Markdown:
// trimmed, with internal whitespace runs collapsed. Used for headings,
// link text, table cells and captions.
func (r *renderer) inlineContent(n *html.Node) string {
	return collapseWhitespace(strings.TrimSpace(r.renderChildren(n)))
}

// rawText returns the concatenated text of all descendant text nodes,
// without escaping.
func rawText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return sb.String()
}

// collapseWhitespace collapses every whitespace run (including newlines)
// to a single space.
func collapseWhitespace(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	space := false
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\f', '\v', ' ':
			space = true
		default:
			if space {
				sb.WriteByte(' ')
				space = false
			}
			sb.WriteRune(r)
		}
	}
	if space {
		sb.WriteByte(' ')
	}
	return sb.String()
}

// escapeText backslash-escapes Markdown-significant characters in literal
// text. Characters that only open a construct at a line start (#, +, -,
// ordered-list dots, ! before [) are escaped only in that position, so
// ordinary prose stays readable.
func escapeText(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case strings.IndexByte("\\`*_[]<>|", c) >= 0:
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case (c == '#' || c == '+' || c == '-') && leadingSpaceOnly(s, i):
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case c == '.' && leadingDigitsOnly(s, i):
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case c == '!' && i+1 < len(s) && s[i+1] == '[':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// leadingSpaceOnly reports whether everything before index i is spaces.
func leadingSpaceOnly(s string, i int) bool {
	for j := 0; j < i; j++ {
		if s[j] != ' ' {
			return false
		}
	}
	return true
}

// leadingDigitsOnly reports whether index i is preceded by at least one
// digit and nothing else, the shape that would start an ordered list.
func leadingDigitsOnly(s string, i int) bool {
	if i == 0 {
		return false
	}
	for j := 0; j < i; j++ {
		if s[j] < '0' || s[j] > '9' {
			return false
		}
	}
	return true
}

// escapeTitle escapes quotes and backslashes inside a link or image title.
func escapeTitle(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

// renderEmphasis wraps trimmed inline content in the given delimiter
// (**, *, ~~). Empty content renders nothing.
func (r *renderer) renderEmphasis(n *html.Node, delim string) string {
	content := strings.TrimSpace(r.renderChildren(n))
	if content == "" {
		return ""
	}
	return delim + content + delim
}

// renderCodeSpan renders an inline code span. The delimiter is one
// backtick longer than the longest embedded backtick run, and spans that
// start or end with a backtick get one space of padding.
func (r *renderer) renderCodeSpan(n *html.Node) string {
	code := collapseWhitespace(strings.TrimSpace(rawText(n)))
	if code == "" {
		return ""
	}
	delim := strings.Repeat("`", longestRun(code, '`')+1)
	pad := ""
	if strings.HasPrefix(code, "`") || strings.HasSuffix(code, "`") {
		pad = " "
	}
	return delim + pad + code + pad + delim
}

// renderLink renders an anchor element. Empty and bare-fragment hrefs
// collapse to their text. Links whose text duplicates the resolved URL or
// mailto address use the autolink form.
func (r *renderer) renderLink(n *html.Node) string {
	text := r.inlineContent(n)
	href := attr(n, "href")
	title, hasTitle := lookupAttr(n, "title")

	if href == "" || href == "#" {
		return text
	}

	resolved := resolveURL(r.opts.BaseURL, href)

	if !hasTitle {
		if email, ok := strings.CutPrefix(resolved, "mailto:"); ok && text == email {
			return "<" + email + ">"
		}
		if text == resolved {
			return "<" + resolved + ">"
		}
	}

	url := encodeURL(resolved)

	if r.opts.LinkStyle == htmldown.LinkReferenced {
		id := r.refs.add(url, title)
		return "[" + text + "][" + strconv.Itoa(id) + "]"
	}
	if hasTitle {
		return "[" + text + "](" + url + " \"" + escapeTitle(title) + "\")"
	}
	return "[" + text + "](" + url + ")"
}

// renderImage renders an img element. Images without src render nothing.
// Images always use inline form; the reference table holds links only.
func (r *renderer) renderImage(n *html.Node) string {
	src := attr(n, "src")
	if src == "" {
		return ""
	}
	url := encodeURL(resolveURL(r.opts.BaseURL, src))
	alt := collapseWhitespace(attr(n, "alt"))
	if title, ok := lookupAttr(n, "title"); ok {
		return "![" + alt + "](" + url + " \"" + escapeTitle(title) + "\")"
	}
	return "![" + alt + "](" + url + ")"
}

// renderPassthrough emits the element as verbatim HTML around its rendered
// inline content; used for tags with no Markdown equivalent.
func (r *renderer) renderPassthrough(n *html.Node) string {
	content := strings.TrimSpace(r.renderChildren(n))
	if content == "" {
		return ""
	}
	if n.Data == "abbr" {
		if title, ok := lookupAttr(n, "title"); ok {
			return `<abbr title="` + escapeAttr(title) + `">` + content + `</abbr>`
		}
	}
	return "<" + n.Data + ">" + content + "</" + n.Data + ">"
}

// escapeAttr escapes special characters in an HTML attribute value.
func escapeAttr(s string) string {
	replacer := strings.NewReplacer("&", "&amp;", `"`, "&quot;", "<", "&lt;", ">", "&gt;")
	return replacer.Replace(s)
}

// longestRun returns the length of the longest consecutive run of c in s.
func longestRun(s string, c byte) int {
	longest, run := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}
	return longest
}

// attr returns the value of the named attribute, or "".
func attr(n *html.Node, name string) string {
	v, _ := lookupAttr(n, name)
	return v
}

// lookupAttr returns the named attribute value and whether it was present.
// Attribute names match case-insensitively.
func lookupAttr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val, true
		}
	}
	return "", false
}
