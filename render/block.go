package render

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"

	"github.com/htmldown/htmldown"
)

// skipTags render nothing at all: no output, no passthrough. Covers form
// machinery, embedded media, and document metadata the parser keeps in
// the tree.
var skipTags = map[string]bool{
	"script": true, "style": true, "noscript": true, "template": true,
	"head": true, "meta": true, "link": true, "base": true,
	"iframe": true, "embed": true, "object": true, "canvas": true,
	"form": true, "input": true, "button": true, "select": true,
	"option": true, "optgroup": true, "textarea": true, "label": true,
	"fieldset": true, "legend": true, "datalist": true, "output": true,
	"video": true, "audio": true, "source": true, "track": true,
	"map": true, "area": true,
}

// passthroughTags keep their HTML form because GFM has no equivalent.
var passthroughTags = map[string]bool{
	"kbd": true, "mark": true, "abbr": true, "samp": true, "var": true,
	"sub": true, "sup": true,
}

// renderNode dispatches one node to its rendering rule. Unrecognized
// elements are linearized: their children render as if the wrapper were
// not there.
func (r *renderer) renderNode(n *html.Node) string {
	switch n.Type {
	case html.TextNode:
		return r.renderText(n)
	case html.ElementNode:
		// fall through to tag dispatch
	default:
		return ""
	}

	if m := r.marks[n]; m.skip {
		return r.renderIncluded(n)
	}

	switch n.Data {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return r.renderHeading(n, int(n.Data[1]-'0'))
	case "p":
		return r.renderParagraph(n)
	case "blockquote":
		return r.renderBlockquote(n)
	case "ul":
		return r.renderList(n, false)
	case "ol":
		return r.renderList(n, true)
	case "li":
		return r.renderListItem(n)
	case "pre":
		return r.renderPre(n)
	case "code":
		if r.stack.inCode() {
			return rawText(n)
		}
		return r.renderCodeSpan(n)
	case "table":
		return r.renderTable(n)
	case "hr":
		return "\n\n---\n\n"
	case "dl":
		return r.renderDefinitionList(n)
	case "dt":
		return strings.TrimSpace(r.renderChildren(n))
	case "dd":
		if content := strings.TrimSpace(r.renderChildren(n)); content != "" {
			return ": " + content
		}
		return ""
	case "details":
		return r.renderDetails(n)
	case "figure":
		return r.renderFigure(n)
	case "a":
		return r.renderLink(n)
	case "img":
		return r.renderImage(n)
	case "strong", "b":
		return r.renderEmphasis(n, "**")
	case "em", "i":
		return r.renderEmphasis(n, "*")
	case "del", "s", "strike":
		return r.renderEmphasis(n, "~~")
	case "br":
		return "\\\n"
	}

	if passthroughTags[n.Data] {
		return r.renderPassthrough(n)
	}
	if skipTags[n.Data] {
		return ""
	}
	return r.renderChildren(n)
}

// renderHeading emits an atx or setext heading. Setext only exists for
// levels 1 and 2; deeper levels fall back to atx even in setext mode.
// Empty headings render nothing.
func (r *renderer) renderHeading(n *html.Node, level int) string {
	content := r.inlineContent(n)
	if content == "" {
		return ""
	}
	if r.opts.HeadingStyle == htmldown.HeadingSetext && level <= 2 {
		underline := "="
		if level == 2 {
			underline = "-"
		}
		return "\n\n" + content + "\n" + strings.Repeat(underline, utf8.RuneCountInString(content)) + "\n\n"
	}
	return "\n\n" + strings.Repeat("#", level) + " " + content + "\n\n"
}

// renderParagraph surrounds non-empty inline content with blank lines.
// Whitespace-only paragraphs are dropped entirely.
func (r *renderer) renderParagraph(n *html.Node) string {
	content := strings.TrimSpace(r.renderChildren(n))
	if content == "" {
		return ""
	}
	return "\n\n" + content + "\n\n"
}

// renderBlockquote prefixes every rendered line of the subtree with "> ".
// Nesting accumulates naturally: the inner quote's output already carries
// its own prefixes when the outer quote adds another layer.
func (r *renderer) renderBlockquote(n *html.Node) string {
	r.stack.push(scope{kind: scopeBlockquote})
	content := r.renderChildren(n)
	r.stack.pop()

	content = strings.TrimSpace(normalizeBlocks(content))
	if content == "" {
		return ""
	}

	var sb strings.Builder
	for i, line := range strings.Split(content, "\n") {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if line == "" {
			sb.WriteByte('>')
		} else {
			sb.WriteString("> ")
			sb.WriteString(line)
		}
	}
	return "\n\n" + sb.String() + "\n\n"
}

// renderList pushes a List scope and renders the direct li children.
// Ordered lists honor the start attribute; the item counter lives in the
// scope frame so nested lists restart their own numbering.
func (r *renderer) renderList(n *html.Node, ordered bool) string {
	start := 1
	if ordered {
		if v, err := strconv.Atoi(strings.TrimSpace(attr(n, "start"))); err == nil && v >= 0 {
			start = v
		}
	}

	r.stack.push(scope{kind: scopeList, ordered: ordered, index: start - 1})
	var sb strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode || child.Data != "li" {
			continue
		}
		if r.marks[child].skip {
			sb.WriteString(r.renderIncluded(child))
			continue
		}
		sb.WriteString(r.renderListItem(child))
	}
	r.stack.pop()

	content := strings.TrimRight(sb.String(), "\n")
	if content == "" {
		return ""
	}
	return "\n\n" + content + "\n\n"
}

// renderListItem renders one li: marker, first line, and continuation
// lines indented to align under the content. Nested list output arrives
// as continuation lines and picks up one indent level per ancestor this
// way. Empty items render nothing but still consume their index.
func (r *renderer) renderListItem(li *html.Node) string {
	frame := r.stack.topList()

	marker := string(r.opts.BulletMarker) + " "
	if frame != nil {
		frame.index++
		if frame.ordered {
			marker = strconv.Itoa(frame.index) + ". "
		}
	}

	content := strings.TrimSpace(normalizeBlocks(r.renderChildren(li)))
	if content == "" {
		return ""
	}

	pad := strings.Repeat(" ", len(marker))
	lines := strings.Split(content, "\n")
	for i := 1; i < len(lines); i++ {
		if lines[i] != "" {
			lines[i] = pad + lines[i]
		}
	}
	return marker + strings.Join(lines, "\n") + "\n"
}

// renderDefinitionList emits dt terms on their own lines with ": "
// definitions under them, one line per dd, blank line between groups.
func (r *renderer) renderDefinitionList(n *html.Node) string {
	var sb strings.Builder
	lastWasTerm := false

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode || r.marks[child].skip {
			continue
		}
		switch child.Data {
		case "dt":
			content := strings.TrimSpace(r.renderChildren(child))
			if content == "" {
				continue
			}
			if !lastWasTerm && sb.Len() > 0 {
				sb.WriteByte('\n')
			}
			sb.WriteString(content)
			sb.WriteByte('\n')
			lastWasTerm = true
		case "dd":
			content := strings.TrimSpace(normalizeBlocks(r.renderChildren(child)))
			if content == "" {
				continue
			}
			for i, line := range strings.Split(content, "\n") {
				if i == 0 {
					sb.WriteString(": ")
				} else {
					sb.WriteString("\n  ")
				}
				sb.WriteString(line)
			}
			sb.WriteByte('\n')
			lastWasTerm = false
		}
	}

	if sb.Len() == 0 {
		return ""
	}
	return "\n\n" + strings.TrimRight(sb.String(), "\n") + "\n\n"
}

// renderDetails keeps the details element as HTML passthrough, since GFM
// has no collapsible syntax. The summary stays as the visible label and
// the body renders as Markdown separated by blank lines so it still
// formats when the HTML block is interpreted.
func (r *renderer) renderDetails(n *html.Node) string {
	summary := ""
	var body strings.Builder

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode && child.Data == "summary" {
			if summary == "" {
				summary = r.inlineContent(child)
			}
			continue
		}
		body.WriteString(r.renderNode(child))
	}

	content := strings.TrimSpace(normalizeBlocks(body.String()))
	if summary == "" && content == "" {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n\n<details>\n")
	if summary != "" {
		sb.WriteString("<summary>")
		sb.WriteString(summary)
		sb.WriteString("</summary>\n")
	}
	if content != "" {
		sb.WriteByte('\n')
		sb.WriteString(content)
		sb.WriteByte('\n')
	}
	sb.WriteString("\n</details>\n\n")
	return sb.String()
}

// renderFigure emits the contained image followed by the figcaption text.
// The image may sit directly in the figure or inside a picture element.
// A figure without an image linearizes like any unknown wrapper.
func (r *renderer) renderFigure(n *html.Node) string {
	var img *html.Node
	caption := ""

	var findImg func(*html.Node) *html.Node
	findImg = func(n *html.Node) *html.Node {
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if child.Type != html.ElementNode {
				continue
			}
			if child.Data == "img" {
				return child
			}
			if child.Data == "picture" {
				if found := findImg(child); found != nil {
					return found
				}
			}
		}
		return nil
	}
	img = findImg(n)

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode && child.Data == "figcaption" {
			caption = r.inlineContent(child)
			break
		}
	}

	if img == nil {
		return r.renderChildren(n)
	}
	md := r.renderImage(img)
	if md == "" {
		return r.renderChildren(n)
	}
	if caption != "" {
		md += "\n*" + caption + "*"
	}
	return "\n\n" + md + "\n\n"
}
