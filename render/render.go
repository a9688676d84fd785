// Package render implements the HTML to Markdown conversion engine: a
// single-pass, context-stacked tree walk over the node tree produced by
// golang.org/x/net/html, with cascadia-backed selector filtering.
package render

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/htmldown/htmldown"
)

// Ensure Converter implements htmldown.Converter at compile time.
var _ htmldown.Converter = (*Converter)(nil)

// Converter converts HTML to GitHub-Flavored Markdown. A Converter is
// immutable after construction and safe for concurrent use; all per-call
// state lives in a renderer created inside Convert.
type Converter struct {
	opts      htmldown.Options
	selectors *selectorSet
}

// New creates a Converter for the given options.
// Returns EINVALID if an option falls outside its recognized values.
func New(opts htmldown.Options) (*Converter, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Converter{
		opts:      opts,
		selectors: compileSelectors(opts.ExcludeSelectors, opts.IncludeSelectors),
	}, nil
}

// Convert transforms HTML content into GitHub-Flavored Markdown.
func (c *Converter) Convert(input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", nil
	}

	doc, err := html.Parse(strings.NewReader(input))
	if err != nil {
		// html.Parse recovers from malformed markup; only a failing
		// reader reaches this path, and strings.Reader cannot fail.
		return "", htmldown.Errorf(htmldown.EINTERNAL, "parse html: %v", err)
	}

	r := &renderer{
		opts:  &c.opts,
		marks: markTree(doc, c.selectors),
		refs:  newRefTable(),
	}

	out := r.renderChildren(contentRoot(doc))
	return assemble(out, r.refs, &c.opts), nil
}

// contentRoot returns the body element of a parsed document, or the
// document node itself when the parser produced no body.
func contentRoot(doc *html.Node) *html.Node {
	var body *html.Node
	var find func(*html.Node)
	find = func(n *html.Node) {
		if body != nil {
			return
		}
		if n.Type == html.ElementNode && n.Data == "body" {
			body = n
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			find(child)
		}
	}
	find(doc)
	if body == nil {
		return doc
	}
	return body
}

// renderer holds the mutable state of one conversion: the scope stack, the
// exclusion marks and the link reference table. It is created fresh per
// Convert call and never shared.
type renderer struct {
	opts  *htmldown.Options
	marks map[*html.Node]nodeMark
	stack scopeStack
	refs  *refTable
}
