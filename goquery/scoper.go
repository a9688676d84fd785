// Package goquery provides document scoping backed by goquery selections.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"github.com/htmldown/htmldown"
)

// Ensure Scoper implements htmldown.Scoper at compile time.
var _ htmldown.Scoper = (*Scoper)(nil)

// Scoper narrows a document to the parts matching a CSS selector, so
// that only that region is converted. It is stateless and safe for
// concurrent use.
type Scoper struct{}

// NewScoper creates a new Scoper.
func NewScoper() *Scoper {
	return &Scoper{}
}

// Scope returns the outer HTML of every element matching selector, in
// document order.
// Returns EINVALID if the selector does not parse and ENOTFOUND if
// nothing matches.
func (s *Scoper) Scope(html, selector string) (string, error) {
	matcher, err := cascadia.Compile(selector)
	if err != nil {
		return "", htmldown.Errorf(htmldown.EINVALID, "invalid selector %q: %v", selector, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", htmldown.Errorf(htmldown.EINTERNAL, "parse html: %v", err)
	}

	sel := doc.FindMatcher(matcher)
	if sel.Length() == 0 {
		return "", htmldown.Errorf(htmldown.ENOTFOUND, "no element matches selector %q", selector)
	}

	var sb strings.Builder
	var outerr error
	sel.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		out, err := goquery.OuterHtml(s)
		if err != nil {
			outerr = htmldown.Errorf(htmldown.EINTERNAL, "render selection: %v", err)
			return false
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(out)
		return true
	})
	if outerr != nil {
		return "", outerr
	}
	return sb.String(), nil
}
