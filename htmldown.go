// Package htmldown converts parsed HTML documents into GitHub-Flavored
// Markdown. It preserves document structure (headings, lists, tables, code,
// quotes, emphasis) and degrades gracefully where no Markdown equivalent
// exists, making the output suitable for LLM context windows and plain-text
// documentation pipelines.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g., render/, goquery/, slog/).
package htmldown

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into GitHub-Flavored Markdown.
	// It is total over any input the HTML5 parser accepts: malformed
	// markup is recovered by the parser, never surfaced as an error.
	Convert(html string) (string, error)
}

// Scoper narrows an HTML document to the subtree matching a CSS selector
// before conversion. Used to strip page chrome when only one container
// holds the content of interest.
type Scoper interface {
	// Scope returns the HTML of the subtrees matching selector, in
	// document order. Returns ENOTFOUND if nothing matches.
	Scope(html, selector string) (string, error)
}
