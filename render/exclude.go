package render

import (
	"strings"

	"golang.org/x/net/html"
)

// nodeMark is the exclusion-pass annotation for one element. Marks are
// sparse: only elements that matched a selector carry one. No node is
// ever deleted from the tree.
type nodeMark struct {
	// skip drops the subtree from rendering.
	skip bool
	// keep forces the node back into the output, overriding both its own
	// exclude match and any excluded ancestor. Include always wins.
	keep bool
}

// markTree walks the tree once, depth first, and annotates every element
// that matched an exclude or include selector. Exclusion of descendants is
// resolved lazily at render time so that an included node nested under an
// excluded ancestor can still resurface.
func markTree(root *html.Node, selectors *selectorSet) map[*html.Node]nodeMark {
	if selectors.empty() {
		return nil
	}

	marks := make(map[*html.Node]nodeMark)
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			keep := selectors.matchesInclude(n)
			skip := !keep && selectors.matchesExclude(n)
			if keep || skip {
				marks[n] = nodeMark{skip: skip, keep: keep}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)
	return marks
}

// renderIncluded renders only the force-included islands inside an excluded
// subtree. Everything else under the subtree stays pruned.
func (r *renderer) renderIncluded(n *html.Node) string {
	var sb strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if r.marks[child].keep {
			sb.WriteString(r.renderNode(child))
			continue
		}
		sb.WriteString(r.renderIncluded(child))
	}
	return sb.String()
}
