package render

import (
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// selectorSet holds the compiled exclude and include selectors. Selectors
// are compiled once per Converter and matched independently against every
// element during the exclusion pass.
type selectorSet struct {
	exclude []cascadia.SelectorGroup
	include []cascadia.SelectorGroup
}

// compileSelectors compiles both selector lists. A selector that fails to
// parse is dropped: an unrecognized form matches nothing rather than
// raising an error.
func compileSelectors(exclude, include []string) *selectorSet {
	return &selectorSet{
		exclude: compileAll(exclude),
		include: compileAll(include),
	}
}

func compileAll(selectors []string) []cascadia.SelectorGroup {
	compiled := make([]cascadia.SelectorGroup, 0, len(selectors))
	for _, s := range selectors {
		group, err := cascadia.ParseGroup(s)
		if err != nil {
			continue
		}
		compiled = append(compiled, group)
	}
	return compiled
}

func (s *selectorSet) matchesExclude(n *html.Node) bool {
	return matchesAny(s.exclude, n)
}

func (s *selectorSet) matchesInclude(n *html.Node) bool {
	return matchesAny(s.include, n)
}

func (s *selectorSet) empty() bool {
	return len(s.exclude) == 0 && len(s.include) == 0
}

func matchesAny(groups []cascadia.SelectorGroup, n *html.Node) bool {
	for _, g := range groups {
		if g.Match(n) {
			return true
		}
	}
	return false
}
