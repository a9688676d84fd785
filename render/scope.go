package render

// scopeKind identifies the nesting construct a scope frame represents.
type scopeKind int

const (
	scopeList scopeKind = iota + 1
	scopeBlockquote
	scopeTable
	scopeCode
)

// scope is one frame of the render context stack. Exactly one frame is
// pushed per structural entry (list, blockquote, table, code block) and
// popped on every exit path, so the stack mirrors the ancestor chain of
// the node being rendered.
type scope struct {
	kind scopeKind

	// List state.
	ordered bool
	index   int // current item number, incremented per direct li

	// Code state.
	language string
}

// scopeStack is the render context stack. Handlers push on entry and must
// pop on every exit path; push/pop balance is a programming invariant
// verified by the test suite, not a runtime error.
type scopeStack []scope

func (s *scopeStack) push(sc scope) {
	*s = append(*s, sc)
}

func (s *scopeStack) pop() {
	*s = (*s)[:len(*s)-1]
}

// top returns a pointer to the innermost frame, or nil for an empty stack.
func (s *scopeStack) top() *scope {
	if len(*s) == 0 {
		return nil
	}
	return &(*s)[len(*s)-1]
}

func (s *scopeStack) depth() int {
	return len(*s)
}

// topList returns the innermost List frame, or nil. Lists can contain
// blockquotes and vice versa, so this scans past non-list frames.
func (s *scopeStack) topList() *scope {
	for i := len(*s) - 1; i >= 0; i-- {
		if (*s)[i].kind == scopeList {
			return &(*s)[i]
		}
	}
	return nil
}

// inCode reports whether a Code frame is active. Escaping is suppressed
// inside code scopes; the fence length carries the safety guarantee.
func (s *scopeStack) inCode() bool {
	for i := len(*s) - 1; i >= 0; i-- {
		if (*s)[i].kind == scopeCode {
			return true
		}
	}
	return false
}

// inTable reports whether a Table frame is active. Tables found inside a
// table cell are flattened into the cell text instead of rendered as
// blocks, since GFM has no nested-table syntax.
func (s *scopeStack) inTable() bool {
	for i := len(*s) - 1; i >= 0; i-- {
		if (*s)[i].kind == scopeTable {
			return true
		}
	}
	return false
}

// blockquoteDepth returns the number of active Blockquote frames.
func (s *scopeStack) blockquoteDepth() int {
	n := 0
	for _, sc := range *s {
		if sc.kind == scopeBlockquote {
			n++
		}
	}
	return n
}
