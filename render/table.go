package render

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// alignment is the column alignment derived from the header row.
type alignment int

const (
	alignNone alignment = iota
	alignLeft
	alignCenter
	alignRight
)

// tableCell is one source cell before span folding.
type tableCell struct {
	text    string
	align   alignment
	colspan int
	rowspan int
}

// renderTable formats a GFM table. The header is the thead row when one
// exists, otherwise the first row is promoted. Column alignments are
// fixed from the header row; every row is normalized to the header's
// column count. A table inside another table's cell flattens into that
// cell instead.
func (r *renderer) renderTable(n *html.Node) string {
	if r.stack.inTable() {
		return r.flattenTable(n)
	}

	r.stack.push(scope{kind: scopeTable})
	defer r.stack.pop()

	caption := ""
	var rows [][]tableCell

	var collectRows func(*html.Node)
	collectRows = func(container *html.Node) {
		for child := container.FirstChild; child != nil; child = child.NextSibling {
			if child.Type != html.ElementNode || r.marks[child].skip {
				continue
			}
			if child.Data == "tr" {
				if row := r.extractRow(child); len(row) > 0 {
					rows = append(rows, row)
				}
			}
		}
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode || r.marks[child].skip {
			continue
		}
		switch child.Data {
		case "caption":
			caption = r.inlineContent(child)
		case "thead", "tbody", "tfoot":
			collectRows(child)
		case "tr":
			if row := r.extractRow(child); len(row) > 0 {
				rows = append(rows, row)
			}
		}
	}

	if len(rows) == 0 {
		return ""
	}

	grid := foldSpans(rows)
	cols := len(grid[0])
	if cols == 0 {
		return ""
	}

	// Alignments fix from the header row and apply to every row.
	aligns := make([]alignment, cols)
	for i, cell := range grid[0] {
		aligns[i] = cell.align
	}

	var sb strings.Builder
	sb.WriteString("\n\n")
	if caption != "" {
		sb.WriteString("*")
		sb.WriteString(caption)
		sb.WriteString("*\n\n")
	}

	writeRow := func(cells []tableCell) {
		sb.WriteByte('|')
		for i := 0; i < cols; i++ {
			text := ""
			if i < len(cells) {
				text = cells[i].text
			}
			sb.WriteByte(' ')
			sb.WriteString(text)
			sb.WriteString(" |")
		}
		sb.WriteByte('\n')
	}

	writeRow(grid[0])
	sb.WriteByte('|')
	for _, a := range aligns {
		switch a {
		case alignLeft:
			sb.WriteString(" :--- |")
		case alignCenter:
			sb.WriteString(" :---: |")
		case alignRight:
			sb.WriteString(" ---: |")
		default:
			sb.WriteString(" --- |")
		}
	}
	sb.WriteByte('\n')
	for _, row := range grid[1:] {
		writeRow(row)
	}

	return strings.TrimRight(sb.String(), "\n") + "\n\n"
}

// extractRow renders the th/td cells of one tr.
func (r *renderer) extractRow(tr *html.Node) []tableCell {
	var cells []tableCell
	for child := tr.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode || r.marks[child].skip {
			continue
		}
		if child.Data != "th" && child.Data != "td" {
			continue
		}
		cells = append(cells, tableCell{
			text:    r.cellContent(child),
			align:   cellAlignment(child),
			colspan: spanAttr(child, "colspan"),
			rowspan: spanAttr(child, "rowspan"),
		})
	}
	return cells
}

// cellContent renders a cell as single-line text with unescaped pipes
// escaped, so the cell cannot break the row.
func (r *renderer) cellContent(cell *html.Node) string {
	content := collapseWhitespace(strings.TrimSpace(r.renderChildren(cell)))
	return escapePipes(content)
}

// escapePipes backslash-escapes pipes that are not already escaped.
func escapePipes(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '|' && (i == 0 || s[i-1] != '\\') {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

// cellAlignment resolves a cell's alignment: an inline text-align
// declaration wins over the align attribute.
func cellAlignment(n *html.Node) alignment {
	if a := alignmentFromValue(textAlignValue(attr(n, "style"))); a != alignNone {
		return a
	}
	return alignmentFromValue(attr(n, "align"))
}

// textAlignValue extracts the value of the text-align declaration in an
// inline style, or "" when the property is absent.
func textAlignValue(style string) string {
	for _, decl := range strings.Split(style, ";") {
		prop, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(prop), "text-align") {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

func alignmentFromValue(v string) alignment {
	switch strings.ToLower(v) {
	case "left":
		return alignLeft
	case "center":
		return alignCenter
	case "right":
		return alignRight
	}
	return alignNone
}

// spanAttr reads a colspan/rowspan attribute, clamped to a sane range.
func spanAttr(n *html.Node, name string) int {
	v, err := strconv.Atoi(strings.TrimSpace(attr(n, name)))
	if err != nil || v < 1 {
		return 1
	}
	return min(v, 100)
}

// foldSpans resolves colspan and rowspan into a rectangular grid.
// Spanning content lands in the first logical cell it covers; the other
// covered cells come out empty. Every row is then normalized to the
// header row's width.
func foldSpans(rows [][]tableCell) [][]tableCell {
	grid := make([][]tableCell, 0, len(rows))
	carry := map[int]int{} // column index -> rows still covered by a rowspan

	for _, row := range rows {
		var out []tableCell
		pos := 0
		for _, cell := range row {
			for carry[pos] > 0 {
				carry[pos]--
				out = append(out, tableCell{})
				pos++
			}
			out = append(out, tableCell{text: cell.text, align: cell.align})
			if cell.rowspan > 1 {
				carry[pos] = cell.rowspan - 1
			}
			pos++
			for k := 1; k < cell.colspan; k++ {
				if cell.rowspan > 1 {
					carry[pos] = cell.rowspan - 1
				}
				out = append(out, tableCell{})
				pos++
			}
		}
		for carry[pos] > 0 {
			carry[pos]--
			out = append(out, tableCell{})
			pos++
		}
		grid = append(grid, out)
	}

	// Normalize to the header's column count by padding or truncating.
	cols := len(grid[0])
	for i, row := range grid {
		if len(row) > cols {
			grid[i] = row[:cols]
		}
		for len(grid[i]) < cols {
			grid[i] = append(grid[i], tableCell{})
		}
	}
	return grid
}

// flattenTable linearizes a nested table into flat cell text, since GFM
// has no nested-table syntax.
func (r *renderer) flattenTable(n *html.Node) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if child.Type != html.ElementNode || r.marks[child].skip {
				continue
			}
			if child.Data == "th" || child.Data == "td" {
				if text := r.cellContent(child); text != "" {
					parts = append(parts, text)
				}
				continue
			}
			walk(child)
		}
	}
	walk(n)
	return strings.Join(parts, " ")
}
