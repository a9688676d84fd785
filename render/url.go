package render

import (
	"net/url"
	"strings"
)

// resolveURL resolves href against the configured base URL. Absolute
// URLs and scheme-only references pass through untouched; so does
// everything when no base is set or either side fails to parse.
func resolveURL(base, href string) string {
	if base == "" || href == "" {
		return href
	}
	for _, scheme := range []string{"mailto:", "tel:", "data:"} {
		if strings.HasPrefix(href, scheme) {
			return href
		}
	}
	ref, err := url.Parse(href)
	if err != nil || ref.IsAbs() {
		return href
	}
	b, err := url.Parse(base)
	if err != nil {
		return href
	}
	return b.ResolveReference(ref).String()
}

// encodeURL makes a URL safe inside Markdown link syntax. Spaces and
// parentheses are percent-encoded; a bare percent sign not opening a
// valid escape becomes %25.
func encodeURL(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ':
			sb.WriteString("%20")
		case '(':
			sb.WriteString("%28")
		case ')':
			sb.WriteString("%29")
		case '%':
			if i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
				sb.WriteByte('%')
			} else {
				sb.WriteString("%25")
			}
		default:
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

func isHex(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}
