package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		base string
		href string
		want string
	}{
		{"no base passes through", "", "/docs", "/docs"},
		{"relative against base", "https://e.com/a/b", "c", "https://e.com/a/c"},
		{"parent traversal", "https://e.com/a/b/", "../c", "https://e.com/a/c"},
		{"root relative", "https://e.com/a/b", "/c", "https://e.com/c"},
		{"absolute unchanged", "https://e.com/", "https://other.org/x", "https://other.org/x"},
		{"mailto unchanged", "https://e.com/", "mailto:a@b.com", "mailto:a@b.com"},
		{"tel unchanged", "https://e.com/", "tel:+1555", "tel:+1555"},
		{"data unchanged", "https://e.com/", "data:text/plain,hi", "data:text/plain,hi"},
		{"fragment against base", "https://e.com/page", "#top", "https://e.com/page#top"},
		{"unparseable href unchanged", "https://e.com/", "::bad::", "::bad::"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, resolveURL(tt.base, tt.href))
		})
	}
}

func TestEncodeURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain unchanged", "https://e.com/path?q=1", "https://e.com/path?q=1"},
		{"space", "https://e.com/a b", "https://e.com/a%20b"},
		{"parentheses", "https://e.com/x(1)", "https://e.com/x%281%29"},
		{"valid escape kept", "https://e.com/a%20b", "https://e.com/a%20b"},
		{"bare percent escaped", "https://e.com/100%", "https://e.com/100%25"},
		{"percent before non-hex escaped", "https://e.com/a%zz", "https://e.com/a%25zz"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, encodeURL(tt.in))
		})
	}
}
