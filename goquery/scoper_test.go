package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/htmldown/htmldown"
	"github.com/htmldown/htmldown/goquery"
)

func TestScoper_Scope(t *testing.T) {
	t.Parallel()

	t.Run("returns the matching subtree", func(t *testing.T) {
		t.Parallel()

		html := `<nav>menu</nav><main id="content"><p>body</p></main><footer>legal</footer>`

		got, err := goquery.NewScoper().Scope(html, "#content")

		require.NoError(t, err)
		assert.Equal(t, `<main id="content"><p>body</p></main>`, got)
	})

	t.Run("concatenates multiple matches in document order", func(t *testing.T) {
		t.Parallel()

		html := `<article><p>one</p></article><div>skip</div><article><p>two</p></article>`

		got, err := goquery.NewScoper().Scope(html, "article")

		require.NoError(t, err)
		assert.Equal(t, "<article><p>one</p></article>\n<article><p>two</p></article>", got)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewScoper().Scope("<p>x</p>", "#missing")

		assert.Equal(t, htmldown.ENOTFOUND, htmldown.ErrorCode(err))
	})

	t.Run("invalid selector", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewScoper().Scope("<p>x</p>", "p[")

		assert.Equal(t, htmldown.EINVALID, htmldown.ErrorCode(err))
	})

	t.Run("scoped output converts cleanly", func(t *testing.T) {
		t.Parallel()

		html := `<header>chrome</header><div class="doc"><h1>Title</h1></div>`

		scoped, err := goquery.NewScoper().Scope(html, ".doc")
		require.NoError(t, err)

		assert.Contains(t, scoped, "<h1>Title</h1>")
		assert.NotContains(t, scoped, "chrome")
	})
}
