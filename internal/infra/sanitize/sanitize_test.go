package sanitize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTMLSanitizer(t *testing.T) {
	s := NewHTMLSanitizer()

	require.Equal(t, "<p>A</p>", s.Sanitize("<p>A</p>"))
	require.Equal(t, "<p><strong>bold</strong> and <em>em</em></p>", s.Sanitize("<p><strong>bold</strong> and <em>em</em></p>"))
	require.Equal(t, "<p>hi</p>", s.Sanitize(`<p onclick="alert(1)">hi</p><script>alert(1)</script>`))
	require.Empty(t, s.Sanitize("<script>alert(1)</script>"))
	require.NotContains(t, s.Sanitize(`<a href="javascript:alert(1)">x</a>`), "javascript")
	link := s.Sanitize(`<a href="https://example.com">x</a>`)
	require.Contains(t, link, "nofollow")
	require.Contains(t, link, `target="_blank"`)
}
