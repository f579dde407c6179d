package site

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdownRendersAndSanitizes(t *testing.T) {
	r := NewRenderer()

	out := string(r.Markdown("**굵게** [링크](https://example.com)\n\n<script>alert(1)</script>"))

	assert.Contains(t, out, "<strong>굵게</strong>")
	assert.Contains(t, out, `href="https://example.com"`)
	assert.Contains(t, out, `rel="nofollow`)
	assert.NotContains(t, out, "<script>")
}

func TestInlineKeepsLineBreaksOnly(t *testing.T) {
	r := NewRenderer()

	out := string(r.Inline(`첫 줄<br />둘째 줄 <img src=x onerror=alert(1)>`))

	assert.Contains(t, out, "<br")
	assert.NotContains(t, out, "<img")
	assert.True(t, strings.HasPrefix(out, "첫 줄"))
}

func TestLinesEscapesAndJoins(t *testing.T) {
	r := NewRenderer()

	assert.Equal(t, "a &lt;b&gt;<br>c", string(r.Lines("a <b>\n  c\n")))
}
