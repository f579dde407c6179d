package site

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer turns site copy into safe HTML.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	inline *bluemonday.Policy
}

// NewRenderer creates a markdown renderer with a UGC sanitising policy.
func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.Linkify, extension.Strikethrough),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)

	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)

	inline := bluemonday.NewPolicy()
	inline.AllowElements("br", "strong", "em")

	return &Renderer{md: md, policy: policy, inline: inline}
}

// Markdown renders a markdown block.
func (r *Renderer) Markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(r.policy.SanitizeBytes(buf.Bytes()))
}

// Inline keeps line breaks and emphasis in a one-line copy string.
func (r *Renderer) Inline(src string) template.HTML {
	return template.HTML(r.inline.Sanitize(src))
}

// Lines renders a multi-line plain string with <br> between lines.
func (r *Renderer) Lines(src string) template.HTML {
	parts := strings.Split(strings.TrimSpace(src), "\n")
	for i, p := range parts {
		parts[i] = template.HTMLEscapeString(strings.TrimSpace(p))
	}
	return template.HTML(strings.Join(parts, "<br>"))
}
