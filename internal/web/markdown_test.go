package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdown_EmptyInput(t *testing.T) {
	assert.Equal(t, "", RenderMarkdown(""))
}

func TestRenderMarkdown_PlainText(t *testing.T) {
	assert.Contains(t, RenderMarkdown("협찬 만족도 높음"), "협찬 만족도 높음")
}

func TestRenderMarkdown_Bold(t *testing.T) {
	assert.Contains(t, RenderMarkdown("**bold text**"), "<strong>bold text</strong>")
}

func TestRenderMarkdown_HardWraps(t *testing.T) {
	assert.Contains(t, RenderMarkdown("line one\nline two"), "<br>")
}

func TestRenderMarkdown_Link(t *testing.T) {
	result := RenderMarkdown("[post](https://example.com/p/1)")
	assert.Contains(t, result, `<a href="https://example.com/p/1"`)
	assert.Contains(t, result, "post</a>")
}

func TestRenderMarkdown_SanitizesScript(t *testing.T) {
	result := RenderMarkdown(`<script>alert("xss")</script>`)
	assert.NotContains(t, result, "<script>")
}

func TestRenderMarkdown_GFMStrikethrough(t *testing.T) {
	assert.Contains(t, RenderMarkdown("~~deleted~~"), "<del>deleted</del>")
}
