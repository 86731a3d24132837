package ui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// renderer caches the last glamour renderer; building one is slow.
var renderer struct {
	sync.Mutex
	r     *glamour.TermRenderer
	width int
	style string
}

func markdownRenderer(width int, style string) (*glamour.TermRenderer, error) {
	if width < 1 {
		width = 80
	}
	if style == "" {
		style = "auto"
	}
	if renderer.r != nil && renderer.width == width && renderer.style == style {
		return renderer.r, nil
	}

	styleOpt := glamour.WithStylePath(style)
	if style == "auto" {
		styleOpt = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return nil, err
	}
	renderer.r, renderer.width, renderer.style = r, width, style
	return r, nil
}

// RenderMarkdown renders markdown content for the terminal using the
// glamour style (auto, dark, light, notty, ...). The content is returned
// unchanged when rendering fails.
func RenderMarkdown(content string, width int, style string) string {
	if content == "" {
		return ""
	}

	renderer.Lock()
	defer renderer.Unlock()

	r, err := markdownRenderer(width, style)
	if err != nil {
		return content
	}
	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n")
}
