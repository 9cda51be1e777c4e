package components

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

type DescriptionProps struct {
	Description string
	Width       int
}

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderDescription renders an issue description as markdown, falling
// back to the raw text if the renderer fails.
func RenderDescription(props DescriptionProps) string {
	if props.Description != "" {
		renderer, err := getRenderer(props.Width)
		if err == nil {
			rendered, err := renderer.Render(props.Description)
			if err == nil {
				return strings.TrimSpace(rendered)
			}
		}
		return props.Description
	}

	return SubtleStyle.Italic(true).Render("No description")
}
