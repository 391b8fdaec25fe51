// Package menu provides a generic text menu for the game.
package menu

import (
	"darkdepths/pkg/game/renderer"
)

// MenuItem represents a single item in a menu.
type MenuItem interface {
	// GetLabel returns the display label for this menu item.
	GetLabel() string
	// IsSelectable returns whether this item is an entry rather than a heading.
	IsSelectable() bool
	// GetHelpText returns optional help text for this item.
	GetHelpText() string
}

// MenuHandler supplies the contents of a menu.
type MenuHandler interface {
	// GetTitle returns the menu title.
	GetTitle() string
	// GetInstructions returns the line shown under the items.
	GetInstructions() string
	// GetMenuItems returns the items in display order.
	GetMenuItems() []MenuItem
}

// MenuRenderer is an optional interface for renderers that can draw
// a full-screen menu instead of the map.
type MenuRenderer interface {
	RenderMenu(title string, lines []string, instructions string)
}

// Lines formats the handler's items for display. Headings are styled
// subtle and entries are indented beneath them.
func Lines(h MenuHandler) []string {
	items := h.GetMenuItems()
	lines := make([]string, 0, len(items))
	for _, item := range items {
		if !item.IsSelectable() {
			lines = append(lines, renderer.StyleText(item.GetLabel(), renderer.StyleSubtle))
			continue
		}
		line := "  " + item.GetLabel()
		if help := item.GetHelpText(); help != "" {
			line += " " + renderer.StyleText("("+help+")", renderer.StyleSubtle)
		}
		lines = append(lines, line)
	}
	return lines
}

// Show displays the menu with the current renderer. Renderers without
// menu support get it line by line as messages.
func Show(h MenuHandler) {
	lines := Lines(h)
	if mr, ok := renderer.Current.(MenuRenderer); ok {
		mr.RenderMenu(h.GetTitle(), lines, h.GetInstructions())
		return
	}

	renderer.ShowMessage(h.GetTitle())
	for _, line := range lines {
		renderer.ShowMessage(line)
	}
}
