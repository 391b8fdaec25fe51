package renderer

import (
	"fmt"
	"regexp"

	"darkdepths/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleCell
	StyleItem
	StyleAction
	StyleActionShort
	StyleDenied
	StyleSubtle
	StylePlayer
	StyleFloor
	StyleWall
	StyleMineral
	StyleTreasure
	StyleDoor
	StyleStair
	StyleLava
	StyleTrap
	StyleMonster
)

// Renderer defines the interface for game rendering backends
type Renderer interface {
	// Init initializes the renderer (colors etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete game frame: the map, status bar,
	// messages and input prompt
	RenderFrame(g *state.Game)

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string

	// ShowMessage displays a message to the user
	ShowMessage(msg string)

	// GetViewportSize returns the current viewport dimensions (rows, cols)
	GetViewportSize() (rows, cols int)
}

// Markup matches FUNCTION{operand} in message text
var Markup = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:]+)}`)

// StripMarkup replaces each FUNCTION{operand} with its bare operand
func StripMarkup(s string) string {
	return Markup.ReplaceAllString(s, "$2")
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a complete game frame
func RenderFrame(g *state.Game) {
	if Current != nil {
		Current.RenderFrame(g)
	}
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// FormatText formats a message with markup. Without a renderer the markup
// is stripped.
func FormatText(msg string, args ...any) string {
	if Current != nil {
		return Current.FormatText(msg, args...)
	}
	return StripMarkup(fmt.Sprintf(msg, args...))
}

// ShowMessage displays a message with the current renderer
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}

// GetViewportSize returns viewport dimensions
func GetViewportSize() (rows, cols int) {
	if Current != nil {
		return Current.GetViewportSize()
	}
	return 21, 61 // sensible defaults
}
