package menu

import (
	"fmt"
	"strings"

	engineinput "darkdepths/pkg/engine/input"
)

// BindingMenuItem represents a menu item for a key binding.
type BindingMenuItem struct {
	Action engineinput.Action
	Codes  []string
	Debug  bool
}

// GetLabel returns the display label for this binding menu item.
func (b *BindingMenuItem) GetLabel() string {
	codeText := strings.Join(b.Codes, ", ")
	if codeText == "" {
		codeText = "(unbound)"
	}
	return fmt.Sprintf("%-10s %s", engineinput.ActionName(b.Action), codeText)
}

// IsSelectable returns whether this binding can be selected.
func (b *BindingMenuItem) IsSelectable() bool {
	return true
}

// GetHelpText returns help text for this binding.
func (b *BindingMenuItem) GetHelpText() string {
	if b.Debug {
		return "debug"
	}
	return ""
}

// headingItem is a section title
type headingItem string

func (h headingItem) GetLabel() string    { return string(h) }
func (h headingItem) IsSelectable() bool  { return false }
func (h headingItem) GetHelpText() string { return "" }

// BindingsMenuHandler lists the key bindings.
type BindingsMenuHandler struct {
	movement []engineinput.Action
	commands []engineinput.Action
}

// NewBindingsMenuHandler creates a new bindings menu handler.
func NewBindingsMenuHandler() *BindingsMenuHandler {
	return &BindingsMenuHandler{
		movement: []engineinput.Action{
			engineinput.ActionMove,
			engineinput.ActionWait,
		},
		commands: []engineinput.Action{
			engineinput.ActionOpen,
			engineinput.ActionClose,
			engineinput.ActionTunnel,
			engineinput.ActionPickUp,
			engineinput.ActionDrop,
			engineinput.ActionLook,
			engineinput.ActionHint,
			engineinput.ActionDescend,
			engineinput.ActionHelp,
			engineinput.ActionQuit,
			engineinput.ActionMapDump,
			engineinput.ActionRevealAll,
		},
	}
}

// GetTitle returns the menu title.
func (h *BindingsMenuHandler) GetTitle() string {
	return "Key Bindings"
}

// GetInstructions returns the menu instructions.
func (h *BindingsMenuHandler) GetInstructions() string {
	return "Press any key to return."
}

// GetMenuItems returns the menu items for the bindings menu.
func (h *BindingsMenuHandler) GetMenuItems() []MenuItem {
	byAction := engineinput.GetBindingsByAction()

	items := []MenuItem{headingItem("Movement")}
	for _, act := range h.movement {
		items = append(items, &BindingMenuItem{Action: act, Codes: byAction[act]})
	}
	items = append(items, headingItem("Commands"))
	for _, act := range h.commands {
		items = append(items, &BindingMenuItem{
			Action: act,
			Codes:  byAction[act],
			Debug:  isDebug(act),
		})
	}
	return items
}

// isDebug checks if an action is a developer aid rather than part of play.
func isDebug(action engineinput.Action) bool {
	return action == engineinput.ActionMapDump ||
		action == engineinput.ActionRevealAll
}
