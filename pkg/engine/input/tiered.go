package input

import (
	"sort"
	"strings"

	"darkdepths/pkg/engine/world"
)

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota

	ActionMove      // Step in Intent.Dir
	ActionOpen      // Open an adjacent closed door
	ActionClose     // Close an adjacent open door
	ActionTunnel    // Clear adjacent rubble
	ActionPickUp    // Pick up everything underfoot
	ActionDrop      // Drop the most recently picked up object
	ActionLook      // Look around
	ActionDescend   // Take the down staircase
	ActionHint      // Describe what is adjacent
	ActionMapDump   // Dump the level to a file
	ActionQuit      // Leave the game
	ActionWait      // Hold still for a turn
	ActionRevealAll // Map the whole level (debug)
	ActionHelp      // Show the key bindings
)

// Intent is a high-level description of what the player wants to do.
// Dir is set for ActionMove.
type Intent struct {
	Action Action
	Dir    world.Direction
}

// moves maps codes to step directions: the keypad digits, the roguelike
// keys, and arrows.
var moves = map[string]world.Direction{
	"1": world.SouthWest, "2": world.South, "3": world.SouthEast,
	"4": world.West, "6": world.East,
	"7": world.NorthWest, "8": world.North, "9": world.NorthEast,

	"b": world.SouthWest, "j": world.South, "n": world.SouthEast,
	"h": world.West, "l": world.East,
	"y": world.NorthWest, "k": world.North, "u": world.NorthEast,

	"arrow_up":    world.North,
	"arrow_down":  world.South,
	"arrow_left":  world.West,
	"arrow_right": world.East,
}

// bindings maps codes to non-movement actions.
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	"o":     ActionOpen,
	"open":  ActionOpen,
	"c":     ActionClose,
	"close": ActionClose,
	"T":     ActionTunnel,
	"g":     ActionPickUp,
	",":     ActionPickUp,
	"d":     ActionDrop,
	"x":     ActionLook,
	"look":  ActionLook,
	">":     ActionDescend,
	"5":     ActionWait,
	"s":     ActionWait,
	"?":     ActionHint,
	"hint":  ActionHint,
	"M":     ActionMapDump,
	"dump":  ActionMapDump,
	"q":     ActionQuit,
	"quit":  ActionQuit,
	"Q":     ActionQuit,

	"reveal": ActionRevealAll,
	"=":      ActionHelp,
	"help":   ActionHelp,
}

// MapToIntent applies the current bindings to a key code
func MapToIntent(code string) Intent {
	if dir, ok := moves[code]; ok {
		return Intent{Action: ActionMove, Dir: dir}
	}
	if act, ok := bindings[code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ParseScript splits a command script into intents. Commands are separated
// by whitespace or semicolons; a run of digits is read as one keypad step per digit.
func ParseScript(script string) []Intent {
	fields := strings.FieldsFunc(script, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == ';'
	})

	var intents []Intent
	for _, f := range fields {
		if isDigits(f) {
			for _, r := range f {
				intents = append(intents, MapToIntent(string(r)))
			}
			continue
		}
		intents = append(intents, MapToIntent(f))
	}
	return intents
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMove:
		return "Move"
	case ActionOpen:
		return "Open"
	case ActionClose:
		return "Close"
	case ActionTunnel:
		return "Tunnel"
	case ActionPickUp:
		return "Pick Up"
	case ActionDrop:
		return "Drop"
	case ActionLook:
		return "Look"
	case ActionDescend:
		return "Descend"
	case ActionWait:
		return "Wait"
	case ActionHint:
		return "Hint"
	case ActionMapDump:
		return "Map Dump"
	case ActionQuit:
		return "Quit"
	case ActionRevealAll:
		return "Reveal All"
	case ActionHelp:
		return "Help"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code := range moves {
		result[ActionMove] = append(result[ActionMove], code)
	}
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering of codes within each action
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
