// Package tui renders the game to a colour terminal.
package tui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"darkdepths/pkg/engine/terminal"
	"darkdepths/pkg/engine/world"
	"darkdepths/pkg/game/renderer"
	"darkdepths/pkg/game/state"
)

// Viewport margins and minimum sizes
const (
	ViewportMinRows = 7
	ViewportMinCols = 15
	// Lines needed outside the viewport: header, room line, status bar,
	// messages pane (header + 5 messages + footer) and prompt
	ViewportTopMargin = 14
)

// dynamicGet is used for runtime translation key lookups from markup.
// A function variable keeps go vet's non-constant format string check quiet.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out io.Writer

	colorCell        color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorItem        color.Style
	colorSubtle      color.Style
	colorPlayer      color.Style
	colorFloor       color.Style
	colorWall        color.Style
	colorMineral     color.Style
	colorTreasure    color.Style
	colorDoor        color.Style
	colorStair       color.Style
	colorLava        color.Style
	colorTrap        color.Style
	colorMonster     color.Style

	regexpStringFunctions *regexp.Regexp
}

// New creates a new TUI renderer writing to stdout
func New() *TUIRenderer {
	return &TUIRenderer{out: os.Stdout}
}

// NewWriter creates a TUI renderer writing to w
func NewWriter(w io.Writer) *TUIRenderer {
	return &TUIRenderer{out: w}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorCell = color.Style{color.FgBlue}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorItem = color.Style{color.FgGreen}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorPlayer = color.Style{color.FgWhite, color.BgBlack, color.OpBold}
	t.colorFloor = color.Style{color.FgGray}
	t.colorWall = color.Style{color.FgWhite}
	t.colorMineral = color.Style{color.FgYellow}
	t.colorTreasure = color.Style{color.FgLightYellow, color.OpBold}
	t.colorDoor = color.Style{color.FgYellow, color.OpBold}
	t.colorStair = color.Style{color.FgWhite, color.OpBold}
	t.colorLava = color.Style{color.FgRed}
	t.colorTrap = color.Style{color.FgLightRed}
	t.colorMonster = color.Style{color.FgLightMagenta, color.OpBold}

	t.regexpStringFunctions = renderer.Markup
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	if !terminal.IsTerminal() {
		return
	}
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleCell:
		return t.colorCell.Sprint(text)
	case renderer.StyleItem:
		return t.colorItem.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StyleFloor:
		return t.colorFloor.Sprint(text)
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StyleMineral:
		return t.colorMineral.Sprint(text)
	case renderer.StyleTreasure:
		return t.colorTreasure.Sprint(text)
	case renderer.StyleDoor:
		return t.colorDoor.Sprint(text)
	case renderer.StyleStair:
		return t.colorStair.Sprint(text)
	case renderer.StyleLava:
		return t.colorLava.Sprint(text)
	case renderer.StyleTrap:
		return t.colorTrap.Sprint(text)
	case renderer.StyleMonster:
		return t.colorMonster.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string
		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ITEM":
			val = t.colorItem.Sprint(operand)
		case "ROOM":
			val = t.colorCell.Sprint(operand)
		case "ACTION":
			val = t.colorActionShort.Sprint(operand[0:1]) + t.colorAction.Sprint(operand[1:])
		default:
			return fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, msg)
}

// GetViewportSize returns the viewport dimensions based on terminal size
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	termWidth, termHeight := terminal.GetSize()

	cols = termWidth - 2
	rows = termHeight - ViewportTopMargin

	// Ensure minimum size
	if cols < ViewportMinCols {
		cols = ViewportMinCols
	}
	if rows < ViewportMinRows {
		rows = ViewportMinRows
	}

	// Keep odd for centering
	if rows%2 == 0 {
		rows--
	}
	if cols%2 == 0 {
		cols--
	}

	return rows, cols
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	// Depth indicator in top left
	fmt.Fprint(t.out, t.colorAction.Sprintf("%d ft (L%d)   Turn %d\n", g.Depth*50, g.Depth, g.Turn))

	// Room name
	if g.Layout != nil {
		if room, ok := g.Layout.RoomAt(g.Player); ok {
			fmt.Fprintf(t.out, "%s %s\n", dynamicGet("IN_ROOM"), t.colorCell.Sprint(room.Name))
		} else {
			fmt.Fprintln(t.out)
		}
	}

	t.printMap(g)
	t.printStatusBar(g)
	t.printMessagesPane(g)

	fmt.Fprint(t.out, "\n> ")
}

// renderSquare returns the styled glyph for loc
func (t *TUIRenderer) renderSquare(g *state.Game, loc world.Loc) string {
	icon, style := renderer.Glyph(g, loc)
	return t.StyleText(string(icon), style)
}

// printMap renders the viewport around the player from the player's memory
func (t *TUIRenderer) printMap(g *state.Game) {
	viewportRows, viewportCols := t.GetViewportSize()

	// Top-left corner of the viewport, centered on the player
	startY := g.Player.Y - viewportRows/2
	startX := g.Player.X - viewportCols/2

	var sb strings.Builder
	for vy := 0; vy < viewportRows; vy++ {
		sb.WriteString(" ")
		for vx := 0; vx < viewportCols; vx++ {
			sb.WriteString(t.renderSquare(g, world.L(startX+vx, startY+vy)))
		}
		sb.WriteString("\n")
	}
	fmt.Fprint(t.out, sb.String())
}

// printStatusBar renders what is underfoot and the inventory
func (t *TUIRenderer) printStatusBar(g *state.Game) {
	fmt.Fprintln(t.out)
	if g.Known != nil {
		ft := g.Known.Features().Get(g.Known.Feat(g.Player))
		fmt.Fprintf(t.out, "%s%s\n", t.colorSubtle.Sprint("Underfoot: "), ft.DisplayName())
	}
	fmt.Fprint(t.out, t.colorSubtle.Sprint("Inventory: "))
	if len(g.Inventory) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("(empty)"))
		return
	}
	items := make([]string, 0, len(g.Inventory))
	for _, obj := range g.Inventory {
		items = append(items, t.colorItem.Sprint(obj.Name()))
	}
	fmt.Fprintln(t.out, strings.Join(items, t.colorSubtle.Sprint(", ")))
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(g *state.Game) {
	width := terminal.GetWidth()

	label := " Messages "
	sideLen := (width - len(label)) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	leftDashes := strings.Repeat("─", sideLen)
	rightDashes := strings.Repeat("─", max(1, width-sideLen-len(label)))

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(leftDashes+label+rightDashes))

	if len(g.Messages) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("  (no messages)"))
	} else {
		for _, msg := range g.Messages {
			fmt.Fprintf(t.out, "  %s\n", msg)
		}
	}

	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", width)))
}

// RenderMenu draws a full-screen menu in place of the map
func (t *TUIRenderer) RenderMenu(title string, lines []string, instructions string) {
	fmt.Fprintln(t.out, t.colorAction.Sprint(title))
	fmt.Fprintln(t.out)
	for _, line := range lines {
		fmt.Fprintf(t.out, " %s\n", line)
	}
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(instructions))
}
