package devtools

import (
	"fmt"
	"html"
	"os"
	"strings"
	"time"

	"darkdepths/pkg/engine/world"
	"darkdepths/pkg/game/renderer"
	"darkdepths/pkg/game/state"
)

// styleClasses maps each text style to its CSS class
var styleClasses = map[renderer.TextStyle]string{
	renderer.StyleNormal:   "void",
	renderer.StylePlayer:   "player",
	renderer.StyleItem:     "item",
	renderer.StyleFloor:    "floor",
	renderer.StyleWall:     "wall",
	renderer.StyleMineral:  "mineral",
	renderer.StyleTreasure: "treasure",
	renderer.StyleDoor:     "door",
	renderer.StyleStair:    "stair",
	renderer.StyleLava:     "lava",
	renderer.StyleTrap:     "trap",
	renderer.StyleMonster:  "monster",
}

// SaveScreenshotHTML saves the current map view as an HTML file
func SaveScreenshotHTML(g *state.Game) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("screenshot-%s.html", timestamp)

	rows, cols := renderer.GetViewportSize()
	if err := os.WriteFile(filename, []byte(ScreenshotHTML(g, rows, cols)), 0o644); err != nil {
		return "", err
	}
	return filename, nil
}

// ScreenshotHTML renders the viewport around the player as an HTML page
func ScreenshotHTML(g *state.Game, viewportRows, viewportCols int) string {
	// Viewport bounds centered on player
	startY := g.Player.Y - viewportRows/2
	startX := g.Player.X - viewportCols/2

	var sb strings.Builder

	sb.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Dark Depths - Screenshot</title>
    <style>
        body {
            background-color: #101010;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header { color: #bb86fc; font-size: 18px; margin-bottom: 10px; }
        .room-name { color: #888; margin-bottom: 20px; }
        .map-container {
            background-color: #000;
            padding: 20px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row { white-space: pre; line-height: 1.2; font-size: 16px; }
        .player { color: #fff; font-weight: bold; }
        .wall { color: #ccc; }
        .floor { color: #777; }
        .mineral { color: #b8860b; }
        .treasure { color: #ffd700; font-weight: bold; }
        .door { color: #c08040; font-weight: bold; }
        .stair { color: #fff; font-weight: bold; }
        .lava { color: #ff3300; }
        .trap { color: #ff6666; }
        .item { color: #44cc44; }
        .monster { color: #ff66ff; font-weight: bold; }
        .void { color: #101010; }
        .inventory { margin-top: 20px; color: #888; }
        .inventory-item { color: #44cc44; }
        .messages { margin-top: 20px; border-top: 1px solid #333; padding-top: 10px; }
        .message { color: #ccc; margin: 5px 0; }
    </style>
</head>
<body>
`)

	fmt.Fprintf(&sb, `    <div class="header">%d ft (L%d), turn %d</div>`+"\n", g.Depth*50, g.Depth, g.Turn)
	if g.Layout != nil {
		if room, ok := g.Layout.RoomAt(g.Player); ok {
			fmt.Fprintf(&sb, `    <div class="room-name">In: %s</div>`+"\n", html.EscapeString(room.Name))
		}
	}

	sb.WriteString(`    <div class="map-container">` + "\n")
	for vy := 0; vy < viewportRows; vy++ {
		sb.WriteString(`        <div class="map-row">`)
		for vx := 0; vx < viewportCols; vx++ {
			icon, style := renderer.Glyph(g, world.L(startX+vx, startY+vy))
			class, ok := styleClasses[style]
			if !ok {
				class = "floor"
			}
			fmt.Fprintf(&sb, `<span class="%s">%s</span>`, class, html.EscapeString(string(icon)))
		}
		sb.WriteString("</div>\n")
	}
	sb.WriteString(`    </div>` + "\n")

	sb.WriteString(`    <div class="inventory">Inventory: `)
	if len(g.Inventory) == 0 {
		sb.WriteString(`<span style="color:#666">(empty)</span>`)
	} else {
		for i, obj := range g.Inventory {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, `<span class="inventory-item">%s</span>`, html.EscapeString(obj.Name()))
		}
	}
	sb.WriteString("</div>\n")

	sb.WriteString(`    <div class="messages">` + "\n")
	for _, msg := range g.Messages {
		fmt.Fprintf(&sb, `        <div class="message">%s</div>`+"\n", html.EscapeString(msg))
	}
	sb.WriteString("    </div>\n</body>\n</html>\n")

	return sb.String()
}
