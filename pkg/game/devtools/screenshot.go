package devtools

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dungeongen/pkg/game/i18n"
	"dungeongen/pkg/game/state"
)

// ScreenshotHTML renders the current layout as a standalone HTML page
func ScreenshotHTML(s *state.Session) string {
	grid := s.Grid()
	stats := s.Stats()

	var sb strings.Builder

	sb.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>`)
	sb.WriteString(html.EscapeString(i18n.T("WINDOW_TITLE")))
	sb.WriteString(`</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
            line-height: 1;
        }
        .room { color: #646464; }
        .corridor { color: #8a8a8a; }
        .empty { color: #2a2a3a; }
    </style>
</head>
<body>
`)
	fmt.Fprintf(&sb, "    <div class=\"header\">%s</div>\n", html.EscapeString(i18n.T("STATUS_LINE", s.Generation, stats.Rooms, stats.Corridors, stats.Attempts)))
	fmt.Fprintf(&sb, "    <div class=\"header\">%s</div>\n", html.EscapeString(i18n.T("SEED_LINE", s.Seed)))
	sb.WriteString("    <div class=\"map-container\"><pre>\n")

	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			cell := grid.GetCell(row, col)
			class := "empty"
			switch {
			case cell.IsCorridor():
				class = "corridor"
			case cell.Occupied():
				class = "room"
			}
			fmt.Fprintf(&sb, "<span class=\"%s\">%c</span>", class, CellSymbol(cell))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("</pre></div>\n</body>\n</html>\n")
	return sb.String()
}

// SaveScreenshotHTML writes ScreenshotHTML to a timestamped file in dir and returns its path
func SaveScreenshotHTML(dir string, s *state.Session) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	path := filepath.Join(dir, fmt.Sprintf("screenshot-%s.html", timestamp))

	if err := os.WriteFile(path, []byte(ScreenshotHTML(s)), 0o644); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}
