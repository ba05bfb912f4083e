package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-jigsaw/internal/core"
)

// styleKey identifies a distinct terminal style for a screen cell.
// Cells with equal keys can be rendered as one styled run.
type styleKey struct {
	fg    core.Color
	bg    core.Color
	hasFg bool
	hasBg bool
}

// styleCache memoizes lipgloss styles per color combination. A puzzle
// picture uses at most a few thousand distinct colors, so the cache stays
// small while saving the style construction on every frame. The mutex is
// for concurrent SSH sessions rendering at once.
var (
	styleMu    sync.Mutex
	styleCache = map[styleKey]lipgloss.Style{}
)

func styleFor(key styleKey) lipgloss.Style {
	styleMu.Lock()
	defer styleMu.Unlock()

	if style, ok := styleCache[key]; ok {
		return style
	}
	style := lipgloss.NewStyle()
	if key.hasFg {
		style = style.Foreground(lipgloss.Color(hexColor(key.fg)))
	}
	if key.hasBg {
		style = style.Background(lipgloss.Color(hexColor(key.bg)))
	}
	styleCache[key] = style
	return style
}

func hexColor(c core.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// cellGlyph resolves a cell to its display rune and style key.
// Pixel cells render as half blocks: the upper half is the foreground of
// '▀', the lower half its background. A cell with only a lower pixel uses
// '▄' so the terminal's default background shows through the empty half.
func cellGlyph(cell core.Cell) (rune, styleKey) {
	if cell.Pixel {
		switch {
		case cell.HasFg && cell.HasBg:
			return '▀', styleKey{fg: cell.Fg, bg: cell.Bg, hasFg: true, hasBg: true}
		case cell.HasFg:
			return '▀', styleKey{fg: cell.Fg, hasFg: true}
		case cell.HasBg:
			return '▄', styleKey{fg: cell.Bg, hasFg: true}
		default:
			return ' ', styleKey{}
		}
	}
	if cell.HasFg {
		return cell.Rune, styleKey{fg: cell.Fg, hasFg: true}
	}
	return cell.Rune, styleKey{}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			r, startKey := cellGlyph(s.GetCell(x, y))

			// Collect consecutive cells with the same style
			var run strings.Builder
			run.WriteRune(r)
			x++
			for x < s.Width() {
				nr, key := cellGlyph(s.GetCell(x, y))
				if key != startKey {
					break
				}
				run.WriteRune(nr)
				x++
			}

			if startKey == (styleKey{}) {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(styleFor(startKey).Render(run.String()))
			}
		}
	}
	return sb.String()
}
