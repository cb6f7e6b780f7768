// Package render draws grids for the terminal, highlighting walls, markers
// and search results with lipgloss styles.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridwalk/core"
	"github.com/katalvlaran/gridwalk/cursor"
	"github.com/katalvlaran/gridwalk/internal/config"
)

// PathRune replaces open cells that lie on a highlighted path.
const PathRune = 'O'

// class is the style bucket of a cell.
type class int

const (
	plain class = iota
	wall
	marker
	path
)

// Renderer converts grids to styled strings.
type Renderer struct {
	styles  map[class]lipgloss.Style
	wall    rune
	markers map[rune]bool
}

// New builds a renderer. With color false every style is empty, so the
// output is the bare grid text.
func New(cfg config.RenderConfig, wallRune rune, markers []rune, color bool) *Renderer {
	r := &Renderer{
		styles: map[class]lipgloss.Style{
			plain:  lipgloss.NewStyle(),
			wall:   lipgloss.NewStyle(),
			marker: lipgloss.NewStyle(),
			path:   lipgloss.NewStyle(),
		},
		wall:    wallRune,
		markers: make(map[rune]bool, len(markers)),
	}
	for _, m := range markers {
		r.markers[m] = true
	}
	if color {
		r.styles[wall] = lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.WallColor))
		r.styles[marker] = lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.MarkerColor)).Bold(true)
		r.styles[path] = lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.PathColor)).Bold(true)
	}
	return r
}

// Grid renders g row by row. Cells in highlight that are neither walls nor
// markers are drawn as PathRune. Adjacent cells of the same class are
// grouped to minimize ANSI escape sequences. The cursor is not moved.
func (r *Renderer) Grid(g *cursor.Grid, highlight []core.Point) string {
	lit := make(map[core.Point]bool, len(highlight))
	for _, p := range highlight {
		lit[p] = true
	}

	var sb strings.Builder
	sb.Grow(g.Rows() * (g.Width() + 1))
	for row := 0; row < g.Rows(); row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}
		col := 0
		for col < g.RowLen(row) {
			_, start := r.cell(g, core.Point{Row: row, Col: col}, lit)

			// Collect consecutive cells of the same class
			var run strings.Builder
			for col < g.RowLen(row) {
				ch, c := r.cell(g, core.Point{Row: row, Col: col}, lit)
				if c != start {
					break
				}
				run.WriteRune(ch)
				col++
			}
			sb.WriteString(r.styles[start].Render(run.String()))
		}
	}
	return sb.String()
}

func (r *Renderer) cell(g *cursor.Grid, p core.Point, lit map[core.Point]bool) (rune, class) {
	ch, _ := g.At(p)
	switch {
	case ch == r.wall:
		return ch, wall
	case r.markers[ch]:
		return ch, marker
	case lit[p]:
		return PathRune, path
	default:
		return ch, plain
	}
}
