package fx

import (
	"math/rand/v2"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/numberrush/internal/ui/theme"
)

var confettiGlyphs = []string{"*", "✦", "•", "+", "✧", "◆"}

var confettiColors = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(theme.Primary),
	lipgloss.NewStyle().Foreground(theme.Secondary),
	lipgloss.NewStyle().Foreground(theme.Accent),
	lipgloss.NewStyle().Foreground(theme.Success),
	lipgloss.NewStyle().Foreground(theme.ArcadeYellow),
	lipgloss.NewStyle().Foreground(theme.ArcadeCyan),
}

type particle struct {
	x, y   float64
	vx, vy float64
	glyph  int
	color  int
}

// Confetti is a falling-particle burst. Call Step once per frame and
// render with View. It is done once every particle has left the area.
type Confetti struct {
	rng       *rand.Rand
	width     int
	height    int
	particles []particle
	frames    int
}

// ConfettiGravity is the downward acceleration per frame.
const ConfettiGravity = 0.08

// NewConfetti bursts n particles from the top of a width×height area.
// A nil src uses a random source.
func NewConfetti(width, height, n int, src rand.Source) *Confetti {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	c := &Confetti{rng: rand.New(src), width: max(width, 1), height: max(height, 1)}
	for i := 0; i < n; i++ {
		c.particles = append(c.particles, particle{
			x:     c.rng.Float64() * float64(c.width),
			y:     -c.rng.Float64() * float64(c.height) / 2,
			vx:    (c.rng.Float64() - 0.5) * 0.6,
			vy:    c.rng.Float64() * 0.5,
			glyph: c.rng.IntN(len(confettiGlyphs)),
			color: c.rng.IntN(len(confettiColors)),
		})
	}
	return c
}

// Step advances the animation by one frame.
func (c *Confetti) Step() {
	c.frames++
	live := c.particles[:0]
	for _, p := range c.particles {
		p.vy += ConfettiGravity
		p.x += p.vx
		p.y += p.vy
		if p.y < float64(c.height) {
			live = append(live, p)
		}
	}
	c.particles = live
}

// Done reports whether all particles have fallen out of view.
func (c *Confetti) Done() bool {
	return len(c.particles) == 0
}

// Frames returns how many steps have run.
func (c *Confetti) Frames() int {
	return c.frames
}

// View renders the current frame as height lines of width cells.
func (c *Confetti) View() string {
	grid := make([][]string, c.height)
	for y := range grid {
		grid[y] = make([]string, c.width)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}
	for _, p := range c.particles {
		x, y := int(p.x), int(p.y)
		if x < 0 || x >= c.width || y < 0 || y >= c.height {
			continue
		}
		grid[y][x] = confettiColors[p.color].Render(confettiGlyphs[p.glyph])
	}

	lines := make([]string, c.height)
	for y, row := range grid {
		lines[y] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n")
}
