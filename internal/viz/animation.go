package viz

import (
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/trajsim/internal/ballistic"
)

// Options controls how a trajectory is animated.
type Options struct {
	Width  int // canvas width in cells
	Height int // canvas height in cells
	FPS    int
	Theme  string
}

func DefaultOptions() Options {
	return Options{Width: 60, Height: 20, FPS: 30, Theme: ThemeEmber.Name}
}

// FrameMsg advances the animation by one sample. Gen ties the message to the
// tick chain that scheduled it; ticks from a chain cancelled by pause or
// restart are dropped.
type FrameMsg struct {
	Gen  int
	Time time.Time
}

// Animation is a Bubble Tea model that plays a trajectory one sample per
// frame: the trail covers samples [0..frame] and the marker sits on the
// current sample. After the last sample the final frame is held.
type Animation struct {
	traj     *ballistic.Trajectory
	opts     Options
	viewport Viewport
	heights  []float64

	trail  *Canvas
	marker *Canvas
	ground *Canvas

	frame  int
	gen    int
	paused bool
	theme  int
}

func NewAnimation(traj *ballistic.Trajectory, opts Options) *Animation {
	def := DefaultOptions()
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.Height <= 0 {
		opts.Height = def.Height
	}
	if opts.FPS <= 0 {
		opts.FPS = def.FPS
	}

	heights := make([]float64, traj.Len())
	for i := range heights {
		heights[i] = traj.At(i).Y
	}

	a := &Animation{
		traj:    traj,
		opts:    opts,
		heights: heights,
		trail:   NewCanvas(opts.Width, opts.Height),
		marker:  NewCanvas(opts.Width, opts.Height),
		ground:  NewCanvas(opts.Width, opts.Height),
		theme:   themeIndex(opts.Theme),
	}
	a.viewport = FitViewport(a.trail, traj)

	pw, ph := a.ground.PixelSize()
	a.ground.DrawLine(0, ph-1, pw-1, ph-1)
	return a
}

// Frame returns the index of the sample currently shown.
func (a *Animation) Frame() int { return a.frame }

// Done reports whether the last sample has been reached.
func (a *Animation) Done() bool { return a.frame >= a.traj.Len()-1 }

func (a *Animation) Paused() bool { return a.paused }

func (a *Animation) Theme() Theme { return Themes[a.theme] }

func (a *Animation) tick() tea.Cmd {
	gen := a.gen
	return tea.Tick(time.Second/time.Duration(a.opts.FPS), func(t time.Time) tea.Msg {
		return FrameMsg{Gen: gen, Time: t}
	})
}

func (a *Animation) Init() tea.Cmd {
	if a.Done() {
		return nil
	}
	return a.tick()
}

func (a *Animation) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a, a.handleKey(msg)
	case FrameMsg:
		if msg.Gen != a.gen || a.paused || a.Done() {
			return a, nil
		}
		a.frame++
		if a.Done() {
			log.Printf("animation: reached final frame %d", a.frame)
			return a, nil
		}
		return a, a.tick()
	}
	return a, nil
}

func (a *Animation) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return tea.Quit
	case " ", "space":
		a.paused = !a.paused
		a.gen++
		if !a.paused && !a.Done() {
			return a.tick()
		}
	case "r":
		a.frame = 0
		a.paused = false
		a.gen++
		if !a.Done() {
			return a.tick()
		}
	case "right", "l":
		if a.paused && !a.Done() {
			a.frame++
		}
	case "left", "h":
		if a.paused && a.frame > 0 {
			a.frame--
		}
	case "t":
		a.theme = (a.theme + 1) % len(Themes)
	}
	return nil
}

func (a *Animation) View() string {
	return a.Render(a.frame)
}

// Render draws frame i without touching the playback position.
func (a *Animation) Render(i int) string {
	if i < 0 {
		i = 0
	}
	if last := a.traj.Len() - 1; i > last {
		i = last
	}
	th := a.Theme()

	a.drawTrail(i)
	canvasView := canvasStyle.Render(a.composite(th))
	panel := panelStyle.Render(a.panel(i, th))
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, panel)
}

func (a *Animation) drawTrail(i int) {
	a.trail.Clear()
	a.marker.Clear()

	s := a.traj.At(0)
	px, py := a.viewport.Project(s.X, s.Y)
	a.trail.Set(px, py)
	for k := 1; k <= i; k++ {
		s = a.traj.At(k)
		nx, ny := a.viewport.Project(s.X, s.Y)
		a.trail.DrawLine(px, py, nx, ny)
		px, py = nx, ny
	}
	a.marker.DrawDisc(px, py, 1)
}

// composite layers marker over trail over ground, cell by cell. A cell takes
// the colour of its top non-blank layer and the union of all layers' dots.
func (a *Animation) composite(th Theme) string {
	layers := []struct {
		c     *Canvas
		style lipgloss.Style
	}{
		{a.marker, lipgloss.NewStyle().Foreground(th.Marker).Bold(true)},
		{a.trail, lipgloss.NewStyle().Foreground(th.Trail)},
		{a.ground, lipgloss.NewStyle().Foreground(th.Ground)},
	}

	var b strings.Builder
	for row := 0; row < a.trail.Height; row++ {
		for col := 0; col < a.trail.Width; col++ {
			cell := rune(brailleBlank)
			var style *lipgloss.Style
			for k := range layers {
				l := &layers[k]
				if l.c.Blank(row, col) {
					continue
				}
				cell |= l.c.Grid[row][col]
				if style == nil {
					style = &l.style
				}
			}
			if style == nil {
				b.WriteRune(cell)
				continue
			}
			b.WriteString(style.Render(string(cell)))
		}
		if row < a.trail.Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (a *Animation) panel(i int, th Theme) string {
	s := a.traj.At(i)
	in := a.traj.Input()
	apex := a.traj.Apex()
	n := a.traj.Len()
	val := valueStyle(th)

	var b strings.Builder
	b.WriteString(headerStyle(th).Render("PROJECTILE") + "\n")
	b.WriteString(a.status() + "\n\n")

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label) + val.Render(value) + "\n")
	}
	row("Frame", fmt.Sprintf("%d/%d", i+1, n))
	row("Time", fmt.Sprintf("%.3fs", s.T))
	row("x", fmt.Sprintf("%.2fm", s.X))
	row("y", fmt.Sprintf("%.2fm", s.Y))
	b.WriteString("\n")
	vx, vy := a.traj.Velocity()
	row("Velocity", fmt.Sprintf("%.2fm/s", in.Velocity))
	row("  vx, vy", fmt.Sprintf("%.2f, %.2f", vx, vy))
	row("Angle", fmt.Sprintf("%.2f°", in.AngleDeg))
	row("Gravity", fmt.Sprintf("%.2fm/s²", in.Gravity))
	row("Flight", fmt.Sprintf("%.3fs", a.traj.FlightTime()))
	row("Range", fmt.Sprintf("%.2fm", a.traj.Final().X))
	row("Apex", fmt.Sprintf("%.2fm", apex.Y))

	progress := 1.0
	if n > 1 {
		progress = float64(i) / float64(n-1)
	}
	b.WriteString("\n" + ProgressBar(progress, 30, th) + "\n")

	if i > 0 {
		chart := asciigraph.Plot(a.heights[:i+1],
			asciigraph.Height(5),
			asciigraph.Width(30),
			asciigraph.Caption("height (m)"),
		)
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(th.Trail).Render(chart) + "\n")
	}

	b.WriteString(helpStyle.Render("SP:Pause R:Restart Q:Quit\n←→:Step T:Theme (" + th.Name + ")"))
	return b.String()
}

func (a *Animation) status() string {
	switch {
	case a.Done():
		return "LANDED"
	case a.paused:
		return "PAUSED"
	default:
		return "IN FLIGHT"
	}
}

// Run plays the trajectory in the terminal until the user quits.
func Run(traj *ballistic.Trajectory, opts Options) error {
	p := tea.NewProgram(NewAnimation(traj, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
