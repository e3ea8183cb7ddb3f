package tui

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/k-sandesh/edusim/internal/sim"
	"github.com/k-sandesh/edusim/internal/viz"
)

const (
	canvasWidth     = 64
	canvasHeight    = 22
	historyCapacity = 600
)

// TickMsg drives the animation clock.
type TickMsg time.Time

// SimView runs one simulation: it owns the loop, renders the scene each
// tick and exposes the parameter panel. All time advance goes through
// sim.Loop so pausing, resetting and determinism behave the same in the
// TUI as in headless runs.
type SimView struct {
	loop      *sim.Loop
	canvas    *viz.Canvas
	fps       int
	selected  int
	history   []float64
	recording bool
	frames    []*image.Paletted
	gifPath   string
	notice    string
	showHelp  bool
	done      bool
}

func NewSimView(m sim.Model, fps int) SimView {
	if fps < 1 || fps > 120 {
		fps = 30
	}
	return SimView{
		loop:    sim.NewLoop(m),
		canvas:  viz.NewCanvas(canvasWidth, canvasHeight),
		fps:     fps,
		gifPath: m.Name() + ".gif",
		history: make([]float64, 0, historyCapacity),
	}
}

// Loop exposes the underlying loop so the app shell can seed parameters
// before the first frame.
func (v *SimView) Loop() *sim.Loop { return v.loop }

func (v SimView) tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(v.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (v SimView) Init() tea.Cmd {
	v.loop.Start()
	return v.tickCmd()
}

func (v SimView) Update(msg tea.Msg) (SimView, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case " ":
			v.loop.Toggle()
		case "r":
			v.loop.Reset()
			v.history = v.history[:0]
			v.done = false
			v.notice = ""
		case "tab":
			specs := v.loop.Params().Specs()
			if len(specs) > 0 {
				v.selected = (v.selected + 1) % len(specs)
			}
		case "up", "right", "k", "l":
			v.nudge(1)
		case "down", "left", "j", "h":
			v.nudge(-1)
		case "g":
			if v.recording {
				v.recording = false
				if err := v.saveGIF(); err != nil {
					v.notice = "gif: " + err.Error()
				} else {
					v.notice = "saved " + v.gifPath
				}
				v.frames = nil
			} else {
				v.recording = true
				v.notice = ""
				v.frames = make([]*image.Paletted, 0)
			}
		case "t":
			viz.NextTheme()
		case "?":
			v.showHelp = !v.showHelp
		}
	case TickMsg:
		if v.loop.Running() {
			v.loop.Tick(1.0 / float64(v.fps))
			if !v.loop.Running() {
				v.done = true
			}
			st := v.loop.Last()
			if len(st) > 0 {
				v.history = append(v.history, st[0])
				if len(v.history) > historyCapacity {
					v.history = v.history[1:]
				}
			}
		}
		viz.DrawScene(v.canvas, v.loop.Model(), v.loop.Params(), v.loop.Time())
		if v.recording {
			v.captureFrame()
		}
		return v, v.tickCmd()
	}
	return v, nil
}

func (v *SimView) nudge(dir int) {
	specs := v.loop.Params().Specs()
	if len(specs) == 0 {
		return
	}
	v.loop.Params().Nudge(specs[v.selected].Name, dir)
	v.loop.Eval()
	v.done = false
}

func (v SimView) View() string {
	m := v.loop.Model()
	var side strings.Builder

	side.WriteString(viz.TitleStyle().Render(m.Title()) + "\n")
	side.WriteString(v.statusLine() + "\n\n")

	st := v.loop.Last()
	labels := m.Labels()
	for i, label := range labels {
		if i >= len(st) {
			break
		}
		side.WriteString(fmt.Sprintf("%s %s\n",
			viz.LabelStyle().Render(fmt.Sprintf("%-12s", label)),
			viz.ValueStyle().Render(fmt.Sprintf("%8.3f", st[i]))))
	}
	side.WriteString(fmt.Sprintf("%s %s\n",
		viz.LabelStyle().Render(fmt.Sprintf("%-12s", "time")),
		viz.ValueStyle().Render(fmt.Sprintf("%7.2fs", v.loop.Time()))))

	if len(v.history) > 1 && len(labels) > 0 {
		chart := asciigraph.Plot(v.history,
			asciigraph.Height(4), asciigraph.Width(28),
			asciigraph.Caption(labels[0]))
		side.WriteString("\n" + viz.CanvasStyle().Render(chart) + "\n")
	}

	side.WriteString("\n" + viz.LabelStyle().Render("PARAMETERS") + "\n")
	for i, spec := range v.loop.Params().Specs() {
		val := v.loop.Params().Get(spec.Name)
		line := fmt.Sprintf("%-18s %s %7.2f", spec.Label, viz.Slider(val, spec.Min, spec.Max, 10), val)
		if i == v.selected {
			side.WriteString(viz.SelectedStyle().Render(">") + " " + line + "\n")
		} else {
			side.WriteString("  " + line + "\n")
		}
	}

	side.WriteString("\n" + viz.HelpStyle().Render(
		"space pause  r reset  tab param  ←→ adjust\nt theme  g record  ? help  q quit"))

	scene := viz.PanelStyle().Render(viz.CanvasStyle().Render(v.canvas.String()))
	main := lipgloss.JoinHorizontal(lipgloss.Top, scene, "  ", side.String())
	if v.showHelp {
		return helpOverlay() + "\n" + main
	}
	return main
}

func (v SimView) statusLine() string {
	var status string
	switch {
	case v.recording:
		status = viz.RecordingStyle().Render("● REC") + " " + viz.StatusStyle(v.loop.Running()).Render(v.loop.State().String())
	case v.done:
		status = viz.StatusStyle(false).Render("FINISHED (r to restart)")
	default:
		status = viz.StatusStyle(v.loop.Running()).Render(strings.ToUpper(v.loop.State().String()))
	}
	if v.notice != "" {
		status += "  " + viz.HelpStyle().Render(v.notice)
	}
	return status
}

func helpOverlay() string {
	return viz.PanelStyle().Render(strings.Join([]string{
		"KEYBOARD",
		"  space      pause / resume",
		"  r          reset to defaults",
		"  tab        select next parameter",
		"  up/right   increase parameter",
		"  down/left  decrease parameter",
		"  t          cycle color theme",
		"  g          toggle GIF recording",
		"  ?          toggle this help",
		"  q          quit / back",
	}, "\n"))
}

// captureFrame rasterizes the braille grid into a 1-bit paletted image.
func (v *SimView) captureFrame() {
	const charW, charH = 8, 16
	imgW, imgH := v.canvas.Width*charW, v.canvas.Height*charH
	img := image.NewPaletted(image.Rect(0, 0, imgW, imgH), color.Palette{color.Black, color.White})
	dotW, dotH := charW/2, charH/4
	for py := 0; py < v.canvas.Height*4; py++ {
		for px := 0; px < v.canvas.Width*2; px++ {
			if !v.canvas.On(px, py) {
				continue
			}
			baseX, baseY := px*dotW, py*dotH
			for dy := 0; dy < dotH; dy++ {
				for dx := 0; dx < dotW; dx++ {
					img.SetColorIndex(baseX+dx, baseY+dy, 1)
				}
			}
		}
	}
	v.frames = append(v.frames, img)
}

func (v *SimView) saveGIF() error {
	if len(v.frames) == 0 {
		return errors.New("no frames captured")
	}
	anim := gif.GIF{LoopCount: 0}
	delay := 100 / v.fps
	if delay < 2 {
		delay = 2
	}
	for _, frame := range v.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}
	f, err := os.Create(v.gifPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, &anim)
}
