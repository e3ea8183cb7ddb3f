package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/k-sandesh/edusim/internal/models"
	"github.com/k-sandesh/edusim/internal/sim"
	"github.com/k-sandesh/edusim/internal/viz"
)

var modelBlurbs = map[string]string{
	"projectile":     "launch angle, gravity and drag",
	"kepler":         "elliptical orbits, equal areas",
	"snell":          "refraction and total internal reflection",
	"reaction":       "balanced equations in motion",
	"mitosis":        "six stages of cell division",
	"photosynthesis": "limiting factors and sugar output",
	"watercycle":     "evaporation, condensation, rain",
	"tide":           "lunar and solar bulges",
	"market":         "supply meets demand",
	"grapher":        "function families with a tracer",
	"probability":    "dice, coins and the law of large numbers",
	"tectonics":      "plate boundaries and landforms",
}

const (
	screenMenu = iota
	screenConfig
	screenSim
)

// App is the top level program: a model picker, a parameter screen and the
// running simulation.
type App struct {
	screen   int
	registry *models.Registry
	names    []string
	cursor   int

	model      sim.Model
	params     *sim.Params
	paramIndex int

	view SimView
	fps  int
}

func NewApp(fps int) App {
	reg := models.NewRegistry()
	return App{
		screen:   screenMenu,
		registry: reg,
		names:    reg.List(),
		fps:      fps,
	}
}

// Run starts the interactive program, optionally jumping straight into a
// model when name is non-empty.
func Run(name string, fps int) error {
	app := NewApp(fps)
	if name != "" {
		m, err := app.registry.Get(name)
		if err != nil {
			return err
		}
		app.enterSim(m, sim.NewParams(m.Specs()))
	}
	_, err := tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}

// RunWith starts the program directly in a simulation with the given
// pre-seeded parameters.
func RunWith(m sim.Model, p *sim.Params, fps int) error {
	app := NewApp(fps)
	app.enterSim(m, p)
	_, err := tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}

func (a *App) enterSim(m sim.Model, p *sim.Params) {
	a.view = NewSimView(m, a.fps)
	if p != nil {
		for name, val := range p.Values() {
			a.view.Loop().Params().Set(name, val)
		}
		a.view.Loop().Eval()
	}
	a.view.Loop().Start()
	a.screen = screenSim
}

func (a App) Init() tea.Cmd {
	if a.screen == screenSim {
		return a.view.tickCmd()
	}
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch a.screen {
		case screenMenu:
			return a.menuKey(key)
		case screenConfig:
			return a.configKey(key)
		case screenSim:
			switch key.String() {
			case "q", "ctrl+c", "esc":
				a.screen = screenMenu
				return a, nil
			}
		}
	}
	if a.screen == screenSim {
		var cmd tea.Cmd
		a.view, cmd = a.view.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.names)-1 {
			a.cursor++
		}
	case "enter", " ":
		m, err := a.registry.Get(a.names[a.cursor])
		if err != nil {
			return a, nil
		}
		a.model = m
		a.params = sim.NewParams(m.Specs())
		a.paramIndex = 0
		a.screen = screenConfig
	}
	return a, nil
}

func (a App) configKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	specs := a.params.Specs()
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		a.screen = screenMenu
	case "up", "k":
		if a.paramIndex > 0 {
			a.paramIndex--
		}
	case "down", "j":
		if a.paramIndex < len(specs)-1 {
			a.paramIndex++
		}
	case "left", "h":
		a.params.Nudge(specs[a.paramIndex].Name, -1)
	case "right", "l":
		a.params.Nudge(specs[a.paramIndex].Name, 1)
	case "r":
		a.params.Reset()
	case "enter":
		a.enterSim(a.model, a.params)
		return a, a.view.tickCmd()
	}
	return a, nil
}

func (a App) View() string {
	switch a.screen {
	case screenMenu:
		return a.menuView()
	case screenConfig:
		return a.configView()
	default:
		return a.view.View()
	}
}

func (a App) menuView() string {
	var b strings.Builder
	b.WriteString(viz.TitleStyle().Render("EDUSIM") + "  " +
		viz.LabelStyle().Render("classroom simulations") + "\n\n")
	for i, name := range a.names {
		m, err := a.registry.Get(name)
		if err != nil {
			continue
		}
		line := fmt.Sprintf("%-18s %s", m.Title(), viz.LabelStyle().Render(modelBlurbs[name]))
		if i == a.cursor {
			b.WriteString(viz.SelectedStyle().Render(" > "+line) + "\n")
		} else {
			b.WriteString("   " + line + "\n")
		}
	}
	b.WriteString("\n" + viz.HelpStyle().Render("↑↓ select  enter open  q quit"))
	return viz.PanelStyle().Render(b.String())
}

func (a App) configView() string {
	var b strings.Builder
	b.WriteString(viz.TitleStyle().Render(a.model.Title()) + "\n\n")
	for i, spec := range a.params.Specs() {
		val := a.params.Get(spec.Name)
		line := fmt.Sprintf("%-22s %s %8.2f", spec.Label, viz.Slider(val, spec.Min, spec.Max, 14), val)
		if i == a.paramIndex {
			b.WriteString(viz.SelectedStyle().Render(" > "+line) + "\n")
		} else {
			b.WriteString("   " + line + "\n")
		}
	}
	b.WriteString("\n" + viz.HelpStyle().Render("←→ adjust  r defaults  enter start  esc back"))
	return viz.PanelStyle().Render(b.String())
}
