package tui

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"github.com/mechkit/fourbar/internal/domain"
	"github.com/mechkit/fourbar/internal/infra/config"
	"github.com/mechkit/fourbar/internal/infra/svgrender"
	"github.com/mechkit/fourbar/internal/usecase"
)

const (
	fps        = 30
	exportFile = "fourbar.svg"
)

type screen int

const (
	screenMain screen = iota
	screenPresets
)

// Slider indices; order matters for focus cycling.
const (
	sliderFrame = iota
	sliderInput
	sliderCoupler
	sliderOutput
	sliderAngle
	sliderSpeed
	sliderCount
)

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/fps, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type presetItem struct {
	preset config.Preset
}

func (p presetItem) Title() string { return p.preset.Name }
func (p presetItem) Description() string {
	l := p.preset.Links
	return fmt.Sprintf("frame %.0f · input %.0f · coupler %.0f · output %.0f", l.Frame, l.Input, l.Coupler, l.Output)
}
func (p presetItem) FilterValue() string { return p.preset.Name }

// lengthSpring eases a drawn length toward its slider target so edits
// animate instead of snapping.
type lengthSpring struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

func newLengthSpring(start float64) lengthSpring {
	return lengthSpring{
		spring: harmonica.NewSpring(harmonica.FPS(fps), 8.0, 0.9),
		pos:    start,
	}
}

func (s *lengthSpring) step(target float64) float64 {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, target)
	return s.pos
}

type model struct {
	theme Theme
	deps  Deps

	scr     screen
	sliders [sliderCount]slider
	focus   int

	player  usecase.Player
	springs [4]lengthSpring // frame, input, coupler, output
	shown   domain.LinkSet  // spring-smoothed lengths actually drawn
	frame   domain.JointFrame
	cls     domain.MechanismClass

	presets list.Model

	width  int
	height int
	status string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()
	cfg := deps.Config

	start := config.Preset{
		Name:     "default",
		Links:    domain.LinkSet{Frame: 200, Input: 80, Coupler: 180, Output: 140},
		AngleDeg: 60,
	}
	if len(cfg.Presets) > 0 {
		start = cfg.Presets[0]
	}
	if deps.Preset != "" {
		if p, ok := cfg.FindPreset(deps.Preset); ok {
			start = p
		}
	}

	items := make([]list.Item, 0, len(cfg.Presets))
	for _, p := range cfg.Presets {
		items = append(items, presetItem{preset: p})
	}
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Presets"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	m := model{
		theme:   t,
		deps:    deps,
		scr:     screenMain,
		presets: l,
		player:  usecase.NewPlayer(start.AngleDeg, 90),
		width:   100,
		height:  32,
	}
	m.applyPreset(start)
	return m
}

// applyPreset resets sliders, springs, and the player to a configuration.
func (m *model) applyPreset(p config.Preset) {
	b := m.deps.Config.Bounds
	m.sliders[sliderFrame] = slider{label: "frame", value: p.Links.Frame, min: b.Frame.Min, max: b.Frame.Max, step: 1}
	m.sliders[sliderInput] = slider{label: "input", value: p.Links.Input, min: b.Input.Min, max: b.Input.Max, step: 1}
	m.sliders[sliderCoupler] = slider{label: "coupler", value: p.Links.Coupler, min: b.Coupler.Min, max: b.Coupler.Max, step: 1}
	m.sliders[sliderOutput] = slider{label: "output", value: p.Links.Output, min: b.Output.Min, max: b.Output.Max, step: 1}
	m.sliders[sliderAngle] = slider{label: "angle", value: p.AngleDeg, min: 0, max: 360, step: 1, unit: "°"}
	m.sliders[sliderSpeed] = slider{label: "speed", value: m.player.SpeedDeg, min: 10, max: 360, step: 10, unit: "°/s"}

	for i, v := range [4]float64{p.Links.Frame, p.Links.Input, p.Links.Coupler, p.Links.Output} {
		m.springs[i] = newLengthSpring(v)
	}
	m.shown = p.Links
	m.player.AngleDeg = p.AngleDeg
	m.frame = domain.Solve(m.shown, m.player.AngleDeg)
	m.cls = domain.Classify(p.Links)
}

// targetLinks are the slider values: what the user asked for, as opposed
// to the spring-smoothed lengths currently drawn.
func (m model) targetLinks() domain.LinkSet {
	return domain.LinkSet{
		Frame:   m.sliders[sliderFrame].value,
		Input:   m.sliders[sliderInput].value,
		Coupler: m.sliders[sliderCoupler].value,
		Output:  m.sliders[sliderOutput].value,
	}
}

func (m model) Init() tea.Cmd { return tickCmd() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.presets.SetSize(msg.Width-8, msg.Height-12)
		return m, nil

	case tickMsg:
		return m.tick(), tickCmd()

	case tea.KeyMsg:
		if m.scr == screenPresets {
			return m.updatePresets(msg)
		}
		return m.updateMain(msg)
	}
	return m, nil
}

// tick runs once per frame: ease lengths, advance the crank, re-solve.
func (m model) tick() model {
	target := m.targetLinks()
	m.shown = domain.LinkSet{
		Frame:   m.springs[0].step(target.Frame),
		Input:   m.springs[1].step(target.Input),
		Coupler: m.springs[2].step(target.Coupler),
		Output:  m.springs[3].step(target.Output),
	}

	m.player.SpeedDeg = m.sliders[sliderSpeed].value
	m.frame = m.player.Tick(m.shown, 1.0/fps)
	if m.player.Playing {
		m.sliders[sliderAngle].setValue(m.player.AngleDeg)
	}
	return m
}

func (m model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "tab", "down":
		m.focus = (m.focus + 1) % sliderCount
	case "shift+tab", "up":
		m.focus = (m.focus + sliderCount - 1) % sliderCount

	case "right", "l":
		m.adjustFocused(+1, false)
	case "left", "h":
		m.adjustFocused(-1, false)
	case "shift+right", "L":
		m.adjustFocused(+1, true)
	case "shift+left", "H":
		m.adjustFocused(-1, true)

	case " ":
		m.player.Playing = !m.player.Playing

	case "p":
		if len(m.presets.Items()) > 0 {
			m.scr = screenPresets
		} else {
			m.status = "no presets configured"
		}

	case "e":
		m = m.exportSVG()
	}
	return m, nil
}

func (m *model) adjustFocused(dir int, coarse bool) {
	s := &m.sliders[m.focus]
	if dir > 0 {
		s.inc(coarse)
	} else {
		s.dec(coarse)
	}

	switch m.focus {
	case sliderAngle:
		m.player.AngleDeg = s.value
	case sliderSpeed:
		m.player.SpeedDeg = s.value
	default:
		m.cls = domain.Classify(m.targetLinks())
	}
}

func (m model) updatePresets(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "b", "q":
		m.scr = screenMain
		return m, nil
	case "enter":
		if it, ok := m.presets.SelectedItem().(presetItem); ok {
			m.applyPreset(it.preset)
			m.status = fmt.Sprintf("preset %q applied", it.preset.Name)
		}
		m.scr = screenMain
		return m, nil
	}

	var cmd tea.Cmd
	m.presets, cmd = m.presets.Update(msg)
	return m, cmd
}

// exportSVG writes the current mechanism with its coupler trace next to
// the working directory.
func (m model) exportSVG() model {
	links := m.targetLinks()

	res, err := usecase.Sweep(context.Background(), links, 0, 360, 2)
	if err != nil {
		m.status = fmt.Sprintf("export failed: %v", err)
		return m
	}

	data := svgrender.Render(links, m.sliders[sliderAngle].value, svgrender.Options{Trace: res.Trace})
	if err := os.WriteFile(exportFile, data, 0o644); err != nil {
		m.status = fmt.Sprintf("export failed: %v", err)
		if m.deps.Logger != nil {
			m.deps.Logger.Error("export.svg", "err", err)
		}
		return m
	}

	m.status = fmt.Sprintf("wrote %s", exportFile)
	if m.deps.Logger != nil {
		m.deps.Logger.Info("export.svg", "path", exportFile, "category", m.cls.Category)
	}
	return m
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)

	header := m.theme.Title.Render("fourbar") + "  " +
		m.theme.Subtitle.Render("planar four-bar linkage explorer")

	if m.scr == screenPresets {
		return wrap.Render(header + "\n\n" + m.theme.Card.Render(m.presets.View()) + "\n" +
			m.theme.Help.Render("enter apply · esc back"))
	}

	trackWidth := m.width - 30
	if trackWidth > 48 {
		trackWidth = 48
	}
	rows := make([]string, 0, sliderCount)
	for i := range m.sliders {
		rows = append(rows, m.sliders[i].view(trackWidth, i == m.focus, m.theme))
	}
	controls := m.theme.Card.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	canvasW := m.width - 8
	if canvasW < 40 {
		canvasW = 40
	} else if canvasW > 110 {
		canvasW = 110
	}
	canvasH := m.height - sliderCount - 12
	if canvasH < 10 {
		canvasH = 10
	} else if canvasH > 26 {
		canvasH = 26
	}
	drawing := m.theme.Card.Render(drawMechanism(m.shown, m.frame, canvasW, canvasH, m.theme))

	banner := m.bannerLine()

	playState := "paused"
	if m.player.Playing {
		playState = "playing"
	}
	help := m.theme.Help.Render(fmt.Sprintf(
		"tab focus · ←/→ adjust (shift coarse) · space %s · p presets · e export svg · q quit", playState))

	parts := []string{header, controls, drawing, banner, help}
	if m.status != "" {
		parts = append(parts, m.theme.Status.Render(m.status))
	}
	return wrap.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m model) bannerLine() string {
	badge := m.theme.Banners[m.cls.Category].Render(m.cls.Category.Label())

	detail := fmt.Sprintf("  shortest: %s (%.0f) · longest: %s (%.0f) · S+L %.1f vs P+Q %.1f",
		m.cls.Shortest, m.cls.S, m.cls.Longest, m.cls.L, m.cls.S+m.cls.L, m.cls.PQ)

	line := badge + m.theme.Subtitle.Render(detail)
	if !m.frame.Valid {
		line += "  " + m.theme.Banners[domain.CategoryInvalid].Render("no assembly at this angle")
	}
	return line
}
