package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/finger-duel/internal/canvas"
	"github.com/appengine-ltd/finger-duel/internal/config"
	"github.com/appengine-ltd/finger-duel/internal/game"
	"github.com/appengine-ltd/finger-duel/internal/replay"
)

const DefaultTickRate = time.Second / 30

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string
	Settings  config.Settings
	Script    replay.Script
	// TickRate is the wall time between simulated ticks.
	TickRate time.Duration
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	m, err := newViewerModel(a.cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	handStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	deadStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
	winStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

const headerRows = 4

type tickMsg time.Time

type viewerModel struct {
	cfg    AppConfig
	mc     game.MatchConfig
	match  *game.Match
	canvas *canvas.Canvas

	cols, rows int
	paused     bool
	status     string
	frame      string
}

func newViewerModel(cfg AppConfig) (viewerModel, error) {
	st := cfg.Settings
	if err := st.Normalize(); err != nil {
		return viewerModel{}, err
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultTickRate
	}
	m := viewerModel{
		cfg:  cfg,
		mc:   st.MatchConfig(),
		cols: 80,
		rows: 24 - headerRows,
	}
	if err := m.restart(); err != nil {
		return viewerModel{}, err
	}
	return m, nil
}

func (m *viewerModel) restart() error {
	match, err := game.NewMatch(m.mc)
	if err != nil {
		return err
	}
	m.match = match
	m.canvas = canvas.New(int(m.mc.Width), int(m.mc.Height))
	m.match.Draw(m.canvas)
	m.status = ""
	m.render()
	return nil
}

func (m viewerModel) Init() tea.Cmd {
	return tickCmd(m.cfg.TickRate)
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case " ", "space", "p":
			m.paused = !m.paused
			return m, nil
		case "r":
			if err := m.restart(); err != nil {
				m.status = err.Error()
			}
			return m, nil
		case "n", "right":
			// Single step while paused.
			if m.paused {
				m.advance()
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.rows = max(1, msg.Height-headerRows)
		m.render()
		return m, nil
	case tickMsg:
		if !m.paused {
			m.advance()
		}
		return m, tickCmd(m.cfg.TickRate)
	}
	return m, nil
}

// advance plays the next scripted tick. It is a no-op once the match ends.
func (m *viewerModel) advance() {
	if m.match.State() != game.Running {
		return
	}
	m.cfg.Script.Apply(m.match.Ticks()+1, m.match.Bus())
	_, err := m.match.Tick(m.canvas)
	switch {
	case err != nil && !errors.Is(err, game.ErrMatchConcluded):
		m.status = fmt.Sprintf("fault: %v", err)
	case m.match.State() == game.Concluded:
		m.status = conclusionText(m.match)
	}
	m.render()
}

func conclusionText(match *game.Match) string {
	if h, ok := match.Hand(match.Winner()); ok && match.Winner() != "" {
		return fmt.Sprintf("%s wins after %d ticks", h.Label(), match.Ticks())
	}
	return fmt.Sprintf("draw after %d ticks", match.Ticks())
}

func (m *viewerModel) render() {
	m.frame = canvas.ANSI(canvas.Fit(m.canvas.Image(), m.cols, m.rows))
}

func (m viewerModel) View() string {
	var b strings.Builder
	state := "playing"
	if m.paused {
		state = "paused"
	}
	b.WriteString(titleStyle.Render("FINGER DUEL"))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  replay  tick %d  %s", m.match.Ticks(), state)))
	b.WriteByte('\n')

	parts := make([]string, 0, len(m.match.Hands()))
	for _, h := range m.match.Hands() {
		style := handStyle
		if !h.Alive() {
			style = deadStyle
		}
		parts = append(parts, style.Render(fmt.Sprintf("%s %.2f %s", h.Label(), h.Health, h.LastWeapon)))
	}
	b.WriteString(strings.Join(parts, dimStyle.Render("  |  ")))
	b.WriteByte('\n')
	if m.status != "" {
		b.WriteString(winStyle.Render(m.status))
	}
	b.WriteByte('\n')
	b.WriteString(dimStyle.Render("space pause, n step, r restart, q quit"))
	b.WriteByte('\n')
	b.WriteString(m.frame)
	return b.String()
}
