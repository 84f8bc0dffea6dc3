// Command framewm-demo is a terminal demonstration of the layout core: a
// bubbletea program that drives an exhibitor.Exhibitor with a mocked surface
// backend and paints the resulting frame tree every frame. Adapted from the
// teacher's main.go model/Update/View skeleton and textinput usage, with
// file-navigation state replaced by exhibitor/selection state.
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/montrey/framewm/config"
	"github.com/montrey/framewm/exhibitor"
	"github.com/montrey/framewm/frame"
	"github.com/montrey/framewm/output"
	"github.com/montrey/framewm/render"
	"github.com/montrey/framewm/store"
	"github.com/montrey/framewm/strategist"
	"github.com/montrey/framewm/surface"
)

type viewMode int

const (
	modeNormal viewMode = iota
	modeSearch
)

type model struct {
	db      *sql.DB
	log     *zap.Logger
	ex      *exhibitor.Exhibitor
	sa      *surface.Mock
	cfg     config.Config
	display *frame.Frame
	nextSid surface.ID
	width   int
	height  int
	mode    viewMode
	search  textinput.Model
	status  string
}

func initialModel(db *sql.DB, log *zap.Logger, cfg config.Config, ex *exhibitor.Exhibitor, sa *surface.Mock, display *frame.Frame) model {
	ti := textinput.New()
	ti.Placeholder = "jump to title..."
	ti.CharLimit = 128
	ti.Width = 30

	return model{
		db:      db,
		log:     log,
		ex:      ex,
		sa:      sa,
		cfg:     cfg,
		display: display,
		nextSid: 1,
		mode:    modeNormal,
		search:  ti,
		status:  "n: open  p: popup  x: close  hjkl: focus  ctrl+hjkl: dive  ctrl+e: exalt  ctrl+r: ramify  ctrl+shift+h/v/s: geometry  a/A: (de)anchor  /: jump",
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func windowTitle(n surface.ID) string {
	return fmt.Sprintf("window-%d", uint64(n))
}

func (m model) spawn(isPopup bool) model {
	sid := m.nextSid
	m.nextSid++
	title := windowTitle(sid)
	leaf := m.ex.OnSurfaceReady(sid, title, isPopup)
	if leaf == nil {
		m.log.Warn("surface ready produced no leaf", zap.Uint64("sid", uint64(sid)))
	}
	return m
}

func (m model) closeSelection() model {
	sel := m.ex.Selection()
	if sel == nil || !sel.IsLeaf() {
		m.log.Info("close requested with no leaf selected")
		return m
	}
	if ok := m.ex.OnSurfaceDestroyed(sel.Sid()); !ok {
		m.log.Warn("surface destroy was a no-op", zap.Uint64("sid", uint64(sel.Sid())))
	}
	return m
}

func (m model) command(name string, ok bool) model {
	if !ok {
		m.log.Debug("command was a structural no-op", zap.String("command", name))
	}
	return m
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeSearch {
			switch msg.String() {
			case "esc":
				m.mode = modeNormal
				m.search.SetValue("")
				m.search.Blur()
				return m, nil
			case "enter":
				query := m.search.Value()
				scores, _ := store.FrecencyScores(m.db)
				frecency := func(title string) int { return scores[title] }
				title, ok := m.ex.JumpToTitle(query, frecency)
				if ok {
					_ = store.RecordFocus(m.db, title)
				} else if title != "" {
					m.log.Info("jump target already selected", zap.String("title", title))
				} else {
					m.log.Info("jump query matched nothing", zap.String("query", query))
				}
				m.mode = modeNormal
				m.search.SetValue("")
				m.search.Blur()
				return m, nil
			default:
				var cmd tea.Cmd
				m.search, cmd = m.search.Update(msg)
				return m, cmd
			}
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "n":
			return m.spawn(false), nil
		case "p":
			return m.spawn(true), nil
		case "x":
			return m.closeSelection(), nil
		case "h", "left":
			return m.command("focus_left", m.ex.FocusLeft()), nil
		case "l", "right":
			return m.command("focus_right", m.ex.FocusRight()), nil
		case "k", "up":
			return m.command("focus_up", m.ex.FocusUp()), nil
		case "j", "down":
			return m.command("focus_down", m.ex.FocusDown()), nil
		case "ctrl+h":
			return m.command("dive_left", m.ex.DiveLeft()), nil
		case "ctrl+l":
			return m.command("dive_right", m.ex.DiveRight()), nil
		case "ctrl+k":
			return m.command("dive_up", m.ex.DiveUp()), nil
		case "ctrl+j":
			return m.command("dive_down", m.ex.DiveDown()), nil
		case "ctrl+e":
			return m.command("exalt", m.ex.Exalt()), nil
		case "ctrl+r":
			return m.command("ramify", m.ex.Ramify()), nil
		case "ctrl+shift+h":
			return m.command("horizontalize", m.ex.Horizontalize()), nil
		case "ctrl+shift+v":
			return m.command("verticalize", m.ex.Verticalize()), nil
		case "ctrl+shift+s":
			return m.command("stackize", m.ex.Stackize()), nil
		case "a":
			return m.command("anchorize", m.ex.Anchorize()), nil
		case "A":
			area := surface.Area{Pos: surface.Position{X: 20, Y: 10}, Size: surface.Size{Width: 200, Height: 150}}
			return m.command("deanchorize", m.ex.Deanchorize(area)), nil
		case "/":
			m.mode = modeSearch
			m.search.Focus()
			return m, textinput.Blink
		}
	}
	return m, nil
}

func (m model) View() string {
	header := lipgloss.NewStyle().Bold(true).Render("framewm demo")
	if m.mode == modeSearch {
		header = lipgloss.JoinHorizontal(lipgloss.Left, header, "  ", m.search.View())
	}

	canvasHeight := m.height - 3
	if canvasHeight < 1 {
		canvasHeight = 20
	}
	canvasWidth := m.width
	if canvasWidth < 1 {
		canvasWidth = 80
	}

	canvas := render.Paint(m.display, canvasWidth, canvasHeight, m.ex.Selection())
	help := lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render(m.status)

	return lipgloss.JoinVertical(lipgloss.Left, header, canvas, help)
}

func main() {
	dbPathFlag := flag.String("db", "", "path to the sqlite state file")
	flag.Parse()

	dbPath := *dbPathFlag
	if dbPath == "" {
		home, _ := os.UserHomeDir()
		dbPath = filepath.Join(home, ".local", "share", "framewm", "framewm.db")
	}

	db, err := store.InitDB(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init db: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg := config.Load(db)

	strat, err := strategist.New(cfg.Strategist)
	if err != nil {
		log.Fatal("failed to load strategist config", zap.Error(err))
	}

	sa := surface.NewMock(surface.Size{Width: 400, Height: 300})
	ex := exhibitor.New(sa, strat, cfg.Compositor)

	provider := output.NewStaticProvider(output.Info{
		ID:   1,
		Area: surface.Area{Pos: surface.Position{}, Size: surface.Size{Width: 1280, Height: 720}},
	})

	var display *frame.Frame
	for _, info := range provider.Outputs() {
		display = ex.OnOutputFound(info)
	}

	p := tea.NewProgram(initialModel(db, log, cfg, ex, sa, display), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}
