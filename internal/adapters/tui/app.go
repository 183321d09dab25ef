// Package tui is the terminal render surface of the conference board.
package tui

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cli/browser"

	"github.com/agregator/conference-board/internal/adapters/tui/keymap"
	"github.com/agregator/conference-board/internal/adapters/tui/messages"
	"github.com/agregator/conference-board/internal/adapters/tui/styles"
	"github.com/agregator/conference-board/internal/domain"
	"github.com/agregator/conference-board/internal/ports"
)

// Options configures the App.
type Options struct {
	// Board provides snapshots and renders pages.
	Board ports.ConferenceBoard

	// RefreshInterval is the delay between periodic refreshes.
	RefreshInterval time.Duration

	// OpenURL opens a details link. Defaults to the system browser.
	OpenURL func(url string) error
}

// Validate checks that required options are set.
func (o *Options) Validate() error {
	if o.Board == nil {
		return errors.New("board is required")
	}
	if o.RefreshInterval <= 0 {
		return errors.New("refresh interval must be greater than 0")
	}
	return nil
}

// App is the board model following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ctx      context.Context
	board    ports.ConferenceBoard
	openURL  func(url string) error
	interval time.Duration

	styles  *styles.Styles
	keys    *keymap.KeyMap
	spinner spinner.Model
	help    help.Model

	snapshot   domain.Snapshot
	page       int
	selected   int
	refreshing bool
	status     string
	err        error

	width  int
	height int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the board model. ctx bounds every fetch the model starts.
func NewApp(ctx context.Context, opts Options) (*App, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.OpenURL == nil {
		// launcher output would corrupt the alt screen
		browser.Stdout = io.Discard
		browser.Stderr = io.Discard
		opts.OpenURL = browser.OpenURL
	}

	s := styles.DefaultStyles()
	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(s.Title))

	return &App{
		ctx:      ctx,
		board:    opts.Board,
		openURL:  opts.OpenURL,
		interval: opts.RefreshInterval,
		styles:   s,
		keys:     keymap.DefaultKeyMap(),
		spinner:  sp,
		help:     help.New(),
		snapshot: opts.Board.Snapshot(),
		page:     1,
	}, nil
}

// Init implements tea.Model. It loads the board and schedules the first refresh.
func (a *App) Init() tea.Cmd {
	a.refreshing = true
	return tea.Batch(
		tea.SetWindowTitle("Agregator"),
		a.spinner.Tick,
		a.loadCmd(),
		a.tickCmd(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case messages.BoardLoaded:
		a.refreshing = false
		if msg.Snapshot.Generation < a.snapshot.Generation {
			return a, nil
		}
		a.snapshot = msg.Snapshot
		if msg.Manual {
			a.status = "обновлено " + msg.Snapshot.UpdatedAt.Local().Format("15:04:05")
		}
		a.clampSelection()
		return a, nil

	case messages.RefreshTick:
		if a.refreshing {
			return a, a.tickCmd()
		}
		a.refreshing = true
		return a, tea.Batch(a.refreshCmd(false), a.tickCmd())

	case messages.BrowserOpened:
		a.err = msg.Err
		if msg.Err == nil {
			a.status = "открыто: " + msg.URL
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	current := a.render()

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll

	case key.Matches(msg, a.keys.Prev):
		a.goTo(current.Page - 1)

	case key.Matches(msg, a.keys.Next):
		a.goTo(current.Page + 1)

	case key.Matches(msg, a.keys.First):
		if !current.First.Disabled {
			a.goTo(current.First.Page)
		}

	case key.Matches(msg, a.keys.Last):
		if !current.Last.Disabled {
			a.goTo(current.Last.Page)
		}

	case key.Matches(msg, a.keys.Jump):
		if idx, ok := keymap.JumpIndex(msg.String()); ok && idx < len(current.Buttons) {
			a.goTo(current.Buttons[idx].Number)
		}

	case key.Matches(msg, a.keys.Up):
		if a.selected > 0 {
			a.selected--
		}

	case key.Matches(msg, a.keys.Down):
		if a.selected < len(current.Entries)-1 {
			a.selected++
		}

	case key.Matches(msg, a.keys.Open):
		if a.selected < len(current.Entries) && current.Entries[a.selected].HasDetails() {
			return a, a.openCmd(current.Entries[a.selected].DetailsURL)
		}

	case key.Matches(msg, a.keys.Refresh):
		if !a.refreshing {
			a.refreshing = true
			a.status = ""
			return a, a.refreshCmd(true)
		}
	}

	return a, nil
}

// goTo changes page; the value is clamped when rendering
func (a *App) goTo(page int) {
	rendered := a.board.Render(a.snapshot, page)
	if rendered.Page != a.page {
		a.selected = 0
	}
	a.page = rendered.Page
}

func (a *App) clampSelection() {
	n := len(a.render().Entries)
	if a.selected >= n {
		a.selected = max(n-1, 0)
	}
}

func (a *App) render() domain.BoardPage {
	return a.board.Render(a.snapshot, a.page)
}

// Page returns the page currently shown.
func (a *App) Page() int {
	return a.render().Page
}

// Selected returns the index of the selected entry on the current page.
func (a *App) Selected() int {
	return a.selected
}

func (a *App) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return messages.BoardLoaded{Snapshot: a.board.Load(a.ctx)}
	}
}

func (a *App) refreshCmd(manual bool) tea.Cmd {
	return func() tea.Msg {
		return messages.BoardLoaded{Snapshot: a.board.Refresh(a.ctx), Manual: manual}
	}
}

func (a *App) tickCmd() tea.Cmd {
	return tea.Tick(a.interval, func(time.Time) tea.Msg {
		return messages.RefreshTick{}
	})
}

func (a *App) openCmd(url string) tea.Cmd {
	return func() tea.Msg {
		return messages.BrowserOpened{URL: url, Err: a.openURL(url)}
	}
}
