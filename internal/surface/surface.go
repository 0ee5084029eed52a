// Package surface is the interactive list: a bubbletea model composing the
// pagination controller, the gesture adapter and the offset tracker.
package surface

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/idilsaglam/pagedlist/internal/gesture"
	"github.com/idilsaglam/pagedlist/internal/layout"
	"github.com/idilsaglam/pagedlist/internal/model"
	"github.com/idilsaglam/pagedlist/internal/pager"
	"github.com/idilsaglam/pagedlist/internal/render"
	"github.com/idilsaglam/pagedlist/internal/route"
)

// ErrNoRenderer is returned by New when Options.Renderer is nil.
var ErrNoRenderer = errors.New("surface: renderer is required")

// Options configure a list surface.
type Options struct {
	Filter   string
	PageSize int
	Renderer render.Func
	ListSort render.SortFunc

	// Route is the navigation location; it decides whether the floating
	// scroll-to-top control shows.
	Route string
	Title string

	// MaxWidth caps the list container; 0 lets it fill the terminal.
	MaxWidth int
	// GestureBreakpoint is the first width at which pull-to-refresh is off.
	GestureBreakpoint int
	PullThreshold     int

	// Width and Height are the initial terminal size, before the first
	// resize event arrives. Zero means measure the terminal.
	Width, Height int

	Logger logrus.FieldLogger
}

// ConfigChangedMsg carries a new filter/page size, e.g. from a config file
// reload.
type ConfigChangedMsg struct {
	Filter   string
	PageSize int
}

// latencyReporter is implemented by store.Proxy.
type latencyReporter interface {
	AvgLatency() time.Duration
}

type Model struct {
	ctrl    *pager.Controller
	opts    Options
	tracker *layout.Tracker
	gesture gesture.Adapter
	stats   latencyReporter

	spinner spinner.Model
	vp      viewport.Model
	help    help.Model
	keys    keyMap

	// Inline filter edit
	editing bool
	ti      textinput.Model

	width, height int
	moreLine      int // first content line of the load-more button, -1 if hidden
}

// New builds the surface over st. Nothing is fetched until Init.
func New(st pager.Store, opts Options) (Model, error) {
	if opts.Renderer == nil {
		return Model{}, ErrNoRenderer
	}
	if opts.Title == "" {
		opts.Title = "Memos"
	}
	if opts.Width <= 0 {
		opts.Width = layout.TerminalWidth()
	}
	if opts.Height <= 0 {
		opts.Height = 24
	}
	log := opts.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	m := Model{
		ctrl:     pager.New(st, pager.Config{Filter: opts.Filter, PageSize: opts.PageSize}, pager.WithLogger(log)),
		opts:     opts,
		tracker:  layout.NewTracker(layout.LeftAligned(opts.MaxWidth)),
		gesture:  gesture.NewAdapter(opts.GestureBreakpoint, opts.PullThreshold),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:     help.New(),
		keys:     defaultKeys(),
		width:    opts.Width,
		height:   opts.Height,
		moreLine: -1,
	}
	if lr, ok := st.(latencyReporter); ok {
		m.stats = lr
	}

	// set up text input for the inline filter edit
	m.ti = textinput.New()
	m.ti.Prompt = "/ "
	m.ti.Placeholder = "tag:name creator:name pinned words..."
	m.ti.CharLimit = 200

	m.tracker.Attach(m.width)
	m.vp = viewport.New(m.tracker.ContainerWidth(), 1)
	m.sync()
	return m, nil
}

// Controller exposes the pagination controller.
func (m Model) Controller() *pager.Controller { return m.ctrl }

// Init performs the initial load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.ctrl.Init(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case pager.PageLoadedMsg:
		m.ctrl.Handle(msg)
		if !m.ctrl.Loading() {
			m.gesture.Settle()
		}
		m.sync()
		return m, nil

	case gesture.RefreshRequestedMsg:
		cmd := m.ctrl.ResetAndReload()
		m.sync()
		return m, tea.Batch(cmd, m.spinner.Tick)

	case ConfigChangedMsg:
		cmd := m.ctrl.SetConfig(pager.Config{Filter: msg.Filter, PageSize: msg.PageSize})
		m.sync()
		return m, cmd

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.tracker.Resize(msg.Width)
		m.sync()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.ctrl.Loading() {
			m.sync()
		}
		return m, cmd

	case tea.MouseMsg:
		if cmd := m.gesture.Update(msg, m.width, m.vp.AtTop()); cmd != nil {
			cmds = append(cmds, cmd)
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && m.onLoadMore(msg.Y) {
			cmds = append(cmds, m.loadMore())
		}

	case tea.KeyMsg:
		m.gesture.Update(msg, m.width, m.vp.AtTop())
		if m.editing {
			return m.updateFilterInput(msg)
		}
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	cmds = append(cmds, cmd)
	m.sync()
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.dispose()
		return tea.Quit, true
	case key.Matches(msg, m.keys.LoadMore):
		return m.loadMore(), true
	case key.Matches(msg, m.keys.Filter):
		m.editing = true
		m.ti.SetValue(m.ctrl.Config().Filter)
		m.ti.CursorEnd()
		m.ti.Focus()
		m.sync()
		return textinput.Blink, true
	case key.Matches(msg, m.keys.Bigger):
		return m.setPageSize(m.ctrl.Config().PageSize * 2), true
	case key.Matches(msg, m.keys.Smaller):
		return m.setPageSize(m.ctrl.Config().PageSize / 2), true
	case key.Matches(msg, m.keys.Top):
		if m.scrollToTopVisible() {
			m.vp.GotoTop()
			m.sync()
		}
		return nil, true
	}
	return nil, false
}

func (m Model) updateFilterInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.editing = false
		m.ti.Blur()
		cmd := m.ctrl.SetConfig(pager.Config{Filter: m.ti.Value(), PageSize: m.ctrl.Config().PageSize})
		m.vp.GotoTop()
		m.sync()
		return m, cmd
	case "esc":
		m.editing = false
		m.ti.Blur()
		m.sync()
		return m, nil
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) loadMore() tea.Cmd {
	cmd := m.ctrl.LoadNext()
	m.sync()
	if cmd == nil {
		return nil
	}
	return tea.Batch(cmd, m.spinner.Tick)
}

func (m *Model) setPageSize(n int) tea.Cmd {
	n = max(n, 1)
	cmd := m.ctrl.SetConfig(pager.Config{Filter: m.ctrl.Config().Filter, PageSize: n})
	m.sync()
	return cmd
}

func (m *Model) dispose() {
	m.ctrl.Dispose()
	m.tracker.Detach()
}

func (m Model) scrollToTopVisible() bool {
	return route.IsScrollToTopVisible(m.opts.Route) && !m.vp.AtTop()
}

// items returns the shared collection in display order.
func (m Model) items() []model.Item {
	items := m.ctrl.Items()
	if m.opts.ListSort != nil {
		items = m.opts.ListSort(items)
	}
	return items
}

// Run starts the interactive list. watch, if set, receives the program's
// Send so outside events (config reloads) can reach the surface.
func Run(ctx context.Context, st pager.Store, opts Options, watch func(send func(tea.Msg))) error {
	m, err := New(st, opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if watch != nil {
		watch(p.Send)
	}
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.dispose()
	}
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
