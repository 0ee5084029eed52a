// Package pager sequences page requests against a shared item collection.
//
// A Controller is either Requesting or Idle, and remembers the token of the
// next page. Every reset starts a new generation; completions issued under an
// older generation are dropped, so a page that arrives after a reset can
// never leak into the fresh list.
package pager

import (
	"context"
	"io"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/idilsaglam/pagedlist/internal/model"
)

// Store is the list store the controller drives. Fetch performs the I/O and
// must not touch the collection; Commit appends a page atomically.
type Store interface {
	Fetch(ctx context.Context, req model.PageRequest) (model.PageResponse, error)
	Commit(resp model.PageResponse)
	Reset()
	CurrentItems() []model.Item
}

// RequestState is the controller's only mutable list state.
type RequestState struct {
	IsRequesting  bool
	NextPageToken model.PageCursor
}

var nextOwner atomic.Uint64

// Controller owns request sequencing for one list surface. Its methods are
// meant to be called from the bubbletea update loop only.
type Controller struct {
	id    uint64
	store Store
	cfg   Config
	log   logrus.FieldLogger

	state    RequestState
	gen      uint64
	err      error
	disposed bool

	ctx    context.Context
	genCtx context.Context
	cancel context.CancelFunc
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. The default discards.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Controller) { c.log = log }
}

// WithContext sets the parent context of every fetch.
func WithContext(ctx context.Context) Option {
	return func(c *Controller) { c.ctx = ctx }
}

// New returns a controller in the pending initial-load state. Nothing is
// fetched until Init or ResetAndReload runs.
func New(store Store, cfg Config, opts ...Option) *Controller {
	c := &Controller{
		id:    nextOwner.Add(1),
		store: store,
		cfg:   cfg.Normalize(),
		state: RequestState{IsRequesting: true},
		ctx:   context.Background(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		c.log = l
	}
	c.log = c.log.WithField("list", c.id)
	c.genCtx, c.cancel = c.ctx, func() {}
	return c
}

// Init performs the initial load.
func (c *Controller) Init() tea.Cmd {
	return c.ResetAndReload()
}

// ResetAndReload clears the shared collection and fetches the first page
// under a new generation. Any fetch still in flight is superseded.
func (c *Controller) ResetAndReload() tea.Cmd {
	if c.disposed {
		return nil
	}
	c.gen++
	c.cancel()
	c.genCtx, c.cancel = context.WithCancel(c.ctx)

	c.store.Reset()
	c.state = RequestState{IsRequesting: true, NextPageToken: ""}
	c.err = nil
	c.log.WithFields(logrus.Fields{"generation": c.gen, "filter": c.cfg.Filter}).Debug("reset list")
	return c.fetch(c.genCtx, "")
}

// LoadMore fetches the page identified by token. It is a no-op for the empty
// token and while a request is outstanding.
func (c *Controller) LoadMore(token model.PageCursor) tea.Cmd {
	if c.disposed || token == "" || c.state.IsRequesting {
		return nil
	}
	c.state.IsRequesting = true
	c.err = nil
	return c.fetch(c.genCtx, token)
}

// LoadNext continues from the current next-page token.
func (c *Controller) LoadNext() tea.Cmd {
	return c.LoadMore(c.state.NextPageToken)
}

func (c *Controller) fetch(ctx context.Context, token model.PageCursor) tea.Cmd {
	req := model.PageRequest{
		Filter:    c.cfg.Filter,
		PageSize:  c.cfg.PageSize,
		PageToken: token,
	}
	owner, gen, store := c.id, c.gen, c.store
	c.log.WithFields(logrus.Fields{"generation": gen, "page_token": token}).Debug("fetch page")
	return func() tea.Msg {
		resp, err := store.Fetch(ctx, req)
		return PageLoadedMsg{Owner: owner, Generation: gen, Request: req, Response: resp, Err: err}
	}
}

// Handle applies a fetch completion. It reports whether msg belonged to this
// controller; stale completions are consumed without effect.
func (c *Controller) Handle(msg tea.Msg) bool {
	m, ok := msg.(PageLoadedMsg)
	if !ok || m.Owner != c.id {
		return false
	}
	log := c.log.WithFields(logrus.Fields{"generation": m.Generation, "page_token": m.Request.PageToken})
	if c.disposed || m.Generation != c.gen {
		log.WithField("current", c.gen).Debug("drop stale page")
		return true
	}
	if m.Err != nil {
		// The token stays where it was so the same affordance can retry.
		c.state.IsRequesting = false
		c.err = m.Err
		log.WithError(m.Err).Warn("page request failed")
		return true
	}
	c.store.Commit(m.Response)
	c.state = RequestState{IsRequesting: false, NextPageToken: m.Response.NextPageToken}
	log.WithField("items", len(m.Response.Items)).Debug("applied page")
	return true
}

// SetConfig switches to cfg and reloads when the change requires it.
func (c *Controller) SetConfig(cfg Config) tea.Cmd {
	cfg = cfg.Normalize()
	action := OnConfigChange(c.cfg, cfg)
	c.cfg = cfg
	if action == ActionReset {
		return c.ResetAndReload()
	}
	return nil
}

// Dispose stops the controller. Completions arriving later are ignored.
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.gen++
	c.cancel()
}

func (c *Controller) State() RequestState { return c.state }
func (c *Controller) Config() Config      { return c.cfg }
func (c *Controller) Generation() uint64  { return c.gen }
func (c *Controller) Disposed() bool      { return c.disposed }

// Err is the error of the last failed request, cleared by the next request.
func (c *Controller) Err() error { return c.err }

// Items returns the shared collection's current items.
func (c *Controller) Items() []model.Item { return c.store.CurrentItems() }

// Loading reports whether the loading indicator should show.
func (c *Controller) Loading() bool { return c.state.IsRequesting }

// LoadMoreVisible reports whether the load-more affordance should show.
func (c *Controller) LoadMoreVisible() bool {
	return !c.state.IsRequesting && c.state.NextPageToken != ""
}

// EmptyVisible reports whether the empty state should show.
func (c *Controller) EmptyVisible() bool {
	return !c.state.IsRequesting && c.state.NextPageToken == "" && len(c.store.CurrentItems()) == 0
}
