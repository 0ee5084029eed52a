package pager

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/pagedlist/internal/model"
	"github.com/idilsaglam/pagedlist/internal/store"
)

type page struct {
	resp model.PageResponse
	err  error
}

// scriptedSource answers by filter and token and records every request.
type scriptedSource struct {
	pages    map[string]page
	requests []model.PageRequest
	ctxs     []context.Context
}

func newScripted() *scriptedSource {
	return &scriptedSource{pages: map[string]page{}}
}

func (s *scriptedSource) on(filter, token string, resp model.PageResponse, err error) {
	s.pages[filter+"|"+token] = page{resp: resp, err: err}
}

func (s *scriptedSource) ListPage(ctx context.Context, req model.PageRequest) (model.PageResponse, error) {
	s.requests = append(s.requests, req)
	s.ctxs = append(s.ctxs, ctx)
	p, ok := s.pages[req.Filter+"|"+req.PageToken]
	if !ok {
		return model.PageResponse{}, fmt.Errorf("no page scripted for %q/%q", req.Filter, req.PageToken)
	}
	return p.resp, p.err
}

func items(prefix string, from, to int) []model.Item {
	var out []model.Item
	for i := from; i <= to; i++ {
		out = append(out, model.Item{ID: fmt.Sprintf("%s%d", prefix, i), Content: prefix})
	}
	return out
}

func setup(t *testing.T, cfg Config) (*Controller, *scriptedSource, *store.Collection) {
	t.Helper()
	src := newScripted()
	coll := store.NewCollection()
	c := New(store.NewProxy(src, coll, nil), cfg)
	return c, src, coll
}

// run executes cmd and feeds its message back, like the bubbletea loop does.
func run(t *testing.T, c *Controller, cmd tea.Cmd) PageLoadedMsg {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(PageLoadedMsg)
	require.True(t, ok)
	require.True(t, c.Handle(msg))
	return msg
}

func TestNew_StartsRequestingWithEmptyToken(t *testing.T) {
	c, src, _ := setup(t, Config{})
	require.Equal(t, RequestState{IsRequesting: true}, c.State())
	require.Equal(t, model.DefaultPageSize, c.Config().PageSize)
	require.Empty(t, src.requests)
	require.True(t, c.Loading())
	require.False(t, c.LoadMoreVisible())
	require.False(t, c.EmptyVisible())
}

func TestScenarioA_FirstPage(t *testing.T) {
	c, src, _ := setup(t, Config{Filter: "tag:a", PageSize: 10})
	src.on("tag:a", "", model.PageResponse{Items: items("a", 1, 10), NextPageToken: "p2"}, nil)

	run(t, c, c.Init())

	require.Equal(t, []model.PageRequest{{Filter: "tag:a", PageSize: 10, PageToken: ""}}, src.requests)
	require.Equal(t, RequestState{IsRequesting: false, NextPageToken: "p2"}, c.State())
	require.True(t, c.LoadMoreVisible())
	require.False(t, c.EmptyVisible())
	require.Len(t, c.Items(), 10)
}

func TestScenarioB_LoadMoreToTheEnd(t *testing.T) {
	c, src, _ := setup(t, Config{Filter: "tag:a", PageSize: 10})
	src.on("tag:a", "", model.PageResponse{Items: items("a", 1, 10), NextPageToken: "p2"}, nil)
	src.on("tag:a", "p2", model.PageResponse{Items: items("a", 11, 15)}, nil)
	run(t, c, c.Init())

	cmd := c.LoadMore("p2")
	require.True(t, c.State().IsRequesting)
	run(t, c, cmd)

	require.Equal(t, "p2", src.requests[1].PageToken)
	require.Equal(t, RequestState{}, c.State())
	require.False(t, c.LoadMoreVisible())
	require.False(t, c.EmptyVisible())
	require.NoError(t, c.Err())
	require.Len(t, c.Items(), 15)
	require.Equal(t, "a15", c.Items()[14].ID)
}

func TestScenarioC_FilterChangeDropsInFlightPage(t *testing.T) {
	for _, staleFirst := range []bool{true, false} {
		t.Run(fmt.Sprintf("stale_arrives_first=%v", staleFirst), func(t *testing.T) {
			c, src, coll := setup(t, Config{Filter: "tag:a", PageSize: 10})
			src.on("tag:a", "", model.PageResponse{Items: items("a", 1, 10), NextPageToken: "p2"}, nil)
			src.on("tag:a", "p2", model.PageResponse{Items: items("a", 11, 15), NextPageToken: "p3"}, nil)
			src.on("tag:b", "", model.PageResponse{Items: items("b", 1, 3)}, nil)
			run(t, c, c.Init())

			stale := c.LoadMore("p2")
			require.NotNil(t, stale)
			fresh := c.SetConfig(Config{Filter: "tag:b", PageSize: 10})
			require.NotNil(t, fresh)
			require.Equal(t, RequestState{IsRequesting: true}, c.State())
			require.Zero(t, coll.Len(), "reset clears the shared collection")

			if staleFirst {
				run(t, c, stale)
				require.Zero(t, coll.Len())
				require.True(t, c.State().IsRequesting)
				run(t, c, fresh)
			} else {
				run(t, c, fresh)
				run(t, c, stale)
			}

			require.Equal(t, RequestState{IsRequesting: false}, c.State())
			got := c.Items()
			require.Len(t, got, 3)
			for _, it := range got {
				require.Equal(t, "b", it.Content)
			}
			require.False(t, c.EmptyVisible())
		})
	}
}

func TestScenarioD_ResetFailureShowsEmptyState(t *testing.T) {
	c, src, _ := setup(t, Config{Filter: "tag:a"})
	boom := errors.New("connection refused")
	src.on("tag:a", "", model.PageResponse{}, boom)

	require.NotPanics(t, func() { run(t, c, c.Init()) })

	require.Equal(t, RequestState{IsRequesting: false, NextPageToken: ""}, c.State())
	require.True(t, c.EmptyVisible())
	require.False(t, c.LoadMoreVisible())
	require.True(t, store.IsTransient(c.Err()))
	require.ErrorIs(t, c.Err(), boom)
	require.Len(t, src.requests, 1, "no automatic retry")
}

func TestLoadMoreFailure_KeepsTokenForRetry(t *testing.T) {
	c, src, _ := setup(t, Config{PageSize: 2})
	src.on("", "", model.PageResponse{Items: items("x", 1, 2), NextPageToken: "p2"}, nil)
	src.on("", "p2", model.PageResponse{}, errors.New("503"))
	run(t, c, c.Init())

	run(t, c, c.LoadNext())
	require.Equal(t, RequestState{IsRequesting: false, NextPageToken: "p2"}, c.State())
	require.True(t, c.LoadMoreVisible())
	require.Error(t, c.Err())
	require.Len(t, c.Items(), 2)

	src.on("", "p2", model.PageResponse{Items: items("x", 3, 3)}, nil)
	run(t, c, c.LoadNext())
	require.NoError(t, c.Err())
	require.Len(t, c.Items(), 3)
	require.False(t, c.LoadMoreVisible())
}

func TestLoadMore_NoOpWhileRequestingOrWithoutToken(t *testing.T) {
	c, src, _ := setup(t, Config{})
	src.on("", "", model.PageResponse{Items: items("x", 1, 1), NextPageToken: "p2"}, nil)

	initial := c.Init()
	require.Nil(t, c.LoadMore("p2"), "initial load outstanding")
	run(t, c, initial)

	require.Nil(t, c.LoadMore(""))
	first := c.LoadMore("p2")
	require.NotNil(t, first)
	require.Nil(t, c.LoadMore("p2"))
}

func TestResetAndReload_Transition(t *testing.T) {
	c, src, coll := setup(t, Config{PageSize: 3})
	src.on("", "", model.PageResponse{Items: items("x", 1, 3), NextPageToken: "p2"}, nil)
	run(t, c, c.Init())
	gen := c.Generation()

	cmd := c.ResetAndReload()
	require.Equal(t, RequestState{IsRequesting: true, NextPageToken: ""}, c.State())
	require.Zero(t, coll.Len())
	require.Equal(t, gen+1, c.Generation())

	msg := run(t, c, cmd)
	require.Equal(t, "", msg.Request.PageToken)
	require.Len(t, src.requests, 2)
	require.Equal(t, RequestState{IsRequesting: false, NextPageToken: "p2"}, c.State())
}

func TestResetAndReload_CancelsSupersededFetch(t *testing.T) {
	c, src, _ := setup(t, Config{})
	src.on("", "", model.PageResponse{}, nil)

	stale := c.Init()
	stale()
	require.NoError(t, src.ctxs[0].Err())

	c.ResetAndReload()
	require.ErrorIs(t, src.ctxs[0].Err(), context.Canceled)
}

func TestDispose_SuppressesLateCompletion(t *testing.T) {
	c, src, coll := setup(t, Config{})
	src.on("", "", model.PageResponse{Items: items("x", 1, 2), NextPageToken: "p2"}, nil)

	cmd := c.Init()
	c.Dispose()
	run(t, c, cmd)

	require.Zero(t, coll.Len())
	require.Equal(t, RequestState{IsRequesting: true}, c.State())
	require.Nil(t, c.ResetAndReload())
	require.Nil(t, c.LoadMore("p2"))
	require.True(t, c.Disposed())
}

func TestHandle_IgnoresOtherControllers(t *testing.T) {
	src := newScripted()
	src.on("", "", model.PageResponse{Items: items("x", 1, 2)}, nil)
	coll := store.NewCollection()
	a := New(store.NewProxy(src, coll, nil), Config{})
	b := New(store.NewProxy(src, coll, nil), Config{})

	msg := a.Init()()
	require.False(t, b.Handle(msg))
	require.False(t, b.Handle(tea.KeyMsg{}))
	require.True(t, a.Handle(msg))

	// b observes the same collection.
	require.Len(t, b.Items(), 2)
}

func TestSetConfig_SameQueryKeepsPages(t *testing.T) {
	c, src, _ := setup(t, Config{Filter: "tag:a", PageSize: 0})
	src.on("tag:a", "", model.PageResponse{Items: items("a", 1, 1)}, nil)
	run(t, c, c.Init())

	require.Nil(t, c.SetConfig(Config{Filter: "tag:a", PageSize: model.DefaultPageSize}))
	require.Len(t, c.Items(), 1)
}

func TestOnConfigChange(t *testing.T) {
	cases := []struct {
		name     string
		old, new Config
		want     Action
	}{
		{"unchanged", Config{Filter: "a", PageSize: 5}, Config{Filter: "a", PageSize: 5}, ActionNone},
		{"default page size", Config{Filter: "a"}, Config{Filter: "a", PageSize: model.DefaultPageSize}, ActionNone},
		{"filter", Config{Filter: "a"}, Config{Filter: "b"}, ActionReset},
		{"page size", Config{PageSize: 5}, Config{PageSize: 6}, ActionReset},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, OnConfigChange(tc.old, tc.new))
		})
	}
	assert.Equal(t, "reset", ActionReset.String())
}
