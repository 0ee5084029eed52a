package httpstore

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/pagedlist/internal/model"
)

func TestListPage_SendsRequestAndMapsMemos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, listPath, r.URL.Path)
		require.Equal(t, "10", r.URL.Query().Get("pageSize"))
		require.Equal(t, "p2", r.URL.Query().Get("pageToken"))
		require.Equal(t, "tag:a", r.URL.Query().Get("filter"))
		require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(map[string]any{
			"memos": []map[string]any{
				{"name": "memos/1", "state": "NORMAL", "creator": "users/ann", "content": "hi", "tags": []string{"a"}, "pinned": true},
				{"name": "memos/2", "state": "ARCHIVED", "creator": "users/bob", "content": "old"},
			},
			"nextPageToken": "p3",
		})
	}))
	defer srv.Close()

	c := New(srv.URL+"/", WithToken(func() string { return "secret" }))
	resp, err := c.ListPage(context.Background(), model.PageRequest{Filter: "tag:a", PageSize: 10, PageToken: "p2"})
	require.NoError(t, err)
	require.Equal(t, "p3", resp.NextPageToken)
	require.Len(t, resp.Items, 2)
	require.Equal(t, "memos/1", resp.Items[0].ID)
	require.Equal(t, "ann", resp.Items[0].Creator)
	require.True(t, resp.Items[0].Pinned)
	require.True(t, resp.Items[1].Archived)
}

func TestListPage_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code":16,"message":"unauthenticated"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).ListPage(context.Background(), model.PageRequest{PageSize: 1})
	var se *StatusError
	require.True(t, errors.As(err, &se))
	require.Equal(t, http.StatusUnauthorized, se.StatusCode)
	require.Equal(t, "unauthenticated", se.Message)
}

func TestListPage_BreakerOpensWithoutRetrying(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL)
	for i := 0; i < 3; i++ {
		_, err := c.ListPage(context.Background(), model.PageRequest{PageSize: 1})
		require.Error(t, err)
	}
	require.EqualValues(t, 3, hits.Load(), "one request per call")

	_, err := c.ListPage(context.Background(), model.PageRequest{PageSize: 1})
	require.ErrorIs(t, err, gobreaker.ErrOpenState)
	require.EqualValues(t, 3, hits.Load())
	require.Equal(t, "open", c.State())
}
