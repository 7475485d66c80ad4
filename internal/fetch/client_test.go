package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"fpl-stats-mcp/internal/store"
)

func testServer(t *testing.T, hits *atomic.Int64, routes map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c := NewClient(store.NewJSONStore(t.TempDir()), nil)
	c.BaseURL = baseURL
	return c
}

func TestBootstrapCaching(t *testing.T) {
	var hits atomic.Int64
	srv := testServer(t, &hits, map[string]string{
		"/bootstrap-static/": `{"events":[{"id":1,"is_current":true}],"teams":[],"elements":[],"element_types":[]}`,
	})
	c := testClient(t, srv.URL)
	ctx := context.Background()

	bs, err := c.Bootstrap(ctx, false)
	require.NoError(t, err)
	require.Len(t, bs.Events, 1)
	require.EqualValues(t, 1, hits.Load())

	// Second call is served from disk.
	_, err = c.Bootstrap(ctx, false)
	require.NoError(t, err)
	require.EqualValues(t, 1, hits.Load())

	// Force bypasses the cache and rewrites it.
	_, err = c.Bootstrap(ctx, true)
	require.NoError(t, err)
	require.EqualValues(t, 2, hits.Load())
	require.True(t, c.Store.Exists(DatasetBootstrap))
}

func TestFixturesParsesNullableFields(t *testing.T) {
	var hits atomic.Int64
	srv := testServer(t, &hits, map[string]string{
		"/fixtures/": `[{"id":1,"event":null,"kickoff_time":null,"team_h":2,"team_a":3,"team_h_score":null,"team_a_score":null,"started":false,"finished":false}]`,
	})
	c := testClient(t, srv.URL)

	fixtures, err := c.Fixtures(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, fixtures, 1)
	require.Nil(t, fixtures[0].Event)
	require.Nil(t, fixtures[0].KickoffTime)
	require.Nil(t, fixtures[0].TeamHScore)
}

func TestPerManagerEndpointsAreUncached(t *testing.T) {
	var hits atomic.Int64
	srv := testServer(t, &hits, map[string]string{
		"/entry/200/event/5/picks/": `{"active_chip":"bboost","picks":[{"element":1,"position":1,"multiplier":2,"is_captain":true}]}`,
	})
	c := testClient(t, srv.URL)
	ctx := context.Background()

	picks, err := c.Picks(ctx, 200, 5)
	require.NoError(t, err)
	require.Len(t, picks.Picks, 1)
	require.True(t, picks.Picks[0].IsCaptain)

	_, err = c.Picks(ctx, 200, 5)
	require.NoError(t, err)
	require.EqualValues(t, 2, hits.Load())
}

func TestUpstreamErrorPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)
	c := testClient(t, srv.URL)

	_, err := c.History(context.Background(), 200)
	require.Error(t, err)
	require.Contains(t, err.Error(), "503")
}
