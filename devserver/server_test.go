package devserver

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/visitorcounter/config"
	"github.com/vcrobe/visitorcounter/counter"
	"github.com/vcrobe/visitorcounter/fetch"
	"github.com/vcrobe/visitorcounter/testcomponents"
)

func newTestServer(t *testing.T, store Store, opts Options) *httptest.Server {
	t.Helper()
	s, err := New(store, opts)
	require.NoError(t, err)
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)
	return srv
}

func getCount(t *testing.T, client *http.Client, url string) int64 {
	t.Helper()
	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Count int64 `json:"count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Count
}

func TestVisitorCounter_Increments(t *testing.T) {
	srv := newTestServer(t, NewMemoryStore(1520), Options{})

	assert.Equal(t, int64(1521), getCount(t, srv.Client(), srv.URL+CounterPath))
	assert.Equal(t, int64(1522), getCount(t, srv.Client(), srv.URL+CounterPath))
}

func TestVisitorCounter_AssignsVisitorCookie(t *testing.T) {
	srv := newTestServer(t, NewMemoryStore(0), Options{})

	resp, err := srv.Client().Get(srv.URL + CounterPath)
	require.NoError(t, err)
	resp.Body.Close()

	var found bool
	for _, c := range resp.Cookies() {
		if c.Name == VisitorCookie {
			found = true
			assert.Len(t, c.Value, 36)
			assert.True(t, c.HttpOnly)
		}
	}
	assert.True(t, found)
}

func TestVisitorCounter_SimulatedFailure(t *testing.T) {
	srv := newTestServer(t, NewMemoryStore(0), Options{})

	resp, err := srv.Client().Get(srv.URL + CounterPath + "?fail=1")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestCORS(t *testing.T) {
	srv := newTestServer(t, NewMemoryStore(0), Options{AllowOrigins: []string{"https://resume.example.com"}})

	req, err := http.NewRequest(http.MethodOptions, srv.URL+CounterPath, nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://resume.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "https://resume.example.com", resp.Header.Get("Access-Control-Allow-Origin"))

	req.Header.Set("Origin", "https://elsewhere.example.com")
	resp, err = srv.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestIndex_RendersLoadingRegion(t *testing.T) {
	srv := newTestServer(t, NewMemoryStore(0), Options{Widget: config.Default()})

	resp, err := srv.Client().Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	page := string(raw)

	assert.Contains(t, page, `id="visitor-counter"`)
	assert.Contains(t, page, `class="counter-container"`)
	assert.Contains(t, page, counter.LoadingText)
	assert.Contains(t, page, "/static/counter.css")
}

func TestHealth(t *testing.T) {
	store := NewMemoryStore(0)
	srv := newTestServer(t, store, Options{})
	getCount(t, srv.Client(), srv.URL+CounterPath)

	resp, err := srv.Client().Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body struct {
		Status   string `json:"status"`
		Count    int64  `json:"count"`
		Visitors int64  `json:"visitors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, int64(1), body.Count)
	assert.Equal(t, int64(1), body.Visitors)
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visits.db")
	store, err := OpenSQLite(path)
	require.NoError(t, err)

	ctx := context.Background()
	n, err := store.RecordVisit(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	_, err = store.RecordVisit(ctx, "b")
	require.NoError(t, err)
	n, err = store.RecordVisit(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	visitors, err := store.Visitors(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), visitors)
	require.NoError(t, store.Close())

	// Totals survive a reopen.
	store, err = OpenSQLite(path)
	require.NoError(t, err)
	defer store.Close()
	n, err = store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestWidgetAgainstDevServer(t *testing.T) {
	srv := newTestServer(t, NewMemoryStore(1522), Options{})

	client, err := fetch.NewClient(srv.URL+CounterPath, fetch.WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	w := counter.New(client)
	testcomponents.NewTestRenderer(w)

	assert.Equal(t, counter.Success(1523), w.RunCycle(context.Background()))

	failing, err := fetch.NewClient(srv.URL+CounterPath+"?fail=1", fetch.WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	w = counter.New(failing)
	testcomponents.NewTestRenderer(w)
	assert.Equal(t, counter.Failure(counter.DefaultErrorMessage), w.RunCycle(context.Background()))
}
