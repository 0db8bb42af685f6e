package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(ctx context.Context, msg string, kv ...any)             {}
func (nopLogger) Error(ctx context.Context, msg string, err error, kv ...any) {}

const projectsBody = `{"projects": [
	{"id": "p1", "name": "Rimba Raya", "location": "Indonesia", "type": "redd+",
	 "registry": "verra", "methodology": "VM0007", "supply": 130000,
	 "retired": 41000, "price_usd": 6.4, "vintage": 2019},
	{"id": "p2", "name": "Prairie Wind", "location": "USA", "type": "wind",
	 "registry": "acr", "methodology": "ACM0002", "supply": 88000,
	 "retired": 12000, "price_usd": 3.1, "vintage": 2021}
]}`

func testServer(t *testing.T) *httptest.Server {

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/projects", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(projectsBody))
	})
	mux.HandleFunc("/v1/retirements", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"total_retired": 53000, "retired_today": 120, "beneficiaries": 44}`))
	})
	mux.HandleFunc("/v1/token-stats", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"bridged": 21000000, "outstanding": 18500000, "market_cap_usd": 64000000}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestRefresh(t *testing.T) {

	server := testServer(t)
	cfg := &Config{Endpoint: server.URL}
	clt := cfg.New(nopLogger{})

	snap, ret, tok, err := clt.Refresh(context.Background())
	require.NoError(t, err)

	require.Len(t, snap.Projects, 2)
	assert.Equal(t, "Rimba Raya", snap.Projects[0].Name)
	assert.Equal(t, 130000.0, snap.Projects[0].Supply)
	assert.False(t, snap.FetchedAt.IsZero())
	assert.Equal(t, 53000.0, ret.TotalRetired)
	assert.Equal(t, 64000000.0, tok.MarketCap)
}

func TestGetProjectsStatusError(t *testing.T) {

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	cfg := &Config{Endpoint: server.URL}
	clt := cfg.New(nopLogger{})

	_, err := clt.GetProjects(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 502")
}

func TestRefreshCancelsPrevious(t *testing.T) {

	var started atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/projects", func(w http.ResponseWriter, r *http.Request) {
		// first request hangs until cancelled; later ones answer
		if started.Add(1) == 1 {
			<-r.Context().Done()
			return
		}
		w.Write([]byte(projectsBody))
	})
	mux.HandleFunc("/v1/retirements", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"total_retired": 1}`))
	})
	mux.HandleFunc("/v1/token-stats", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"bridged": 1}`))
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	cfg := &Config{Endpoint: server.URL}
	clt := cfg.New(nopLogger{})

	firstErr := make(chan error, 1)
	go func() {
		_, _, _, err := clt.Refresh(context.Background())
		firstErr <- err
	}()

	// wait for the first refresh to be in flight, then start another
	require.Eventually(t, func() bool { return started.Load() > 0 },
		time.Second, 5*time.Millisecond)

	_, _, _, err := clt.Refresh(context.Background())
	require.NoError(t, err)

	select {
	case err := <-firstErr:
		require.Error(t, err, "first refresh should have been cancelled")
	case <-time.After(2 * time.Second):
		t.Fatal("first refresh never returned")
	}
}
