// Package api is the registry HTTP client.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/pkg/errors"

	nt "carbonboard/entity"
)

// Config configures the registry client.
type Config struct {
	Endpoint string
	Timeout  time.Duration
}

// Client fetches project, retirement, and tokenization records.  At most
// one Refresh is in flight: starting another cancels the previous one, so
// a manual refresh during a scheduled one cannot race state updates.
type Client struct {
	endpoint string
	client   *http.Client
	logger   nt.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	gen    uint64
}

// New creates a registry client.
func (cfg *Config) New(lgr nt.Logger) *Client {

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		endpoint: cfg.Endpoint,
		client:   &http.Client{Timeout: timeout},
		logger:   lgr,
	}
}

// Refresh fetches a full dashboard dataset, cancelling any refresh still
// in flight.
func (clt *Client) Refresh(ctx context.Context) (snap nt.Snapshot, ret nt.RetirementStats, tok nt.TokenStats, err error) {

	ctx, cancel, gen := clt.begin(ctx)
	defer clt.done(cancel, gen)

	clt.logger.Info(ctx, "refreshing from registry", "endpoint", clt.endpoint)

	snap.Projects, err = clt.GetProjects(ctx)
	if err != nil {
		return
	}
	snap.FetchedAt = time.Now()

	ret, err = clt.GetRetirements(ctx)
	if err != nil {
		return
	}

	tok, err = clt.GetTokenStats(ctx)
	return
}

// GetProjects fetches the full project list.
func (clt *Client) GetProjects(ctx context.Context) (projects []nt.Project, err error) {

	var payload struct {
		Projects []nt.Project `json:"projects"`
	}

	err = clt.get(ctx, "/v1/projects", &payload)
	projects = payload.Projects
	return
}

// GetRetirements fetches the retirement aggregates.
func (clt *Client) GetRetirements(ctx context.Context) (ret nt.RetirementStats, err error) {

	err = clt.get(ctx, "/v1/retirements", &ret)
	return
}

// GetTokenStats fetches the tokenization aggregates.
func (clt *Client) GetTokenStats(ctx context.Context) (tok nt.TokenStats, err error) {

	err = clt.get(ctx, "/v1/token-stats", &tok)
	return
}

// unexported

// begin cancels any in-flight refresh and registers a new one.
func (clt *Client) begin(ctx context.Context) (context.Context, context.CancelFunc, uint64) {

	clt.mu.Lock()
	defer clt.mu.Unlock()

	if clt.cancel != nil {
		clt.cancel()
	}

	ctx, cancel := context.WithCancel(ctx)
	clt.cancel = cancel
	clt.gen++

	return ctx, cancel, clt.gen
}

// done releases a refresh, leaving a newer one's registration alone.
func (clt *Client) done(cancel context.CancelFunc, gen uint64) {

	cancel()

	clt.mu.Lock()
	defer clt.mu.Unlock()
	if clt.gen == gen {
		clt.cancel = nil
	}
}

func (clt *Client) get(ctx context.Context, path string, out any) (err error) {

	url := clt.endpoint + path

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		err = errors.Wrapf(err, "failed to create request for %s", url)
		return
	}
	request.Header.Set("Accept", "application/json")

	response, err := clt.client.Do(request)
	if err != nil {
		err = errors.Wrapf(err, "failed to get %s", url)
		return
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		err = errors.Errorf("unexpected status %d from %s", response.StatusCode, url)
		return
	}

	err = json.NewDecoder(response.Body).Decode(out)
	err = errors.Wrapf(err, "failed to decode response from %s", url)
	return
}
