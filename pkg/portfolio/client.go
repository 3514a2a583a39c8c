// Package portfolio provides the admin client for the portfolio API: an
// in-memory view of all public collections loaded by one aggregate fetch,
// typed mutation helpers that splice server responses back into that view,
// and a local snapshot file used as a fallback when the API is down.
package portfolio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/folium/backend/internal/model"
)

// Client は PortfolioData のセッション内キャッシュと REST 呼び出しを束ねる。
// グローバルシングルトンにせず、利用側が生成して引き回す。
type Client struct {
	baseURL  string
	httpc    *http.Client
	stateDir string
	defaults model.PortfolioData

	mu   sync.RWMutex
	data model.PortfolioData
}

// New creates a Client for the API at baseURL. stateDir is where the
// local snapshot and session marker are kept. defaults is the statically
// bundled data used until the first successful load and for any
// collection the server does not return.
func New(baseURL, stateDir string, defaults model.PortfolioData) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		httpc:    &http.Client{},
		stateDir: stateDir,
		defaults: defaults,
		data:     defaults,
	}
}

// Load issues the aggregate fetch and replaces the in-memory view.
// On success each collection is merged with the defaults (a collection
// absent from the response falls back to its default) and the merged
// snapshot is written to the state dir. On failure the last known-good
// snapshot is restored if one exists, else the defaults stay in place;
// the fetch error is still returned so the caller can surface it.
func (c *Client) Load(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/portfolio", nil)
	if err != nil {
		return err
	}

	resp, err := c.httpc.Do(req)
	if err == nil {
		defer resp.Body.Close()
		if resp.StatusCode == http.StatusOK {
			var fetched model.PortfolioData
			if decErr := json.NewDecoder(resp.Body).Decode(&fetched); decErr == nil {
				merged := c.mergeDefaults(fetched)
				c.mu.Lock()
				c.data = merged
				c.mu.Unlock()
				c.writeSnapshot(merged)
				return nil
			}
			err = fmt.Errorf("portfolio: decode aggregate response")
		} else {
			err = fmt.Errorf("portfolio: aggregate fetch: %s", resp.Status)
		}
	}

	// キャッシュへのフォールバック。スナップショットが無ければ初期データのまま
	if snap, ok := c.readSnapshot(); ok {
		c.mu.Lock()
		c.data = snap
		c.mu.Unlock()
	}
	return err
}

// mergeDefaults fills any collection missing from fetched with the
// bundled default so all fields always exist.
func (c *Client) mergeDefaults(fetched model.PortfolioData) model.PortfolioData {
	merged := fetched
	if merged.About == nil {
		merged.About = c.defaults.About
	}
	if merged.Projects == nil {
		merged.Projects = c.defaults.Projects
	}
	if merged.Skills == nil {
		merged.Skills = c.defaults.Skills
	}
	if merged.SkillCategories == nil {
		merged.SkillCategories = c.defaults.SkillCategories
	}
	if merged.Services == nil {
		merged.Services = c.defaults.Services
	}
	if merged.Experience == nil {
		merged.Experience = c.defaults.Experience
	}
	return merged
}

// Data returns the current in-memory view.
func (c *Client) Data() model.PortfolioData {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data
}

// Replace overwrites the whole in-memory view and the local snapshot.
// Used by import/export/reset flows. NOTE: the replaced data is NOT sent
// to the server; a reload from another device will not see it.
func (c *Client) Replace(data model.PortfolioData) {
	c.mu.Lock()
	c.data = data
	c.mu.Unlock()
	c.writeSnapshot(data)
}

// doJSON issues a JSON request against the API, attaching the session
// token when one is stored. out may be nil.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.sessionToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		if e.Error == "" {
			e.Error = resp.Status
		}
		return fmt.Errorf("portfolio: %s %s: %s", method, path, e.Error)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// upsertSlice replaces the element matched by sameID, or appends.
func upsertSlice[T any](list []*T, item *T, sameID func(*T) bool) []*T {
	for i, e := range list {
		if sameID(e) {
			list[i] = item
			return list
		}
	}
	return append(list, item)
}

// removeSlice drops all elements matched by match. A fresh slice is
// returned so views handed out earlier keep their elements.
func removeSlice[T any](list []*T, match func(*T) bool) []*T {
	out := make([]*T, 0, len(list))
	for _, e := range list {
		if !match(e) {
			out = append(out, e)
		}
	}
	return out
}
