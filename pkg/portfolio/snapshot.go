package portfolio

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/folium/backend/internal/model"
)

const snapshotFile = "portfolio.json"

// writeSnapshot persists the view to the state dir. Failures are
// logged and swallowed: the snapshot is a convenience, not state.
func (c *Client) writeSnapshot(data model.PortfolioData) {
	if c.stateDir == "" {
		return
	}
	if err := os.MkdirAll(c.stateDir, 0o755); err != nil {
		slog.Warn("portfolio: snapshot dir", "error", err)
		return
	}
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		slog.Warn("portfolio: snapshot marshal", "error", err)
		return
	}
	if err := os.WriteFile(filepath.Join(c.stateDir, snapshotFile), b, 0o644); err != nil {
		slog.Warn("portfolio: snapshot write", "error", err)
	}
}

// readSnapshot loads the last persisted view, if any.
func (c *Client) readSnapshot() (model.PortfolioData, bool) {
	var data model.PortfolioData
	if c.stateDir == "" {
		return data, false
	}
	b, err := os.ReadFile(filepath.Join(c.stateDir, snapshotFile))
	if err != nil {
		return data, false
	}
	if err := json.Unmarshal(b, &data); err != nil {
		slog.Warn("portfolio: snapshot corrupt", "error", err)
		return data, false
	}
	return data, true
}
