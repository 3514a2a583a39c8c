package portfolio

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/folium/backend/internal/model"
)

func testDefaults() model.PortfolioData {
	return model.PortfolioData{
		About:           &model.AboutProfile{Name: "Default"},
		Projects:        []*model.Project{{ID: "default-p", Title: "Bundled"}},
		Skills:          []*model.Skill{},
		SkillCategories: []*model.SkillCategory{},
		Services:        []*model.Service{},
		Experience:      []*model.Experience{},
	}
}

func TestClient_Load_MergesWithDefaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/portfolio", r.URL.Path)
		// skills はレスポンスに含めない → デフォルトが残るはず
		_ = json.NewEncoder(w).Encode(map[string]any{
			"about":    map[string]string{"name": "Server"},
			"projects": []map[string]string{{"id": "p1", "title": "From API"}},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, t.TempDir(), testDefaults())
	require.NoError(t, c.Load(context.Background()))

	data := c.Data()
	require.Equal(t, "Server", data.About.Name)
	require.Len(t, data.Projects, 1)
	require.Equal(t, "From API", data.Projects[0].Title)
	require.NotNil(t, data.Skills, "missing collection falls back to default")
}

// TestClient_Load_FallsBackToSnapshot verifies a failed fetch restores
// the last persisted snapshot.
func TestClient_Load_FallsBackToSnapshot(t *testing.T) {
	stateDir := t.TempDir()
	snap := testDefaults()
	snap.About = &model.AboutProfile{Name: "Snapshot"}
	b, err := json.Marshal(snap)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(stateDir, snapshotFile), b, 0o644))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, stateDir, testDefaults())
	err = c.Load(context.Background())
	require.Error(t, err, "fetch failure is still reported")
	require.Equal(t, "Snapshot", c.Data().About.Name)
}

// TestClient_Load_FallsBackToDefaults verifies the bundled data survives
// when there is neither server nor snapshot.
func TestClient_Load_FallsBackToDefaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, t.TempDir(), testDefaults())
	require.Error(t, c.Load(context.Background()))
	require.Equal(t, "Default", c.Data().About.Name)
}

// ---------------------------------------------------------------------------
// Mutation cache tests
// ---------------------------------------------------------------------------

func TestClient_SaveProject_CreateSplicesIntoCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/projects", r.URL.Path)
		var p model.Project
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		p.ID = "server-assigned"
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(&p)
	}))
	defer srv.Close()

	c := New(srv.URL, t.TempDir(), testDefaults())
	saved, err := c.SaveProject(context.Background(), &model.Project{Title: "New"})
	require.NoError(t, err)
	require.Equal(t, "server-assigned", saved.ID)

	data := c.Data()
	require.Len(t, data.Projects, 2, "default + created")
	require.Equal(t, "server-assigned", data.Projects[1].ID)
}

func TestClient_SaveProject_UpdateReplacesInCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/projects/default-p", r.URL.Path)
		var p model.Project
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		_ = json.NewEncoder(w).Encode(&p)
	}))
	defer srv.Close()

	c := New(srv.URL, t.TempDir(), testDefaults())
	_, err := c.SaveProject(context.Background(), &model.Project{ID: "default-p", Title: "Renamed"})
	require.NoError(t, err)

	data := c.Data()
	require.Len(t, data.Projects, 1)
	require.Equal(t, "Renamed", data.Projects[0].Title)
}

func TestClient_DeleteProject_RemovesFromCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		_ = json.NewEncoder(w).Encode(map[string]bool{"success": true})
	}))
	defer srv.Close()

	c := New(srv.URL, t.TempDir(), testDefaults())
	require.NoError(t, c.DeleteProject(context.Background(), "default-p"))
	require.Empty(t, c.Data().Projects)
}

// TestClient_Replace_LocalOnly verifies Replace never calls the server.
func TestClient_Replace_LocalOnly(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	stateDir := t.TempDir()
	c := New(srv.URL, stateDir, testDefaults())
	replacement := testDefaults()
	replacement.About = &model.AboutProfile{Name: "Imported"}
	c.Replace(replacement)

	require.Zero(t, requests)
	require.Equal(t, "Imported", c.Data().About.Name)

	// スナップショットにも書かれている
	b, err := os.ReadFile(filepath.Join(stateDir, snapshotFile))
	require.NoError(t, err)
	var snap model.PortfolioData
	require.NoError(t, json.Unmarshal(b, &snap))
	require.Equal(t, "Imported", snap.About.Name)
}

// ---------------------------------------------------------------------------
// Session tests
// ---------------------------------------------------------------------------

func TestClient_Login_StoresSessionAndSendsBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success":   true,
				"token":     "tok-123",
				"expiresAt": time.Now().Add(24 * time.Hour),
			})
		case "/api/messages":
			gotAuth = r.Header.Get("Authorization")
			_ = json.NewEncoder(w).Encode([]*model.Message{})
		}
	}))
	defer srv.Close()

	c := New(srv.URL, t.TempDir(), testDefaults())
	require.False(t, c.IsAuthenticated())

	require.NoError(t, c.Login(context.Background(), "admin123"))
	require.True(t, c.IsAuthenticated())

	_, err := c.Messages(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer tok-123", gotAuth)

	require.NoError(t, c.Logout())
	require.False(t, c.IsAuthenticated())
}

// TestClient_ExpiredSessionTreatedAsAbsent verifies an expired marker is
// the same as no session.
func TestClient_ExpiredSessionTreatedAsAbsent(t *testing.T) {
	stateDir := t.TempDir()
	marker := sessionMarker{Token: "stale", ExpiresAt: time.Now().Add(-time.Minute)}
	b, err := json.Marshal(marker)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(stateDir, sessionFile), b, 0o600))

	c := New("http://unused", stateDir, testDefaults())
	require.False(t, c.IsAuthenticated())
	require.Empty(t, c.sessionToken())
}

func TestClient_Login_WrongPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_password"})
	}))
	defer srv.Close()

	c := New(srv.URL, t.TempDir(), testDefaults())
	err := c.Login(context.Background(), "wrong")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid_password")
	require.False(t, c.IsAuthenticated())
}
