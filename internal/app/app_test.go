package app

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexus/internal/config"
)

func TestNew_EmbeddedServesEverything(t *testing.T) {
	cfg := config.Defaults()
	cfg.EmbeddedAssets = true
	a, err := New(cfg, zerolog.New(io.Discard))
	require.NoError(t, err)

	for _, p := range []string{"/", "/style.css", "/script.js", "/models"} {
		rec := httptest.NewRecorder()
		a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, p, nil))
		assert.Equal(t, http.StatusOK, rec.Code, p)
	}
}

func TestNew_MissingAssetsDirFails(t *testing.T) {
	cfg := config.Defaults()
	cfg.AssetsDir = filepath.Join(t.TempDir(), "missing")
	_, err := New(cfg, zerolog.New(io.Discard))
	assert.Error(t, err)
}

func TestNew_InvalidConfigFails(t *testing.T) {
	cfg := config.Defaults()
	cfg.LogFormat = "xml"
	_, err := New(cfg, zerolog.New(io.Discard))
	assert.Error(t, err)
}

func TestNew_EmptyDirStartsAndWarns(t *testing.T) {
	var buf safeBuffer
	cfg := config.Defaults()
	cfg.AssetsDir = t.TempDir()
	a, err := New(cfg, zerolog.New(&buf))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "asset missing")

	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	require.NoError(t, os.WriteFile(filepath.Join(cfg.AssetsDir, "index.html"), []byte("<html></html>"), 0o644))
	rec = httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
