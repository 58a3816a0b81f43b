package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nexus/internal/config"
	"nexus/pkg/types"
)

func writeAssets(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"index.html": "<!DOCTYPE html><html><body>nexus</body></html>",
		"style.css":  "body { color: red; }",
		"script.js":  "console.log('nexus');",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestE2E_ServesPageAndModels(t *testing.T) {
	dir := writeAssets(t)
	cfg := config.Defaults()
	cfg.AssetsDir = dir
	base := startServer(t, cfg)

	resp, body := doRequest(t, http.MethodGet, base+"/")
	if resp.StatusCode != http.StatusOK || !strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html") {
		t.Fatalf("GET / status=%d ct=%q", resp.StatusCode, resp.Header.Get("Content-Type"))
	}
	if !bytes.Contains(body, []byte("nexus")) {
		t.Fatalf("unexpected index body: %q", body)
	}

	resp, _ = doRequest(t, http.MethodGet, base+"/style.css")
	if resp.StatusCode != http.StatusOK || !strings.HasPrefix(resp.Header.Get("Content-Type"), "text/css") {
		t.Fatalf("GET /style.css status=%d ct=%q", resp.StatusCode, resp.Header.Get("Content-Type"))
	}
	resp, _ = doRequest(t, http.MethodGet, base+"/script.js")
	if resp.StatusCode != http.StatusOK || !strings.HasPrefix(resp.Header.Get("Content-Type"), "text/javascript") {
		t.Fatalf("GET /script.js status=%d ct=%q", resp.StatusCode, resp.Header.Get("Content-Type"))
	}

	resp, first := doRequest(t, http.MethodGet, base+"/models")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /models status=%d", resp.StatusCode)
	}
	var models []types.ModelDescriptor
	if err := json.Unmarshal(first, &models); err != nil {
		t.Fatalf("decode models: %v", err)
	}
	if len(models) != 6 {
		t.Fatalf("expected 6 models, got %d", len(models))
	}
	want := types.ModelDescriptor{ID: "gpt-4o", Name: "GPT-4o", Provider: "OpenAI", Icon: "⚡"}
	if models[0] != want {
		t.Fatalf("first model=%+v want %+v", models[0], want)
	}
	_, second := doRequest(t, http.MethodGet, base+"/models")
	if !bytes.Equal(first, second) {
		t.Fatalf("/models not byte-identical across calls")
	}
}

func TestE2E_DeletedIndexIs404(t *testing.T) {
	dir := writeAssets(t)
	cfg := config.Defaults()
	cfg.AssetsDir = dir
	base := startServer(t, cfg)

	if resp, _ := doRequest(t, http.MethodGet, base+"/"); resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 before delete, got %d", resp.StatusCode)
	}
	if err := os.Rename(filepath.Join(dir, "index.html"), filepath.Join(dir, "index.html.bak")); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if resp, _ := doRequest(t, http.MethodGet, base+"/"); resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 after rename, got %d", resp.StatusCode)
	}
	// The other assets are unaffected.
	if resp, _ := doRequest(t, http.MethodGet, base+"/style.css"); resp.StatusCode != http.StatusOK {
		t.Fatalf("expected style.css to still be served, got %d", resp.StatusCode)
	}
}

func TestE2E_WriteMethodsRejected(t *testing.T) {
	cfg := config.Defaults()
	cfg.EmbeddedAssets = true
	base := startServer(t, cfg)

	for _, p := range []string{"/", "/style.css", "/script.js", "/models"} {
		for _, m := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
			if resp, _ := doRequest(t, m, base+p); resp.StatusCode != http.StatusMethodNotAllowed {
				t.Fatalf("%s %s: expected 405, got %d", m, p, resp.StatusCode)
			}
		}
	}
}

func TestE2E_MetricsExposed(t *testing.T) {
	cfg := config.Defaults()
	cfg.EmbeddedAssets = true
	base := startServer(t, cfg)

	doRequest(t, http.MethodGet, base+"/models")
	resp, body := doRequest(t, http.MethodGet, base+"/metrics")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("/metrics status=%d", resp.StatusCode)
	}
	if !bytes.Contains(body, []byte(`nexus_http_requests_total{method="GET",path="/models",status="200"}`)) {
		t.Fatalf("expected /models request counter in metrics output")
	}
}
