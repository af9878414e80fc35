package test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// NewNameAPI serves {"code":200,"data":{"name":...}} for known keys under
// /nick/{key} and a 404 for everything else.
func NewNameAPI(t *testing.T, names map[string]string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name, ok := names[strings.TrimPrefix(r.URL.Path, "/nick/")]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"code":200,"data":{"name":%q}}`, name)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// WriteAliases writes an aliases.yaml into dir and returns its path.
func WriteAliases(t *testing.T, dir string, aliases map[string]string) string {
	t.Helper()

	data, err := yaml.Marshal(aliases)
	if err != nil {
		t.Fatalf("failed to marshal aliases: %v", err)
	}

	path := filepath.Join(dir, "aliases.yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write aliases: %v", err)
	}
	return path
}
