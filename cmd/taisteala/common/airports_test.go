package common_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/franciscopereira987/taisteala/cmd/taisteala/common"
)

func datasetServer(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	dataset, err := os.ReadFile("testdata/airports_three.dat")
	if err != nil {
		t.Fatalf("failed with error: %s", err)
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write(dataset)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestLoadAirportsCommand(t *testing.T) {
	var hits atomic.Int32
	server := datasetServer(t, &hits)
	config := common.Config{
		DataURL:  server.URL,
		DataDest: filepath.Join(t.TempDir(), "airports.dat"),
	}

	out := new(bytes.Buffer)
	if err := common.LoadAirports(context.Background(), config, out); err != nil {
		t.Fatalf("failed with error: %s", err)
	}
	if out.String() != "Loaded 4 airports\n" {
		t.Fatalf("expected: %q, got: %q", "Loaded 4 airports\n", out.String())
	}
	if hits.Load() != 1 {
		t.Fatalf("expected: %d download, got: %d", 1, hits.Load())
	}
}

func TestLoadIndexDownloadsOnlyWhenMissing(t *testing.T) {
	var hits atomic.Int32
	server := datasetServer(t, &hits)
	config := common.Config{
		DataURL:  server.URL,
		DataDest: filepath.Join(t.TempDir(), "nested", "airports.dat"),
	}

	index, err := common.LoadIndex(context.Background(), config)
	if err != nil {
		t.Fatalf("failed with error: %s", err)
	}
	if len(index) != 3 {
		t.Fatalf("expected: %d codes, got: %d", 3, len(index))
	}
	if _, err := common.LoadIndex(context.Background(), config); err != nil {
		t.Fatalf("failed with error: %s", err)
	}
	if hits.Load() != 1 {
		t.Fatalf("expected: %d download, got: %d", 1, hits.Load())
	}

	config.Fetch = true
	if _, err := common.LoadIndex(context.Background(), config); err != nil {
		t.Fatalf("failed with error: %s", err)
	}
	if hits.Load() != 2 {
		t.Fatalf("expected: %d downloads, got: %d", 2, hits.Load())
	}
}
