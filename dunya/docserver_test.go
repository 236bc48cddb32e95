package dunya

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

// archiveServer fakes the subset of the API used by the download helpers.
func archiveServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/carnatic/recording/r1", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"mbid":"r1","title":"Evening/Raga","concert":[{"mbid":"c1"}]}`)
	})
	mux.HandleFunc("/api/carnatic/concert/c1", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"mbid": "c1",
			"title": "Live in Madras",
			"concert_artists": [{"mbid":"a1","name":"S. Singer"},{"mbid":"a2","name":"V. Violinist"}],
			"recordings": [
				{"mbid":"r1","title":"Evening/Raga","disc":1,"disctrack":1},
				{"mbid":"r2","title":"Thillana","disc":1,"disctrack":2}
			]
		}`)
	})
	mux.HandleFunc("/document/by-id/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "mp3bytes:"+r.URL.Path)
	})
	return httptest.NewServer(mux)
}

func TestSourceFile(t *testing.T) {
	srv := archiveServer(t)
	defer srv.Close()

	c, err := New("tok", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	got, err := c.SourceFile(context.Background(), "r1", "pitch", "")
	if err != nil {
		t.Fatalf("SourceFile failed: %v", err)
	}
	if string(got) != "mp3bytes:/document/by-id/r1/pitch" {
		t.Fatalf("body = %q", got)
	}
}

func TestSourceFileSubtype(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
	}))
	defer srv.Close()

	c, err := New("tok", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := c.SourceFile(context.Background(), "r1", "ctonic", "tonic"); err != nil {
		t.Fatalf("SourceFile failed: %v", err)
	}
	if gotQuery != "subtype=tonic" {
		t.Fatalf("query = %q, want subtype=tonic", gotQuery)
	}
}

func TestDownloadMP3(t *testing.T) {
	srv := archiveServer(t)
	defer srv.Close()

	c, err := New("tok", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	dir := t.TempDir()
	name, err := c.DownloadMP3(context.Background(), "r1", dir)
	if err != nil {
		t.Fatalf("DownloadMP3 failed: %v", err)
	}

	// Artists joined with "and", slash in the title replaced.
	want := "S. Singer and V. Violinist - Evening-Raga.mp3"
	if name != want {
		t.Fatalf("name = %q, want %q", name, want)
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read downloaded file: %v", err)
	}
	if string(data) != "mp3bytes:/document/by-id/r1/mp3" {
		t.Fatalf("contents = %q", data)
	}
}

func TestDownloadMP3MissingDir(t *testing.T) {
	srv := archiveServer(t)
	defer srv.Close()

	c, err := New("tok", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := c.DownloadMP3(context.Background(), "r1", "/does/not/exist"); err == nil {
		t.Fatal("expected error for missing target dir")
	}
}

func TestDownloadConcert(t *testing.T) {
	srv := archiveServer(t)
	defer srv.Close()

	c, err := New("tok", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	dir := t.TempDir()
	concertDir, err := c.DownloadConcert(context.Background(), "c1", dir)
	if err != nil {
		t.Fatalf("DownloadConcert failed: %v", err)
	}
	if concertDir != "S. Singer and V. Violinist - Live in Madras" {
		t.Fatalf("concert dir = %q", concertDir)
	}

	entries, err := os.ReadDir(filepath.Join(dir, concertDir))
	if err != nil {
		t.Fatalf("read concert dir: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("file count = %d, want 2", len(entries))
	}
	want := "1 - 2 - S. Singer and V. Violinist - Thillana.mp3"
	found := false
	for _, e := range entries {
		if e.Name() == want {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing %q in %v", want, entries)
	}
}
