package store

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteReadRoundTrip(t *testing.T) {
	s := NewJSONStore(filepath.Join(t.TempDir(), "data"))

	if s.Exists("bootstrap_static") {
		t.Fatal("dataset should not exist before write")
	}
	if err := s.Write("bootstrap_static", []byte(`{"events":[]}`), false); err != nil {
		t.Fatal(err)
	}
	if !s.Exists("bootstrap_static") {
		t.Fatal("dataset should exist after write")
	}

	got, err := s.Read("bootstrap_static")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `{"events":[]}` {
		t.Errorf("read back %q", got)
	}
}

func TestWritePretty(t *testing.T) {
	s := NewJSONStore(t.TempDir())
	if err := s.Write("fixtures", []byte(`[{"id":1}]`), true); err != nil {
		t.Fatal(err)
	}
	got, err := s.Read("fixtures")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(got), "\n") {
		t.Errorf("pretty write should indent, got %q", got)
	}
}

func TestWritePrettyKeepsInvalidJSONVerbatim(t *testing.T) {
	s := NewJSONStore(t.TempDir())
	if err := s.Write("fixtures", []byte("not json"), true); err != nil {
		t.Fatal(err)
	}
	got, err := s.Read("fixtures")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "not json" {
		t.Errorf("got %q", got)
	}
}

func TestPathLayout(t *testing.T) {
	s := NewJSONStore("data")
	want := filepath.Join("data", "bootstrap_static.json")
	if got := s.Path("bootstrap_static"); got != want {
		t.Errorf("Path()=%q want %q", got, want)
	}
}
