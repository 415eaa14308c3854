package gradient

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestMetadataRoundTrip(t *testing.T) {
	g, err := New(MustParseHex("#0a0b0c"), MustParseHex("#F0E0D0"), 12, Width(40))
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "gradient.json")
	if err := g.WriteMetadata(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadMetadata(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Start() != g.Start() || loaded.End() != g.End() || loaded.Steps() != g.Steps() || loaded.Width() != 40 {
		t.Errorf("loaded %v -> %v (%d steps, width %d)", loaded.Start(), loaded.End(), loaded.Steps(), loaded.Width())
	}
	want := g.Colors()
	for i, c := range loaded.Colors() {
		if c != want[i] {
			t.Errorf("sample %d = %v, want %v", i, c, want[i])
		}
	}
}

func TestLoadMetadataOverrides(t *testing.T) {
	g, err := New(black, white, 2)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "gradient.json")
	if err := g.WriteMetadata(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadMetadata(path, Width(9))
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Width() != 9 {
		t.Errorf("Width() = %d, want 9", loaded.Width())
	}
}

func TestLoadMetadataErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadMetadata(filepath.Join(dir, "nope.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v", err)
	}
	if _, err := LoadMetadata(dir); err == nil {
		t.Error("expected error loading a directory")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"Start":"red","End":"#000000","Steps":2,"Width":5}`), 0640); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMetadata(bad); !errors.Is(err, ErrInvalidHex) {
		t.Errorf("bad start error = %v, want ErrInvalidHex", err)
	}

	garbage := filepath.Join(dir, "garbage.json")
	if err := os.WriteFile(garbage, []byte(`{`), 0640); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMetadata(garbage); err == nil {
		t.Error("expected error for truncated JSON")
	}
}
