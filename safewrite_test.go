package flowart

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type fakeSaver struct {
	err error
}

func (f fakeSaver) Save(fname string) error {
	if f.err != nil {
		return f.err
	}
	return os.WriteFile(fname, []byte("art"), 0600)
}

func TestSafeWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "samples")
	s := NewSeed(1)
	fname, err := s.SafeWrite(fakeSaver{}, dir+"/art-", ".png")
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(fname)
	if err != nil || string(data) != "art" {
		t.Errorf("Want the saved file at %s, got %q, %v", fname, data, err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("Want only the final file left, got %d entries", len(entries))
	}
}

func TestSafeWriteFailure(t *testing.T) {
	dir := t.TempDir()
	boom := errors.New("boom")
	if _, err := NewSeed(1).SafeWrite(fakeSaver{err: boom}, dir+"/art-", ".png"); !errors.Is(err, boom) {
		t.Errorf("Want the save error, got %v", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("Want the temp file removed, got %d entries", len(entries))
	}
}

func TestUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	if err := NewContext(10, 10).Save(filepath.Join(dir, "a.gif")); err == nil {
		t.Errorf("Want an error for .gif from Context")
	}
	if err := NewRaster(10, 10).Save(filepath.Join(dir, "a.svg")); err == nil {
		t.Errorf("Want an error for .svg from Raster")
	}
}
