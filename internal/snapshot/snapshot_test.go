package snapshot

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ayusman/mudra/internal/store"
	"gocv.io/x/gocv"
)

func TestFileName(t *testing.T) {
	ts := time.Date(2026, 8, 26, 14, 30, 5, 0, time.UTC)

	got := fileName(ts)
	want := "mudra_20260826_143005.jpg"
	if got != want {
		t.Errorf("fileName() = %s, want %s", got, want)
	}
}

func TestSaver_Save(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	st, err := store.New(dbPath)
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	defer st.Close()

	outDir := filepath.Join(tmpDir, "shots")
	saver := NewSaver(outDir, st.Snapshots())
	saver.now = func() time.Time {
		return time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)
	}

	frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame.Close()

	path, err := saver.Save(&frame, 1)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	t.Run("file written", func(t *testing.T) {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("screenshot file missing: %v", err)
		}
		if filepath.Base(path) != "mudra_20260826_090000.jpg" {
			t.Errorf("filename = %s, want mudra_20260826_090000.jpg", filepath.Base(path))
		}
	})

	t.Run("cataloged", func(t *testing.T) {
		snaps, err := st.Snapshots().List()
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(snaps) != 1 {
			t.Fatalf("catalog rows = %d, want 1", len(snaps))
		}
		if snaps[0].Path != path {
			t.Errorf("cataloged path = %s, want %s", snaps[0].Path, path)
		}
		if snaps[0].HandCount != 1 {
			t.Errorf("HandCount = %d, want 1", snaps[0].HandCount)
		}
		if snaps[0].Width != 640 || snaps[0].Height != 480 {
			t.Errorf("dimensions = %dx%d, want 640x480", snaps[0].Width, snaps[0].Height)
		}
	})
}

func TestSaver_CreatesDirectoryOnDemand(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "nested", "shots")
	saver := NewSaver(outDir, nil)

	frame := gocv.NewMatWithSize(48, 64, gocv.MatTypeCV8UC3)
	defer frame.Close()

	if _, err := saver.Save(&frame, 0); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if _, err := os.Stat(outDir); err != nil {
		t.Errorf("output directory not created: %v", err)
	}
}
