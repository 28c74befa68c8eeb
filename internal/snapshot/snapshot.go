// Package snapshot saves annotated frames to disk and records them in the
// snapshot catalog.
package snapshot

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ayusman/mudra/internal/store"
	"github.com/google/uuid"
	"gocv.io/x/gocv"
)

// DefaultDir is the output directory created next to the working directory
// when none is configured.
const DefaultDir = "hand_detection_output"

// Saver persists frames as JPEG screenshots under timestamp-derived
// filenames. The catalog is optional: without one, screenshots are still
// written but not recorded.
type Saver struct {
	dir     string
	catalog *store.SnapshotRepository
	now     func() time.Time
}

// NewSaver creates a Saver writing into dir. The directory is created on
// first save, not up front.
func NewSaver(dir string, catalog *store.SnapshotRepository) *Saver {
	if dir == "" {
		dir = DefaultDir
	}
	return &Saver{
		dir:     dir,
		catalog: catalog,
		now:     time.Now,
	}
}

// Save writes the frame as a JPEG and catalogs it. Returns the path of the
// written file. handCount is whatever the latest detection reported for the
// frame; it is catalog metadata only.
func (s *Saver) Save(frame *gocv.Mat, handCount int) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	capturedAt := s.now()
	path := filepath.Join(s.dir, fileName(capturedAt))

	if ok := gocv.IMWrite(path, *frame); !ok {
		return "", fmt.Errorf("write screenshot %s", path)
	}

	if s.catalog != nil {
		snap := store.Snapshot{
			ID:         uuid.NewString(),
			Path:       path,
			HandCount:  handCount,
			Width:      frame.Cols(),
			Height:     frame.Rows(),
			CapturedAt: capturedAt,
		}
		if err := s.catalog.Create(snap); err != nil {
			// The file is already on disk; a catalog miss should not lose it.
			log.Printf("catalog snapshot: %v", err)
		}
	}

	return path, nil
}

// fileName derives the deterministic screenshot filename for a capture time.
func fileName(t time.Time) string {
	return fmt.Sprintf("mudra_%s.jpg", t.Format("20060102_150405"))
}
