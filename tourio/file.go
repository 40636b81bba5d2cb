package tourio

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/katalvlaran/uncross/geom"
)

// DefaultFile is the file name used when a result is saved without a path.
const DefaultFile = "tour.txt"

// Save atomically writes points to path using the temp file + rename pattern.
// Missing parent directories are created.
func Save(path string, points []geom.Point) error {
	if path == "" {
		path = DefaultFile
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := Write(&buf, points); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to rename tour file: %w", err)
	}

	slog.Debug("tour saved", "path", path, "points", len(points))
	return nil
}

// Load reads a point file written by Save (or by hand).
func Load(path string) ([]geom.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open point file: %w", err)
	}
	defer f.Close()

	pts, err := Read(f)
	if err != nil {
		return nil, err
	}
	slog.Debug("points loaded", "path", path, "points", len(pts))
	return pts, nil
}
