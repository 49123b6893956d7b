package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// NewRunDirectory creates the timestamped output directory for one run,
// e.g. azure-footprint-20260823-154501 under base.
func NewRunDirectory(base, prefix string) (string, error) {
	dir := filepath.Join(base, fmt.Sprintf("%s-%s", prefix, time.Now().Format("20060102-150405")))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return dir, nil
}
