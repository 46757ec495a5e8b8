package report

import (
	"fmt"
	"os"
	"path/filepath"
)

// Write stores a rendered document at path, creating parent directories as
// needed. The file is overwritten whole; there is no append or merge, so a
// rerun with identical upstream state is idempotent.
func Write(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	return nil
}
