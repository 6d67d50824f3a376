package dirs

import (
	"fmt"
	"os"
	"path/filepath"
)

const appName = "prettybytes"

// ConfigDir returns the prettybytes directory under os.UserConfigDir, so
// $XDG_CONFIG_HOME is honored on Unix.
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(base, appName), nil
}
