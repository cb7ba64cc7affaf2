package plugin

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/layoutlab/nodekit/internal/userdata"
)

// ManifestFile is the manifest name looked up in each plugin directory.
const ManifestFile = userdata.ManifestFile

// Discover returns the manifest paths of every plugin directly under dir,
// sorted by directory name. A missing dir yields no plugins.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading plugins directory %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		// Symlinked plugin directories are followed by os.Stat below.
		if !e.IsDir() && e.Type()&os.ModeSymlink == 0 {
			continue
		}
		p := filepath.Join(dir, e.Name(), ManifestFile)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return paths, nil
}
