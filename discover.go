package svg2png

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"
)

// ListInputs returns the regular files of dir having the InputExt suffix.
// Subdirectories are not visited. The files are returned in the order the
// directory yields them, unless sorted is set.
func ListInputs(dir string, sorted bool) ([]string, error) {
	d, err := os.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("unable to open the source directory: %w", err)
	}
	defer d.Close()

	// Readdirnames keeps the directory order, os.ReadDir would sort it.
	names, err := d.Readdirnames(-1)
	if err != nil {
		return nil, fmt.Errorf("unable to read the source directory: %w", err)
	}

	var paths []string
	for _, name := range names {
		// Hidden files are skipped, as a shell glob would.
		if strings.HasPrefix(name, ".") || !strings.HasSuffix(name, InputExt) {
			continue
		}
		path := filepath.Join(dir, name)
		fi, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("unable to stat %s: %w", path, err)
		}
		if !fi.Mode().IsRegular() {
			continue
		}
		paths = append(paths, path)
	}
	if sorted {
		slices.Sort(paths)
	}
	return paths, nil
}

// OutputPath returns the destination of input inside outDir: the base name
// with the InputExt suffix replaced by OutputExt.
func OutputPath(outDir, input string) string {
	name := strings.TrimSuffix(filepath.Base(input), InputExt)
	return filepath.Join(outDir, name+OutputExt)
}
