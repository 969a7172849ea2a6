package utils

import (
	"os"
	"path/filepath"
)

// AssetsDir is searched before any absolute fallback path.
var AssetsDir = "assets"

// FindFile returns the first candidate that exists. Relative candidates are
// looked up under AssetsDir first, then as given.
func FindFile(candidates ...string) string {
	for _, p := range candidates {
		if p == "" {
			continue
		}
		if !filepath.IsAbs(p) {
			local := filepath.Join(AssetsDir, p)
			if _, err := os.Stat(local); err == nil {
				return local
			}
		}
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// FindByPattern returns the first match of pattern under AssetsDir.
func FindByPattern(pattern string) string {
	files, _ := filepath.Glob(filepath.Join(AssetsDir, pattern))
	if len(files) > 0 {
		return files[0]
	}
	return ""
}
