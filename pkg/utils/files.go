package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FileKind selects the processing pipeline for a file.
type FileKind int

const (
	KindUnsupported FileKind = iota
	KindScript               // plain script: import-only pipeline
	KindComponent            // Svelte component: full preamble pipeline
)

var scriptExts = map[string]bool{
	".js":  true,
	".jsx": true,
	".mjs": true,
	".cjs": true,
	".ts":  true,
	".tsx": true,
	".mts": true,
	".cts": true,
}

// KindOf determines the file kind from the file extension alone.
func KindOf(filename string) FileKind {
	ext := strings.ToLower(filepath.Ext(filename))
	switch {
	case ext == ".svelte":
		return KindComponent
	case scriptExts[ext]:
		return KindScript
	default:
		return KindUnsupported
	}
}

// IsSourceFile checks if a file is handled by either pipeline.
func IsSourceFile(filename string) bool {
	return KindOf(filename) != KindUnsupported
}

// MatchesAnyGlob reports whether the path matches one of the doublestar
// patterns. Paths are normalized to slashes before matching.
func MatchesAnyGlob(path string, globs []string) bool {
	normalized := filepath.ToSlash(path)
	for _, g := range globs {
		if g == "" {
			continue
		}
		if ok, err := doublestar.Match(g, normalized); err == nil && ok {
			return true
		}
	}
	return false
}

// FindSourceFiles recursively finds all supported source files in a
// directory, skipping dependency and VCS directories and any user-supplied
// skip globs.
func FindSourceFiles(root string, skipGlobs []string) ([]string, error) {
	var sourceFiles []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() && path != root {
			name := filepath.Base(path)
			if name == "node_modules" || name == ".git" || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		if MatchesAnyGlob(rel, skipGlobs) {
			return nil
		}

		if IsSourceFile(filepath.Base(path)) {
			sourceFiles = append(sourceFiles, path)
		}

		return nil
	})

	return sourceFiles, err
}

// IsDirectory checks if the given path is a directory
func IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
