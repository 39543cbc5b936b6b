// Package scan discovers lintable files on disk for the CLI lint mode.
package scan

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"

	csslint "github.com/bearholmes/mongmung-csslint-server"
)

// lintableExts maps file extensions to the lint syntax used for them.
var lintableExts = map[string]string{
	".css":  csslint.SyntaxCSS,
	".html": csslint.SyntaxHTML,
	".htm":  csslint.SyntaxHTML,
}

var (
	ignoreOnce    sync.Once
	ignoreMatcher *ignore.GitIgnore
)

// loadGitIgnore compiles .gitignore once. Gracefully degrades when the
// file does not exist.
func loadGitIgnore() *ignore.GitIgnore {
	ignoreOnce.Do(func() {
		if gi, err := ignore.CompileIgnoreFile(".gitignore"); err == nil {
			ignoreMatcher = gi
		}
	})
	return ignoreMatcher
}

// Files expands glob patterns (doublestar ** supported), keeps only
// lintable extensions, filters gitignored relative paths and returns a
// sorted, deduplicated list.
func Files(patterns []string) ([]string, error) {
	gi := loadGitIgnore()
	seen := make(map[string]bool)
	var files []string

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}
		for _, match := range matches {
			if _, ok := lintableExts[strings.ToLower(filepath.Ext(match))]; !ok {
				continue
			}
			// gitignore only applies to paths inside the project
			if gi != nil && !filepath.IsAbs(match) && gi.MatchesPath(match) {
				continue
			}
			if !seen[match] {
				seen[match] = true
				files = append(files, match)
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

// Syntax returns the lint syntax for a path based on its extension.
func Syntax(path string) string {
	if syntax, ok := lintableExts[strings.ToLower(filepath.Ext(path))]; ok {
		return syntax
	}
	return csslint.SyntaxCSS
}
