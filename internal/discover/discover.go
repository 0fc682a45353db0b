// Package discover implements the file-discovery half of `mutate
// <paths…>`: given a mix of file and directory arguments, expand
// directories into the target-language files beneath them — a filtered
// recursive walk with no metadata cache and no AST pre-parse.
package discover

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileExtension is the source file suffix this tool recognizes.
const FileExtension = ".lean"

// toolCacheDir is skipped during a directory walk, mirroring the
// target-language build tool's own scratch directory convention.
const toolCacheDir = ".lake"

// Files expands paths (a mix of files and directories) into the sorted,
// deduplicated list of target-language source files they name. Hidden
// directories (dotfiles) and toolCacheDir are skipped during recursive
// walks; an explicitly named file is always included regardless of its
// extension or hidden-ness, since the user asked for it directly.
func Files(paths []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string

	add := func(path string) {
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		if seen[abs] {
			return
		}
		seen[abs] = true
		out = append(out, path)
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(p)
			continue
		}
		walkErr := filepath.Walk(p, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				name := info.Name()
				if path != p && (strings.HasPrefix(name, ".") || name == toolCacheDir) {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.HasSuffix(info.Name(), FileExtension) {
				add(path)
			}
			return nil
		})
		if walkErr != nil {
			return nil, walkErr
		}
	}

	sort.Strings(out)
	return out, nil
}

// MatchesExclude reports whether path contains any of the exclude
// substrings, matched against the full path.
func MatchesExclude(path string, excludes []string) bool {
	for _, ex := range excludes {
		if ex != "" && strings.Contains(path, ex) {
			return true
		}
	}
	return false
}
