package core

import (
	"os"
	"path"
	"sort"
	"strings"
)

// listEntries returns the names of the entries directly inside dir for which
// keep returns true. Symlinks are followed. The names are sorted.
//
// Entries are read rather than globbed, so names containing glob syntax such
// as "[" or "*" are returned verbatim.
func listEntries(dir string, keep func(os.FileInfo) bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		info, err := os.Stat(path.Join(dir, entry.Name()))
		if err != nil {
			// Dangling symlink
			continue
		}
		if keep(info) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func isDir(info os.FileInfo) bool {
	return info.IsDir()
}

// isBaseName reports whether name is a single path element
func isBaseName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}
