// Package scan lists the candidate files a generation run considers.
//
// Scanning is intentionally boring: no ignore files, no symlink chasing, no
// parallelism. The tool runs once per build, so the only property that
// matters is that two runs over an unchanged tree see exactly the same files
// in exactly the same order.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Scan returns the relative slash-separated paths of every regular file
// under root, sorted lexicographically. exclude names one relative path
// (the generator's own entry file) that is dropped from the result so it is
// never mistaken for a task.
//
// Directories never appear in the result. Any listing failure aborts the
// whole scan; there are no partial results.
func Scan(root, exclude string) ([]string, error) {
	files, err := walk(root, "")
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	if exclude == "" {
		return files, nil
	}
	kept := files[:0]
	for _, f := range files {
		if f != exclude {
			kept = append(kept, f)
		}
	}
	return kept, nil
}

// walk lists one directory: its own regular files first, then each
// subdirectory's results appended, in directory-entry order.
func walk(root, rel string) ([]string, error) {
	dir := root
	if rel != "" {
		dir = filepath.Join(root, filepath.FromSlash(rel))
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory %s: %w", dir, err)
	}

	var files, subdirs []string
	for _, entry := range entries {
		p := entry.Name()
		if rel != "" {
			p = rel + "/" + p
		}
		if entry.IsDir() {
			subdirs = append(subdirs, p)
			continue
		}
		if !entry.Type().IsRegular() {
			continue
		}
		files = append(files, p)
	}

	for _, sub := range subdirs {
		nested, err := walk(root, sub)
		if err != nil {
			return nil, err
		}
		files = append(files, nested...)
	}
	return files, nil
}
