package environment

import (
	"path"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/vincent-herlemont/cli-integration-test/pkg/errors"
	"github.com/vincent-herlemont/cli-integration-test/pkg/filesystem"
)

// Tree returns every path under the workspace root, files and
// directories at every depth, relative to the root and sorted
// lexicographically. It is a fresh snapshot on every call.
func (e *Environment) Tree() []string {
	e.tb.Helper()

	paths, err := walkTree(e.fs, e.root)
	if err != nil {
		e.tb.Fatalf("environment %q: %v", e.label, err)
	}
	return paths
}

// walkTree lists the whole subtree below root as sorted slash-separated
// relative paths, root excluded.
func walkTree(fsys filesystem.FS, root string) ([]string, error) {
	var paths []string

	var walk func(dir, rel string) error
	walk = func(dir, rel string) error {
		entries, err := fsys.ReadDir(dir)
		if err != nil {
			return errors.Wrap(err, errors.ErrTreeWalk, "fail to list directory").WithPath(dir)
		}
		for _, de := range entries {
			childRel := path.Join(rel, de.Name())
			paths = append(paths, childRel)
			if de.IsDir() {
				if err := walk(filepath.Join(dir, de.Name()), childRel); err != nil {
					return err
				}
			}
		}
		return nil
	}

	if err := walk(root, ""); err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

// ReadFile returns the full text content of a file inside the workspace.
// A missing file or non-UTF-8 content aborts the test: both indicate a
// bug in the test's own setup, not a recoverable runtime condition.
func (e *Environment) ReadFile(path string) string {
	e.tb.Helper()

	target := filepath.Join(e.root, path)
	data, err := e.fs.ReadFile(target)
	if err != nil {
		e.tb.Fatalf("environment %q: %v", e.label,
			errors.Wrap(err, errors.ErrFileRead, "fail to read file").WithPath(target))
	}
	if !utf8.Valid(data) {
		e.tb.Fatalf("environment %q: %v", e.label,
			errors.New(errors.ErrNotText, "file content is not valid UTF-8").WithPath(target))
	}
	return string(data)
}

// String renders the sorted tree one path per line, for embedding the
// whole workspace layout in a failure message.
func (e *Environment) String() string {
	var b strings.Builder
	for _, p := range e.Tree() {
		b.WriteString(p)
		b.WriteString("\n")
	}
	return b.String()
}
