package environment

import (
	"io/fs"
	"path/filepath"

	"github.com/vincent-herlemont/cli-integration-test/pkg/errors"
	"github.com/vincent-herlemont/cli-integration-test/pkg/filesystem"
)

const (
	fileMode fs.FileMode = 0644
	dirMode  fs.FileMode = 0755
	execMode fs.FileMode = 0755
)

// Setup materializes the specification store into the workspace. Parent
// directories are created on demand, existing files are overwritten, and
// existing directories are reused, so calling Setup again is safe. Any
// I/O failure aborts the test with the offending path.
func (e *Environment) Setup() {
	e.tb.Helper()

	if err := materialize(e.fs, e.root, e.entries); err != nil {
		e.tb.Fatalf("environment %q: %v", e.label, err)
	}

	e.logger.Debug().Int("entries", len(e.entries)).Msg("Workspace materialized")
}

// materialize walks the store and creates the corresponding tree under
// root. Iteration order is irrelevant: ancestors are created per entry.
// When a path already exists on disk with the other kind (file where a
// directory is specified, or vice versa), the stale entry is removed and
// recreated.
func materialize(fsys filesystem.FS, root string, entries map[string]entry) error {
	for rel, ent := range entries {
		target := filepath.Join(root, rel)

		switch ent.kind {
		case entryDir:
			if info, err := fsys.Stat(target); err == nil && !info.IsDir() {
				if err := fsys.Remove(target); err != nil {
					return errors.Wrap(err, errors.ErrEntryClash,
						"fail to replace file with directory").WithPath(target)
				}
			}
			if err := fsys.MkdirAll(target, dirMode); err != nil {
				return errors.Wrap(err, errors.ErrDirCreate, "fail to create directory").WithPath(target)
			}

		case entryFile:
			parent := filepath.Dir(target)
			if err := fsys.MkdirAll(parent, dirMode); err != nil {
				return errors.Wrap(err, errors.ErrDirCreate, "fail to create directory").WithPath(parent)
			}
			if info, err := fsys.Stat(target); err == nil && info.IsDir() {
				if err := fsys.RemoveAll(target); err != nil {
					return errors.Wrap(err, errors.ErrEntryClash,
						"fail to replace directory with file").WithPath(target)
				}
			}
			if err := fsys.WriteFile(target, []byte(ent.content), fileMode); err != nil {
				return errors.Wrap(err, errors.ErrFileWrite, "fail to create file").WithPath(target)
			}
		}
	}
	return nil
}

// SetExecPermission marks an already-materialized file executable by
// owner, group and other. Unlike Setup it reports failure instead of
// aborting: permission semantics are platform-dependent and a caller may
// legitimately skip or special-case this on platforms without them.
func (e *Environment) SetExecPermission(path string) error {
	target := filepath.Join(e.root, path)
	if err := e.fs.Chmod(target, execMode); err != nil {
		return errors.Wrap(err, errors.ErrPermission, "fail to set exec permission").WithPath(target)
	}
	return nil
}
