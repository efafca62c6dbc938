package filesystem

import "io/fs"

// FS is the filesystem surface the harness materializes fixtures
// through. The OS implementation is used for real workspaces; the
// memory implementation backs fast unit tests of the materializer.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)
	Remove(name string) error
	RemoveAll(path string) error
	Chmod(name string, mode fs.FileMode) error
}
