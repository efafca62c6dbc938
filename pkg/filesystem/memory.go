package filesystem

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryFS implements FS with in-memory storage. It covers exactly the
// surface the materializer and tree walker need; symlinks and file
// handles are out of scope.
type MemoryFS struct {
	mu    sync.RWMutex
	nodes map[string]*memNode
}

// memNode represents a file or directory in memory
type memNode struct {
	name    string
	mode    fs.FileMode
	modTime time.Time
	content []byte
	isDir   bool
}

// NewMemoryFS creates a new in-memory filesystem containing only the root
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		nodes: map[string]*memNode{
			"/": {name: "/", mode: 0755 | fs.ModeDir, modTime: time.Now(), isDir: true},
		},
	}
}

// normalizePath converts a path to clean absolute form
func normalizePath(path string) string {
	if !filepath.IsAbs(path) {
		path = "/" + path
	}
	return filepath.Clean(path)
}

func (m *MemoryFS) getNode(path string) (*memNode, error) {
	node, ok := m.nodes[normalizePath(path)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return node, nil
}

func (m *MemoryFS) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	node, err := m.getNode(name)
	if err != nil {
		return nil, err
	}
	return &memInfo{node: node}, nil
}

func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	node, err := m.getNode(name)
	if err != nil {
		return nil, err
	}
	if node.isDir {
		return nil, &fs.PathError{Op: "read", Path: name, Err: errors.New("is a directory")}
	}
	content := make([]byte, len(node.content))
	copy(content, node.content)
	return content, nil
}

func (m *MemoryFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path := normalizePath(name)

	parent, ok := m.nodes[filepath.Dir(path)]
	if !ok {
		return &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	if !parent.isDir {
		return &fs.PathError{Op: "open", Path: name, Err: errors.New("not a directory")}
	}

	if existing, ok := m.nodes[path]; ok && existing.isDir {
		return &fs.PathError{Op: "open", Path: name, Err: errors.New("is a directory")}
	}

	content := make([]byte, len(data))
	copy(content, data)
	m.nodes[path] = &memNode{
		name:    filepath.Base(path),
		mode:    perm,
		modTime: time.Now(),
		content: content,
	}
	return nil
}

func (m *MemoryFS) MkdirAll(path string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	full := normalizePath(path)
	current := "/"
	for _, part := range strings.Split(strings.Trim(full, "/"), "/") {
		if part == "" {
			continue
		}
		current = filepath.Join(current, part)
		if node, ok := m.nodes[current]; ok {
			if !node.isDir {
				return &fs.PathError{Op: "mkdir", Path: current, Err: errors.New("not a directory")}
			}
			continue
		}
		m.nodes[current] = &memNode{
			name:    part,
			mode:    perm | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		}
	}
	return nil
}

func (m *MemoryFS) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	path := normalizePath(name)
	node, err := m.getNode(path)
	if err != nil {
		return nil, err
	}
	if !node.isDir {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: errors.New("not a directory")}
	}

	var entries []fs.DirEntry
	prefix := path
	if prefix != "/" {
		prefix += "/"
	}
	for p, n := range m.nodes {
		if p == path || !strings.HasPrefix(p, prefix) {
			continue
		}
		if strings.Contains(p[len(prefix):], "/") {
			continue
		}
		entries = append(entries, &memDirEntry{node: n})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

func (m *MemoryFS) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path := normalizePath(name)
	node, ok := m.nodes[path]
	if !ok {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrNotExist}
	}
	if node.isDir {
		prefix := path + "/"
		for p := range m.nodes {
			if strings.HasPrefix(p, prefix) {
				return &fs.PathError{Op: "remove", Path: name, Err: errors.New("directory not empty")}
			}
		}
	}
	delete(m.nodes, path)
	return nil
}

func (m *MemoryFS) RemoveAll(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	full := normalizePath(path)
	if full == "/" {
		return &fs.PathError{Op: "removeall", Path: path, Err: errors.New("cannot remove root")}
	}
	delete(m.nodes, full)
	prefix := full + "/"
	for p := range m.nodes {
		if strings.HasPrefix(p, prefix) {
			delete(m.nodes, p)
		}
	}
	return nil
}

func (m *MemoryFS) Chmod(name string, mode fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	node, err := m.getNode(name)
	if err != nil {
		return &fs.PathError{Op: "chmod", Path: name, Err: fs.ErrNotExist}
	}
	node.mode = (node.mode & fs.ModeDir) | (mode &^ fs.ModeDir)
	return nil
}

// memInfo implements fs.FileInfo for memory nodes
type memInfo struct {
	node *memNode
}

func (i *memInfo) Name() string       { return i.node.name }
func (i *memInfo) Size() int64        { return int64(len(i.node.content)) }
func (i *memInfo) Mode() fs.FileMode  { return i.node.mode }
func (i *memInfo) ModTime() time.Time { return i.node.modTime }
func (i *memInfo) IsDir() bool        { return i.node.isDir }
func (i *memInfo) Sys() interface{}   { return nil }

// memDirEntry implements fs.DirEntry for memory nodes
type memDirEntry struct {
	node *memNode
}

func (d *memDirEntry) Name() string               { return d.node.name }
func (d *memDirEntry) IsDir() bool                { return d.node.isDir }
func (d *memDirEntry) Type() fs.FileMode          { return d.node.mode.Type() }
func (d *memDirEntry) Info() (fs.FileInfo, error) { return &memInfo{node: d.node}, nil }
