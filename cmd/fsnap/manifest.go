package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// manifestName is resolved relative to the working directory.
const manifestName = "fsnap.toml"

// Manifest describes the entries fsnap write creates:
//
//	dir = ["empty_dir"]
//
//	[[file]]
//	path = "dir/file"
//	content = "text"
type Manifest struct {
	Files []FileEntry `toml:"file"`
	Dirs  []string    `toml:"dir"`
}

// FileEntry is one file to create, path relative to the working directory.
type FileEntry struct {
	Path    string `toml:"path"`
	Content string `toml:"content"`
}

// loadManifest reads and parses the manifest from the working directory.
func loadManifest() (*Manifest, error) {
	data, err := os.ReadFile(manifestName)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", manifestName, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", manifestName, err)
	}

	for i, f := range m.Files {
		if f.Path == "" {
			return nil, fmt.Errorf("parse %s: file entry %d has no path", manifestName, i)
		}
	}
	return &m, nil
}
