package main

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the working directory tree as a YAML sequence",
	RunE: func(cmd *cobra.Command, args []string) error {
		var paths []string
		err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if path == "." {
				return nil
			}
			paths = append(paths, filepath.ToSlash(path))
			return nil
		})
		if err != nil {
			return fmt.Errorf("walk working directory: %w", err)
		}
		sort.Strings(paths)

		out, err := yaml.Marshal(paths)
		if err != nil {
			return fmt.Errorf("encode tree: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	},
}
