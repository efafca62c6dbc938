package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Create the files and directories the manifest describes",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadManifest()
		if err != nil {
			return err
		}

		for _, dir := range m.Dirs {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("create directory %s: %w", dir, err)
			}
			log.Debug().Str("dir", dir).Msg("Directory created")
		}

		for _, f := range m.Files {
			if parent := filepath.Dir(f.Path); parent != "." {
				if err := os.MkdirAll(parent, 0755); err != nil {
					return fmt.Errorf("create directory %s: %w", parent, err)
				}
			}
			if err := os.WriteFile(f.Path, []byte(f.Content), 0644); err != nil {
				return fmt.Errorf("write file %s: %w", f.Path, err)
			}
			log.Debug().Str("file", f.Path).Msg("File written")
		}

		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d files, %d dirs\n", len(m.Files), len(m.Dirs))
		return nil
	},
}
