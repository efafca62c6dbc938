package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vincent-herlemont/cli-integration-test/internal/version"
	"github.com/vincent-herlemont/cli-integration-test/pkg/logging"
)

var (
	verbosity int

	rootCmd = &cobra.Command{
		Use:   "fsnap",
		Short: "Manifest-driven file scaffolder",
		Long: `fsnap reads a manifest from its working directory and creates the
files and directories it describes, or lists the resulting tree. It exists
as a well-behaved executable target for integration-test harnesses.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(writeCmd)
	rootCmd.AddCommand(listCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fsnap version %s\n", version.Version)
	},
}
