package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/plexname/pkg/log"
	"github.com/walteh/plexname/pkg/rename"
)

var (
	// Flags
	rootPath     string
	debugLogging bool
)

// newRootCmd creates the plexname command
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plexname --path <dir>",
		Short: "Rename media files after the folder they live in",
		Long: `plexname renames every file whose name (without extension) is purely
alphanumeric so that it matches its parent directory.

For example Show/Season01/42.mkv becomes Show/Season01/Season01.mkv.
Files with spaces, dashes, underscores or other symbols in their names
are left alone.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return rename.Run(ctx, afero.NewOsFs(), rootPath, log.FromContext(ctx))
		},
	}

	addRootFlags(cmd)

	cmd.AddCommand(newVersionCmd())

	return cmd
}

// addRootFlags adds the root command flags
func addRootFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&rootPath, "path", "p", "", "root directory to process")
	_ = cmd.MarkFlagRequired("path")
	cmd.PersistentFlags().BoolVarP(&debugLogging, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debugLogging {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}
