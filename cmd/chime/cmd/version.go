package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RonaldDijks/chime/pkg/core/version"
)

var versionFormat string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := validateFormat(versionFormat)
		if err != nil {
			return err
		}

		info := version.Get()
		text := fmt.Sprintf("chime v%s\n", info.Version) +
			fmt.Sprintf("  Language:   %s\n", info.Language) +
			fmt.Sprintf("  Git Commit: %s\n", info.Commit) +
			fmt.Sprintf("  Build Date: %s\n", info.BuildDate) +
			fmt.Sprintf("  Go Version: %s\n", info.GoVersion) +
			fmt.Sprintf("  OS/Arch:    %s", info.Platform)

		return writeOutput(cmd.OutOrStdout(), format, info, text)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().StringVarP(&versionFormat, "format", "f", formatText, "output format: text, json or yaml")
}
