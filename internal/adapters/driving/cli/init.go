package cli

import (
	"github.com/spf13/cobra"

	"github.com/orgair-labs/orgair-cli/internal/adapters/driven/scaffold"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create an assessment workspace",
	Long: `Create the directory layout for an assessment workspace: calibration
data, schema exports, docs and test directories.

Defaults to the current directory. Existing directories are left alone.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		base := "."
		if len(args) == 1 {
			base = args[0]
		}

		created, err := scaffold.Create(base)
		if err != nil {
			return err
		}
		cmd.Printf("workspace ready: %d directories under %s\n", len(created), base)
		cmd.Printf("calibrations: %s\n", scaffold.CalibrationDir(base))
		cmd.Printf("schema exports: %s\n", scaffold.SchemaExportDir(base))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
