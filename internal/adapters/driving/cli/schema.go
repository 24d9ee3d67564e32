package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Inspect and export entity JSON Schemas",
	Long: `Work with the JSON Schema descriptions of the data contract.

Schemas reflect exactly the constraints validation enforces, so documents
accepted by downstream schema validators are accepted here too.`,
}

var schemaListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the known entities",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if schemaService == nil {
			return errors.New("schema service not configured")
		}
		for _, name := range schemaService.List() {
			cmd.Println(name)
		}
		return nil
	},
}

var schemaShowCmd = &cobra.Command{
	Use:   "show <entity>",
	Short: "Print an entity's JSON Schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if schemaService == nil {
			return errors.New("schema service not configured")
		}
		data, err := schemaService.JSON(args[0])
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	},
}

var schemaExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all schemas to the workspace",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if schemaService == nil {
			return errors.New("schema service not configured")
		}
		paths, err := schemaService.Export()
		if err != nil {
			return err
		}
		for _, path := range paths {
			cmd.Printf("wrote %s\n", path)
		}
		return nil
	},
}

func init() {
	schemaCmd.AddCommand(schemaListCmd)
	schemaCmd.AddCommand(schemaShowCmd)
	schemaCmd.AddCommand(schemaExportCmd)
	rootCmd.AddCommand(schemaCmd)
}
