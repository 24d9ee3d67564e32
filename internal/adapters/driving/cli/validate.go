package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/orgair-labs/orgair-cli/internal/core/domain"
)

var validateJSONFlag bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate entity JSON against the data contract",
	Long: `Validate a JSON document against an entity's constraints.

Input is read from the file argument, or from stdin when no file is given.
All field errors are reported in a single pass, not just the first.`,
}

var validateCompanyCmd = &cobra.Command{
	Use:   "company [file]",
	Short: "Validate a company document",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd, args, func(rec domain.Record) (any, error) {
			// Creation payloads have no company_id; full entities do.
			if _, ok := rec["company_id"]; ok {
				return domain.NewCompany(rec)
			}
			return domain.NewCompanyCreate(rec)
		})
	},
}

var validateScoreCmd = &cobra.Command{
	Use:   "score [file]",
	Short: "Validate a dimension score document",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd, args, func(rec domain.Record) (any, error) {
			return domain.NewDimensionScoreInput(rec)
		})
	},
}

var validateCalibrationCmd = &cobra.Command{
	Use:   "calibration [file]",
	Short: "Validate a sector calibration document",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd, args, func(rec domain.Record) (any, error) {
			return domain.NewSectorCalibration(rec)
		})
	},
}

func init() {
	validateCmd.PersistentFlags().BoolVar(&validateJSONFlag, "json", false, "print the normalised entity as JSON on success")
	validateCmd.AddCommand(validateCompanyCmd)
	validateCmd.AddCommand(validateScoreCmd)
	validateCmd.AddCommand(validateCalibrationCmd)
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string, construct func(domain.Record) (any, error)) error {
	rec, err := readRecord(cmd, args)
	if err != nil {
		return err
	}

	entity, err := construct(rec)
	if err != nil {
		printValidationErrors(cmd, err)
		return err
	}

	if validateJSONFlag {
		return printJSON(cmd, entity)
	}
	cmd.Println("valid")
	return nil
}

// readRecord decodes a JSON object from the file argument or stdin.
// Numbers are kept as json.Number so decimal values stay exact.
func readRecord(cmd *cobra.Command, args []string) (domain.Record, error) {
	var reader io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		file, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer file.Close()
		reader = file
	}

	decoder := json.NewDecoder(reader)
	decoder.UseNumber()

	var raw map[string]any
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}
	return domain.Record(raw), nil
}

// printValidationErrors lists every field error on stderr-style output.
func printValidationErrors(cmd *cobra.Command, err error) {
	var verrs domain.ValidationErrors
	if !errors.As(err, &verrs) {
		cmd.PrintErrf("invalid: %v\n", err)
		return
	}
	cmd.PrintErrf("invalid: %d error(s)\n", len(verrs))
	for _, fe := range verrs {
		cmd.PrintErrf("  %s: %s\n", fe.Field, fe.Message)
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
