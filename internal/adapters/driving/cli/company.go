package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/orgair-labs/orgair-cli/internal/core/domain"
)

var companyJSONFlag bool

var companyCmd = &cobra.Command{
	Use:   "company",
	Short: "Manage registered companies",
}

var companyAddCmd = &cobra.Command{
	Use:   "add [file]",
	Short: "Register a company from a JSON document",
	Long: `Register a company from a creation document.

Input is read from the file argument, or from stdin when no file is given.
The referenced sector calibration must already be registered; identity and
timestamps are assigned on success.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if registryService == nil {
			return errors.New("registry service not configured")
		}

		rec, err := readRecord(cmd, args)
		if err != nil {
			return err
		}
		cc, err := domain.NewCompanyCreate(rec)
		if err != nil {
			printValidationErrors(cmd, err)
			return err
		}

		company, err := registryService.CreateCompany(cmd.Context(), cc)
		if err != nil {
			return err
		}

		if companyJSONFlag {
			return printJSON(cmd, company)
		}
		cmd.Printf("registered %s as %s\n", company.Name, company.CompanyID)
		return nil
	},
}

var companyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered companies",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if registryService == nil {
			return errors.New("registry service not configured")
		}

		companies, err := registryService.ListCompanies(cmd.Context())
		if err != nil {
			return err
		}
		if len(companies) == 0 {
			cmd.Println("no companies registered")
			return nil
		}
		for _, company := range companies {
			cmd.Printf("%s  %-30s %-15s %s\n",
				company.CompanyID, company.Name, company.SectorID, company.Status)
		}
		return nil
	},
}

var companyGetCmd = &cobra.Command{
	Use:   "get <company-id>",
	Short: "Show one company as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if registryService == nil {
			return errors.New("registry service not configured")
		}

		company, err := registryService.GetCompany(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd, company)
	},
}

func init() {
	companyAddCmd.Flags().BoolVar(&companyJSONFlag, "json", false, "print the created company as JSON")
	companyCmd.AddCommand(companyAddCmd)
	companyCmd.AddCommand(companyListCmd)
	companyCmd.AddCommand(companyGetCmd)
	rootCmd.AddCommand(companyCmd)
}
