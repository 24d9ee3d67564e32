package cli

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/orgair-labs/orgair-cli/internal/adapters/driven/calibrationfile"
	"github.com/orgair-labs/orgair-cli/internal/logger"
)

var calibrationReplaceFlag bool

var calibrationCmd = &cobra.Command{
	Use:   "calibration",
	Short: "Manage sector calibrations",
	Long: `Load, list and watch sector calibrations.

Calibrations are read from TOML files, one sector per file. A file whose
weights do not sum to 1.0 within tolerance is rejected.`,
}

var calibrationLoadCmd = &cobra.Command{
	Use:   "load [dir]",
	Short: "Load all calibration files from a directory",
	Long: `Load every calibration file from a directory.

Without an argument, the calibration.dir config key is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if registryService == nil {
			return errors.New("registry service not configured")
		}

		dir := ""
		if len(args) == 1 {
			dir = args[0]
		} else if configStore != nil {
			dir = configStore.GetString("calibration.dir")
		}
		if dir == "" {
			return errors.New("no directory given and calibration.dir is not set")
		}

		calibrations, err := calibrationfile.LoadDir(dir)
		if err != nil {
			printValidationErrors(cmd, err)
			return err
		}

		for _, sc := range calibrations {
			if err := registryService.RegisterCalibration(cmd.Context(), sc, calibrationReplaceFlag); err != nil {
				return err
			}
			cmd.Printf("registered %s (%s)\n", sc.SectorID, sc.SectorName)
		}
		cmd.Printf("%d calibration(s) loaded\n", len(calibrations))
		return nil
	},
}

var calibrationListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered calibrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if registryService == nil {
			return errors.New("registry service not configured")
		}

		calibrations, err := registryService.ListCalibrations(cmd.Context())
		if err != nil {
			return err
		}
		if len(calibrations) == 0 {
			cmd.Println("no calibrations registered")
			return nil
		}
		for _, sc := range calibrations {
			cmd.Printf("%-20s %-30s baseline %7s  effective %s\n",
				sc.SectorID, sc.SectorName, sc.HRBaseline, sc.EffectiveDate.Format("2006-01-02"))
		}
		return nil
	},
}

var calibrationWatchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Watch a calibration directory and register changes",
	Long: `Watch a directory for calibration file changes.

New and rewritten files are validated and registered as they appear.
Invalid files are reported and skipped. Interrupt to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if registryService == nil {
			return errors.New("registry service not configured")
		}

		watcher, err := calibrationfile.NewWatcher(args[0])
		if err != nil {
			return err
		}
		defer watcher.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cmd.Printf("watching %s for calibration changes\n", args[0])
		for event := range watcher.Watch(ctx) {
			switch event.Type {
			case calibrationfile.EventLoaded:
				sc := *event.Calibration
				if err := registryService.RegisterCalibration(ctx, sc, true); err != nil {
					cmd.PrintErrf("register %s: %v\n", sc.SectorID, err)
					continue
				}
				cmd.Printf("registered %s from %s\n", sc.SectorID, event.Path)
			case calibrationfile.EventInvalid:
				cmd.PrintErrf("invalid calibration %s: %v\n", event.Path, event.Err)
			case calibrationfile.EventRemoved:
				logger.Debug("calibration file removed: %s", event.Path)
			}
		}
		return nil
	},
}

func init() {
	calibrationLoadCmd.Flags().BoolVar(&calibrationReplaceFlag, "replace", false, "replace calibrations already registered")
	calibrationCmd.AddCommand(calibrationLoadCmd)
	calibrationCmd.AddCommand(calibrationListCmd)
	calibrationCmd.AddCommand(calibrationWatchCmd)
	rootCmd.AddCommand(calibrationCmd)
}
