package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/metriport/ehr-sync/scheduler"
	"github.com/metriport/ehr-sync/sources"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Batch patient synchronization",
}

var syncRunParams = struct {
	Source string
	Mode   string
	Report string
}{}

var syncRunCmd = &cobra.Command{
	Use:   "run {source}",
	Args:  cobra.ExactArgs(1),
	Short: "Synchronize all practices of a source",
	Long:  "The run command fetches upcoming or recent appointments for every practice of a source and resolves every referenced patient",
	RunE: func(cmd *cobra.Command, args []string) error {
		syncRunParams.Source = args[0]
		return Run(runSync)
	},
}

func runSync(s *scheduler.Scheduler) error {
	source, err := sources.Parse(syncRunParams.Source)
	if err != nil {
		return err
	}
	mode, err := scheduler.ParseLookupMode(syncRunParams.Mode)
	if err != nil {
		return err
	}

	report, err := s.Run(context.TODO(), source, mode)
	if err != nil {
		return err
	}

	fmt.Printf("Run %s (%s %s)\n", report.RunId, report.Source, report.Mode)
	fmt.Printf("Practices: %v (skipped %v)\n", report.Practices, report.Skipped)
	fmt.Printf("Appointments: %v\n", report.Appointments)
	fmt.Printf("Patients: %v (synced %v)\n", report.Patients, report.Synced)
	for _, failure := range report.Failures {
		fmt.Printf("Failure: %s\n", failure.String())
	}

	if syncRunParams.Report != "" {
		if err := WriteRunReport(report, syncRunParams.Report); err != nil {
			return err
		}
		fmt.Printf("Report written to %s\n", syncRunParams.Report)
	}

	return nil
}

func init() {
	syncRunCmd.Flags().StringVarP(&syncRunParams.Mode, "mode", "m", "forward", "Appointment lookup mode (forward, backward or subscription)")
	syncRunCmd.Flags().StringVar(&syncRunParams.Report, "report", "", "Write an xlsx run report to the given path")

	syncCmd.AddCommand(syncRunCmd)
	rootCmd.AddCommand(syncCmd)
}
