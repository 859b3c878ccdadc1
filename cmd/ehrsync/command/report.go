package command

import (
	"strconv"
	"time"

	"github.com/tealeg/xlsx/v3"

	"github.com/metriport/ehr-sync/scheduler"
)

const (
	reportSheetNameSummary  = "Summary"
	reportSheetNameFailures = "Failures"
)

// WriteRunReport renders a run report as a spreadsheet for operators to
// review and hand off.
func WriteRunReport(report *scheduler.RunReport, path string) error {
	file := xlsx.NewFile()

	if err := addSummarySheet(file, report); err != nil {
		return err
	}
	if err := addFailuresSheet(file, report); err != nil {
		return err
	}

	return file.Save(path)
}

func addSummarySheet(file *xlsx.File, report *scheduler.RunReport) error {
	sh, err := file.AddSheet(reportSheetNameSummary)
	if err != nil {
		return err
	}

	sh.AddRow().AddCell().SetValue("Synchronization Run")
	sh.AddRow()

	var currentRow *xlsx.Row
	currentRow = sh.AddRow()
	currentRow.AddCell().SetValue("Report Generated")
	currentRow.AddCell().SetValue(time.Now().Format(time.RFC3339))

	currentRow = sh.AddRow()
	currentRow.AddCell().SetValue("Run Id")
	currentRow.AddCell().SetValue(report.RunId)

	currentRow = sh.AddRow()
	currentRow.AddCell().SetValue("Source")
	currentRow.AddCell().SetValue(string(report.Source))

	currentRow = sh.AddRow()
	currentRow.AddCell().SetValue("Mode")
	currentRow.AddCell().SetValue(string(report.Mode))
	sh.AddRow()

	currentRow = sh.AddRow()
	currentRow.AddCell().SetValue("Measures ---")
	currentRow.AddCell().SetValue("Count ---")

	measures := []struct {
		name  string
		count int
	}{
		{"Practices", report.Practices},
		{"- Practices skipped", report.Skipped},
		{"Appointments", report.Appointments},
		{"Patients", report.Patients},
		{"- Patients synced", report.Synced},
		{"- Failures", len(report.Failures)},
	}
	for _, measure := range measures {
		currentRow = sh.AddRow()
		currentRow.AddCell().SetValue(measure.name)
		currentRow.AddCell().SetValue(measure.count)
	}

	return nil
}

func addFailuresSheet(file *xlsx.File, report *scheduler.RunReport) error {
	sh, err := file.AddSheet(reportSheetNameFailures)
	if err != nil {
		return err
	}

	currentRow := sh.AddRow()
	currentRow.AddCell()
	currentRow.AddCell().SetValue("Customer ---")
	currentRow.AddCell().SetValue("Practice ---")
	currentRow.AddCell().SetValue("Patient ---")
	currentRow.AddCell().SetValue("Error ---")

	for i, failure := range report.Failures {
		currentRow = sh.AddRow()
		currentRow.AddCell().SetValue("Failure " + strconv.Itoa(i+1))
		currentRow.AddCell().SetValue(failure.CxId)
		currentRow.AddCell().SetValue(failure.PracticeId)
		currentRow.AddCell().SetValue(failure.PatientId)
		if failure.Err != nil {
			currentRow.AddCell().SetValue(failure.Err.Error())
		}
	}

	return nil
}
