package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/tomasbusse/avalingo/pkg/db"
	"github.com/tomasbusse/avalingo/pkg/model"
	"github.com/tomasbusse/avalingo/pkg/placement"
	gormstore "github.com/tomasbusse/avalingo/pkg/server/store/gorm"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export completed placement attempts to a spreadsheet",
	Long: `Export completed placement attempts to an Excel workbook.

Each row is one completed attempt with its recommended level, total score
and per-level accuracy.

Example:
  avalingoctl export
  avalingoctl export --out-dir /backup --label may-cohort`,
	Run: func(cmd *cobra.Command, args []string) {
		outDir, _ := cmd.Flags().GetString("out-dir")
		label, _ := cmd.Flags().GetString("label")

		if label == "" {
			label = time.Now().Format("2006-01-02T15-04-05Z")
		}

		path, count, err := runExport(outDir, label)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Exported %d attempt(s) to %s\n", count, path)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("out-dir", "o", ".", "Output directory")
	exportCmd.Flags().StringP("label", "l", "", "Label for the workbook filename (default: timestamp)")
}

const exportSheet = "Attempts"

func runExport(outDir, label string) (string, int, error) {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return "", 0, err
	}
	attempts := gormstore.NewAttemptsStore(database)

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return "", 0, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return "", 0, err
	}

	headers := []interface{}{
		"Attempt ID", "User ID", "Level", "Score", "Total Points",
		"A1 %", "A2 %", "B1 %", "B2 %", "C1 %",
		"Started At", "Completed At",
	}
	if err := f.SetSheetRow(exportSheet, "A1", &headers); err != nil {
		return "", 0, err
	}

	const pageSize = 500
	row := 2
	for offset := 0; ; offset += pageSize {
		page, err := attempts.ListCompletedAttempts(pageSize, offset)
		if err != nil {
			return "", 0, err
		}
		if len(page) == 0 {
			break
		}
		for _, attempt := range page {
			cell, _ := excelize.CoordinatesToCellName(1, row)
			if err := f.SetSheetRow(exportSheet, cell, attemptRow(attempt)); err != nil {
				return "", 0, err
			}
			row++
		}
		if len(page) < pageSize {
			break
		}
	}

	path := filepath.Join(outDir, fmt.Sprintf("avalingo-attempts-%s.xlsx", label))
	if err := f.SaveAs(path); err != nil {
		return "", 0, err
	}
	return path, row - 2, nil
}

func attemptRow(attempt model.TestAttempt) *[]interface{} {
	level := ""
	if attempt.Level != nil {
		level = *attempt.Level
	}
	completedAt := ""
	if attempt.CompletedAt != nil {
		completedAt = attempt.CompletedAt.Format(time.RFC3339)
	}

	row := []interface{}{
		attempt.AttemptID, attempt.UserID, level,
		attempt.Score, attempt.TotalPoints,
	}
	for _, l := range placement.LevelValues() {
		row = append(row, attempt.Breakdown[l].Percentage)
	}
	row = append(row, attempt.StartedAt.Format(time.RFC3339), completedAt)
	return &row
}
