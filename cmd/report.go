package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fran-roca/aml-intelligence/internal"
	"github.com/fran-roca/aml-intelligence/internal/export"
	"github.com/spf13/cobra"
)

var (
	reportQuery  string
	reportFormat string
	reportOutDir string
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Compile an investigation report and export it to a file",
	Long: `Run an optional query through the pipeline, compile an investigation
report from the resulting conversation and filtered client set, and write it
to a file (html, md, json, yaml).

The HTML export uses the standard download name,
AML_Investigation_Report_<date>.html.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		exporter, err := export.NewExporter(reportFormat)
		if err != nil {
			return err
		}

		store := internal.NewStore(internal.MockNotifications())
		assistant := internal.NewAssistantWithDelays(store, 0, 0)
		defer assistant.Stop()

		if reportQuery != "" {
			<-assistant.Submit(reportQuery)
		}
		<-assistant.Submit("generate investigation report")

		report, ok := store.CurrentReport()
		if !ok {
			return fmt.Errorf("no report was generated")
		}

		name := export.ReportFileName(report.Date)
		if exporter.Extension() != "html" {
			name = strings.TrimSuffix(name, ".html") + "." + exporter.Extension()
		}
		path := filepath.Join(reportOutDir, name)

		f, err := os.Create(path)
		if err != nil {
			return &internal.ExportError{Format: reportFormat, Path: path, Err: err}
		}
		defer func() { _ = f.Close() }()

		if err := exporter.Export(&report, f); err != nil {
			return &internal.ExportError{Format: reportFormat, Path: path, Err: err}
		}

		internal.LogInfo("report %s written to %s", report.ID, path)
		fmt.Printf("Exported %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVarP(&reportQuery, "query", "q", "", "Query to run before compiling the report")
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "html", "Export format (html, md, json, yaml)")
	reportCmd.Flags().StringVarP(&reportOutDir, "output", "o", ".", "Output directory")
}
