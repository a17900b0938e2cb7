package export

import (
	"fmt"
	"io"

	"github.com/fran-roca/aml-intelligence/internal"
)

// MarkdownExporter exports reports in Markdown format
type MarkdownExporter struct{}

// Export exports a report to Markdown format
func (e *MarkdownExporter) Export(report *internal.ReportData, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# %s\n\n", report.Title)
	_, _ = fmt.Fprintf(w, "**Date:** %s  \n", report.Date)
	_, _ = fmt.Fprintf(w, "**Investigator:** %s  \n", report.Investigator)
	_, _ = fmt.Fprintf(w, "**Report ID:** %s\n\n", report.ID)

	_, _ = fmt.Fprintf(w, "**Total Exposure:** %s  \n", internal.FormatCurrency(report.TotalExposure))
	_, _ = fmt.Fprintf(w, "**High-Risk Clients:** %d  \n", report.HighRiskCount)
	_, _ = fmt.Fprintf(w, "**Flagged Transactions:** %d\n\n", report.FlaggedTransactions)

	_, _ = fmt.Fprintf(w, "---\n\n")
	_, _ = fmt.Fprintf(w, "## Executive Summary\n\n%s\n\n", report.Summary)

	writeList(w, "Key Findings", report.KeyFindings)
	writeList(w, "Investigation Insights", report.Insights)
	writeList(w, "Recommendations", report.Recommendations)

	_, _ = fmt.Fprintf(w, "## Clients Analyzed\n\n")
	_, _ = fmt.Fprintf(w, "| Client | Risk | Alert Type | Country | Total Amount | Flagged |\n")
	_, _ = fmt.Fprintf(w, "|--------|------|------------|---------|--------------|---------|\n")
	for _, c := range report.ClientsAnalyzed {
		_, _ = fmt.Fprintf(w, "| %s | %s | %s | %s | %s | %d |\n",
			c.ClientName, c.RiskLevel, c.AlertType, c.Country,
			internal.FormatCurrency(c.TotalAmount), c.FlaggedTransactions)
	}

	return nil
}

func writeList(w io.Writer, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	_, _ = fmt.Fprintf(w, "## %s\n\n", heading)
	for _, item := range items {
		_, _ = fmt.Fprintf(w, "- %s\n", item)
	}
	_, _ = fmt.Fprintf(w, "\n")
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
