package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/fran-roca/aml-intelligence/internal"
)

// ReportExporter defines the interface for all report export formats
type ReportExporter interface {
	Export(report *internal.ReportData, w io.Writer) error
	Extension() string
}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (ReportExporter, error) {
	switch format {
	case "html":
		return &HTMLExporter{}, nil
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	case "yaml":
		return &YAMLExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: html, md, json, yaml)", format)
	}
}

// ReportFileName builds the download name for an exported report,
// e.g. AML_Investigation_Report_1-19-2024.html for date "1/19/2024".
func ReportFileName(date string) string {
	return fmt.Sprintf("AML_Investigation_Report_%s.html", strings.ReplaceAll(date, "/", "-"))
}
