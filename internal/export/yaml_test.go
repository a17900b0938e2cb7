package export

import (
	"bytes"
	"testing"

	"github.com/fran-roca/aml-intelligence/internal"
	"github.com/fran-roca/aml-intelligence/testutil"
	"gopkg.in/yaml.v3"
)

func TestYAMLExporter_RoundTrip(t *testing.T) {
	report := testutil.SampleReport()
	var buf bytes.Buffer

	if err := (&YAMLExporter{}).Export(&report, &buf); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	var decoded internal.ReportData
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded.ID != report.ID {
		t.Errorf("ID = %q, want %q", decoded.ID, report.ID)
	}
	if decoded.HighRiskCount != report.HighRiskCount {
		t.Errorf("HighRiskCount = %d, want %d", decoded.HighRiskCount, report.HighRiskCount)
	}
	if len(decoded.Insights) != len(report.Insights) {
		t.Errorf("Insights length = %d, want %d", len(decoded.Insights), len(report.Insights))
	}
}
