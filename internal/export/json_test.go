package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fran-roca/aml-intelligence/internal"
	"github.com/fran-roca/aml-intelligence/testutil"
)

func TestJSONExporter_RoundTrip(t *testing.T) {
	report := testutil.SampleReport()
	var buf bytes.Buffer

	if err := (&JSONExporter{}).Export(&report, &buf); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	var decoded internal.ReportData
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.ID != report.ID {
		t.Errorf("ID = %q, want %q", decoded.ID, report.ID)
	}
	if decoded.TotalExposure != report.TotalExposure {
		t.Errorf("TotalExposure = %v, want %v", decoded.TotalExposure, report.TotalExposure)
	}
	if len(decoded.ClientsAnalyzed) != len(report.ClientsAnalyzed) {
		t.Errorf("ClientsAnalyzed length = %d, want %d",
			len(decoded.ClientsAnalyzed), len(report.ClientsAnalyzed))
	}
}
