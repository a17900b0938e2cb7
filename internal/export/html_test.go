package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fran-roca/aml-intelligence/testutil"
)

func TestHTMLExporter_Export(t *testing.T) {
	report := testutil.SampleReport()
	var buf bytes.Buffer

	if err := (&HTMLExporter{}).Export(&report, &buf); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>AML Investigation Report</title>",
		"Report ID report-test",
		"$9,600",
		"Bob Brown",
		`class="risk-high"`,
		"Insight one",
		"Recommendation one",
		"Finding one",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestHTMLExporter_EscapesContent(t *testing.T) {
	report := testutil.SampleReport()
	report.Summary = `<script>alert("x")</script>`
	var buf bytes.Buffer

	if err := (&HTMLExporter{}).Export(&report, &buf); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if strings.Contains(buf.String(), "<script>") {
		t.Error("summary was not HTML-escaped")
	}
}
