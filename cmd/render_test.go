package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fran-roca/aml-intelligence/internal"
	"github.com/fran-roca/aml-intelligence/testutil"
)

func TestRenderClientTable(t *testing.T) {
	var buf bytes.Buffer
	renderClientTable(&buf, testutil.SmallRoster())

	out := buf.String()
	for _, want := range []string{"Bob Brown", "Alice Anders", "$9,000", "$500"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q", want)
		}
	}
}

func TestRenderClientTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	renderClientTable(&buf, nil)

	if !strings.Contains(buf.String(), "no clients match") {
		t.Errorf("empty table message missing, got %q", buf.String())
	}
}

func TestRenderMessage_IncludesSidePanelContent(t *testing.T) {
	msg := internal.Message{
		Role:    internal.RoleAI,
		Content: "Found 2 high-risk clients.",
		Insights: []string{
			"Insight line",
		},
		Recommendations: []string{
			"Recommendation line",
		},
		Data: &internal.MessageData{
			TotalRecords:  2,
			HighRisk:      2,
			FlaggedAmount: "$7,650,000",
			KeyFindings:   []string{"Finding line"},
		},
	}

	var buf bytes.Buffer
	renderMessage(&buf, msg)

	out := buf.String()
	for _, want := range []string{
		"Found 2 high-risk clients.",
		"Insight line",
		"Recommendation line",
		"Finding line",
		"$7,650,000",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("message render missing %q", want)
		}
	}
}
