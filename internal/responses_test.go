package internal

import (
	"strings"
	"testing"
)

func TestGenerateAIResponse_HighRiskScenario(t *testing.T) {
	source := MockNotifications()
	filtered := ApplyFilter("show high-risk clients", source)

	resp := GenerateAIResponse("show high-risk clients", filtered, len(source), nil)

	if !strings.Contains(resp.Content, "Found 2 high-risk clients") {
		t.Errorf("narrative missing count: %s", resp.Content)
	}
	if len(resp.Insights) == 0 || len(resp.Recommendations) == 0 || len(resp.KeyFindings) == 0 {
		t.Error("high-risk response should carry derived side-panel content")
	}
}

func TestGenerateAIResponse_MarcusTemplate(t *testing.T) {
	source := MockNotifications()
	filtered := ApplyFilter("marcus", source)

	resp := GenerateAIResponse("marcus", filtered, len(source), nil)

	if !strings.Contains(resp.Content, "Marcus Rodriguez shows textbook structuring evidence") {
		t.Errorf("expected the Marcus template, got: %s", resp.Content)
	}
}

func TestGenerateAIResponse_EmptyResult(t *testing.T) {
	resp := GenerateAIResponse("high-risk and low-risk", nil, 5, nil)

	if !strings.Contains(resp.Content, "No clients match your criteria") {
		t.Errorf("expected no-match narrative, got: %s", resp.Content)
	}
	if len(resp.Insights) == 0 {
		t.Error("no-match response should still include guidance insights")
	}
}

func TestGenerateAIResponse_GenericFallback(t *testing.T) {
	source := MockNotifications()

	resp := GenerateAIResponse("tell me something", source, len(source), nil)

	want := "Analysis complete: Found 5 clients matching your criteria out of 5 total notifications."
	if !strings.Contains(resp.Content, want) {
		t.Errorf("expected fallback narrative %q, got: %s", want, resp.Content)
	}
	// Generic defaults fill in when no category matched.
	if len(resp.Insights) != 2 || len(resp.Recommendations) != 2 || len(resp.KeyFindings) != 2 {
		t.Errorf("expected generic default lists, got %d/%d/%d",
			len(resp.Insights), len(resp.Recommendations), len(resp.KeyFindings))
	}
}

func TestGenerateAIResponse_ReportIntent(t *testing.T) {
	source := MockNotifications()
	generated := false
	generate := func() string {
		generated = true
		return "report-42"
	}

	resp := GenerateAIResponse("please generate an investigation report", source, len(source), generate)

	if !generated {
		t.Fatal("report generator was not invoked")
	}
	if resp.ReportID != "report-42" {
		t.Errorf("ReportID = %q, want report-42", resp.ReportID)
	}
	if !strings.Contains(resp.Content, "Investigation Report Generated Successfully") {
		t.Errorf("expected the report narrative, got: %s", resp.Content)
	}
}

func TestGenerateAIResponse_ReportIntentWithoutGenerator(t *testing.T) {
	source := MockNotifications()

	resp := GenerateAIResponse("generate a report", source, len(source), nil)

	if resp.ReportID != "" {
		t.Errorf("no generator supplied, ReportID should be empty, got %q", resp.ReportID)
	}
	if strings.Contains(resp.Content, "Generated Successfully") {
		t.Error("report narrative selected despite missing generator")
	}
}

func TestGenerateAIResponse_ReportIntentBeatsOtherTemplates(t *testing.T) {
	source := MockNotifications()
	generate := func() string { return "report-1" }

	resp := GenerateAIResponse("generate high-risk report", source, len(source), generate)

	if resp.ReportID != "report-1" {
		t.Errorf("report intent should win over the high-risk template, got ReportID %q", resp.ReportID)
	}
}

func TestGenerateAIResponse_JurisdictionExposure(t *testing.T) {
	source := MockNotifications()
	filtered := ApplyFilter("clients from panama", source)

	resp := GenerateAIResponse("clients from panama", filtered, len(source), nil)

	if !strings.Contains(resp.Content, "Total exposure: $2,450,000") {
		t.Errorf("expected formatted exposure in narrative, got: %s", resp.Content)
	}
}
