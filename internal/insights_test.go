package internal

import (
	"strings"
	"testing"
)

func TestDeriveInsights_SingleCategory(t *testing.T) {
	got := DeriveInsights("show high-risk clients", nil)

	if len(got.Insights) != 3 || len(got.Recommendations) != 2 || len(got.KeyFindings) != 2 {
		t.Fatalf("unexpected list sizes: %d/%d/%d",
			len(got.Insights), len(got.Recommendations), len(got.KeyFindings))
	}
	if !strings.Contains(got.Insights[0], "money laundering typologies") {
		t.Errorf("unexpected first insight: %s", got.Insights[0])
	}
	if got.KeyFindings[0] != "2 clients show classic structuring patterns" {
		t.Errorf("unexpected first finding: %s", got.KeyFindings[0])
	}
}

func TestDeriveInsights_CategoriesConcatenateInOrder(t *testing.T) {
	// Both high-risk and structuring fire; high-risk is declared first.
	got := DeriveInsights("high-risk structuring cases", nil)

	if len(got.Insights) != 6 {
		t.Fatalf("want 6 insights (3+3), got %d", len(got.Insights))
	}
	if !strings.Contains(got.Insights[0], "money laundering typologies") {
		t.Errorf("high-risk insights should come first, got %s", got.Insights[0])
	}
	if !strings.Contains(got.Insights[3], "Classic structuring pattern") {
		t.Errorf("structuring insights should follow, got %s", got.Insights[3])
	}
}

func TestDeriveInsights_CaseInsensitive(t *testing.T) {
	got := DeriveInsights("FOCUS ON MARCUS", nil)
	if len(got.Insights) != 4 {
		t.Fatalf("want marcus insights, got %d", len(got.Insights))
	}
	if got.KeyFindings[0] != "3 structured deposits totaling $29,450 in 2 days" {
		t.Errorf("unexpected finding: %s", got.KeyFindings[0])
	}
}

func TestDeriveInsights_NoMatch(t *testing.T) {
	got := DeriveInsights("nothing relevant here", nil)
	if got.Insights != nil || got.Recommendations != nil || got.KeyFindings != nil {
		t.Errorf("expected empty insights, got %+v", got)
	}
}
