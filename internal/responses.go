package internal

import (
	"fmt"
	"strings"
)

// AIResponse is a synthesized analysis turn: the narrative shown in the chat
// plus the structured side-panel content, and the id of a generated report
// when the query asked for one.
type AIResponse struct {
	Content         string
	Insights        []string
	Recommendations []string
	KeyFindings     []string
	ReportID        string
}

// GenerateAIResponse selects a canned narrative for the query and fills in
// the computed numbers. Report intent is checked first, then the empty
// result, then the keyword templates in fixed priority order; the generic
// summary is the fallback. It never fails: every query gets a response.
func GenerateAIResponse(query string, filtered []ClientNotification, originalCount int, generateReport func() string) AIResponse {
	q := strings.ToLower(query)
	filteredCount := len(filtered)
	derived := DeriveInsights(query, filtered)

	if strings.Contains(q, "generate") && strings.Contains(q, "report") && generateReport != nil {
		reportID := generateReport()
		return AIResponse{
			Content: fmt.Sprintf("✅ **Investigation Report Generated Successfully**\n\nComprehensive AML investigation report has been created based on our analysis of %d clients. The report includes executive summary, detailed findings, risk assessment, and regulatory recommendations.\n\n📊 **Report Contents:**\n• Executive summary with key metrics\n• Risk distribution analysis\n• Critical findings and evidence\n• Regulatory action plan\n• Client risk profiles\n\n*The report is now available in your Reports history and will remain accessible for future reference.*", filteredCount),
			Insights: []string{
				"Compiling investigation timeline and key evidence",
				"Analyzing risk patterns across all reviewed cases",
				"Preparing regulatory compliance recommendations",
			},
			Recommendations: []string{
				"Report includes SAR filing priorities",
				"Executive briefing materials included",
				"Regulatory timeline and next steps outlined",
			},
			KeyFindings: []string{
				fmt.Sprintf("%d clients analyzed with comprehensive risk assessment", filteredCount),
				"Professional-grade investigation documentation prepared",
			},
			ReportID: reportID,
		}
	}

	if filteredCount == 0 {
		return AIResponse{
			Content: fmt.Sprintf("No clients match your criteria %q. This could indicate either effective risk management or the need to broaden search parameters. Consider checking historical data or adjusting risk thresholds.", query),
			Insights: []string{
				"No matches found - consider expanding search criteria",
				"Review historical patterns for similar cases",
			},
			Recommendations: []string{
				"Broaden geographic or time-based filters",
				"Check archived cases for pattern analysis",
			},
			KeyFindings: []string{
				"No current matches",
				"May need broader search parameters",
			},
		}
	}

	if strings.Contains(q, "high-risk") || strings.Contains(q, "high risk") {
		return withDerived(derived, fmt.Sprintf("Found %d high-risk clients requiring immediate attention. These cases show multiple red flags including structuring patterns and geographic anomalies. Marcus Rodriguez (Panama) shows classic structuring with $29,450 in deposits just below reporting thresholds, while Sarah Chen (Singapore) has suspicious offshore wire transfers totaling $77,000.", filteredCount))
	}

	if strings.Contains(q, "marcus") {
		return withDerived(derived, "Marcus Rodriguez shows textbook structuring evidence: 3 cash deposits on consecutive days (Jan 18-19) totaling $29,450 - all just below the $10,000 CTR threshold. Deposits made at different branches (401, 402) in Panama City and Colon, suggesting deliberate geographic distribution to avoid detection. The amounts ($9,800, $9,750, $9,900) appear calculated to stay under reporting requirements.")
	}

	if strings.Contains(q, "sarah") {
		return withDerived(derived, "Sarah Chen's case involves geographic anomalies and offshore banking red flags. She made a $45,000 wire transfer to an offshore account from Singapore, followed by a $32,000 ATM withdrawal in Dubai - a high-risk jurisdiction. The rapid movement between Singapore and UAE, combined with offshore transfers, suggests potential layering in a money laundering scheme.")
	}

	if strings.Contains(q, "structuring") {
		return withDerived(derived, fmt.Sprintf("Located %d clients with potential structuring activities. This is a high-priority money laundering indicator requiring immediate SAR filing. The pattern shows deliberate attempts to evade currency transaction reporting requirements through calculated deposit amounts and geographic distribution.", filteredCount))
	}

	if strings.Contains(q, "geographic") || strings.Contains(q, "geographical") {
		return withDerived(derived, fmt.Sprintf("Identified %d clients with geographic anomalies. These cases involve suspicious cross-border transaction patterns that may indicate trade-based money laundering or alternative remittance systems. Enhanced due diligence is required for these high-risk jurisdiction connections.", filteredCount))
	}

	if strings.Contains(q, "sort by amount") {
		return withDerived(derived, fmt.Sprintf("Table sorted by transaction amount successfully showing %d clients. Review the highest-value accounts first as they pose the greatest institutional risk. Large transaction volumes combined with risk indicators suggest sophisticated money laundering operations requiring priority investigation.", filteredCount))
	}

	if strings.Contains(q, "panama") || strings.Contains(q, "singapore") {
		return withDerived(derived, fmt.Sprintf("Identified %d clients from high-risk jurisdictions. These accounts require enhanced due diligence due to jurisdiction-specific money laundering risks. Total exposure: %s. Focus on beneficial ownership verification and transaction purpose documentation.", filteredCount, FormatCurrency(TotalExposure(filtered))))
	}

	resp := withDerived(derived, fmt.Sprintf("Analysis complete: Found %d clients matching your criteria out of %d total notifications. The filtered results show patterns that warrant further investigation based on established AML typologies.", filteredCount, originalCount))
	if len(resp.Insights) == 0 {
		resp.Insights = []string{"Multiple risk indicators present", "Pattern analysis suggests coordinated activity"}
	}
	if len(resp.Recommendations) == 0 {
		resp.Recommendations = []string{"Prioritize cases by risk score", "Document findings for regulatory reporting"}
	}
	if len(resp.KeyFindings) == 0 {
		resp.KeyFindings = []string{"Risk patterns identified", "Further investigation recommended"}
	}
	return resp
}

func withDerived(derived InvestigativeInsights, content string) AIResponse {
	return AIResponse{
		Content:         content,
		Insights:        derived.Insights,
		Recommendations: derived.Recommendations,
		KeyFindings:     derived.KeyFindings,
	}
}
