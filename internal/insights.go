package internal

import "strings"

// InvestigativeInsights is the side-panel content that accompanies an AI
// response: observations, suggested actions, and concrete findings.
type InvestigativeInsights struct {
	Insights        []string
	Recommendations []string
	KeyFindings     []string
}

// insightCategory holds the canned supporting text for one keyword category.
// Categories are non-exclusive; every matching category contributes its lists
// in declaration order.
type insightCategory struct {
	name            string
	match           func(query string) bool
	insights        []string
	recommendations []string
	keyFindings     []string
}

var insightCatalog = []insightCategory{
	{
		name: "high-risk",
		match: func(q string) bool {
			return strings.Contains(q, "high-risk") || strings.Contains(q, "high risk")
		},
		insights: []string{
			"High-risk clients show patterns consistent with money laundering typologies",
			"Focus on transaction timing, amounts just below reporting thresholds",
			"Cross-reference with known shell companies and PEP databases",
		},
		recommendations: []string{
			"Prioritize cases with multiple red flags within 48 hours",
			"File Suspicious Activity Reports (SARs) for critical cases",
		},
		keyFindings: []string{
			"2 clients show classic structuring patterns",
			"Geographic clustering in high-risk jurisdictions detected",
		},
	},
	{
		name:  "marcus",
		match: func(q string) bool { return strings.Contains(q, "marcus") },
		insights: []string{
			"Deposits structured to avoid Currency Transaction Report (CTR) filing",
			"Geographic distribution across multiple branches indicates sophistication",
			"Shell company connection adds layering complexity",
			"Timing pattern suggests coordinated activity rather than coincidence",
		},
		recommendations: []string{
			"Immediate SAR filing - clear structuring violation under 31 USC 5324",
			"Request branch surveillance footage for the deposit dates",
			"Investigate Shell Company Ltd for beneficial ownership",
		},
		keyFindings: []string{
			"3 structured deposits totaling $29,450 in 2 days",
			"All deposits below $10,000 CTR threshold",
			"Multiple branch locations used",
		},
	},
	{
		name:  "sarah",
		match: func(q string) bool { return strings.Contains(q, "sarah") },
		insights: []string{
			"Rapid geographic movement between high-risk jurisdictions",
			"Offshore wire transfer followed by large cash withdrawal",
			"Transaction pattern inconsistent with personal account usage",
			"Dubai classified as enhanced due diligence jurisdiction",
		},
		recommendations: []string{
			"Verify travel records for physical presence confirmation",
			"Request documentation for offshore account relationship",
			"Check Dubai ATM withdrawal against local surveillance",
		},
		keyFindings: []string{
			"$77,000 in suspicious cross-border transactions",
			"Cross-border movement between Singapore and Dubai",
			"Offshore banking relationship",
		},
	},
	{
		name:  "structuring",
		match: func(q string) bool { return strings.Contains(q, "structuring") },
		insights: []string{
			"Classic structuring pattern: Multiple transactions just below $10K threshold",
			"Timing analysis shows coordinated deposit strategy",
			"Same-day deposits across multiple branches indicate intent to evade reporting",
		},
		recommendations: []string{
			"File Suspicious Activity Report (SAR) immediately",
			"Freeze account pending investigation",
		},
		keyFindings: []string{
			"Pattern consistent with currency transaction report avoidance",
			"Sophisticated evasion techniques employed",
		},
	},
	{
		name: "geographic",
		match: func(q string) bool {
			return strings.Contains(q, "geographic") || strings.Contains(q, "geographical")
		},
		insights: []string{
			"Geographic anomalies suggest potential trade-based money laundering",
			"Unusual transaction corridors may indicate hawala or alternative remittance",
			"Cross-border patterns inconsistent with declared business activities",
		},
		recommendations: []string{
			"Verify trade documentation and shipping records",
			"Coordinate with international FIU counterparts",
		},
		keyFindings: []string{
			"Transactions span multiple high-risk jurisdictions",
			"No apparent business justification for geographic spread",
		},
	},
	{
		name:  "sort-by-amount",
		match: func(q string) bool { return strings.Contains(q, "sort by amount") },
		insights: []string{
			"Prioritize high-value accounts for investigation",
			"Large volumes may indicate professional money laundering services",
			"Transaction amounts suggest institutional-level operations",
		},
		recommendations: []string{
			"Focus resources on top 3 highest-value cases",
			"Coordinate with law enforcement for large-scale operations",
		},
		keyFindings: []string{
			"Significant concentration of risk in high-value accounts",
			"Professional money laundering indicators present",
		},
	},
}

// DeriveInsights collects the canned supporting text of every category whose
// keyword test matches the query. Pure list concatenation; the filtered set
// is accepted for contract symmetry with the response synthesizer.
func DeriveInsights(query string, _ []ClientNotification) InvestigativeInsights {
	q := strings.ToLower(query)

	var out InvestigativeInsights
	for _, cat := range insightCatalog {
		if !cat.match(q) {
			continue
		}
		out.Insights = append(out.Insights, cat.insights...)
		out.Recommendations = append(out.Recommendations, cat.recommendations...)
		out.KeyFindings = append(out.KeyFindings, cat.keyFindings...)
	}
	return out
}
