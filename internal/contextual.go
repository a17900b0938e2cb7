package internal

import (
	"fmt"
	"strings"
)

// ContextualQueries suggests follow-up queries based on the conversation so
// far and the clients currently in view. Entirely heuristic: it keys off the
// last message's content and simple properties of the filtered set.
func ContextualQueries(messages []Message, filtered []ClientNotification) []string {
	if len(messages) <= 1 {
		return []string{
			"Show me all high-risk clients that need immediate attention",
			"What are the most suspicious patterns detected today?",
			"Display clients from high-risk jurisdictions",
			"Find cases with potential structuring activities",
		}
	}

	last := messages[len(messages)-1]
	hasHighRisk := anyClient(filtered, func(c ClientNotification) bool { return c.RiskLevel == RiskHigh })
	hasStructuring := anyClient(filtered, func(c ClientNotification) bool { return strings.Contains(c.AlertType, "Structuring") })
	hasMarcus := anyClient(filtered, func(c ClientNotification) bool { return strings.Contains(c.ClientName, "Marcus") })
	hasSarah := anyClient(filtered, func(c ClientNotification) bool { return strings.Contains(c.ClientName, "Sarah") })

	switch {
	case strings.Contains(last.Content, "high-risk") && hasHighRisk:
		return []string{
			"Focus on Marcus Rodriguez - analyze his structuring pattern",
			"What makes Sarah Chen's case geographically suspicious?",
			"Compare risk scores between these high-risk clients",
			"Show me the transaction timeline for these cases",
		}
	case strings.Contains(last.Content, "Marcus") && hasMarcus:
		return []string{
			"What about Sarah Chen's geographic anomalies?",
			"Show me all structuring cases across the platform",
			"Calculate total exposure from Marcus's network",
			"Generate SAR filing recommendations for this case",
		}
	case strings.Contains(last.Content, "Sarah") && hasSarah:
		return []string{
			"Compare Marcus and Sarah's money laundering techniques",
			"Show me other clients with Dubai connections",
			"Find patterns in offshore wire transfers",
			"What's the regulatory reporting timeline for these cases?",
		}
	case strings.Contains(last.Content, "structuring") && hasStructuring:
		return []string{
			"Show me geographic distribution of these structured deposits",
			"Find other clients using similar branch-hopping patterns",
			"Calculate total structured amounts across all cases",
			"Generate compliance officer briefing summary",
		}
	}

	if len(messages) > 5 {
		return []string{
			"Generate comprehensive investigation report with findings",
			"Create investigation priority matrix for all cases",
			"Show me network analysis of connected entities",
			"What's our total AML exposure across all jurisdictions?",
			"Identify emerging typologies from recent patterns",
		}
	}

	if len(filtered) == 1 {
		client := filtered[0]
		return []string{
			fmt.Sprintf("Analyze %s's complete transaction history", client.ClientName),
			fmt.Sprintf("What are the red flags for %s?", client.ClientName),
			"Find similar patterns in other client accounts",
			"Generate detailed investigation report for this client",
		}
	}

	return []string{
		"Sort clients by risk score and transaction volume",
		"Show me cross-border transaction patterns",
		"Find clients with unusual velocity patterns",
		"Generate weekly AML monitoring summary",
	}
}

func anyClient(clients []ClientNotification, pred func(ClientNotification) bool) bool {
	for _, c := range clients {
		if pred(c) {
			return true
		}
	}
	return false
}
