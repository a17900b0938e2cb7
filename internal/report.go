package internal

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ReportInvestigator is the fixed author attributed to compiled reports.
const ReportInvestigator = "AI Investigation Assistant"

// TotalExposure sums TotalAmount over the given clients.
func TotalExposure(clients []ClientNotification) float64 {
	var sum float64
	for _, c := range clients {
		sum += c.TotalAmount
	}
	return sum
}

// CountRiskLevel counts clients at the given risk level.
func CountRiskLevel(clients []ClientNotification, level RiskLevel) int {
	n := 0
	for _, c := range clients {
		if c.RiskLevel == level {
			n++
		}
	}
	return n
}

// CountFlagged sums FlaggedTransactions over the given clients.
func CountFlagged(clients []ClientNotification) int {
	n := 0
	for _, c := range clients {
		n += c.FlaggedTransactions
	}
	return n
}

// CompileReport aggregates an accumulated message log and the currently
// filtered client subset into a denormalized investigation report. The
// summary concatenates every AI message; the insight lists flatten across
// all messages; the derived totals are recomputed from the client subset so
// they can never diverge from it.
func CompileReport(messages []Message, filtered []ClientNotification, now time.Time) ReportData {
	var aiContents []string
	var insights, recommendations, keyFindings []string
	for _, m := range messages {
		if m.Role == RoleAI {
			aiContents = append(aiContents, m.Content)
		}
		insights = append(insights, m.Insights...)
		recommendations = append(recommendations, m.Recommendations...)
		if m.Data != nil {
			keyFindings = append(keyFindings, m.Data.KeyFindings...)
		}
	}

	clients := make([]ClientNotification, len(filtered))
	copy(clients, filtered)

	return ReportData{
		ID:                  "report-" + uuid.NewString(),
		Title:               "AML Investigation Report",
		Date:                FormatDate(now),
		Investigator:        ReportInvestigator,
		Summary:             strings.Join(aiContents, " "),
		Insights:            insights,
		Recommendations:     recommendations,
		KeyFindings:         keyFindings,
		ClientsAnalyzed:     clients,
		TotalExposure:       TotalExposure(clients),
		HighRiskCount:       CountRiskLevel(clients, RiskHigh),
		FlaggedTransactions: CountFlagged(clients),
	}
}
