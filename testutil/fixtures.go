package testutil

import (
	"github.com/fran-roca/aml-intelligence/internal"
)

// SmallRoster returns three synthetic clients with amounts 500, 9000, 100,
// convenient for sort assertions.
func SmallRoster() []internal.ClientNotification {
	return []internal.ClientNotification{
		client("CN-A", "Alice Anders", internal.RiskLow, 500, 1),
		client("CN-B", "Bob Brown", internal.RiskHigh, 9000, 4),
		client("CN-C", "Carol Clark", internal.RiskMedium, 100, 2),
	}
}

// SampleReport returns a small compiled report for exporter tests.
func SampleReport() internal.ReportData {
	clients := SmallRoster()
	return internal.ReportData{
		ID:                  "report-test",
		Title:               "AML Investigation Report",
		Date:                "1/20/2024",
		Investigator:        internal.ReportInvestigator,
		Summary:             "Two analysis passes over the mock queue.",
		Insights:            []string{"Insight one", "Insight two"},
		Recommendations:     []string{"Recommendation one"},
		KeyFindings:         []string{"Finding one"},
		ClientsAnalyzed:     clients,
		TotalExposure:       internal.TotalExposure(clients),
		HighRiskCount:       internal.CountRiskLevel(clients, internal.RiskHigh),
		FlaggedTransactions: internal.CountFlagged(clients),
	}
}

func client(id, name string, risk internal.RiskLevel, amount float64, flagged int) internal.ClientNotification {
	return internal.ClientNotification{
		ID:                  id,
		ClientID:            "CL-" + id,
		ClientName:          name,
		RiskLevel:           risk,
		TotalTransactions:   3,
		TotalAmount:         amount,
		FlaggedTransactions: flagged,
		LastActivity:        "2024-01-15",
		AlertType:           "Unusual Activity",
		Country:             "United States",
		AccountType:         "Personal Checking",
		Transactions: []Transaction{
			{ID: id + "-TX1", Date: "2024-01-15", Amount: amount, Type: "Wire Transfer", Location: "New York", Description: "Test transaction", RiskScore: 50},
		},
	}
}

// Transaction aliases the internal type so fixtures read naturally.
type Transaction = internal.Transaction
