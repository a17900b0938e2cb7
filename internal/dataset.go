package internal

import "time"

// WelcomeMessage is the first AI message of every fresh chat.
func WelcomeMessage() Message {
	return Message{
		ID:        "welcome",
		Role:      RoleAI,
		Content:   "Hello! I'm your AML investigation assistant. I can help you filter and analyze client notifications, detect suspicious patterns, and generate investigation reports. Try asking me to show high-risk clients or find structuring activities.",
		Timestamp: time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC),
	}
}

// MockNotifications returns the demo case-review queue. The roster is fixed
// for the lifetime of the session; callers filter copies, never mutate it.
func MockNotifications() []ClientNotification {
	return []ClientNotification{
		{
			ID:                  "CN-001",
			ClientID:            "CL-4821",
			ClientName:          "Marcus Rodriguez",
			RiskLevel:           RiskHigh,
			TotalTransactions:   47,
			TotalAmount:         2450000,
			FlaggedTransactions: 12,
			LastActivity:        "2024-01-19",
			AlertType:           "Structuring",
			Country:             "Panama",
			AccountType:         "Business Checking",
			Transactions: []Transaction{
				{ID: "TX-1001", Date: "2024-01-18", Amount: 9800, Type: "Cash Deposit", Location: "Panama City - Branch 401", Description: "Cash deposit below CTR threshold", RiskScore: 92},
				{ID: "TX-1002", Date: "2024-01-18", Amount: 9750, Type: "Cash Deposit", Location: "Colon - Branch 402", Description: "Cash deposit below CTR threshold", RiskScore: 94},
				{ID: "TX-1003", Date: "2024-01-19", Amount: 9900, Type: "Cash Deposit", Location: "Panama City - Branch 401", Description: "Cash deposit below CTR threshold", RiskScore: 95},
				{ID: "TX-1004", Date: "2024-01-15", Amount: 125000, Type: "Wire Transfer", Location: "Panama City", Description: "Transfer to Shell Company Ltd", RiskScore: 88},
			},
		},
		{
			ID:                  "CN-002",
			ClientID:            "CL-7394",
			ClientName:          "Sarah Chen",
			RiskLevel:           RiskHigh,
			TotalTransactions:   23,
			TotalAmount:         5200000,
			FlaggedTransactions: 8,
			LastActivity:        "2024-01-18",
			AlertType:           "Geographic Anomaly",
			Country:             "Singapore",
			AccountType:         "Private Banking",
			Transactions: []Transaction{
				{ID: "TX-2001", Date: "2024-01-16", Amount: 45000, Type: "Wire Transfer", Location: "Singapore", Description: "Wire transfer to offshore account", RiskScore: 90},
				{ID: "TX-2002", Date: "2024-01-17", Amount: 32000, Type: "ATM Withdrawal", Location: "Dubai", Description: "Large cash withdrawal in high-risk jurisdiction", RiskScore: 87},
				{ID: "TX-2003", Date: "2024-01-12", Amount: 210000, Type: "Wire Transfer", Location: "Singapore", Description: "Inbound transfer from trading entity", RiskScore: 72},
			},
		},
		{
			ID:                  "CN-003",
			ClientID:            "CL-1157",
			ClientName:          "Ahmed Al-Rashid",
			RiskLevel:           RiskMedium,
			TotalTransactions:   31,
			TotalAmount:         8750000,
			FlaggedTransactions: 5,
			LastActivity:        "2024-01-17",
			AlertType:           "PEP Activity",
			Country:             "UAE",
			AccountType:         "Corporate Account",
			Transactions: []Transaction{
				{ID: "TX-3001", Date: "2024-01-14", Amount: 480000, Type: "Wire Transfer", Location: "Dubai", Description: "Government contract payment", RiskScore: 65},
				{ID: "TX-3002", Date: "2024-01-17", Amount: 95000, Type: "Wire Transfer", Location: "Abu Dhabi", Description: "Transfer to family member account", RiskScore: 58},
			},
		},
		{
			ID:                  "CN-004",
			ClientID:            "CL-6629",
			ClientName:          "Elena Volkov",
			RiskLevel:           RiskMedium,
			TotalTransactions:   64,
			TotalAmount:         1120000,
			FlaggedTransactions: 6,
			LastActivity:        "2024-01-19",
			AlertType:           "Velocity Alert",
			Country:             "Russia",
			AccountType:         "Personal Savings",
			Transactions: []Transaction{
				{ID: "TX-4001", Date: "2024-01-19", Amount: 18500, Type: "Wire Transfer", Location: "Moscow", Description: "Rapid sequence of outbound transfers", RiskScore: 61},
				{ID: "TX-4002", Date: "2024-01-19", Amount: 22000, Type: "Wire Transfer", Location: "Moscow", Description: "Rapid sequence of outbound transfers", RiskScore: 63},
			},
		},
		{
			ID:                  "CN-005",
			ClientID:            "CL-3348",
			ClientName:          "Robert Mitchell",
			RiskLevel:           RiskLow,
			TotalTransactions:   18,
			TotalAmount:         450000,
			FlaggedTransactions: 2,
			LastActivity:        "2024-01-16",
			AlertType:           "Unusual Activity",
			Country:             "United States",
			AccountType:         "Personal Checking",
			Transactions: []Transaction{
				{ID: "TX-5001", Date: "2024-01-16", Amount: 15000, Type: "Check Deposit", Location: "New York", Description: "Deposit inconsistent with account profile", RiskScore: 34},
			},
		},
	}
}
