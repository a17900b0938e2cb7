package internal

import "time"

// CreateTestClient returns a minimal notification for tests.
func CreateTestClient(id, name string, risk RiskLevel, amount float64, flagged int) ClientNotification {
	return ClientNotification{
		ID:                  id,
		ClientID:            "CL-" + id,
		ClientName:          name,
		RiskLevel:           risk,
		TotalTransactions:   1,
		TotalAmount:         amount,
		FlaggedTransactions: flagged,
		LastActivity:        "2024-01-01",
		AlertType:           "Unusual Activity",
		Country:             "United States",
		AccountType:         "Personal Checking",
	}
}

// CreateTestAIMessage returns an AI message carrying the given side-panel
// lists, the shape the report compiler aggregates over.
func CreateTestAIMessage(content string, insights, recommendations, findings []string) Message {
	return Message{
		ID:              "msg-" + content,
		Role:            RoleAI,
		Content:         content,
		Timestamp:       time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC),
		Insights:        insights,
		Recommendations: recommendations,
		Data: &MessageData{
			KeyFindings: findings,
		},
	}
}

// fixedClock is a Clock pinned to one instant.
type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }
