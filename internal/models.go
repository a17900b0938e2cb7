package internal

import (
	"time"
)

// RiskLevel is the fixed three-value classification attached to each client.
type RiskLevel string

const (
	RiskHigh   RiskLevel = "high"
	RiskMedium RiskLevel = "medium"
	RiskLow    RiskLevel = "low"
)

// Rank maps risk levels onto an ordinal scale (high=3, medium=2, low=1).
func (r RiskLevel) Rank() int {
	switch r {
	case RiskHigh:
		return 3
	case RiskMedium:
		return 2
	case RiskLow:
		return 1
	}
	return 0
}

// Transaction is a single transaction attached to a client notification.
type Transaction struct {
	ID          string  `json:"id" yaml:"id"`
	Date        string  `json:"date" yaml:"date"`
	Amount      float64 `json:"amount" yaml:"amount"`
	Type        string  `json:"type" yaml:"type"`
	Location    string  `json:"location" yaml:"location"`
	Description string  `json:"description" yaml:"description"`
	RiskScore   int     `json:"riskScore" yaml:"risk_score"`
}

// ClientNotification is one row of the case-review queue. Instances are
// immutable reference data; filters copy and reorder, never mutate.
type ClientNotification struct {
	ID                  string        `json:"id" yaml:"id"`
	ClientID            string        `json:"clientId" yaml:"client_id"`
	ClientName          string        `json:"clientName" yaml:"client_name"`
	RiskLevel           RiskLevel     `json:"riskLevel" yaml:"risk_level"`
	TotalTransactions   int           `json:"totalTransactions" yaml:"total_transactions"`
	TotalAmount         float64       `json:"totalAmount" yaml:"total_amount"`
	FlaggedTransactions int           `json:"flaggedTransactions" yaml:"flagged_transactions"`
	LastActivity        string        `json:"lastActivity" yaml:"last_activity"`
	AlertType           string        `json:"alertType" yaml:"alert_type"`
	Country             string        `json:"country" yaml:"country"`
	AccountType         string        `json:"accountType" yaml:"account_type"`
	Transactions        []Transaction `json:"transactions" yaml:"transactions"`
}

// Message roles.
const (
	RoleUser = "user"
	RoleAI   = "ai"
)

// MessageData is the computed summary block attached to AI messages.
type MessageData struct {
	TotalRecords  int      `json:"totalRecords" yaml:"total_records"`
	HighRisk      int      `json:"highRisk" yaml:"high_risk"`
	MediumRisk    int      `json:"mediumRisk" yaml:"medium_risk"`
	FlaggedAmount string   `json:"flaggedAmount" yaml:"flagged_amount"`
	KeyFindings   []string `json:"keyFindings,omitempty" yaml:"key_findings,omitempty"`
}

// Message is one entry of the append-only chat log. Messages are never
// mutated after creation.
type Message struct {
	ID              string       `json:"id" yaml:"id"`
	Role            string       `json:"type" yaml:"type"`
	Content         string       `json:"content" yaml:"content"`
	Timestamp       time.Time    `json:"timestamp" yaml:"timestamp"`
	AppliedFilter   string       `json:"appliedFilter,omitempty" yaml:"applied_filter,omitempty"`
	Insights        []string     `json:"insights,omitempty" yaml:"insights,omitempty"`
	Recommendations []string     `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`
	ReportID        string       `json:"reportId,omitempty" yaml:"report_id,omitempty"`
	Data            *MessageData `json:"data,omitempty" yaml:"data,omitempty"`
}

// ChatSession is a named, timestamped snapshot of a full message log.
type ChatSession struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Timestamp   time.Time `json:"timestamp" yaml:"timestamp"`
	Messages    []Message `json:"messages" yaml:"messages"`
	LastMessage string    `json:"lastMessage" yaml:"last_message"`
}

// ReportData is a denormalized investigation report. The derived totals
// (TotalExposure, HighRiskCount, FlaggedTransactions) are always recomputed
// from ClientsAnalyzed, never cached from elsewhere.
type ReportData struct {
	ID                  string               `json:"id" yaml:"id"`
	Title               string               `json:"title" yaml:"title"`
	Date                string               `json:"date" yaml:"date"`
	Investigator        string               `json:"investigator" yaml:"investigator"`
	Summary             string               `json:"summary" yaml:"summary"`
	Insights            []string             `json:"insights" yaml:"insights"`
	Recommendations     []string             `json:"recommendations" yaml:"recommendations"`
	KeyFindings         []string             `json:"keyFindings" yaml:"key_findings"`
	ClientsAnalyzed     []ClientNotification `json:"clientsAnalyzed" yaml:"clients_analyzed"`
	TotalExposure       float64              `json:"totalExposure" yaml:"total_exposure"`
	HighRiskCount       int                  `json:"highRiskCount" yaml:"high_risk_count"`
	FlaggedTransactions int                  `json:"flaggedTransactions" yaml:"flagged_transactions"`
}

// StoredReport is a report history entry.
type StoredReport struct {
	ID        string     `json:"id" yaml:"id"`
	Title     string     `json:"title" yaml:"title"`
	Date      string     `json:"date" yaml:"date"`
	Timestamp time.Time  `json:"timestamp" yaml:"timestamp"`
	Data      ReportData `json:"data" yaml:"data"`
}
