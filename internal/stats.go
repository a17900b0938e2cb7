package internal

// DashboardStats summarizes the roster and the current filtered view for the
// header cards of the dashboard.
type DashboardStats struct {
	TotalNotifications  int
	Shown               int
	HighRisk            int
	MediumRisk          int
	LowRisk             int
	FlaggedTransactions int
	TotalAmount         float64
	FormattedAmount     string
}

// Stats computes dashboard counters over the filtered view.
func Stats(notifications, filtered []ClientNotification) DashboardStats {
	total := TotalExposure(filtered)
	return DashboardStats{
		TotalNotifications:  len(notifications),
		Shown:               len(filtered),
		HighRisk:            CountRiskLevel(filtered, RiskHigh),
		MediumRisk:          CountRiskLevel(filtered, RiskMedium),
		LowRisk:             CountRiskLevel(filtered, RiskLow),
		FlaggedTransactions: CountFlagged(filtered),
		TotalAmount:         total,
		FormattedAmount:     FormatCurrency(total),
	}
}
