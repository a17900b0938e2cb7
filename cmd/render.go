package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/fran-roca/aml-intelligence/internal"
)

var (
	// Shared styles
	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("62")).
				Padding(0, 1)

	riskHighStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	riskMediumStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	riskLowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	aiLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("135")).
			Bold(true).
			Padding(0, 1)

	userLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true).
			Padding(0, 1)

	statsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)
)

func riskStyled(level internal.RiskLevel) string {
	switch level {
	case internal.RiskHigh:
		return riskHighStyle.Render(string(level))
	case internal.RiskMedium:
		return riskMediumStyle.Render(string(level))
	default:
		return riskLowStyle.Render(string(level))
	}
}

// renderClientTable writes the notification queue as an aligned table.
func renderClientTable(w io.Writer, clients []internal.ClientNotification) {
	if len(clients) == 0 {
		fmt.Fprintln(w, statsStyle.Render("  (no clients match the current filter)"))
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, tableHeaderStyle.Render("CLIENT")+"\t"+
		tableHeaderStyle.Render("RISK")+"\t"+
		tableHeaderStyle.Render("ALERT TYPE")+"\t"+
		tableHeaderStyle.Render("COUNTRY")+"\t"+
		tableHeaderStyle.Render("AMOUNT")+"\t"+
		tableHeaderStyle.Render("FLAGGED"))
	for _, c := range clients {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\n",
			c.ClientName,
			riskStyled(c.RiskLevel),
			c.AlertType,
			c.Country,
			internal.FormatCurrency(c.TotalAmount),
			c.FlaggedTransactions)
	}
	_ = tw.Flush()
}

// renderStats writes the dashboard counter line.
func renderStats(w io.Writer, stats internal.DashboardStats) {
	fmt.Fprintln(w, statsStyle.Render(fmt.Sprintf(
		"Showing %d of %d notifications · %d high / %d medium / %d low · %d flagged · %s total",
		stats.Shown, stats.TotalNotifications,
		stats.HighRisk, stats.MediumRisk, stats.LowRisk,
		stats.FlaggedTransactions, stats.FormattedAmount)))
}

// renderMessage writes a chat message with its side-panel content.
func renderMessage(w io.Writer, m internal.Message) {
	label := aiLabelStyle.Render("assistant")
	if m.Role == internal.RoleUser {
		label = userLabelStyle.Render("you")
	}
	fmt.Fprintf(w, "%s\n%s\n", label, indent(m.Content, "  "))

	if len(m.Insights) > 0 {
		fmt.Fprintln(w, sectionStyle.Render("  Insights"))
		for _, s := range m.Insights {
			fmt.Fprintf(w, "    • %s\n", s)
		}
	}
	if len(m.Recommendations) > 0 {
		fmt.Fprintln(w, sectionStyle.Render("  Recommendations"))
		for _, s := range m.Recommendations {
			fmt.Fprintf(w, "    • %s\n", s)
		}
	}
	if m.Data != nil && len(m.Data.KeyFindings) > 0 {
		fmt.Fprintln(w, sectionStyle.Render("  Key Findings"))
		for _, s := range m.Data.KeyFindings {
			fmt.Fprintf(w, "    • %s\n", s)
		}
	}
	if m.Data != nil {
		fmt.Fprintln(w, statsStyle.Render(fmt.Sprintf(
			"  %d records · %d high risk · %d medium risk · %s flagged amount",
			m.Data.TotalRecords, m.Data.HighRisk, m.Data.MediumRisk, m.Data.FlaggedAmount)))
	}
	if m.ReportID != "" {
		fmt.Fprintln(w, idStyle.Render("  report: "+m.ReportID))
	}
}

func indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
