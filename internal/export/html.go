package export

import (
	"html/template"
	"io"

	"github.com/fran-roca/aml-intelligence/internal"
)

// HTMLExporter renders a report as a standalone HTML document, the same
// layout the printable report view uses.
type HTMLExporter struct{}

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"currency": internal.FormatCurrency,
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Georgia, serif; max-width: 900px; margin: 2rem auto; color: #1e293b; }
h1 { border-bottom: 3px solid #334155; padding-bottom: 0.5rem; }
h2 { color: #334155; margin-top: 2rem; }
.meta { color: #64748b; margin-bottom: 2rem; }
.totals { display: flex; gap: 2rem; margin: 1.5rem 0; }
.totals div { border: 1px solid #cbd5e1; padding: 1rem; flex: 1; }
.totals .value { font-size: 1.4rem; font-weight: bold; }
table { width: 100%; border-collapse: collapse; margin-top: 1rem; }
th, td { border: 1px solid #cbd5e1; padding: 0.5rem 0.75rem; text-align: left; }
th { background: #f1f5f9; }
.risk-high { color: #b91c1c; font-weight: bold; }
.risk-medium { color: #b45309; }
.risk-low { color: #047857; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="meta">Generated {{.Date}} by {{.Investigator}} &middot; Report ID {{.ID}}</p>

<div class="totals">
<div><div>Total Exposure</div><div class="value">{{currency .TotalExposure}}</div></div>
<div><div>High-Risk Clients</div><div class="value">{{.HighRiskCount}}</div></div>
<div><div>Flagged Transactions</div><div class="value">{{.FlaggedTransactions}}</div></div>
</div>

<h2>Executive Summary</h2>
<p>{{.Summary}}</p>

{{if .KeyFindings}}<h2>Key Findings</h2>
<ul>{{range .KeyFindings}}<li>{{.}}</li>{{end}}</ul>{{end}}

{{if .Insights}}<h2>Investigation Insights</h2>
<ul>{{range .Insights}}<li>{{.}}</li>{{end}}</ul>{{end}}

{{if .Recommendations}}<h2>Recommendations</h2>
<ul>{{range .Recommendations}}<li>{{.}}</li>{{end}}</ul>{{end}}

<h2>Clients Analyzed</h2>
<table>
<tr><th>Client</th><th>Risk</th><th>Alert Type</th><th>Country</th><th>Total Amount</th><th>Flagged</th></tr>
{{range .ClientsAnalyzed}}<tr>
<td>{{.ClientName}}</td>
<td class="risk-{{.RiskLevel}}">{{.RiskLevel}}</td>
<td>{{.AlertType}}</td>
<td>{{.Country}}</td>
<td>{{currency .TotalAmount}}</td>
<td>{{.FlaggedTransactions}}</td>
</tr>{{end}}
</table>
</body>
</html>
`))

// Export writes the report as a standalone HTML document.
func (e *HTMLExporter) Export(report *internal.ReportData, w io.Writer) error {
	return htmlTemplate.Execute(w, report)
}

// Extension returns the file extension for this format
func (e *HTMLExporter) Extension() string {
	return "html"
}
