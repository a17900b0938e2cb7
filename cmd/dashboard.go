package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fran-roca/aml-intelligence/internal"
	"github.com/fran-roca/aml-intelligence/internal/export"
	"github.com/spf13/cobra"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			Padding(0, 1).
			MarginBottom(1)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	thinkingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Italic(true)
)

// dashboardCmd represents the dashboard command
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the interactive investigation console",
	Long: `Open an interactive console over the case-review queue.

Type free-text queries to filter the queue and get analysis responses, or use
slash commands:

  /suggest             Show suggested follow-up queries
  /new                 Start a new chat (resets filters)
  /sessions            List saved chat sessions
  /load <id>           Load a saved session
  /delete <id>         Delete a saved session
  /reports             List generated reports
  /open <id>           Open a report
  /delete-report <id>  Delete a report
  /export [format]     Export the open report (html, md, json, yaml)
  /quit                Exit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := internal.NewStore(internal.MockNotifications())
		assistant := internal.NewAssistant(store)
		defer assistant.Stop()

		out := os.Stdout
		fmt.Fprintln(out, bannerStyle.Render("AML Intelligence · case review console"))
		renderMessage(out, store.Messages()[0])
		fmt.Fprintln(out)
		renderStats(out, internal.Stats(store.Notifications(), store.Filtered()))
		fmt.Fprintln(out)
		renderClientTable(out, store.Filtered())
		fmt.Fprintln(out)

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Fprint(out, promptStyle.Render("query>")+" ")
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if strings.HasPrefix(line, "/") {
				if quit := runSlashCommand(out, store, line); quit {
					break
				}
				continue
			}

			ch := assistant.Submit(line)
			fmt.Fprintln(out, thinkingStyle.Render("analyzing..."))
			msg := <-ch
			fmt.Fprintln(out)
			renderMessage(out, msg)
			fmt.Fprintln(out)
			renderStats(out, internal.Stats(store.Notifications(), store.Filtered()))
			fmt.Fprintln(out)
			renderClientTable(out, store.Filtered())
			fmt.Fprintln(out)
		}

		// Flush any pending autosave before exit.
		assistant.Stop()
		store.SaveCurrentChat()
		return scanner.Err()
	},
}

// runSlashCommand handles console commands; returns true to exit.
func runSlashCommand(out *os.File, store *internal.Store, line string) bool {
	fields := strings.Fields(line)
	command, arg := fields[0], ""
	if len(fields) > 1 {
		arg = fields[1]
	}

	switch command {
	case "/quit", "/exit":
		return true

	case "/suggest":
		for _, q := range internal.ContextualQueries(store.Messages(), store.Filtered()) {
			fmt.Fprintf(out, "  • %s\n", q)
		}

	case "/new":
		store.SaveCurrentChat()
		store.StartNewChat()
		store.SetFiltered(store.Notifications())
		fmt.Fprintln(out, "Started a new chat.")

	case "/sessions":
		sessions := store.ChatHistory()
		if len(sessions) == 0 {
			fmt.Fprintln(out, "No saved sessions.")
			break
		}
		for _, s := range sessions {
			fmt.Fprintf(out, "  %s  %s (%d messages)\n", idStyle.Render(s.ID), s.Title, len(s.Messages))
		}

	case "/load":
		if store.LoadChatSession(arg) {
			fmt.Fprintf(out, "Loaded session %s.\n", arg)
		} else {
			fmt.Fprintf(out, "Unknown session %q.\n", arg)
		}

	case "/delete":
		if store.DeleteChatSession(arg) {
			fmt.Fprintf(out, "Deleted session %s.\n", arg)
		} else {
			fmt.Fprintf(out, "Unknown session %q.\n", arg)
		}

	case "/reports":
		reports := store.ReportHistory()
		if len(reports) == 0 {
			fmt.Fprintln(out, "No reports generated yet.")
			break
		}
		for _, r := range reports {
			fmt.Fprintf(out, "  %s  %s\n", idStyle.Render(r.ID), r.Title)
		}

	case "/open":
		if store.OpenReport(arg) {
			report, _ := store.CurrentReport()
			fmt.Fprintf(out, "%s (%s)\n", report.Title, report.Date)
			fmt.Fprintf(out, "  Total exposure: %s · %d high-risk · %d flagged\n",
				internal.FormatCurrency(report.TotalExposure), report.HighRiskCount, report.FlaggedTransactions)
			renderClientTable(out, report.ClientsAnalyzed)
		} else {
			fmt.Fprintf(out, "Unknown report %q.\n", arg)
		}

	case "/delete-report":
		if store.DeleteReport(arg) {
			fmt.Fprintf(out, "Deleted report %s.\n", arg)
		} else {
			fmt.Fprintf(out, "Unknown report %q.\n", arg)
		}

	case "/export":
		format := arg
		if format == "" {
			format = "html"
		}
		if err := exportCurrentReport(store, format); err != nil {
			fmt.Fprintf(out, "Export failed: %v\n", err)
		}

	default:
		fmt.Fprintf(out, "Unknown command %q. See 'aml-intelligence dashboard --help'.\n", command)
	}
	return false
}

func exportCurrentReport(store *internal.Store, format string) error {
	report, ok := store.CurrentReport()
	if !ok {
		return fmt.Errorf("no report is open; generate one first (\"generate investigation report\")")
	}

	exporter, err := export.NewExporter(format)
	if err != nil {
		return err
	}
	name := export.ReportFileName(report.Date)
	if exporter.Extension() != "html" {
		name = strings.TrimSuffix(name, ".html") + "." + exporter.Extension()
	}
	path := filepath.Join(".", name)

	f, err := os.Create(path)
	if err != nil {
		return &internal.ExportError{Format: format, Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	if err := exporter.Export(&report, f); err != nil {
		return &internal.ExportError{Format: format, Path: path, Err: err}
	}
	fmt.Printf("Exported %s\n", path)
	return nil
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
