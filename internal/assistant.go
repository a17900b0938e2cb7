package internal

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Timing of the simulated assistant. The think delay imitates processing
// latency; the autosave window is the quiescence period after the last
// message-log change before the chat is snapshotted into history.
const (
	DefaultThinkDelay     = 1500 * time.Millisecond
	DefaultAutosaveWindow = time.Second
)

// Assistant drives one analysis turn: it records the user message, applies
// the filter, and after the simulated think delay appends the synthesized AI
// message. Every message-log change arms the autosave debouncer.
type Assistant struct {
	store      *Store
	clock      Clock
	thinkDelay time.Duration
	autosave   *Debouncer
}

// NewAssistant wires an assistant to the store with production delays.
func NewAssistant(store *Store) *Assistant {
	return NewAssistantWithDelays(store, DefaultThinkDelay, DefaultAutosaveWindow)
}

// NewAssistantWithDelays wires an assistant with explicit delays.
// Non-positive delays run synchronously, which is what the one-shot commands
// and the tests use.
func NewAssistantWithDelays(store *Store, thinkDelay, autosaveWindow time.Duration) *Assistant {
	a := &Assistant{
		store:      store,
		clock:      SystemClock{},
		thinkDelay: thinkDelay,
	}
	a.autosave = NewDebouncer(autosaveWindow, store.SaveCurrentChat)
	return a
}

// Submit records a query and schedules its response. The returned channel
// receives the AI message once the think delay elapses.
//
// Overlapping submissions are not serialized: each schedules its own delayed
// response and responses append in completion order, which may differ from
// submission order.
func (a *Assistant) Submit(query string) <-chan Message {
	ch := make(chan Message, 1)

	query = strings.TrimSpace(query)
	if query == "" {
		close(ch)
		return ch
	}

	a.store.AddMessage(Message{
		ID:        uuid.NewString(),
		Role:      RoleUser,
		Content:   query,
		Timestamp: a.clock.Now(),
	})
	a.autosave.Trigger()

	filtered := ApplyFilter(query, a.store.Notifications())
	a.store.SetFiltered(filtered)

	if a.thinkDelay <= 0 {
		ch <- a.respond(query, filtered)
		return ch
	}
	time.AfterFunc(a.thinkDelay, func() {
		ch <- a.respond(query, filtered)
	})
	return ch
}

func (a *Assistant) respond(query string, filtered []ClientNotification) Message {
	generate := func() string {
		return a.store.GenerateInvestigationReport(a.store.Messages(), a.store.Filtered())
	}
	resp := GenerateAIResponse(query, filtered, len(a.store.Notifications()), generate)

	msg := Message{
		ID:              uuid.NewString(),
		Role:            RoleAI,
		Content:         resp.Content,
		Timestamp:       a.clock.Now(),
		AppliedFilter:   query,
		Insights:        resp.Insights,
		Recommendations: resp.Recommendations,
		ReportID:        resp.ReportID,
		Data: &MessageData{
			TotalRecords:  len(filtered),
			HighRisk:      CountRiskLevel(filtered, RiskHigh),
			MediumRisk:    CountRiskLevel(filtered, RiskMedium),
			FlaggedAmount: FormatCurrency(TotalExposure(filtered)),
			KeyFindings:   resp.KeyFindings,
		},
	}
	a.store.AddMessage(msg)
	a.autosave.Trigger()
	return msg
}

// Stop cancels any pending autosave.
func (a *Assistant) Stop() {
	a.autosave.Stop()
}
