package internal

import (
	"sync"

	"github.com/google/uuid"
)

// Store owns all session state: the fixed notification roster, the filtered
// view, the chat log, the chat-session history, and the report history. All
// state is volatile and lives for the process lifetime only. Mutations go
// through accessor methods; subscribers are notified after each change.
type Store struct {
	mu            sync.Mutex
	clock         Clock
	notifications []ClientNotification
	filtered      []ClientNotification
	messages      []Message
	currentChatID string
	chatHistory   []ChatSession
	reportHistory []StoredReport
	currentReport *ReportData
	subscribers   map[int]func()
	nextSubID     int
}

// NewStore creates a store seeded with the given roster, an unfiltered view,
// and the welcome message.
func NewStore(notifications []ClientNotification) *Store {
	s := &Store{
		clock:       SystemClock{},
		subscribers: make(map[int]func()),
	}
	s.notifications = make([]ClientNotification, len(notifications))
	copy(s.notifications, notifications)
	s.filtered = make([]ClientNotification, len(notifications))
	copy(s.filtered, notifications)
	s.messages = []Message{WelcomeMessage()}
	return s
}

// Subscribe registers a change callback and returns its removal function.
// Callbacks run outside the store lock.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

func (s *Store) snapshotSubscribers() []func() {
	subs := make([]func(), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	return subs
}

func notifyAll(subs []func()) {
	for _, fn := range subs {
		fn()
	}
}

// Notifications returns the full roster.
func (s *Store) Notifications() []ClientNotification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyClients(s.notifications)
}

// Filtered returns the current filtered view.
func (s *Store) Filtered() []ClientNotification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyClients(s.filtered)
}

// SetFiltered replaces the filtered view.
func (s *Store) SetFiltered(filtered []ClientNotification) {
	s.mu.Lock()
	s.filtered = copyClients(filtered)
	subs := s.snapshotSubscribers()
	s.mu.Unlock()
	notifyAll(subs)
}

// Messages returns the ordered chat log.
func (s *Store) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyMessages(s.messages)
}

// AddMessage appends to the chat log.
func (s *Store) AddMessage(m Message) {
	s.mu.Lock()
	s.messages = append(s.messages, m)
	subs := s.snapshotSubscribers()
	s.mu.Unlock()
	notifyAll(subs)
}

// ClearChat resets the chat log to the welcome message, keeping the current
// session identity.
func (s *Store) ClearChat() {
	s.mu.Lock()
	s.messages = []Message{WelcomeMessage()}
	subs := s.snapshotSubscribers()
	s.mu.Unlock()
	notifyAll(subs)
}

// StartNewChat resets the chat log and detaches from the current session.
func (s *Store) StartNewChat() {
	s.mu.Lock()
	s.messages = []Message{WelcomeMessage()}
	s.currentChatID = ""
	subs := s.snapshotSubscribers()
	s.mu.Unlock()
	notifyAll(subs)
}

// SaveCurrentChat snapshots the live chat log into the session history,
// updating the current session in place or prepending a new one. A log that
// still holds only the welcome message is not saved.
func (s *Store) SaveCurrentChat() {
	s.mu.Lock()
	if len(s.messages) <= 1 {
		s.mu.Unlock()
		return
	}

	title := "New Investigation"
	for i := len(s.messages) - 1; i >= 0; i-- {
		if s.messages[i].Role == RoleUser {
			title = truncateWithEllipsis(s.messages[i].Content, 50)
			break
		}
	}
	last := s.messages[len(s.messages)-1]

	session := ChatSession{
		ID:          s.currentChatID,
		Title:       title,
		Timestamp:   s.clock.Now(),
		Messages:    copyMessages(s.messages),
		LastMessage: truncateRunes(last.Content, 100) + "...",
	}
	if session.ID == "" {
		session.ID = "chat-" + uuid.NewString()
	}

	replaced := false
	for i := range s.chatHistory {
		if s.chatHistory[i].ID == session.ID {
			s.chatHistory[i] = session
			replaced = true
			break
		}
	}
	if !replaced {
		s.chatHistory = append([]ChatSession{session}, s.chatHistory...)
	}
	if s.currentChatID == "" {
		s.currentChatID = session.ID
	}
	subs := s.snapshotSubscribers()
	s.mu.Unlock()
	notifyAll(subs)
}

// ChatHistory returns the saved sessions, most recent first.
func (s *Store) ChatHistory() []ChatSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ChatSession, len(s.chatHistory))
	copy(out, s.chatHistory)
	return out
}

// CurrentChatID returns the id of the session the live log belongs to, or
// empty for an unsaved chat.
func (s *Store) CurrentChatID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentChatID
}

// LoadChatSession replaces the live log with a saved session. Returns false
// when the id is unknown.
func (s *Store) LoadChatSession(id string) bool {
	s.mu.Lock()
	var found *ChatSession
	for i := range s.chatHistory {
		if s.chatHistory[i].ID == id {
			found = &s.chatHistory[i]
			break
		}
	}
	if found == nil {
		s.mu.Unlock()
		return false
	}
	s.messages = copyMessages(found.Messages)
	s.currentChatID = found.ID
	subs := s.snapshotSubscribers()
	s.mu.Unlock()
	notifyAll(subs)
	return true
}

// DeleteChatSession removes a saved session. Deleting the session the live
// log belongs to also starts a new chat. Unknown ids are a no-op.
func (s *Store) DeleteChatSession(id string) bool {
	s.mu.Lock()
	kept := s.chatHistory[:0]
	removed := false
	for _, sess := range s.chatHistory {
		if sess.ID == id {
			removed = true
			continue
		}
		kept = append(kept, sess)
	}
	s.chatHistory = kept
	if removed && s.currentChatID == id {
		s.messages = []Message{WelcomeMessage()}
		s.currentChatID = ""
	}
	subs := s.snapshotSubscribers()
	s.mu.Unlock()
	notifyAll(subs)
	return removed
}

// GenerateInvestigationReport compiles a report from the given message log
// and client subset, prepends it to the report history, marks it as the open
// report, and returns its id.
func (s *Store) GenerateInvestigationReport(messages []Message, filtered []ClientNotification) string {
	s.mu.Lock()
	report := CompileReport(messages, filtered, s.clock.Now())
	stored := StoredReport{
		ID:        report.ID,
		Title:     report.Title + " - " + report.Date,
		Date:      report.Date,
		Timestamp: s.clock.Now(),
		Data:      report,
	}
	s.reportHistory = append([]StoredReport{stored}, s.reportHistory...)
	s.currentReport = &report
	subs := s.snapshotSubscribers()
	s.mu.Unlock()
	notifyAll(subs)
	return report.ID
}

// ReportHistory returns the stored reports, most recent first.
func (s *Store) ReportHistory() []StoredReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]StoredReport, len(s.reportHistory))
	copy(out, s.reportHistory)
	return out
}

// OpenReport marks a stored report as the open one. Returns false when the
// id is unknown.
func (s *Store) OpenReport(id string) bool {
	s.mu.Lock()
	var found *StoredReport
	for i := range s.reportHistory {
		if s.reportHistory[i].ID == id {
			found = &s.reportHistory[i]
			break
		}
	}
	if found == nil {
		s.mu.Unlock()
		return false
	}
	data := found.Data
	s.currentReport = &data
	subs := s.snapshotSubscribers()
	s.mu.Unlock()
	notifyAll(subs)
	return true
}

// OpenStoredReport marks the given report as the open one.
func (s *Store) OpenStoredReport(r StoredReport) {
	s.mu.Lock()
	data := r.Data
	s.currentReport = &data
	subs := s.snapshotSubscribers()
	s.mu.Unlock()
	notifyAll(subs)
}

// CloseReport clears the open report.
func (s *Store) CloseReport() {
	s.mu.Lock()
	s.currentReport = nil
	subs := s.snapshotSubscribers()
	s.mu.Unlock()
	notifyAll(subs)
}

// DeleteReport removes a report from the history. The open report is
// unaffected. Unknown ids are a no-op.
func (s *Store) DeleteReport(id string) bool {
	s.mu.Lock()
	kept := s.reportHistory[:0]
	removed := false
	for _, r := range s.reportHistory {
		if r.ID == id {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	s.reportHistory = kept
	subs := s.snapshotSubscribers()
	s.mu.Unlock()
	notifyAll(subs)
	return removed
}

// CurrentReport returns the open report, if any.
func (s *Store) CurrentReport() (ReportData, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentReport == nil {
		return ReportData{}, false
	}
	return *s.currentReport, true
}

func copyClients(in []ClientNotification) []ClientNotification {
	out := make([]ClientNotification, len(in))
	copy(out, in)
	return out
}

func copyMessages(in []Message) []Message {
	out := make([]Message, len(in))
	copy(out, in)
	return out
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func truncateWithEllipsis(s string, n int) string {
	if len([]rune(s)) <= n {
		return s
	}
	return truncateRunes(s, n) + "..."
}
