package internal

import (
	"strings"
	"testing"
	"time"
)

func newTestStore() *Store {
	s := NewStore(MockNotifications())
	s.clock = fixedClock{t: time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)}
	return s
}

func TestNewStore_SeedsWelcomeAndUnfilteredView(t *testing.T) {
	s := newTestStore()

	msgs := s.Messages()
	if len(msgs) != 1 || msgs[0].Role != RoleAI {
		t.Fatalf("expected a single welcome message, got %d", len(msgs))
	}
	if len(s.Filtered()) != len(s.Notifications()) {
		t.Error("initial filtered view should equal the roster")
	}
}

func TestStore_SaveCurrentChat(t *testing.T) {
	s := newTestStore()

	// Welcome-only logs are not saved.
	s.SaveCurrentChat()
	if len(s.ChatHistory()) != 0 {
		t.Fatal("welcome-only chat should not be saved")
	}

	s.AddMessage(Message{ID: "u1", Role: RoleUser, Content: "show high-risk clients"})
	s.AddMessage(CreateTestAIMessage("Found them.", nil, nil, nil))
	s.SaveCurrentChat()

	history := s.ChatHistory()
	if len(history) != 1 {
		t.Fatalf("history length = %d, want 1", len(history))
	}
	if history[0].Title != "show high-risk clients" {
		t.Errorf("title = %q", history[0].Title)
	}
	if len(history[0].Messages) != 3 {
		t.Errorf("snapshot has %d messages, want 3", len(history[0].Messages))
	}
	if !strings.HasSuffix(history[0].LastMessage, "...") {
		t.Errorf("last message not truncated: %q", history[0].LastMessage)
	}

	// Saving again updates the same session instead of appending.
	s.AddMessage(Message{ID: "u2", Role: RoleUser, Content: "focus on marcus"})
	s.SaveCurrentChat()

	history = s.ChatHistory()
	if len(history) != 1 {
		t.Fatalf("resave created a new session, history length = %d", len(history))
	}
	if history[0].Title != "focus on marcus" {
		t.Errorf("updated title = %q", history[0].Title)
	}
}

func TestStore_SaveCurrentChat_TruncatesLongTitle(t *testing.T) {
	s := newTestStore()
	long := strings.Repeat("x", 80)

	s.AddMessage(Message{ID: "u1", Role: RoleUser, Content: long})
	s.SaveCurrentChat()

	title := s.ChatHistory()[0].Title
	if title != strings.Repeat("x", 50)+"..." {
		t.Errorf("title = %q", title)
	}
}

func TestStore_ClearChatKeepsSessionIdentity(t *testing.T) {
	s := newTestStore()
	s.AddMessage(Message{ID: "u1", Role: RoleUser, Content: "first chat"})
	s.SaveCurrentChat()
	id := s.CurrentChatID()

	s.ClearChat()
	if len(s.Messages()) != 1 {
		t.Error("clear should reset to the welcome message")
	}
	if s.CurrentChatID() != id {
		t.Error("clear must not detach from the current session")
	}
}

func TestStore_LoadAndDeleteChatSession(t *testing.T) {
	s := newTestStore()
	s.AddMessage(Message{ID: "u1", Role: RoleUser, Content: "first chat"})
	s.SaveCurrentChat()
	id := s.ChatHistory()[0].ID

	s.StartNewChat()
	if len(s.Messages()) != 1 {
		t.Fatal("new chat should reset to the welcome message")
	}

	if !s.LoadChatSession(id) {
		t.Fatal("failed to load saved session")
	}
	if len(s.Messages()) != 2 {
		t.Errorf("loaded %d messages, want 2", len(s.Messages()))
	}
	if s.CurrentChatID() != id {
		t.Errorf("current chat id = %q, want %q", s.CurrentChatID(), id)
	}

	if s.LoadChatSession("chat-nope") {
		t.Error("loading an unknown id should return false")
	}

	// Deleting the current session resets the live log.
	if !s.DeleteChatSession(id) {
		t.Fatal("delete returned false for a known id")
	}
	if len(s.ChatHistory()) != 0 {
		t.Error("session still present after delete")
	}
	if len(s.Messages()) != 1 || s.CurrentChatID() != "" {
		t.Error("deleting the current session should start a new chat")
	}

	if s.DeleteChatSession("chat-nope") {
		t.Error("deleting an unknown id should return false")
	}
}

func TestStore_GenerateReportHistory(t *testing.T) {
	s := newTestStore()
	msgs := s.Messages()
	filtered := s.Filtered()

	id1 := s.GenerateInvestigationReport(msgs, filtered)
	id2 := s.GenerateInvestigationReport(msgs, filtered)
	id3 := s.GenerateInvestigationReport(msgs, filtered)

	if id1 == id2 || id2 == id3 || id1 == id3 {
		t.Fatalf("report ids must be distinct: %s %s %s", id1, id2, id3)
	}

	history := s.ReportHistory()
	if len(history) != 3 {
		t.Fatalf("history length = %d, want 3", len(history))
	}
	// Most recent first.
	if history[0].ID != id3 || history[2].ID != id1 {
		t.Errorf("history order wrong: %s %s %s", history[0].ID, history[1].ID, history[2].ID)
	}

	// The newest report is marked open.
	open, ok := s.CurrentReport()
	if !ok || open.ID != id3 {
		t.Errorf("current report = %v %v, want %s", open.ID, ok, id3)
	}

	// Deleting the first does not affect the others.
	if !s.DeleteReport(id1) {
		t.Fatal("delete returned false")
	}
	if !s.OpenReport(id2) {
		t.Error("report 2 not retrievable after deleting report 1")
	}
	if !s.OpenReport(id3) {
		t.Error("report 3 not retrievable after deleting report 1")
	}
	if s.OpenReport(id1) {
		t.Error("deleted report should not open")
	}
}

func TestStore_OpenCloseReport(t *testing.T) {
	s := newTestStore()
	id := s.GenerateInvestigationReport(s.Messages(), s.Filtered())

	s.CloseReport()
	if _, ok := s.CurrentReport(); ok {
		t.Error("report still open after CloseReport")
	}

	if !s.OpenReport(id) {
		t.Fatal("reopen failed")
	}
	if report, ok := s.CurrentReport(); !ok || report.ID != id {
		t.Error("reopened report mismatch")
	}

	s.CloseReport()
	s.OpenStoredReport(s.ReportHistory()[0])
	if report, ok := s.CurrentReport(); !ok || report.ID != id {
		t.Error("opening a stored report directly did not set it current")
	}
}

func TestStore_SubscribeNotifies(t *testing.T) {
	s := newTestStore()
	count := 0
	unsubscribe := s.Subscribe(func() { count++ })

	s.AddMessage(Message{ID: "u1", Role: RoleUser, Content: "hello"})
	s.SetFiltered(nil)
	if count != 2 {
		t.Errorf("subscriber called %d times, want 2", count)
	}

	unsubscribe()
	s.AddMessage(Message{ID: "u2", Role: RoleUser, Content: "more"})
	if count != 2 {
		t.Error("subscriber called after unsubscribe")
	}
}

func TestStore_FilteredReturnsCopy(t *testing.T) {
	s := newTestStore()
	view := s.Filtered()
	view[0] = CreateTestClient("CN-X", "Mallory", RiskLow, 0, 0)

	if s.Filtered()[0].ID == "CN-X" {
		t.Error("mutating the returned slice leaked into the store")
	}
}
