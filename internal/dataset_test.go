package internal

import "testing"

func TestMockNotifications_Shape(t *testing.T) {
	roster := MockNotifications()

	if len(roster) != 5 {
		t.Fatalf("roster has %d clients, want 5", len(roster))
	}
	if got := CountRiskLevel(roster, RiskHigh); got != 2 {
		t.Errorf("high-risk count = %d, want 2", got)
	}

	seen := make(map[string]bool)
	for _, c := range roster {
		if seen[c.ID] {
			t.Errorf("duplicate id %s", c.ID)
		}
		seen[c.ID] = true
		if c.RiskLevel.Rank() == 0 {
			t.Errorf("%s has invalid risk level %q", c.ID, c.RiskLevel)
		}
		if len(c.Transactions) == 0 {
			t.Errorf("%s has no transactions", c.ID)
		}
	}
}

func TestMockNotifications_MarcusStructuringDeposits(t *testing.T) {
	roster := MockNotifications()
	marcus := roster[0]

	if marcus.ClientName != "Marcus Rodriguez" {
		t.Fatalf("first client is %s", marcus.ClientName)
	}

	var structured float64
	for _, tx := range marcus.Transactions {
		if tx.Type == "Cash Deposit" {
			if tx.Amount >= 10000 {
				t.Errorf("deposit %s at %v is not below the CTR threshold", tx.ID, tx.Amount)
			}
			structured += tx.Amount
		}
	}
	// The canned narratives quote $29,450 across the three deposits.
	if structured != 29450 {
		t.Errorf("structured deposits total %v, want 29450", structured)
	}
}

func TestWelcomeMessage(t *testing.T) {
	msg := WelcomeMessage()
	if msg.Role != RoleAI || msg.Content == "" {
		t.Errorf("unexpected welcome message: %+v", msg)
	}
}
