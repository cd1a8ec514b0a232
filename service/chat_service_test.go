package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Aashish23092/tax-advisor/dto"
)

func newTestChatAdvisor() *ChatAdvisor {
	// No Gemini client: every answer goes through the rule-based path.
	return NewChatAdvisor(nil, 30*time.Minute)
}

func testSession(advisor *ChatAdvisor) string {
	slip := dto.SalarySlipData{GrossSalary: 1200000, BasicSalary: 480000, HRA: 192000}
	profile := dto.UserTaxProfile{Section80C: 50000, Section80D: 0, RentPaid: 0}
	result := dto.TaxComparisonResult{
		RecommendedRegime: "new",
		SavingsAmount:     18200,
		OldRegime:         dto.RegimeResult{TotalTax: 132600},
		NewRegime:         dto.RegimeResult{TotalTax: 114400},
	}
	return advisor.CreateSession(slip, profile, result)
}

func TestChatAdvisorUnknownSession(t *testing.T) {
	advisor := newTestChatAdvisor()

	_, err := advisor.Ask("no-such-session", "Should I invest in PPF?")

	assert.ErrorIs(t, err, dto.ErrSessionNotFound)
}

func TestChatAdvisorRuleBasedAnswers(t *testing.T) {
	advisor := newTestChatAdvisor()
	sessionID := testSession(advisor)

	tests := []struct {
		name     string
		question string
		contains string
	}{
		{
			name:     "80C gap",
			question: "How much more can I put into ELSS?",
			contains: "Rs 100000 more",
		},
		{
			name:     "health insurance",
			question: "What about health insurance under 80D?",
			contains: "Section 80D",
		},
		{
			name:     "no rent declared",
			question: "Can I claim HRA?",
			contains: "not declared any rent",
		},
		{
			name:     "regime comparison",
			question: "Which regime is better for me?",
			contains: "NEW regime is recommended",
		},
		{
			name:     "home loan",
			question: "Does my home loan help under 24(b)?",
			contains: "Section 24(b)",
		},
		{
			name:     "unrecognized topic",
			question: "Tell me something",
			contains: "recommended regime NEW",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := advisor.Ask(sessionID, tt.question)

			assert.NoError(t, err)
			assert.Equal(t, sessionID, resp.SessionID)
			assert.False(t, resp.AIGenerated)
			assert.Contains(t, resp.Reply, tt.contains)
			assert.NotEmpty(t, resp.Suggested)
		})
	}
}

func TestChatAdvisorMaxed80C(t *testing.T) {
	advisor := newTestChatAdvisor()
	sessionID := advisor.CreateSession(
		dto.SalarySlipData{GrossSalary: 1500000},
		dto.UserTaxProfile{Section80C: 150000},
		dto.TaxComparisonResult{RecommendedRegime: "old"},
	)

	resp, err := advisor.Ask(sessionID, "Should I add more to my PPF?")

	assert.NoError(t, err)
	assert.Contains(t, resp.Reply, "already maximized")
	assert.Contains(t, resp.Reply, "80CCD(1B)")
}

func TestChatAdvisorKeepsHistory(t *testing.T) {
	advisor := newTestChatAdvisor()
	sessionID := testSession(advisor)

	_, err := advisor.Ask(sessionID, "Which regime is better?")
	assert.NoError(t, err)
	_, err = advisor.Ask(sessionID, "And what about 80C?")
	assert.NoError(t, err)

	session, ok := advisor.getSession(sessionID)
	assert.True(t, ok)
	assert.Len(t, session.Messages, 4) // two user turns, two answers
	assert.Equal(t, "user", session.Messages[0].Role)
	assert.Equal(t, "assistant", session.Messages[1].Role)
}

func TestConversationHistoryTruncates(t *testing.T) {
	messages := make([]ChatMessage, 0, 14)
	for i := 0; i < 14; i++ {
		role := "user"
		if i%2 == 1 {
			role = "assistant"
		}
		messages = append(messages, ChatMessage{Role: role, Content: "turn"})
	}

	history := conversationHistory(messages)

	assert.Equal(t, historyLimit, len(splitLines(history)))
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}
