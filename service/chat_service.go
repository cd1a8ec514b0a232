package service

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/Aashish23092/tax-advisor/client"
	"github.com/Aashish23092/tax-advisor/dto"
)

const historyLimit = 10

// ChatMessage is one turn in a chat session.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ChatSession holds the tax context and conversation history for one user's
// post-calculation Q&A.
type ChatSession struct {
	Slip      dto.SalarySlipData
	Profile   dto.UserTaxProfile
	Result    dto.TaxComparisonResult
	Messages  []ChatMessage
	CreatedAt time.Time
}

// ChatAdvisor answers follow-up questions about a completed calculation.
// Sessions live in an expiring in-memory cache keyed by uuid.
type ChatAdvisor struct {
	gemini   *client.GeminiClient
	sessions *cache.Cache
}

func NewChatAdvisor(gemini *client.GeminiClient, sessionTTL time.Duration) *ChatAdvisor {
	return &ChatAdvisor{
		gemini:   gemini,
		sessions: cache.New(sessionTTL, 2*sessionTTL),
	}
}

// CreateSession registers a new chat session around a calculation and
// returns its id.
func (c *ChatAdvisor) CreateSession(slip dto.SalarySlipData, profile dto.UserTaxProfile, result dto.TaxComparisonResult) string {
	sessionID := uuid.NewString()
	c.sessions.SetDefault(sessionID, &ChatSession{
		Slip:      slip,
		Profile:   profile,
		Result:    result,
		CreatedAt: time.Now(),
	})
	return sessionID
}

func (c *ChatAdvisor) getSession(sessionID string) (*ChatSession, bool) {
	v, ok := c.sessions.Get(sessionID)
	if !ok {
		return nil, false
	}
	session, ok := v.(*ChatSession)
	return session, ok
}

// Ask answers one user question within a session. When the model is absent
// or fails, a rule-based answer derived from the session's numbers is
// returned instead; the session itself never errors away mid-conversation.
func (c *ChatAdvisor) Ask(sessionID, question string) (dto.ChatResponse, error) {
	session, ok := c.getSession(sessionID)
	if !ok {
		return dto.ChatResponse{}, dto.ErrSessionNotFound
	}

	session.Messages = append(session.Messages, ChatMessage{Role: "user", Content: question})

	reply, aiGenerated := c.answer(session, question)

	session.Messages = append(session.Messages, ChatMessage{Role: "assistant", Content: reply})
	// Refresh the TTL so an active conversation does not expire mid-way.
	c.sessions.SetDefault(sessionID, session)

	return dto.ChatResponse{
		SessionID:   sessionID,
		Reply:       reply,
		AIGenerated: aiGenerated,
		Suggested:   suggestedQuestions,
	}, nil
}

func (c *ChatAdvisor) answer(session *ChatSession, question string) (string, bool) {
	if c.gemini == nil {
		return ruleBasedAnswer(session, question), false
	}

	prompt := fmt.Sprintf(`%s

USER'S TAX DATA:
%s

CONVERSATION HISTORY:
%s

CURRENT QUESTION: %s

Respond ONLY with valid JSON. No markdown code blocks.`,
		chatSystemPrompt,
		buildTaxContext(session.Slip, session.Profile, session.Result),
		conversationHistory(session.Messages),
		question)

	responseText, err := c.gemini.GenerateContent(prompt)
	if err != nil {
		log.Printf("Chat generation failed, using fallback: %v", err)
		return ruleBasedAnswer(session, question), false
	}

	var parsed struct {
		Answer string `json:"answer"`
	}
	if err := json.Unmarshal([]byte(stripCodeFences(responseText)), &parsed); err != nil || parsed.Answer == "" {
		log.Printf("Failed to parse chat response, using fallback: %v", err)
		return ruleBasedAnswer(session, question), false
	}

	return parsed.Answer, true
}

const chatSystemPrompt = `You are an expert Indian Tax Advisor AI assistant. The user has just completed
their tax calculation and wants to ask follow-up questions.

RULES:
1. Only discuss legal tax-saving methods under the Indian Income Tax Act
2. Use the user's actual tax data from the context for personalized answers
3. When answering hypotheticals, show BEFORE and AFTER figures
4. Be transparent about assumptions; if uncertain, suggest consulting a CA
5. Keep responses concise but informative

Structure your response as JSON: {"answer": "your response to the question"}`

var suggestedQuestions = []string{
	"What are the best 80C investment options?",
	"Should I choose the old or new tax regime?",
	"How can I maximize my HRA exemption?",
}

func conversationHistory(messages []ChatMessage) string {
	start := 0
	if len(messages) > historyLimit {
		start = len(messages) - historyLimit
	}

	var lines []string
	for _, msg := range messages[start:] {
		label := "Tax Advisor"
		if msg.Role == "user" {
			label = "User"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", label, msg.Content))
	}
	return strings.Join(lines, "\n")
}

// ruleBasedAnswer picks a canned topic answer from the session's numbers.
func ruleBasedAnswer(session *ChatSession, question string) string {
	q := strings.ToLower(question)

	switch {
	case containsAny(q, "80c", "ppf", "elss", "lic"):
		remaining := 150000 - session.Profile.Section80C
		if remaining <= 0 {
			return "You have already maximized your Section 80C limit of Rs 1,50,000. " +
				"Consider NPS under Section 80CCD(1B) for an additional Rs 50,000 deduction."
		}
		return fmt.Sprintf("You have invested Rs %.0f under Section 80C and can invest Rs %.0f more "+
			"to reach the Rs 1,50,000 limit. Popular options: PPF, ELSS mutual funds, "+
			"life insurance premiums and 5-year tax saver FDs.",
			session.Profile.Section80C, remaining)

	case containsAny(q, "80d", "health", "insurance", "medical"):
		max80D := 25000.0
		if session.Profile.IsSeniorCitizen {
			max80D = 50000.0
		}
		return fmt.Sprintf("You have claimed Rs %.0f under Section 80D against a limit of Rs %.0f. "+
			"Health insurance premiums for self and family qualify, and covering parents "+
			"allows an additional deduction.", session.Profile.Section80D, max80D)

	case containsAny(q, "hra", "rent"):
		if session.Profile.RentPaid <= 0 {
			return "You have not declared any rent, so no HRA exemption was applied. If you pay rent, " +
				"the exemption is the least of: actual HRA received, rent minus 10% of basic salary, " +
				"and 50% of basic (metro) or 40% (non-metro)."
		}
		return fmt.Sprintf("Your HRA exemption under the old regime works out to Rs %.0f, "+
			"based on HRA received, rent paid minus 10%% of basic, and your city category.",
			session.Result.OldRegime.HRAExemption)

	case containsAny(q, "regime", "old", "new", "better"):
		return fmt.Sprintf("For your income, the %s regime is recommended: old regime tax is Rs %.0f "+
			"and new regime tax is Rs %.0f, a difference of Rs %.0f.",
			strings.ToUpper(session.Result.RecommendedRegime),
			session.Result.OldRegime.TotalTax,
			session.Result.NewRegime.TotalTax,
			session.Result.SavingsAmount)

	case containsAny(q, "home loan", "housing loan", "24b", "24(b)"):
		return fmt.Sprintf("You have claimed Rs %.0f of home loan interest under Section 24(b); "+
			"the limit for self-occupied property is Rs 2,00,000. The principal component "+
			"qualifies separately under Section 80C.", session.Profile.Section24B)

	default:
		return fmt.Sprintf("Based on your calculation: gross salary Rs %.0f, recommended regime %s, "+
			"potential savings Rs %.0f. Ask about a specific section (80C, 80D, HRA, home loan) "+
			"for details, or consult a Chartered Accountant for complex situations.",
			session.Slip.GrossSalary,
			strings.ToUpper(session.Result.RecommendedRegime),
			session.Result.SavingsAmount)
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
