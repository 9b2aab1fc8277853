package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/mpatel-dev/wanderplan/backend/internal/domain"
	"github.com/mpatel-dev/wanderplan/backend/internal/planner"
	"github.com/mpatel-dev/wanderplan/backend/internal/repo"
)

// adviceExpenseLimit caps how many recent expenses are sent to the provider.
const adviceExpenseLimit = 20

// Advice is the AI-generated budgeting summary for a user's recent expenses.
type Advice struct {
	HighestCategory string `json:"highestCategory"`
	Suggestion      string `json:"suggestion"`
	Summary         string `json:"summary"`
}

// AdviceService produces spending advice from a user's recent expenses.
// Provider failures degrade to fixed advice text — advice is a best-effort
// feature and never returns an error for upstream reasons.
type AdviceService struct {
	expenses repo.ExpenseRepo
	provider planner.Provider
	timeout  time.Duration
	log      *slog.Logger
}

// NewAdviceService constructs an AdviceService. timeout bounds the provider
// call; pass 0 to use the 30 second default.
func NewAdviceService(expenses repo.ExpenseRepo, provider planner.Provider, timeout time.Duration, log *slog.Logger) *AdviceService {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &AdviceService{expenses: expenses, provider: provider, timeout: timeout, log: log}
}

// ForOwner returns advice for the caller's recent expenses. The highest
// category is always computed locally; only the suggestion text depends on
// the provider, so a missing key or failed call degrades rather than errors.
func (s *AdviceService) ForOwner(ctx context.Context, ownerID string) (Advice, error) {
	recent, err := s.expenses.ListRecent(ctx, ownerID, adviceExpenseLimit)
	if err != nil {
		return Advice{}, fmt.Errorf("service.AdviceService.ForOwner: %w", err)
	}

	highest := "N/A"
	if len(recent) > 0 {
		top := lo.MaxBy(recent, func(a, b domain.Expense) bool { return a.Amount > b.Amount })
		highest = top.Category
	}
	summary := fmt.Sprintf("Your highest category is %s.", highest)

	if !s.provider.IsAvailable() {
		return Advice{
			HighestCategory: highest,
			Suggestion:      "AI advice is not configured. Consider reducing variable expenses to save monthly.",
			Summary:         summary,
		}, nil
	}

	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.provider.Complete(cctx, buildAdvicePrompt(recent), planner.CompletionOptions{
		Temperature: 0.5,
		MaxTokens:   300,
	})
	if err != nil || strings.TrimSpace(text) == "" {
		s.log.Warn("advice generation failed, degrading", "error", err)
		return Advice{
			HighestCategory: highest,
			Suggestion:      "AI advice is temporarily unavailable. Consider reducing variable expenses to save monthly.",
			Summary:         summary,
		}, nil
	}

	return Advice{
		HighestCategory: highest,
		Suggestion:      strings.TrimSpace(text),
		Summary:         summary,
	}, nil
}

// buildAdvicePrompt lists the recent expenses for the provider, one per line.
func buildAdvicePrompt(expenses []domain.Expense) string {
	var b strings.Builder
	b.WriteString("You are a concise spending assistant. Given recent expenses, return:\n")
	b.WriteString("- Highest spending category\n")
	b.WriteString("- One savings suggestion with an estimated amount\n")
	b.WriteString("- A short spending pattern summary\n\nExpenses:\n")
	for _, e := range expenses {
		fmt.Fprintf(&b, "Category: %s, Amount: %.2f, Date: %s, Description: %s\n",
			e.Category, e.Amount, e.Date.Format(domain.DateLayout), e.Description)
	}
	return b.String()
}
