package service

import (
	"context"
	"time"

	"github.com/tvnguyen/famledger/backend/internal/budget"
	"github.com/tvnguyen/famledger/backend/internal/model"
	"github.com/tvnguyen/famledger/backend/internal/store"
)

// GetSpendingLimits returns the derived monthly limit view for every
// family member with a configured limit. Any family member may view them.
func (s *BudgetService) GetSpendingLimits(ctx context.Context, familyID, userID string) ([]budget.MemberSpendingLimit, error) {
	if _, err := s.requireMember(ctx, familyID, userID); err != nil {
		return nil, err
	}

	members, err := s.store.ListFamilyMembers(ctx, familyID)
	if err != nil {
		return nil, errInternal("failed to list family members", err)
	}

	asOf := s.now()
	monthStart, monthEnd := budget.MonthRange(asOf)
	txs, err := s.store.ListTransactions(ctx, familyID, "", monthStart, monthEnd)
	if err != nil {
		return nil, errInternal("failed to list transactions", err)
	}
	byUser := budget.GroupByUser(txs)

	limits := make([]budget.MemberSpendingLimit, 0, len(members))
	for _, m := range members {
		if m.SpendingLimit == nil {
			continue
		}
		limits = append(limits, budget.EvaluateMember(m, byUser[m.UserID]))
	}
	return limits, nil
}

// GenerateBudgetReport builds the consolidated report for a family: every
// active budget with derived state, every member limit, totals and alerts.
// Transactions are fetched once and shared across all evaluations.
func (s *BudgetService) GenerateBudgetReport(ctx context.Context, familyID, userID string) (*budget.Report, error) {
	if _, err := s.requireMember(ctx, familyID, userID); err != nil {
		return nil, err
	}

	budgets, _, err := s.store.ListBudgets(ctx, familyID, store.ListBudgetsOptions{})
	if err != nil {
		return nil, errInternal("failed to list budgets", err)
	}
	members, err := s.store.ListFamilyMembers(ctx, familyID)
	if err != nil {
		return nil, errInternal("failed to list family members", err)
	}

	asOf := s.now()
	txs, err := s.reportTransactions(ctx, familyID, budgets, asOf)
	if err != nil {
		return nil, err
	}

	currency := "VND"
	if family, err := s.store.GetFamily(ctx, familyID); err == nil && family.Currency != "" {
		currency = family.Currency
	}

	return budget.BuildReport(familyID, currency, budgets, members, txs, asOf), nil
}

// reportTransactions loads the family's transactions in one call, spanning
// the union of every budget's period window and the current month used for
// member limits.
func (s *BudgetService) reportTransactions(ctx context.Context, familyID string, budgets []*model.Budget, asOf time.Time) ([]*model.Transaction, error) {
	start, end := budget.MonthRange(asOf)
	for _, b := range budgets {
		bStart, bEnd := budget.PeriodRange(b, asOf)
		if bStart.Before(start) {
			start = bStart
		}
		if bEnd.After(end) {
			end = bEnd
		}
	}
	txs, err := s.store.ListTransactions(ctx, familyID, "", start, end)
	if err != nil {
		return nil, errInternal("failed to list transactions", err)
	}
	return txs, nil
}
