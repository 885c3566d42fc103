package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tvnguyen/famledger/backend/internal/budget"
	"github.com/tvnguyen/famledger/backend/internal/model"
	"github.com/tvnguyen/famledger/backend/internal/store"
)

// BudgetService owns family-level budget lifecycle and the derived views
// built on top of it. All spend state is recomputed from transactions on
// every read; the store only ever holds the allocation rows.
type BudgetService struct {
	store store.Store
	audit auditLogger
	now   func() time.Time
}

func NewBudgetService(st store.Store) *BudgetService {
	return &BudgetService{
		store: st,
		audit: auditLogger{store: st},
		now:   time.Now,
	}
}

// requireMember resolves the caller's membership in the family. A caller
// that is not a member of the family gets PERMISSION_DENIED, not NOT_FOUND,
// so membership cannot be probed.
func (s *BudgetService) requireMember(ctx context.Context, familyID, userID string) (*model.FamilyMember, error) {
	if userID == "" {
		return nil, errUnauthenticated("no authenticated user")
	}
	member, err := s.store.GetFamilyMember(ctx, familyID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, errPermissionDenied("user %s is not a member of family %s", userID, familyID)
		}
		return nil, errInternal("failed to resolve family membership", err)
	}
	return member, nil
}

// requireManager is requireMember plus the owner/admin role check that
// gates every family-budget mutation.
func (s *BudgetService) requireManager(ctx context.Context, familyID, userID string) (*model.FamilyMember, error) {
	member, err := s.requireMember(ctx, familyID, userID)
	if err != nil {
		return nil, err
	}
	if !member.Role.CanManageBudgets() {
		return nil, errPermissionDenied("user %s has role %s, needs owner or admin", userID, member.Role)
	}
	return member, nil
}

// getFamilyBudget fetches a budget and verifies it belongs to the family
// the caller addressed. A budget from another family is a mismatch, not a
// missing record.
func (s *BudgetService) getFamilyBudget(ctx context.Context, familyID, budgetID string) (*model.Budget, error) {
	b, err := s.store.GetBudget(ctx, budgetID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, errNotFound("budget %s not found", budgetID)
		}
		return nil, errInternal("failed to get budget", err)
	}
	if b.FamilyID != familyID {
		return nil, errFamilyMismatch(budgetID, familyID)
	}
	return b, nil
}

func validateAllocations(allocations []model.MemberAllocation) error {
	for _, a := range allocations {
		if a.AllocatedAmount < 0 {
			return errInvalidArgument("member allocation for %s must not be negative", a.UserID)
		}
	}
	return nil
}

// CreateBudgetInput carries the caller-supplied fields for a new family
// budget. Spend and remaining amounts have no input fields on purpose.
type CreateBudgetInput struct {
	Name              string
	Category          string
	CategoryID        string
	AllocatedAmount   float64
	Currency          string
	Period            model.Period
	StartDate         time.Time
	EndDate           *time.Time
	ResetDay          int
	AlertThreshold    float64
	AlertEnabled      *bool
	MemberAllocations []model.MemberAllocation
}

// CreateBudget creates a family budget. Requires owner or admin.
func (s *BudgetService) CreateBudget(ctx context.Context, familyID, actorID string, in CreateBudgetInput) (*model.Budget, error) {
	if _, err := s.requireManager(ctx, familyID, actorID); err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, errInvalidArgument("budget name is required")
	}
	if in.AllocatedAmount < 0 {
		return nil, errInvalidArgument("allocated amount must not be negative")
	}
	if in.ResetDay < 0 || in.ResetDay > 31 {
		return nil, errInvalidArgument("reset day must be between 1 and 31")
	}
	if err := validateAllocations(in.MemberAllocations); err != nil {
		return nil, err
	}

	now := s.now()
	b := &model.Budget{
		ID:                uuid.New().String(),
		FamilyID:          familyID,
		Name:              in.Name,
		Category:          in.Category,
		CategoryID:        in.CategoryID,
		AllocatedAmount:   in.AllocatedAmount,
		Currency:          in.Currency,
		Period:            in.Period,
		StartDate:         in.StartDate,
		EndDate:           in.EndDate,
		ResetDay:          in.ResetDay,
		AlertThreshold:    in.AlertThreshold,
		AlertEnabled:      true,
		MemberAllocations: in.MemberAllocations,
		IsActive:          true,
		CreatedBy:         actorID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if b.Period == "" {
		b.Period = model.PeriodMonthly
	}
	if b.StartDate.IsZero() {
		b.StartDate = now
	}
	if b.AlertThreshold == 0 {
		b.AlertThreshold = model.DefaultAlertThreshold
	}
	if in.AlertEnabled != nil {
		b.AlertEnabled = *in.AlertEnabled
	}
	if b.Currency == "" {
		if family, err := s.store.GetFamily(ctx, familyID); err == nil && family.Currency != "" {
			b.Currency = family.Currency
		} else {
			b.Currency = "VND"
		}
	}

	if err := s.store.CreateBudget(ctx, b); err != nil {
		return nil, errInternal("failed to create budget", err)
	}
	s.audit.record(ctx, familyID, actorID, "budget.create", map[string]string{
		"budgetId": b.ID,
		"name":     b.Name,
		"amount":   fmt.Sprintf("%.0f", b.AllocatedAmount),
	})
	return b, nil
}

// UpdateBudgetInput carries the mutable budget fields. Nil pointers mean
// "leave unchanged".
type UpdateBudgetInput struct {
	Name              *string
	Category          *string
	CategoryID        *string
	AllocatedAmount   *float64
	Currency          *string
	Period            *model.Period
	StartDate         *time.Time
	EndDate           *time.Time
	ResetDay          *int
	AlertThreshold    *float64
	AlertEnabled      *bool
	MemberAllocations []model.MemberAllocation
	IsActive          *bool
}

// UpdateBudget applies a partial update to a family budget. Requires owner
// or admin, and the budget must not be locked: the lock check happens
// before any write, so a locked budget is never partially updated.
func (s *BudgetService) UpdateBudget(ctx context.Context, familyID, budgetID, actorID string, in UpdateBudgetInput) (*model.Budget, error) {
	if _, err := s.requireManager(ctx, familyID, actorID); err != nil {
		return nil, err
	}
	b, err := s.getFamilyBudget(ctx, familyID, budgetID)
	if err != nil {
		return nil, err
	}
	if b.IsLocked {
		return nil, errBudgetLocked(budgetID)
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, errInvalidArgument("budget name must not be empty")
		}
		b.Name = *in.Name
	}
	if in.Category != nil {
		b.Category = *in.Category
	}
	if in.CategoryID != nil {
		b.CategoryID = *in.CategoryID
	}
	if in.AllocatedAmount != nil {
		if *in.AllocatedAmount < 0 {
			return nil, errInvalidArgument("allocated amount must not be negative")
		}
		b.AllocatedAmount = *in.AllocatedAmount
	}
	if in.Currency != nil {
		b.Currency = *in.Currency
	}
	if in.Period != nil {
		b.Period = *in.Period
	}
	if in.StartDate != nil {
		b.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		b.EndDate = in.EndDate
	}
	if in.ResetDay != nil {
		if *in.ResetDay < 0 || *in.ResetDay > 31 {
			return nil, errInvalidArgument("reset day must be between 1 and 31")
		}
		b.ResetDay = *in.ResetDay
	}
	if in.AlertThreshold != nil {
		b.AlertThreshold = *in.AlertThreshold
	}
	if in.AlertEnabled != nil {
		b.AlertEnabled = *in.AlertEnabled
	}
	if in.MemberAllocations != nil {
		if err := validateAllocations(in.MemberAllocations); err != nil {
			return nil, err
		}
		b.MemberAllocations = in.MemberAllocations
	}
	if in.IsActive != nil {
		b.IsActive = *in.IsActive
	}
	b.UpdatedAt = s.now()
	b.UpdatedBy = actorID

	if err := s.store.UpdateBudget(ctx, b); err != nil {
		return nil, errInternal("failed to update budget", err)
	}
	s.audit.record(ctx, familyID, actorID, "budget.update", map[string]string{
		"budgetId": b.ID,
	})
	return b, nil
}

// SetBudgetLock locks or unlocks a budget. Unlike UpdateBudget this is
// allowed on a locked budget, otherwise a lock could never be released.
func (s *BudgetService) SetBudgetLock(ctx context.Context, familyID, budgetID, actorID string, locked bool) (*model.Budget, error) {
	if _, err := s.requireManager(ctx, familyID, actorID); err != nil {
		return nil, err
	}
	b, err := s.getFamilyBudget(ctx, familyID, budgetID)
	if err != nil {
		return nil, err
	}

	b.IsLocked = locked
	b.UpdatedAt = s.now()
	b.UpdatedBy = actorID
	if err := s.store.UpdateBudget(ctx, b); err != nil {
		return nil, errInternal("failed to update budget lock", err)
	}

	action := "budget.lock"
	if !locked {
		action = "budget.unlock"
	}
	s.audit.record(ctx, familyID, actorID, action, map[string]string{
		"budgetId": b.ID,
	})
	return b, nil
}

// DeleteBudget removes a budget allocation. Only the allocation row is
// deleted; the transactions that were counted against it are untouched.
// Locked budgets can be deleted without unlocking first.
func (s *BudgetService) DeleteBudget(ctx context.Context, familyID, budgetID, actorID string) error {
	if _, err := s.requireManager(ctx, familyID, actorID); err != nil {
		return err
	}
	b, err := s.getFamilyBudget(ctx, familyID, budgetID)
	if err != nil {
		return err
	}

	if err := s.store.DeleteBudget(ctx, budgetID); err != nil {
		return errInternal("failed to delete budget", err)
	}
	s.audit.record(ctx, familyID, actorID, "budget.delete", map[string]string{
		"budgetId": b.ID,
		"name":     b.Name,
	})
	return nil
}

// GetFamilyBudgets lists a family's budgets with derived spend state. All
// transactions needed by the page are fetched once, spanning the widest
// period window across the listed budgets.
func (s *BudgetService) GetFamilyBudgets(ctx context.Context, familyID, userID string, opts store.ListBudgetsOptions) ([]budget.BudgetDetail, string, error) {
	if _, err := s.requireMember(ctx, familyID, userID); err != nil {
		return nil, "", err
	}

	budgets, nextToken, err := s.store.ListBudgets(ctx, familyID, opts)
	if err != nil {
		return nil, "", errInternal("failed to list budgets", err)
	}
	if len(budgets) == 0 {
		return []budget.BudgetDetail{}, nextToken, nil
	}

	asOf := s.now()
	txs, err := s.fetchTransactionsFor(ctx, familyID, budgets, asOf)
	if err != nil {
		return nil, "", err
	}

	details := make([]budget.BudgetDetail, 0, len(budgets))
	for _, b := range budgets {
		details = append(details, budget.EvaluateBudget(b, txs, asOf))
	}
	return details, nextToken, nil
}

// GetBudgetDetail returns one budget with derived spend state.
func (s *BudgetService) GetBudgetDetail(ctx context.Context, familyID, budgetID, userID string) (*budget.BudgetDetail, error) {
	if _, err := s.requireMember(ctx, familyID, userID); err != nil {
		return nil, err
	}
	b, err := s.getFamilyBudget(ctx, familyID, budgetID)
	if err != nil {
		return nil, err
	}

	asOf := s.now()
	start, end := budget.PeriodRange(b, asOf)
	txs, err := s.store.ListTransactions(ctx, familyID, "", start, end)
	if err != nil {
		return nil, errInternal("failed to list transactions", err)
	}
	detail := budget.EvaluateBudget(b, txs, asOf)
	return &detail, nil
}

// fetchTransactionsFor loads the family's transactions in one store call,
// covering the union of the budgets' period windows.
func (s *BudgetService) fetchTransactionsFor(ctx context.Context, familyID string, budgets []*model.Budget, asOf time.Time) ([]*model.Transaction, error) {
	var start, end time.Time
	for i, b := range budgets {
		bStart, bEnd := budget.PeriodRange(b, asOf)
		if i == 0 || bStart.Before(start) {
			start = bStart
		}
		if i == 0 || bEnd.After(end) {
			end = bEnd
		}
	}
	txs, err := s.store.ListTransactions(ctx, familyID, "", start, end)
	if err != nil {
		return nil, errInternal("failed to list transactions", err)
	}
	return txs, nil
}
