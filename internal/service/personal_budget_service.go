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

// personalAccess enforces the personal-budget permission rule: a member may
// manage their own budgets, owners and admins may manage anyone's. The actor
// must already be a resolved member of the family.
func personalAccess(actor *model.FamilyMember, targetUserID string) error {
	if actor.UserID == targetUserID || actor.Role.CanManageBudgets() {
		return nil
	}
	return errPermissionDenied("user %s may not manage budgets for user %s", actor.UserID, targetUserID)
}

// getPersonalBudget fetches a personal budget and verifies family scope.
func (s *BudgetService) getPersonalBudget(ctx context.Context, familyID, budgetID string) (*model.PersonalBudget, error) {
	pb, err := s.store.GetPersonalBudget(ctx, budgetID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, errNotFound("personal budget %s not found", budgetID)
		}
		return nil, errInternal("failed to get personal budget", err)
	}
	if pb.FamilyID != familyID {
		return nil, errFamilyMismatch(budgetID, familyID)
	}
	return pb, nil
}

// CreatePersonalBudgetInput carries the caller-supplied fields for a new
// per-member budget.
type CreatePersonalBudgetInput struct {
	UserID          string
	Category        string
	CategoryID      string
	AllocatedAmount float64
	Period          model.Period
	Year            int
	Month           int
}

// CreatePersonalBudget creates a per-member budget for one period. The
// target member may create their own; owners and admins may create for
// anyone in the family.
func (s *BudgetService) CreatePersonalBudget(ctx context.Context, familyID, actorID string, in CreatePersonalBudgetInput) (*model.PersonalBudget, error) {
	actor, err := s.requireMember(ctx, familyID, actorID)
	if err != nil {
		return nil, err
	}
	if in.UserID == "" {
		return nil, errInvalidArgument("target user id is required")
	}
	if in.Category == "" && in.CategoryID == "" {
		return nil, errInvalidArgument("category or category id is required")
	}
	if in.AllocatedAmount < 0 {
		return nil, errInvalidArgument("allocated amount must not be negative")
	}
	// Year and month travel together: one without the other would silently
	// land the budget in the wrong period.
	if (in.Year == 0) != (in.Month == 0) {
		return nil, errInvalidArgument("year and month must be provided together")
	}
	if in.Month != 0 && (in.Month < 1 || in.Month > 12) {
		return nil, errInvalidArgument("month must be between 1 and 12")
	}
	if err := personalAccess(actor, in.UserID); err != nil {
		return nil, err
	}

	// The target must actually belong to the family; admins cannot create
	// budgets for arbitrary user ids.
	if _, err := s.store.GetFamilyMember(ctx, familyID, in.UserID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, errInvalidArgument("user %s is not a member of family %s", in.UserID, familyID)
		}
		return nil, errInternal("failed to resolve target membership", err)
	}

	now := s.now()
	pb := &model.PersonalBudget{
		ID:              uuid.New().String(),
		FamilyID:        familyID,
		UserID:          in.UserID,
		Category:        in.Category,
		CategoryID:      in.CategoryID,
		AllocatedAmount: in.AllocatedAmount,
		Period:          in.Period,
		Year:            in.Year,
		Month:           in.Month,
		IsActive:        true,
		CreatedBy:       actorID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if pb.Period == "" {
		pb.Period = model.PeriodMonthly
	}
	if pb.Year == 0 {
		pb.Year = now.Year()
		pb.Month = int(now.Month())
	}

	if err := s.store.CreatePersonalBudget(ctx, pb); err != nil {
		return nil, errInternal("failed to create personal budget", err)
	}
	s.audit.record(ctx, familyID, actorID, "personal_budget.create", map[string]string{
		"budgetId": pb.ID,
		"userId":   pb.UserID,
		"amount":   fmt.Sprintf("%.0f", pb.AllocatedAmount),
	})
	return pb, nil
}

// UpdatePersonalBudgetInput carries the mutable personal-budget fields.
// Nil pointers mean "leave unchanged".
type UpdatePersonalBudgetInput struct {
	Category        *string
	CategoryID      *string
	AllocatedAmount *float64
	IsActive        *bool
}

// UpdatePersonalBudget applies a partial update to a per-member budget.
// The caller is resolved before the budget is fetched, so an outsider is
// rejected without touching the budget collection.
func (s *BudgetService) UpdatePersonalBudget(ctx context.Context, familyID, budgetID, actorID string, in UpdatePersonalBudgetInput) (*model.PersonalBudget, error) {
	actor, err := s.requireMember(ctx, familyID, actorID)
	if err != nil {
		return nil, err
	}
	pb, err := s.getPersonalBudget(ctx, familyID, budgetID)
	if err != nil {
		return nil, err
	}
	if err := personalAccess(actor, pb.UserID); err != nil {
		return nil, err
	}

	if in.Category != nil {
		pb.Category = *in.Category
	}
	if in.CategoryID != nil {
		pb.CategoryID = *in.CategoryID
	}
	if in.AllocatedAmount != nil {
		if *in.AllocatedAmount < 0 {
			return nil, errInvalidArgument("allocated amount must not be negative")
		}
		pb.AllocatedAmount = *in.AllocatedAmount
	}
	if in.IsActive != nil {
		pb.IsActive = *in.IsActive
	}
	pb.UpdatedAt = s.now()

	if err := s.store.UpdatePersonalBudget(ctx, pb); err != nil {
		return nil, errInternal("failed to update personal budget", err)
	}
	s.audit.record(ctx, familyID, actorID, "personal_budget.update", map[string]string{
		"budgetId": pb.ID,
		"userId":   pb.UserID,
	})
	return pb, nil
}

// DeletePersonalBudget removes a per-member budget allocation.
func (s *BudgetService) DeletePersonalBudget(ctx context.Context, familyID, budgetID, actorID string) error {
	actor, err := s.requireMember(ctx, familyID, actorID)
	if err != nil {
		return err
	}
	pb, err := s.getPersonalBudget(ctx, familyID, budgetID)
	if err != nil {
		return err
	}
	if err := personalAccess(actor, pb.UserID); err != nil {
		return err
	}

	if err := s.store.DeletePersonalBudget(ctx, budgetID); err != nil {
		return errInternal("failed to delete personal budget", err)
	}
	s.audit.record(ctx, familyID, actorID, "personal_budget.delete", map[string]string{
		"budgetId": pb.ID,
		"userId":   pb.UserID,
	})
	return nil
}

// ListPersonalBudgets lists one member's budgets for a period. Year and
// month of zero mean the current month.
func (s *BudgetService) ListPersonalBudgets(ctx context.Context, familyID, actorID, targetUserID string, year, month int) ([]*model.PersonalBudget, error) {
	actor, err := s.requireMember(ctx, familyID, actorID)
	if err != nil {
		return nil, err
	}
	if err := personalAccess(actor, targetUserID); err != nil {
		return nil, err
	}
	if year == 0 {
		now := s.now()
		year = now.Year()
		month = int(now.Month())
	}
	budgets, err := s.store.ListPersonalBudgets(ctx, familyID, targetUserID, year, month)
	if err != nil {
		return nil, errInternal("failed to list personal budgets", err)
	}
	return budgets, nil
}

// personalBudgetWindow is the calendar month a personal budget covers.
func personalBudgetWindow(pb *model.PersonalBudget) (time.Time, time.Time) {
	start := time.Date(pb.Year, time.Month(pb.Month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// PersonalBudgetDetail is a personal budget with its derived spend state.
type PersonalBudgetDetail struct {
	PersonalBudget *model.PersonalBudget `json:"personalBudget"`
	budget.Status
}

func evaluatePersonalBudget(pb *model.PersonalBudget, txs []*model.Transaction, start, end time.Time) *PersonalBudgetDetail {
	scoped := &model.Budget{Category: pb.Category, CategoryID: pb.CategoryID}
	spent := budget.SpentForBudget(txs, scoped, start, end)
	return &PersonalBudgetDetail{
		PersonalBudget: pb,
		Status:         budget.Evaluate(pb.AllocatedAmount, spent),
	}
}

// GetPersonalBudgetDetail returns one personal budget with spend derived
// from the member's transactions in its month.
func (s *BudgetService) GetPersonalBudgetDetail(ctx context.Context, familyID, budgetID, actorID string) (*PersonalBudgetDetail, error) {
	actor, err := s.requireMember(ctx, familyID, actorID)
	if err != nil {
		return nil, err
	}
	pb, err := s.getPersonalBudget(ctx, familyID, budgetID)
	if err != nil {
		return nil, err
	}
	if err := personalAccess(actor, pb.UserID); err != nil {
		return nil, err
	}

	start, end := personalBudgetWindow(pb)
	txs, err := s.store.ListTransactions(ctx, familyID, pb.UserID, start, end)
	if err != nil {
		return nil, errInternal("failed to list transactions", err)
	}
	return evaluatePersonalBudget(pb, txs, start, end), nil
}
