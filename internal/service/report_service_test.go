package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tvnguyen/famledger/backend/internal/budget"
	"github.com/tvnguyen/famledger/backend/internal/model"
	"github.com/tvnguyen/famledger/backend/internal/store"
)

func seedReportFamily(t *testing.T, st *store.MemoryStore) {
	t.Helper()
	st.AddFamily(&model.Family{ID: "fam1", Name: "Nhà Trần", OwnerID: "owner1", Currency: "VND"})
	st.AddFamilyMember(memberWithRole("fam1", "owner1", model.RoleOwner))
	m := memberWithRole("fam1", "user1", model.RoleMember)
	m.DisplayName = "Minh"
	m.SpendingLimit = &model.SpendingLimit{Amount: 2_000_000, NotificationThreshold: 80}
	st.AddFamilyMember(m)
}

func TestGetSpendingLimitsOverLimit(t *testing.T) {
	st := store.NewMemoryStore()
	seedReportFamily(t, st)
	svc := NewBudgetService(st)
	ctx := context.Background()

	now := time.Now()
	st.AddTransaction(&model.Transaction{
		FamilyID: "fam1", UserID: "user1",
		Category: "Mua sắm", Type: model.TransactionExpense,
		Amount: 2_500_000, Date: now,
	})

	limits, err := svc.GetSpendingLimits(ctx, "fam1", "user1")
	require.NoError(t, err)
	require.Len(t, limits, 1, "members without a limit are not listed")

	l := limits[0]
	assert.Equal(t, "user1", l.UserID)
	assert.Equal(t, "Minh", l.MemberName)
	assert.True(t, l.OverLimit)
	assert.Equal(t, 100.0, l.PercentageUsed)
	assert.InDelta(t, 125.0, l.RawPercentageUsed, 0.001)
	assert.Equal(t, budget.TierCritical, l.Tier)
	assert.Equal(t, 0.0, l.RemainingAmount)
}

func TestGetSpendingLimitsExcludesOtherMonths(t *testing.T) {
	st := store.NewMemoryStore()
	seedReportFamily(t, st)
	svc := NewBudgetService(st)
	ctx := context.Background()

	st.AddTransaction(&model.Transaction{
		FamilyID: "fam1", UserID: "user1",
		Category: "Mua sắm", Type: model.TransactionExpense,
		Amount: 5_000_000, Date: time.Now().AddDate(0, -2, 0),
	})

	limits, err := svc.GetSpendingLimits(ctx, "fam1", "owner1")
	require.NoError(t, err)
	require.Len(t, limits, 1)
	assert.Equal(t, 0.0, limits[0].CurrentMonthSpent)
	assert.False(t, limits[0].OverLimit)
}

func TestGenerateBudgetReport(t *testing.T) {
	st := store.NewMemoryStore()
	seedReportFamily(t, st)
	svc := NewBudgetService(st)
	ctx := context.Background()

	now := time.Now()

	// One critical budget, one warning budget.
	critical, err := svc.CreateBudget(ctx, "fam1", "owner1", CreateBudgetInput{
		Name: "Ăn uống", Category: "Ăn uống", AllocatedAmount: 1_000_000,
	})
	require.NoError(t, err)
	warning, err := svc.CreateBudget(ctx, "fam1", "owner1", CreateBudgetInput{
		Name: "Hóa đơn", Category: "Hóa đơn", AllocatedAmount: 1_000_000,
	})
	require.NoError(t, err)

	st.AddTransaction(&model.Transaction{
		FamilyID: "fam1", UserID: "user1",
		Category: "Ăn uống", Type: model.TransactionExpense,
		Amount: 1_200_000, Date: now,
	})
	st.AddTransaction(&model.Transaction{
		FamilyID: "fam1", UserID: "user1",
		Category: "Hóa đơn", Type: model.TransactionExpense,
		Amount: 550_000, Date: now,
	})
	st.AddTransaction(&model.Transaction{
		FamilyID: "fam1", UserID: "user1",
		Category: "Mua sắm", Type: model.TransactionExpense,
		Amount: 750_000, Date: now,
	})

	report, err := svc.GenerateBudgetReport(ctx, "fam1", "user1")
	require.NoError(t, err)

	assert.Equal(t, "fam1", report.FamilyID)
	require.Len(t, report.Budgets, 2)

	// Totals: remaining is the sum of clamped per-budget remainders, so the
	// overspent budget contributes zero rather than a negative.
	assert.Equal(t, 2_000_000.0, report.TotalAllocated)
	assert.Equal(t, 1_750_000.0, report.TotalSpent)
	assert.Equal(t, 450_000.0, report.TotalRemaining)

	// Member spent 2.5M against a 2M limit: over-limit, high severity,
	// ranked before any budget alert.
	require.Len(t, report.Members, 1)
	assert.True(t, report.Members[0].OverLimit)

	require.Len(t, report.Alerts, 3)
	assert.Equal(t, budget.AlertMemberLimit, report.Alerts[0].Kind)
	assert.Equal(t, budget.SeverityHigh, report.Alerts[0].Severity)
	assert.Contains(t, report.Alerts[0].Message, "2.500.000 VND")
	assert.Contains(t, report.Alerts[0].Message, "2.000.000 VND")

	assert.Equal(t, budget.AlertBudget, report.Alerts[1].Kind)
	assert.Equal(t, budget.SeverityHigh, report.Alerts[1].Severity)
	assert.Equal(t, critical.ID, report.Alerts[1].BudgetID)

	assert.Equal(t, budget.AlertBudget, report.Alerts[2].Kind)
	assert.Equal(t, budget.SeverityMedium, report.Alerts[2].Severity)
	assert.Equal(t, warning.ID, report.Alerts[2].BudgetID)

	// Member top categories for the month, largest first, at most five.
	top := report.Members[0].TopCategories
	require.NotEmpty(t, top)
	assert.Equal(t, "Ăn uống", top[0].Category)
	assert.LessOrEqual(t, len(top), 5)
}

func TestGenerateBudgetReportIsIdempotent(t *testing.T) {
	st := store.NewMemoryStore()
	seedReportFamily(t, st)
	svc := NewBudgetService(st)
	ctx := context.Background()

	_, err := svc.CreateBudget(ctx, "fam1", "owner1", CreateBudgetInput{
		Name: "Ăn uống", Category: "Ăn uống", AllocatedAmount: 1_000_000,
	})
	require.NoError(t, err)
	st.AddTransaction(&model.Transaction{
		FamilyID: "fam1", UserID: "user1",
		Category: "Ăn uống", Type: model.TransactionExpense,
		Amount: 550_000, Date: time.Now(),
	})

	first, err := svc.GenerateBudgetReport(ctx, "fam1", "user1")
	require.NoError(t, err)
	second, err := svc.GenerateBudgetReport(ctx, "fam1", "user1")
	require.NoError(t, err)

	// Reading a report never mutates anything, so repeated generation
	// yields identical derived numbers.
	assert.Equal(t, first.TotalSpent, second.TotalSpent)
	assert.Equal(t, first.TotalRemaining, second.TotalRemaining)
	require.Len(t, second.Budgets, 1)
	assert.InDelta(t, 55.0, second.Budgets[0].PercentageUsed, 0.001)
}

func TestGenerateBudgetReportRequiresMembership(t *testing.T) {
	st := store.NewMemoryStore()
	seedReportFamily(t, st)
	svc := NewBudgetService(st)

	_, err := svc.GenerateBudgetReport(context.Background(), "fam1", "stranger")
	require.Error(t, err)
	assert.Equal(t, CodePermissionDenied, CodeOf(err))
}

func TestGenerateBudgetReportAlertDisabled(t *testing.T) {
	st := store.NewMemoryStore()
	seedReportFamily(t, st)
	svc := NewBudgetService(st)
	ctx := context.Background()

	disabled := false
	_, err := svc.CreateBudget(ctx, "fam1", "owner1", CreateBudgetInput{
		Name: "Ăn uống", Category: "Ăn uống", AllocatedAmount: 1_000_000,
		AlertEnabled: &disabled,
	})
	require.NoError(t, err)
	st.AddTransaction(&model.Transaction{
		FamilyID: "fam1", UserID: "owner1",
		Category: "Ăn uống", Type: model.TransactionExpense,
		Amount: 900_000, Date: time.Now(),
	})

	report, err := svc.GenerateBudgetReport(ctx, "fam1", "owner1")
	require.NoError(t, err)

	// The breakdown still shows critical; only the alert is suppressed.
	require.Len(t, report.Budgets, 1)
	assert.Equal(t, budget.TierCritical, report.Budgets[0].Tier)
	for _, a := range report.Alerts {
		assert.NotEqual(t, budget.AlertBudget, a.Kind)
	}
}
