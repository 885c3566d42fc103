package budget

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tvnguyen/famledger/backend/internal/model"
)

func activeBudget(id, category string, allocated float64) *model.Budget {
	return &model.Budget{
		ID:              id,
		FamilyID:        "fam-1",
		Name:            category,
		Category:        category,
		AllocatedAmount: allocated,
		Period:          model.PeriodMonthly,
		AlertEnabled:    true,
		IsActive:        true,
	}
}

func memberWithLimit(userID, name string, limit float64) *model.FamilyMember {
	return &model.FamilyMember{
		ID:          "m-" + userID,
		FamilyID:    "fam-1",
		UserID:      userID,
		DisplayName: name,
		Role:        model.RoleMember,
		SpendingLimit: &model.SpendingLimit{
			Amount: limit,
		},
	}
}

func TestBuildReportTotals(t *testing.T) {
	asOf := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	budgets := []*model.Budget{
		activeBudget("b1", "Ăn uống", 1_000_000),
		activeBudget("b2", "Di chuyển", 500_000),
	}
	txs := []*model.Transaction{
		tx("u1", "Ăn uống", model.TransactionExpense, 1_200_000, asOf),
		tx("u1", "Di chuyển", model.TransactionExpense, 100_000, asOf),
	}

	r := BuildReport("fam-1", "VND", budgets, nil, txs, asOf)

	assert.Equal(t, 1_500_000.0, r.TotalAllocated)
	assert.Equal(t, 1_300_000.0, r.TotalSpent)
	// Per-budget clamped remainders: max(0, 1M-1.2M) + max(0, 500k-100k).
	// This intentionally diverges from TotalAllocated - TotalSpent.
	assert.Equal(t, 400_000.0, r.TotalRemaining)
	assert.NotEqual(t, r.TotalAllocated-r.TotalSpent, r.TotalRemaining)
}

func TestBuildReportAlertOrdering(t *testing.T) {
	asOf := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	budgets := []*model.Budget{
		activeBudget("b-critical", "Ăn uống", 1_000_000),
		activeBudget("b-warning", "Di chuyển", 1_000_000),
	}
	members := []*model.FamilyMember{
		memberWithLimit("u-over", "Minh", 2_000_000),
	}
	txs := []*model.Transaction{
		tx("u-over", "Ăn uống", model.TransactionExpense, 900_000, asOf),
		tx("u-over", "Mua sắm", model.TransactionExpense, 1_600_000, asOf),
		tx("u2", "Di chuyển", model.TransactionExpense, 550_000, asOf),
	}

	r := BuildReport("fam-1", "VND", budgets, members, txs, asOf)

	require.Len(t, r.Alerts, 3)
	// Members first, then budgets, each in input order.
	assert.Equal(t, AlertMemberLimit, r.Alerts[0].Kind)
	assert.Equal(t, SeverityHigh, r.Alerts[0].Severity)
	assert.Equal(t, "u-over", r.Alerts[0].UserID)
	assert.Equal(t, AlertBudget, r.Alerts[1].Kind)
	assert.Equal(t, SeverityHigh, r.Alerts[1].Severity)
	assert.Equal(t, "b-critical", r.Alerts[1].BudgetID)
	assert.Equal(t, AlertBudget, r.Alerts[2].Kind)
	assert.Equal(t, SeverityMedium, r.Alerts[2].Severity)
	assert.Equal(t, "b-warning", r.Alerts[2].BudgetID)
}

func TestBuildReportBudgetAlertsOnly(t *testing.T) {
	// One critical and one warning budget, no over-limit members: exactly
	// two budget alerts, high before medium, zero member alerts.
	asOf := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	budgets := []*model.Budget{
		activeBudget("b1", "Ăn uống", 1_000_000),
		activeBudget("b2", "Di chuyển", 1_000_000),
	}
	members := []*model.FamilyMember{
		memberWithLimit("u1", "Lan", 10_000_000),
	}
	txs := []*model.Transaction{
		tx("u1", "Ăn uống", model.TransactionExpense, 850_000, asOf),
		tx("u1", "Di chuyển", model.TransactionExpense, 600_000, asOf),
	}

	r := BuildReport("fam-1", "VND", budgets, members, txs, asOf)

	require.Len(t, r.Alerts, 2)
	assert.Equal(t, AlertBudget, r.Alerts[0].Kind)
	assert.Equal(t, SeverityHigh, r.Alerts[0].Severity)
	assert.Equal(t, AlertBudget, r.Alerts[1].Kind)
	assert.Equal(t, SeverityMedium, r.Alerts[1].Severity)
}

func TestBuildReportOverLimitMessageContainsBothAmounts(t *testing.T) {
	asOf := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	members := []*model.FamilyMember{
		memberWithLimit("u1", "Minh", 2_000_000),
	}
	txs := []*model.Transaction{
		tx("u1", "Mua sắm", model.TransactionExpense, 2_500_000, asOf),
	}

	r := BuildReport("fam-1", "VND", nil, members, txs, asOf)

	require.Len(t, r.Alerts, 1)
	alert := r.Alerts[0]
	assert.Equal(t, SeverityHigh, alert.Severity)
	assert.Contains(t, alert.Message, FormatAmount(2_500_000, "VND"))
	assert.Contains(t, alert.Message, FormatAmount(2_000_000, "VND"))

	require.Len(t, r.Members, 1)
	assert.True(t, r.Members[0].OverLimit)
	assert.Equal(t, 100.0, r.Members[0].PercentageUsed)
}

func TestBuildReportMemberThresholdAlert(t *testing.T) {
	asOf := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	m := memberWithLimit("u1", "Lan", 2_000_000)
	m.SpendingLimit.NotificationThreshold = 75
	txs := []*model.Transaction{
		tx("u1", "Ăn uống", model.TransactionExpense, 1_550_000, asOf),
	}

	r := BuildReport("fam-1", "VND", nil, []*model.FamilyMember{m}, txs, asOf)

	require.Len(t, r.Alerts, 1)
	assert.Equal(t, SeverityMedium, r.Alerts[0].Severity)
	assert.Equal(t, AlertMemberLimit, r.Alerts[0].Kind)
	assert.Equal(t, "u1", r.Alerts[0].UserID)
}

func TestBuildReportAlertDisabledBudgetSuppressed(t *testing.T) {
	asOf := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	b := activeBudget("b1", "Ăn uống", 1_000_000)
	b.AlertEnabled = false
	txs := []*model.Transaction{
		tx("u1", "Ăn uống", model.TransactionExpense, 990_000, asOf),
	}

	r := BuildReport("fam-1", "VND", []*model.Budget{b}, nil, txs, asOf)

	assert.Empty(t, r.Alerts)
	// The breakdown still reflects the true status.
	require.Len(t, r.Budgets, 1)
	assert.Equal(t, TierCritical, r.Budgets[0].Tier)
}

func TestBuildReportMemberTopCategories(t *testing.T) {
	asOf := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	members := []*model.FamilyMember{
		memberWithLimit("u1", "Minh", 10_000_000),
	}
	txs := []*model.Transaction{
		tx("u1", "Ăn uống", model.TransactionExpense, 500_000, asOf),
		tx("u1", "Di chuyển", model.TransactionExpense, 200_000, asOf),
		tx("u1", "Giải trí", model.TransactionExpense, 300_000, asOf),
		tx("u1", "Hóa đơn", model.TransactionExpense, 150_000, asOf),
		tx("u1", "Mua sắm", model.TransactionExpense, 100_000, asOf),
		tx("u1", "Giáo dục", model.TransactionExpense, 50_000, asOf),
		// Other member's spend never leaks into u1's ranking.
		tx("u2", "Ăn uống", model.TransactionExpense, 9_000_000, asOf),
	}

	r := BuildReport("fam-1", "VND", nil, members, txs, asOf)

	require.Len(t, r.Members, 1)
	top := r.Members[0].TopCategories
	require.Len(t, top, 5)
	assert.Equal(t, "Ăn uống", top[0].Category)
	assert.Equal(t, 500_000.0, top[0].Amount)
}

func TestBuildReportMembersWithoutLimitSkipped(t *testing.T) {
	asOf := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	noLimit := &model.FamilyMember{UserID: "u1", FamilyID: "fam-1", Role: model.RoleMember}

	r := BuildReport("fam-1", "VND", nil, []*model.FamilyMember{noLimit}, nil, asOf)

	assert.Empty(t, r.Members)
	assert.Empty(t, r.Alerts)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "2.500.000 VND", FormatAmount(2_500_000, "VND"))
	assert.Equal(t, "1.000.000 VND", FormatAmount(1_000_000, ""))
}
