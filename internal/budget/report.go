package budget

import (
	"fmt"
	"time"

	"github.com/tvnguyen/famledger/backend/internal/model"
)

// BudgetDetail is a budget together with its derived spend state. It is a
// view object, recomputed on every request and never persisted.
type BudgetDetail struct {
	Budget *model.Budget `json:"budget"`
	Status
}

// MemberSpendingLimit is the derived monthly view of one member's limit,
// including their heaviest spending categories for the month.
type MemberSpendingLimit struct {
	UserID      string `json:"userId"`
	MemberName  string `json:"memberName"`
	LimitStatus
	NotificationThreshold float64         `json:"notificationThreshold"`
	TopCategories         []CategorySpend `json:"topCategories,omitempty"`
}

// AlertSeverity ranks how urgently an alert needs attention.
type AlertSeverity string

const (
	SeverityHigh   AlertSeverity = "high"
	SeverityMedium AlertSeverity = "medium"
)

// AlertKind identifies what an alert is about.
type AlertKind string

const (
	AlertMemberLimit AlertKind = "member_limit"
	AlertBudget      AlertKind = "budget"
)

// Alert is a generated, non-persisted warning surfaced in a report. It
// carries the affected user or budget id so consumers can link back to it.
type Alert struct {
	Kind     AlertKind     `json:"kind"`
	Severity AlertSeverity `json:"severity"`
	UserID   string        `json:"userId,omitempty"`
	BudgetID string        `json:"budgetId,omitempty"`
	Message  string        `json:"message"`
}

// Report is the consolidated budget report for a family and period.
type Report struct {
	FamilyID    string    `json:"familyId"`
	GeneratedAt time.Time `json:"generatedAt"`

	// TotalRemaining is the sum of each budget's clamped remainder, not
	// TotalAllocated - TotalSpent. The two diverge when any single budget
	// is overspent while others are under; that is the contract.
	TotalAllocated float64 `json:"totalAllocated"`
	TotalSpent     float64 `json:"totalSpent"`
	TotalRemaining float64 `json:"totalRemaining"`

	Budgets []BudgetDetail        `json:"budgets"`
	Members []MemberSpendingLimit `json:"members"`
	Alerts  []Alert               `json:"alerts"`
}

// memberTopCategories caps the per-member category ranking in a report.
const memberTopCategories = 5

// EvaluateBudget derives one budget's detail view from a transaction set.
// The set may span more than the budget's window; filtering happens here.
func EvaluateBudget(b *model.Budget, txs []*model.Transaction, asOf time.Time) BudgetDetail {
	start, end := PeriodRange(b, asOf)
	spent := SpentForBudget(txs, b, start, end)
	return BudgetDetail{
		Budget: b,
		Status: Evaluate(b.AllocatedAmount, spent),
	}
}

// EvaluateMember derives one member's monthly limit view from their
// transactions for the current month.
func EvaluateMember(m *model.FamilyMember, monthTxs []*model.Transaction) MemberSpendingLimit {
	spent := SumExpenses(monthTxs)
	threshold := float64(model.DefaultAlertThreshold)
	var limit float64
	if m.SpendingLimit != nil {
		limit = m.SpendingLimit.Amount
		if m.SpendingLimit.NotificationThreshold > 0 {
			threshold = m.SpendingLimit.NotificationThreshold
		}
	}
	return MemberSpendingLimit{
		UserID:                m.UserID,
		MemberName:            m.DisplayName,
		LimitStatus:           EvaluateLimit(limit, spent),
		NotificationThreshold: threshold,
		TopCategories:         TopCategories(monthTxs, memberTopCategories),
	}
}

// BuildReport composes the consolidated report for a family from a single
// transaction fetch. Budgets are evaluated against their own period windows,
// members against the calendar month containing asOf.
//
// Alert order is deterministic: members first, then budgets, each in input
// order.
func BuildReport(familyID, currency string, budgets []*model.Budget, members []*model.FamilyMember, txs []*model.Transaction, asOf time.Time) *Report {
	report := &Report{
		FamilyID:    familyID,
		GeneratedAt: asOf,
	}

	monthStart, monthEnd := MonthRange(asOf)
	byUser := GroupByUser(txs)

	for _, b := range budgets {
		detail := EvaluateBudget(b, txs, asOf)
		report.Budgets = append(report.Budgets, detail)
		report.TotalAllocated += detail.AllocatedAmount
		report.TotalSpent += detail.SpentAmount
		report.TotalRemaining += detail.RemainingAmount
	}

	for _, m := range members {
		if m.SpendingLimit == nil {
			continue
		}
		monthTxs := InPeriod(byUser[m.UserID], monthStart, monthEnd)
		report.Members = append(report.Members, EvaluateMember(m, monthTxs))
	}

	report.Alerts = buildAlerts(report.Members, report.Budgets, currency)
	return report
}

// buildAlerts generates the alert list: over-limit and near-limit members
// first, then critical and warning budgets.
func buildAlerts(members []MemberSpendingLimit, budgets []BudgetDetail, currency string) []Alert {
	var alerts []Alert

	for _, m := range members {
		switch {
		case m.OverLimit:
			alerts = append(alerts, Alert{
				Kind:     AlertMemberLimit,
				Severity: SeverityHigh,
				UserID:   m.UserID,
				Message: fmt.Sprintf("%s has spent %s, exceeding the monthly limit of %s",
					memberLabel(m), FormatAmount(m.CurrentMonthSpent, currency), FormatAmount(m.Limit, currency)),
			})
		case m.Limit > 0 && m.RawPercentageUsed >= m.NotificationThreshold:
			alerts = append(alerts, Alert{
				Kind:     AlertMemberLimit,
				Severity: SeverityMedium,
				UserID:   m.UserID,
				Message: fmt.Sprintf("%s has spent %s of the %s monthly limit (%.0f%%)",
					memberLabel(m), FormatAmount(m.CurrentMonthSpent, currency), FormatAmount(m.Limit, currency), m.RawPercentageUsed),
			})
		}
	}

	for _, d := range budgets {
		if !d.Budget.AlertEnabled {
			continue
		}
		switch d.Tier {
		case TierCritical:
			alerts = append(alerts, Alert{
				Kind:     AlertBudget,
				Severity: SeverityHigh,
				BudgetID: d.Budget.ID,
				Message: fmt.Sprintf("Budget %q has used %s of %s (%.0f%%)",
					d.Budget.Name, FormatAmount(d.SpentAmount, currency), FormatAmount(d.AllocatedAmount, currency), d.RawPercentageUsed),
			})
		case TierWarning:
			alerts = append(alerts, Alert{
				Kind:     AlertBudget,
				Severity: SeverityMedium,
				BudgetID: d.Budget.ID,
				Message: fmt.Sprintf("Budget %q is at %.0f%% of its %s allocation",
					d.Budget.Name, d.RawPercentageUsed, FormatAmount(d.AllocatedAmount, currency)),
			})
		}
	}

	return alerts
}

func memberLabel(m MemberSpendingLimit) string {
	if m.MemberName != "" {
		return m.MemberName
	}
	return m.UserID
}
