package model

import "time"

// Period is the accounting window a budget allocation covers.
type Period string

const (
	PeriodMonthly   Period = "monthly"
	PeriodQuarterly Period = "quarterly"
	PeriodYearly    Period = "yearly"
)

// DefaultAlertThreshold is the percentage-used level at which alerts fire
// when a budget or member does not configure its own threshold.
const DefaultAlertThreshold = 80

// MemberAllocation is an optional split of a family budget across members.
// It is descriptive data carried on the budget, not independently statused.
type MemberAllocation struct {
	UserID          string  `json:"userId"`
	MemberName      string  `json:"memberName"`
	AllocatedAmount float64 `json:"allocatedAmount"`
}

// Budget is a family-level spend allocation for one category.
//
// Spend and remaining amounts are intentionally absent: they are derived from
// transactions on every read and are never persisted, so a stale stored copy
// can never shadow the transaction history.
type Budget struct {
	ID              string  `json:"id"`
	FamilyID        string  `json:"familyId"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	CategoryID      string  `json:"categoryId,omitempty"`
	AllocatedAmount float64 `json:"allocatedAmount"`
	Currency        string  `json:"currency"`
	Period          Period  `json:"period"`

	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	// ResetDay is the day of month a monthly budget window starts on.
	// Zero means the 1st.
	ResetDay int `json:"resetDay,omitempty"`

	AlertThreshold    float64            `json:"alertThreshold"`
	AlertEnabled      bool               `json:"alertEnabled"`
	MemberAllocations []MemberAllocation `json:"memberAllocations,omitempty"`

	IsActive bool `json:"isActive"`
	IsLocked bool `json:"isLocked"`

	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	UpdatedBy string    `json:"updatedBy,omitempty"`
}

// EffectiveAlertThreshold returns the configured alert threshold, falling
// back to the default when unset.
func (b *Budget) EffectiveAlertThreshold() float64 {
	if b.AlertThreshold > 0 {
		return b.AlertThreshold
	}
	return DefaultAlertThreshold
}

// PersonalBudget is a per-member allocation for one category, scoped to a
// single accounting period. A new period requires a new record; rollover is a
// caller responsibility.
type PersonalBudget struct {
	ID              string  `json:"id"`
	FamilyID        string  `json:"familyId"`
	UserID          string  `json:"userId"`
	Category        string  `json:"category"`
	CategoryID      string  `json:"categoryId,omitempty"`
	AllocatedAmount float64 `json:"allocatedAmount"`
	Period          Period  `json:"period"`
	Year            int     `json:"year"`
	Month           int     `json:"month"`
	IsActive        bool    `json:"isActive"`

	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
