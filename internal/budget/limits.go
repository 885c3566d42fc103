package budget

// LimitStatus is the derived state of a member's monthly spending limit.
// OverLimit and the tier are independent facts: a member is critical from 80%
// but only over limit past 100%, and both must be surfaced.
type LimitStatus struct {
	Limit             float64 `json:"limit"`
	CurrentMonthSpent float64 `json:"currentMonthSpent"`
	RemainingAmount   float64 `json:"remainingAmount"`
	PercentageUsed    float64 `json:"percentageUsed"`
	RawPercentageUsed float64 `json:"rawPercentageUsed"`
	Tier              Tier    `json:"status"`
	// OverLimit is strict: spent must exceed the limit, not merely reach it.
	OverLimit bool `json:"isOverLimit"`
}

// EvaluateLimit applies the budget status tiering to a per-member monthly
// limit and additionally derives the strict over-limit flag from the
// unclamped spend.
func EvaluateLimit(limit, spent float64) LimitStatus {
	s := Evaluate(limit, spent)
	return LimitStatus{
		Limit:             limit,
		CurrentMonthSpent: spent,
		RemainingAmount:   s.RemainingAmount,
		PercentageUsed:    s.PercentageUsed,
		RawPercentageUsed: s.RawPercentageUsed,
		Tier:              s.Tier,
		OverLimit:         spent > limit,
	}
}
