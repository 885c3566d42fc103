package budget

// Tier classifies how much of an allocation has been consumed.
type Tier string

const (
	TierSafe     Tier = "safe"     // < 50% used
	TierWarning  Tier = "warning"  // 50% to just under 80%
	TierCritical Tier = "critical" // >= 80%
)

// Status is the derived spend state of one allocation. It is recomputed from
// transactions on every read and never persisted.
type Status struct {
	AllocatedAmount float64 `json:"allocatedAmount"`
	SpentAmount     float64 `json:"spentAmount"`
	// RemainingAmount is clamped at zero: overspend shows up in the
	// percentage and tier, never as a negative balance.
	RemainingAmount float64 `json:"remainingAmount"`
	// PercentageUsed is the display value, clamped to [0,100].
	PercentageUsed      float64 `json:"percentageUsed"`
	PercentageRemaining float64 `json:"percentageRemaining"`
	// RawPercentageUsed is the unclamped ratio. The tier decision uses
	// this, so a 120%-spent budget still reads critical after the display
	// value is clamped to 100.
	RawPercentageUsed float64 `json:"rawPercentageUsed"`
	Tier              Tier    `json:"status"`
}

// Evaluate derives the status of an allocation from its spend total.
// A zero allocation is defined as 0% used regardless of spend; no NaN or
// Inf is ever produced.
func Evaluate(allocated, spent float64) Status {
	var raw float64
	if allocated > 0 {
		// Multiply before dividing: 550000/1000000 must come out as
		// exactly 55, not 55.00000000000001.
		raw = spent * 100 / allocated
	}

	remaining := allocated - spent
	if remaining < 0 {
		remaining = 0
	}

	display := clampPercent(raw)
	return Status{
		AllocatedAmount:     allocated,
		SpentAmount:         spent,
		RemainingAmount:     remaining,
		PercentageUsed:      display,
		PercentageRemaining: 100 - display,
		RawPercentageUsed:   raw,
		Tier:                tierFor(raw),
	}
}

// tierFor maps a percentage-used ratio onto a tier. Boundaries are inclusive
// on the lower bound: 50 is warning, 80 is critical.
func tierFor(pct float64) Tier {
	switch {
	case pct >= 80:
		return TierCritical
	case pct >= 50:
		return TierWarning
	default:
		return TierSafe
	}
}

func clampPercent(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
