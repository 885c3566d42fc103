// Package budget implements the family budget aggregation engine: pure
// functions that fold raw transactions into spend totals, derive budget and
// spending-limit status, and compose the consolidated family report.
//
// Nothing in this package touches a store; callers fetch the period's
// transactions once and reuse them across every aggregation pass.
package budget

import (
	"sort"
	"time"

	"github.com/tvnguyen/famledger/backend/internal/model"
)

// GroupByCategory buckets transactions by their category label, verbatim.
// Differently-cased or differently-accented labels form distinct buckets;
// normalization is deliberately not applied here.
func GroupByCategory(txs []*model.Transaction) map[string][]*model.Transaction {
	groups := make(map[string][]*model.Transaction)
	for _, tx := range txs {
		groups[tx.Category] = append(groups[tx.Category], tx)
	}
	return groups
}

// GroupByUser buckets transactions by the user that recorded them.
func GroupByUser(txs []*model.Transaction) map[string][]*model.Transaction {
	groups := make(map[string][]*model.Transaction)
	for _, tx := range txs {
		groups[tx.UserID] = append(groups[tx.UserID], tx)
	}
	return groups
}

// SumExpenses totals the expense-type transactions in a bucket. The type
// restriction lives here, at summation, so a single grouping pass serves both
// income and expense reporting.
func SumExpenses(txs []*model.Transaction) float64 {
	var total float64
	for _, tx := range txs {
		if tx.IsExpense() {
			total += tx.Amount
		}
	}
	return total
}

// SumIncome totals the income-type transactions in a bucket.
func SumIncome(txs []*model.Transaction) float64 {
	var total float64
	for _, tx := range txs {
		if tx.Type == model.TransactionIncome {
			total += tx.Amount
		}
	}
	return total
}

// MatchesBudget reports whether a transaction belongs to a budget's category.
//
// Upstream records are inconsistently populated, so matching is two-stage:
// match by category ID first, then fall back to the verbatim category label.
func MatchesBudget(tx *model.Transaction, b *model.Budget) bool {
	if matchByID(tx, b) {
		return true
	}
	return matchByName(tx, b)
}

func matchByID(tx *model.Transaction, b *model.Budget) bool {
	return b.CategoryID != "" && tx.CategoryID == b.CategoryID
}

func matchByName(tx *model.Transaction, b *model.Budget) bool {
	return b.Category != "" && tx.Category == b.Category
}

// FilterForBudget returns the transactions matching a budget's category,
// income and expense alike.
func FilterForBudget(txs []*model.Transaction, b *model.Budget) []*model.Transaction {
	var matched []*model.Transaction
	for _, tx := range txs {
		if MatchesBudget(tx, b) {
			matched = append(matched, tx)
		}
	}
	return matched
}

// InPeriod returns the transactions whose accounting date falls in
// [start, end].
func InPeriod(txs []*model.Transaction, start, end time.Time) []*model.Transaction {
	var in []*model.Transaction
	for _, tx := range txs {
		at := tx.OccurredAt()
		if at.Before(start) || at.After(end) {
			continue
		}
		in = append(in, tx)
	}
	return in
}

// SpentForBudget derives a budget's spend from a transaction set: expense
// transactions matching the budget's category within the window.
func SpentForBudget(txs []*model.Transaction, b *model.Budget, start, end time.Time) float64 {
	return SumExpenses(InPeriod(FilterForBudget(txs, b), start, end))
}

// CategorySpend is one category's expense total within a window.
type CategorySpend struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// TopCategories returns up to n categories ranked by expense total,
// descending. Ties break on the category label so the order is stable.
func TopCategories(txs []*model.Transaction, n int) []CategorySpend {
	totals := make(map[string]float64)
	for _, tx := range txs {
		if tx.IsExpense() {
			totals[tx.Category] += tx.Amount
		}
	}

	ranked := make([]CategorySpend, 0, len(totals))
	for category, amount := range totals {
		ranked = append(ranked, CategorySpend{Category: category, Amount: amount})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Amount != ranked[j].Amount {
			return ranked[i].Amount > ranked[j].Amount
		}
		return ranked[i].Category < ranked[j].Category
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
