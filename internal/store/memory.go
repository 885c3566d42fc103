package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tvnguyen/famledger/backend/internal/model"
)

// MemoryStore implements the Store interface with in-memory storage. It backs
// local development and tests; semantics mirror the Firestore store,
// including last-write-wins on concurrent updates.
type MemoryStore struct {
	mu sync.RWMutex

	families        map[string]*model.Family
	familyMembers   map[string]*model.FamilyMember
	budgets         map[string]*model.Budget
	personalBudgets map[string]*model.PersonalBudget
	transactions    map[string]*model.Transaction
	auditEntries    []*model.AuditEntry
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		families:        make(map[string]*model.Family),
		familyMembers:   make(map[string]*model.FamilyMember),
		budgets:         make(map[string]*model.Budget),
		personalBudgets: make(map[string]*model.PersonalBudget),
		transactions:    make(map[string]*model.Transaction),
	}
}

// Seeding helpers. Families, members and transactions are read-only through
// the Store interface, so tests and local dev seed them directly.

func (m *MemoryStore) AddFamily(family *model.Family) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if family.ID == "" {
		family.ID = uuid.New().String()
	}
	m.families[family.ID] = family
}

func (m *MemoryStore) AddFamilyMember(member *model.FamilyMember) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	m.familyMembers[member.ID] = member
}

func (m *MemoryStore) AddTransaction(tx *model.Transaction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now()
	}
	m.transactions[tx.ID] = tx
}

// AuditEntries returns a snapshot of the appended audit log, oldest first.
func (m *MemoryStore) AuditEntries() []*model.AuditEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entries := make([]*model.AuditEntry, len(m.auditEntries))
	copy(entries, m.auditEntries)
	return entries
}

// Family operations

func (m *MemoryStore) GetFamily(ctx context.Context, familyID string) (*model.Family, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	family, ok := m.families[familyID]
	if !ok {
		return nil, fmt.Errorf("family %s: %w", familyID, ErrNotFound)
	}
	return family, nil
}

func (m *MemoryStore) GetFamilyMember(ctx context.Context, familyID, userID string) (*model.FamilyMember, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, member := range m.familyMembers {
		if member.FamilyID == familyID && member.UserID == userID {
			return member, nil
		}
	}
	return nil, fmt.Errorf("member %s in family %s: %w", userID, familyID, ErrNotFound)
}

func (m *MemoryStore) ListFamilyMembers(ctx context.Context, familyID string) ([]*model.FamilyMember, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var members []*model.FamilyMember
	for _, member := range m.familyMembers {
		if member.FamilyID == familyID {
			members = append(members, member)
		}
	}
	sort.Slice(members, func(i, j int) bool {
		if members[i].JoinedAt.Equal(members[j].JoinedAt) {
			return members[i].ID < members[j].ID
		}
		return members[i].JoinedAt.Before(members[j].JoinedAt)
	})
	return members, nil
}

// Budget operations

// copyBudget snapshots a budget. Reads and writes both go through a copy,
// mirroring Firestore, where a fetched document and the stored one never
// share memory. A caller mutating its copy cannot leak uncommitted changes
// into the store.
func copyBudget(b *model.Budget) *model.Budget {
	dup := *b
	if b.MemberAllocations != nil {
		dup.MemberAllocations = append([]model.MemberAllocation(nil), b.MemberAllocations...)
	}
	if b.EndDate != nil {
		end := *b.EndDate
		dup.EndDate = &end
	}
	return &dup
}

func (m *MemoryStore) CreateBudget(ctx context.Context, budget *model.Budget) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if budget.ID == "" {
		budget.ID = uuid.New().String()
	}
	m.budgets[budget.ID] = copyBudget(budget)
	return nil
}

func (m *MemoryStore) GetBudget(ctx context.Context, budgetID string) (*model.Budget, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	budget, ok := m.budgets[budgetID]
	if !ok {
		return nil, fmt.Errorf("budget %s: %w", budgetID, ErrNotFound)
	}
	return copyBudget(budget), nil
}

func (m *MemoryStore) UpdateBudget(ctx context.Context, budget *model.Budget) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.budgets[budget.ID]; !ok {
		return fmt.Errorf("budget %s: %w", budget.ID, ErrNotFound)
	}
	m.budgets[budget.ID] = copyBudget(budget)
	return nil
}

func (m *MemoryStore) DeleteBudget(ctx context.Context, budgetID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.budgets[budgetID]; !ok {
		return fmt.Errorf("budget %s: %w", budgetID, ErrNotFound)
	}
	delete(m.budgets, budgetID)
	return nil
}

func (m *MemoryStore) ListBudgets(ctx context.Context, familyID string, opts ListBudgetsOptions) ([]*model.Budget, string, error) {
	m.mu.RLock()

	var budgets []*model.Budget
	for _, budget := range m.budgets {
		if budget.FamilyID != familyID {
			continue
		}
		if !opts.IncludeInactive && !budget.IsActive {
			continue
		}
		budgets = append(budgets, copyBudget(budget))
	}
	m.mu.RUnlock()

	sortBudgets(budgets, opts)

	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}

	startIdx := 0
	if opts.PageToken != "" {
		cursorID, err := DecodePageToken(opts.PageToken)
		if err != nil {
			return nil, "", fmt.Errorf("invalid page token: %w", err)
		}
		for i, b := range budgets {
			if b.ID == cursorID {
				startIdx = i + 1
				break
			}
		}
	}
	budgets = budgets[startIdx:]

	var nextPageToken string
	if int32(len(budgets)) > pageSize {
		nextPageToken = EncodePageToken(budgets[pageSize-1].ID)
		budgets = budgets[:pageSize]
	}

	return budgets, nextPageToken, nil
}

func sortBudgets(budgets []*model.Budget, opts ListBudgetsOptions) {
	less := func(i, j int) bool {
		a, b := budgets[i], budgets[j]
		switch opts.OrderBy {
		case "allocatedAmount":
			if a.AllocatedAmount != b.AllocatedAmount {
				return a.AllocatedAmount < b.AllocatedAmount
			}
		case "name":
			if a.Name != b.Name {
				return a.Name < b.Name
			}
		default:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.Before(b.CreatedAt)
			}
		}
		return a.ID < b.ID
	}
	if opts.OrderDesc {
		sort.Slice(budgets, func(i, j int) bool { return less(j, i) })
		return
	}
	sort.Slice(budgets, less)
}

// Personal budget operations

func (m *MemoryStore) CreatePersonalBudget(ctx context.Context, budget *model.PersonalBudget) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if budget.ID == "" {
		budget.ID = uuid.New().String()
	}
	dup := *budget
	m.personalBudgets[budget.ID] = &dup
	return nil
}

func (m *MemoryStore) GetPersonalBudget(ctx context.Context, budgetID string) (*model.PersonalBudget, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	budget, ok := m.personalBudgets[budgetID]
	if !ok {
		return nil, fmt.Errorf("personal budget %s: %w", budgetID, ErrNotFound)
	}
	dup := *budget
	return &dup, nil
}

func (m *MemoryStore) UpdatePersonalBudget(ctx context.Context, budget *model.PersonalBudget) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.personalBudgets[budget.ID]; !ok {
		return fmt.Errorf("personal budget %s: %w", budget.ID, ErrNotFound)
	}
	dup := *budget
	m.personalBudgets[budget.ID] = &dup
	return nil
}

func (m *MemoryStore) DeletePersonalBudget(ctx context.Context, budgetID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.personalBudgets[budgetID]; !ok {
		return fmt.Errorf("personal budget %s: %w", budgetID, ErrNotFound)
	}
	delete(m.personalBudgets, budgetID)
	return nil
}

func (m *MemoryStore) ListPersonalBudgets(ctx context.Context, familyID, userID string, year, month int) ([]*model.PersonalBudget, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var budgets []*model.PersonalBudget
	for _, budget := range m.personalBudgets {
		if budget.FamilyID != familyID || budget.UserID != userID {
			continue
		}
		if year > 0 && budget.Year != year {
			continue
		}
		if month > 0 && budget.Month != month {
			continue
		}
		dup := *budget
		budgets = append(budgets, &dup)
	}
	sort.Slice(budgets, func(i, j int) bool { return budgets[i].ID < budgets[j].ID })
	return budgets, nil
}

// Transaction operations

func (m *MemoryStore) ListTransactions(ctx context.Context, familyID, userID string, start, end time.Time) ([]*model.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var txs []*model.Transaction
	for _, tx := range m.transactions {
		if userID != "" {
			if tx.UserID != userID {
				continue
			}
		} else if tx.FamilyID != familyID {
			continue
		}
		at := tx.OccurredAt()
		if at.Before(start) || at.After(end) {
			continue
		}
		txs = append(txs, tx)
	}
	sort.Slice(txs, func(i, j int) bool {
		ai, aj := txs[i].OccurredAt(), txs[j].OccurredAt()
		if ai.Equal(aj) {
			return txs[i].ID < txs[j].ID
		}
		return ai.Before(aj)
	})
	return txs, nil
}

// Audit operations

func (m *MemoryStore) AppendAuditEntry(ctx context.Context, entry *model.AuditEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	m.auditEntries = append(m.auditEntries, entry)
	return nil
}
