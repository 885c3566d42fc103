package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tvnguyen/famledger/backend/internal/model"
)

// Firestore collections used by this subsystem.
const (
	collectionFamilies        = "families"
	collectionFamilyMembers   = "familyMembers"
	collectionBudgets         = "budgets"
	collectionPersonalBudgets = "personalBudgets"
	collectionTransactions    = "transactions"
	collectionAuditLogs       = "auditLogs"
)

// FirestoreStore implements the Store interface using Firestore
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a new Firestore-backed store
func NewFirestoreStore(client *firestore.Client) Store {
	return &FirestoreStore{
		client: client,
	}
}

// notFound maps Firestore's NotFound status onto the store sentinel so
// callers can distinguish an absent document from a transport failure.
func notFound(err error, what, id string) error {
	if status.Code(err) == codes.NotFound {
		return fmt.Errorf("%s %s: %w", what, id, ErrNotFound)
	}
	return err
}

// Family operations

func (s *FirestoreStore) GetFamily(ctx context.Context, familyID string) (*model.Family, error) {
	doc, err := s.client.Collection(collectionFamilies).Doc(familyID).Get(ctx)
	if err != nil {
		return nil, notFound(err, "family", familyID)
	}

	var family model.Family
	if err := doc.DataTo(&family); err != nil {
		return nil, fmt.Errorf("failed to parse family: %w", err)
	}
	return &family, nil
}

func (s *FirestoreStore) GetFamilyMember(ctx context.Context, familyID, userID string) (*model.FamilyMember, error) {
	// NOTE: Field names must match Go struct field names (PascalCase) as
	// that's how Firestore serializes the model structs.
	iter := s.client.Collection(collectionFamilyMembers).
		Where("FamilyID", "==", familyID).
		Where("UserID", "==", userID).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, fmt.Errorf("member %s in family %s: %w", userID, familyID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query family member: %w", err)
	}

	var member model.FamilyMember
	if err := doc.DataTo(&member); err != nil {
		return nil, fmt.Errorf("failed to parse family member: %w", err)
	}
	return &member, nil
}

func (s *FirestoreStore) ListFamilyMembers(ctx context.Context, familyID string) ([]*model.FamilyMember, error) {
	iter := s.client.Collection(collectionFamilyMembers).
		Where("FamilyID", "==", familyID).
		OrderBy("JoinedAt", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var members []*model.FamilyMember
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list family members: %w", err)
		}

		var member model.FamilyMember
		if err := doc.DataTo(&member); err != nil {
			return nil, fmt.Errorf("failed to parse family member: %w", err)
		}
		members = append(members, &member)
	}
	return members, nil
}

// Budget operations

func (s *FirestoreStore) CreateBudget(ctx context.Context, budget *model.Budget) error {
	_, err := s.client.Collection(collectionBudgets).Doc(budget.ID).Set(ctx, budget)
	return err
}

func (s *FirestoreStore) GetBudget(ctx context.Context, budgetID string) (*model.Budget, error) {
	doc, err := s.client.Collection(collectionBudgets).Doc(budgetID).Get(ctx)
	if err != nil {
		return nil, notFound(err, "budget", budgetID)
	}

	var budget model.Budget
	if err := doc.DataTo(&budget); err != nil {
		return nil, fmt.Errorf("failed to parse budget: %w", err)
	}
	return &budget, nil
}

func (s *FirestoreStore) UpdateBudget(ctx context.Context, budget *model.Budget) error {
	_, err := s.client.Collection(collectionBudgets).Doc(budget.ID).Set(ctx, budget)
	return err
}

// DeleteBudget removes only the allocation document. Transactions are never
// touched, so deleting a budget is lossless with respect to spend history.
func (s *FirestoreStore) DeleteBudget(ctx context.Context, budgetID string) error {
	_, err := s.client.Collection(collectionBudgets).Doc(budgetID).Delete(ctx)
	return err
}

// orderByField maps a list option onto the serialized Firestore field name.
func orderByField(orderBy string) string {
	switch orderBy {
	case "allocatedAmount":
		return "AllocatedAmount"
	case "name":
		return "Name"
	default:
		return "CreatedAt"
	}
}

func (s *FirestoreStore) ListBudgets(ctx context.Context, familyID string, opts ListBudgetsOptions) ([]*model.Budget, string, error) {
	query := s.client.Collection(collectionBudgets).Query
	query = query.Where("FamilyID", "==", familyID)

	if !opts.IncludeInactive {
		query = query.Where("IsActive", "==", true)
	}

	dir := firestore.Asc
	if opts.OrderDesc {
		dir = firestore.Desc
	}
	field := orderByField(opts.OrderBy)
	query = query.OrderBy(field, dir).OrderBy(firestore.DocumentID, firestore.Asc)

	if opts.PageToken != "" {
		docID, err := DecodePageToken(opts.PageToken)
		if err != nil {
			return nil, "", fmt.Errorf("invalid page token: %w", err)
		}
		// Composite cursor: fetch the cursor document for its order-by
		// field value.
		cursorDoc, err := s.client.Collection(collectionBudgets).Doc(docID).Get(ctx)
		if err != nil {
			return nil, "", fmt.Errorf("failed to fetch cursor document: %w", err)
		}
		query = query.StartAfter(cursorDoc.Data()[field], docID)
	}

	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}
	query = query.Limit(int(pageSize) + 1) // +1 to detect next page

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, "", fmt.Errorf("failed to list budgets: %w", err)
	}

	var nextPageToken string
	if len(docs) > int(pageSize) {
		docs = docs[:pageSize]
		nextPageToken = EncodePageToken(docs[pageSize-1].Ref.ID)
	}

	budgets := make([]*model.Budget, 0, len(docs))
	for _, doc := range docs {
		var budget model.Budget
		if err := doc.DataTo(&budget); err != nil {
			return nil, "", fmt.Errorf("failed to parse budget: %w", err)
		}
		budgets = append(budgets, &budget)
	}

	return budgets, nextPageToken, nil
}

// Personal budget operations

func (s *FirestoreStore) CreatePersonalBudget(ctx context.Context, budget *model.PersonalBudget) error {
	_, err := s.client.Collection(collectionPersonalBudgets).Doc(budget.ID).Set(ctx, budget)
	return err
}

func (s *FirestoreStore) GetPersonalBudget(ctx context.Context, budgetID string) (*model.PersonalBudget, error) {
	doc, err := s.client.Collection(collectionPersonalBudgets).Doc(budgetID).Get(ctx)
	if err != nil {
		return nil, notFound(err, "personal budget", budgetID)
	}

	var budget model.PersonalBudget
	if err := doc.DataTo(&budget); err != nil {
		return nil, fmt.Errorf("failed to parse personal budget: %w", err)
	}
	return &budget, nil
}

func (s *FirestoreStore) UpdatePersonalBudget(ctx context.Context, budget *model.PersonalBudget) error {
	_, err := s.client.Collection(collectionPersonalBudgets).Doc(budget.ID).Set(ctx, budget)
	return err
}

func (s *FirestoreStore) DeletePersonalBudget(ctx context.Context, budgetID string) error {
	_, err := s.client.Collection(collectionPersonalBudgets).Doc(budgetID).Delete(ctx)
	return err
}

func (s *FirestoreStore) ListPersonalBudgets(ctx context.Context, familyID, userID string, year, month int) ([]*model.PersonalBudget, error) {
	query := s.client.Collection(collectionPersonalBudgets).Query
	query = query.Where("FamilyID", "==", familyID).Where("UserID", "==", userID)
	if year > 0 {
		query = query.Where("Year", "==", year)
	}
	if month > 0 {
		query = query.Where("Month", "==", month)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var budgets []*model.PersonalBudget
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list personal budgets: %w", err)
		}

		var budget model.PersonalBudget
		if err := doc.DataTo(&budget); err != nil {
			return nil, fmt.Errorf("failed to parse personal budget: %w", err)
		}
		budgets = append(budgets, &budget)
	}
	return budgets, nil
}

// Transaction operations

// transactionScope narrows the transaction collection to a member or a
// whole family.
func (s *FirestoreStore) transactionScope(userID, familyID string) firestore.Query {
	query := s.client.Collection(collectionTransactions).Query
	if userID != "" {
		return query.Where("UserID", "==", userID)
	}
	return query.Where("FamilyID", "==", familyID)
}

// ListTransactions streams the transactions for a family or a single member
// within a date window. This subsystem never writes to the collection.
//
// Legacy records carry no Date and fall back to CreatedAt, so the window is
// applied in two queries: Date-ranged for dated records, CreatedAt-ranged
// for the zero-Date ones.
func (s *FirestoreStore) ListTransactions(ctx context.Context, familyID, userID string, start, end time.Time) ([]*model.Transaction, error) {
	dated := s.transactionScope(userID, familyID).
		Where("Date", ">=", start).
		Where("Date", "<=", end).
		OrderBy("Date", firestore.Asc)
	legacy := s.transactionScope(userID, familyID).
		Where("Date", "==", time.Time{}).
		Where("CreatedAt", ">=", start).
		Where("CreatedAt", "<=", end)

	var txs []*model.Transaction
	for _, query := range []firestore.Query{dated, legacy} {
		iter := query.Documents(ctx)
		for {
			doc, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				iter.Stop()
				return nil, fmt.Errorf("failed to list transactions: %w", err)
			}

			var tx model.Transaction
			if err := doc.DataTo(&tx); err != nil {
				iter.Stop()
				return nil, fmt.Errorf("failed to parse transaction: %w", err)
			}
			txs = append(txs, &tx)
		}
		iter.Stop()
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

// AppendAuditEntry writes one immutable audit document. The Timestamp field
// carries a server-timestamp sentinel and is assigned on commit.
func (s *FirestoreStore) AppendAuditEntry(ctx context.Context, entry *model.AuditEntry) error {
	_, err := s.client.Collection(collectionAuditLogs).Doc(entry.ID).Set(ctx, entry)
	return err
}
