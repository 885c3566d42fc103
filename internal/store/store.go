package store

import (
	"context"
	"encoding/base64"
	"errors"
	"time"

	"github.com/tvnguyen/famledger/backend/internal/model"
)

//go:generate mockgen -source=store.go -destination=store_mock.go -package=store

// ErrNotFound marks a referenced document as absent. Callers must be able to
// tell "does not exist" apart from "exists with zero spend".
var ErrNotFound = errors.New("not found")

// ListBudgetsOptions controls filtering, ordering and pagination of a
// family's budget list.
type ListBudgetsOptions struct {
	IncludeInactive bool
	// OrderBy is one of "createdAt", "allocatedAmount", "name".
	// Empty means createdAt.
	OrderBy   string
	OrderDesc bool
	PageSize  int32
	PageToken string
}

// Store defines the document-store operations used by the services.
// Transactions are read-only here: nothing in this interface can mutate
// spend history.
type Store interface {
	// Family operations
	GetFamily(ctx context.Context, familyID string) (*model.Family, error)
	GetFamilyMember(ctx context.Context, familyID, userID string) (*model.FamilyMember, error)
	ListFamilyMembers(ctx context.Context, familyID string) ([]*model.FamilyMember, error)

	// Budget operations
	CreateBudget(ctx context.Context, budget *model.Budget) error
	GetBudget(ctx context.Context, budgetID string) (*model.Budget, error)
	UpdateBudget(ctx context.Context, budget *model.Budget) error
	DeleteBudget(ctx context.Context, budgetID string) error
	ListBudgets(ctx context.Context, familyID string, opts ListBudgetsOptions) ([]*model.Budget, string, error)

	// Personal budget operations
	CreatePersonalBudget(ctx context.Context, budget *model.PersonalBudget) error
	GetPersonalBudget(ctx context.Context, budgetID string) (*model.PersonalBudget, error)
	UpdatePersonalBudget(ctx context.Context, budget *model.PersonalBudget) error
	DeletePersonalBudget(ctx context.Context, budgetID string) error
	ListPersonalBudgets(ctx context.Context, familyID, userID string, year, month int) ([]*model.PersonalBudget, error)

	// Transaction operations (read-only)
	ListTransactions(ctx context.Context, familyID, userID string, start, end time.Time) ([]*model.Transaction, error)

	// Audit operations
	AppendAuditEntry(ctx context.Context, entry *model.AuditEntry) error
}

// EncodePageToken encodes a document ID into a page token.
func EncodePageToken(docID string) string {
	if docID == "" {
		return ""
	}
	return base64.URLEncoding.EncodeToString([]byte(docID))
}

// DecodePageToken decodes a page token back to a document ID.
func DecodePageToken(token string) (string, error) {
	if token == "" {
		return "", nil
	}
	b, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
