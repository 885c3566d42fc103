package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/tvnguyen/famledger/backend/internal/model"
	"github.com/tvnguyen/famledger/backend/internal/store"
)

// auditLogger records budget mutations. Writes are best-effort: a failed
// audit write is logged and swallowed so it never fails the mutation that
// triggered it.
type auditLogger struct {
	store store.Store
}

func (a *auditLogger) record(ctx context.Context, familyID, actorID, action string, details map[string]string) {
	entry := &model.AuditEntry{
		ID:       uuid.New().String(),
		FamilyID: familyID,
		ActorID:  actorID,
		Action:   action,
		Details:  details,
	}
	if err := a.store.AppendAuditEntry(ctx, entry); err != nil {
		log.Printf("[AuditLog] failed to record %s for family %s: %v", action, familyID, err)
	}
}
