package model

import "time"

// AuditEntry is an immutable record of a budget mutation. Entries are
// appended best-effort after the primary write; a lost entry is acceptable,
// a rolled-back mutation is not.
type AuditEntry struct {
	ID       string            `json:"id"`
	FamilyID string            `json:"familyId"`
	ActorID  string            `json:"actorId"`
	Action   string            `json:"action"`
	Details  map[string]string `json:"details,omitempty"`
	// Timestamp is assigned by the store on write.
	Timestamp time.Time `firestore:"Timestamp,serverTimestamp" json:"timestamp"`
}
