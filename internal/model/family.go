package model

import "time"

// Role is a member's role within a family.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// CanManageBudgets reports whether the role may create, update, lock or
// delete family-level budgets.
func (r Role) CanManageBudgets() bool {
	return r == RoleOwner || r == RoleAdmin
}

// Family represents a household sharing budgets and spending limits.
// NOTE: Fields are stored in Firestore under their Go names (PascalCase).
type Family struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"ownerId"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"createdAt"`
}

// SpendingLimit is the per-member monthly expense ceiling configured on a
// family member record. Everything else about a limit is derived at read time.
type SpendingLimit struct {
	Amount                float64 `json:"amount"`
	NotificationThreshold float64 `json:"notificationThreshold"`
}

// FamilyMember links a user to a family with a role and an optional
// monthly spending limit.
type FamilyMember struct {
	ID            string         `json:"id"`
	FamilyID      string         `json:"familyId"`
	UserID        string         `json:"userId"`
	DisplayName   string         `json:"displayName"`
	Role          Role           `json:"role"`
	SpendingLimit *SpendingLimit `json:"spendingLimit,omitempty"`
	JoinedAt      time.Time      `json:"joinedAt"`
}
