// Package api exposes the budget subsystem over a JSON HTTP surface.
// Handlers are thin: they decode, resolve the caller, call the service and
// encode. All authorization decisions live in the service layer.
package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/tvnguyen/famledger/backend/internal/auth"
	"github.com/tvnguyen/famledger/backend/internal/service"
)

// Handler serves the budget HTTP API.
type Handler struct {
	budgets *service.BudgetService
}

func NewHandler(budgets *service.BudgetService) *Handler {
	return &Handler{budgets: budgets}
}

// Routes builds the route table for the API.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.handleHealth)

	mux.HandleFunc("GET /v1/families/{familyID}/budgets", h.handleListBudgets)
	mux.HandleFunc("POST /v1/families/{familyID}/budgets", h.handleCreateBudget)
	mux.HandleFunc("GET /v1/families/{familyID}/budgets/{budgetID}", h.handleGetBudget)
	mux.HandleFunc("PATCH /v1/families/{familyID}/budgets/{budgetID}", h.handleUpdateBudget)
	mux.HandleFunc("DELETE /v1/families/{familyID}/budgets/{budgetID}", h.handleDeleteBudget)
	mux.HandleFunc("POST /v1/families/{familyID}/budgets/{budgetID}/lock", h.handleSetBudgetLock)

	mux.HandleFunc("GET /v1/families/{familyID}/members/{userID}/budgets", h.handleListPersonalBudgets)
	mux.HandleFunc("POST /v1/families/{familyID}/members/{userID}/budgets", h.handleCreatePersonalBudget)
	mux.HandleFunc("GET /v1/families/{familyID}/personal-budgets/{budgetID}", h.handleGetPersonalBudget)
	mux.HandleFunc("PATCH /v1/families/{familyID}/personal-budgets/{budgetID}", h.handleUpdatePersonalBudget)
	mux.HandleFunc("DELETE /v1/families/{familyID}/personal-budgets/{budgetID}", h.handleDeletePersonalBudget)

	mux.HandleFunc("GET /v1/families/{familyID}/limits", h.handleGetSpendingLimits)
	mux.HandleFunc("GET /v1/families/{familyID}/report", h.handleGetReport)

	return mux
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// callerID resolves the authenticated user from the request context. The
// empty string stands for "no caller" and is rejected by the service.
func callerID(r *http.Request) string {
	uid, _ := auth.GetUserID(r.Context())
	return uid
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("[API] failed to encode response: %v", err)
	}
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    service.Code `json:"code"`
	Message string       `json:"message"`
}

// writeError maps a service error code to an HTTP status. Unrecognized
// errors become a 500 with no internal detail leaked.
func writeError(w http.ResponseWriter, err error) {
	code := service.CodeOf(err)

	status := http.StatusInternalServerError
	switch code {
	case service.CodeUnauthenticated:
		status = http.StatusUnauthorized
	case service.CodePermissionDenied:
		status = http.StatusForbidden
	case service.CodeNotFound:
		status = http.StatusNotFound
	case service.CodeBudgetLocked:
		status = http.StatusConflict
	case service.CodeFamilyMismatch, service.CodeInvalidArgument:
		status = http.StatusBadRequest
	}

	msg := err.Error()
	if code == service.CodeInternal {
		log.Printf("[API] internal error: %v", err)
		msg = "internal error"
	}
	writeJSON(w, status, errorBody{Error: errorDetail{Code: code, Message: msg}})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: errorDetail{
			Code:    service.CodeInvalidArgument,
			Message: "invalid request body",
		}})
		return false
	}
	return true
}
