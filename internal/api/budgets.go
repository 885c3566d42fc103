package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/tvnguyen/famledger/backend/internal/model"
	"github.com/tvnguyen/famledger/backend/internal/service"
	"github.com/tvnguyen/famledger/backend/internal/store"
)

type createBudgetRequest struct {
	Name              string                   `json:"name"`
	Category          string                   `json:"category"`
	CategoryID        string                   `json:"categoryId"`
	AllocatedAmount   float64                  `json:"allocatedAmount"`
	Currency          string                   `json:"currency"`
	Period            model.Period             `json:"period"`
	StartDate         *time.Time               `json:"startDate"`
	EndDate           *time.Time               `json:"endDate"`
	ResetDay          int                      `json:"resetDay"`
	AlertThreshold    float64                  `json:"alertThreshold"`
	AlertEnabled      *bool                    `json:"alertEnabled"`
	MemberAllocations []model.MemberAllocation `json:"memberAllocations"`
}

func (h *Handler) handleCreateBudget(w http.ResponseWriter, r *http.Request) {
	var req createBudgetRequest
	if !decodeBody(w, r, &req) {
		return
	}

	in := service.CreateBudgetInput{
		Name:              req.Name,
		Category:          req.Category,
		CategoryID:        req.CategoryID,
		AllocatedAmount:   req.AllocatedAmount,
		Currency:          req.Currency,
		Period:            req.Period,
		EndDate:           req.EndDate,
		ResetDay:          req.ResetDay,
		AlertThreshold:    req.AlertThreshold,
		AlertEnabled:      req.AlertEnabled,
		MemberAllocations: req.MemberAllocations,
	}
	if req.StartDate != nil {
		in.StartDate = *req.StartDate
	}

	b, err := h.budgets.CreateBudget(r.Context(), r.PathValue("familyID"), callerID(r), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

func (h *Handler) handleListBudgets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := store.ListBudgetsOptions{
		IncludeInactive: q.Get("includeInactive") == "true",
		OrderBy:         q.Get("orderBy"),
		OrderDesc:       q.Get("desc") == "true",
		PageToken:       q.Get("pageToken"),
	}
	if size, err := strconv.Atoi(q.Get("pageSize")); err == nil {
		opts.PageSize = int32(size)
	}

	details, nextToken, err := h.budgets.GetFamilyBudgets(r.Context(), r.PathValue("familyID"), callerID(r), opts)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"budgets":       details,
		"nextPageToken": nextToken,
	})
}

func (h *Handler) handleGetBudget(w http.ResponseWriter, r *http.Request) {
	detail, err := h.budgets.GetBudgetDetail(r.Context(), r.PathValue("familyID"), r.PathValue("budgetID"), callerID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

type updateBudgetRequest struct {
	Name              *string                  `json:"name"`
	Category          *string                  `json:"category"`
	CategoryID        *string                  `json:"categoryId"`
	AllocatedAmount   *float64                 `json:"allocatedAmount"`
	Currency          *string                  `json:"currency"`
	Period            *model.Period            `json:"period"`
	StartDate         *time.Time               `json:"startDate"`
	EndDate           *time.Time               `json:"endDate"`
	ResetDay          *int                     `json:"resetDay"`
	AlertThreshold    *float64                 `json:"alertThreshold"`
	AlertEnabled      *bool                    `json:"alertEnabled"`
	MemberAllocations []model.MemberAllocation `json:"memberAllocations"`
	IsActive          *bool                    `json:"isActive"`
}

func (h *Handler) handleUpdateBudget(w http.ResponseWriter, r *http.Request) {
	var req updateBudgetRequest
	if !decodeBody(w, r, &req) {
		return
	}

	b, err := h.budgets.UpdateBudget(r.Context(), r.PathValue("familyID"), r.PathValue("budgetID"), callerID(r), service.UpdateBudgetInput{
		Name:              req.Name,
		Category:          req.Category,
		CategoryID:        req.CategoryID,
		AllocatedAmount:   req.AllocatedAmount,
		Currency:          req.Currency,
		Period:            req.Period,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		ResetDay:          req.ResetDay,
		AlertThreshold:    req.AlertThreshold,
		AlertEnabled:      req.AlertEnabled,
		MemberAllocations: req.MemberAllocations,
		IsActive:          req.IsActive,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

type setLockRequest struct {
	Locked bool `json:"locked"`
}

func (h *Handler) handleSetBudgetLock(w http.ResponseWriter, r *http.Request) {
	var req setLockRequest
	if !decodeBody(w, r, &req) {
		return
	}

	b, err := h.budgets.SetBudgetLock(r.Context(), r.PathValue("familyID"), r.PathValue("budgetID"), callerID(r), req.Locked)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *Handler) handleDeleteBudget(w http.ResponseWriter, r *http.Request) {
	if err := h.budgets.DeleteBudget(r.Context(), r.PathValue("familyID"), r.PathValue("budgetID"), callerID(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
