package api

import (
	"net/http"
	"strconv"

	"github.com/tvnguyen/famledger/backend/internal/model"
	"github.com/tvnguyen/famledger/backend/internal/service"
)

type createPersonalBudgetRequest struct {
	Category        string       `json:"category"`
	CategoryID      string       `json:"categoryId"`
	AllocatedAmount float64      `json:"allocatedAmount"`
	Period          model.Period `json:"period"`
	Year            int          `json:"year"`
	Month           int          `json:"month"`
}

func (h *Handler) handleCreatePersonalBudget(w http.ResponseWriter, r *http.Request) {
	var req createPersonalBudgetRequest
	if !decodeBody(w, r, &req) {
		return
	}

	pb, err := h.budgets.CreatePersonalBudget(r.Context(), r.PathValue("familyID"), callerID(r), service.CreatePersonalBudgetInput{
		UserID:          r.PathValue("userID"),
		Category:        req.Category,
		CategoryID:      req.CategoryID,
		AllocatedAmount: req.AllocatedAmount,
		Period:          req.Period,
		Year:            req.Year,
		Month:           req.Month,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, pb)
}

func (h *Handler) handleListPersonalBudgets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	year, _ := strconv.Atoi(q.Get("year"))
	month, _ := strconv.Atoi(q.Get("month"))

	budgets, err := h.budgets.ListPersonalBudgets(r.Context(), r.PathValue("familyID"), callerID(r), r.PathValue("userID"), year, month)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"personalBudgets": budgets})
}

func (h *Handler) handleGetPersonalBudget(w http.ResponseWriter, r *http.Request) {
	detail, err := h.budgets.GetPersonalBudgetDetail(r.Context(), r.PathValue("familyID"), r.PathValue("budgetID"), callerID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

type updatePersonalBudgetRequest struct {
	Category        *string  `json:"category"`
	CategoryID      *string  `json:"categoryId"`
	AllocatedAmount *float64 `json:"allocatedAmount"`
	IsActive        *bool    `json:"isActive"`
}

func (h *Handler) handleUpdatePersonalBudget(w http.ResponseWriter, r *http.Request) {
	var req updatePersonalBudgetRequest
	if !decodeBody(w, r, &req) {
		return
	}

	pb, err := h.budgets.UpdatePersonalBudget(r.Context(), r.PathValue("familyID"), r.PathValue("budgetID"), callerID(r), service.UpdatePersonalBudgetInput{
		Category:        req.Category,
		CategoryID:      req.CategoryID,
		AllocatedAmount: req.AllocatedAmount,
		IsActive:        req.IsActive,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pb)
}

func (h *Handler) handleDeletePersonalBudget(w http.ResponseWriter, r *http.Request) {
	if err := h.budgets.DeletePersonalBudget(r.Context(), r.PathValue("familyID"), r.PathValue("budgetID"), callerID(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
