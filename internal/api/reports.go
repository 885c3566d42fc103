package api

import "net/http"

func (h *Handler) handleGetSpendingLimits(w http.ResponseWriter, r *http.Request) {
	limits, err := h.budgets.GetSpendingLimits(r.Context(), r.PathValue("familyID"), callerID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"limits": limits})
}

func (h *Handler) handleGetReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.budgets.GenerateBudgetReport(r.Context(), r.PathValue("familyID"), callerID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
