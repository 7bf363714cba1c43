package http

import (
	"encoding/json"
	"net/http"

	"github.com/expnse/expnse-server/internal/utils"
	"github.com/expnse/expnse-server/models"
)

func (h *Handler) listExpenses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := userIDFromQuery(r)
	if !ok {
		respondBadRequest(w, r, "invalid userId")
		return
	}

	query := r.URL.Query()
	filter := models.ExpenseFilter{
		Category: query.Get("category"),
		From:     query.Get("from"),
		To:       query.Get("to"),
	}

	expenses, err := h.services.ExpenseService.ListExpenses(ctx, userID, filter)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, expenses, http.StatusOK)
}

func (h *Handler) createExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, r, "invalid JSON body")
		return
	}

	if err := h.services.ExpenseService.CreateExpense(ctx, req.UserID, req.Expense); err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) deleteExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := userIDFromQuery(r)
	if !ok {
		respondBadRequest(w, r, "invalid userId")
		return
	}

	expenseID := r.URL.Query().Get("expenseId")
	if expenseID == "" {
		respondBadRequest(w, r, "invalid expenseId")
		return
	}

	if err := h.services.ExpenseService.DeleteExpense(ctx, userID, expenseID); err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
