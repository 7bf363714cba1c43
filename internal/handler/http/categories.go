package http

import (
	"encoding/json"
	"net/http"

	"github.com/expnse/expnse-server/internal/utils"
	"github.com/expnse/expnse-server/models"
)

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := userIDFromQuery(r)
	if !ok {
		respondBadRequest(w, r, "invalid userId")
		return
	}

	categories, err := h.services.CategoryService.ListCategories(ctx, userID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, categories, http.StatusOK)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, r, "invalid JSON body")
		return
	}

	if err := h.services.CategoryService.CreateCategory(ctx, req.UserID, req.Category); err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := userIDFromQuery(r)
	if !ok {
		respondBadRequest(w, r, "invalid userId")
		return
	}

	categoryID := r.URL.Query().Get("categoryId")
	if categoryID == "" {
		respondBadRequest(w, r, "invalid categoryId")
		return
	}

	if err := h.services.CategoryService.DeleteCategory(ctx, userID, categoryID); err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
