package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"jobberBack/internal/models"
	"jobberBack/internal/services"
)

type SubcategoryHandler struct {
	Service *services.SubcategoryService
}

func (h *SubcategoryHandler) CreateSubcategory(w http.ResponseWriter, r *http.Request) {
	var sub models.Subcategory
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	createdSub, err := h.Service.CreateSubcategory(r.Context(), sub)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(createdSub)
}

func (h *SubcategoryHandler) GetAllSubcategories(w http.ResponseWriter, r *http.Request) {
	subs, err := h.Service.GetAllSubcategories(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(subs)
}

func (h *SubcategoryHandler) GetSubcategoriesByCategory(w http.ResponseWriter, r *http.Request) {
	categoryIDStr := r.URL.Query().Get(":category_id")
	categoryID, err := strconv.Atoi(categoryIDStr)
	if err != nil {
		http.Error(w, "Invalid category ID", http.StatusBadRequest)
		return
	}

	subs, err := h.Service.GetSubcategoriesByCategory(r.Context(), categoryID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(subs)
}

func (h *SubcategoryHandler) DeleteSubcategory(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid subcategory ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteSubcategory(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrSubcategoryNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
