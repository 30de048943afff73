package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"jobberBack/internal/models"
	"jobberBack/internal/repositories"
	"jobberBack/internal/services"
)

type HireHandler struct {
	Service *services.HireService
}

func (h *HireHandler) CreateHireRequest(w http.ResponseWriter, r *http.Request) {
	var hire models.HireRequest
	if err := json.NewDecoder(r.Body).Decode(&hire); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	createdHire, err := h.Service.CreateHireRequest(r.Context(), hire)
	if err != nil {
		if repositories.IsForeignKeyViolation(err) {
			http.Error(w, "Unknown task, seeker or user", http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(createdHire)
}

func (h *HireHandler) GetHireRequestByID(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid hire request ID", http.StatusBadRequest)
		return
	}

	hire, err := h.Service.GetHireRequestByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrHireRequestNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(hire)
}

func (h *HireHandler) ListHireRequestsByUser(w http.ResponseWriter, r *http.Request) {
	userIDStr := r.URL.Query().Get(":user_id")
	userID, err := strconv.Atoi(userIDStr)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	hires, err := h.Service.ListHireRequestsByUser(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(hires)
}

func (h *HireHandler) respond(w http.ResponseWriter, r *http.Request, respond func(int) (models.HireRequest, error)) {
	idStr := r.URL.Query().Get(":id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid hire request ID", http.StatusBadRequest)
		return
	}

	hire, err := respond(id)
	if err != nil {
		if errors.Is(err, models.ErrHireRequestNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(hire)
}

func (h *HireHandler) AcceptHireRequest(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, func(id int) (models.HireRequest, error) {
		return h.Service.AcceptHireRequest(r.Context(), id)
	})
}

func (h *HireHandler) DeclineHireRequest(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, func(id int) (models.HireRequest, error) {
		return h.Service.DeclineHireRequest(r.Context(), id)
	})
}
