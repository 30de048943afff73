package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"jobberBack/internal/models"
	"jobberBack/internal/services"
)

type RecommendHandler struct {
	Service     *services.RecommendService
	PeerService *services.PeerRecommendService
	ErrorLog    *log.Logger
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// RecommendSeekers handles GET /api/recommend-seekers?task_id=ID.
func (h *RecommendHandler) RecommendSeekers(w http.ResponseWriter, r *http.Request) {
	taskIDStr := r.URL.Query().Get("task_id")
	if taskIDStr == "" {
		writeJSONError(w, http.StatusBadRequest, "task_id is required")
		return
	}
	taskID, err := strconv.Atoi(taskIDStr)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "task_id must be a number")
		return
	}

	resp, err := h.Service.RecommendSeekers(r.Context(), taskID)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrTaskNotFound):
			writeJSONError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, models.ErrTaskCategoryMissing):
			writeJSONError(w, http.StatusBadRequest, err.Error())
		default:
			h.ErrorLog.Printf("recommend seekers for task %d: %v", taskID, err)
			writeJSONError(w, http.StatusInternalServerError, "could not compute recommendations")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// GetRecommendations handles GET /api/recommendations/:seekerId.
func (h *RecommendHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	seekerIDStr := r.URL.Query().Get(":seekerId")
	if seekerIDStr == "" {
		writeJSONError(w, http.StatusBadRequest, "seeker id is required")
		return
	}
	seekerID, err := strconv.Atoi(seekerIDStr)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "seeker id must be a number")
		return
	}

	recommendations, err := h.PeerService.GetRecommendations(r.Context(), seekerID)
	if err != nil {
		if errors.Is(err, models.ErrSeekerNotFound) {
			writeJSONError(w, http.StatusNotFound, err.Error())
			return
		}
		h.ErrorLog.Printf("peer recommendations for seeker %d: %v", seekerID, err)
		writeJSONError(w, http.StatusInternalServerError, "could not compute recommendations")
		return
	}
	if recommendations == nil {
		recommendations = []models.PeerRecommendation{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"recommendations": recommendations})
}
