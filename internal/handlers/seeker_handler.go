package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"jobberBack/internal/models"
	"jobberBack/internal/services"
)

type SeekerHandler struct {
	Service *services.SeekerService
}

func (h *SeekerHandler) CreateSeeker(w http.ResponseWriter, r *http.Request) {
	var seeker models.Seeker
	if err := json.NewDecoder(r.Body).Decode(&seeker); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	createdSeeker, err := h.Service.CreateSeeker(r.Context(), seeker)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(createdSeeker)
}

func (h *SeekerHandler) GetSeekerByID(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid seeker ID", http.StatusBadRequest)
		return
	}

	seeker, err := h.Service.GetSeekerByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrSeekerNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(seeker)
}

func (h *SeekerHandler) UpdateSeeker(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid seeker ID", http.StatusBadRequest)
		return
	}

	var seeker models.Seeker
	if err := json.NewDecoder(r.Body).Decode(&seeker); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	seeker.ID = id

	updatedSeeker, err := h.Service.UpdateSeeker(r.Context(), seeker)
	if err != nil {
		if errors.Is(err, models.ErrSeekerNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updatedSeeker)
}

func (h *SeekerHandler) SetSeekerActive(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid seeker ID", http.StatusBadRequest)
		return
	}

	var body struct {
		Active bool `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Service.SetSeekerActive(r.Context(), id, body.Active); err != nil {
		if errors.Is(err, models.ErrSeekerNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *SeekerHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid seeker ID", http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("photo")
	if err != nil {
		http.Error(w, "Missing photo file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "Could not read photo", http.StatusBadRequest)
		return
	}
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	photoURL, err := h.Service.UploadPhoto(r.Context(), id, data, contentType)
	if err != nil {
		if errors.Is(err, models.ErrSeekerNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"photo_url": photoURL})
}
