package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"jobberBack/internal/models"
	"jobberBack/internal/services"
)

type PaymentHandler struct {
	Service *services.PaymentService
}

func (h *PaymentHandler) StartPayment(w http.ResponseWriter, r *http.Request) {
	var body struct {
		HireID int     `json:"hire_id"`
		Amount float64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if body.Amount <= 0 {
		http.Error(w, "Amount must be positive", http.StatusBadRequest)
		return
	}

	session, err := h.Service.StartPayment(r.Context(), body.HireID, body.Amount)
	if err != nil {
		if errors.Is(err, models.ErrHireRequestNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(session)
}

func (h *PaymentHandler) CapturePayment(w http.ResponseWriter, r *http.Request) {
	var body struct {
		InvoiceID string `json:"invoice_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if body.InvoiceID == "" {
		http.Error(w, "invoice_id is required", http.StatusBadRequest)
		return
	}

	if err := h.Service.CapturePayment(r.Context(), body.InvoiceID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "captured"})
}
