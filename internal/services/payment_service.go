package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"jobberBack/internal/models"
	"jobberBack/internal/repositories"
)

// PaymentClient creates and captures checkout sessions against the external
// payment gateway.
type PaymentClient struct {
	HTTPClient *http.Client
	BaseURL    string
	APIKey     string
}

func (c *PaymentClient) do(ctx context.Context, path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	client := c.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("payment gateway error: status %d: %s", resp.StatusCode, string(data))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// CreateCheckout opens a payment session for amount and returns the gateway
// invoice with its redirect URL.
func (c *PaymentClient) CreateCheckout(ctx context.Context, amount float64, description string) (models.PaymentSession, error) {
	orderID := uuid.New().String()
	payload := map[string]interface{}{
		"order_id":    orderID,
		"amount":      amount,
		"description": description,
	}

	var parsed struct {
		InvoiceID  string `json:"invoice_id"`
		PaymentURL string `json:"payment_url"`
		Status     string `json:"status"`
	}
	if err := c.do(ctx, "/invoices", payload, &parsed); err != nil {
		return models.PaymentSession{}, err
	}

	return models.PaymentSession{
		InvoiceID:  parsed.InvoiceID,
		OrderID:    orderID,
		PaymentURL: parsed.PaymentURL,
		Amount:     amount,
		Status:     parsed.Status,
	}, nil
}

func (c *PaymentClient) Capture(ctx context.Context, invoiceID string) (string, error) {
	var parsed struct {
		Status string `json:"status"`
	}
	err := c.do(ctx, fmt.Sprintf("/invoices/%s/capture", invoiceID), map[string]interface{}{}, &parsed)
	if err != nil {
		return "", err
	}
	return parsed.Status, nil
}

type PaymentService struct {
	HireRepo *repositories.HireRepository
	Gateway  *PaymentClient
}

// StartPayment opens a checkout session for an accepted hire request and
// records the pending payment.
func (s *PaymentService) StartPayment(ctx context.Context, hireID int, amount float64) (models.PaymentSession, error) {
	hire, err := s.HireRepo.GetHireRequestByID(ctx, hireID)
	if err != nil {
		return models.PaymentSession{}, err
	}

	session, err := s.Gateway.CreateCheckout(ctx, amount, fmt.Sprintf("Hire request #%d", hire.ID))
	if err != nil {
		return models.PaymentSession{}, err
	}

	_, err = s.HireRepo.SavePayment(ctx, models.PaymentRecord{
		HireID:    hire.ID,
		InvoiceID: session.InvoiceID,
		Amount:    amount,
		Status:    "pending",
	})
	if err != nil {
		return models.PaymentSession{}, err
	}
	return session, nil
}

func (s *PaymentService) CapturePayment(ctx context.Context, invoiceID string) error {
	status, err := s.Gateway.Capture(ctx, invoiceID)
	if err != nil {
		return err
	}
	return s.HireRepo.UpdatePaymentStatus(ctx, invoiceID, status)
}
