package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPaymentClientCreateCheckout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/invoices" {
			t.Errorf("path = %q; want /invoices", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer pay-key" {
			t.Errorf("authorization = %q", got)
		}

		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if payload["order_id"] == "" {
			t.Error("order_id must be generated")
		}
		if payload["amount"] != 2500.0 {
			t.Errorf("amount = %v; want 2500", payload["amount"])
		}

		json.NewEncoder(w).Encode(map[string]string{
			"invoice_id":  "inv-42",
			"payment_url": "https://pay.example/inv-42",
			"status":      "pending",
		})
	}))
	defer srv.Close()

	client := &PaymentClient{BaseURL: srv.URL, APIKey: "pay-key"}
	session, err := client.CreateCheckout(context.Background(), 2500, "Hire request #7")
	if err != nil {
		t.Fatalf("CreateCheckout: %v", err)
	}

	if session.InvoiceID != "inv-42" {
		t.Errorf("invoice id = %q", session.InvoiceID)
	}
	if session.PaymentURL != "https://pay.example/inv-42" {
		t.Errorf("payment url = %q", session.PaymentURL)
	}
	if session.OrderID == "" {
		t.Error("order id must carry the generated value")
	}
	if session.Amount != 2500 || session.Status != "pending" {
		t.Errorf("session = %+v", session)
	}
}

func TestPaymentClientCapture(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/invoices/inv-42/capture" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]string{"status": "captured"})
	}))
	defer srv.Close()

	client := &PaymentClient{BaseURL: srv.URL, APIKey: "pay-key"}
	status, err := client.Capture(context.Background(), "inv-42")
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if status != "captured" {
		t.Errorf("status = %q; want captured", status)
	}
}

func TestPaymentClientGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"card declined"}`, http.StatusPaymentRequired)
	}))
	defer srv.Close()

	client := &PaymentClient{BaseURL: srv.URL, APIKey: "pay-key"}
	if _, err := client.CreateCheckout(context.Background(), 100, "x"); err == nil {
		t.Fatal("expected an error for a non-2xx gateway response")
	}
}
