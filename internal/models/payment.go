package models

import "time"

const (
	PaymentTypeCash = "Cash Payment"
	PaymentTypeBank = "Bank Transfer"
)

type PaymentSession struct {
	InvoiceID  string  `json:"invoice_id"`
	OrderID    string  `json:"order_id"`
	PaymentURL string  `json:"payment_url"`
	Amount     float64 `json:"amount"`
	Status     string  `json:"status"`
}

type PaymentRecord struct {
	ID        int       `json:"id"`
	HireID    int       `json:"hire_id"`
	InvoiceID string    `json:"invoice_id"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
