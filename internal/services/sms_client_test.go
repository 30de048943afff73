package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSMSClientSend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/service/message/sendsmsmessage" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if got := r.Form.Get("recipient"); got != "+77001234567" {
			t.Errorf("recipient = %q", got)
		}
		if got := r.Form.Get("apiKey"); got != "sms-key" {
			t.Errorf("apiKey = %q", got)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"code": 0})
	}))
	defer srv.Close()

	client := &SMSClient{APIKey: "sms-key", BaseURL: srv.URL}
	if err := client.Send("+77001234567", "Your code is 123456"); err != nil {
		t.Fatalf("Send: %v", err)
	}
}

func TestSMSClientSendAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"code": 7, "message": "invalid recipient"})
	}))
	defer srv.Close()

	client := &SMSClient{APIKey: "sms-key", BaseURL: srv.URL}
	if err := client.Send("bad", "hello"); err == nil {
		t.Fatal("expected an error for a non-zero response code")
	}
}
