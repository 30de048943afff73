package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const defaultSMSBaseURL = "https://api.mobizon.kz"

// SMSClient sends one-time codes through the Mobizon messaging API.
type SMSClient struct {
	HTTPClient *http.Client
	APIKey     string
	BaseURL    string
}

func (c *SMSClient) Send(phone, message string) error {
	base := c.BaseURL
	if base == "" {
		base = defaultSMSBaseURL
	}
	endpoint := base + "/service/message/sendsmsmessage"

	data := url.Values{}
	data.Set("apiKey", c.APIKey)
	data.Set("recipient", phone)
	data.Set("text", message)

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.PostForm(endpoint, data)
	if err != nil {
		return fmt.Errorf("send sms request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read sms response: %v", err)
	}

	var result struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("parse sms response: %v", err)
	}
	if result.Code != 0 {
		return fmt.Errorf("mobizon error: %s (code %d)", result.Message, result.Code)
	}
	return nil
}
