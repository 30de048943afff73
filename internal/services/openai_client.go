package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultOpenAIBaseURL  = "https://api.openai.com/v1"
	defaultEmbeddingModel = "text-embedding-3-small"
	defaultChatModel      = "gpt-4o-mini"
)

type OpenAIClient struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

func NewOpenAIClient(httpClient *http.Client, apiKey string) *OpenAIClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &OpenAIClient{
		httpClient: httpClient,
		apiKey:     apiKey,
		baseURL:    defaultOpenAIBaseURL,
	}
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type ChatCompletionResponse struct {
	Content string `json:"content"`
}

func (c *OpenAIClient) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	if c == nil {
		return errors.New("openai client is not configured")
	}
	if strings.TrimSpace(c.apiKey) == "" {
		return errors.New("openai api key is empty")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s%s", strings.TrimRight(c.baseURL, "/"), path)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("openai error: status %d: %s", resp.StatusCode, string(data))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *OpenAIClient) Complete(ctx context.Context, req ChatCompletionRequest) (ChatCompletionResponse, error) {
	if req.Model == "" {
		req.Model = defaultChatModel
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := c.post(ctx, "/chat/completions", req, &parsed); err != nil {
		return ChatCompletionResponse{}, err
	}
	if len(parsed.Choices) == 0 {
		return ChatCompletionResponse{}, errors.New("openai returned no choices")
	}

	return ChatCompletionResponse{Content: parsed.Choices[0].Message.Content}, nil
}

// Embed converts text into an embedding vector. Empty input yields a nil
// vector without calling the API.
func (c *OpenAIClient) Embed(ctx context.Context, text string) ([]float64, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	payload := map[string]interface{}{
		"model": defaultEmbeddingModel,
		"input": text,
	}

	var parsed struct {
		Data []struct {
			Embedding []float64 `json:"embedding"`
		} `json:"data"`
	}
	if err := c.post(ctx, "/embeddings", payload, &parsed); err != nil {
		return nil, err
	}
	if len(parsed.Data) == 0 {
		return nil, errors.New("openai returned no embedding")
	}

	return parsed.Data[0].Embedding, nil
}
