package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/saishivaaditya/market/internal/config"
	"github.com/saishivaaditya/market/internal/prompt"
)

// Message is one turn of a chat-completion conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client talks to the Groq chat-completions endpoint (OpenAI-compatible
// wire shape). Every failure is returned as an error; masking errors with
// user-facing fallback text is the service layer's decision, not ours.
type Client struct {
	cfg  *config.Config
	http *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.GroqTimeout},
	}
}

// Complete sends a single user-role prompt. With jsonMode the endpoint is
// constrained to strict JSON output.
func (c *Client) Complete(ctx context.Context, prompt string, jsonMode bool) (string, error) {
	body := map[string]any{
		"model":       c.cfg.GroqModel,
		"messages":    []Message{{Role: "user", Content: prompt}},
		"temperature": 0.7,
	}
	if jsonMode {
		body["response_format"] = map[string]string{"type": "json_object"}
	}
	return c.send(ctx, body)
}

// Chat sends a multi-turn conversation with the assistant persona prepended
// as the system message.
func (c *Client) Chat(ctx context.Context, history []Message) (string, error) {
	messages := make([]Message, 0, len(history)+1)
	messages = append(messages, Message{Role: "system", Content: prompt.ChatSystem})
	messages = append(messages, history...)

	body := map[string]any{
		"model":       c.cfg.GroqModel,
		"messages":    messages,
		"temperature": 0.7,
		"max_tokens":  512,
	}
	return c.send(ctx, body)
}

func (c *Client) send(ctx context.Context, body map[string]any) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.GroqURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.GroqAPIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("groq status=%d body=%s", resp.StatusCode, raw)
	}

	// Content is a pointer so an absent field is distinguishable from a
	// present-but-empty one; only the former is a malformed response.
	var parsed struct {
		Choices []struct {
			Message struct {
				Content *string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("empty choices in response")
	}
	content := parsed.Choices[0].Message.Content
	if content == nil {
		return "", fmt.Errorf("missing content field in response")
	}

	return Sanitize(*content), nil
}
