package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

/* ─── Request / Response types ───────────────────────────────────────── */

// coachRequest is the request body for POST /api/coach.
type coachRequest struct {
	Message string `json:"message"`
}

// coachResponse wraps the free-text reply from the gateway.
type coachResponse struct {
	Reply string `json:"reply"`
}

// coachSystemPrompt sets the coach persona. Markdown is banned because the
// app renders replies as plain text in chat bubbles.
const coachSystemPrompt = `You are an elite Sports Performance Coach inside a fitness app. You are encouraging, scientific, and direct. You help users with workout plans, diet advice, and injury prevention. Do not use markdown symbols like ** or #. Keep answers concise and actionable.`

/* ─── Chat gateway HTTP client ───────────────────────────────────────── */

// chatMessage is a single message in the gateway's chat completions request.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatGatewayRequest is the request body for the chat completions endpoint.
type chatGatewayRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

// callChatGateway sends a chat completions request and returns the raw content
// string from the first choice. The gateway is an opaque text-completion
// service — anything OpenAI-compatible works. Uses raw net/http to avoid
// pulling in a vendor SDK.
func callChatGateway(ctx context.Context, messages []chatMessage, baseURL string) (string, error) {
	apiKey := os.Getenv("COACH_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("COACH_API_KEY not set")
	}

	reqBody := chatGatewayRequest{
		Model:       "gpt-4o-mini",
		Messages:    messages,
		Temperature: 0.7,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", baseURL+"/v1/chat/completions", bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gateway returned status %d: %s", resp.StatusCode, string(respBytes))
	}

	// Parse the response to extract choices[0].message.content
	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBytes, &result); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return result.Choices[0].Message.Content, nil
}

/* ─── Handler ────────────────────────────────────────────────────────── */

// coachChat handles POST /api/coach: forwards the user's message to the chat
// gateway with the coach persona and returns the free-text reply. The core
// has no opinion on what the gateway says — it is display text either way.
func (h *Handler) coachChat(c *gin.Context) {
	var req coachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		apiError(c, http.StatusBadRequest, "message is required")
		return
	}

	messages := []chatMessage{
		{Role: "system", Content: coachSystemPrompt},
		{Role: "user", Content: req.Message},
	}

	content, err := callChatGateway(c.Request.Context(), messages, h.coachBaseURL)
	if err != nil {
		log.Printf("[coach] gateway error: %v", err)
		apiError(c, http.StatusBadGateway, "coach gateway request failed")
		return
	}

	c.JSON(http.StatusOK, coachResponse{Reply: strings.TrimSpace(content)})
}
