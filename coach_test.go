package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// setupCoachTest creates a Gin engine with a mock chat gateway and returns
// the router and a function to set the mock response. No DB needed — the
// coach endpoint never touches storage.
func setupCoachTest() (*gin.Engine, *httptest.Server, func(int, interface{})) {
	var mockStatus int
	var mockBody interface{}

	mockGateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(mockStatus)
		json.NewEncoder(w).Encode(mockBody)
	}))

	gin.SetMode(gin.TestMode)
	h := Handler{coachBaseURL: mockGateway.URL}
	router := gin.New()
	// Skip auth middleware for tests — set a dummy user_id
	router.POST("/api/coach", func(c *gin.Context) {
		c.Set("user_id", 1)
		c.Next()
	}, h.coachChat)

	setMock := func(status int, body interface{}) {
		mockStatus = status
		mockBody = body
	}

	return router, mockGateway, setMock
}

// doCoachRequest sends a POST to the coach endpoint with the given body.
func doCoachRequest(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/api/coach", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// gatewayChatResponse wraps a content string in the chat completions
// response shape (choices[0].message.content).
func gatewayChatResponse(content string) map[string]interface{} {
	return map[string]interface{}{
		"choices": []map[string]interface{}{
			{
				"message": map[string]interface{}{
					"content": content,
				},
			},
		},
	}
}

func TestCoach_ReplySuccess(t *testing.T) {
	router, mockServer, setMock := setupCoachTest()
	defer mockServer.Close()

	setMock(http.StatusOK, gatewayChatResponse("Start with three full-body sessions per week. "))
	t.Setenv("COACH_API_KEY", "test-key")

	w := doCoachRequest(router, `{"message":"how often should a beginner lift?"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp coachResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	// Reply is trimmed before it goes back to the app.
	if resp.Reply != "Start with three full-body sessions per week." {
		t.Errorf("unexpected reply: %q", resp.Reply)
	}
}

func TestCoach_GatewayError500(t *testing.T) {
	router, mockServer, setMock := setupCoachTest()
	defer mockServer.Close()

	setMock(http.StatusInternalServerError, map[string]string{"error": "server error"})
	t.Setenv("COACH_API_KEY", "test-key")

	w := doCoachRequest(router, `{"message":"help"}`)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["error"] != "coach gateway request failed" {
		t.Errorf("expected error 'coach gateway request failed', got '%s'", resp["error"])
	}
}

func TestCoach_NoChoices(t *testing.T) {
	router, mockServer, setMock := setupCoachTest()
	defer mockServer.Close()

	// A 200 with an empty choices array is still a gateway failure.
	setMock(http.StatusOK, map[string]interface{}{"choices": []interface{}{}})
	t.Setenv("COACH_API_KEY", "test-key")

	w := doCoachRequest(router, `{"message":"help"}`)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCoach_EmptyMessage(t *testing.T) {
	router, mockServer, _ := setupCoachTest()
	defer mockServer.Close()

	w := doCoachRequest(router, `{"message":"   "}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCoach_MissingAPIKey(t *testing.T) {
	router, mockServer, setMock := setupCoachTest()
	defer mockServer.Close()

	setMock(http.StatusOK, gatewayChatResponse("hi"))
	t.Setenv("COACH_API_KEY", "")

	w := doCoachRequest(router, `{"message":"help"}`)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", w.Code, w.Body.String())
	}
}
