package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"campusdocs/files_backend/internal/handler"
	"campusdocs/files_backend/internal/service"
)

func newTestServer() *Server {
	fileHandler := handler.NewFileHandler(service.FileService(nil))
	return NewServer(fileHandler, "*")
}

func TestCORSPreflightRequest(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest("OPTIONS", "/files", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")

	rr := httptest.NewRecorder()
	server.Handler().ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %v, want *", got)
	}

	if rr.Header().Get("Access-Control-Allow-Headers") == "" {
		t.Error("Access-Control-Allow-Headers should not be empty for OPTIONS request")
	}
}

func TestCORSWithActualRequest(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("Origin", "http://example.com")

	rr := httptest.NewRecorder()
	server.Handler().ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %v, want *", got)
	}
}

func TestMethodNotAllowedEnvelope(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest("PATCH", "/files", nil)
	rr := httptest.NewRecorder()
	server.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rr.Code)
	}

	var body struct {
		Successful bool   `json:"successful"`
		Message    string `json:"message"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("405 response is not the JSON envelope: %v", err)
	}
	if body.Successful {
		t.Error("successful should be false")
	}
	if body.Message != "Request method not allowed." {
		t.Errorf("message = %q", body.Message)
	}
}

func TestPing(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest("GET", "/ping", nil)
	rr := httptest.NewRecorder()
	server.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var pong handler.PongResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &pong); err != nil {
		t.Fatal(err)
	}
	if pong.Message != "Pong" {
		t.Errorf("message = %q, want Pong", pong.Message)
	}
}
