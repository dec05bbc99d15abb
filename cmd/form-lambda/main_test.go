package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"

	"github.com/nobug-il/leadgen/internal/leads"
	"github.com/nobug-il/leadgen/pkg/logging"
)

type recordingDispatcher struct {
	leads   []*leads.Lead
	err     error
	logOnly bool
}

func (r *recordingDispatcher) NotifyNewLead(ctx context.Context, lead *leads.Lead) error {
	r.leads = append(r.leads, lead)
	return r.err
}

func (r *recordingDispatcher) LogOnly() bool { return r.logOnly }

func newEvent(method, body string, base64Encoded bool) events.APIGatewayV2HTTPRequest {
	evt := events.APIGatewayV2HTTPRequest{
		Body:            body,
		IsBase64Encoded: base64Encoded,
	}
	evt.RequestContext.HTTP.Method = method
	return evt
}

func invoke(t *testing.T, dispatcher leads.Dispatcher, evt events.APIGatewayV2HTTPRequest) events.APIGatewayV2HTTPResponse {
	t.Helper()
	logger := logging.Default()
	svc := leads.NewService(dispatcher, nil, logger)
	resp, err := handle(context.Background(), svc, logger, evt)
	if err != nil {
		t.Fatalf("handle returned transport error: %v", err)
	}
	return resp
}

func errorMessage(t *testing.T, resp events.APIGatewayV2HTTPResponse) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal([]byte(resp.Body), &body); err != nil {
		t.Fatalf("decode error body %q: %v", resp.Body, err)
	}
	return body.Error
}

func TestHandle_Options(t *testing.T) {
	resp := invoke(t, &recordingDispatcher{}, newEvent(http.MethodOptions, "", false))

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if resp.Body != "" {
		t.Errorf("expected empty preflight body, got %q", resp.Body)
	}
	if resp.Headers["Access-Control-Allow-Origin"] != "*" {
		t.Error("expected wildcard CORS header")
	}
}

func TestHandle_MethodNotAllowed(t *testing.T) {
	resp := invoke(t, &recordingDispatcher{}, newEvent(http.MethodGet, "", false))

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", resp.StatusCode)
	}
	if got := errorMessage(t, resp); got != "Method not allowed" {
		t.Errorf("unexpected error %q", got)
	}
}

func TestHandle_Success(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	body := `{"name":"שרה","phone":"0501234567","city":"תל אביב-יפו"}`
	resp := invoke(t, dispatcher, newEvent(http.MethodPost, body, false))

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, resp.Body)
	}

	var result leads.SubmitResult
	if err := json.Unmarshal([]byte(resp.Body), &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if !result.Success {
		t.Error("expected success result")
	}
	if len(dispatcher.leads) != 1 {
		t.Errorf("expected one dispatch, got %d", len(dispatcher.leads))
	}
	if resp.Headers["Access-Control-Allow-Origin"] != "*" {
		t.Error("expected wildcard CORS header")
	}
}

func TestHandle_Base64Body(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	body := base64.StdEncoding.EncodeToString([]byte(`{"name":"דוד","phone":"0501234567","city":"חיפה"}`))
	resp := invoke(t, dispatcher, newEvent(http.MethodPost, body, true))

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, resp.Body)
	}
	if len(dispatcher.leads) != 1 {
		t.Errorf("expected one dispatch, got %d", len(dispatcher.leads))
	}
}

func TestHandle_MalformedBody(t *testing.T) {
	resp := invoke(t, &recordingDispatcher{}, newEvent(http.MethodPost, "{", false))

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if got := errorMessage(t, resp); got != "Invalid request body" {
		t.Errorf("unexpected error %q", got)
	}
}

func TestHandle_InvalidPhone(t *testing.T) {
	body := `{"name":"דוד","phone":"123","city":"חיפה"}`
	resp := invoke(t, &recordingDispatcher{}, newEvent(http.MethodPost, body, false))

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if got := errorMessage(t, resp); got != "Invalid phone number format" {
		t.Errorf("unexpected error %q", got)
	}
}

func TestHandle_MissingFields(t *testing.T) {
	body := `{"name":"","phone":"0501234567","city":"חיפה"}`
	resp := invoke(t, &recordingDispatcher{}, newEvent(http.MethodPost, body, false))

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if got := errorMessage(t, resp); got != "Missing required fields" {
		t.Errorf("unexpected error %q", got)
	}
}

func TestHandle_DispatchFailure(t *testing.T) {
	dispatcher := &recordingDispatcher{err: errors.New("provider down")}
	body := `{"name":"דוד","phone":"0501234567","city":"חיפה"}`
	resp := invoke(t, dispatcher, newEvent(http.MethodPost, body, false))

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	if got := errorMessage(t, resp); got != "Failed to send notification" {
		t.Errorf("unexpected error %q", got)
	}
}

func TestHandle_FallbackMessage(t *testing.T) {
	dispatcher := &recordingDispatcher{logOnly: true}
	body := `{"name":"שרה","phone":"0501234567","city":"תל אביב-יפו","email":"sara@example.com"}`
	resp := invoke(t, dispatcher, newEvent(http.MethodPost, body, false))

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result leads.SubmitResult
	if err := json.Unmarshal([]byte(resp.Body), &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.Message == "" {
		t.Error("expected fallback message in log-only mode")
	}
}
