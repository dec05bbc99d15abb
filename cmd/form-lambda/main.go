package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/nobug-il/leadgen/cmd/mainconfig"
	appconfig "github.com/nobug-il/leadgen/internal/config"
	"github.com/nobug-il/leadgen/internal/leads"
	"github.com/nobug-il/leadgen/internal/notify"
	"github.com/nobug-il/leadgen/pkg/logging"
)

func main() {
	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	sender, err := mainconfig.BuildEmailSender(context.Background(), cfg, logger)
	if err != nil {
		panic(err)
	}
	if sender == nil {
		logger.Warn("no email provider credential configured, leads will be logged only")
	}

	dispatcher := notify.NewService(sender, notify.Config{
		OwnerEmail: cfg.OwnerEmail,
		ReplyTo:    cfg.ReplyTo,
		Timezone:   cfg.BusinessTimezone,
	}, nil, logger)
	svc := leads.NewService(dispatcher, nil, logger)

	lambda.Start(func(ctx context.Context, evt events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		return handle(ctx, svc, logger, evt)
	})
}

// handle enforces the same contract as the HTTP handler: method guard,
// permissive CORS on every response, one shared validate + dispatch pipeline.
func handle(ctx context.Context, svc *leads.Service, logger *logging.Logger, evt events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	method := evt.RequestContext.HTTP.Method

	if method == http.MethodOptions {
		return events.APIGatewayV2HTTPResponse{
			StatusCode: http.StatusOK,
			Headers:    corsHeaders(""),
			Body:       "",
		}, nil
	}

	if method != http.MethodPost {
		return errorResponse(http.StatusMethodNotAllowed, "Method not allowed"), nil
	}

	body, err := decodeBody(evt)
	if err != nil {
		return errorResponse(leads.ErrorResponse(leads.NewValidationError(leads.KindMalformedRequest, "body is not decodable"))), nil
	}

	var req leads.SubmitRequest
	if err := json.Unmarshal(body, &req); err != nil {
		logger.Error("failed to decode request", "error", err)
		return errorResponse(leads.ErrorResponse(leads.NewValidationError(leads.KindMalformedRequest, "body is not valid JSON"))), nil
	}

	result, err := svc.Submit(ctx, req)
	if err != nil {
		status, msg := leads.ErrorResponse(err)
		if status >= http.StatusInternalServerError {
			logger.Error("dispatch failed", "error", err)
		}
		return errorResponse(status, msg), nil
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return errorResponse(http.StatusInternalServerError, "Failed to send notification"), nil
	}

	return events.APIGatewayV2HTTPResponse{
		StatusCode: http.StatusOK,
		Headers:    corsHeaders("application/json"),
		Body:       string(payload),
	}, nil
}

func decodeBody(evt events.APIGatewayV2HTTPRequest) ([]byte, error) {
	if !evt.IsBase64Encoded {
		return []byte(evt.Body), nil
	}
	return base64.StdEncoding.DecodeString(evt.Body)
}

func corsHeaders(contentType string) map[string]string {
	headers := map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Headers": "Content-Type",
		"Access-Control-Allow-Methods": "POST, OPTIONS",
	}
	if contentType != "" {
		headers["Content-Type"] = contentType
	}
	return headers
}

func errorResponse(status int, message string) events.APIGatewayV2HTTPResponse {
	payload, _ := json.Marshal(map[string]string{"error": message})
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    corsHeaders("application/json"),
		Body:       string(payload),
	}
}
