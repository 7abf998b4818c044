package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"vidgram/internal/infrastructure/monitoring"
	"vidgram/pkg/errors"
	"vidgram/pkg/logger"
	"vidgram/pkg/tracing"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Client wraps outbound HTTP calls to the video backend. All paths are
// relative to the configured base URL. Errors are normalized into
// *errors.RequestError so callers can surface Message directly.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	uploadClient *http.Client
	logger       *logger.ContextLogger
	metrics      *monitoring.APIMetrics
}

// NewClient creates an API client. metrics may be nil.
func NewClient(baseURL string, requestTimeout, uploadTimeout time.Duration, zapLogger *zap.Logger, metrics *monitoring.APIMetrics) *Client {
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpClient:   &http.Client{Timeout: requestTimeout},
		uploadClient: &http.Client{Timeout: uploadTimeout},
		logger:       logger.NewContextLogger(zapLogger),
		metrics:      metrics,
	}
}

// errorBody is the backend's error response shape.
type errorBody struct {
	Error string `json:"error"`
}

// do issues one JSON request and returns the raw response body. body may be
// nil. token is attached as a bearer credential only when non-empty.
func (c *Client) do(ctx context.Context, operation, method, path string, body interface{}, token string) (json.RawMessage, error) {
	ctx, span := tracing.TraceAPIRequest(ctx, method, path)
	defer span.End()

	start := time.Now()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, errors.NewTransportError(err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, errors.NewTransportError(err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)
	tracing.AddSpanAttributes(ctx, tracing.RequestIDKey.String(requestID))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		tracing.RecordError(ctx, err)
		c.metrics.ObserveFailure(operation, string(errors.KindTransport))
		c.logger.LogError(ctx, err, "request transport failure", zap.String("operation", operation))
		return nil, errors.NewTransportError(err)
	}
	defer resp.Body.Close()

	return c.consume(ctx, operation, resp, start)
}

// consume normalizes a response into either its raw JSON body or a
// RequestError, recording metrics and the request log line either way.
func (c *Client) consume(ctx context.Context, operation string, resp *http.Response, start time.Time) (json.RawMessage, error) {
	duration := time.Since(start)
	tracing.AddSpanAttributes(ctx, tracing.StatusKey.Int(resp.StatusCode))
	c.logger.LogRequest(ctx, resp.Request.Method, resp.Request.URL.Path, resp.StatusCode, duration.Milliseconds())
	c.metrics.ObserveRequest(operation, resp.Status, duration)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		tracing.RecordError(ctx, err)
		c.metrics.ObserveFailure(operation, string(errors.KindTransport))
		return nil, errors.NewTransportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		serverMessage := ""
		if err := json.Unmarshal(data, &eb); err == nil {
			serverMessage = eb.Error
		}
		reqErr := errors.NewHTTPStatusError(resp.StatusCode, serverMessage)
		tracing.RecordError(ctx, reqErr)
		c.metrics.ObserveFailure(operation, string(errors.KindHTTPStatus))
		c.logger.LogError(ctx, reqErr, "request rejected by server", zap.String("operation", operation))
		return nil, reqErr
	}

	if !json.Valid(data) {
		reqErr := errors.NewMalformedResponseError(nil)
		tracing.RecordError(ctx, reqErr)
		c.metrics.ObserveFailure(operation, string(errors.KindMalformedResponse))
		c.logger.LogError(ctx, reqErr, "undecodable response body", zap.String("operation", operation))
		return nil, reqErr
	}

	return data, nil
}

// decode unmarshals a raw body into out, mapping decode failures to the
// fixed malformed-response error.
func decode(raw json.RawMessage, out interface{}) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.NewMalformedResponseError(err)
	}
	return nil
}
