// Package backend is the outbound REST client for the fun2learn API. The
// backend is the system of record for everything the web client shows;
// this package turns its envelope convention into plain Go errors and owns
// the bearer-header construction for authenticated calls.
package backend

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/fun2learn/fun2learn-web/internal/config"
	"github.com/fun2learn/fun2learn-web/internal/dto"
	"github.com/fun2learn/fun2learn-web/internal/middleware"
	"github.com/fun2learn/fun2learn-web/internal/observability"
)

// envelopeCarrier is satisfied by every response type embedding dto.Envelope.
type envelopeCarrier interface {
	IsSuccess() bool
	FailureMessage() string
}

// Client talks to the fun2learn backend. It holds no per-user state; the
// session token is passed per call.
type Client struct {
	http           *resty.Client
	logger         zerolog.Logger
	tracer         trace.Tracer
	maxUploadBytes int64
}

// New constructs a backend client from configuration.
func New(cfg config.Config, logger zerolog.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.BackendBaseURL).
		SetTimeout(cfg.BackendTimeout).
		SetHeader("Accept", "application/json")

	return &Client{
		http:           httpClient,
		logger:         logger.With().Str("component", "backend_client").Logger(),
		tracer:         otel.Tracer("github.com/fun2learn/fun2learn-web/internal/backend"),
		maxUploadBytes: cfg.MaxUploadBytes,
	}
}

// call issues one request and normalizes every failure mode into *Error:
// transport failures, non-2xx statuses with a structured body, and 2xx
// responses whose envelope status is not "success". On success the payload
// has been unmarshalled into result.
func (c *Client) call(ctx context.Context, op, method, path, token string, build func(*resty.Request), result envelopeCarrier, fallback string) error {
	ctx, span := c.tracer.Start(ctx, "backend."+op)
	defer span.End()
	span.SetAttributes(
		attribute.String("http.method", method),
		attribute.String("http.path", path),
	)

	var errBody dto.ErrorBody
	req := c.http.R().
		SetContext(ctx).
		SetResult(result).
		SetError(&errBody)

	if token != "" {
		req.SetAuthToken(token)
	}
	if correlationID := middleware.CorrelationIDFromContext(ctx); correlationID != "" {
		req.SetHeader("X-Correlation-ID", correlationID)
	}
	if build != nil {
		build(req)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		observability.BackendRequests().WithLabelValues(op, "transport_error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport failure")
		c.logger.Error().Err(err).Str("op", op).Str("path", path).Msg("backend request failed")
		return &Error{StatusCode: 0, Message: fallback}
	}

	observability.BackendLatency().WithLabelValues(op).Observe(resp.Time().Seconds())
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode()))

	if resp.IsError() {
		observability.BackendRequests().WithLabelValues(op, "http_error").Inc()
		span.SetStatus(codes.Error, resp.Status())
		message := errBody.Reason()
		if message == "" {
			message = fallback
		}
		return &Error{StatusCode: resp.StatusCode(), Message: message}
	}

	if !result.IsSuccess() {
		observability.BackendRequests().WithLabelValues(op, "domain_error").Inc()
		span.SetStatus(codes.Error, "domain failure")
		message := result.FailureMessage()
		if message == "" {
			message = fallback
		}
		return &Error{StatusCode: resp.StatusCode(), Message: message}
	}

	observability.BackendRequests().WithLabelValues(op, "success").Inc()
	return nil
}

func (c *Client) get(ctx context.Context, op, path, token string, result envelopeCarrier, fallback string) error {
	return c.call(ctx, op, http.MethodGet, path, token, nil, result, fallback)
}

func (c *Client) postJSON(ctx context.Context, op, path, token string, body any, result envelopeCarrier, fallback string) error {
	return c.call(ctx, op, http.MethodPost, path, token, func(r *resty.Request) {
		r.SetHeader("Content-Type", "application/json").SetBody(body)
	}, result, fallback)
}

func (c *Client) putJSON(ctx context.Context, op, path, token string, body any, result envelopeCarrier, fallback string) error {
	return c.call(ctx, op, http.MethodPut, path, token, func(r *resty.Request) {
		r.SetHeader("Content-Type", "application/json").SetBody(body)
	}, result, fallback)
}

func (c *Client) deleteJSON(ctx context.Context, op, path, token string, body any, result envelopeCarrier, fallback string) error {
	return c.call(ctx, op, http.MethodDelete, path, token, func(r *resty.Request) {
		r.SetHeader("Content-Type", "application/json").SetBody(body)
	}, result, fallback)
}
