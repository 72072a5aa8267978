// Package handler contains the Pub/Sub push handlers served by the worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"

	"bloodlink/config"
	deliverycontext "bloodlink/internal/delivery/context"
	"bloodlink/internal/domain/constants"
	"bloodlink/internal/domain/entity"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/domain/service"
	"bloodlink/internal/util"
)

// Outcomes recorded on bloodlink_donation_events_processed_total.
const (
	OutcomeProcessed = "processed"
	OutcomeSkipped   = "skipped"
	OutcomeInvalid   = "invalid"
	OutcomeRetry     = "retry"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError marks failures that should be redelivered by Pub/Sub.
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// EventMetrics counts handled events.
type EventMetrics interface {
	RecordDonationEvent(outcome string)
}

// TokenVerifier validates the OIDC token Google attaches to push requests.
type TokenVerifier func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler consumes donation events and builds the donor reminder roster.
type PushHandler struct {
	verifyPushAuth bool
	verifyToken    TokenVerifier
	logger         *slog.Logger
	donationRepo   repository.DonationRepository
	metrics        EventMetrics
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config       *config.Config
	Logger       *slog.Logger
	DonationRepo repository.DonationRepository
	Metrics      EventMetrics
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only real Google deliveries carry a signed token.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvLocal &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		verifyToken:    idtoken.Validate,
		logger:         params.Logger,
		donationRepo:   params.DonationRepo,
		metrics:        params.Metrics,
	}
}

// HandlePush acknowledges with 200 unless the failure is retryable (503).
// Undecodable messages get 400 so Pub/Sub dead-letters them.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	event, pushMsg, err := decodePush(c)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode push message", slog.Any("error", err))
		h.metrics.RecordDonationEvent(OutcomeInvalid)

		return c.NoContent(http.StatusBadRequest)
	}

	// Priority: message attributes > event field > X-Request-Id header > new id.
	requestID := extractRequestID(ctx, pushMsg, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	outcome, err := h.processEvent(ctx, event)
	h.metrics.RecordDonationEvent(outcome)
	if err != nil {
		reqLogger.Error("[Worker] Failed to process donation event",
			slog.String("donation_id", event.DonationID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}
	}

	return c.NoContent(http.StatusOK)
}

func decodePush(c echo.Context) (*service.DonationEvent, *PubSubMessage, error) {
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		return nil, nil, errors.WithStack(err)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		return nil, nil, errors.Wrap(err, "decode message data")
	}

	var event service.DonationEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, nil, errors.Wrap(err, "parse donation event")
	}

	return &event, &pushMsg, nil
}

func extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.DonationEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

// processEvent re-reads the donation so reminders follow the stored state, not the
// possibly stale event payload.
func (h *PushHandler) processEvent(ctx context.Context, event *service.DonationEvent) (string, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if event.Type != service.EventTypeDonationScheduled {
		logger.Info("[Worker] Ignoring event", slog.String("type", event.Type))

		return OutcomeSkipped, nil
	}

	donationID, err := uuid.Parse(event.DonationID)
	if err != nil {
		return OutcomeInvalid, errors.Wrap(err, "parse donation id")
	}

	donation, err := h.donationRepo.FindByID(ctx, donationID)
	if err != nil {
		if errors.Is(err, repository.ErrDonationNotFound) {
			return OutcomeInvalid, errors.Wrap(err, "donation vanished")
		}

		return OutcomeRetry, newRetryableError(errors.WithStack(err))
	}

	if donation.Status != entity.DonationStatusPending {
		logger.Info("[Worker] Donation no longer pending",
			slog.String("donation_id", donation.ID.String()),
			slog.String("status", donation.Status.String()),
		)

		return OutcomeSkipped, nil
	}

	logger.Info("[Worker] Donation reminder scheduled",
		slog.String("donation_id", donation.ID.String()),
		slog.String("user_id", donation.UserID.String()),
		slog.String("donation_date", util.FormatDate(donation.DonationDate)),
		slog.String("remind_on", util.FormatDate(donation.DonationDate.AddDate(0, 0, -1))),
		slog.String("blood_type", donation.BloodType.String()),
	)

	return OutcomeProcessed, nil
}

// verifyPubSubToken checks the Google-signed OIDC token on a push request.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return errors.New("invalid authorization header format")
	}

	// The audience is this endpoint's own URL.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.verifyToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
