package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/greenfield-grocer/notifier/internal/api/dto"
	"github.com/greenfield-grocer/notifier/internal/api/respond"
	"github.com/greenfield-grocer/notifier/internal/config"
	"github.com/greenfield-grocer/notifier/internal/model"
	"github.com/greenfield-grocer/notifier/internal/rabbitmq/queue"
	"github.com/greenfield-grocer/notifier/internal/repository/customer"
	"github.com/greenfield-grocer/notifier/internal/repository/notification"
)

// dispatchService covers the synchronous operations the API runs inline.
// Broadcast operations go through the job queue instead.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/dispatch/mock.go -package=mocks
type dispatchService interface {
	SendPaymentReminder(ctx context.Context, customerID uuid.UUID) error
	SendVerificationCode(ctx context.Context, contact, code string) error
	ProcessNotificationQueue(ctx context.Context) error
	RequeueFailed(ctx context.Context, id uuid.UUID) error
	GetNotificationStatus(ctx context.Context, id uuid.UUID) (model.Status, error)
	ListNotifications(ctx context.Context) ([]model.Notification, error)
	ListPendingNotifications(ctx context.Context) ([]model.Notification, error)
}

type jobPublisher interface {
	Publish(job queue.DispatchJob, strategy retry.Strategy) error
}

// Handler handles HTTP requests that trigger notification dispatch and
// inspect the ledger.
type Handler struct {
	service   dispatchService
	publisher jobPublisher
	validator *validator.Validate
	cfg       *config.Config
}

// NewHandler creates a new Handler instance.
func NewHandler(
	s dispatchService,
	p jobPublisher,
	v *validator.Validate,
	cfg *config.Config,
) *Handler {
	return &Handler{service: s, publisher: p, validator: v, cfg: cfg}
}

// OrderConfirmation enqueues an order confirmation dispatch job. Order
// confirmation is fire-and-forget for the caller placing the order.
func (h *Handler) OrderConfirmation(c *ginext.Context) {
	var req dto.OrderConfirmationRequest
	if !h.decode(c, &req) {
		return
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid order_id"))
		return
	}

	job := queue.DispatchJob{Kind: queue.KindOrderConfirmation, OrderID: orderID}
	if err := h.publisher.Publish(job, h.cfg.Retry); err != nil {
		zlog.Logger.Error().Err(err).Str("order_id", req.OrderID).Msg("failed to publish dispatch job")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Accepted(c.Writer, "order confirmation queued")
}

// PaymentReminder runs a payment reminder synchronously so the admin sees
// whether it was delivered.
func (h *Handler) PaymentReminder(c *ginext.Context) {
	var req dto.PaymentReminderRequest
	if !h.decode(c, &req) {
		return
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid customer_id"))
		return
	}

	if err := h.service.SendPaymentReminder(c.Request.Context(), customerID); err != nil {
		if errors.Is(err, customer.ErrCustomerNotFound) {
			zlog.Logger.Warn().Err(err).Str("customer_id", req.CustomerID).Msg("customer not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("customer not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("customer_id", req.CustomerID).Msg("failed to send payment reminder")
		respond.Fail(c.Writer, http.StatusBadGateway, fmt.Errorf("payment reminder failed: %s", err))
		return
	}

	respond.OK(c.Writer, "payment reminder sent")
}

// ProductList enqueues a catalog broadcast job.
func (h *Handler) ProductList(c *ginext.Context) {
	h.enqueueBroadcast(c, queue.KindProductList, "product list queued")
}

// SeasonalPoll enqueues a seasonal poll broadcast job.
func (h *Handler) SeasonalPoll(c *ginext.Context) {
	h.enqueueBroadcast(c, queue.KindSeasonalPoll, "seasonal poll queued")
}

// VerificationCode sends a login verification code synchronously.
func (h *Handler) VerificationCode(c *ginext.Context) {
	var req dto.VerificationCodeRequest
	if !h.decode(c, &req) {
		return
	}

	if err := h.service.SendVerificationCode(c.Request.Context(), req.Contact, req.Code); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to send verification code")
		respond.Fail(c.Writer, http.StatusBadGateway, fmt.Errorf("verification code failed: %s", err))
		return
	}

	respond.OK(c.Writer, "verification code sent")
}

// ProcessQueue drains all pending ledger records now, without waiting for
// the periodic processor.
func (h *Handler) ProcessQueue(c *ginext.Context) {
	if err := h.service.ProcessNotificationQueue(c.Request.Context()); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to process notification queue")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "queue processed")
}

// Requeue resets a failed notification back to pending.
func (h *Handler) Requeue(c *ginext.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Error().Err(err).Interface("idStr", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	if err := h.service.RequeueFailed(c.Request.Context(), id); err != nil {
		if errors.Is(err, notification.ErrNotificationNotFound) {
			zlog.Logger.Warn().Interface("id", id).Err(err).Msg("notification not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
			return
		}

		zlog.Logger.Error().Err(err).Interface("id", id).Msg("failed to requeue notification")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "notification requeued")
}

// GetStatus returns the delivery status of a single ledger record.
func (h *Handler) GetStatus(c *ginext.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Error().Err(err).Interface("idStr", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	status, err := h.service.GetNotificationStatus(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, notification.ErrNotificationNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
			return
		}

		zlog.Logger.Error().Err(err).Interface("id", id).Msg("failed to get notification status")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, map[string]string{"id": id.String(), "status": string(status)})
}

// GetAll returns all ledger records, newest first.
func (h *Handler) GetAll(c *ginext.Context) {
	notifications, err := h.service.ListNotifications(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to get notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, notifications)
}

// GetPending returns pending ledger records, oldest first.
func (h *Handler) GetPending(c *ginext.Context) {
	notifications, err := h.service.ListPendingNotifications(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to get pending notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, notifications)
}

func (h *Handler) enqueueBroadcast(c *ginext.Context, kind, okMessage string) {
	var req dto.BroadcastRequest
	if !h.decode(c, &req) {
		return
	}

	customerIDs := make([]uuid.UUID, 0, len(req.CustomerIDs))
	for _, idStr := range req.CustomerIDs {
		id, err := uuid.Parse(idStr)
		if err != nil {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid customer id %q", idStr))
			return
		}

		customerIDs = append(customerIDs, id)
	}

	job := queue.DispatchJob{Kind: kind, CustomerIDs: customerIDs}
	if err := h.publisher.Publish(job, h.cfg.Retry); err != nil {
		zlog.Logger.Error().Err(err).Str("kind", kind).Msg("failed to publish dispatch job")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Accepted(c.Writer, okMessage)
}

// decode reads and validates a JSON request body. It writes the error
// response itself and reports whether decoding succeeded.
func (h *Handler) decode(c *ginext.Context, req interface{}) bool {
	if err := json.NewDecoder(c.Request.Body).Decode(req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return false
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return false
	}

	return true
}
