package dispatch

import (
	"context"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/greenfield-grocer/notifier/internal/rabbitmq/queue"
	"github.com/greenfield-grocer/notifier/internal/service/dispatch"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/dispatch/mock.go -package=mocks
type dispatchService interface {
	SendOrderConfirmation(ctx context.Context, orderID uuid.UUID) ([]dispatch.DeliveryResult, error)
	SendPaymentReminder(ctx context.Context, customerID uuid.UUID) error
	SendProductList(ctx context.Context, customerIDs []uuid.UUID) ([]dispatch.DeliveryResult, error)
	SendSeasonalItemsPoll(ctx context.Context, customerIDs []uuid.UUID) ([]dispatch.DeliveryResult, error)
}

// Handler runs a queued dispatch job against the orchestrator. Errors are
// logged and never propagated: the queue path runs unattended.
type Handler struct {
	service dispatchService
}

func NewHandler(svc dispatchService) *Handler {
	return &Handler{
		service: svc,
	}
}

func (h *Handler) HandleJob(ctx context.Context, job queue.DispatchJob) {
	zlog.Logger.Info().Str("kind", job.Kind).Msg("handling dispatch job")

	switch job.Kind {
	case queue.KindOrderConfirmation:
		results, err := h.service.SendOrderConfirmation(ctx, job.OrderID)
		h.logOutcome(job, results, err)

	case queue.KindPaymentReminder:
		err := h.service.SendPaymentReminder(ctx, job.CustomerID)
		h.logOutcome(job, nil, err)

	case queue.KindProductList:
		results, err := h.service.SendProductList(ctx, job.CustomerIDs)
		h.logOutcome(job, results, err)

	case queue.KindSeasonalPoll:
		results, err := h.service.SendSeasonalItemsPoll(ctx, job.CustomerIDs)
		h.logOutcome(job, results, err)

	default:
		zlog.Logger.Warn().Str("kind", job.Kind).Msg("unknown dispatch job kind, dropping")
	}
}

func (h *Handler) logOutcome(job queue.DispatchJob, results []dispatch.DeliveryResult, err error) {
	if err != nil {
		zlog.Logger.Error().Err(err).Str("kind", job.Kind).Msg("dispatch job failed")
		return
	}

	var failed int
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}

	zlog.Logger.Info().
		Str("kind", job.Kind).
		Int("deliveries", len(results)).
		Int("failed", failed).
		Msg("dispatch job done")
}
