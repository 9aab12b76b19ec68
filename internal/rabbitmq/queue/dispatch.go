package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/greenfield-grocer/notifier/internal/config"
)

// Dispatch job kinds. Each maps to one orchestrator operation.
const (
	KindOrderConfirmation = "order_confirmation"
	KindPaymentReminder   = "payment_reminder"
	KindProductList       = "product_list"
	KindSeasonalPoll      = "seasonal_poll"
)

// DispatchJob asks the worker to run one dispatch operation. Which ID
// fields are set depends on Kind.
type DispatchJob struct {
	Kind        string      `json:"kind"`
	OrderID     uuid.UUID   `json:"order_id,omitempty"`
	CustomerID  uuid.UUID   `json:"customer_id,omitempty"`
	CustomerIDs []uuid.UUID `json:"customer_ids,omitempty"`
}

// DispatchQueue wraps the RabbitMQ publisher and consumer for dispatch jobs.
type DispatchQueue struct {
	Publisher *rabbitmq.Publisher
	Consumer  *rabbitmq.Consumer

	routingKey string
}

// NewDispatchQueue declares the exchange, main queue, retry queue and DLQ,
// and binds the main queue to the exchange.
func NewDispatchQueue(ch *rabbitmq.Channel, cfg *config.Config) (*DispatchQueue, error) {
	exchange := rabbitmq.NewExchange(cfg.RabbitMQ.Exchange, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	_, err := qm.DeclareQueue(cfg.RabbitMQ.DLQ, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	retryArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": cfg.RabbitMQ.Queue,
		"x-message-ttl":             int32(5000),
	}

	_, err = qm.DeclareQueue(cfg.RabbitMQ.RetryQueue, rabbitmq.QueueConfig{
		Durable: true,
		Args:    retryArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare retry queue: %w", err)
	}

	mainArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": cfg.RabbitMQ.DLQ,
	}

	mainQ, err := qm.DeclareQueue(cfg.RabbitMQ.Queue, rabbitmq.QueueConfig{
		Durable: true,
		Args:    mainArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare main queue: %w", err)
	}

	if err := ch.QueueBind(mainQ.Name, cfg.RabbitMQ.RoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the main queue: %w", err)
	}

	pub := rabbitmq.NewPublisher(ch, exchange.Name())
	cons := rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(mainQ.Name))

	return &DispatchQueue{Publisher: pub, Consumer: cons, routingKey: cfg.RabbitMQ.RoutingKey}, nil
}

// Publish enqueues a dispatch job.
func (q *DispatchQueue) Publish(job DispatchJob, strategy retry.Strategy) error {
	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	return q.Publisher.PublishWithRetry(body, q.routingKey, "application/json", strategy)
}

// Consume decodes incoming dispatch jobs onto out until ctx is cancelled.
func (q *DispatchQueue) Consume(ctx context.Context, out chan<- DispatchJob, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go decodeJobs(ctx, msgChan, out)

	return q.Consumer.ConsumeWithRetry(msgChan, strategy)
}

// decodeJobs forwards decoded jobs from in to out. Malformed messages are
// logged and skipped. It returns on cancellation even when out has no
// reader left.
func decodeJobs(ctx context.Context, in <-chan []byte, out chan<- DispatchJob) {
	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-in:
			if !ok {
				return
			}

			var job DispatchJob
			if err := json.Unmarshal(m, &job); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to unmarshal job")
				continue
			}

			select {
			case <-ctx.Done():
				return
			case out <- job:
			}
		}
	}
}
