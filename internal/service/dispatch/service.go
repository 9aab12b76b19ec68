// Package dispatch implements the business-event-level notification
// operations: deciding what to send, to whom, over which channels, and
// keeping the notification ledger in sync with every attempt.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/greenfield-grocer/notifier/internal/model"
	"github.com/greenfield-grocer/notifier/internal/template"
)

// maxPollOptions is the provider's interactive-message option limit.
const maxPollOptions = 12

//go:generate mockgen -source=service.go -destination=../../mocks/service/dispatch/mock.go -package=mocks

type ledgerRepository interface {
	Create(ctx context.Context, n model.Notification) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.Status, sentAt *time.Time) error
	Requeue(ctx context.Context, id uuid.UUID) error
	GetStatusByID(ctx context.Context, id uuid.UUID) (model.Status, error)
	ListPending(ctx context.Context) ([]model.Notification, error)
	ListAll(ctx context.Context) ([]model.Notification, error)
}

type customerRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (model.Customer, error)
}

type orderRepository interface {
	GetWithItems(ctx context.Context, id uuid.UUID) (model.Order, error)
}

type invoiceRepository interface {
	ListOverdue(ctx context.Context, customerID uuid.UUID) ([]model.Invoice, error)
}

type productRepository interface {
	ListAvailable(ctx context.Context) ([]model.Product, error)
	ListSeasonal(ctx context.Context, limit int) ([]model.Product, error)
}

type chatSender interface {
	SendText(ctx context.Context, to, text string) error
	SendPoll(ctx context.Context, to, question string, options []string, allowMultiple bool) error
}

type emailSender interface {
	Send(ctx context.Context, to, subject, html string) error
}

type statusCache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// DeliveryResult is the per-(recipient, channel) outcome of a best-effort
// operation. Err is nil when the send succeeded.
type DeliveryResult struct {
	CustomerID     uuid.UUID    `json:"customer_id"`
	Method         model.Method `json:"method"`
	NotificationID uuid.UUID    `json:"notification_id"`
	Err            error        `json:"-"`
}

// Service owns the dispatch orchestration and the queue processor.
type Service struct {
	ledger    ledgerRepository
	customers customerRepository
	orders    orderRepository
	invoices  invoiceRepository
	products  productRepository
	chat      chatSender
	email     emailSender
	cache     statusCache
	strategy  retry.Strategy // infrastructure retries (cache writes)
}

// NewService creates a new dispatch Service.
func NewService(
	ledger ledgerRepository,
	customers customerRepository,
	orders orderRepository,
	invoices invoiceRepository,
	products productRepository,
	chat chatSender,
	email emailSender,
	cache statusCache,
	strategy retry.Strategy,
) *Service {
	return &Service{
		ledger:    ledger,
		customers: customers,
		orders:    orders,
		invoices:  invoices,
		products:  products,
		chat:      chat,
		email:     email,
		cache:     cache,
		strategy:  strategy,
	}
}

// SendOrderConfirmation notifies the order's customer on every channel they
// have an address for. Order confirmation is best-effort: a failure on one
// channel is recorded and logged but never aborts the other channel or the
// caller.
func (s *Service) SendOrderConfirmation(ctx context.Context, orderID uuid.UUID) ([]DeliveryResult, error) {
	order, err := s.orders.GetWithItems(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	customer, err := s.customers.GetByID(ctx, order.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}

	text := template.OrderConfirmationText(customer, order)
	html := template.OrderConfirmationHTML(customer, order)

	return s.deliverBoth(ctx, customer, model.TypeOrderConfirmation, text, html), nil
}

// SendPaymentReminder sends a reminder covering all of the customer's
// overdue invoices. With no overdue invoices it is a no-op. Unlike the
// broadcast operations this path is invoked synchronously by an admin
// action, so any send failure is re-raised after the record is marked
// failed.
func (s *Service) SendPaymentReminder(ctx context.Context, customerID uuid.UUID) error {
	customer, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		return fmt.Errorf("get customer: %w", err)
	}

	overdue, err := s.invoices.ListOverdue(ctx, customerID)
	if err != nil {
		return fmt.Errorf("list overdue invoices: %w", err)
	}

	if len(overdue) == 0 {
		zlog.Logger.Info().Str("customer_id", customerID.String()).Msg("no overdue invoices, skipping reminder")
		return nil
	}

	text := template.PaymentReminderText(customer, overdue)
	html := template.PaymentReminderHTML(customer, overdue)

	results := s.deliverBoth(ctx, customer, model.TypePaymentReminder, text, html)
	if len(results) == 0 {
		return fmt.Errorf("customer %s has no usable address", customerID)
	}

	var errs []error
	for _, res := range results {
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", res.Method, res.Err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("send payment reminder: %w", errors.Join(errs...))
	}

	return nil
}

// SendProductList broadcasts the current catalog to the given customers.
// Content is composed once and reused for every recipient. Per-recipient
// failures are recorded in the result list and never abort the batch.
func (s *Service) SendProductList(ctx context.Context, customerIDs []uuid.UUID) ([]DeliveryResult, error) {
	products, err := s.products.ListAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("list available products: %w", err)
	}

	if len(products) == 0 {
		zlog.Logger.Info().Msg("no available products, skipping catalog broadcast")
		return nil, nil
	}

	text := template.ProductListText(products)
	html := template.ProductListHTML(products)

	var results []DeliveryResult
	for _, customerID := range customerIDs {
		customer, err := s.customers.GetByID(ctx, customerID)
		if err != nil {
			zlog.Logger.Warn().Err(err).Str("customer_id", customerID.String()).Msg("skipping unknown customer")
			results = append(results, DeliveryResult{CustomerID: customerID, Err: err})
			continue
		}

		results = append(results, s.deliverBoth(ctx, customer, model.TypeProductList, text, html)...)
	}

	return results, nil
}

// SendSeasonalItemsPoll sends an interactive poll over the chat channel to
// every chat-capable customer, with one option per seasonal product (capped
// to the provider's option limit). Each poll send gets its own ledger
// record. With no seasonal products it is a no-op.
func (s *Service) SendSeasonalItemsPoll(ctx context.Context, customerIDs []uuid.UUID) ([]DeliveryResult, error) {
	seasonal, err := s.products.ListSeasonal(ctx, maxPollOptions)
	if err != nil {
		return nil, fmt.Errorf("list seasonal products: %w", err)
	}

	if len(seasonal) == 0 {
		zlog.Logger.Info().Msg("no seasonal products, skipping poll")
		return nil, nil
	}

	question, options := template.SeasonalPoll(seasonal)
	content := template.SeasonalPollContent(question, options)

	var results []DeliveryResult
	for _, customerID := range customerIDs {
		customer, err := s.customers.GetByID(ctx, customerID)
		if err != nil {
			zlog.Logger.Warn().Err(err).Str("customer_id", customerID.String()).Msg("skipping unknown customer")
			results = append(results, DeliveryResult{CustomerID: customerID, Err: err})
			continue
		}

		if customer.Phone == "" {
			continue
		}

		res := s.attempt(ctx, customer.ID, model.TypeSeasonalPoll, model.MethodWhatsApp, content, func() error {
			return s.chat.SendPoll(ctx, customer.Phone, question, options, true)
		})
		results = append(results, res)
	}

	return results, nil
}

// SendVerificationCode sends a login verification code to a raw contact
// string. The channel is chosen by the contact's shape: an address with "@"
// goes by email, anything else by chat. This path is time-sensitive and
// never creates a ledger record; in environments without provider
// credentials the senders log the code instead.
func (s *Service) SendVerificationCode(ctx context.Context, contact, code string) error {
	if strings.Contains(contact, "@") {
		if err := s.email.Send(ctx, contact, template.SubjectVerificationCode, template.VerificationCodeHTML(code)); err != nil {
			return fmt.Errorf("send verification code: %w", err)
		}

		return nil
	}

	if err := s.chat.SendText(ctx, contact, template.VerificationCodeText(code)); err != nil {
		return fmt.Errorf("send verification code: %w", err)
	}

	return nil
}

// ProcessNotificationQueue drains all pending ledger records in creation
// order, replaying their persisted content. Records whose customer is gone
// or has no address for the record's channel go straight to failed. One
// record's failure never halts the scan; this path runs unattended and
// only ever mutates ledger state and logs.
func (s *Service) ProcessNotificationQueue(ctx context.Context) error {
	pending, err := s.ledger.ListPending(ctx)
	if err != nil {
		return fmt.Errorf("list pending notifications: %w", err)
	}

	for _, n := range pending {
		customer, err := s.customers.GetByID(ctx, n.CustomerID)
		if err != nil {
			zlog.Logger.Warn().Err(err).Str("id", n.ID.String()).Msg("customer not found, marking failed")
			s.markFailed(ctx, n.ID)
			continue
		}

		address := customer.Phone
		if n.Method == model.MethodEmail {
			address = customer.Email
		}

		if address == "" {
			zlog.Logger.Warn().
				Str("id", n.ID.String()).
				Str("method", string(n.Method)).
				Msg("customer has no address for channel, marking failed")
			s.markFailed(ctx, n.ID)
			continue
		}

		var sendErr error
		if n.Method == model.MethodEmail {
			sendErr = s.email.Send(ctx, address, template.Subject(n.Type), n.Content)
		} else {
			sendErr = s.chat.SendText(ctx, address, n.Content)
		}

		if sendErr != nil {
			zlog.Logger.Error().Err(sendErr).Str("id", n.ID.String()).Msg("failed to send queued notification")
			s.markFailed(ctx, n.ID)
			continue
		}

		s.markSent(ctx, n.ID)
	}

	return nil
}

// RequeueFailed resets a failed record back to pending.
func (s *Service) RequeueFailed(ctx context.Context, id uuid.UUID) error {
	if err := s.ledger.Requeue(ctx, id); err != nil {
		return fmt.Errorf("requeue notification: %w", err)
	}

	s.cacheStatus(ctx, id, model.StatusPending)

	return nil
}

// GetNotificationStatus returns the delivery status of a single ledger
// record, answering from the cache when possible and falling back to the
// ledger on a miss.
func (s *Service) GetNotificationStatus(ctx context.Context, id uuid.UUID) (model.Status, error) {
	cached, err := s.cache.GetWithRetry(ctx, s.strategy, id.String())
	if err == nil {
		return model.Status(cached), nil
	}

	if !errors.Is(err, redis.Nil) {
		zlog.Logger.Warn().Err(err).Str("id", id.String()).Msg("status cache read failed, falling back to ledger")
	}

	status, err := s.ledger.GetStatusByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get notification status: %w", err)
	}

	s.cacheStatus(ctx, id, status)

	return status, nil
}

// ListNotifications returns all ledger records, newest first.
func (s *Service) ListNotifications(ctx context.Context) ([]model.Notification, error) {
	notifications, err := s.ledger.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	return notifications, nil
}

// ListPendingNotifications returns all pending ledger records, oldest first.
func (s *Service) ListPendingNotifications(ctx context.Context) ([]model.Notification, error) {
	notifications, err := s.ledger.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending notifications: %w", err)
	}

	return notifications, nil
}

// deliverBoth attempts delivery on every channel the customer has an
// address for, creating one independent ledger record per channel.
func (s *Service) deliverBoth(ctx context.Context, customer model.Customer, t model.Type, text, html string) []DeliveryResult {
	var results []DeliveryResult

	if customer.Phone != "" {
		res := s.attempt(ctx, customer.ID, t, model.MethodWhatsApp, text, func() error {
			return s.chat.SendText(ctx, customer.Phone, text)
		})
		results = append(results, res)
	}

	if customer.Email != "" {
		res := s.attempt(ctx, customer.ID, t, model.MethodEmail, html, func() error {
			return s.email.Send(ctx, customer.Email, template.Subject(t), html)
		})
		results = append(results, res)
	}

	return results
}

// attempt creates a pending ledger record with the rendered content, runs
// the send, and reconciles the record to sent or failed.
func (s *Service) attempt(ctx context.Context, customerID uuid.UUID, t model.Type, method model.Method, content string, send func() error) DeliveryResult {
	res := DeliveryResult{CustomerID: customerID, Method: method}

	id, err := s.ledger.Create(ctx, model.Notification{
		CustomerID: customerID,
		Type:       t,
		Method:     method,
		Content:    content,
	})
	if err != nil {
		zlog.Logger.Error().Err(err).Str("customer_id", customerID.String()).Msg("failed to create notification record")
		res.Err = err
		return res
	}

	res.NotificationID = id

	if err := send(); err != nil {
		zlog.Logger.Error().
			Err(err).
			Str("id", id.String()).
			Str("method", string(method)).
			Msg("failed to send notification")
		s.markFailed(ctx, id)
		res.Err = err
		return res
	}

	s.markSent(ctx, id)

	return res
}

func (s *Service) markSent(ctx context.Context, id uuid.UUID) {
	if err := s.ledger.UpdateStatus(ctx, id, model.StatusSent, nil); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to set status=sent")
		return
	}

	s.cacheStatus(ctx, id, model.StatusSent)
}

func (s *Service) markFailed(ctx context.Context, id uuid.UUID) {
	if err := s.ledger.UpdateStatus(ctx, id, model.StatusFailed, nil); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to set status=failed")
		return
	}

	s.cacheStatus(ctx, id, model.StatusFailed)
}

func (s *Service) cacheStatus(ctx context.Context, id uuid.UUID, status model.Status) {
	if err := s.cache.SetWithRetry(ctx, s.strategy, id.String(), string(status)); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache notification status")
	}
}
