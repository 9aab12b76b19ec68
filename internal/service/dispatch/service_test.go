package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/greenfield-grocer/notifier/internal/mocks/service/dispatch"
	"github.com/greenfield-grocer/notifier/internal/model"
	"github.com/greenfield-grocer/notifier/internal/template"
)

type serviceMocks struct {
	ledger    *mocks.MockledgerRepository
	customers *mocks.MockcustomerRepository
	orders    *mocks.MockorderRepository
	invoices  *mocks.MockinvoiceRepository
	products  *mocks.MockproductRepository
	chat      *mocks.MockchatSender
	email     *mocks.MockemailSender
	cache     *mocks.MockstatusCache
}

func setupService(t *testing.T) (*Service, serviceMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := serviceMocks{
		ledger:    mocks.NewMockledgerRepository(ctrl),
		customers: mocks.NewMockcustomerRepository(ctrl),
		orders:    mocks.NewMockorderRepository(ctrl),
		invoices:  mocks.NewMockinvoiceRepository(ctrl),
		products:  mocks.NewMockproductRepository(ctrl),
		chat:      mocks.NewMockchatSender(ctrl),
		email:     mocks.NewMockemailSender(ctrl),
		cache:     mocks.NewMockstatusCache(ctrl),
	}

	svc := NewService(
		m.ledger, m.customers, m.orders, m.invoices, m.products,
		m.chat, m.email, m.cache, retry.Strategy{},
	)

	return svc, m
}

func (m serviceMocks) expectMarkSent(id uuid.UUID) {
	m.ledger.EXPECT().UpdateStatus(gomock.Any(), id, model.StatusSent, gomock.Nil()).Return(nil)
	m.cache.EXPECT().SetWithRetry(gomock.Any(), gomock.Any(), id.String(), string(model.StatusSent)).Return(nil)
}

func (m serviceMocks) expectMarkFailed(id uuid.UUID) {
	m.ledger.EXPECT().UpdateStatus(gomock.Any(), id, model.StatusFailed, gomock.Nil()).Return(nil)
	m.cache.EXPECT().SetWithRetry(gomock.Any(), gomock.Any(), id.String(), string(model.StatusFailed)).Return(nil)
}

func (m serviceMocks) expectCreate(t *testing.T, typ model.Type, method model.Method, id uuid.UUID) {
	m.ledger.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n model.Notification) (uuid.UUID, error) {
			assert.Equal(t, typ, n.Type)
			assert.Equal(t, method, n.Method)
			assert.NotEmpty(t, n.Content)
			return id, nil
		})
}

func TestService_SendOrderConfirmation_BothChannels(t *testing.T) {
	svc, m := setupService(t)

	customer := model.Customer{ID: uuid.New(), Name: "Jane", Phone: "+27821234567", Email: "jane@example.com"}
	order := model.Order{
		ID:             uuid.New(),
		CustomerID:     customer.ID,
		DeliveryDate:   time.Now().Add(48 * time.Hour),
		DeliveryMethod: model.DeliveryMethodDelivery,
		Items:          []model.OrderItem{{ProductName: "Tomatoes", Unit: "kg", Quantity: 2, PriceAtOrder: 35.50}},
	}

	chatRecID := uuid.New()
	emailRecID := uuid.New()

	m.orders.EXPECT().GetWithItems(gomock.Any(), order.ID).Return(order, nil)
	m.customers.EXPECT().GetByID(gomock.Any(), customer.ID).Return(customer, nil)

	m.expectCreate(t, model.TypeOrderConfirmation, model.MethodWhatsApp, chatRecID)
	m.chat.EXPECT().SendText(gomock.Any(), customer.Phone, gomock.Any()).Return(nil)
	m.expectMarkSent(chatRecID)

	m.expectCreate(t, model.TypeOrderConfirmation, model.MethodEmail, emailRecID)
	m.email.EXPECT().Send(gomock.Any(), customer.Email, template.Subject(model.TypeOrderConfirmation), gomock.Any()).Return(nil)
	m.expectMarkSent(emailRecID)

	results, err := svc.SendOrderConfirmation(context.Background(), order.ID)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, model.MethodWhatsApp, results[0].Method)
	assert.Equal(t, chatRecID, results[0].NotificationID)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, model.MethodEmail, results[1].Method)
	assert.NoError(t, results[1].Err)
}

func TestService_SendOrderConfirmation_ChannelFailureIsIsolated(t *testing.T) {
	svc, m := setupService(t)

	customer := model.Customer{ID: uuid.New(), Name: "Jane", Phone: "+27821234567", Email: "jane@example.com"}
	order := model.Order{ID: uuid.New(), CustomerID: customer.ID, DeliveryMethod: model.DeliveryMethodCollection}

	chatRecID := uuid.New()
	emailRecID := uuid.New()
	sendErr := errors.New("provider unavailable")

	m.orders.EXPECT().GetWithItems(gomock.Any(), order.ID).Return(order, nil)
	m.customers.EXPECT().GetByID(gomock.Any(), customer.ID).Return(customer, nil)

	m.expectCreate(t, model.TypeOrderConfirmation, model.MethodWhatsApp, chatRecID)
	m.chat.EXPECT().SendText(gomock.Any(), customer.Phone, gomock.Any()).Return(sendErr)
	m.expectMarkFailed(chatRecID)

	// The email channel still runs and succeeds.
	m.expectCreate(t, model.TypeOrderConfirmation, model.MethodEmail, emailRecID)
	m.email.EXPECT().Send(gomock.Any(), customer.Email, gomock.Any(), gomock.Any()).Return(nil)
	m.expectMarkSent(emailRecID)

	results, err := svc.SendOrderConfirmation(context.Background(), order.ID)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.ErrorIs(t, results[0].Err, sendErr)
	assert.NoError(t, results[1].Err)
}

func TestService_SendPaymentReminder_NoOverdueIsNoOp(t *testing.T) {
	svc, m := setupService(t)

	customer := model.Customer{ID: uuid.New(), Name: "Jane", Email: "jane@example.com"}

	m.customers.EXPECT().GetByID(gomock.Any(), customer.ID).Return(customer, nil)
	m.invoices.EXPECT().ListOverdue(gomock.Any(), customer.ID).Return(nil, nil)

	err := svc.SendPaymentReminder(context.Background(), customer.ID)
	assert.NoError(t, err)
}

func TestService_SendPaymentReminder_ReraisesSendFailure(t *testing.T) {
	svc, m := setupService(t)

	customer := model.Customer{ID: uuid.New(), Name: "Jane", Email: "jane@example.com"}
	overdue := []model.Invoice{{ID: uuid.New(), Total: 157.50, DueDate: time.Now().Add(-72 * time.Hour)}}

	recID := uuid.New()
	sendErr := errors.New("provider unavailable")

	m.customers.EXPECT().GetByID(gomock.Any(), customer.ID).Return(customer, nil)
	m.invoices.EXPECT().ListOverdue(gomock.Any(), customer.ID).Return(overdue, nil)

	m.expectCreate(t, model.TypePaymentReminder, model.MethodEmail, recID)
	m.email.EXPECT().Send(gomock.Any(), customer.Email, template.Subject(model.TypePaymentReminder), gomock.Any()).Return(sendErr)
	m.expectMarkFailed(recID)

	err := svc.SendPaymentReminder(context.Background(), customer.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, sendErr)
	assert.Contains(t, err.Error(), "send payment reminder")
}

func TestService_SendPaymentReminder_NoUsableAddress(t *testing.T) {
	svc, m := setupService(t)

	customer := model.Customer{ID: uuid.New(), Name: "Jane"}
	overdue := []model.Invoice{{ID: uuid.New(), Total: 76.50, DueDate: time.Now().Add(-24 * time.Hour)}}

	m.customers.EXPECT().GetByID(gomock.Any(), customer.ID).Return(customer, nil)
	m.invoices.EXPECT().ListOverdue(gomock.Any(), customer.ID).Return(overdue, nil)

	err := svc.SendPaymentReminder(context.Background(), customer.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no usable address")
}

func TestService_SendProductList_SkipsUnknownCustomer(t *testing.T) {
	svc, m := setupService(t)

	products := []model.Product{
		{Name: "Tomatoes", Price: 35.50, Unit: "kg", Category: model.CategoryVegetables, IsAvailable: true},
	}

	unknownID := uuid.New()
	known := model.Customer{ID: uuid.New(), Name: "Jane", Email: "jane@example.com"}
	recID := uuid.New()

	m.products.EXPECT().ListAvailable(gomock.Any()).Return(products, nil)

	m.customers.EXPECT().GetByID(gomock.Any(), unknownID).Return(model.Customer{}, errors.New("customer not found"))
	m.customers.EXPECT().GetByID(gomock.Any(), known.ID).Return(known, nil)

	m.expectCreate(t, model.TypeProductList, model.MethodEmail, recID)
	m.email.EXPECT().Send(gomock.Any(), known.Email, template.Subject(model.TypeProductList), gomock.Any()).Return(nil)
	m.expectMarkSent(recID)

	results, err := svc.SendProductList(context.Background(), []uuid.UUID{unknownID, known.ID})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Error(t, results[0].Err)
	assert.Equal(t, unknownID, results[0].CustomerID)
	assert.NoError(t, results[1].Err)
}

func TestService_SendProductList_EmptyCatalogIsNoOp(t *testing.T) {
	svc, m := setupService(t)

	m.products.EXPECT().ListAvailable(gomock.Any()).Return(nil, nil)

	results, err := svc.SendProductList(context.Background(), []uuid.UUID{uuid.New()})
	assert.NoError(t, err)
	assert.Nil(t, results)
}

func TestService_SendSeasonalItemsPoll(t *testing.T) {
	svc, m := setupService(t)

	seasonal := []model.Product{
		{Name: "Strawberries", Price: 45, IsSeasonal: true},
		{Name: "Asparagus", Price: 62.5, IsSeasonal: true},
	}

	withPhone := model.Customer{ID: uuid.New(), Name: "Jane", Phone: "+27821234567"}
	emailOnly := model.Customer{ID: uuid.New(), Name: "Sam", Email: "sam@example.com"}
	recID := uuid.New()

	m.products.EXPECT().ListSeasonal(gomock.Any(), maxPollOptions).Return(seasonal, nil)

	m.customers.EXPECT().GetByID(gomock.Any(), withPhone.ID).Return(withPhone, nil)
	m.expectCreate(t, model.TypeSeasonalPoll, model.MethodWhatsApp, recID)
	m.chat.EXPECT().
		SendPoll(gomock.Any(), withPhone.Phone, gomock.Any(), gomock.Any(), true).
		DoAndReturn(func(_ context.Context, _, _ string, options []string, _ bool) error {
			assert.Len(t, options, 2)
			return nil
		})
	m.expectMarkSent(recID)

	// Poll is chat-only: a customer without a phone is skipped silently.
	m.customers.EXPECT().GetByID(gomock.Any(), emailOnly.ID).Return(emailOnly, nil)

	results, err := svc.SendSeasonalItemsPoll(context.Background(), []uuid.UUID{withPhone.ID, emailOnly.ID})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, withPhone.ID, results[0].CustomerID)
	assert.Equal(t, model.MethodWhatsApp, results[0].Method)
	assert.NoError(t, results[0].Err)
}

func TestService_SendSeasonalItemsPoll_NoSeasonalIsNoOp(t *testing.T) {
	svc, m := setupService(t)

	m.products.EXPECT().ListSeasonal(gomock.Any(), maxPollOptions).Return(nil, nil)

	results, err := svc.SendSeasonalItemsPoll(context.Background(), []uuid.UUID{uuid.New()})
	assert.NoError(t, err)
	assert.Nil(t, results)
}

func TestService_SendVerificationCode_PicksChannelByContact(t *testing.T) {
	svc, m := setupService(t)

	m.email.EXPECT().
		Send(gomock.Any(), "jane@example.com", template.SubjectVerificationCode, gomock.Any()).
		Return(nil)
	assert.NoError(t, svc.SendVerificationCode(context.Background(), "jane@example.com", "483920"))

	m.chat.EXPECT().
		SendText(gomock.Any(), "+27821234567", template.VerificationCodeText("483920")).
		Return(nil)
	assert.NoError(t, svc.SendVerificationCode(context.Background(), "+27821234567", "483920"))
}

func TestService_SendVerificationCode_PropagatesError(t *testing.T) {
	svc, m := setupService(t)

	sendErr := errors.New("provider unavailable")
	m.chat.EXPECT().SendText(gomock.Any(), "+27821234567", gomock.Any()).Return(sendErr)

	err := svc.SendVerificationCode(context.Background(), "+27821234567", "483920")
	assert.ErrorIs(t, err, sendErr)
}

func TestService_ProcessNotificationQueue(t *testing.T) {
	svc, m := setupService(t)

	gone := model.Notification{ID: uuid.New(), CustomerID: uuid.New(), Method: model.MethodWhatsApp, Content: "a"}
	noPhone := model.Notification{ID: uuid.New(), CustomerID: uuid.New(), Method: model.MethodWhatsApp, Content: "b"}
	deliverable := model.Notification{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Type:       model.TypeProductList,
		Method:     model.MethodEmail,
		Content:    "persisted catalog content",
	}

	m.ledger.EXPECT().ListPending(gomock.Any()).
		Return([]model.Notification{gone, noPhone, deliverable}, nil)

	m.customers.EXPECT().GetByID(gomock.Any(), gone.CustomerID).
		Return(model.Customer{}, errors.New("customer not found"))
	m.expectMarkFailed(gone.ID)

	m.customers.EXPECT().GetByID(gomock.Any(), noPhone.CustomerID).
		Return(model.Customer{ID: noPhone.CustomerID, Email: "sam@example.com"}, nil)
	m.expectMarkFailed(noPhone.ID)

	m.customers.EXPECT().GetByID(gomock.Any(), deliverable.CustomerID).
		Return(model.Customer{ID: deliverable.CustomerID, Email: "jane@example.com"}, nil)
	// The persisted content is replayed verbatim, never regenerated.
	m.email.EXPECT().
		Send(gomock.Any(), "jane@example.com", template.Subject(model.TypeProductList), deliverable.Content).
		Return(nil)
	m.expectMarkSent(deliverable.ID)

	err := svc.ProcessNotificationQueue(context.Background())
	assert.NoError(t, err)
}

func TestService_ProcessNotificationQueue_SendFailureDoesNotHaltScan(t *testing.T) {
	svc, m := setupService(t)

	first := model.Notification{ID: uuid.New(), CustomerID: uuid.New(), Method: model.MethodWhatsApp, Content: "a"}
	second := model.Notification{ID: uuid.New(), CustomerID: uuid.New(), Method: model.MethodWhatsApp, Content: "b"}

	m.ledger.EXPECT().ListPending(gomock.Any()).
		Return([]model.Notification{first, second}, nil)

	m.customers.EXPECT().GetByID(gomock.Any(), first.CustomerID).
		Return(model.Customer{ID: first.CustomerID, Phone: "+27820000001"}, nil)
	m.chat.EXPECT().SendText(gomock.Any(), "+27820000001", "a").Return(errors.New("provider unavailable"))
	m.expectMarkFailed(first.ID)

	m.customers.EXPECT().GetByID(gomock.Any(), second.CustomerID).
		Return(model.Customer{ID: second.CustomerID, Phone: "+27820000002"}, nil)
	m.chat.EXPECT().SendText(gomock.Any(), "+27820000002", "b").Return(nil)
	m.expectMarkSent(second.ID)

	err := svc.ProcessNotificationQueue(context.Background())
	assert.NoError(t, err)
}

func TestService_RequeueFailed(t *testing.T) {
	svc, m := setupService(t)

	id := uuid.New()

	m.ledger.EXPECT().Requeue(gomock.Any(), id).Return(nil)
	m.cache.EXPECT().SetWithRetry(gomock.Any(), gomock.Any(), id.String(), string(model.StatusPending)).Return(nil)

	assert.NoError(t, svc.RequeueFailed(context.Background(), id))
}

func TestService_RequeueFailed_PropagatesError(t *testing.T) {
	svc, m := setupService(t)

	id := uuid.New()
	repoErr := errors.New("notification not found")

	m.ledger.EXPECT().Requeue(gomock.Any(), id).Return(repoErr)

	err := svc.RequeueFailed(context.Background(), id)
	assert.ErrorIs(t, err, repoErr)
}

func TestService_GetNotificationStatus_CacheHit(t *testing.T) {
	svc, m := setupService(t)

	id := uuid.New()

	m.cache.EXPECT().GetWithRetry(gomock.Any(), gomock.Any(), id.String()).Return("sent", nil)

	status, err := svc.GetNotificationStatus(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, model.StatusSent, status)
}

func TestService_GetNotificationStatus_CacheMiss(t *testing.T) {
	svc, m := setupService(t)

	id := uuid.New()

	m.cache.EXPECT().GetWithRetry(gomock.Any(), gomock.Any(), id.String()).Return("", redis.Nil)
	m.ledger.EXPECT().GetStatusByID(gomock.Any(), id).Return(model.StatusFailed, nil)
	m.cache.EXPECT().SetWithRetry(gomock.Any(), gomock.Any(), id.String(), string(model.StatusFailed)).Return(nil)

	status, err := svc.GetNotificationStatus(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, model.StatusFailed, status)
}

func TestService_GetNotificationStatus_LedgerError(t *testing.T) {
	svc, m := setupService(t)

	id := uuid.New()
	repoErr := errors.New("notification not found")

	m.cache.EXPECT().GetWithRetry(gomock.Any(), gomock.Any(), id.String()).Return("", redis.Nil)
	m.ledger.EXPECT().GetStatusByID(gomock.Any(), id).Return(model.Status(""), repoErr)

	_, err := svc.GetNotificationStatus(context.Background(), id)
	assert.ErrorIs(t, err, repoErr)
}

func TestService_ListNotifications(t *testing.T) {
	svc, m := setupService(t)

	records := []model.Notification{{ID: uuid.New(), Status: model.StatusSent}}
	m.ledger.EXPECT().ListAll(gomock.Any()).Return(records, nil)

	got, err := svc.ListNotifications(context.Background())
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestService_ListPendingNotifications(t *testing.T) {
	svc, m := setupService(t)

	records := []model.Notification{{ID: uuid.New(), Status: model.StatusPending}}
	m.ledger.EXPECT().ListPending(gomock.Any()).Return(records, nil)

	got, err := svc.ListPendingNotifications(context.Background())
	require.NoError(t, err)
	assert.Equal(t, records, got)
}
