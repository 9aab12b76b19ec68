package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/greenfield-grocer/notifier/internal/mocks/worker"
	"github.com/greenfield-grocer/notifier/internal/rabbitmq/queue"
)

func TestDispatcher_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	q := mocks.NewMockdispatchQueue(ctrl)
	h := mocks.NewMockjobHandler(ctrl)
	p := mocks.NewMockqueueProcessor(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	job := queue.DispatchJob{Kind: queue.KindProductList}

	q.EXPECT().
		Consume(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, out chan<- queue.DispatchJob, _ retry.Strategy) error {
			out <- job
			<-ctx.Done()
			return nil
		})

	handled := make(chan struct{})
	h.EXPECT().
		HandleJob(gomock.Any(), job).
		Do(func(context.Context, queue.DispatchJob) {
			close(handled)
		})

	p.EXPECT().ProcessNotificationQueue(gomock.Any()).Return(nil).MinTimes(1)

	d := NewDispatcher(q, h, p)

	done := make(chan struct{})
	go func() {
		d.Run(ctx, retry.Strategy{}, 2, 10*time.Millisecond)
		close(done)
	}()

	select {
	case <-handled:
	case <-time.After(time.Second):
		t.Fatal("job was not handled")
	}

	// Give the ticker a chance to fire at least once.
	time.Sleep(35 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("dispatcher did not stop after context cancellation")
	}
}

func TestDispatcher_Run_ProcessorErrorDoesNotStopIt(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	q := mocks.NewMockdispatchQueue(ctrl)
	h := mocks.NewMockjobHandler(ctrl)
	p := mocks.NewMockqueueProcessor(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q.EXPECT().
		Consume(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ chan<- queue.DispatchJob, _ retry.Strategy) error {
			<-ctx.Done()
			return nil
		})

	// The periodic scan keeps being retried even when every run errors.
	p.EXPECT().
		ProcessNotificationQueue(gomock.Any()).
		Return(errors.New("database unavailable")).
		MinTimes(2)

	d := NewDispatcher(q, h, p)

	done := make(chan struct{})
	go func() {
		d.Run(ctx, retry.Strategy{}, 1, 5*time.Millisecond)
		close(done)
	}()

	time.Sleep(40 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("dispatcher did not stop after context cancellation")
	}
}
