package worker

import (
	"context"
	"sync"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/greenfield-grocer/notifier/internal/rabbitmq/queue"
)

//go:generate mockgen -source=dispatcher.go -destination=../mocks/worker/mock.go -package=mocks

type dispatchQueue interface {
	Consume(ctx context.Context, out chan<- queue.DispatchJob, strategy retry.Strategy) error
}

type jobHandler interface {
	HandleJob(ctx context.Context, job queue.DispatchJob)
}

type queueProcessor interface {
	ProcessNotificationQueue(ctx context.Context) error
}

// Dispatcher drains the dispatch-job queue with a pool of workers and
// periodically runs the notification queue processor over pending ledger
// records.
type Dispatcher struct {
	queue     dispatchQueue
	handler   jobHandler
	processor queueProcessor
}

func NewDispatcher(q dispatchQueue, h jobHandler, p queueProcessor) *Dispatcher {
	return &Dispatcher{
		queue:     q,
		handler:   h,
		processor: p,
	}
}

// Run blocks until ctx is cancelled. It starts workerCount goroutines for
// dispatch jobs and one ticker goroutine that drains pending ledger records
// every interval.
func (d *Dispatcher) Run(ctx context.Context, strategy retry.Strategy, workerCount int, interval time.Duration) {
	var wg sync.WaitGroup
	jobChan := make(chan queue.DispatchJob, workerCount*10)

	go func() {
		if err := d.queue.Consume(ctx, jobChan, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume dispatch jobs")
		}
	}()

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			zlog.Logger.Printf("worker-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("worker-%d shutting down", id)
					return
				case job, ok := <-jobChan:
					if !ok {
						zlog.Logger.Printf("worker-%d channel closed, shutting down", id)
						return
					}

					d.handler.HandleJob(ctx, job)
				}
			}
		}(i)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				zlog.Logger.Print("queue processor shutting down")
				return
			case <-ticker.C:
				if err := d.processor.ProcessNotificationQueue(ctx); err != nil {
					zlog.Logger.Error().Err(err).Msg("failed to process notification queue")
				}
			}
		}
	}()

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Print("dispatcher stopped")
}
