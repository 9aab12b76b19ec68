package main

import (
	"context"
	"errors"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	apidispatch "github.com/greenfield-grocer/notifier/internal/api/handlers/dispatch"
	"github.com/greenfield-grocer/notifier/internal/api/router"
	"github.com/greenfield-grocer/notifier/internal/api/server"
	"github.com/greenfield-grocer/notifier/internal/config"
	jobdispatch "github.com/greenfield-grocer/notifier/internal/rabbitmq/handlers/dispatch"
	"github.com/greenfield-grocer/notifier/internal/rabbitmq/queue"
	custrepo "github.com/greenfield-grocer/notifier/internal/repository/customer"
	invrepo "github.com/greenfield-grocer/notifier/internal/repository/invoice"
	notifrepo "github.com/greenfield-grocer/notifier/internal/repository/notification"
	orderrepo "github.com/greenfield-grocer/notifier/internal/repository/order"
	prodrepo "github.com/greenfield-grocer/notifier/internal/repository/product"
	dispatchsvc "github.com/greenfield-grocer/notifier/internal/service/dispatch"
	"github.com/greenfield-grocer/notifier/internal/worker"
	"github.com/greenfield-grocer/notifier/pkg/mailer"
	"github.com/greenfield-grocer/notifier/pkg/whatsapp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	q, err := queue.NewDispatchQueue(ch, cfg)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create dispatch queue")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	chatClient := whatsapp.NewClient(
		cfg.WhatsApp.APIURL,
		cfg.WhatsApp.Token,
		cfg.WhatsApp.PhoneID,
		cfg.WhatsApp.Retries,
	)
	emailClient := mailer.NewClient(
		cfg.Email.APIURL,
		cfg.Email.Token,
		cfg.Email.From,
		cfg.Email.Retries,
	)

	service := dispatchsvc.NewService(
		notifrepo.NewRepository(db),
		custrepo.NewRepository(db),
		orderrepo.NewRepository(db),
		invrepo.NewRepository(db),
		prodrepo.NewRepository(db),
		chatClient,
		emailClient,
		rdb,
		cfg.Retry,
	)

	apiHandler := apidispatch.NewHandler(service, q, val, cfg)
	jobHandler := jobdispatch.NewHandler(service)

	dispatcher := worker.NewDispatcher(q, jobHandler, service)

	go dispatcher.Run(ctx, cfg.Retry, cfg.Workers.Count, cfg.Queue.Interval)

	r := router.New(apiHandler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, s := range db.Slaves {
		if err := s.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
