package app

import (
	"context"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/avelasqz/biblioteca-service/config"
	"github.com/avelasqz/biblioteca-service/internal/handler"
	"github.com/avelasqz/biblioteca-service/internal/repository"
	"github.com/avelasqz/biblioteca-service/internal/server"
	"github.com/avelasqz/biblioteca-service/internal/service"
	"github.com/avelasqz/biblioteca-service/migrations"
	"github.com/avelasqz/biblioteca-service/pkg/kafka"
	"github.com/avelasqz/biblioteca-service/pkg/logger"
	"github.com/avelasqz/biblioteca-service/pkg/postgres"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "biblioteca")

	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return errors.Wrap(err, "db init")
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return errors.Wrap(err, "repo init")
	}

	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		return errors.Wrap(err, "kafka.NewProducer")
	}
	svc := service.NewService(repo, service.NewPublisher(producer), log)

	consumerGroup, err := kafka.NewConsumer(cfg.Kafka, kafka.AuditConsumerGroup)
	if err != nil {
		return errors.Wrap(err, "kafka.NewConsumer")
	}

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server start ON: ",
			zap.String("addr",
				net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
		if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		if err := kafka.Consume(ctx, consumerGroup, handler.NewConsumer(svc.RecordLoanEvent, log), kafka.LoanTopic); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Debug("Graceful shutdown")

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()

		if err := srv.Stop(closeCtx); err != nil {
			log.Error("srv.Stop", zap.Error(err))
		}
		if err := consumerGroup.Close(); err != nil {
			log.Error("consumerGroup.Close", zap.Error(err))
		}
		if err := producer.Close(); err != nil {
			log.Error("producer.Close", zap.Error(err))
		}
		db.Close()
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("Graceful shutdown finished")
	return nil
}
