package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/soheilhy/cmux"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	kafkalib "github.com/s21platform/kafka-lib"
	logger_lib "github.com/s21platform/logger-lib"
	"github.com/s21platform/metrics-lib/pkg"

	"github.com/s21platform/doodle-sync/internal/client/centrifugo"
	"github.com/s21platform/doodle-sync/internal/client/realtime"
	"github.com/s21platform/doodle-sync/internal/config"
	"github.com/s21platform/doodle-sync/internal/databus/profile"
	"github.com/s21platform/doodle-sync/internal/engine"
	"github.com/s21platform/doodle-sync/internal/gateway"
	"github.com/s21platform/doodle-sync/internal/infra"
	"github.com/s21platform/doodle-sync/internal/pagination"
	"github.com/s21platform/doodle-sync/internal/pkg/jwt"
	"github.com/s21platform/doodle-sync/internal/pkg/validator"
	db "github.com/s21platform/doodle-sync/internal/repository/postgres"
	"github.com/s21platform/doodle-sync/internal/rest"
	"github.com/s21platform/doodle-sync/internal/store"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	userID, err := uuid.Parse(cfg.Session.UserID)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid session user id: %v", err))
		os.Exit(1)
	}

	metrics, err := pkg.NewMetrics(cfg.Metrics.Host, cfg.Metrics.Port, cfg.Service.Name, cfg.Platform.Env)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to connect graphite: %v", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = context.WithValue(ctx, config.KeyMetrics, metrics)
	ctx = context.WithValue(ctx, config.KeyLogger, logger)

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	centrifugeClient := centrifugo.New(cfg)
	defer centrifugeClient.Close()

	realtimeTokens := jwt.New(cfg.Centrifuge.JWTSecret)
	sessionTokens := jwt.New(cfg.Session.JWTSecret)
	realtimeClient := realtime.New(cfg, realtimeTokens)

	gw := gateway.New(dbRepo, centrifugeClient, gateway.RealtimeSubscriber(realtimeClient), logger, userID)

	st := store.New()
	syncEngine := engine.New(gw, st, pagination.New(gw, st), validator.New(), logger, engine.Options{
		UserID:           userID,
		PageSize:         cfg.Sync.PageSize,
		ReconnectBackoff: cfg.Sync.ReconnectBackoff,
	})

	if err := syncEngine.LoadConversations(ctx); err != nil {
		logger.Warn(fmt.Sprintf("starting without conversations: %v", err))
	}
	syncEngine.Connect(ctx)
	defer syncEngine.Disconnect()

	healthServer := health.NewServer()
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			infra.LoggerGRPC(logger),
		),
	)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	handler := rest.New(syncEngine)
	router := chi.NewRouter()

	router.Use(func(next http.Handler) http.Handler {
		return infra.AuthInterceptorHTTP(next, sessionTokens, cfg.Session.UserID)
	})
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})

	handler.Routes(router)
	httpServer := &http.Server{
		Handler: router,
		// event streams end with the process context
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Service.Port))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to start TCP listener: %v", err))
		os.Exit(1)
	}

	m := cmux.New(listener)

	grpcListener := m.MatchWithWriters(cmux.HTTP2MatchHeaderFieldSendSettings("content-type", "application/grpc"))
	httpListener := m.Match(cmux.HTTP1Fast())

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := grpcServer.Serve(grpcListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) && gCtx.Err() == nil {
			return fmt.Errorf("gRPC server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := httpServer.Serve(httpListener); err != nil && !errors.Is(err, http.ErrServerClosed) && gCtx.Err() == nil {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := m.Serve(); err != nil && gCtx.Err() == nil {
			return fmt.Errorf("cannot start service: %v", err)
		}
		return nil
	})

	if cfg.Kafka.Host != "" {
		consumerConfig := kafkalib.DefaultConsumerConfig(
			cfg.Kafka.Host,
			cfg.Kafka.Port,
			cfg.Kafka.ProfileTopic,
			profile.ConsumerGroupID(cfg),
		)
		consumer, err := kafkalib.NewConsumer(consumerConfig, metrics)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to create profile consumer: %v", err))
		} else {
			consumer.RegisterHandler(ctx, profile.New(syncEngine).Handler)
		}
	}

	g.Go(func() error {
		<-gCtx.Done()
		healthServer.Shutdown()
		// no request may start engine work once the engine drains
		err := httpServer.Shutdown(context.Background())
		syncEngine.Disconnect()
		syncEngine.Wait()
		grpcServer.GracefulStop()
		_ = listener.Close()
		return err
	})

	healthServer.SetServingStatus(cfg.Service.Name, healthpb.HealthCheckResponse_SERVING)

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
