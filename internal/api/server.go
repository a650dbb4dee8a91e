package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mentoria-dashboard-api/internal/api/handler"
	"github.com/vfg2006/mentoria-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/mentoria-dashboard-api/internal/config"
	"github.com/vfg2006/mentoria-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/mentoria-dashboard-api/internal/usecases/connecting"
	"github.com/vfg2006/mentoria-dashboard-api/internal/usecases/gamifying"
	"github.com/vfg2006/mentoria-dashboard-api/internal/usecases/mentoring"
	"github.com/vfg2006/mentoria-dashboard-api/internal/usecases/notifying"
	"github.com/vfg2006/mentoria-dashboard-api/internal/usecases/ranking"
	"github.com/vfg2006/mentoria-dashboard-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Authenticator authenticating.Authenticator
	Mentees       mentoring.MenteeManager
	Metrics       mentoring.MetricsManager
	Gamifier      gamifying.Gamifier
	Processor     gamifying.MonthProcessor
	Ranker        ranking.Ranker
	Notifier      notifying.Notifier
	Connector     connecting.Connector
	CronJobs      handler.CronJobServices
}

func New(config *config.Config, services Services) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta as rotas com a cadeia de middlewares global
func NewHandler(config *config.Config, services Services) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Mentees(services.Mentees)...),
		router.WithRoutes(handler.Metrics(services.Mentees, services.Metrics)...),
		router.WithRoutes(handler.Gamification(services.Mentees, services.Gamifier, services.Processor, services.Ranker)...),
		router.WithRoutes(handler.Notifications(services.Mentees, services.Notifier)...),
		router.WithRoutes(handler.Instagram(services.Mentees, services.Connector)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LoggingMiddleware(),
		middleware.LogPanicMiddleware(),
		middleware.Cors(config.Server.CorsOrigins...),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
