package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mentoria-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/mentoria-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/mentoria-dashboard-api/infrastructure/integrator/email"
	"github.com/vfg2006/mentoria-dashboard-api/infrastructure/integrator/instagram"
	"github.com/vfg2006/mentoria-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/mentoria-dashboard-api/internal/api"
	"github.com/vfg2006/mentoria-dashboard-api/internal/api/handler"
	"github.com/vfg2006/mentoria-dashboard-api/internal/config"
	"github.com/vfg2006/mentoria-dashboard-api/internal/scheduler"
	"github.com/vfg2006/mentoria-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/mentoria-dashboard-api/internal/usecases/connecting"
	"github.com/vfg2006/mentoria-dashboard-api/internal/usecases/gamifying"
	"github.com/vfg2006/mentoria-dashboard-api/internal/usecases/mentoring"
	"github.com/vfg2006/mentoria-dashboard-api/internal/usecases/notifying"
	"github.com/vfg2006/mentoria-dashboard-api/internal/usecases/ranking"
	"github.com/vfg2006/mentoria-dashboard-api/pkg/crypto"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	rankingCache := rankingcache(ctx, cfg.Redis)

	encrypter, err := crypto.NewEncrypter(cfg.SecretKey)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar criptografia dos tokens")
	}

	menteeRepo := repository.NewMenteeRepository(pgConn)
	metricRepo := repository.NewMonthlyMetricRepository(pgConn)
	badgeRepo := repository.NewBadgeRepository(pgConn)
	menteeBadgeRepo := repository.NewMenteeBadgeRepository(pgConn)
	rankingRepo := repository.NewRankingRepository(pgConn)
	progressiveGoalRepo := repository.NewProgressiveGoalRepository(pgConn)
	notificationRepo := repository.NewNotificationRepository(pgConn)
	playbookRepo := repository.NewPlaybookRepository(pgConn)
	instagramTokenRepo := repository.NewInstagramTokenRepository(pgConn)

	authenticator := authenticating.NewService(cfg)

	notifier := notifying.NewService(notificationRepo, menteeRepo, email.NewLogSender(cfg.Email))

	gamifier := gamifying.NewService(
		menteeRepo,
		metricRepo,
		badgeRepo,
		menteeBadgeRepo,
		rankingRepo,
		progressiveGoalRepo,
		playbookRepo,
		notifier,
		cfg,
	)

	// O ranking concede as badges de pódio pelo serviço de gamificação
	rankingService := ranking.NewService(
		menteeRepo,
		metricRepo,
		menteeBadgeRepo,
		rankingRepo,
		rankingCache,
		gamifier,
		notifier,
		cfg,
	)

	processor := gamifying.NewProcessor(gamifier, rankingService, metricRepo)

	menteeService := mentoring.NewMenteeService(menteeRepo, metricRepo, menteeBadgeRepo, gamifier, rankingCache)
	metricsService := mentoring.NewMetricsService(metricRepo, menteeRepo)

	connector := connecting.NewService(
		instagram.NewClient(cfg.Instagram),
		instagramTokenRepo,
		menteeRepo,
		encrypter,
		notifier,
	)

	gamificationJob := scheduler.NewGamificationJob(processor, cfg)
	remindersJob := scheduler.NewRemindersJob(gamifier, cfg)

	// Inicia os agendadores em background
	if err := gamificationJob.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do job de gamificação")
	} else {
		logrus.Info("Agendador do job de gamificação iniciado com sucesso")
	}

	if err := remindersJob.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do job de lembretes")
	} else {
		logrus.Info("Agendador do job de lembretes iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Mentees:       menteeService,
		Metrics:       metricsService,
		Gamifier:      gamifier,
		Processor:     processor,
		Ranker:        rankingService,
		Notifier:      notifier,
		Connector:     connector,
		CronJobs: handler.CronJobServices{
			GamificationJob: gamificationJob,
			RemindersJob:    remindersJob,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// rankingcache usa o redis quando habilitado. Sem redis o ranking é lido direto do banco.
func rankingcache(ctx context.Context, redisConfig config.Redis) cache.RankingCache {
	if !redisConfig.Enabled {
		logrus.Info("Cache do ranking desabilitado")
		return cache.NewNoopRankingCache()
	}

	client, err := cache.NewRedisClient(ctx, redisConfig)
	if err != nil {
		logrus.WithError(err).Warn("Redis indisponível, ranking será lido direto do banco")
		return cache.NewNoopRankingCache()
	}

	logrus.WithField("addr", redisConfig.Addr).Info("Conexão com Redis estabelecida com sucesso")
	return cache.NewRankingCache(client, redisConfig.TTL)
}
