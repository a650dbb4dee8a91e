package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Redis           Redis           `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	Scoring         Scoring         `mapstructure:",squash"`
	Gamification    Gamification    `mapstructure:",squash"`
	Instagram       Instagram       `mapstructure:",squash"`
	Email           Email           `mapstructure:",squash"`
	GamificationJob GamificationJob `mapstructure:",squash"`
	RemindersJob    RemindersJob    `mapstructure:",squash"`
	SecretKey       string          `mapstructure:"secret_key"`
}

type Server struct {
	Host        string   `mapstructure:"host"`
	Port        string   `mapstructure:"port"`
	CorsOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Redis struct {
	Enabled  bool          `mapstructure:"redis_enabled"`
	Addr     string        `mapstructure:"redis_addr"`
	Password string        `mapstructure:"redis_password"`
	DB       int           `mapstructure:"redis_db"`
	TTL      time.Duration `mapstructure:"redis_ranking_ttl"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Auth guarda o segredo usado para validar os JWTs emitidos pelo provedor externo
type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Scoring concentra os pesos do ranking mensal
type Scoring struct {
	RevenueWeight     float64 `mapstructure:"scoring_revenue_weight"`
	ContentWeight     float64 `mapstructure:"scoring_content_weight"`
	OperationalWeight float64 `mapstructure:"scoring_operational_weight"`
	PercentCap        float64 `mapstructure:"scoring_percent_cap"`
	BonusCap          int     `mapstructure:"scoring_bonus_cap"`
	PodiumSize        int     `mapstructure:"scoring_podium_size"`
	RankingCohort     string  `mapstructure:"scoring_ranking_cohort"`
}

type Gamification struct {
	StreakDeadlineDay       int     `mapstructure:"gamification_streak_deadline_day"`
	StreakLookbackMonths    int     `mapstructure:"gamification_streak_lookback_months"`
	ReminderDays            []int   `mapstructure:"gamification_reminder_days"`
	AlertThreshold          float64 `mapstructure:"gamification_alert_threshold"`
	ProgressiveIncrementPct int     `mapstructure:"gamification_progressive_increment_pct"`
}

type Instagram struct {
	BaseURL     string `mapstructure:"instagram_base_url"`
	URL         string `mapstructure:"-"`
	Version     string `mapstructure:"instagram_version"`
	AppID       string `mapstructure:"instagram_app_id"`
	AppSecret   string `mapstructure:"instagram_app_secret"`
	RedirectURL string `mapstructure:"instagram_redirect_url"`
}

type Email struct {
	Enabled bool   `mapstructure:"email_enabled"`
	From    string `mapstructure:"email_from"`
}

type GamificationJob struct {
	CronSchedule string `mapstructure:"gamification_job_cron"`
	SyncEnabled  bool   `mapstructure:"gamification_job_enabled"`
}

type RemindersJob struct {
	CronSchedule string `mapstructure:"reminders_job_cron"`
	SyncEnabled  bool   `mapstructure:"reminders_job_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/mentoria")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("REDIS_ENABLED", false)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_RANKING_TTL", "6h")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("SECRET_KEY", "your_secret_key") // chave de criptografia dos tokens

	// Pesos do ranking mensal
	viper.SetDefault("SCORING_REVENUE_WEIGHT", 0.4)
	viper.SetDefault("SCORING_CONTENT_WEIGHT", 0.2)
	viper.SetDefault("SCORING_OPERATIONAL_WEIGHT", 0.2)
	viper.SetDefault("SCORING_PERCENT_CAP", 150)
	viper.SetDefault("SCORING_BONUS_CAP", 20)
	viper.SetDefault("SCORING_PODIUM_SIZE", 3)
	viper.SetDefault("SCORING_RANKING_COHORT", "neon")

	viper.SetDefault("GAMIFICATION_STREAK_DEADLINE_DAY", 10)
	viper.SetDefault("GAMIFICATION_STREAK_LOOKBACK_MONTHS", 12)
	viper.SetDefault("GAMIFICATION_REMINDER_DAYS", []int{1, 5, 10})
	viper.SetDefault("GAMIFICATION_ALERT_THRESHOLD", 0.8)
	viper.SetDefault("GAMIFICATION_PROGRESSIVE_INCREMENT_PCT", 10)

	viper.SetDefault("INSTAGRAM_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("INSTAGRAM_VERSION", "v22.0")
	viper.SetDefault("INSTAGRAM_APP_ID", "your_app_id")
	viper.SetDefault("INSTAGRAM_APP_SECRET", "your_app_secret")
	viper.SetDefault("INSTAGRAM_REDIRECT_URL", "http://localhost:3000/instagram/callback")

	viper.SetDefault("EMAIL_ENABLED", true)
	viper.SetDefault("EMAIL_FROM", "mentoria@neon.com.br")

	viper.SetDefault("GAMIFICATION_JOB_CRON", "0 6 1 * *") // No primeiro dia de cada mês às 6h da manhã
	viper.SetDefault("GAMIFICATION_JOB_ENABLED", false)
	viper.SetDefault("REMINDERS_JOB_CRON", "0 9 * * *") // Todos os dias às 9h, o serviço filtra os dias de lembrete
	viper.SetDefault("REMINDERS_JOB_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Instagram.URL = fmt.Sprintf("%s/%s", config.Instagram.BaseURL, config.Instagram.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate verifica os valores que não podem ser corrigidos com defaults
func (c *Config) Validate() error {
	if c.Scoring.RevenueWeight < 0 || c.Scoring.ContentWeight < 0 || c.Scoring.OperationalWeight < 0 {
		return fmt.Errorf("pesos do ranking não podem ser negativos")
	}
	if c.Scoring.PercentCap <= 0 {
		return fmt.Errorf("limite percentual do ranking deve ser positivo: %v", c.Scoring.PercentCap)
	}
	if c.Gamification.StreakDeadlineDay < 1 || c.Gamification.StreakDeadlineDay > 28 {
		return fmt.Errorf("dia limite do streak inválido: %d", c.Gamification.StreakDeadlineDay)
	}
	for _, day := range c.Gamification.ReminderDays {
		if day < 1 || day > 28 {
			return fmt.Errorf("dia de lembrete inválido: %d", day)
		}
	}
	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
