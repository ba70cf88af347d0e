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
	"github.com/vfg2006/marketing-dashboard-api/internal/analytics/saturation"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	Metrics     Metrics     `mapstructure:",squash"`
	Demo        Demo        `mapstructure:",squash"`
	Saturation  Saturation  `mapstructure:",squash"`
	Anomaly     Anomaly     `mapstructure:",squash"`
	Experiment  Experiment  `mapstructure:",squash"`
	DataRefresh DataRefresh `mapstructure:",squash"`
	Archive     Archive     `mapstructure:",squash"`
}

type App struct {
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string        `mapstructure:"host"`
	Port           string        `mapstructure:"port"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	ReadTimeout    time.Duration `mapstructure:"server_read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"server_write_timeout"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	Enabled bool   `mapstructure:"auth_enabled"`
	Secret  string `mapstructure:"auth_secret"`
}

type Metrics struct {
	Enabled bool   `mapstructure:"metrics_enabled"`
	Path    string `mapstructure:"metrics_path"`
}

// Demo controla o gerador de dados sintéticos
type Demo struct {
	Seed uint64 `mapstructure:"demo_seed"`
}

type Saturation struct {
	DiminishingRatio  float64 `mapstructure:"saturation_diminishing_ratio"`
	FlatnessThreshold float64 `mapstructure:"saturation_flatness_threshold"`
	SpendThreshold    float64 `mapstructure:"saturation_spend_threshold"`
}

// Thresholds converte a configuração para os limites do analisador
func (s Saturation) Thresholds() saturation.Thresholds {
	return saturation.Thresholds{
		DiminishingRatio:  s.DiminishingRatio,
		FlatnessThreshold: s.FlatnessThreshold,
		SpendThreshold:    s.SpendThreshold,
	}
}

type Anomaly struct {
	ZScoreThreshold float64 `mapstructure:"anomaly_zscore_threshold"`
}

type Experiment struct {
	Alpha float64 `mapstructure:"experiment_alpha"`
}

type DataRefresh struct {
	CronSchedule string `mapstructure:"data_refresh_cron"`
	Enabled      bool   `mapstructure:"data_refresh_enabled"`
}

// Archive habilita a gravação dos snapshots no Postgres
type Archive struct {
	Enabled bool `mapstructure:"archive_enabled"`
}

func SetDefaults() {
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	viper.SetDefault("SERVER_READ_TIMEOUT", "15s")
	viper.SetDefault("SERVER_WRITE_TIMEOUT", "30s")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashboard?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_ENABLED", false)
	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	viper.SetDefault("METRICS_ENABLED", true)
	viper.SetDefault("METRICS_PATH", "/metrics")

	viper.SetDefault("DEMO_SEED", 42)

	viper.SetDefault("SATURATION_DIMINISHING_RATIO", 0.7)
	viper.SetDefault("SATURATION_FLATNESS_THRESHOLD", 0.1)
	viper.SetDefault("SATURATION_SPEND_THRESHOLD", 60000)

	viper.SetDefault("ANOMALY_ZSCORE_THRESHOLD", 2.5)
	viper.SetDefault("EXPERIMENT_ALPHA", 0.05)

	viper.SetDefault("DATA_REFRESH_CRON", "0 * * * *") // A cada hora
	viper.SetDefault("DATA_REFRESH_ENABLED", true)

	viper.SetDefault("ARCHIVE_ENABLED", false) // Sem banco por padrão
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate rejeita limites que tornariam a análise sem sentido
func (c *Config) Validate() error {
	if c.Saturation.DiminishingRatio <= 0 || c.Saturation.DiminishingRatio >= 1 {
		return fmt.Errorf("SATURATION_DIMINISHING_RATIO deve estar entre 0 e 1, recebido %v", c.Saturation.DiminishingRatio)
	}
	if c.Saturation.FlatnessThreshold < 0 {
		return fmt.Errorf("SATURATION_FLATNESS_THRESHOLD não pode ser negativo, recebido %v", c.Saturation.FlatnessThreshold)
	}
	if c.Anomaly.ZScoreThreshold <= 0 {
		return fmt.Errorf("ANOMALY_ZSCORE_THRESHOLD deve ser positivo, recebido %v", c.Anomaly.ZScoreThreshold)
	}
	if c.Experiment.Alpha <= 0 || c.Experiment.Alpha >= 1 {
		return fmt.Errorf("EXPERIMENT_ALPHA deve estar entre 0 e 1, recebido %v", c.Experiment.Alpha)
	}
	if c.Auth.Enabled && c.Auth.Secret == "" {
		return fmt.Errorf("AUTH_SECRET é obrigatório quando AUTH_ENABLED=true")
	}
	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
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
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
