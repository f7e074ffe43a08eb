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
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Backend      Backend      `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	OrdersSync   OrdersSync   `mapstructure:",squash"`
	SnapshotSync SnapshotSync `mapstructure:",squash"`
	Reports      Reports      `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Backend descreve o backend de varejo remoto: toda persistência e regra de
// negócio vive lá; este serviço só consome o contrato REST com bearer token.
type Backend struct {
	URL            string        `mapstructure:"backend_url"`
	AccessToken    string        `mapstructure:"backend_access_token"`
	RequestTimeout time.Duration `mapstructure:"backend_request_timeout"`
}

type Auth struct {
	Secret   string        `mapstructure:"auth_secret"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

// OrdersSync controla o polling da lista de pedidos do e-commerce.
type OrdersSync struct {
	IntervalSeconds int  `mapstructure:"orders_sync_interval_seconds"`
	Enabled         bool `mapstructure:"orders_sync_enabled"`
}

// SnapshotSync controla a re-busca completa do snapshot financeiro.
type SnapshotSync struct {
	CronSchedule string `mapstructure:"snapshot_sync_cron"`
	Enabled      bool   `mapstructure:"snapshot_sync_enabled"`
}

type Reports struct {
	RankingSize int `mapstructure:"reports_ranking_size"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("BACKEND_URL", "http://localhost:4000/api/v1")
	viper.SetDefault("BACKEND_ACCESS_TOKEN", "your_access_token")
	viper.SetDefault("BACKEND_REQUEST_TIMEOUT", "30s")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("AUTH_TOKEN_TTL", "12h")

	viper.SetDefault("ORDERS_SYNC_INTERVAL_SECONDS", 30) // Pedidos online a cada 30s
	viper.SetDefault("ORDERS_SYNC_ENABLED", true)

	viper.SetDefault("SNAPSHOT_SYNC_CRON", "*/5 * * * *") // Snapshot completo a cada 5 minutos
	viper.SetDefault("SNAPSHOT_SYNC_ENABLED", true)

	viper.SetDefault("REPORTS_RANKING_SIZE", 5)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	if config.Backend.URL == "" {
		return nil, fmt.Errorf("BACKEND_URL é obrigatório")
	}

	return config, nil
}

// loadEnvFile tenta carregar o arquivo .env das localizações conhecidas.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
