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
	App                 App                 `mapstructure:",squash"`
	Server              Server              `mapstructure:",squash"`
	Auth                Auth                `mapstructure:",squash"`
	Warehouse           Warehouse           `mapstructure:",squash"`
	OpenAI              OpenAI              `mapstructure:",squash"`
	Shopify             Shopify             `mapstructure:",squash"`
	Cors                Cors                `mapstructure:",squash"`
	MetricsSnapshotSync MetricsSnapshotSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Auth guarda o segredo compartilhado comparado com os headers de API key
type Auth struct {
	APIKey string `mapstructure:"api_key"`
}

type Warehouse struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"warehouse_driver"`
	Password string `mapstructure:"warehouse_password"`
	URL      string `mapstructure:"warehouse_url"`
	User     string `mapstructure:"warehouse_user"`
}

type OpenAI struct {
	BaseURL   string        `mapstructure:"openai_base_url"`
	APIKey    string        `mapstructure:"openai_api_key"`
	Model     string        `mapstructure:"openai_model"`
	MaxTokens int           `mapstructure:"openai_max_tokens"`
	Timeout   time.Duration `mapstructure:"openai_timeout"`
}

// Shopify contém as credenciais usadas quando a categoria shopify/churn é
// buscada fora de uma requisição que as informe (insights de IA e cron)
type Shopify struct {
	APIKey   string `mapstructure:"shopify_api_key"`
	Password string `mapstructure:"shopify_password"`
	Shop     string `mapstructure:"shopify_shop"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type MetricsSnapshotSync struct {
	CronSchedule string `mapstructure:"metrics_snapshot_sync_cron"`
	Enabled      bool   `mapstructure:"metrics_snapshot_sync_enabled"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "8000")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("APP_ENV", "development")

	v.SetDefault("API_KEY", "")

	v.SetDefault("WAREHOUSE_DRIVER", "clickhouse")
	v.SetDefault("WAREHOUSE_URL", "localhost:9000/analytics")
	v.SetDefault("WAREHOUSE_USER", "default")
	v.SetDefault("WAREHOUSE_PASSWORD", "")

	v.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	v.SetDefault("OPENAI_API_KEY", "")
	v.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	v.SetDefault("OPENAI_MAX_TOKENS", 150)
	v.SetDefault("OPENAI_TIMEOUT", "0s") // sem timeout, igual ao cliente padrão

	v.SetDefault("SHOPIFY_API_KEY", "")
	v.SetDefault("SHOPIFY_PASSWORD", "")
	v.SetDefault("SHOPIFY_SHOP", "")

	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.SetDefault("METRICS_SNAPSHOT_SYNC_CRON", "0 */6 * * *") // A cada 6 horas
	v.SetDefault("METRICS_SNAPSHOT_SYNC_ENABLED", false)
}

// NewConfig carrega a configuração do .env e das variáveis de ambiente
func NewConfig() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	setDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.Debug("Usando apenas variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	return unmarshal(v)
}

func unmarshal(v *viper.Viper) (*Config, error) {
	config := &Config{}

	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, fmt.Errorf("config: erro ao decodificar configuração: %w", err)
	}

	config.Warehouse.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Warehouse.Driver,
		config.Warehouse.User,
		config.Warehouse.Password,
		config.Warehouse.URL,
	)

	if config.Auth.APIKey == "" {
		logrus.Warn("API_KEY não configurada: todas as requisições autenticadas serão recusadas")
	}

	return config, nil
}

// loadEnvFile procura o arquivo .env no diretório atual e nos diretórios acima
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
