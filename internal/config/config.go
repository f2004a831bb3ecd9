package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/posts-stats-api/internal/domain"
)

const (
	DriverPostgres = "postgres"
	DriverHosted   = "hosted"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	SnapshotStore SnapshotStore `mapstructure:",squash"`
	Hosted        Hosted        `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	Dashboard     Dashboard     `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// SnapshotStore controla como as páginas de snapshots são requisitadas.
// PageSize não pode passar do limite de linhas por requisição do armazenamento.
type SnapshotStore struct {
	Driver             string        `mapstructure:"snapshot_store_driver"`
	PageSize           int           `mapstructure:"snapshot_store_page_size"`
	PageTimeout        time.Duration `mapstructure:"snapshot_store_page_timeout"`
	RequestsPerSecond  float64       `mapstructure:"snapshot_store_requests_per_second"`
	Burst              int           `mapstructure:"snapshot_store_burst"`
	BreakerMaxFailures uint32        `mapstructure:"snapshot_store_breaker_max_failures"`
	BreakerTimeout     time.Duration `mapstructure:"snapshot_store_breaker_timeout"`
}

// Hosted é o gateway REST do armazenamento, usado quando o driver é "hosted"
type Hosted struct {
	URL            string        `mapstructure:"hosted_store_url"`
	APIKey         string        `mapstructure:"hosted_store_api_key"`
	SnapshotsTable string        `mapstructure:"hosted_store_snapshots_table"`
	PostsTable     string        `mapstructure:"hosted_store_posts_table"`
	ArtistsTable   string        `mapstructure:"hosted_store_artists_table"`
	Timeout        time.Duration `mapstructure:"hosted_store_timeout"`
}

// Auth valida tokens emitidos pelo provedor de sessão externo
type Auth struct {
	Enabled bool   `mapstructure:"auth_enabled"`
	Secret  string `mapstructure:"auth_secret"`
}

type Dashboard struct {
	DefaultWindowDays int      `mapstructure:"dashboard_default_window_days"`
	DefaultPageSize   int      `mapstructure:"dashboard_default_page_size"`
	AllowedOrigins    []string `mapstructure:"dashboard_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/agency?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SNAPSHOT_STORE_DRIVER", DriverPostgres)
	viper.SetDefault("SNAPSHOT_STORE_PAGE_SIZE", 1000)         // Limite padrão de linhas por requisição
	viper.SetDefault("SNAPSHOT_STORE_PAGE_TIMEOUT", "15s")     // Timeout de cada página
	viper.SetDefault("SNAPSHOT_STORE_REQUESTS_PER_SECOND", 10) // Ritmo máximo das páginas
	viper.SetDefault("SNAPSHOT_STORE_BURST", 1)                // Sem rajadas
	viper.SetDefault("SNAPSHOT_STORE_BREAKER_MAX_FAILURES", 3) // Falhas seguidas até abrir o circuito
	viper.SetDefault("SNAPSHOT_STORE_BREAKER_TIMEOUT", "30s")  // Tempo com o circuito aberto

	viper.SetDefault("HOSTED_STORE_URL", "")
	viper.SetDefault("HOSTED_STORE_API_KEY", "")
	viper.SetDefault("HOSTED_STORE_SNAPSHOTS_TABLE", "post_snapshots")
	viper.SetDefault("HOSTED_STORE_POSTS_TABLE", "posts")
	viper.SetDefault("HOSTED_STORE_ARTISTS_TABLE", "artists")
	viper.SetDefault("HOSTED_STORE_TIMEOUT", "30s")

	viper.SetDefault("AUTH_ENABLED", true)
	viper.SetDefault("AUTH_SECRET", "")

	viper.SetDefault("DASHBOARD_DEFAULT_WINDOW_DAYS", 28)
	viper.SetDefault("DASHBOARD_DEFAULT_PAGE_SIZE", 20)
	viper.SetDefault("DASHBOARD_ALLOWED_ORIGINS", "http://localhost:3000")

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
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejeita combinações que quebrariam a paginação ou a autenticação
func (c *Config) Validate() error {
	var errs []error

	if c.SnapshotStore.PageSize <= 0 {
		errs = append(errs, fmt.Errorf("config: SNAPSHOT_STORE_PAGE_SIZE deve ser positivo, recebido %d", c.SnapshotStore.PageSize))
	}

	switch c.SnapshotStore.Driver {
	case DriverPostgres:
	case DriverHosted:
		if c.Hosted.URL == "" {
			errs = append(errs, errors.New("config: HOSTED_STORE_URL é obrigatório com o driver hosted"))
		}
	default:
		errs = append(errs, fmt.Errorf("config: SNAPSHOT_STORE_DRIVER desconhecido: %q", c.SnapshotStore.Driver))
	}

	if c.Auth.Enabled && c.Auth.Secret == "" {
		errs = append(errs, errors.New("config: AUTH_SECRET é obrigatório quando AUTH_ENABLED=true"))
	}

	if !slices.Contains(domain.RecencyWindows, c.Dashboard.DefaultWindowDays) {
		errs = append(errs, fmt.Errorf("config: DASHBOARD_DEFAULT_WINDOW_DAYS inválido: %d", c.Dashboard.DefaultWindowDays))
	}

	if c.Dashboard.DefaultPageSize <= 0 {
		errs = append(errs, fmt.Errorf("config: DASHBOARD_DEFAULT_PAGE_SIZE deve ser positivo, recebido %d", c.Dashboard.DefaultPageSize))
	}

	return errors.Join(errs...)
}

// Função auxiliar para carregar o arquivo .env usando godotenv
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
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
