package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Meta       Meta       `mapstructure:",squash"`
	Google     Google     `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`
	Looker     Looker     `mapstructure:",squash"`
	SheetsSync SheetsSync `mapstructure:",squash"`
}

type App struct {
	LogLevel       string   `mapstructure:"log_level"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	FrontendURL    string   `mapstructure:"frontend_url"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Meta struct {
	BaseURL           string        `mapstructure:"meta_base_url"`
	URL               string        `mapstructure:"meta_url"`
	Version           string        `mapstructure:"meta_version"`
	AppID             string        `mapstructure:"meta_app_id"`
	AppSecret         string        `mapstructure:"meta_app_secret"`
	RedirectURL       string        `mapstructure:"meta_redirect_url"`
	Scopes            []string      `mapstructure:"meta_scopes"`
	AccessToken       string        `mapstructure:"meta_access_token"`
	PageSize          int           `mapstructure:"meta_page_size"`
	RequestsPerSecond float64       `mapstructure:"meta_requests_per_second"`
	RequestTimeout    time.Duration `mapstructure:"meta_request_timeout"`
}

// Google agrupa as credenciais da conta de serviço usada para escrever na planilha
type Google struct {
	ServiceAccountEmail string `mapstructure:"google_service_account_email"`
	PrivateKey          string `mapstructure:"google_private_key"`
	SheetsID            string `mapstructure:"google_sheets_id"`
}

type Auth struct {
	Secret         string        `mapstructure:"auth_secret"`
	SessionTTL     time.Duration `mapstructure:"auth_session_ttl"`
	CookieSecure   bool          `mapstructure:"auth_cookie_secure"`
	LongLivedToken bool          `mapstructure:"auth_long_lived_token"`
}

type Looker struct {
	ReportName string `mapstructure:"looker_report_name"`
	LayoutFile string `mapstructure:"looker_layout_file"`
	SheetName  string `mapstructure:"looker_sheet_name"`
}

type SheetsSync struct {
	CronSchedule string `mapstructure:"sheets_sync_cron"`
	AccountID    string `mapstructure:"sheets_sync_account_id"`
	LookbackDays int    `mapstructure:"sheets_sync_lookback_days"`
	Enabled      bool   `mapstructure:"sheets_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("FRONTEND_URL", "http://localhost:3000")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v18.0")
	viper.SetDefault("META_APP_ID", "your_app_id")
	viper.SetDefault("META_APP_SECRET", "your_app_secret")
	viper.SetDefault("META_REDIRECT_URL", "http://localhost:8000/v1/auth/facebook/callback")
	viper.SetDefault("META_SCOPES", "ads_management,ads_read,business_management")
	viper.SetDefault("META_ACCESS_TOKEN", "") // ONLY LOCAL - usado pelo sync agendado e pela CLI
	viper.SetDefault("META_PAGE_SIZE", 500)
	viper.SetDefault("META_REQUESTS_PER_SECOND", 5)
	viper.SetDefault("META_REQUEST_TIMEOUT", "60s")

	viper.SetDefault("GOOGLE_SERVICE_ACCOUNT_EMAIL", "")
	viper.SetDefault("GOOGLE_PRIVATE_KEY", "")
	viper.SetDefault("GOOGLE_SHEETS_ID", "")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_SESSION_TTL", "24h")
	viper.SetDefault("AUTH_COOKIE_SECURE", false)
	viper.SetDefault("AUTH_LONG_LIVED_TOKEN", true)

	viper.SetDefault("LOOKER_REPORT_NAME", "Facebook Ads Data")
	viper.SetDefault("LOOKER_LAYOUT_FILE", "")
	viper.SetDefault("LOOKER_SHEET_NAME", "MarketingAPI")

	viper.SetDefault("SHEETS_SYNC_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("SHEETS_SYNC_ACCOUNT_ID", "")    // act_<id> da conta sincronizada
	viper.SetDefault("SHEETS_SYNC_LOOKBACK_DAYS", 7)  // 7 dias para buscar dados
	viper.SetDefault("SHEETS_SYNC_ENABLED", false)    // Habilitar sincronização agendada
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

	config.normalize()

	return config, nil
}

// normalize preenche os campos derivados depois do unmarshal
func (c *Config) normalize() {
	c.Meta.URL = fmt.Sprintf("%s/%s", strings.TrimRight(c.Meta.BaseURL, "/"), c.Meta.Version)

	// A chave privada costuma vir do ambiente com "\n" escapado
	c.Google.PrivateKey = strings.ReplaceAll(c.Google.PrivateKey, `\n`, "\n")

	if c.Meta.PageSize <= 0 {
		c.Meta.PageSize = 500
	}

	if c.Auth.SessionTTL <= 0 {
		c.Auth.SessionTTL = 24 * time.Hour
	}

	if c.Looker.SheetName == "" {
		c.Looker.SheetName = "MarketingAPI"
	}
}

// SheetsEnabled indica se as credenciais mínimas do Google Sheets estão presentes
func (c *Config) SheetsEnabled() bool {
	return c.Google.ServiceAccountEmail != "" && c.Google.PrivateKey != "" && c.Google.SheetsID != ""
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

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
