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
	"github.com/vfg2006/sales-report/pkg/log"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Sales      Sales      `mapstructure:",squash"`
	Static     Static     `mapstructure:",squash"`
	ReportSync ReportSync `mapstructure:",squash"`
}

type App struct {
	Env       string `mapstructure:"app_env"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"` // text ou json
}

// LogOptions traduz a configuração da aplicação para o logger
func (a App) LogOptions() log.Options {
	return log.Options{
		Level:       a.LogLevel,
		Format:      a.LogFormat,
		Development: log.IsDevelopmentEnv(a.Env),
	}
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"` // vazio usa as origens locais padrão
}

type Sales struct {
	Source        string        `mapstructure:"sales_source"` // caminho local ou URL http(s)
	SourceTimeout time.Duration `mapstructure:"sales_source_timeout"`
	PlotsDir      string        `mapstructure:"plots_dir"`
}

// Static define onde ficam os gráficos e uploads servidos pela interface web
type Static struct {
	Dir         string `mapstructure:"static_dir"`
	MaxUploadMB int64  `mapstructure:"max_upload_mb"`
}

type ReportSync struct {
	CronSchedule string `mapstructure:"report_sync_cron"`
	Enabled      bool   `mapstructure:"report_sync_enabled"`
}

func (s Static) ImagesDir() string {
	return filepath.Join(s.Dir, "images")
}

func (s Static) UploadsDir() string {
	return filepath.Join(s.Dir, "uploads")
}

func (s Static) MaxUploadBytes() int64 {
	return s.MaxUploadMB << 20
}

func (s Server) Addr() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", 5000)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")

	v.SetDefault("SALES_SOURCE", "sales_data.csv")
	v.SetDefault("SALES_SOURCE_TIMEOUT", "30s")
	v.SetDefault("PLOTS_DIR", "plots")

	v.SetDefault("STATIC_DIR", "static")
	v.SetDefault("MAX_UPLOAD_MB", 10)

	v.SetDefault("REPORT_SYNC_CRON", "0 * * * *") // A cada hora
	v.SetDefault("REPORT_SYNC_ENABLED", false)

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	v := viper.New()
	SetDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	if err := v.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	config := &Config{}

	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Sales.Source == "" {
		return nil, fmt.Errorf("config: SALES_SOURCE não pode ser vazio")
	}

	if config.Static.MaxUploadMB <= 0 {
		return nil, fmt.Errorf("config: MAX_UPLOAD_MB deve ser positivo, recebido %d", config.Static.MaxUploadMB)
	}

	return config, nil
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
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente e valores padrão")
}
