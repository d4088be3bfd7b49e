package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Auth             Auth             `mapstructure:",squash"`
	Fees             Fees             `mapstructure:",squash"`
	Campaign         Campaign         `mapstructure:",squash"`
	EngagementRollup EngagementRollup `mapstructure:",squash"`
	LedgerAudit      LedgerAudit      `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	MaxIdleConns int    `mapstructure:"database_max_idle_conns"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Fees define a taxa da plataforma cobrada sobre cada depósito bruto.
// BPS em pontos-base: 1000 = 10%. A validação garante o intervalo [0, 9999].
type Fees struct {
	BPS int64 `mapstructure:"platform_fee_bps"`
}

// Campaign controla regras opcionais do ciclo de vida das campanhas
type Campaign struct {
	EnforceStartTime bool `mapstructure:"campaign_enforce_start_time"`
}

type EngagementRollup struct {
	CronSchedule string `mapstructure:"engagement_rollup_cron"`
	LookbackDays int    `mapstructure:"engagement_rollup_lookback_days"`
	Enabled      bool   `mapstructure:"engagement_rollup_enabled"`
}

type LedgerAudit struct {
	CronSchedule string `mapstructure:"ledger_audit_cron"`
	Enabled      bool   `mapstructure:"ledger_audit_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/adledger")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Taxa da plataforma em pontos-base (1000 = 10%)
	viper.SetDefault("PLATFORM_FEE_BPS", 1000)

	// Ativação antes do start_time é permitida por padrão
	viper.SetDefault("CAMPAIGN_ENFORCE_START_TIME", false)

	// Defaults para consolidação diária de engajamentos
	viper.SetDefault("ENGAGEMENT_ROLLUP_CRON", "0 3 * * *")  // Todos os dias às 3h da manhã
	viper.SetDefault("ENGAGEMENT_ROLLUP_LOOKBACK_DAYS", 2)   // 2 dias para reconsolidar
	viper.SetDefault("ENGAGEMENT_ROLLUP_ENABLED", false)     // Habilitar consolidação

	// Defaults para auditoria do ledger
	viper.SetDefault("LEDGER_AUDIT_CRON", "0 4 * * *") // Todos os dias às 4h da manhã
	viper.SetDefault("LEDGER_AUDIT_ENABLED", false)    // Habilitar auditoria

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

	if config.Fees.BPS < 0 || config.Fees.BPS > 9999 {
		return nil, fmt.Errorf("PLATFORM_FEE_BPS fora do intervalo [0, 9999]: %d", config.Fees.BPS)
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
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
