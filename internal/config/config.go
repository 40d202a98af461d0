package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config concentra a configuração de runtime do serviço.
// Valores vêm do ambiente (ou de um .env local), com defaults de desenvolvimento.
type Config struct {
	Porta     int
	LogLevel  string
	CORSAllow []string

	RedisAddr string
	RedisDB   int
	RedisPass string

	// JanelaLiquidacoes define quantos dias para trás o serviço busca
	// registros de liquidação ao montar calendário e painel.
	JanelaLiquidacoes time.Duration
}

// Load carrega a configuração a partir do ambiente.
func Load() *Config {
	// carrega .env silenciosamente (sem erro se ausente)
	_ = godotenv.Load()

	return &Config{
		Porta:             GetEnvInt("PORT", 8080),
		LogLevel:          GetEnv("LOG_LEVEL", "info"),
		CORSAllow:         []string{GetEnv("CORS_ALLOW_ORIGIN", "*")},
		RedisAddr:         GetEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:           GetEnvInt("REDIS_DB", 0),
		RedisPass:         GetEnv("REDIS_PASS", ""),
		JanelaLiquidacoes: GetEnvDuration("JANELA_LIQUIDACOES", 60*24*time.Hour),
	}
}

// GetEnv retorna a variável de ambiente ou o default informado.
func GetEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// GetEnvInt retorna a variável como inteiro ou o default informado.
func GetEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// GetEnvDuration retorna a variável como time.Duration ou o default informado.
func GetEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
