package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

const (
	configFilePathENV = "CONFIG_FILE"
	tokenTelegramENV  = "TELEGRAM_TOKEN"
	databaseDSN       = "DATABASE_DSN"
	cmcAPIKeyENV      = "CMC_API_KEY"
)

// Config ...
type Config struct {
	Telegram struct {
		Token  string `yaml:"token"`
		ChatID int64  `yaml:"chat_id"`
	} `yaml:"telegram"`
	DB      string `yaml:"db_dsn"`
	Tracing struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"tracing"`

	// Источник рейтинга по капитализации
	CMCAPIKey string `yaml:"cmc_api_key"`
	// Сколько страниц рейтинга сканируем за цикл, по 100 монет на страницу
	ScanPages int `yaml:"scan_pages"`
	// Пауза между запросами к источникам — пейсинг под их rate limit,
	// не механизм корректности
	PacingDelay time.Duration

	// Key/value стор
	KVBackend string `yaml:"kv_backend"` // postgres | redis
	Redis     struct {
		Addr string `yaml:"addr"`
		DB   int    `yaml:"db"`
	} `yaml:"redis"`
	// Потолок размера одной записи в сторе и размер чанка кэша свечей.
	// Чанк заметно меньше потолка — запас на служебные байты.
	KVMaxValueSize int `yaml:"kv_max_value_size"`
	CacheChunkSize int `yaml:"cache_chunk_size"`
	// Сколько дневных баров тянем в кэш на символ
	KlineDays int `yaml:"kline_days"`

	// Волатильность: коэффициенты лог-лог регрессии ожидаемой волатильности
	// от капитализации. Перекалибровываются офлайн, поэтому конфиг, не код.
	VolSlope     float64 `yaml:"vol_slope"`
	VolIntercept float64 `yaml:"vol_intercept"`
	VolStdev     float64 `yaml:"vol_stdev"`

	// Краулер листингов бирж. Бюджет времени одного вызова — env
	// LISTINGS_BUDGET, длительности из yaml не читаем.
	ListingsPages  int `yaml:"listings_pages"`
	ListingsBudget time.Duration
}

func NewConfig() (*Config, error) {

	configFileName := os.Getenv(configFilePathENV)
	if configFileName == "" {
		configFileName = "values_local.yaml"
	}
	file, err := os.Open("configs/" + configFileName)
	if err != nil {
		log.Fatalf("Failed to open config file: %v", err)
	}

	defer func() {
		_ = file.Close()
	}()

	decoder := yaml.NewDecoder(file)
	config := Config{
		ScanPages:   5,
		PacingDelay: durationFromEnv("PACING_DELAY", "2s"),

		KVBackend:      "postgres",
		KVMaxValueSize: 500_000,
		CacheChunkSize: 400_000,
		KlineDays:      10,

		VolSlope:     1.2,
		VolIntercept: -24.8,
		VolStdev:     0.55,

		ListingsPages:  60,
		ListingsBudget: durationFromEnv("LISTINGS_BUDGET", "4m"),
	}
	err = decoder.Decode(&config)
	if err != nil {
		log.Fatalf("Failed to decode config file: %v", err)
	}

	applyEnv(&config)

	return &config, nil
}

// applyEnv накатывает переменные окружения поверх yaml: env всегда сильнее.
func applyEnv(config *Config) {
	token := os.Getenv(tokenTelegramENV)
	if token != "" {
		config.Telegram.Token = token
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			config.Telegram.ChatID = id
		}
	}

	dsn := os.Getenv(databaseDSN)
	if dsn != "" {
		config.DB = dsn
	}

	key := os.Getenv(cmcAPIKeyENV)
	if key != "" {
		config.CMCAPIKey = key
	}

	overrideInt(&config.ScanPages, "SCAN_PAGES")
	overrideString(&config.KVBackend, "KV_BACKEND")
	overrideInt(&config.KVMaxValueSize, "KV_MAX_VALUE_SIZE")
	overrideInt(&config.CacheChunkSize, "CACHE_CHUNK_SIZE")
	overrideInt(&config.KlineDays, "KLINE_DAYS")
	overrideFloat(&config.VolSlope, "VOL_SLOPE")
	overrideFloat(&config.VolIntercept, "VOL_INTERCEPT")
	overrideFloat(&config.VolStdev, "VOL_STDEV")
	overrideInt(&config.ListingsPages, "LISTINGS_PAGES")
}

func overrideInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func overrideFloat(dst *float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}

func overrideString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func durationFromEnv(key, def string) time.Duration {
	val := getenvDefault(key, def)
	d, err := time.ParseDuration(val)
	if err != nil {
		d, _ = time.ParseDuration(def)
	}
	return d
}
