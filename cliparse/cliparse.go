package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/danielhkuo/pressure-log/models"
)

type Config struct {
	Port             int
	DatabaseURL      string
	DatabaseType     string
	AllowedOrigins   []string
	TelegramBotToken string
	TelegramChatID   int64
	DisplayTZ        string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var origins string
	var chatID string

	fs := flag.NewFlagSet("pressure-log", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&origins, "origins", "", "Comma-separated CORS origin allow-list")
	fs.StringVar(&cfg.DisplayTZ, "tz", "", "Timezone for formatted dates")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.TelegramBotToken, "telegram-token", "", "Telegram bot token (prefer env)")
	fs.StringVar(&chatID, "telegram-chat", "", "Telegram chat ID for alerts (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3000 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = models.DatabaseSQLite
		}
	}
	if cfg.DatabaseType != models.DatabaseSQLite && cfg.DatabaseType != models.DatabasePostgres {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if origins == "" {
		origins = os.Getenv("ALLOWED_ORIGINS")
	}
	cfg.AllowedOrigins = splitOrigins(origins)

	if cfg.DisplayTZ == "" {
		cfg.DisplayTZ = os.Getenv("DISPLAY_TZ")
		if cfg.DisplayTZ == "" {
			cfg.DisplayTZ = "Asia/Bangkok"
		}
	}

	// Telegram alerts are optional; both settings must be present to enable
	if cfg.TelegramBotToken == "" {
		cfg.TelegramBotToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	}
	if chatID == "" {
		chatID = os.Getenv("TELEGRAM_CHAT_ID")
	}
	if chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return Config{}, errors.New("invalid TELEGRAM_CHAT_ID")
		}
		cfg.TelegramChatID = id
	}
	if cfg.TelegramBotToken != "" && cfg.TelegramChatID == 0 {
		return Config{}, errors.New("TELEGRAM_CHAT_ID required when TELEGRAM_BOT_TOKEN is set")
	}

	return cfg, nil
}

func splitOrigins(s string) []string {
	if s == "" {
		return nil
	}

	var origins []string
	for _, o := range strings.Split(s, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
